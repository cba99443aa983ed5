package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	defer logrus.SetOutput(logrus.StandardLogger().Out)
	defer logrus.SetLevel(logrus.GetLevel())

	var buf bytes.Buffer
	require.NoError(t, Configure("debug", &buf))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	L.WithField("endpoint", "/details-normal").Debug("enviando requisição")
	assert.Contains(t, buf.String(), "endpoint=/details-normal")

	err := Configure("barulhento", &buf)
	assert.Error(t, err)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}

func TestCorrelationID(t *testing.T) {
	defer logrus.SetOutput(logrus.StandardLogger().Out)
	defer logrus.SetLevel(logrus.GetLevel())

	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id := WithCorrelationID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	var buf bytes.Buffer
	require.NoError(t, Configure("info", &buf))

	ForContext(ctx).Info("ok")
	assert.Contains(t, buf.String(), "correlation_id="+id)
}
