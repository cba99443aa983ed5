package vinmonopoletclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/vinmonopolet-cli/pkg/log"
)

// get executa um GET em endpointPath e decodifica a resposta em T
func get[T any](ctx context.Context, c *VinmonopoletClient, endpointPath string, query url.Values) (T, error) {
	var response T

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set(SubscriptionKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"method": http.MethodGet,
		"path":   endpointPath,
		"query":  endpoint.RawQuery,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Debug("Falha ao executar a requisição")
		return response, &ResponseError{Kind: ErrRequestFailed, Cause: err}
	}
	defer resp.Body.Close()

	logger.WithFields(log.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Resposta recebida")

	return HandleResponse[T](resp)
}
