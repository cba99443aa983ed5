package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vinmonopoletdomain "github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/domain"
	"github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/vinmonopoletclient"
	"github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/vinmonopoletclient/mocks"
	"go.uber.org/mock/gomock"
)

func run(t *testing.T, client vinmonopoletclient.Client, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd(client)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Usage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	out, err := run(t, mocks.NewMockClient(ctrl))
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
	for _, sub := range []string{
		"monthly-sales <from_date> <to_date>",
		"product-details <product_id>",
		"price-conditions <product_id>",
		"updated-products <since_date>",
	} {
		assert.Contains(t, out, sub)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	out, err := run(t, mocks.NewMockClient(ctrl), "stock-levels", "123")
	require.NoError(t, err)
	assert.Equal(t, unknownCommandMessage+"\n", out)
}

// Nenhuma expectativa no mock: qualquer chamada à API faz o teste falhar
func TestMissingArguments_NoAPICall(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{name: "monthly-sales sem argumentos", args: []string{"monthly-sales"}, message: "Please provide from_date and to_date for monthly sales"},
		{name: "monthly-sales com um argumento", args: []string{"monthly-sales", "2024-01"}, message: "Please provide from_date and to_date for monthly sales"},
		{name: "product-details", args: []string{"product-details"}, message: "Please provide a product_id for product details"},
		{name: "price-conditions", args: []string{"price-conditions"}, message: "Please provide a product_id for price conditions"},
		{name: "updated-products", args: []string{"updated-products"}, message: "Please provide a since_date for updated products"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			out, err := run(t, mocks.NewMockClient(ctrl), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.message+"\n", out)
		})
	}
}

func TestUpdatedProducts_InvalidDateFailsBeforeRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	out, err := run(t, mocks.NewMockClient(ctrl), "updated-products", "2024/13/40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024/13/40")
	assert.Empty(t, out)

	var exitErr *ExitError
	assert.NotErrorAs(t, err, &exitErr)
}

func TestMonthlySales_ForwardsMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetMonthlySales(gomock.Any(), vinmonopoletdomain.SalesMonthRange{From: "2024-01", To: "2024-03"}).
		Return(vinmonopoletdomain.MonthlySalesReport{
			"2024": {{StoreID: "122", Sales: []vinmonopoletdomain.ProductSales{{ProductID: "1101", SalesQuantity: 3}}}},
		}, nil)

	out, err := run(t, client, "monthly-sales", "2024-01", "2024-03")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly sales: ")
	assert.Contains(t, out, "StoreID:122")
	assert.Contains(t, out, "ProductID:1101")
}

func TestUpdatedProducts_ParsesDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		GetUpdatedProducts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) (vinmonopoletdomain.ProductDetailsReport, error) {
			assert.Equal(t, "2024-05-17", since.Format(time.DateOnly))
			return vinmonopoletdomain.ProductDetailsReport{}, nil
		})

	out, err := run(t, client, "updated-products", "2024-05-17")
	require.NoError(t, err)
	assert.Equal(t, "Updated products: map[]\n", out)
}

func TestAPIFailure_PrintedNotFatal(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		setup   func(client *mocks.MockClient)
		message string
	}{
		{
			name: "price-conditions não autorizado",
			args: []string{"price-conditions", "42"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetPriceConditions(gomock.Any(), "42").
					Return(nil, &vinmonopoletclient.ResponseError{Kind: vinmonopoletclient.ErrUnauthorized, StatusCode: 401})
			},
			message: "Error fetching price conditions: unauthorized\n",
		},
		{
			name: "product-details status desconhecido",
			args: []string{"product-details", "42"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetProductDetails(gomock.Any(), "42").
					Return(nil, &vinmonopoletclient.ResponseError{Kind: vinmonopoletclient.ErrUnknownStatus, StatusCode: 418})
			},
			message: "Error fetching product details: unexpected status code: 418\n",
		},
		{
			name: "monthly-sales erro do servidor",
			args: []string{"monthly-sales", "2024-01", "2024-02"},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetMonthlySales(gomock.Any(), gomock.Any()).
					Return(nil, &vinmonopoletclient.ResponseError{Kind: vinmonopoletclient.ErrServerError, StatusCode: 500})
			},
			message: "Error fetching monthly sales: server error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			out, err := run(t, client, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.message, out)
		})
	}
}

func TestAPIFailure_FailOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetProductDetails(gomock.Any(), "42").
		Return(nil, &vinmonopoletclient.ResponseError{Kind: vinmonopoletclient.ErrNotFound, StatusCode: 404})

	out, err := run(t, client, "--fail-on-error", "product-details", "42")
	require.Error(t, err)
	assert.Equal(t, "Error fetching product details: resource not found\n", out)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitCodeAPIFailure, exitErr.ExitCode())
	assert.ErrorIs(t, err, vinmonopoletclient.ErrNotFound)
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	out, err := run(t, mocks.NewMockClient(ctrl), "version")
	require.NoError(t, err)
	assert.Equal(t, "vinmonopolet dev\n", out)
}
