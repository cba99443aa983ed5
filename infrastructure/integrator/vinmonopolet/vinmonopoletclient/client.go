package vinmonopoletclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	vinmonopoletdomain "github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/domain"
	"github.com/vfg2006/vinmonopolet-cli/internal/config"
)

// SubscriptionKeyHeader é o cabeçalho de autenticação exigido pela API
const SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

const (
	monthlySalesPath    = "/monthly-sales-per-store"
	productDetailsPath  = "/details-normal"
	priceConditionsPath = "/price-conditions"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

type Client interface {
	GetMonthlySales(ctx context.Context, months vinmonopoletdomain.SalesMonthRange) (vinmonopoletdomain.MonthlySalesReport, error)
	GetProductDetails(ctx context.Context, productID string) (vinmonopoletdomain.ProductDetailsReport, error)
	GetPriceConditions(ctx context.Context, productID string) (vinmonopoletdomain.PriceConditionsReport, error)
	GetUpdatedProducts(ctx context.Context, changedSince time.Time) (vinmonopoletdomain.ProductDetailsReport, error)
}

type VinmonopoletClient struct {
	httpClient *http.Client
	baseURL    *url.URL
	apiKey     string
}

type Option func(*VinmonopoletClient)

// WithHTTPClient substitui o cliente HTTP padrão
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *VinmonopoletClient) {
		c.httpClient = httpClient
	}
}

// NewClient cria uma nova instância do cliente da API Vinmonopolet.
// A chave de assinatura é obrigatória.
func NewClient(cfg config.Vinmonopolet, opts ...Option) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, config.ErrMissingAPIKey
	}

	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}

	client := &VinmonopoletClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}
