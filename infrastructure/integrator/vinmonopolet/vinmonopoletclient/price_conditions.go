package vinmonopoletclient

import (
	"context"
	"net/url"

	vinmonopoletdomain "github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/domain"
)

func (c *VinmonopoletClient) GetPriceConditions(ctx context.Context, productID string) (vinmonopoletdomain.PriceConditionsReport, error) {
	query := url.Values{}
	query.Set("productId", productID)

	return get[vinmonopoletdomain.PriceConditionsReport](ctx, c, priceConditionsPath, query)
}
