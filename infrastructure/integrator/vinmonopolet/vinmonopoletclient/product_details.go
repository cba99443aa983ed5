package vinmonopoletclient

import (
	"context"
	"net/url"
	"time"

	vinmonopoletdomain "github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/domain"
	"github.com/vfg2006/vinmonopolet-cli/pkg/utils"
)

func (c *VinmonopoletClient) GetProductDetails(ctx context.Context, productID string) (vinmonopoletdomain.ProductDetailsReport, error) {
	query := url.Values{}
	query.Set("productId", productID)

	return get[vinmonopoletdomain.ProductDetailsReport](ctx, c, productDetailsPath, query)
}

// GetUpdatedProducts usa o mesmo endpoint de detalhes, filtrado por data de alteração
func (c *VinmonopoletClient) GetUpdatedProducts(ctx context.Context, changedSince time.Time) (vinmonopoletdomain.ProductDetailsReport, error) {
	query := url.Values{}
	query.Set("changedSince", utils.FormatDate(changedSince))

	return get[vinmonopoletdomain.ProductDetailsReport](ctx, c, productDetailsPath, query)
}
