package vinmonopoletclient

import (
	"context"
	"net/url"

	vinmonopoletdomain "github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/domain"
)

func (c *VinmonopoletClient) GetMonthlySales(ctx context.Context, months vinmonopoletdomain.SalesMonthRange) (vinmonopoletdomain.MonthlySalesReport, error) {
	query := url.Values{}
	query.Set("fromSalesMonth", months.From)
	query.Set("toSalesMonth", months.To)

	return get[vinmonopoletdomain.MonthlySalesReport](ctx, c, monthlySalesPath, query)
}
