package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	vinmonopoletdomain "github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/domain"
	"github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/vinmonopoletclient"
)

func newMonthlySalesCmd(client vinmonopoletclient.Client, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly-sales <from_sales_month> <to_sales_month>",
		Short: "Monthly sales per store between two months (YYYY-MM)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 2 {
				fmt.Fprintln(out, "Please provide from_date and to_date for monthly sales")
				return nil
			}

			months := vinmonopoletdomain.SalesMonthRange{From: args[0], To: args[1]}
			report, err := client.GetMonthlySales(cmd.Context(), months)

			return opts.printResult(cmd.Context(), out, "monthly sales", "Monthly sales", report, err)
		},
	}
}
