package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/vinmonopoletclient"
)

func newPriceConditionsCmd(client vinmonopoletclient.Client, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "price-conditions <product_id>",
		Short: "Price elements of a product",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 1 {
				fmt.Fprintln(out, "Please provide a product_id for price conditions")
				return nil
			}

			report, err := client.GetPriceConditions(cmd.Context(), args[0])

			return opts.printResult(cmd.Context(), out, "price conditions", "Price conditions", report, err)
		},
	}
}
