package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/vinmonopoletclient"
)

func newProductDetailsCmd(client vinmonopoletclient.Client, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "product-details <product_id>",
		Short: "Basic details of a product",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 1 {
				fmt.Fprintln(out, "Please provide a product_id for product details")
				return nil
			}

			report, err := client.GetProductDetails(cmd.Context(), args[0])

			return opts.printResult(cmd.Context(), out, "product details", "Product details", report, err)
		},
	}
}
