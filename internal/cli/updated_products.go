package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/vinmonopoletclient"
	"github.com/vfg2006/vinmonopolet-cli/pkg/utils"
)

func newUpdatedProductsCmd(client vinmonopoletclient.Client, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "updated-products <since_date>",
		Short: "Products changed since a date (YYYY-MM-DD)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 1 {
				fmt.Fprintln(out, "Please provide a since_date for updated products")
				return nil
			}

			// Data inválida é fatal e interrompe antes de qualquer requisição
			since, err := utils.ParseDate(args[0])
			if err != nil {
				return err
			}

			report, err := client.GetUpdatedProducts(cmd.Context(), since)

			return opts.printResult(cmd.Context(), out, "updated products", "Updated products", report, err)
		},
	}
}
