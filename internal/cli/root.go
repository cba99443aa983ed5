package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/vinmonopolet-cli/infrastructure/integrator/vinmonopolet/vinmonopoletclient"
	"github.com/vfg2006/vinmonopolet-cli/pkg/log"
)

const programName = "vinmonopolet"

const unknownCommandMessage = "Unknown command. Use one of: monthly-sales, product-details, price-conditions, updated-products"

// NewRootCmd monta o comando raiz com os subcomandos da API
func NewRootCmd(client vinmonopoletclient.Client) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   programName,
		Short: "Query the Vinmonopolet product sales API",
		// Subcomandos desconhecidos chegam aqui como argumentos
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, _ = log.WithCorrelationID(ctx)
			cmd.SetContext(ctx)

			log.ForContext(ctx).WithField("command", cmd.Name()).Debug("Executando comando")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printUsage(cmd.OutOrStdout())
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), unknownCommandMessage)
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	cmd.PersistentFlags().BoolVar(&opts.failOnError, "fail-on-error", false, "Exit with status 2 when the API call fails")

	cmd.AddCommand(
		newMonthlySalesCmd(client, opts),
		newProductDetailsCmd(client, opts),
		newPriceConditionsCmd(client, opts),
		newUpdatedProductsCmd(client, opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute roda o comando raiz com os argumentos informados
func Execute(ctx context.Context, client vinmonopoletclient.Client, args []string) error {
	cmd := NewRootCmd(client)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s monthly-sales <from_date> <to_date>\n", programName)
	fmt.Fprintf(out, "  %s product-details <product_id>\n", programName)
	fmt.Fprintf(out, "  %s price-conditions <product_id>\n", programName)
	fmt.Fprintf(out, "  %s updated-products <since_date>\n", programName)
}
