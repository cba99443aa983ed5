package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version pode ser sobrescrita em tempo de build via -ldflags
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", programName, Version)
			return err
		},
	}
}
