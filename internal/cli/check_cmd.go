package cli

import (
	"fmt"

	"github.com/alexanderramin/portions/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the dataset and entry logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.Evaluation.Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheck(report))
			return nil
		},
	}
}
