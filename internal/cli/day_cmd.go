package cli

import (
	"fmt"

	"github.com/alexanderramin/portions/internal/app"
	"github.com/alexanderramin/portions/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDayCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show adherence and score for one day (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewDayRequest()
			if len(args) == 1 {
				req.DayKey = args[0]
			}

			report, err := a.Evaluation.EvaluateDay(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(report))
			return nil
		},
	}
	return cmd
}
