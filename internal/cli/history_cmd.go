package cli

import (
	"fmt"

	"github.com/alexanderramin/portions/internal/app"
	"github.com/alexanderramin/portions/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *App) *cobra.Command {
	var end string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show daily scores, rolling average and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewHistoryRequest()
			req.EndKey = end
			if a.Config != nil {
				req.Days = a.Config.History.Days
				req.Window = a.Config.History.Window
			}

			report, err := a.Evaluation.EvaluateHistory(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&end, "end", "", "Last day to include (default: today)")
	cmd.Flags().Int("days", 30, "Number of days to include")
	cmd.Flags().Int("window", 7, "Rolling average window in days")

	return cmd
}
