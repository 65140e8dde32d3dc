package cli

import (
	"fmt"

	"github.com/alexanderramin/portions/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfilesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "Show the effective score profile of every category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := a.Evaluation.ResolveProfiles(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfiles(profiles))
			return nil
		},
	}
}
