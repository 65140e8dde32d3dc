package cli

import (
	"fmt"

	"github.com/alexanderramin/portions/internal/cli/formatter"
	"github.com/alexanderramin/portions/internal/config"
	"github.com/alexanderramin/portions/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands. Evaluation may be preset;
// otherwise NewEvaluation builds it once configuration is loaded.
type App struct {
	Evaluation    service.EvaluationService
	NewEvaluation func(cfg *config.Config) (service.EvaluationService, error)
	IsTerminal    func() bool

	Config *config.Config
}

// NewRootCmd creates the top-level "portions" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "portions",
		Short:         "Daily portion adherence and scoring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(configPath, cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default .portions.yaml in the working directory)")
	flags.String("data", "", "Dataset file (YAML or JSON)")
	flags.StringSlice("entries", nil, "Extra entry-log globs, relative to the dataset file")
	flags.Int("cutoff", 0, "Minutes after midnight at which a new day starts")
	flags.String("timezone", "", "IANA timezone used to assign entries to days")
	flags.Float64("tolerance", 0, "Default tolerance for exact targets")
	flags.String("color", "auto", "Color output: auto, always or never")
	flags.Bool("log", false, "Log use-case events to stderr")
	flags.String("log-format", "text", "Log format: text or json")

	root.AddCommand(
		newDayCmd(app),
		newHistoryCmd(app),
		newProfilesCmd(app),
		newCheckCmd(app),
	)

	return root
}

func (a *App) setup(configPath string, cmd *cobra.Command) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.Config = cfg
	formatter.ConfigureColor(cfg.Color, a.isTerminal())

	if a.Evaluation != nil {
		return nil
	}
	if a.NewEvaluation == nil {
		return fmt.Errorf("no evaluation service configured")
	}
	a.Evaluation, err = a.NewEvaluation(cfg)
	return err
}

func (a *App) isTerminal() bool {
	return a.IsTerminal != nil && a.IsTerminal()
}
