package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/portions/internal/cli"
	"github.com/alexanderramin/portions/internal/config"
	"github.com/alexanderramin/portions/internal/importer"
	"github.com/alexanderramin/portions/internal/scoring"
	"github.com/alexanderramin/portions/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		NewEvaluation: newEvaluationService,
		IsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}
	return cli.NewRootCmd(app).Execute()
}

// newEvaluationService wires the file-backed dataset source and evaluator
// from the loaded configuration.
func newEvaluationService(cfg *config.Config) (service.EvaluationService, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	templates := scoring.DefaultTemplates()
	source := &importer.FileSource{
		Path:       cfg.Data,
		EntryGlobs: cfg.Entries,
		Options: importer.ConvertOptions{
			CutoffMinutes:  cfg.CutoffMinutes,
			Location:       loc,
			ExactTolerance: cfg.ExactTolerance,
			Templates:      templates,
		},
	}

	var logOut io.Writer
	if cfg.LogUseCases {
		logOut = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logOut, service.LogFormat(cfg.LogFormat))

	return service.NewEvaluationService(
		source,
		scoring.NewEvaluator(templates),
		service.Options{
			CutoffMinutes: cfg.CutoffMinutes,
			Location:      loc,
			DataFile:      cfg.Data,
		},
		observer,
	), nil
}
