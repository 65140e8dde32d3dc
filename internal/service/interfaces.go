package service

import (
	"context"

	"github.com/alexanderramin/portions/internal/app"
	"github.com/alexanderramin/portions/internal/importer"
)

// DatasetSource supplies an evaluation-ready dataset. importer.FileSource
// satisfies it.
type DatasetSource interface {
	Load(ctx context.Context) (*importer.Dataset, error)
}

type EvaluationService interface {
	app.EvaluateDayUseCase
	app.EvaluateHistoryUseCase
	app.ProfilesUseCase
	app.CheckUseCase
}
