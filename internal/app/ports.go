package app

import "context"

type EvaluateDayUseCase interface {
	EvaluateDay(ctx context.Context, req DayRequest) (*DayReport, error)
}

type EvaluateHistoryUseCase interface {
	EvaluateHistory(ctx context.Context, req HistoryRequest) (*HistoryReport, error)
}

type ProfilesUseCase interface {
	ResolveProfiles(ctx context.Context) ([]ResolvedProfile, error)
}

type CheckUseCase interface {
	Check(ctx context.Context) (*CheckReport, error)
}
