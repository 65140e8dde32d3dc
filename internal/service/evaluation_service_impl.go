package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/portions/internal/app"
	"github.com/alexanderramin/portions/internal/daybound"
	"github.com/alexanderramin/portions/internal/importer"
	"github.com/alexanderramin/portions/internal/scoring"
)

// Options fixes the evaluation day boundary.
type Options struct {
	CutoffMinutes int
	Location      *time.Location
	// DataFile is reported by Check.
	DataFile string
}

type evaluationService struct {
	source    DatasetSource
	evaluator *scoring.Evaluator
	opts      Options
	observer  UseCaseObserver
}

func NewEvaluationService(
	source DatasetSource,
	evaluator *scoring.Evaluator,
	opts Options,
	observers ...UseCaseObserver,
) EvaluationService {
	if evaluator == nil {
		evaluator = scoring.DefaultEvaluator()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	opts.CutoffMinutes = daybound.ClampCutoff(opts.CutoffMinutes)
	return &evaluationService{
		source:    source,
		evaluator: evaluator,
		opts:      opts,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *evaluationService) EvaluateDay(ctx context.Context, req app.DayRequest) (report *app.DayReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer s.observe(ctx, "evaluate_day", startedAt, fields, &err)

	key, err := s.resolveDayKey(req.DayKey, req.Now)
	if err != nil {
		return nil, err
	}
	fields["day"] = key

	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	totals := scoring.TotalsByDay(ds.Entries, key, key)[key]
	if totals == nil {
		totals = map[string]float64{}
	}
	adherence := scoring.EvaluateAdherence(ds.Categories, totals)
	score := s.evaluator.Evaluate(scoring.ScoreInput{
		Categories: ds.Categories,
		Totals:     totals,
		Profiles:   ds.Profiles,
		Rules:      ds.Rules,
	})

	report = buildDayReport(ds, s.evaluator, key, adherence, score)
	report.GeneratedAt = s.now(req.Now)
	fields["overall"] = report.Overall
	fields["all_met"] = report.AllTargetsMet
	return report, nil
}

func (s *evaluationService) EvaluateHistory(ctx context.Context, req app.HistoryRequest) (report *app.HistoryReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer s.observe(ctx, "evaluate_history", startedAt, fields, &err)

	days := req.Days
	if days <= 0 {
		days = 30
	}
	window := req.Window
	if window <= 0 {
		window = 7
	}

	endKey, err := s.resolveDayKey(req.EndKey, req.Now)
	if err != nil {
		return nil, err
	}
	end, err := daybound.ParseDayKey(endKey, s.opts.Location)
	if err != nil {
		return nil, err
	}
	startKey := end.AddDate(0, 0, -(days - 1)).Format(daybound.KeyLayout)
	fields["start"] = startKey
	fields["end"] = endKey

	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	h, err := s.evaluator.EvaluateHistory(scoring.HistoryInput{
		Categories: ds.Categories,
		Entries:    ds.Entries,
		Profiles:   ds.Profiles,
		Rules:      ds.Rules,
		StartKey:   startKey,
		EndKey:     endKey,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating history: %w", err)
	}

	report = buildHistoryReport(h, startKey, endKey, window)
	fields["streak"] = report.Streak
	return report, nil
}

func (s *evaluationService) ResolveProfiles(ctx context.Context) ([]app.ResolvedProfile, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]app.ResolvedProfile, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		_, overridden := ds.Profiles[c.ID]
		out = append(out, app.ResolvedProfile{
			CategoryID: c.ID,
			Name:       c.Name,
			Target:     describeTarget(c),
			Enabled:    c.Enabled,
			Overridden: overridden,
			Profile:    s.evaluator.Profile(c, ds.Profiles),
		})
	}
	return out, nil
}

func (s *evaluationService) Check(ctx context.Context) (*app.CheckReport, error) {
	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	report := &app.CheckReport{
		DataFile:        s.opts.DataFile,
		CategoryCount:   len(ds.Categories),
		EntryCount:      len(ds.Entries),
		RuleCount:       len(ds.Rules.Rules()),
		ExplicitRules:   ds.Rules.Explicit(),
		OverriddenCount: len(ds.Profiles),
	}
	for _, c := range ds.Categories {
		if c.Enabled {
			report.EnabledCount++
		}
	}
	report.FirstDayKey, report.LastDayKey = entryDayRange(ds)
	return report, nil
}

func (s *evaluationService) load(ctx context.Context) (ds *importer.Dataset, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer s.observe(ctx, "load_dataset", startedAt, fields, &err)

	ds, err = s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	fields["categories"] = len(ds.Categories)
	fields["entries"] = len(ds.Entries)
	return ds, nil
}

// resolveDayKey validates an explicit key or derives the key of the day
// containing now.
func (s *evaluationService) resolveDayKey(key string, now *time.Time) (string, error) {
	if key != "" {
		if _, err := daybound.ParseDayKey(key, s.opts.Location); err != nil {
			return "", err
		}
		return key, nil
	}
	return daybound.DayKey(s.now(now).In(s.opts.Location), s.opts.CutoffMinutes), nil
}

func (s *evaluationService) now(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return time.Now().UTC()
}

func (s *evaluationService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
