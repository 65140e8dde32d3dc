package importer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/portions/internal/daybound"
	"github.com/alexanderramin/portions/internal/domain"
	"github.com/alexanderramin/portions/internal/scoring"
	"github.com/google/uuid"
)

const defaultUnit = "portion"

// ConvertOptions controls how raw values become domain values.
type ConvertOptions struct {
	CutoffMinutes  int
	Location       *time.Location
	ExactTolerance float64
	// Templates fill profile fields a dataset leaves out.
	Templates scoring.TemplateSet
	// NewID generates IDs for categories and entries that lack one.
	// Nil means random UUIDs.
	NewID func() string
}

// DefaultConvertOptions uses UTC, no day cutoff and the built-in templates.
func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		Location:       time.UTC,
		ExactTolerance: domain.DefaultExactTolerance,
		Templates:      scoring.DefaultTemplates(),
		NewID:          uuid.NewString,
	}
}

// idOr returns id, generating one only when it is empty.
func (o ConvertOptions) idOr(id string) string {
	if id != "" {
		return id
	}
	if o.NewID != nil {
		return o.NewID()
	}
	return uuid.NewString()
}

// Dataset is a converted, evaluation-ready dataset.
type Dataset struct {
	// Categories are ordered by SortOrder, then file order.
	Categories []domain.Category
	Profiles   map[string]domain.ScoreProfile
	Rules      domain.CompensationRules
	Entries    []domain.LogEntry
}

// Convert transforms a validated DatasetSchema into domain values.
// Call ValidateDataset first; Convert assumes the schema is valid.
func Convert(schema *DatasetSchema, opts ConvertOptions) (*Dataset, error) {
	ds := &Dataset{Profiles: make(map[string]domain.ScoreProfile)}

	resolve := make(map[string]string) // id or normalized name -> category ID
	for i, ci := range schema.Categories {
		rule, err := convertTarget(ci.Target, opts.ExactTolerance)
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}
		c := domain.Category{
			ID:        opts.idOr(ci.ID),
			Name:      ci.Name,
			Unit:      domain.CoalesceStr(ci.Unit, defaultUnit),
			Enabled:   domain.ValueOr(true, ci.Enabled),
			Target:    rule,
			SortOrder: domain.ValueOr(i, ci.SortOrder),
		}
		ds.Categories = append(ds.Categories, c)
		resolve[c.ID] = c.ID
		resolve[domain.NormalizeName(c.Name)] = c.ID

		if ci.Profile != nil {
			ds.Profiles[c.ID] = convertProfile(ci.Profile, opts.Templates.ProfileFor(c))
		}
	}
	sortCategories(ds.Categories)

	ds.Rules = domain.UnspecifiedRules()
	if schema.Compensation != nil {
		rules := make([]domain.CompensationRule, 0, len(*schema.Compensation))
		for _, r := range *schema.Compensation {
			rules = append(rules, domain.CompensationRule{
				FromCategoryID: lookupCategory(resolve, r.From),
				ToCategoryID:   lookupCategory(resolve, r.To),
				Ratio:          r.Ratio,
				MaxOffset:      r.MaxOffset,
			})
		}
		ds.Rules = domain.ExplicitRules(rules...)
	}

	entries, err := ConvertEntries(schema.Entries, resolve, opts)
	if err != nil {
		return nil, err
	}
	ds.Entries = entries

	return ds, nil
}

// ConvertEntries converts raw entries, deriving day keys from logged_at in
// the configured location when no explicit day is given.
func ConvertEntries(raw []EntryImport, resolve map[string]string, opts ConvertOptions) ([]domain.LogEntry, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	entries := make([]domain.LogEntry, 0, len(raw))
	for i, e := range raw {
		entry := domain.LogEntry{
			ID:         opts.idOr(e.ID),
			CategoryID: lookupCategory(resolve, e.Category),
			SlotID:     e.Slot,
			Portion:    domain.NewPortion(e.Portion),
			DayKey:     e.Day,
		}
		if e.LoggedAt != "" {
			t, err := time.Parse(time.RFC3339, e.LoggedAt)
			if err != nil {
				return nil, fmt.Errorf("entries[%d]: parsing logged_at: %w", i, err)
			}
			entry.LoggedAt = t.In(loc)
			if entry.DayKey == "" {
				entry.DayKey = daybound.DayKey(entry.LoggedAt, opts.CutoffMinutes)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func convertTarget(t TargetImport, defaultTolerance float64) (domain.TargetRule, error) {
	kind := domain.TargetKind(t.Kind)
	tolerance := domain.ValueOr(defaultTolerance, t.Tolerance)
	switch kind {
	case domain.TargetExact:
		return domain.NewTargetRule(kind, domain.ValueOr(0, t.Value), 0, tolerance)
	case domain.TargetAtMost:
		return domain.NewTargetRule(kind, domain.ValueOr(math.Inf(1), t.Max), 0, tolerance)
	default:
		return domain.NewTargetRule(kind,
			domain.ValueOr(0, t.Min),
			domain.ValueOr(math.Inf(1), t.Max),
			tolerance)
	}
}

func convertProfile(p *ProfileImport, base domain.ScoreProfile) domain.ScoreProfile {
	curve := base.Curve
	if p.Curve != "" {
		curve = domain.Curve(p.Curve)
	}
	return domain.ScoreProfile{
		Weight:              domain.ValueOr(base.Weight, p.Weight),
		UnderPenaltyPerUnit: domain.ValueOr(base.UnderPenaltyPerUnit, p.UnderPenalty),
		OverPenaltyPerUnit:  domain.ValueOr(base.OverPenaltyPerUnit, p.OverPenalty),
		UnderSoftLimit:      domain.ValueOr(base.UnderSoftLimit, p.UnderSoftLimit),
		OverSoftLimit:       domain.ValueOr(base.OverSoftLimit, p.OverSoftLimit),
		Curve:               curve,
		CapOverAtTarget:     domain.ValueOr(base.CapOverAtTarget, p.CapOverAtTarget),
	}
}

// lookupCategory resolves a reference by ID, then by normalized name. Unknown
// references pass through unchanged so evaluation treats them as inapplicable.
func lookupCategory(resolve map[string]string, ref string) string {
	if id, ok := resolve[ref]; ok {
		return id
	}
	if id, ok := resolve[domain.NormalizeName(ref)]; ok {
		return id
	}
	return ref
}

func sortCategories(cats []domain.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].SortOrder < cats[j].SortOrder
	})
}
