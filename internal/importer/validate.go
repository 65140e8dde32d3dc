package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/portions/internal/daybound"
	"github.com/alexanderramin/portions/internal/domain"
)

// ValidateDataset checks the dataset for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateDataset(schema *DatasetSchema) []error {
	return validateDataset(schema, newCategoryRefs())
}

func validateDataset(schema *DatasetSchema, refs *categoryRefs) []error {
	var errs []error

	errs = append(errs, validateCategories(schema.Categories, refs)...)
	if schema.Compensation != nil {
		errs = append(errs, validateCompensation(*schema.Compensation, refs)...)
	}
	errs = append(errs, validateEntries("entries", schema.Entries, refs)...)

	return errs
}

// categoryRefs resolves entry and rule references by ID or normalized name.
type categoryRefs struct {
	ids   map[string]bool
	names map[string]bool
}

func newCategoryRefs() *categoryRefs {
	return &categoryRefs{ids: map[string]bool{}, names: map[string]bool{}}
}

func (r *categoryRefs) known(ref string) bool {
	return r.ids[ref] || r.names[domain.NormalizeName(ref)]
}

func validateCategories(cats []CategoryImport, refs *categoryRefs) []error {
	var errs []error

	for i, c := range cats {
		prefix := fmt.Sprintf("categories[%d]", i)

		if c.ID != "" {
			if refs.ids[c.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, c.ID))
			}
			refs.ids[c.ID] = true
		}

		norm := domain.NormalizeName(c.Name)
		switch {
		case c.Name == "":
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		case norm == "":
			errs = append(errs, fmt.Errorf("%s.name %q has no letters or digits", prefix, c.Name))
		case refs.names[norm]:
			errs = append(errs, fmt.Errorf("%s.name: duplicate name %q", prefix, c.Name))
		default:
			refs.names[norm] = true
		}

		errs = append(errs, validateTarget(prefix+".target", c.Target)...)
		if c.Profile != nil {
			errs = append(errs, validateProfile(prefix+".profile", c.Profile)...)
		}
	}

	return errs
}

func validateTarget(prefix string, t TargetImport) []error {
	var errs []error

	if t.Kind == "" {
		return append(errs, fmt.Errorf("%s.kind is required", prefix))
	}
	if !domain.ValidTargetKinds[t.Kind] {
		return append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, t.Kind))
	}

	require := func(field string, v *float64) {
		if v == nil {
			errs = append(errs, fmt.Errorf("%s.%s is required for kind %q", prefix, field, t.Kind))
		}
	}
	switch domain.TargetKind(t.Kind) {
	case domain.TargetExact:
		require("value", t.Value)
		if t.Tolerance != nil && *t.Tolerance < 0 {
			errs = append(errs, fmt.Errorf("%s.tolerance must be >= 0", prefix))
		}
	case domain.TargetAtLeast:
		require("min", t.Min)
	case domain.TargetAtMost:
		require("max", t.Max)
	case domain.TargetRange:
		require("min", t.Min)
		require("max", t.Max)
		if t.Min != nil && t.Max != nil && *t.Min > *t.Max {
			errs = append(errs, fmt.Errorf("%s: min (%s) must be <= max (%s)", prefix,
				domain.FormatAmount(*t.Min), domain.FormatAmount(*t.Max)))
		}
	}

	return errs
}

func validateProfile(prefix string, p *ProfileImport) []error {
	var errs []error

	nonNegative := func(field string, v *float64) {
		if v != nil && *v < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be >= 0", prefix, field))
		}
	}
	positive := func(field string, v *float64) {
		if v != nil && *v <= 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be positive", prefix, field))
		}
	}

	nonNegative("weight", p.Weight)
	nonNegative("under_penalty_per_unit", p.UnderPenalty)
	nonNegative("over_penalty_per_unit", p.OverPenalty)
	positive("under_soft_limit", p.UnderSoftLimit)
	positive("over_soft_limit", p.OverSoftLimit)
	if p.Curve != "" && !domain.ValidCurves[p.Curve] {
		errs = append(errs, fmt.Errorf("%s.curve: invalid value %q", prefix, p.Curve))
	}

	return errs
}

func validateCompensation(rules []CompensationImport, refs *categoryRefs) []error {
	var errs []error

	for i, r := range rules {
		prefix := fmt.Sprintf("compensation[%d]", i)

		if r.From == "" {
			errs = append(errs, fmt.Errorf("%s.from is required", prefix))
		} else if !refs.known(r.From) {
			errs = append(errs, fmt.Errorf("%s.from: unknown category %q", prefix, r.From))
		}
		if r.To == "" {
			errs = append(errs, fmt.Errorf("%s.to is required", prefix))
		} else if !refs.known(r.To) {
			errs = append(errs, fmt.Errorf("%s.to: unknown category %q", prefix, r.To))
		}
		if r.Ratio <= 0 {
			errs = append(errs, fmt.Errorf("%s.ratio must be positive", prefix))
		}
		if r.MaxOffset < 0 {
			errs = append(errs, fmt.Errorf("%s.max_offset must be >= 0", prefix))
		}
	}

	return errs
}

// validateEntries checks entries against the known categories. prefix names
// the source in error messages.
func validateEntries(prefix string, entries []EntryImport, refs *categoryRefs) []error {
	var errs []error

	for i, e := range entries {
		p := fmt.Sprintf("%s[%d]", prefix, i)

		if e.Category == "" {
			errs = append(errs, fmt.Errorf("%s.category is required", p))
		} else if !refs.known(e.Category) {
			errs = append(errs, fmt.Errorf("%s.category: unknown category %q", p, e.Category))
		}

		if e.Portion < 0 {
			errs = append(errs, fmt.Errorf("%s.portion must be >= 0", p))
		} else if !domain.IsValidIncrement(e.Portion) {
			errs = append(errs, fmt.Errorf("%s.portion %v is not a multiple of %s", p, e.Portion, domain.FormatAmount(domain.Increment)))
		}

		if e.LoggedAt == "" && e.Day == "" {
			errs = append(errs, fmt.Errorf("%s: one of logged_at or day is required", p))
		}
		if e.LoggedAt != "" {
			if _, err := time.Parse(time.RFC3339, e.LoggedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.logged_at: invalid timestamp %q (expected RFC 3339)", p, e.LoggedAt))
			}
		}
		if e.Day != "" {
			if _, err := daybound.ParseDayKey(e.Day, time.UTC); err != nil {
				errs = append(errs, fmt.Errorf("%s.day: %w", p, err))
			}
		}
	}

	return errs
}
