package scoring

import (
	"math"

	"github.com/alexanderramin/portions/internal/domain"
)

// ProfileTemplate is the recipe for a default ScoreProfile. Soft limits are
// derived from the category's preferred range, scaled by the multipliers and
// floored at MinSoftLimit.
type ProfileTemplate struct {
	Weight          float64
	UnderPenalty    float64
	OverPenalty     float64
	UnderMultiplier float64
	OverMultiplier  float64
	MinSoftLimit    float64
	Curve           domain.Curve
	CapOverAtTarget bool
}

// TemplateSet maps normalized category names to templates, with Generic used
// for everything else.
type TemplateSet struct {
	Named   map[string]ProfileTemplate
	Generic ProfileTemplate
}

// GenericTemplate is the fallback for categories without a named template.
func GenericTemplate() ProfileTemplate {
	return ProfileTemplate{
		Weight:          1.0,
		UnderPenalty:    1.0,
		OverPenalty:     1.0,
		UnderMultiplier: 0.5,
		OverMultiplier:  0.5,
		MinSoftLimit:    0.5,
		Curve:           domain.CurveLinear,
	}
}

// DefaultTemplates returns a fresh copy of the built-in templates for the
// default category set.
func DefaultTemplates() TemplateSet {
	return TemplateSet{
		Named: map[string]ProfileTemplate{
			"drinks": {
				Weight: 1.0, UnderPenalty: 1.0, OverPenalty: 0.2,
				UnderMultiplier: 0.5, OverMultiplier: 1.0, MinSoftLimit: 1.0,
				Curve: domain.CurveLinear, CapOverAtTarget: true,
			},
			"vegetables": {
				Weight: 1.5, UnderPenalty: 1.2, OverPenalty: 0.2,
				UnderMultiplier: 0.5, OverMultiplier: 1.0, MinSoftLimit: 0.5,
				Curve: domain.CurveLinear, CapOverAtTarget: true,
			},
			"fruit": {
				Weight: 1.0, UnderPenalty: 1.0, OverPenalty: 0.6,
				UnderMultiplier: 0.5, OverMultiplier: 0.5, MinSoftLimit: 0.5,
				Curve: domain.CurveLinear,
			},
			"starchysides": {
				Weight: 1.0, UnderPenalty: 0.8, OverPenalty: 1.0,
				UnderMultiplier: 0.5, OverMultiplier: 0.5, MinSoftLimit: 0.5,
				Curve: domain.CurveLinear,
			},
			"protein": {
				Weight: 1.2, UnderPenalty: 1.0, OverPenalty: 0.6,
				UnderMultiplier: 0.5, OverMultiplier: 0.5, MinSoftLimit: 0.5,
				Curve: domain.CurveLinear,
			},
			"dairy": {
				Weight: 0.8, UnderPenalty: 0.8, OverPenalty: 0.6,
				UnderMultiplier: 0.5, OverMultiplier: 0.5, MinSoftLimit: 0.5,
				Curve: domain.CurveLinear,
			},
			"fats": {
				Weight: 0.8, UnderPenalty: 0.5, OverPenalty: 1.2,
				UnderMultiplier: 0.5, OverMultiplier: 0.5, MinSoftLimit: 0.5,
				Curve: domain.CurveQuadratic,
			},
			"treats": {
				Weight: 1.2, UnderPenalty: 0, OverPenalty: 1.5,
				UnderMultiplier: 1.0, OverMultiplier: 1.0, MinSoftLimit: 0.5,
				Curve: domain.CurveQuadratic,
			},
			"sports": {
				Weight: 1.0, UnderPenalty: 1.0, OverPenalty: 0,
				UnderMultiplier: 0.5, OverMultiplier: 1.0, MinSoftLimit: 5.0,
				Curve: domain.CurveLinear, CapOverAtTarget: true,
			},
		},
		Generic: GenericTemplate(),
	}
}

// Template returns the template for a category name and whether it was a
// named match.
func (s TemplateSet) Template(name string) (ProfileTemplate, bool) {
	if t, ok := s.Named[domain.NormalizeName(name)]; ok {
		return t, true
	}
	return s.Generic, false
}

// ProfileFor derives the default score profile for a category.
func (s TemplateSet) ProfileFor(c domain.Category) domain.ScoreProfile {
	t, _ := s.Template(c.Name)
	pref := ruleFor(c).PreferredRange()

	underRef := 1.0
	if pref.HasMin() {
		underRef = math.Abs(pref.Min)
	}
	overRef := 1.0
	if pref.HasMax() {
		overRef = math.Abs(pref.Max)
	}

	return domain.ScoreProfile{
		Weight:              t.Weight,
		UnderPenaltyPerUnit: t.UnderPenalty,
		OverPenaltyPerUnit:  t.OverPenalty,
		UnderSoftLimit:      math.Max(t.MinSoftLimit, underRef*t.UnderMultiplier),
		OverSoftLimit:       math.Max(t.MinSoftLimit, overRef*t.OverMultiplier),
		Curve:               t.Curve,
		CapOverAtTarget:     t.CapOverAtTarget,
	}
}
