package scoring

import (
	"math"

	"github.com/alexanderramin/portions/internal/domain"
)

const (
	maxScore      = 100.0
	softLimitBase = 50.0
	// minSoftLimit keeps a zero soft limit from dividing by zero.
	minSoftLimit = 0.0001
)

type ScoreReasonCode string

const (
	ReasonWithinRange ScoreReasonCode = "WITHIN_RANGE"
	ReasonOverCapped  ScoreReasonCode = "OVER_CAPPED"
	ReasonUnder       ScoreReasonCode = "UNDER_TARGET"
	ReasonOver        ScoreReasonCode = "OVER_TARGET"
)

type ScoreInput struct {
	Categories []domain.Category
	Totals     map[string]float64
	// Profiles overrides the template-derived profile per category ID.
	Profiles map[string]domain.ScoreProfile
	Rules    domain.CompensationRules
}

type CategoryScore struct {
	CategoryID    string
	Score         float64
	RawTotal      float64
	AdjustedTotal float64
	Reason        ScoreReasonCode
	// Deviation is the distance outside the preferred range, 0 when inside.
	Deviation float64
}

type DailyScore struct {
	Overall    float64
	Categories []CategoryScore
	Offsets    []Offset
}

// Evaluator computes weighted daily scores. It holds only read-only
// configuration and is safe for concurrent use.
type Evaluator struct {
	templates TemplateSet
}

func NewEvaluator(templates TemplateSet) *Evaluator {
	return &Evaluator{templates: templates}
}

// DefaultEvaluator uses the built-in templates.
func DefaultEvaluator() *Evaluator {
	return NewEvaluator(DefaultTemplates())
}

// Templates returns the evaluator's template set.
func (e *Evaluator) Templates() TemplateSet {
	return e.templates
}

// Profile resolves the score profile for a category: the override when
// present, otherwise the template default.
func (e *Evaluator) Profile(c domain.Category, overrides map[string]domain.ScoreProfile) domain.ScoreProfile {
	if p, ok := overrides[c.ID]; ok {
		return p
	}
	return e.templates.ProfileFor(c)
}

// Evaluate scores a day. Only enabled categories participate; with none the
// overall score is 0. The caller's totals are never modified.
func (e *Evaluator) Evaluate(input ScoreInput) DailyScore {
	enabled := domain.EnabledCategories(input.Categories)
	if len(enabled) == 0 {
		return DailyScore{Overall: 0, Categories: []CategoryScore{}}
	}

	rules := input.Rules.Resolve(func() []domain.CompensationRule {
		return DefaultCompensationRules(enabled)
	})
	adjusted, offsets := ApplyCompensation(enabled, input.Totals, rules)

	result := DailyScore{
		Categories: make([]CategoryScore, 0, len(enabled)),
		Offsets:    offsets,
	}
	var weighted, weightSum, plainSum float64
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range enabled {
		profile := e.Profile(c, input.Profiles)
		cs := scoreCategory(ruleFor(c), profile, adjusted[c.ID])
		cs.CategoryID = c.ID
		cs.RawTotal = input.Totals[c.ID]
		result.Categories = append(result.Categories, cs)

		w := math.Max(0, profile.Weight)
		weighted += cs.Score * w
		weightSum += w
		plainSum += cs.Score
		lo, hi = math.Min(lo, cs.Score), math.Max(hi, cs.Score)
	}

	// Uniform scores skip the division so rounding cannot nudge them.
	switch {
	case lo == hi:
		result.Overall = clampScore(lo)
	case weightSum > 0:
		result.Overall = clampScore(weighted / weightSum)
	default:
		result.Overall = clampScore(plainSum / float64(len(enabled)))
	}
	return result
}

func scoreCategory(rule domain.TargetRule, profile domain.ScoreProfile, total float64) CategoryScore {
	cs := CategoryScore{AdjustedTotal: total}
	pref := rule.PreferredRange()

	switch {
	case pref.Contains(total):
		cs.Score = maxScore
		cs.Reason = ReasonWithinRange
	case total > pref.Max:
		cs.Deviation = total - pref.Max
		if profile.CapOverAtTarget {
			cs.Score = maxScore
			cs.Reason = ReasonOverCapped
			return cs
		}
		cs.Reason = ReasonOver
		cs.Score = penalize(cs.Deviation, profile.OverSoftLimit, profile.OverPenaltyPerUnit, profile.Curve)
	case total < pref.Min:
		cs.Deviation = pref.Min - total
		cs.Reason = ReasonUnder
		cs.Score = penalize(cs.Deviation, profile.UnderSoftLimit, profile.UnderPenaltyPerUnit, profile.Curve)
	default:
		// NaN totals fall outside every comparison.
		cs.Reason = ReasonUnder
		cs.Score = 0
	}
	return cs
}

func penalize(deviation, softLimit, rate float64, curve domain.Curve) float64 {
	limit := math.Max(softLimit, minSoftLimit)
	penalty := softLimitBase * curve.Apply(deviation/limit) * rate
	return clampScore(maxScore - penalty)
}

// clampScore bounds a score to [0, 100]. NaN becomes 0.
func clampScore(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return math.Min(v, maxScore)
}
