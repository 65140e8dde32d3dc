package scoring

import (
	"math"

	"github.com/alexanderramin/portions/internal/domain"
)

type CategoryAdherence struct {
	CategoryID string
	TargetMet  bool
	Total      float64
}

type AdherenceSummary struct {
	Categories []CategoryAdherence
	// AllTargetsMet is true when every enabled category met its target,
	// including when there are none.
	AllTargetsMet bool
}

// MetCount returns how many categories met their target.
func (s AdherenceSummary) MetCount() int {
	n := 0
	for _, c := range s.Categories {
		if c.TargetMet {
			n++
		}
	}
	return n
}

// EvaluateAdherence checks each enabled category's total against its target
// rule. Missing totals count as zero. Output follows the input order.
func EvaluateAdherence(categories []domain.Category, totals map[string]float64) AdherenceSummary {
	summary := AdherenceSummary{AllTargetsMet: true}
	for _, c := range domain.EnabledCategories(categories) {
		total := totals[c.ID]
		met := ruleFor(c).IsSatisfied(total)
		summary.Categories = append(summary.Categories, CategoryAdherence{
			CategoryID: c.ID,
			TargetMet:  met,
			Total:      total,
		})
		summary.AllTargetsMet = summary.AllTargetsMet && met
	}
	return summary
}

// ruleFor returns the category's rule, or an unbounded range when none is set.
func ruleFor(c domain.Category) domain.TargetRule {
	if c.Target == nil {
		return domain.Range{Min: math.Inf(-1), Max: math.Inf(1)}
	}
	return c.Target
}
