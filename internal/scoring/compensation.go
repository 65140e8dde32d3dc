package scoring

import (
	"math"

	"github.com/alexanderramin/portions/internal/domain"
)

const (
	defaultCompensationFrom   = "treats"
	defaultCompensationTo     = "sports"
	defaultCompensationRatio  = 15.0
	defaultCompensationOffset = 2.0
)

// DefaultCompensationRules lets sports surplus forgive treats overage when
// both categories exist. Returns nil otherwise.
func DefaultCompensationRules(categories []domain.Category) []domain.CompensationRule {
	var fromID, toID string
	for _, c := range categories {
		switch domain.NormalizeName(c.Name) {
		case defaultCompensationFrom:
			if fromID == "" {
				fromID = c.ID
			}
		case defaultCompensationTo:
			if toID == "" {
				toID = c.ID
			}
		}
	}
	if fromID == "" || toID == "" {
		return nil
	}
	return []domain.CompensationRule{{
		FromCategoryID: fromID,
		ToCategoryID:   toID,
		Ratio:          defaultCompensationRatio,
		MaxOffset:      defaultCompensationOffset,
	}}
}

// Offset records one applied compensation.
type Offset struct {
	FromCategoryID string
	ToCategoryID   string
	Amount         float64
}

// ApplyCompensation folds rules over a copy of totals, in order, so each rule
// sees the adjustments of the ones before it. Only the forgiven category's
// total changes. Rules naming unknown categories, with a non-positive ratio,
// or with nothing to offset are skipped.
func ApplyCompensation(categories []domain.Category, totals map[string]float64, rules []domain.CompensationRule) (map[string]float64, []Offset) {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	adjusted := copyTotals(totals)
	var applied []Offset
	for _, rule := range rules {
		from, okFrom := byID[rule.FromCategoryID]
		to, okTo := byID[rule.ToCategoryID]
		if !okFrom || !okTo || !(rule.Ratio > 0) {
			continue
		}

		overage := ruleFor(from).OverageAmount(adjusted[from.ID])
		if !(overage > 0) {
			continue
		}
		surplus := ruleFor(to).SurplusAmount(adjusted[to.ID])
		if !(surplus > 0) {
			continue
		}
		offset := math.Min(overage, math.Min(surplus/rule.Ratio, rule.MaxOffset))
		if !(offset > 0) {
			continue
		}

		adjusted[from.ID] = adjusted[from.ID] - offset
		applied = append(applied, Offset{
			FromCategoryID: from.ID,
			ToCategoryID:   to.ID,
			Amount:         offset,
		})
	}
	return adjusted, applied
}
