package domain

// CompensationRule lets surplus in ToCategoryID forgive overage in
// FromCategoryID. Ratio is units of surplus consumed per unit of overage
// forgiven; MaxOffset caps the forgiven overage.
type CompensationRule struct {
	FromCategoryID string
	ToCategoryID   string
	Ratio          float64
	MaxOffset      float64
}

// CompensationRules distinguishes "use the default rules" from an explicit
// list, which may be empty to disable compensation. The zero value is
// unspecified.
type CompensationRules struct {
	explicit bool
	rules    []CompensationRule
}

// UnspecifiedRules asks the evaluator to derive its default rule set.
func UnspecifiedRules() CompensationRules {
	return CompensationRules{}
}

// ExplicitRules pins the rule list. ExplicitRules() disables compensation.
func ExplicitRules(rules ...CompensationRule) CompensationRules {
	cp := make([]CompensationRule, len(rules))
	copy(cp, rules)
	return CompensationRules{explicit: true, rules: cp}
}

// Explicit reports whether a rule list was supplied.
func (c CompensationRules) Explicit() bool {
	return c.explicit
}

// Rules returns a copy of the explicit list, or nil when unspecified.
func (c CompensationRules) Rules() []CompensationRule {
	if !c.explicit {
		return nil
	}
	cp := make([]CompensationRule, len(c.rules))
	copy(cp, c.rules)
	return cp
}

// Resolve returns the explicit rules, or the result of defaults when unspecified.
func (c CompensationRules) Resolve(defaults func() []CompensationRule) []CompensationRule {
	if c.explicit {
		return c.Rules()
	}
	if defaults == nil {
		return nil
	}
	return defaults()
}
