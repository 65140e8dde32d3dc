package domain

import (
	"fmt"
	"math"
)

// DefaultExactTolerance is the tolerance applied to exact targets when a
// configuration does not name one.
const DefaultExactTolerance = 0.1

// toleranceEpsilon widens the exact band so that a total sitting on
// target±tolerance in decimal still counts as met and scores in range.
const toleranceEpsilon = 1e-9

// Bounds is a closed numeric interval. Open ends are math.Inf(-1) / math.Inf(1).
type Bounds struct {
	Min float64
	Max float64
}

// HasMin reports whether the lower bound is finite.
func (b Bounds) HasMin() bool { return !math.IsInf(b.Min, -1) }

// HasMax reports whether the upper bound is finite.
func (b Bounds) HasMax() bool { return !math.IsInf(b.Max, 1) }

// Contains reports whether v lies within the bounds, inclusive on both ends.
// NaN is never contained.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// TargetRule decides whether a daily total meets a category's target.
// The set of implementations is closed: Exact, AtLeast, AtMost and Range.
type TargetRule interface {
	Kind() TargetKind
	// IsSatisfied reports whether total meets the rule. NaN never does.
	IsSatisfied(total float64) bool
	// PreferredRange is the band scoring treats as a perfect day.
	PreferredRange() Bounds
	// OverageAmount is how far total sits above the preferred range.
	OverageAmount(total float64) float64
	// SurplusAmount is how much of total can be donated to offset another
	// category's overage.
	SurplusAmount(total float64) float64
	String() string

	sealedTargetRule()
}

// Exact is met when the total lies within Tolerance of Target.
type Exact struct {
	Target    float64
	Tolerance float64
}

// AtLeast is met when the total reaches Min.
type AtLeast struct {
	Min float64
}

// AtMost is met when the total does not exceed Max.
type AtMost struct {
	Max float64
}

// Range is met when the total lies within [Min, Max].
type Range struct {
	Min float64
	Max float64
}

func (Exact) Kind() TargetKind   { return TargetExact }
func (AtLeast) Kind() TargetKind { return TargetAtLeast }
func (AtMost) Kind() TargetKind  { return TargetAtMost }
func (Range) Kind() TargetKind   { return TargetRange }

func (Exact) sealedTargetRule()   {}
func (AtLeast) sealedTargetRule() {}
func (AtMost) sealedTargetRule()  {}
func (Range) sealedTargetRule()   {}

func (r Exact) IsSatisfied(total float64) bool {
	return r.PreferredRange().Contains(total)
}

func (r AtLeast) IsSatisfied(total float64) bool { return total >= r.Min }
func (r AtMost) IsSatisfied(total float64) bool  { return total <= r.Max }

func (r Range) IsSatisfied(total float64) bool {
	return total >= r.Min && total <= r.Max
}

// PreferredRange for Exact is target±tolerance, widened by toleranceEpsilon.
// IsSatisfied reads the same band, so a met total always scores in range.
func (r Exact) PreferredRange() Bounds {
	tol := r.tolerance() + toleranceEpsilon
	return Bounds{Min: r.Target - tol, Max: r.Target + tol}
}

func (r AtLeast) PreferredRange() Bounds {
	return Bounds{Min: r.Min, Max: math.Inf(1)}
}

func (r AtMost) PreferredRange() Bounds {
	return Bounds{Min: math.Inf(-1), Max: r.Max}
}

func (r Range) PreferredRange() Bounds {
	return Bounds{Min: r.Min, Max: r.Max}
}

func (r Exact) OverageAmount(total float64) float64   { return overageAbove(r.PreferredRange(), total) }
func (r AtLeast) OverageAmount(total float64) float64 { return overageAbove(r.PreferredRange(), total) }
func (r AtMost) OverageAmount(total float64) float64  { return overageAbove(r.PreferredRange(), total) }
func (r Range) OverageAmount(total float64) float64   { return overageAbove(r.PreferredRange(), total) }

// SurplusAmount for AtLeast measures against the floor, since there is no
// upper bound to exceed.
func (r AtLeast) SurplusAmount(total float64) float64 { return positive(total - r.Min) }

func (r Exact) SurplusAmount(total float64) float64  { return overageAbove(r.PreferredRange(), total) }
func (r AtMost) SurplusAmount(total float64) float64 { return overageAbove(r.PreferredRange(), total) }
func (r Range) SurplusAmount(total float64) float64  { return overageAbove(r.PreferredRange(), total) }

func (r Exact) String() string {
	return fmt.Sprintf("exactly %s (±%s)", FormatAmount(r.Target), FormatAmount(r.tolerance()))
}
func (r AtLeast) String() string { return "at least " + FormatAmount(r.Min) }
func (r AtMost) String() string  { return "at most " + FormatAmount(r.Max) }
func (r Range) String() string {
	return fmt.Sprintf("%s to %s", FormatAmount(r.Min), FormatAmount(r.Max))
}

// A negative tolerance would invert the preferred range; treat it as zero.
func (r Exact) tolerance() float64 {
	if r.Tolerance < 0 {
		return 0
	}
	return r.Tolerance
}

func overageAbove(b Bounds, total float64) float64 {
	if !b.HasMax() {
		return 0
	}
	return positive(total - b.Max)
}

// positive returns v when it is strictly positive, else 0. NaN maps to 0.
func positive(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

// FormatAmount renders an amount with at most one decimal place.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// NewTargetRule builds a rule from its kind and parameters. a is the target,
// floor or ceiling; b is the range ceiling and is ignored by the other kinds.
func NewTargetRule(kind TargetKind, a, b, tolerance float64) (TargetRule, error) {
	switch kind {
	case TargetExact:
		return Exact{Target: a, Tolerance: tolerance}, nil
	case TargetAtLeast:
		return AtLeast{Min: a}, nil
	case TargetAtMost:
		return AtMost{Max: a}, nil
	case TargetRange:
		if a > b {
			return nil, fmt.Errorf("range min %s exceeds max %s", FormatAmount(a), FormatAmount(b))
		}
		return Range{Min: a, Max: b}, nil
	default:
		return nil, fmt.Errorf("unknown target kind %q", kind)
	}
}
