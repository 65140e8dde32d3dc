package domain

type TargetKind string

const (
	TargetExact   TargetKind = "exact"
	TargetAtLeast TargetKind = "at_least"
	TargetAtMost  TargetKind = "at_most"
	TargetRange   TargetKind = "range"
)

// AllTargetKinds is the canonical, closed set of target kinds.
var AllTargetKinds = []TargetKind{TargetExact, TargetAtLeast, TargetAtMost, TargetRange}

// ValidTargetKinds is the set of accepted target kind strings.
var ValidTargetKinds = map[string]bool{
	"exact": true, "at_least": true, "at_most": true, "range": true,
}

type Curve string

const (
	CurveLinear    Curve = "linear"
	CurveQuadratic Curve = "quadratic"
)

// ValidCurves is the set of accepted penalty curve strings.
var ValidCurves = map[string]bool{
	"linear": true, "quadratic": true,
}
