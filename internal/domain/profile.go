package domain

// ScoreProfile controls how a category's deviation from its preferred range
// turns into a 0-100 score.
type ScoreProfile struct {
	Weight              float64
	UnderPenaltyPerUnit float64
	OverPenaltyPerUnit  float64
	// Soft limits are the deviation at which the unscaled penalty reaches 50.
	UnderSoftLimit  float64
	OverSoftLimit   float64
	Curve           Curve
	CapOverAtTarget bool
}

// Apply maps a ratio of deviation to soft limit onto the curve.
func (c Curve) Apply(r float64) float64 {
	switch c {
	case CurveQuadratic:
		return r * r
	default:
		return r
	}
}
