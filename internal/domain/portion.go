package domain

import "math"

// Increment is the rounding step every stored portion sits on.
const Increment = 0.1

// maxExactSteps bounds the step counts that both int64 addition and the
// conversion back to float64 keep exact.
const maxExactSteps = 1 << 53

// incrementEpsilon is how far raw/Increment may sit from an integer and still
// count as on-increment.
const incrementEpsilon = 1e-6

// Portion is a quantity of food or activity quantized to Increment.
// The zero value is a valid zero portion.
type Portion struct {
	value float64
}

// NewPortion quantizes raw to the nearest multiple of Increment. It never
// fails: negative and NaN inputs quantize deterministically, so callers that
// must reject them should check before constructing.
func NewPortion(raw float64) Portion {
	return Portion{value: quantize(raw)}
}

// IsValidIncrement reports whether raw already sits on an Increment boundary.
func IsValidIncrement(raw float64) bool {
	scaled := raw / Increment
	return math.Abs(math.Round(scaled)-scaled) < incrementEpsilon
}

// Value returns the quantized amount.
func (p Portion) Value() float64 {
	return p.value
}

// Steps returns the portion as a whole number of increments. The count is
// only meaningful when ExactSteps reports true.
func (p Portion) Steps() int64 {
	return int64(math.Round(p.value / Increment))
}

// ExactSteps reports whether the portion fits in a step count without loss.
// NaN, infinite and very large portions do not.
func (p Portion) ExactSteps() bool {
	return math.Abs(math.Round(p.value/Increment)) <= maxExactSteps
}

// Compare orders portions by value: -1 if p < other, 1 if p > other, 0 otherwise.
func (p Portion) Compare(other Portion) int {
	switch {
	case p.value < other.value:
		return -1
	case p.value > other.value:
		return 1
	default:
		return 0
	}
}

// Add returns the quantized sum of two portions.
func (p Portion) Add(other Portion) Portion {
	var sum PortionSum
	sum.Add(p)
	sum.Add(other)
	return sum.Portion()
}

// FromSteps converts a count of increments back into a Portion.
func FromSteps(steps int64) Portion {
	return Portion{value: quantize(float64(steps) * Increment)}
}

func quantize(raw float64) float64 {
	return math.Round(raw/Increment) * Increment
}

// PortionSum accumulates portions in whole increments, so the result does
// not depend on the order of additions. Once a portion or the running count
// leaves the exact step range it falls back to float addition, which keeps
// the magnitude and propagates NaN. The zero value is an empty sum.
type PortionSum struct {
	steps   int64
	value   float64
	inexact bool
}

// Add adds p to the sum.
func (s *PortionSum) Add(p Portion) {
	if !s.inexact {
		if p.ExactSteps() {
			if next := s.steps + p.Steps(); next >= -maxExactSteps && next <= maxExactSteps {
				s.steps = next
				return
			}
		}
		s.inexact = true
		s.value = FromSteps(s.steps).value
	}
	s.value += p.value
}

// Portion returns the quantized total.
func (s PortionSum) Portion() Portion {
	if s.inexact {
		return NewPortion(s.value)
	}
	return FromSteps(s.steps)
}
