package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "starchysides", NormalizeName("Starchy Sides"))
	assert.Equal(t, "treats", NormalizeName("  TREATS! "))
	assert.Equal(t, "vegetables", NormalizeName("Vegetables 🥦"))
	assert.Equal(t, "caf", NormalizeName("Café"))
	assert.Equal(t, "", NormalizeName("---"))
}

func TestEnabledCategories_KeepsOrder(t *testing.T) {
	cats := []Category{
		{ID: "c", Enabled: true},
		{ID: "a", Enabled: false},
		{ID: "b", Enabled: true},
	}
	got := EnabledCategories(cats)
	assert.Equal(t, []string{"c", "b"}, []string{got[0].ID, got[1].ID})
}

func TestCurveApply(t *testing.T) {
	assert.Equal(t, 0.5, CurveLinear.Apply(0.5))
	assert.Equal(t, 0.25, CurveQuadratic.Apply(0.5))
	assert.Equal(t, 2.0, Curve("").Apply(2.0))
}
