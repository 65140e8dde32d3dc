package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrInt(i int) *int           { return &i }
func ptrFloat(f float64) *float64 { return &f }
func ptrBool(b bool) *bool        { return &b }

func validMinimalDataset() *DatasetSchema {
	return &DatasetSchema{
		Categories: []CategoryImport{
			{ID: "veg", Name: "Vegetables", Target: TargetImport{Kind: "at_least", Min: ptrFloat(3)}},
			{Name: "Treats", Target: TargetImport{Kind: "at_most", Max: ptrFloat(1)}},
		},
		Entries: []EntryImport{
			{Category: "veg", Portion: 1.5, Day: "2025-03-15"},
			{Category: "treats", Portion: 0.5, LoggedAt: "2025-03-15T21:00:00Z"},
		},
	}
}

func errorsContain(errs []error, substr string) bool {
	for _, err := range errs {
		if strings.Contains(err.Error(), substr) {
			return true
		}
	}
	return false
}

func TestValidateDataset_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateDataset(validMinimalDataset()))
}

func TestValidateDataset_ValidFull(t *testing.T) {
	rules := []CompensationImport{{From: "Treats", To: "sports", Ratio: 15, MaxOffset: 2}}
	schema := &DatasetSchema{
		Categories: []CategoryImport{
			{ID: "dairy", Name: "Dairy", Enabled: ptrBool(true), SortOrder: ptrInt(2),
				Target: TargetImport{Kind: "exact", Value: ptrFloat(2), Tolerance: ptrFloat(0.25)}},
			{ID: "fruit", Name: "Fruit", Target: TargetImport{Kind: "range", Min: ptrFloat(1), Max: ptrFloat(2)},
				Profile: &ProfileImport{Weight: ptrFloat(2), UnderSoftLimit: ptrFloat(0.5), Curve: "quadratic"}},
			{ID: "treats", Name: "Treats", Target: TargetImport{Kind: "at_most", Max: ptrFloat(1)}},
			{ID: "sports", Name: "Sports", Unit: "min", Target: TargetImport{Kind: "at_least", Min: ptrFloat(30)}},
		},
		Compensation: &rules,
		Entries: []EntryImport{
			{Category: "Fruit", Portion: 1, Day: "2025-03-15", Slot: "breakfast"},
		},
	}
	assert.Empty(t, ValidateDataset(schema))
}

func TestValidateDataset_CategoryErrors(t *testing.T) {
	schema := &DatasetSchema{
		Categories: []CategoryImport{
			{ID: "a", Name: "", Target: TargetImport{Kind: "at_least", Min: ptrFloat(1)}},
			{ID: "a", Name: "Fruit", Target: TargetImport{Kind: "between"}},
			{Name: "FRUIT", Target: TargetImport{}},
			{Name: "!!!", Target: TargetImport{Kind: "range", Min: ptrFloat(3), Max: ptrFloat(1)}},
			{Name: "Dairy", Target: TargetImport{Kind: "exact", Tolerance: ptrFloat(-1)}},
		},
	}

	errs := ValidateDataset(schema)
	assert.True(t, errorsContain(errs, "categories[0].name is required"))
	assert.True(t, errorsContain(errs, `categories[1].id: duplicate id "a"`))
	assert.True(t, errorsContain(errs, `categories[1].target.kind: invalid value "between"`))
	assert.True(t, errorsContain(errs, `categories[2].name: duplicate name "FRUIT"`))
	assert.True(t, errorsContain(errs, "categories[2].target.kind is required"))
	assert.True(t, errorsContain(errs, "has no letters or digits"))
	assert.True(t, errorsContain(errs, "categories[3].target: min (3) must be <= max (1)"))
	assert.True(t, errorsContain(errs, "categories[4].target.value is required"))
	assert.True(t, errorsContain(errs, "categories[4].target.tolerance must be >= 0"))
}

func TestValidateDataset_ProfileErrors(t *testing.T) {
	schema := validMinimalDataset()
	schema.Categories[0].Profile = &ProfileImport{
		Weight:         ptrFloat(-1),
		OverPenalty:    ptrFloat(-0.5),
		UnderSoftLimit: ptrFloat(0),
		Curve:          "cubic",
	}

	errs := ValidateDataset(schema)
	assert.Len(t, errs, 4)
	assert.True(t, errorsContain(errs, "profile.weight must be >= 0"))
	assert.True(t, errorsContain(errs, "profile.over_penalty_per_unit must be >= 0"))
	assert.True(t, errorsContain(errs, "profile.under_soft_limit must be positive"))
	assert.True(t, errorsContain(errs, `profile.curve: invalid value "cubic"`))
}

func TestValidateDataset_CompensationErrors(t *testing.T) {
	schema := validMinimalDataset()
	rules := []CompensationImport{
		{From: "treats", To: "ghost", Ratio: 0, MaxOffset: -1},
		{From: "", To: "veg", Ratio: 1},
	}
	schema.Compensation = &rules

	errs := ValidateDataset(schema)
	assert.True(t, errorsContain(errs, `compensation[0].to: unknown category "ghost"`))
	assert.True(t, errorsContain(errs, "compensation[0].ratio must be positive"))
	assert.True(t, errorsContain(errs, "compensation[0].max_offset must be >= 0"))
	assert.True(t, errorsContain(errs, "compensation[1].from is required"))
}

func TestValidateDataset_EntryErrors(t *testing.T) {
	schema := validMinimalDataset()
	schema.Entries = []EntryImport{
		{Category: "nuts", Portion: 1, Day: "2025-03-15"},
		{Category: "veg", Portion: -1, Day: "2025-03-15"},
		{Category: "veg", Portion: 0.25, Day: "2025-03-15"},
		{Category: "veg", Portion: 1},
		{Category: "veg", Portion: 1, LoggedAt: "yesterday"},
		{Category: "veg", Portion: 1, Day: "15/03/2025"},
	}

	errs := ValidateDataset(schema)
	assert.True(t, errorsContain(errs, `entries[0].category: unknown category "nuts"`))
	assert.True(t, errorsContain(errs, "entries[1].portion must be >= 0"))
	assert.True(t, errorsContain(errs, "entries[2].portion 0.25 is not a multiple of 0.1"))
	assert.True(t, errorsContain(errs, "entries[3]: one of logged_at or day is required"))
	assert.True(t, errorsContain(errs, `entries[4].logged_at: invalid timestamp "yesterday"`))
	assert.True(t, errorsContain(errs, "entries[5].day: invalid day key"))
}
