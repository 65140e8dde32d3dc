package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/portions/internal/daybound"
	"github.com/alexanderramin/portions/internal/domain"
	"github.com/google/uuid"
)

var testSortOrderCounter atomic.Int64

// Category options
type CategoryOption func(*domain.Category)

func WithCategoryID(id string) CategoryOption {
	return func(c *domain.Category) {
		c.ID = id
	}
}

func WithDisabled() CategoryOption {
	return func(c *domain.Category) {
		c.Enabled = false
	}
}

func WithUnit(u string) CategoryOption {
	return func(c *domain.Category) {
		c.Unit = u
	}
}

func NewTestCategory(name string, target domain.TargetRule, opts ...CategoryOption) domain.Category {
	c := domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Unit:      "portion",
		Enabled:   true,
		Target:    target,
		SortOrder: int(testSortOrderCounter.Add(1)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogEntry options
type EntryOption func(*domain.LogEntry)

func WithSlot(slot string) EntryOption {
	return func(e *domain.LogEntry) {
		e.SlotID = slot
	}
}

func WithLoggedAt(t time.Time, cutoffMinutes int) EntryOption {
	return func(e *domain.LogEntry) {
		e.LoggedAt = t
		e.DayKey = daybound.DayKey(t, cutoffMinutes)
	}
}

func NewTestEntry(categoryID string, amount float64, dayKey string, opts ...EntryOption) domain.LogEntry {
	e := domain.LogEntry{
		ID:         uuid.New().String(),
		CategoryID: categoryID,
		Portion:    domain.NewPortion(amount),
		DayKey:     dayKey,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// DefaultCategorySet mirrors the nine categories a fresh install starts with.
func DefaultCategorySet() []domain.Category {
	return []domain.Category{
		NewTestCategory("Drinks", domain.AtLeast{Min: 6}, WithUnit("glass")),
		NewTestCategory("Vegetables", domain.AtLeast{Min: 3}),
		NewTestCategory("Fruit", domain.Range{Min: 1, Max: 2}),
		NewTestCategory("Starchy Sides", domain.Range{Min: 2, Max: 4}),
		NewTestCategory("Protein", domain.Range{Min: 1, Max: 2}),
		NewTestCategory("Dairy", domain.Exact{Target: 2, Tolerance: domain.DefaultExactTolerance}),
		NewTestCategory("Fats", domain.AtMost{Max: 2}),
		NewTestCategory("Treats", domain.AtMost{Max: 1}),
		NewTestCategory("Sports", domain.AtLeast{Min: 30}, WithUnit("min")),
	}
}
