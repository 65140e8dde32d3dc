package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alexanderramin/portions/internal/domain"
	"github.com/alexanderramin/portions/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTotalsByCategory_Sums(t *testing.T) {
	entries := []domain.LogEntry{
		testutil.NewTestEntry("veg", 1.0, "2025-03-15"),
		testutil.NewTestEntry("veg", 0.5, "2025-03-15"),
		testutil.NewTestEntry("fruit", 1.2, "2025-03-15"),
	}

	totals := TotalsByCategory(entries)
	assert.Equal(t, 1.5, totals["veg"])
	assert.Equal(t, domain.NewPortion(1.2).Value(), totals["fruit"])
	_, ok := totals["treats"]
	assert.False(t, ok)
}

func TestTotalsByCategory_Empty(t *testing.T) {
	assert.Empty(t, TotalsByCategory(nil))
}

func TestTotalsByCategory_DecimalSumIsExact(t *testing.T) {
	entries := []domain.LogEntry{
		testutil.NewTestEntry("a", 0.1, ""),
		testutil.NewTestEntry("a", 0.2, ""),
	}
	assert.Equal(t, domain.NewPortion(0.3).Value(), TotalsByCategory(entries)["a"])
}

func TestTotalsByCategory_OutOfRangePortions(t *testing.T) {
	entries := []domain.LogEntry{
		testutil.NewTestEntry("big", 1e19, ""),
		testutil.NewTestEntry("big", 1, ""),
		testutil.NewTestEntry("nan", math.NaN(), ""),
		testutil.NewTestEntry("nan", math.NaN(), ""),
	}
	totals := TotalsByCategory(entries)
	assert.Greater(t, totals["big"], 0.0)
	assert.InEpsilon(t, 1e19, totals["big"], 1e-9)
	assert.True(t, math.IsNaN(totals["nan"]))
}

// TestTotalsByCategory_OrderIndependent checks that every shuffle of the same
// entries produces bit-identical totals.
func TestTotalsByCategory_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d"}

	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(40) + 1
		entries := make([]domain.LogEntry, n)
		for i := range entries {
			entries[i] = testutil.NewTestEntry(ids[rng.Intn(len(ids))], float64(rng.Intn(50))/10, "2025-01-01")
		}
		want := TotalsByCategory(entries)

		for shuffle := 0; shuffle < 5; shuffle++ {
			rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
			assert.Equal(t, want, TotalsByCategory(entries), "trial %d", trial)
		}
	}
}

func TestTotalsByDay_InclusiveRange(t *testing.T) {
	entries := []domain.LogEntry{
		testutil.NewTestEntry("veg", 1, "2025-03-09"),
		testutil.NewTestEntry("veg", 1, "2025-03-10"),
		testutil.NewTestEntry("veg", 2, "2025-03-10"),
		testutil.NewTestEntry("fruit", 1, "2025-03-12"),
		testutil.NewTestEntry("veg", 5, "2025-03-13"),
	}

	byDay := TotalsByDay(entries, "2025-03-10", "2025-03-12")
	assert.Len(t, byDay, 2)
	assert.Equal(t, 3.0, byDay["2025-03-10"]["veg"])
	assert.Equal(t, 1.0, byDay["2025-03-12"]["fruit"])
	assert.NotContains(t, byDay, "2025-03-09")
	assert.NotContains(t, byDay, "2025-03-13")
}
