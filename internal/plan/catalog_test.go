package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("has exactly one canonical monthly unit", func(t *testing.T) {
		count := 0
		for _, pd := range Durations() {
			if pd.Multiplier == 1.0 {
				count++
				assert.Equal(t, DurationMonthly, pd.Key)
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("all entries have positive day lengths and multipliers", func(t *testing.T) {
		for _, pd := range Durations() {
			assert.Greater(t, pd.Days, 0, "duration %s", pd.Key)
			assert.Greater(t, pd.Multiplier, 0.0, "duration %s", pd.Key)
		}
	})

	t.Run("lookup by key", func(t *testing.T) {
		pd, ok := Lookup(DurationWeekly)
		require.True(t, ok)
		assert.Equal(t, 7, pd.Days)
		assert.Equal(t, 0.25, pd.Multiplier)

		_, ok = Lookup("biweekly")
		assert.False(t, ok)
	})

	t.Run("must lookup panics on unknown key", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLookup("forever")
		})
	})
}

func TestProratedPrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		key       Duration
		want      float64
	}{
		{"weekly quarter of base", 1200, DurationWeekly, 300},
		{"fifteen day half of base", 1200, DurationFifteenDay, 600},
		{"monthly is identity", 1200, DurationMonthly, 1200},
		{"zero base price", 0, DurationWeekly, 0},
		{"rounds to minor unit", 999.99, DurationWeekly, 250},
		{"unknown key falls back to base price", 1200, "yearly", 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProratedPrice(tt.basePrice, tt.key))
		})
	}
}
