package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnusedValue(t *testing.T) {
	t.Run("monthly plan with ten days left", func(t *testing.T) {
		// 1200 over 30 days leaves 40 per day
		assert.Equal(t, 400.0, UnusedValue(1200, 30, 10))
	})

	t.Run("weekly plan with three days left", func(t *testing.T) {
		assert.InDelta(t, 128.57, UnusedValue(300, 7, 3), 0.01)
	})

	t.Run("never negative", func(t *testing.T) {
		assert.Equal(t, 0.0, UnusedValue(300, 7, 0))
		assert.Equal(t, 0.0, UnusedValue(300, 7, -5))
		assert.Equal(t, 0.0, UnusedValue(0, 7, 3))
		assert.Equal(t, 0.0, UnusedValue(-100, 7, 3))
	})

	t.Run("invalid day length yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, UnusedValue(300, 0, 3))
		assert.Equal(t, 0.0, UnusedValue(300, -7, 3))
	})

	t.Run("full period left returns the full amount", func(t *testing.T) {
		assert.Equal(t, 300.0, UnusedValue(300, 7, 7))
	})
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"exactly ten days out", now.AddDate(0, 0, 10), 10},
		{"partial day rounds up", now.Add(9*24*time.Hour + time.Hour), 10},
		{"one hour left counts as a day", now.Add(time.Hour), 1},
		{"expired right now", now, 0},
		{"two days past expiry", now.AddDate(0, 0, -2), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRemaining(tt.expiry, now))
		})
	}
}
