package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
		ok    bool
	}{
		{"one_hour", "1h", time.Hour, true},
		{"two_days", "2d", 48 * time.Hour, true},
		{"minutes", "45m", 45 * time.Minute, true},
		{"seconds", "15s", 15 * time.Second, true},
		{"combined", "1h 30m", 90 * time.Minute, true},
		{"no_spaces", "1h30m", 90 * time.Minute, true},
		{"extra_whitespace", "  2d   6h ", 54 * time.Hour, true},
		{"uppercase", "1H 30M", 90 * time.Minute, true},
		{"repeated_unit_accumulates", "1h 1h", 2 * time.Hour, true},
		{"all_units", "1d 2h 3m 4s", 24*time.Hour + 2*time.Hour + 3*time.Minute + 4*time.Second, true},
		{"surrounding_garbage", "ends in 2h please", 2 * time.Hour, true},
		{"zero", "0h", 0, false},
		{"zero_mixed", "0h 0m", 0, false},
		{"empty", "", 0, false},
		{"whitespace_only", "   ", 0, false},
		{"garbage", "soon", 0, false},
		{"unit_only", "h", 0, false},
		{"unknown_unit", "3w", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDuration(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationMillisecondTotals(t *testing.T) {
	// The documented unit multipliers, expressed in milliseconds.
	cases := map[string]int64{
		"1h 30m": 5_400_000,
		"2d":     172_800_000,
		"45m":    2_700_000,
		"15s":    15_000,
	}
	for input, wantMs := range cases {
		got, ok := ParseDuration(input)
		assert.True(t, ok, input)
		assert.Equal(t, wantMs, got.Milliseconds(), input)
	}
}
