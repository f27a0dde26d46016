package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		integerCount bool
		want         float64
		ok           bool
	}{
		{"empty", "", false, 0, false},
		{"spaces only", "   ", false, 0, false},
		{"dash is zero, not absent", "-", false, 0, true},
		{"plain int", "120", false, 120, true},
		{"comma decimal", "1,5", false, 1.5, true},
		{"comma decimal count item", "1,5", true, 1.5, true},
		{"space thousands", "1 234,50", false, 1234.5, true},
		{"nbsp thousands", "1 234,50", false, 1234.5, true},
		{"narrow nbsp thousands", "197 ,00", false, 197, true},
		{"count item dots are thousands", "2.124.770", true, 2124770, true},
		{"multi dot thousands regardless of category", "2.124.770", false, 2124770, true},
		{"single dot stays decimal", "1.500", false, 1.5, true},
		{"single dot count item", "1.500", true, 1500, true},
		{"dots then comma", "1.234,56", false, 1234.56, true},
		{"unparseable text", "н/д", false, 0, false},
		{"negative", "-3,2", false, -3.2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCell(tt.raw, tt.integerCount)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
