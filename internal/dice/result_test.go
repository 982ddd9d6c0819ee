package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRollResultTotal verifies that the total is the modifier plus
// every sampled value, including negative modifiers that pull the
// total below the dice sum.
func TestRollResultTotal(t *testing.T) {
	tests := []struct {
		name   string
		result RollResult
		want   int
	}{
		{
			name:   "no dice no modifier",
			result: RollResult{},
			want:   0,
		},
		{
			name:   "modifier only",
			result: RollResult{Modifier: 9},
			want:   9,
		},
		{
			name: "dice only",
			result: RollResult{Rolls: []DieRoll{
				{Die: Die{Sides: 8}, Value: 5},
				{Die: Die{Sides: 4}, Value: 2},
			}},
			want: 7,
		},
		{
			name: "negative modifier",
			result: RollResult{
				Rolls: []DieRoll{
					{Die: Die{Sides: 8}, Value: 5},
					{Die: Die{Sides: 4}, Value: 2},
				},
				Modifier: -7,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Total())
		})
	}
}

// TestRollResultString verifies the breakdown format: one
// "(d<sides> -> value)" chunk per physical die, then the modifier,
// then the total. An empty roll uses the "(no dice)" form.
func TestRollResultString(t *testing.T) {
	tests := []struct {
		name   string
		result RollResult
		want   string
	}{
		{
			name: "dice and modifier",
			result: RollResult{
				Rolls: []DieRoll{
					{Die: Die{Sides: 8}, Value: 5},
					{Die: Die{Sides: 4}, Value: 2},
					{Die: Die{Sides: 4}, Value: 3},
				},
				Modifier: -7,
			},
			want: "(d8 -> 5) + (d4 -> 2) + (d4 -> 3) + (modifier -> -7) = 3",
		},
		{
			name: "no modifier still shown as zero",
			result: RollResult{
				Rolls: []DieRoll{{Die: Die{Sides: 20}, Value: 17}},
			},
			want: "(d20 -> 17) + (modifier -> 0) = 17",
		},
		{
			name:   "no dice",
			result: RollResult{Modifier: 9},
			want:   "(no dice) + (modifier -> 9) = 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.String())
		})
	}
}
