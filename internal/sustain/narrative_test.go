package sustain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEcoDescription_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		score1   int
		score2   int
		contains string
	}{
		{"significant difference", 100, 0, "significantly more eco-friendly"},
		{"just above significant threshold", 81, 50, "significantly more eco-friendly"},
		{"moderate difference", 70, 50, "moderately more sustainable"},
		{"slight difference", 56, 50, "slightly more eco-friendly"},
		{"small difference lands in similar", 55, 50, "similar sustainability scores"},
		{"equal scores always similar", 50, 50, "similar sustainability scores"},
		{"both zero", 0, 0, "similar sustainability scores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := EcoDescription("Alpha", "Beta", tt.score1, tt.score2)
			assert.Contains(t, desc, tt.contains)
		})
	}
}

func TestEcoDescription_WinnerIsHigherScore(t *testing.T) {
	desc := EcoDescription("Alpha", "Beta", 20, 90)
	assert.Contains(t, desc, "Beta is significantly more eco-friendly than Alpha")

	desc = EcoDescription("Alpha", "Beta", 90, 20)
	assert.Contains(t, desc, "Alpha is significantly more eco-friendly than Beta")
}

func TestKeyDifference(t *testing.T) {
	many := ScoreResult{Advantages: []string{"a", "b", "c"}}
	few := ScoreResult{Advantages: []string{"a"}}
	none := ScoreResult{Advantages: []string{}}

	t.Run("first product has more features", func(t *testing.T) {
		assert.Equal(t,
			"Alpha has more sustainability features (3 vs 1)",
			KeyDifference("Alpha", "Beta", many, few),
		)
	})

	t.Run("second product has more features", func(t *testing.T) {
		assert.Equal(t,
			"Beta has more sustainability features (3 vs 1)",
			KeyDifference("Alpha", "Beta", few, many),
		)
	})

	t.Run("equal non-zero counts", func(t *testing.T) {
		assert.Equal(t,
			"Both products have similar sustainability features",
			KeyDifference("Alpha", "Beta", few, few),
		)
	})

	t.Run("both empty", func(t *testing.T) {
		assert.Equal(t,
			"Both products need significant sustainability improvements",
			KeyDifference("Alpha", "Beta", none, none),
		)
	})
}
