package sustain

import (
	"testing"

	"ecocart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestScore_NoSustainabilityBlock(t *testing.T) {
	result := Score(nil)

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Advantages)
	assert.Empty(t, result.Suggestions)
	assert.NotNil(t, result.Advantages)
	assert.NotNil(t, result.Suggestions)
}

func TestScore_BestCaseClampsTo100(t *testing.T) {
	attrs := &models.Sustainability{
		RecyclableMaterial:     true,
		Biodegradable:          true,
		PlasticFree:            true,
		CarbonFootprint:        1,
		CrueltyFree:            true,
		FairTradeCertified:     true,
		RenewableEnergyUsed:    true,
		EnergyEfficiencyRating: intPtr(5),
	}

	result := Score(attrs)

	// Raw sum is 15+15+20+25+15+15+10+15 = 130, clamped to 100
	assert.Equal(t, 100, result.Score)
	assert.Len(t, result.Advantages, 8)
	assert.Empty(t, result.Suggestions)
}

func TestScore_WorstCase(t *testing.T) {
	attrs := &models.Sustainability{
		CarbonFootprint: 10,
	}

	result := Score(attrs)

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Advantages)
	// No suggestion for the absent efficiency rating
	assert.Len(t, result.Suggestions, 7)
}

func TestScore_IsDeterministic(t *testing.T) {
	attrs := &models.Sustainability{
		RecyclableMaterial:     true,
		PlasticFree:            true,
		CarbonFootprint:        3.5,
		EnergyEfficiencyRating: intPtr(3),
	}

	first := Score(attrs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(attrs))
	}
}

func TestScore_CarbonFootprintTiers(t *testing.T) {
	tests := []struct {
		name     string
		cf       float64
		expected int
	}{
		{"below two", 1.9, 25},
		{"zero", 0, 25},
		{"two to four", 2, 15},
		{"just under four", 3.99, 15},
		{"four to six", 4, 10},
		{"six and above", 6, 0},
		{"very high", 12.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(&models.Sustainability{CarbonFootprint: tt.cf})
			assert.Equal(t, tt.expected, result.Score)
		})
	}
}

func TestScore_BooleanFlipsAreMonotonic(t *testing.T) {
	base := models.Sustainability{CarbonFootprint: 10}
	baseScore := Score(&base).Score

	flips := []func(*models.Sustainability){
		func(s *models.Sustainability) { s.RecyclableMaterial = true },
		func(s *models.Sustainability) { s.Biodegradable = true },
		func(s *models.Sustainability) { s.PlasticFree = true },
		func(s *models.Sustainability) { s.CrueltyFree = true },
		func(s *models.Sustainability) { s.FairTradeCertified = true },
		func(s *models.Sustainability) { s.RenewableEnergyUsed = true },
	}

	for _, flip := range flips {
		attrs := base
		flip(&attrs)
		assert.Greater(t, Score(&attrs).Score, baseScore)
	}
}

func TestScore_DecreasingCarbonFootprintNeverLowersScore(t *testing.T) {
	footprints := []float64{10, 6, 5.9, 4, 3.9, 2, 1.9, 0}

	prev := -1
	for _, cf := range footprints {
		score := Score(&models.Sustainability{CarbonFootprint: cf}).Score
		assert.GreaterOrEqual(t, score, prev, "cf=%v", cf)
		prev = score
	}
}

func TestScore_ScoreAlwaysWithinBounds(t *testing.T) {
	// Sweep a representative grid of attribute combinations
	for mask := 0; mask < 1<<6; mask++ {
		for _, cf := range []float64{0, 1, 3, 5, 8} {
			for _, rating := range []*int{nil, intPtr(1), intPtr(3), intPtr(5)} {
				attrs := &models.Sustainability{
					RecyclableMaterial:     mask&1 != 0,
					Biodegradable:          mask&2 != 0,
					PlasticFree:            mask&4 != 0,
					CarbonFootprint:        cf,
					CrueltyFree:            mask&8 != 0,
					FairTradeCertified:     mask&16 != 0,
					RenewableEnergyUsed:    mask&32 != 0,
					EnergyEfficiencyRating: rating,
				}

				result := Score(attrs)
				require.GreaterOrEqual(t, result.Score, 0)
				require.LessOrEqual(t, result.Score, 100)
			}
		}
	}
}

func TestScore_EachAttributeYieldsAdvantageOrSuggestion(t *testing.T) {
	t.Run("without rating the seven attributes are fully covered", func(t *testing.T) {
		attrs := &models.Sustainability{
			RecyclableMaterial: true,
			PlasticFree:        true,
			CarbonFootprint:    7,
		}

		result := Score(attrs)
		assert.Equal(t, 7, len(result.Advantages)+len(result.Suggestions))
	})

	t.Run("mid rating adds points but no line", func(t *testing.T) {
		withRating := Score(&models.Sustainability{CarbonFootprint: 10, EnergyEfficiencyRating: intPtr(3)})
		without := Score(&models.Sustainability{CarbonFootprint: 10})

		assert.Equal(t, without.Score+9, withRating.Score)
		assert.Equal(t, len(without.Suggestions), len(withRating.Suggestions))
		assert.Equal(t, len(without.Advantages), len(withRating.Advantages))
	})

	t.Run("high rating adds advantage", func(t *testing.T) {
		result := Score(&models.Sustainability{CarbonFootprint: 10, EnergyEfficiencyRating: intPtr(4)})
		assert.Contains(t, result.Advantages, "Excellent energy efficiency")
	})

	t.Run("low rating adds suggestion", func(t *testing.T) {
		result := Score(&models.Sustainability{CarbonFootprint: 10, EnergyEfficiencyRating: intPtr(2)})
		assert.Contains(t, result.Suggestions, "Improve energy efficiency rating")
	})
}

func TestScore_FixedAttributeOrder(t *testing.T) {
	attrs := &models.Sustainability{
		RecyclableMaterial:  true,
		Biodegradable:       true,
		PlasticFree:         true,
		CarbonFootprint:     1,
		CrueltyFree:         true,
		FairTradeCertified:  true,
		RenewableEnergyUsed: true,
	}

	result := Score(attrs)
	require.Len(t, result.Advantages, 7)
	assert.Equal(t, []string{
		"Made from recyclable materials",
		"Product is biodegradable",
		"Plastic-free packaging",
		"Excellent carbon footprint (low emissions)",
		"Cruelty-free certified",
		"Fair Trade certified",
		"Produced using renewable energy",
	}, result.Advantages)
}
