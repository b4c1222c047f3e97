// Package sustain implements the deterministic sustainability scoring engine:
// attribute scoring, comparative narrative text and chart-ready graph data.
// Everything in this package is pure computation over product attributes.
package sustain

import "ecocart/internal/models"

// ScoreResult is the outcome of scoring one product's sustainability
// attributes. Advantages and suggestions follow the fixed attribute order
// and are always non-nil.
type ScoreResult struct {
	Score       int      `json:"score"`
	Advantages  []string `json:"advantages"`
	Suggestions []string `json:"suggestions"`
}

// Score derives a 0-100 sustainability score from a product's attributes
// using an additive point scheme. Each attribute contributes points plus
// exactly one advantage or suggestion line. A product without a
// sustainability block scores zero with empty lists.
func Score(attrs *models.Sustainability) ScoreResult {
	result := ScoreResult{
		Advantages:  []string{},
		Suggestions: []string{},
	}

	if attrs == nil {
		return result
	}

	score := 0

	if attrs.RecyclableMaterial {
		score += 15
		result.Advantages = append(result.Advantages, "Made from recyclable materials")
	} else {
		result.Suggestions = append(result.Suggestions, "Consider using recyclable materials")
	}

	if attrs.Biodegradable {
		score += 15
		result.Advantages = append(result.Advantages, "Product is biodegradable")
	} else {
		result.Suggestions = append(result.Suggestions, "Look for biodegradable alternatives")
	}

	if attrs.PlasticFree {
		score += 20
		result.Advantages = append(result.Advantages, "Plastic-free packaging")
	} else {
		result.Suggestions = append(result.Suggestions, "Reduce plastic packaging")
	}

	// Carbon footprint, lower is better
	switch {
	case attrs.CarbonFootprint < 2:
		score += 25
		result.Advantages = append(result.Advantages, "Excellent carbon footprint (low emissions)")
	case attrs.CarbonFootprint < 4:
		score += 15
		result.Advantages = append(result.Advantages, "Good carbon footprint")
	case attrs.CarbonFootprint < 6:
		score += 10
		result.Advantages = append(result.Advantages, "Average carbon footprint")
	default:
		result.Suggestions = append(result.Suggestions, "High carbon footprint - consider reducing emissions")
	}

	if attrs.CrueltyFree {
		score += 15
		result.Advantages = append(result.Advantages, "Cruelty-free certified")
	} else {
		result.Suggestions = append(result.Suggestions, "Consider cruelty-free certification")
	}

	if attrs.FairTradeCertified {
		score += 15
		result.Advantages = append(result.Advantages, "Fair Trade certified")
	} else {
		result.Suggestions = append(result.Suggestions, "Look for Fair Trade certification")
	}

	if attrs.RenewableEnergyUsed {
		score += 10
		result.Advantages = append(result.Advantages, "Produced using renewable energy")
	} else {
		result.Suggestions = append(result.Suggestions, "Consider switching to renewable energy")
	}

	// Energy efficiency rating 1-5, optional; no suggestion when absent
	if attrs.EnergyEfficiencyRating != nil {
		rating := *attrs.EnergyEfficiencyRating
		score += rating * 3
		if rating >= 4 {
			result.Advantages = append(result.Advantages, "Excellent energy efficiency")
		} else if rating <= 2 {
			result.Suggestions = append(result.Suggestions, "Improve energy efficiency rating")
		}
	}

	result.Score = clamp(score, 0, 100)
	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
