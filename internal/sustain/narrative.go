package sustain

import "fmt"

// EcoDescription renders the comparative narrative for two scored products.
// Tier is selected by the absolute score difference; equal scores always
// land in the "similar" tier.
func EcoDescription(name1, name2 string, score1, score2 int) string {
	winner, loser := name1, name2
	if score2 > score1 {
		winner, loser = name2, name1
	}

	scoreDiff := score1 - score2
	if scoreDiff < 0 {
		scoreDiff = -scoreDiff
	}

	switch {
	case scoreDiff > 30:
		return fmt.Sprintf("%s is significantly more eco-friendly than %s. This product excels in multiple sustainability categories.", winner, loser)
	case scoreDiff > 15:
		return fmt.Sprintf("%s is moderately more sustainable than %s. It has clear advantages in key environmental areas.", winner, loser)
	case scoreDiff > 5:
		return fmt.Sprintf("%s is slightly more eco-friendly than %s. Both have good sustainability practices, but the winner has a small edge.", winner, loser)
	default:
		return "Both products have similar sustainability scores. Consider other factors like price, brand ethics, or specific certifications."
	}
}

// KeyDifference summarizes how the two products' advantage lists compare.
func KeyDifference(name1, name2 string, result1, result2 ScoreResult) string {
	n1, n2 := len(result1.Advantages), len(result2.Advantages)

	if n1 == 0 && n2 == 0 {
		return "Both products need significant sustainability improvements"
	}

	switch {
	case n1 > n2:
		return fmt.Sprintf("%s has more sustainability features (%d vs %d)", name1, n1, n2)
	case n2 > n1:
		return fmt.Sprintf("%s has more sustainability features (%d vs %d)", name2, n2, n1)
	default:
		return "Both products have similar sustainability features"
	}
}
