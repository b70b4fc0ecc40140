package engine

import "math"

// EffectiveDifficulty blends a declared difficulty (1–5) with peer votes:
// the vote average and the declared value meet halfway, rounded to one
// decimal place. With zero votes the declared difficulty stands alone.
func EffectiveDifficulty(declared int, votes map[string]int) float64 {
	if len(votes) == 0 {
		return float64(declared)
	}

	sum := 0
	for _, v := range votes {
		sum += v
	}
	avg := float64(sum) / float64(len(votes))

	return math.Round((float64(declared)+avg)/2*10) / 10
}

// PointValue is the per-check-in point award: effective difficulty
// rounded to the nearest integer, half up.
func PointValue(effective float64) int {
	return int(math.Round(effective))
}
