package galton

import "math"

// Distribution returns the expected number of balls landing in each of totalBins bins
// when balls balls are dropped with per-peg probability p.
//
// Each bin is rounded half-to-even on its own, so the counts can add up to a few balls
// more or less than balls.
func Distribution(balls, totalBins int, p float64) []int {
	return Counts(balls, BinProbabilities(totalBins, p))
}

// Counts rounds balls * prob for every entry of probs, half to even.
func Counts(balls int, probs []float64) []int {
	counts := make([]int, len(probs))
	for k, prob := range probs {
		counts[k] = int(math.RoundToEven(float64(balls) * prob))
	}
	return counts
}

// Placed returns the number of balls actually accounted for by counts.
func Placed(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
