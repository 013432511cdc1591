// Package galton estimates how balls dropped through a Galton board spread across its bins.
package galton

import "math"

// BinomialCoefficient returns C(n, k) using multiplicative accumulation.
// Every partial product is itself a binomial coefficient, so the value stays integral
// and is exact in float64 for the board sizes used here.
func BinomialCoefficient(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}

// BinProbability returns the binomial probability mass C(n,k) * p^k * (1-p)^(n-k):
// the chance that a ball deflects right k times out of n peg rows.
// p is not clamped; indices outside [0, n] have zero mass.
func BinProbability(k, n int, p float64) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return BinomialCoefficient(n, k) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}

// CoefficientRow returns C(rows, k) for k = 0..rows, one row of Pascal's triangle.
func CoefficientRow(rows int) []float64 {
	if rows < 0 {
		return []float64{}
	}
	row := make([]float64, rows+1)
	for k := range row {
		row[k] = BinomialCoefficient(rows, k)
	}
	return row
}

// ProbabilitiesFromRow applies p to a coefficient row from CoefficientRow,
// giving the same values as BinProbability for each index.
func ProbabilitiesFromRow(row []float64, p float64) []float64 {
	rows := len(row) - 1
	probs := make([]float64, len(row))
	for k, c := range row {
		probs[k] = c * math.Pow(p, float64(k)) * math.Pow(1-p, float64(rows-k))
	}
	return probs
}

// BinProbabilities returns the probability vector for a board with totalBins bins,
// i.e. totalBins-1 rows of pegs.
func BinProbabilities(totalBins int, p float64) []float64 {
	if totalBins <= 0 {
		return []float64{}
	}
	return ProbabilitiesFromRow(CoefficientRow(totalBins-1), p)
}
