package galton

import (
	"errors"
	"fmt"
	"math"
)

// Input errors
var (
	ErrInvalidBins        = errors.New("bin count must be positive")
	ErrInvalidBalls       = errors.New("ball count must not be negative")
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")
)

// ValidateInputs rejects inputs for which Distribution has no physical meaning.
// Distribution itself does not call it.
func ValidateInputs(balls, totalBins int, p float64) error {
	if totalBins <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBins, totalBins)
	}
	if balls < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBalls, balls)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	return nil
}
