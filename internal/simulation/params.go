// Package simulation runs a Galton board over a sweep of deflection probabilities.
package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/yourusername/galton-mountains/internal/config"
	"github.com/yourusername/galton-mountains/internal/galton"
)

// ProbabilityScale divides the ProbStart..ProbEnd sweep into probabilities.
const ProbabilityScale = 10.0

// ErrInvalidSamples is returned when a sweep has no samples
var ErrInvalidSamples = errors.New("sample count must be positive")

// ErrInvalidRange is returned when a sweep endpoint falls outside [0, ProbabilityScale]
// or the sweep runs backwards
var ErrInvalidRange = errors.New("probability range must be ascending within [0, 10]")

// Params configures one simulation run
type Params struct {
	TotalBins int     `json:"total_bins"`
	Balls     int     `json:"balls"`
	ProbStart float64 `json:"prob_start"`
	ProbEnd   float64 `json:"prob_end"`
	Samples   int     `json:"samples"`
}

// RandomParams draws a parameter set the way the classic demo does:
// 10-20 bins, 0-100 balls, a sweep starting at 3, 4 or 5 and ending at 6 or 7,
// and 10-20 samples.
func RandomParams(rng *rand.Rand) Params {
	return Params{
		TotalBins: 10 + rng.Intn(11),
		Balls:     rng.Intn(101),
		ProbStart: float64(3 + rng.Intn(3)),
		ProbEnd:   float64(6 + rng.Intn(2)),
		Samples:   10 + rng.Intn(11),
	}
}

// FromConfig converts app config to simulation params.
// Randomized configs draw from rng; fixed configs are copied verbatim.
func FromConfig(cfg *config.SimulationConfig, rng *rand.Rand) (Params, error) {
	if cfg == nil {
		return Params{}, fmt.Errorf("simulation config is required")
	}
	if cfg.Randomize {
		if rng == nil {
			return Params{}, fmt.Errorf("random source is required for randomized simulations")
		}
		return RandomParams(rng), nil
	}

	p := Params{
		TotalBins: cfg.TotalBins,
		Balls:     cfg.Balls,
		ProbStart: cfg.ProbStart,
		ProbEnd:   cfg.ProbEnd,
		Samples:   cfg.Samples,
	}
	return p, p.Validate()
}

// Validate validates the run parameters
func (p Params) Validate() error {
	if p.TotalBins <= 0 {
		return fmt.Errorf("%w: got %d", galton.ErrInvalidBins, p.TotalBins)
	}
	if p.Balls < 0 {
		return fmt.Errorf("%w: got %d", galton.ErrInvalidBalls, p.Balls)
	}
	if p.Samples <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, p.Samples)
	}
	for _, v := range []float64{p.ProbStart, p.ProbEnd} {
		if math.IsNaN(v) || v < 0 || v > ProbabilityScale {
			return fmt.Errorf("%w: got %v..%v", ErrInvalidRange, p.ProbStart, p.ProbEnd)
		}
	}
	if p.ProbStart > p.ProbEnd {
		return fmt.Errorf("%w: got %v..%v", ErrInvalidRange, p.ProbStart, p.ProbEnd)
	}
	return nil
}

// Probabilities returns Samples evenly spaced probabilities from ProbStart/10 to
// ProbEnd/10, both ends included.
func (p Params) Probabilities() []float64 {
	if p.Samples <= 0 {
		return []float64{}
	}
	probs := make([]float64, p.Samples)
	if p.Samples == 1 {
		probs[0] = p.ProbStart
	} else {
		floats.Span(probs, p.ProbStart, p.ProbEnd)
	}
	for i := range probs {
		probs[i] /= ProbabilityScale
	}
	return probs
}
