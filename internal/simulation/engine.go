package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yourusername/galton-mountains/internal/galton"
	"github.com/yourusername/galton-mountains/internal/logger"
	"github.com/yourusername/galton-mountains/internal/metrics"
)

// Mountain is the bin count vector for one sampled probability
type Mountain struct {
	Probability float64 `json:"probability"`
	Counts      []int   `json:"counts"`
	Placed      int     `json:"placed"`
	Drift       int     `json:"drift"`
	MeanBin     float64 `json:"mean_bin"`
	StdDevBin   float64 `json:"std_dev_bin"`
}

// Result holds every mountain of a run
type Result struct {
	RunID      uuid.UUID  `json:"run_id"`
	Seed       int64      `json:"seed"`
	Params     Params     `json:"params"`
	Mountains  []Mountain `json:"mountains"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}

// Duration returns how long the run took
func (r Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Peak returns the largest bin count across all mountains
func (r Result) Peak() int {
	peak := 0
	for _, m := range r.Mountains {
		for _, c := range m.Counts {
			if c > peak {
				peak = c
			}
		}
	}
	return peak
}

// Engine computes mountains for a parameter set
type Engine struct {
	cache     *CoefficientCache
	logger    *logrus.Logger
	simLogger *logger.SimulationLogger
}

// NewEngine creates an engine. cache may be nil, in which case every
// distribution is computed directly.
func NewEngine(cache *CoefficientCache, log *logrus.Logger) (*Engine, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Engine{
		cache:     cache,
		logger:    log,
		simLogger: logger.NewSimulationLogger(log),
	}, nil
}

// Logger returns the engine logger
func (e *Engine) Logger() *logrus.Logger {
	return e.logger
}

// Run computes one mountain per probability in params.Probabilities().
// seed is recorded on the result so a randomized run can be reproduced.
func (e *Engine) Run(ctx context.Context, params Params, seed int64) (Result, error) {
	result := Result{
		RunID:     uuid.New(),
		Seed:      seed,
		Params:    params,
		StartedAt: time.Now(),
	}
	runID := result.RunID.String()

	if err := params.Validate(); err != nil {
		e.simLogger.LogRunFailed(runID, err)
		metrics.RecordRun("invalid", 0)
		return result, fmt.Errorf("invalid simulation params: %w", err)
	}

	e.simLogger.LogRunStarted(runID, seed, params.TotalBins, params.Balls, params.Samples, params.ProbStart, params.ProbEnd)
	metrics.UpdateBoard(params.Balls, params.TotalBins)

	probs := params.Probabilities()
	result.Mountains = make([]Mountain, 0, len(probs))
	for i, p := range probs {
		if err := ctx.Err(); err != nil {
			e.simLogger.LogRunFailed(runID, err)
			metrics.RecordRun("cancelled", 0)
			return result, fmt.Errorf("simulation cancelled after %d of %d samples: %w", i, len(probs), err)
		}

		counts, cached := e.distribution(params.Balls, params.TotalBins, p)
		m := newMountain(params, p, counts)
		result.Mountains = append(result.Mountains, m)

		metrics.RecordMountain(m.Drift)
		e.simLogger.LogMountain(runID, i, p, m.Placed, m.Drift, cached)
	}

	result.FinishedAt = time.Now()
	duration := result.Duration()
	metrics.RecordRun("success", duration.Seconds())
	e.simLogger.LogRunCompleted(runID, len(result.Mountains), float64(duration.Microseconds())/1000)

	return result, nil
}

func (e *Engine) distribution(balls, totalBins int, p float64) ([]int, bool) {
	if e.cache == nil {
		return galton.Distribution(balls, totalBins, p), false
	}
	row, cached := e.cache.Row(totalBins - 1)
	return galton.Counts(balls, galton.ProbabilitiesFromRow(row, p)), cached
}

func newMountain(params Params, p float64, counts []int) Mountain {
	placed := galton.Placed(counts)
	rows := distuv.Binomial{N: float64(params.TotalBins - 1), P: p}
	return Mountain{
		Probability: p,
		Counts:      counts,
		Placed:      placed,
		Drift:       placed - params.Balls,
		MeanBin:     rows.Mean(),
		StdDevBin:   rows.StdDev(),
	}
}
