package simulation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/galton-mountains/internal/config"
	"github.com/yourusername/galton-mountains/internal/galton"
)

func TestRandomParamsRanges(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		p := RandomParams(rand.New(rand.NewSource(seed)))

		assert.GreaterOrEqual(t, p.TotalBins, 10)
		assert.LessOrEqual(t, p.TotalBins, 20)
		assert.GreaterOrEqual(t, p.Balls, 0)
		assert.LessOrEqual(t, p.Balls, 100)
		assert.Contains(t, []float64{3, 4, 5}, p.ProbStart)
		assert.Contains(t, []float64{6, 7}, p.ProbEnd)
		assert.GreaterOrEqual(t, p.Samples, 10)
		assert.LessOrEqual(t, p.Samples, 20)
		require.NoError(t, p.Validate())
	}
}

func TestRandomParamsDeterministic(t *testing.T) {
	first := RandomParams(rand.New(rand.NewSource(42)))
	second := RandomParams(rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
}

func TestProbabilities(t *testing.T) {
	p := Params{TotalBins: 10, Balls: 10, ProbStart: 3, ProbEnd: 7, Samples: 5}
	assert.InDeltaSlice(t, []float64{0.3, 0.4, 0.5, 0.6, 0.7}, p.Probabilities(), 1e-12)
}

func TestProbabilitiesEndpoints(t *testing.T) {
	p := Params{TotalBins: 10, Balls: 10, ProbStart: 4, ProbEnd: 6, Samples: 17}
	probs := p.Probabilities()

	require.Len(t, probs, 17)
	assert.InDelta(t, 0.4, probs[0], 1e-12)
	assert.InDelta(t, 0.6, probs[16], 1e-12)
	for i := 1; i < len(probs); i++ {
		assert.Greater(t, probs[i], probs[i-1])
	}
}

func TestProbabilitiesSingleSample(t *testing.T) {
	p := Params{ProbStart: 3, ProbEnd: 7, Samples: 1}
	assert.InDeltaSlice(t, []float64{0.3}, p.Probabilities(), 1e-12)

	p.Samples = 0
	assert.Empty(t, p.Probabilities())
}

func TestParamsValidate(t *testing.T) {
	valid := Params{TotalBins: 12, Balls: 50, ProbStart: 3, ProbEnd: 7, Samples: 10}

	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr error
	}{
		{name: "valid", mutate: func(p *Params) {}},
		{name: "zero balls", mutate: func(p *Params) { p.Balls = 0 }},
		{name: "zero bins", mutate: func(p *Params) { p.TotalBins = 0 }, wantErr: galton.ErrInvalidBins},
		{name: "negative balls", mutate: func(p *Params) { p.Balls = -1 }, wantErr: galton.ErrInvalidBalls},
		{name: "no samples", mutate: func(p *Params) { p.Samples = 0 }, wantErr: ErrInvalidSamples},
		{name: "range above scale", mutate: func(p *Params) { p.ProbEnd = 11 }, wantErr: ErrInvalidRange},
		{name: "negative range", mutate: func(p *Params) { p.ProbStart = -1 }, wantErr: ErrInvalidRange},
		{name: "NaN start", mutate: func(p *Params) { p.ProbStart = math.NaN() }, wantErr: ErrInvalidRange},
		{name: "NaN end", mutate: func(p *Params) { p.ProbEnd = math.NaN() }, wantErr: ErrInvalidRange},
		{name: "descending range", mutate: func(p *Params) { p.ProbStart, p.ProbEnd = 7, 3 }, wantErr: ErrInvalidRange},
		{name: "flat range", mutate: func(p *Params) { p.ProbStart, p.ProbEnd = 5, 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFromConfigFixed(t *testing.T) {
	cfg := &config.SimulationConfig{TotalBins: 5, Balls: 100, ProbStart: 3, ProbEnd: 7, Samples: 5}

	p, err := FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, Params{TotalBins: 5, Balls: 100, ProbStart: 3, ProbEnd: 7, Samples: 5}, p)
}

func TestFromConfigRandomized(t *testing.T) {
	cfg := &config.SimulationConfig{Randomize: true}

	p, err := FromConfig(cfg, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.Equal(t, RandomParams(rand.New(rand.NewSource(9))), p)

	_, err = FromConfig(cfg, nil)
	assert.Error(t, err)
}

func TestFromConfigNil(t *testing.T) {
	_, err := FromConfig(nil, nil)
	assert.Error(t, err)
}
