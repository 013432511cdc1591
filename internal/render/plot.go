// Package render draws simulation results as filled line plots or console charts.
package render

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/yourusername/galton-mountains/internal/simulation"
)

const (
	// Title is the plot title
	Title  = "Galton Mountain"
	width  = 8 * vg.Inch
	height = 6 * vg.Inch
)

// FigurePath returns a path of the form <dir>/<n>example.png with n drawn from [0, 999).
func FigurePath(dir string, rng *rand.Rand) string {
	return filepath.Join(dir, fmt.Sprintf("%dexample.png", rng.Intn(999)))
}

// NewPlot draws every mountain of result as a black outline filled with a palette
// colour, later mountains on top of earlier ones.
func NewPlot(result simulation.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = "Bins"
	p.Y.Label.Text = "Number of Balls"
	p.X.Tick.Marker = binTicks(result.Params.TotalBins)

	for i, m := range result.Mountains {
		line, err := plotter.NewLine(mountainXYs(m.Counts))
		if err != nil {
			return nil, fmt.Errorf("failed to build mountain %d: %w", i, err)
		}
		line.Color = color.Black
		line.FillColor = plotutil.Color(i)
		p.Add(line)
	}

	p.X.Min = 0
	p.X.Max = float64(max(result.Params.TotalBins-1, 0))
	p.Y.Min = 0
	return p, nil
}

// SavePlot renders result to path, creating the parent directory if needed.
// The image format follows the file extension.
func SavePlot(result simulation.Result, path string) error {
	p, err := NewPlot(result)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create figures directory: %w", err)
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save figure: %w", err)
	}
	return nil
}

func mountainXYs(counts []int) plotter.XYs {
	xys := make(plotter.XYs, len(counts))
	for i, c := range counts {
		xys[i].X = float64(i)
		xys[i].Y = float64(c)
	}
	return xys
}

// binTicks puts a labelled tick on every bin index.
func binTicks(totalBins int) plot.Ticker {
	return plot.TickerFunc(func(_, _ float64) []plot.Tick {
		ticks := make([]plot.Tick, totalBins)
		for i := range ticks {
			ticks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(i)}
		}
		return ticks
	})
}
