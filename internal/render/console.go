package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/yourusername/galton-mountains/internal/simulation"
)

// BarWidth is the width in characters of the tallest console bar
const BarWidth = 50

// Console writes one horizontal bar chart per mountain to w.
func Console(w io.Writer, result simulation.Result) error {
	peak := result.Peak()

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d bins, %d balls)\n", Title, result.Params.TotalBins, result.Params.Balls)
	for i, m := range result.Mountains {
		fmt.Fprintf(&b, "\n[%d] p=%.3f placed=%d\n", i, m.Probability, m.Placed)
		for bin, c := range m.Counts {
			fmt.Fprintf(&b, "%3d | %-*s %d\n", bin, BarWidth, bar(c, peak), c)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func bar(count, peak int) string {
	if peak <= 0 || count <= 0 {
		return ""
	}
	n := count * BarWidth / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("#", n)
}
