// Package report formats simulation results for the terminal and for export.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/galton-mountains/internal/simulation"
)

// Supported export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// FormatProbability renders p with a fixed number of decimal places.
func FormatProbability(p float64, places int32) string {
	return decimal.NewFromFloat(p).StringFixed(places)
}

// GenerateConsoleReport formats a run summary for terminal output
func GenerateConsoleReport(result simulation.Result) string {
	var builder strings.Builder
	builder.WriteString("Galton Mountain Report\n")
	builder.WriteString("======================\n")
	builder.WriteString(fmt.Sprintf("Run ID: %s\n", result.RunID))
	builder.WriteString(fmt.Sprintf("Seed: %d\n", result.Seed))
	builder.WriteString(fmt.Sprintf("Bins: %d\n", result.Params.TotalBins))
	builder.WriteString(fmt.Sprintf("Balls: %d\n", result.Params.Balls))
	builder.WriteString(fmt.Sprintf("Samples: %d\n", len(result.Mountains)))
	if n := len(result.Mountains); n > 0 {
		builder.WriteString(fmt.Sprintf("Probability Range: %s - %s\n",
			FormatProbability(result.Mountains[0].Probability, 3),
			FormatProbability(result.Mountains[n-1].Probability, 3)))
	}
	builder.WriteString(fmt.Sprintf("Peak Bin Count: %d\n", result.Peak()))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("%-8s %-7s %-7s %-9s %-7s\n", "p", "placed", "drift", "mean_bin", "stddev"))
	for _, m := range result.Mountains {
		builder.WriteString(fmt.Sprintf("%-8s %-7d %-7d %-9.2f %-7.2f\n",
			FormatProbability(m.Probability, 3), m.Placed, m.Drift, m.MeanBin, m.StdDevBin))
	}
	return builder.String()
}

// Export writes result to outputPath in the given format
func Export(result simulation.Result, outputPath, format string) error {
	switch format {
	case FormatJSON:
		return ExportToJSON(result, outputPath)
	case FormatCSV:
		return ExportToCSV(result, outputPath)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// ExportToJSON writes the full result to a JSON file
func ExportToJSON(result simulation.Result, outputPath string) error {
	if err := prepareOutput(outputPath); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// ExportToCSV writes one row per bin of every mountain
func ExportToCSV(result simulation.Result, outputPath string) error {
	if err := prepareOutput(outputPath); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"sample", "probability", "bin", "count"}); err != nil {
		return err
	}
	for i, m := range result.Mountains {
		prob := FormatProbability(m.Probability, 4)
		for bin, count := range m.Counts {
			row := []string{strconv.Itoa(i), prob, strconv.Itoa(bin), strconv.Itoa(count)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}

func prepareOutput(outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
