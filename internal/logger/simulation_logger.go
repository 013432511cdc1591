// Package logger provides simulation-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// SimulationLogger provides dedicated logging for board simulation runs.
type SimulationLogger struct {
	*logrus.Entry
}

// NewSimulationLogger creates a new simulation logger.
func NewSimulationLogger(baseLogger *logrus.Logger) *SimulationLogger {
	return &SimulationLogger{
		Entry: baseLogger.WithField("component", "simulation"),
	}
}

// LogRunStarted logs the parameters a run starts with.
func (sl *SimulationLogger) LogRunStarted(runID string, seed int64, totalBins, balls, samples int, probStart, probEnd float64) {
	sl.WithFields(logrus.Fields{
		"run_id":     runID,
		"seed":       seed,
		"total_bins": totalBins,
		"balls":      balls,
		"samples":    samples,
		"prob_start": probStart,
		"prob_end":   probEnd,
	}).Info("Simulation run started")
}

// LogMountain logs one computed distribution.
func (sl *SimulationLogger) LogMountain(runID string, index int, probability float64, placed, drift int, cached bool) {
	sl.WithFields(logrus.Fields{
		"run_id":      runID,
		"sample":      index,
		"probability": probability,
		"placed":      placed,
		"drift":       drift,
		"cached":      cached,
	}).Debug("Mountain computed")
}

// LogRunCompleted logs the end of a run.
func (sl *SimulationLogger) LogRunCompleted(runID string, mountains int, durationMs float64) {
	sl.WithFields(logrus.Fields{
		"run_id":      runID,
		"mountains":   mountains,
		"duration_ms": durationMs,
	}).Info("Simulation run completed")
}

// LogRunFailed logs an aborted run.
func (sl *SimulationLogger) LogRunFailed(runID string, err error) {
	sl.WithFields(logrus.Fields{
		"run_id": runID,
	}).WithError(err).Error("Simulation run failed")
}

// LogArtifactWritten logs a figure, report or metrics file written for a run.
func (sl *SimulationLogger) LogArtifactWritten(runID, kind, path string) {
	sl.WithFields(logrus.Fields{
		"run_id": runID,
		"kind":   kind,
		"path":   path,
	}).Info("Artifact written")
}
