package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/galton-mountains/internal/galton"
)

const fixedConfig = `app:
  name: galton-mountains
  environment: development
  log_level: error

simulation:
  randomize: false
  seed: 42
  total_bins: 5
  balls: 100
  prob_start: 5
  prob_end: 5
  samples: 3

output:
  figures_dir: ${TEST_OUTPUT_DIR}/figures
  save: true
  show: true
  report_path: ${TEST_OUTPUT_DIR}/report.csv
  report_format: csv

cache:
  ttl_seconds: 60
  max_size: 16
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDistCommand(t *testing.T) {
	out, err := execute(t, "dist", "--balls", "100", "--bins", "5", "--p", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "[6 25 38 25 6]\n", out)
}

func TestDistCommandProbabilities(t *testing.T) {
	out, err := execute(t, "dist", "--balls", "0", "--bins", "3", "--p", "0.5", "--probabilities")
	require.NoError(t, err)
	assert.Equal(t, "[0 0 0]\n[0.25 0.5 0.25]\n", out)
}

func TestDistCommandRejectsInvalidInput(t *testing.T) {
	_, err := execute(t, "dist", "--p", "1.5")
	assert.ErrorIs(t, err, galton.ErrInvalidProbability)

	_, err = execute(t, "dist", "--bins", "0")
	assert.ErrorIs(t, err, galton.ErrInvalidBins)
}

func TestDistCommandIgnoresConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("app:\n  environment: invalid\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.MkdirAll("config", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("config", "config.yaml"), []byte("app:\n  environment: invalid\n"), 0o644))

	out, err := execute(t, "dist", "--balls", "100", "--bins", "5", "--p", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "[6 25 38 25 6]\n", out)

	_, err = execute(t, "--config", filepath.Join(dir, "bad.yaml"))
	assert.ErrorContains(t, err, "Environment")
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_OUTPUT_DIR", dir)
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(fixedConfig), 0o644))

	out, err := execute(t, "--config", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Galton Mountain (5 bins, 100 balls)")
	assert.Contains(t, out, "Galton Mountain Report")
	assert.Contains(t, out, "Seed: 42")

	figures, err := filepath.Glob(filepath.Join(dir, "figures", "*example.png"))
	require.NoError(t, err)
	assert.Len(t, figures, 1)

	_, err = os.Stat(filepath.Join(dir, "report.csv"))
	assert.NoError(t, err)
}

func TestRunCommandFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_OUTPUT_DIR", dir)
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(fixedConfig), 0o644))

	out, err := execute(t, "--config", configPath, "--save=false", "--show=false", "--report", filepath.Join(dir, "run.json"), "--format", "json", "--seed", "7")
	require.NoError(t, err)

	assert.NotContains(t, out, "placed=")
	assert.Contains(t, out, "Seed: 7")
	_, err = os.Stat(filepath.Join(dir, "figures"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "run.json"))
	assert.NoError(t, err)
}

func TestRunCommandInvalidConfig(t *testing.T) {
	_, err := execute(t, "--config", "missing.yaml", "--format", "xml", "--report", "out.xml")
	assert.Error(t, err)
}
