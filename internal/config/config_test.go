package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conformity/conformity"
	"github.com/katalvlaran/conformity/internal/config"
)

func writeRunFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	fs.String(config.FlagGraph, "", "")
	fs.StringSlice(config.FlagLabels, nil, "")
	fs.Float64Slice(config.FlagAlphas, []float64{1}, "")
	fs.Int(config.FlagProfileSize, 1, "")
	fs.String(config.FlagFactorPolicy, "last-label", "")
	fs.Int(config.FlagWorkers, 0, "")
	fs.Bool(config.FlagLargestComponent, false, "")
	fs.String(config.FlagOut, "", "")
	return fs
}

func TestLoad(t *testing.T) {
	path := writeRunFile(t, `
graph: karate.json
labels: [club, role]
alphas: [1, 2.5]
profile_size: 2
hierarchy: /abs/ranks.yaml
factor_policy: per-label
out: "-"
`)
	r, err := config.Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "karate.json"), r.Graph)
	assert.Equal(t, "/abs/ranks.yaml", r.Hierarchy)
	assert.Equal(t, "-", r.Out)
	assert.Equal(t, []string{"club", "role"}, r.Labels)
	assert.Equal(t, []float64{1, 2.5}, r.Alphas)
	assert.True(t, r.Progress, "defaults survive")
	require.NoError(t, r.Validate())

	p, err := r.Policy()
	require.NoError(t, err)
	assert.Equal(t, conformity.FactorPerLabel, p)

	cfg := r.Config(conformity.Hierarchies{"role": {"a": 0, "b": 1}})
	assert.Equal(t, 2, cfg.ProfileSize)
	assert.Len(t, cfg.Hierarchies, 1)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeRunFile(t, "graph: g.json\nlabelz: [a]\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestOverlay(t *testing.T) {
	r := config.Default()
	r.Graph = "file.json"
	r.Labels = []string{"from-file"}
	r.Workers = 3

	fs := runFlags()
	require.NoError(t, fs.Parse([]string{"--labels", "a,b", "--alphas", "1.5,2", "--largest-component"}))
	require.NoError(t, r.Overlay(fs))

	assert.Equal(t, "file.json", r.Graph, "unset flag keeps file value")
	assert.Equal(t, 3, r.Workers, "flag default never overrides")
	assert.Equal(t, []string{"a", "b"}, r.Labels)
	assert.Equal(t, []float64{1.5, 2}, r.Alphas)
	assert.True(t, r.LargestComponent)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*config.Run)
		ok   bool
	}{
		{"complete", func(*config.Run) {}, true},
		{"no graph", func(r *config.Run) { r.Graph = "" }, false},
		{"no labels", func(r *config.Run) { r.Labels = nil }, false},
		{"bad policy", func(r *config.Run) { r.FactorPolicy = "median" }, false},
		{"bad level", func(r *config.Run) { r.LogLevel = "loud" }, false},
		{"empty policy", func(r *config.Run) { r.FactorPolicy = "" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := config.Default()
			r.Graph, r.Labels = "g.json", []string{"x"}
			tc.edit(&r)
			err := r.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	r := config.Default()
	lvl, err := r.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
	r.LogLevel = "DEBUG"
	lvl, err = r.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	r.Graph, r.Labels = "", nil
	assert.ErrorIs(t, r.Validate(), config.ErrIncomplete)
}
