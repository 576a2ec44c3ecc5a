// Package config loads conformity run files and overlays command-line flags.
//
// A run file is YAML:
//
//	graph: karate.json
//	labels: [club, role]
//	alphas: [1, 1.5, 2]
//	profile_size: 2
//	hierarchy: ranks.yaml
//	factor_policy: per-label
//	workers: 4
//	out: scores.yaml
//	largest_component: true
//	log_level: debug
//
// Relative paths are resolved against the run file's directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/conformity/conformity"
)

// Flag names shared by the run file keys and the CLI.
const (
	FlagGraph            = "graph"
	FlagFormat           = "format"
	FlagLabels           = "labels"
	FlagAlphas           = "alphas"
	FlagProfileSize      = "profile-size"
	FlagHierarchy        = "hierarchy"
	FlagFactorPolicy     = "factor-policy"
	FlagWorkers          = "workers"
	FlagOut              = "out"
	FlagLargestComponent = "largest-component"
	FlagLogLevel         = "log-level"
	FlagProgress         = "progress"
)

// ErrIncomplete is returned by Validate when a required setting is missing.
var ErrIncomplete = errors.New("config: incomplete run configuration")

// Run is one conformity run.
type Run struct {
	Graph            string    `yaml:"graph"`
	Format           string    `yaml:"format"`
	Labels           []string  `yaml:"labels"`
	Alphas           []float64 `yaml:"alphas"`
	ProfileSize      int       `yaml:"profile_size"`
	Hierarchy        string    `yaml:"hierarchy"`
	FactorPolicy     string    `yaml:"factor_policy"`
	Workers          int       `yaml:"workers"`
	Out              string    `yaml:"out"`
	LargestComponent bool      `yaml:"largest_component"`
	LogLevel         string    `yaml:"log_level"`
	Progress         bool      `yaml:"progress"`
}

// Default returns the settings used when neither file nor flag sets them.
func Default() Run {
	return Run{
		Alphas:       []float64{1},
		ProfileSize:  1,
		FactorPolicy: conformity.FactorLastLabel.String(),
		LogLevel:     slog.LevelInfo.String(),
		Progress:     true,
	}
}

// Load reads the run file at path over Default. Unknown keys are errors.
func Load(path string) (Run, error) {
	r := Default()
	f, err := os.Open(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&r); err != nil {
		return Run{}, fmt.Errorf("config: %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	r.Graph = resolve(dir, r.Graph)
	r.Hierarchy = resolve(dir, r.Hierarchy)
	r.Out = resolve(dir, r.Out)

	return r, nil
}

func resolve(dir, p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}

// Overlay copies every flag the user set explicitly onto r. Flags left at
// their defaults never override the run file.
func (r *Run) Overlay(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case FlagGraph:
			r.Graph, err = fs.GetString(f.Name)
		case FlagFormat:
			r.Format, err = fs.GetString(f.Name)
		case FlagLabels:
			r.Labels, err = fs.GetStringSlice(f.Name)
		case FlagAlphas:
			r.Alphas, err = fs.GetFloat64Slice(f.Name)
		case FlagProfileSize:
			r.ProfileSize, err = fs.GetInt(f.Name)
		case FlagHierarchy:
			r.Hierarchy, err = fs.GetString(f.Name)
		case FlagFactorPolicy:
			r.FactorPolicy, err = fs.GetString(f.Name)
		case FlagWorkers:
			r.Workers, err = fs.GetInt(f.Name)
		case FlagOut:
			r.Out, err = fs.GetString(f.Name)
		case FlagLargestComponent:
			r.LargestComponent, err = fs.GetBool(f.Name)
		case FlagLogLevel:
			r.LogLevel, err = fs.GetString(f.Name)
		case FlagProgress:
			r.Progress, err = fs.GetBool(f.Name)
		}
		if err != nil {
			err = fmt.Errorf("config: flag --%s: %w", f.Name, err)
		}
	})

	return err
}

// Validate checks what Compute cannot: that a graph and labels are named
// and that the policy and log level parse.
func (r Run) Validate() error {
	if r.Graph == "" {
		return fmt.Errorf("%w: no graph document", ErrIncomplete)
	}
	if len(r.Labels) == 0 {
		return fmt.Errorf("%w: no labels", ErrIncomplete)
	}
	if _, err := r.Policy(); err != nil {
		return err
	}
	if _, err := r.Level(); err != nil {
		return err
	}

	return nil
}

// Policy parses FactorPolicy; empty means the default.
func (r Run) Policy() (conformity.FactorPolicy, error) {
	if r.FactorPolicy == "" {
		return conformity.FactorLastLabel, nil
	}

	return conformity.ParseFactorPolicy(r.FactorPolicy)
}

// Level parses LogLevel; empty means info.
func (r Run) Level() (slog.Level, error) {
	var lvl slog.Level
	if r.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(r.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}

	return lvl, nil
}

// Config converts r into the engine configuration. Hierarchies are loaded
// by the caller.
func (r Run) Config(h conformity.Hierarchies) conformity.Config {
	return conformity.Config{
		Alphas:      append([]float64(nil), r.Alphas...),
		Labels:      append([]string(nil), r.Labels...),
		ProfileSize: r.ProfileSize,
		Hierarchies: h,
	}
}
