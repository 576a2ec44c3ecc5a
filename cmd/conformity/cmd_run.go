package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conformity/conformity"
	"github.com/katalvlaran/conformity/gio"
	"github.com/katalvlaran/conformity/internal/config"
	"github.com/katalvlaran/conformity/internal/progress"
	"github.com/katalvlaran/conformity/view"
)

func newRunCmd() *cobra.Command {
	var runFile string
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Score a graph document",
		Long: `Score every node of a graph document for every alpha and every profile of
the given labels, and write the alpha → profile → node → score mapping.

Settings come from --config (a YAML run file) when given; flags set on the
command line override it.

Examples:
  conformity run --graph karate.json --labels club --alphas 1,1.5,2
  conformity run --config run.yaml --workers 2 --out scores.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := config.Default()
			if runFile != "" {
				loaded, err := config.Load(runFile)
				if err != nil {
					return err
				}
				r = loaded
			}
			if err := r.Overlay(cmd.Flags()); err != nil {
				return err
			}
			if err := r.Validate(); err != nil {
				return err
			}

			return run(cmd, r)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&runFile, "config", "", "YAML run file")
	fs.StringP(config.FlagGraph, "g", "", `graph document (.json, .yaml; "-" for stdin)`)
	fs.String(config.FlagFormat, "", "graph document format, overriding the file extension")
	fs.StringSliceP(config.FlagLabels, "l", nil, "attribute labels to profile")
	fs.Float64SliceP(config.FlagAlphas, "a", def.Alphas, "distance damping exponents")
	fs.IntP(config.FlagProfileSize, "k", def.ProfileSize, "largest profile size")
	fs.String(config.FlagHierarchy, "", "hierarchy document ranking label values")
	fs.String(config.FlagFactorPolicy, def.FactorPolicy, "adjacency factor policy: last-label, per-label or mean")
	fs.IntP(config.FlagWorkers, "w", 0, "nodes scored concurrently (0 = GOMAXPROCS)")
	fs.StringP(config.FlagOut, "o", "", `output file (.json, .yaml; default stdout)`)
	fs.Bool(config.FlagLargestComponent, false, "score only the largest connected component")
	fs.String(config.FlagLogLevel, def.LogLevel, "log level: debug, info, warn, error")
	fs.Bool(config.FlagProgress, def.Progress, "report progress on stderr")

	return cmd
}

func run(cmd *cobra.Command, r config.Run) error {
	lvl, _ := r.Level()
	stderr := cmd.ErrOrStderr()
	logger := newLogger(stderr, lvl)

	g, err := loadGraph(cmd.InOrStdin(), r.Graph, r.Format)
	if err != nil {
		return err
	}
	if r.LargestComponent {
		before := g.VertexCount()
		if g, err = view.LargestComponent(g); err != nil {
			return err
		}
		if dropped := before - g.VertexCount(); dropped > 0 {
			logger.Warn("scoring the largest component only", "kept", g.VertexCount(), "dropped", dropped)
		}
	}
	h, err := loadHierarchies(r.Hierarchy)
	if err != nil {
		return err
	}
	policy, _ := r.Policy()

	opts := []conformity.Option{
		conformity.WithWorkers(r.Workers),
		conformity.WithLogger(logger),
		conformity.WithFactorPolicy(policy),
	}
	if r.Progress {
		opts = append(opts, conformity.WithObserver(observerFor(stderr, logger)))
	}

	logger.Info("scoring",
		"graph", r.Graph,
		"nodes", g.VertexCount(),
		"edges", g.EdgeCount(),
		"labels", r.Labels,
		"alphas", r.Alphas)
	res, err := conformity.Compute(cmd.Context(), view.NewCore(g), r.Config(h), opts...)
	if err != nil {
		return err
	}

	if err = writeTo(cmd.OutOrStdout(), r.Out, func(w io.Writer, f gio.Format) error {
		return gio.WriteResult(w, res, f)
	}); err != nil {
		return err
	}
	if r.Out != "" && r.Out != stdio {
		renderSummaries(stderr, res.Summaries())
	}

	return nil
}

// observerFor draws a bar on a terminal stderr and logs otherwise.
func observerFor(stderr io.Writer, logger *slog.Logger) conformity.Observer {
	if f, ok := stderr.(*os.File); ok {
		return progress.For(f, logger)
	}

	return progress.NewLog(logger, progress.DefaultLogInterval)
}
