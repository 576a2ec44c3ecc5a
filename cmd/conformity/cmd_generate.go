package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conformity/builder"
	"github.com/katalvlaran/conformity/core"
	"github.com/katalvlaran/conformity/gio"
)

// Topology names accepted by generate.
const (
	topoKarate   = "karate"
	topoPath     = "path"
	topoCycle    = "cycle"
	topoStar     = "star"
	topoComplete = "complete"
	topoGrid     = "grid"
	topoRandom   = "random"
)

var (
	errBadAssignment = errors.New("assignment must look like label=v1,v2,...")
	errBadIDScheme   = errors.New("ids must be decimal, letters, columns or prefix:<p>")
)

type generateOpts struct {
	topology   string
	n          int
	rows, cols int
	p          float64
	seed       int64
	assign     []string
	random     bool
	ids        string
	out        string
}

func newGenerateCmd() *cobra.Command {
	var o generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a fixture graph document",
		Long: `Build a fixture graph and write it as a node-link document.

Topologies: karate, path, cycle, star, complete, grid, random.
Each --assign label=v1,v2 deals the values round-robin over the sorted
vertices, or uniformly at random with --random-values.
--ids picks vertex names: decimal (0,1,...), letters (A..Z),
columns (A..Z,AA,AB,...) or prefix:<p> (p0,p1,...).

Examples:
  conformity generate --topology karate --out karate.json
  conformity generate --topology grid --rows 5 --cols 5 --assign color=red,blue --out grid.yaml
  conformity generate --topology random --n 50 --p 0.1 --seed 7 --assign team=a,b,c --random-values
  conformity generate --topology path --n 40 --ids columns`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := generate(o)
			if err != nil {
				return err
			}

			return writeTo(cmd.OutOrStdout(), o.out, func(w io.Writer, f gio.Format) error {
				return gio.WriteGraph(w, g, f)
			})
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.topology, "topology", "t", topoKarate, "graph shape")
	fs.IntVarP(&o.n, "n", "n", 10, "vertex count for path, cycle, star, complete and random")
	fs.IntVar(&o.rows, "rows", 3, "grid rows")
	fs.IntVar(&o.cols, "cols", 3, "grid columns")
	fs.Float64VarP(&o.p, "p", "p", 0.2, "edge probability for random")
	fs.Int64Var(&o.seed, "seed", 1, "random seed")
	fs.StringArrayVar(&o.assign, "assign", nil, "label=v1,v2,... (repeatable)")
	fs.BoolVar(&o.random, "random-values", false, "draw assigned values at random")
	fs.StringVar(&o.ids, "ids", "decimal", "vertex naming: decimal, letters, columns or prefix:<p>")
	fs.StringVarP(&o.out, "out", "o", "", "output file (.json, .yaml; default stdout)")

	return cmd
}

func generate(o generateOpts) (*core.Graph, error) {
	var cons []builder.Constructor
	switch o.topology {
	case topoKarate:
		cons = append(cons, builder.KarateClub())
	case topoPath:
		cons = append(cons, builder.Path(o.n))
	case topoCycle:
		cons = append(cons, builder.Cycle(o.n))
	case topoStar:
		cons = append(cons, builder.Star(o.n))
	case topoComplete:
		cons = append(cons, builder.Complete(o.n))
	case topoGrid:
		cons = append(cons, builder.Grid(o.rows, o.cols))
	case topoRandom:
		cons = append(cons, builder.RandomSparse(o.n, o.p))
	default:
		return nil, fmt.Errorf("unknown topology %q", o.topology)
	}

	for _, a := range o.assign {
		label, list, ok := strings.Cut(a, "=")
		if !ok || label == "" || list == "" {
			return nil, fmt.Errorf("%w: %q", errBadAssignment, a)
		}
		values := strings.Split(list, ",")
		if o.random {
			cons = append(cons, builder.AssignRandom(label, values...))
		} else {
			cons = append(cons, builder.AssignCycle(label, values...))
		}
	}

	ids, err := idScheme(o.ids)
	if err != nil {
		return nil, err
	}

	return builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(o.seed), ids}, cons...)
}

func idScheme(name string) (builder.BuilderOption, error) {
	switch name {
	case "", "decimal":
		return builder.WithDefaultIDs(), nil
	case "letters":
		return builder.WithSymbolIDs(), nil
	case "columns":
		return builder.WithExcelColumnIDs(), nil
	}
	if prefix, ok := strings.CutPrefix(name, "prefix:"); ok && prefix != "" {
		return builder.WithSymbNumb(prefix), nil
	}

	return nil, fmt.Errorf("%w: %q", errBadIDScheme, name)
}
