package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conformity/bfs"
	"github.com/katalvlaran/conformity/conformity"
	"github.com/katalvlaran/conformity/core"
	"github.com/katalvlaran/conformity/view"
)

func newDescribeCmd() *cobra.Command {
	var (
		graphPath string
		format    string
		labels    []string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Summarise a graph document",
		Long: `Print node and edge counts, connectivity, diameter and the value distribution
of each label. Without --labels every label carried by all nodes is described;
labels only some nodes carry are listed as partial.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(cmd.InOrStdin(), graphPath, format)
			if err != nil {
				return err
			}
			d, err := describe(g, labels)
			if err != nil {
				return err
			}
			renderDescription(cmd.OutOrStdout(), d)

			return nil
		},
	}
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", `graph document (.json, .yaml; "-" for stdin)`)
	cmd.Flags().StringVar(&format, "format", "", "graph document format, overriding the file extension")
	cmd.Flags().StringSliceVarP(&labels, "labels", "l", nil, "labels to describe")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

type description struct {
	nodes, edges int
	components   []int // sizes, descending
	diameter     int   // -1 when disconnected
	labels       []string
	partial      []string
	freq         map[string]map[string]float64
}

func describe(g *core.Graph, labels []string) (description, error) {
	d := description{nodes: g.VertexCount(), edges: g.EdgeCount(), diameter: -1}

	comps, err := bfs.Components(g)
	if err != nil {
		return d, err
	}
	for _, c := range comps {
		d.components = append(d.components, len(c))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(d.components)))

	if len(comps) == 1 {
		d.diameter = 0
		for _, v := range g.Vertices() {
			res, err := bfs.BFS(g, v)
			if err != nil {
				return d, err
			}
			d.diameter = max(d.diameter, res.Eccentricity())
		}
	}

	if len(labels) == 0 {
		labels, d.partial = commonLabels(g)
	}
	d.labels = labels
	if d.nodes > 0 && len(labels) > 0 {
		if d.freq, err = conformity.ValueFrequencies(view.NewCore(g), labels); err != nil {
			return d, fmt.Errorf("label distribution: %w", err)
		}
	}

	return d, nil
}

// commonLabels splits the labels seen on any vertex into those every vertex
// carries and the rest, both sorted.
func commonLabels(g *core.Graph) (common, partial []string) {
	vertices := g.Vertices()
	count := make(map[string]int)
	for _, v := range vertices {
		attrs, _ := g.Attributes(v)
		for l := range attrs {
			count[l]++
		}
	}
	for l, n := range count {
		if n == len(vertices) {
			common = append(common, l)
		} else {
			partial = append(partial, l)
		}
	}
	sort.Strings(common)
	sort.Strings(partial)

	return common, partial
}
