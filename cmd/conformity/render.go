package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/conformity/conformity"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)

func renderDescription(w io.Writer, d description) {
	fmt.Fprintln(w, headerStyle.Render("graph"))
	fmt.Fprintf(w, "  %s %d\n", keyStyle.Render("nodes:"), d.nodes)
	fmt.Fprintf(w, "  %s %d\n", keyStyle.Render("edges:"), d.edges)
	fmt.Fprintf(w, "  %s %d %v\n", keyStyle.Render("components:"), len(d.components), d.components)
	if d.diameter >= 0 {
		fmt.Fprintf(w, "  %s %d\n", keyStyle.Render("diameter:"), d.diameter)
	} else {
		fmt.Fprintf(w, "  %s\n", warnStyle.Render("disconnected: run with --largest-component"))
	}

	for _, label := range d.labels {
		fmt.Fprintln(w, headerStyle.Render("label "+label))
		freq := d.freq[label]
		values := make([]string, 0, len(freq))
		for v := range freq {
			values = append(values, v)
		}
		sort.Strings(values)
		for _, v := range values {
			fmt.Fprintf(w, "  %s %.4f\n", keyStyle.Render(v+":"), freq[v])
		}
	}
	if len(d.partial) > 0 {
		fmt.Fprintf(w, "%s %s\n", warnStyle.Render("partial labels:"), strings.Join(d.partial, ", "))
	}
}

// renderSummaries prints one row per alpha and profile.
func renderSummaries(w io.Writer, sums []conformity.Summary) {
	rows := [][]string{{"alpha", "profile", "min", "median", "mean", "max"}}
	for _, s := range sums {
		rows = append(rows, []string{
			s.AlphaKey, s.ProfileKey,
			fmt.Sprintf("%.4f", s.Min),
			fmt.Sprintf("%.4f", s.Median),
			fmt.Sprintf("%.4f", s.Mean),
			fmt.Sprintf("%.4f", s.Max),
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}
	for r, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			st := cellStyle.Width(widths[c] + 2)
			if r == 0 {
				st = st.Inherit(headerStyle)
			}
			cells[c] = st.Render(cell)
		}
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
}
