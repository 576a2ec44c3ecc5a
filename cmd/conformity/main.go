// Command conformity scores attribute-profile conformity on node-link graphs.
//
//	conformity generate --topology karate --out karate.json
//	conformity describe --graph karate.json
//	conformity run --graph karate.json --labels club --alphas 1,2 --out scores.json
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree writing results to stdout and
// diagnostics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "conformity",
		Short: "Attribute-profile conformity over undirected graphs",
		Long: `Score how strongly each node of a connected, attributed graph agrees with the
rest of the graph on every combination of attribute labels, with agreement at
distance d weighted by d^-alpha.

Subcommands:
  run       - score a graph document
  describe  - summarise a graph document
  generate  - write a fixture graph document
  version   - print the build version`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newRunCmd(),
		newDescribeCmd(),
		newGenerateCmd(),
		newVersionCmd(),
	)

	return root
}

// newLogger writes text records at lvl to w.
func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
