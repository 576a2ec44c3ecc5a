package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conformity/conformity"
	"github.com/katalvlaran/conformity/gio"
	"github.com/katalvlaran/conformity/internal/config"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return ansi.ReplaceAllString(stdout.String(), ""), ansi.ReplaceAllString(stderr.String(), ""), err
}

func readScores(t *testing.T, path string) map[string]map[string]map[string]float64 {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	format, err := gio.FormatFromPath(path)
	require.NoError(t, err)
	scores, err := gio.ReadResult(f, format)
	require.NoError(t, err)
	return scores
}

func TestGenerateDescribeRun(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "karate.json")
	out := filepath.Join(dir, "scores.yaml")

	_, _, err := execute(t, "generate", "--topology", "karate", "--assign", "tag=x", "--out", graph)
	require.NoError(t, err)

	stdout, _, err := execute(t, "describe", "--graph", graph)
	require.NoError(t, err)
	assert.Contains(t, stdout, "nodes: 34")
	assert.Contains(t, stdout, "edges: 78")
	assert.Contains(t, stdout, "diameter: 5")
	assert.Contains(t, stdout, "label club")
	assert.Contains(t, stdout, "Mr. Hi: 0.5000")
	assert.Contains(t, stdout, "x: 1.0000")

	_, stderr, err := execute(t, "run", "--graph", graph, "--labels", "club,tag",
		"--alphas", "1,2", "--profile-size", "2", "--workers", "3", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "scoring finished")
	assert.Contains(t, stderr, "club_tag", "summary table")

	scores := readScores(t, out)
	require.Len(t, scores, 2)
	assert.Len(t, scores["1.0"], 3)
	for _, v := range scores["2.0"]["tag"] {
		assert.Equal(t, 1.0, v)
	}
}

func TestRun_Stdout(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "path.yaml")
	_, _, err := execute(t, "generate", "-t", "path", "-n", "3", "--assign", "side=l,r,l", "-o", graph)
	require.NoError(t, err)

	stdout, _, err := execute(t, "run", "-g", graph, "-l", "side", "--progress=false")
	require.NoError(t, err)

	scores, err := gio.ReadResult(strings.NewReader(stdout), gio.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, -1.0, scores["1.0"]["side"]["1"])
	assert.InDelta(t, -1.0/3, scores["1.0"]["side"]["0"], 1e-12)
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "generate", "-t", "cycle", "-n", "6", "--assign", "c=a,b", "-o", filepath.Join(dir, "ring.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "h.yaml"), []byte("c: [a, b]\n"), 0o600))
	runFile := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(runFile, []byte(`
graph: ring.json
labels: [c]
alphas: [1, 2, 3]
hierarchy: h.yaml
factor_policy: mean
out: scores.json
progress: false
`), 0o600))

	_, _, err = execute(t, "run", "--config", runFile, "--alphas", "1.5")
	require.NoError(t, err)

	scores := readScores(t, filepath.Join(dir, "scores.json"))
	require.Len(t, scores, 1, "flag replaces the file's alphas")
	assert.Contains(t, scores, "1.5")
}

func TestRun_LargestComponent(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "split.json")
	doc := `{"nodes": [{"id": "a", "k": 1}, {"id": "b", "k": 1}, {"id": "c", "k": 2}, {"id": "d", "k": 2}, {"id": "e", "k": 1}],
	 "links": [{"source": "a", "target": "b"}, {"source": "b", "target": "c"}, {"source": "d", "target": "e"}]}`
	require.NoError(t, os.WriteFile(graph, []byte(doc), 0o600))

	_, _, err := execute(t, "run", "-g", graph, "-l", "k", "--progress=false")
	assert.ErrorIs(t, err, conformity.ErrDisconnectedGraph)

	stdout, stderr, err := execute(t, "run", "-g", graph, "-l", "k", "--largest-component", "--progress=false")
	require.NoError(t, err)
	assert.Contains(t, stderr, "dropped=2")
	scores, err := gio.ReadResult(strings.NewReader(stdout), gio.FormatJSON)
	require.NoError(t, err)
	assert.Len(t, scores["1.0"]["k"], 3)

	stdout, _, err = execute(t, "describe", "-g", graph)
	require.NoError(t, err)
	assert.Contains(t, stdout, "components: 2 [3 2]")
	assert.Contains(t, stdout, "disconnected")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "g.json")
	_, _, err := execute(t, "generate", "-t", "star", "-n", "4", "--assign", "c=x,y", "-o", graph)
	require.NoError(t, err)

	_, _, err = execute(t, "run", "-g", graph)
	assert.ErrorIs(t, err, config.ErrIncomplete)

	_, _, err = execute(t, "run", "-g", graph, "-l", "c", "-k", "2")
	assert.ErrorIs(t, err, conformity.ErrInvalidProfileSize)

	_, _, err = execute(t, "run", "-g", graph, "-l", "c", "--factor-policy", "median")
	assert.ErrorIs(t, err, conformity.ErrInvalidParameter)

	_, _, err = execute(t, "run", "-g", filepath.Join(dir, "g.txt"), "-l", "c")
	assert.ErrorIs(t, err, gio.ErrUnknownFormat)

	_, _, err = execute(t, "generate", "--assign", "novalues")
	assert.ErrorIs(t, err, errBadAssignment)

	_, _, err = execute(t, "generate", "-t", "hexagon")
	assert.Error(t, err)

	_, _, err = execute(t, "generate", "--ids", "roman")
	assert.ErrorIs(t, err, errBadIDScheme)
}

func TestGenerate_IDSchemes(t *testing.T) {
	for scheme, want := range map[string][]string{
		"decimal":  {"0", "1", "2"},
		"letters":  {"A", "B", "C"},
		"columns":  {"A", "B", "C"},
		"prefix:v": {"v0", "v1", "v2"},
	} {
		g, err := generate(generateOpts{topology: topoPath, n: 3, ids: scheme})
		require.NoError(t, err, scheme)
		assert.Equal(t, want, g.Vertices(), scheme)
	}

	g, err := generate(generateOpts{topology: topoPath, n: 28, ids: "columns"})
	require.NoError(t, err)
	assert.True(t, g.HasEdge("Z", "AA"))
	assert.True(t, g.HasEdge("AA", "AB"))
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "conformity "))
}
