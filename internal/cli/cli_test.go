package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "mendeleev")
	assert.Contains(t, out, "atomic-mass")
	assert.Contains(t, out, "10  GnBu (default)")
	assert.Contains(t, out, "symbol-value")
	assert.Contains(t, out, "category")
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.png")
	_, logs, err := run(t, "render", "--dpi", "20", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "Wrote")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderValuesFileWithUnknownSymbol(t *testing.T) {
	dir := t.TempDir()
	vals := filepath.Join(dir, "vals.json")
	require.NoError(t, os.WriteFile(vals, []byte(`{"H": 1, "He": 2, "Xx": 3}`), 0o644))

	out := filepath.Join(dir, "table.png")
	_, logs, err := run(t, "render", "--dpi", "20", "--values", vals, "--mode", "symbol", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, logs, "Xx")
	assert.FileExists(t, out)
}

func TestRenderRejectsNonFiniteValues(t *testing.T) {
	dir := t.TempDir()
	vals := filepath.Join(dir, "vals.yaml")
	require.NoError(t, os.WriteFile(vals, []byte("H: .nan\nHe: 2\nLi: 5\n"), 0o644))

	out := filepath.Join(dir, "table.png")
	_, _, err := run(t, "render", "--dpi", "20", "--values", vals, "-o", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"H"`)
	assert.NoFileExists(t, out)
}

func TestRenderCategory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "table.png")
	_, _, err := run(t, "render", "--dpi", "20", "--mode", "category", "-o", out)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestRenderFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "configured.png")
	cfg := filepath.Join(dir, "heatmap.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("dpi = 20\noutput = \""+filepath.ToSlash(out)+"\"\ndataset = \"atomic-number\"\n"), 0o644))

	_, _, err := run(t, "render", "--config", cfg)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestRenderInvalidSettings(t *testing.T) {
	out := filepath.Join(t.TempDir(), "table.png")
	tests := [][]string{
		{"render", "--gradient", "99", "-o", out},
		{"render", "--mode", "sparkles", "-o", out},
		{"render", "--dpi", "0", "-o", out},
		{"render", "--dataset", "nope", "--dpi", "20", "-o", out},
	}
	for _, args := range tests {
		_, _, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
	assert.NoFileExists(t, out)
}

func TestCards(t *testing.T) {
	dir := t.TempDir()
	vals := filepath.Join(dir, "vals.yaml")
	require.NoError(t, os.WriteFile(vals, []byte("Fe: 61\nCu: 70\n"), 0o644))

	cards := filepath.Join(dir, "cards")
	_, _, err := run(t, "cards", "--values", vals, "--dir", cards, "--width", "123", "--height", "94")
	require.NoError(t, err)

	entries, err := os.ReadDir(cards)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"026-Iron.png", "029-Copper.png"}, names)
}
