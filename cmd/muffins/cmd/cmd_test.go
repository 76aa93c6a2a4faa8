package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/proteinmuffins/muffins/internal/packs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("EMAIL_PROVIDER", "log")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "generate", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "14 written, 0 skipped, 0 failed")

	for _, p := range packs.Default() {
		assert.FileExists(t, filepath.Join(dir, p.Filename))
		assert.FileExists(t, filepath.Join(dir, p.SuccessPage))
	}
}

func TestGenerate_NoSuccessPagesFromYAML(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "packs.yaml")
	require.NoError(t, packs.Save(afero.NewOsFs(), catalog, packs.Default()[:2]))

	out, err := run(t, "generate", "--out", dir, "--packs", catalog, "--no-success")
	require.NoError(t, err)
	assert.Contains(t, out, "2 written")
	assert.NoFileExists(t, filepath.Join(dir, packs.Default()[0].SuccessPage))
}

func TestGenerate_WatchNeedsCatalogFile(t *testing.T) {
	t.Setenv("PACKS_FILE", "")
	_, err := run(t, "generate", "--out", t.TempDir(), "--watch")
	assert.ErrorContains(t, err, "--watch requires a catalog file")
}

func TestGenerate_BadCatalog(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "packs.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte("packs: []\n"), 0644))

	_, err := run(t, "generate", "--out", dir, "--packs", catalog)
	assert.ErrorIs(t, err, packs.ErrEmptyCatalog)
}

func TestSEO(t *testing.T) {
	dir := t.TempDir()
	page := `<html><head><title>Apple Protein Muffins | ProteinMuffins.com</title>
<meta name="description" content="Apple muffins."></head><body></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apple-protein-muffins.html"), []byte(page), 0644))

	out, err := run(t, "seo", "--dir", dir, "apple-protein-muffins.html", "missing.html")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ apple-protein-muffins.html")
	assert.Contains(t, out, "- missing.html (not found)")
	assert.Contains(t, out, "1 of 2 pages updated")

	updated, err := os.ReadFile(filepath.Join(dir, "apple-protein-muffins.html"))
	require.NoError(t, err)
	assert.Contains(t, string(updated), `<link rel="canonical" href="https://proteinmuffins.com/apple-protein-muffins.html">`)
}

func TestPacks(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := run(t, "packs")
		require.NoError(t, err)
		assert.Contains(t, out, "FILENAME")
		assert.Contains(t, out, "pack-veggie.html")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "packs", "--format", "json")
		require.NoError(t, err)
		var list []packs.PageConfig
		require.NoError(t, json.Unmarshal([]byte(out), &list))
		assert.Equal(t, packs.Default(), list)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := run(t, "packs", "--format", "xml")
		assert.ErrorContains(t, err, "invalid format")
	})

	t.Run("export", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "packs.yaml")
		out, err := run(t, "packs", "--export", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Exported 7 packs")

		loaded, err := packs.Load(afero.NewOsFs(), path)
		require.NoError(t, err)
		assert.Equal(t, packs.Default(), loaded)
	})
}

func TestSignalContext_CancelledOnInterrupt(t *testing.T) {
	ctx, stop := signalContext(context.Background())
	defer stop()

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	if err := proc.Signal(os.Interrupt); err != nil {
		t.Skipf("cannot send interrupt on this platform: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by the interrupt")
	}
}

func TestGenerate_WatchStopsWhenContextIsCancelled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping file watcher test in short mode")
	}
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("EMAIL_PROVIDER", "log")

	dir := t.TempDir()
	catalog := filepath.Join(dir, "packs.yaml")
	require.NoError(t, packs.Save(afero.NewOsFs(), catalog, packs.Default()[:1]))

	ctx, cancel := context.WithCancel(context.Background())
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"generate", "--out", dir, "--packs", catalog, "--watch"})

	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, packs.Default()[0].Filename))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("generate --watch did not return after cancellation")
	}
}
