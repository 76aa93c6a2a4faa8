package storage

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	pagePath := "site/pack-test.html"
	page := "<!doctype html><html><body>pack</body></html>"

	t.Run("Save", func(t *testing.T) {
		n, err := store.Save(ctx, pagePath, strings.NewReader(page))
		require.NoError(t, err)
		assert.Equal(t, int64(len(page)), n)

		got, err := afero.ReadFile(memFs, pagePath)
		require.NoError(t, err)
		assert.Equal(t, page, string(got))
	})

	t.Run("Save truncates existing file", func(t *testing.T) {
		_, err := store.Save(ctx, pagePath, strings.NewReader("short"))
		require.NoError(t, err)

		got, err := afero.ReadFile(memFs, pagePath)
		require.NoError(t, err)
		assert.Equal(t, "short", string(got))
	})

	t.Run("Open", func(t *testing.T) {
		f, err := store.Open(ctx, pagePath)
		require.NoError(t, err)
		defer f.Close()

		got, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "short", string(got))
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, pagePath)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "site/nothing.html")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, pagePath))
		ok, err := afero.Exists(memFs, pagePath)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "path/to/nothing.html")
		assert.Error(t, err)
	})
}

func TestAferoStore_SaveFailsOnReadOnlyFs(t *testing.T) {
	store := NewAferoStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	_, err := store.Save(context.Background(), "pack.html", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestAferoStore_SaveHonoursCancelledContext(t *testing.T) {
	store := NewAferoStore(afero.NewMemMapFs())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "pack.html", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDirStore_RelativeDir(t *testing.T) {
	t.Chdir(t.TempDir())
	store := NewDirStore(".")
	ctx := context.Background()

	_, err := store.Save(ctx, "pack-veggie.html", strings.NewReader("veggie"))
	require.NoError(t, err)

	ok, err := store.Exists(ctx, "pack-veggie.html")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := os.ReadFile("pack-veggie.html")
	require.NoError(t, err)
	assert.Equal(t, "veggie", string(got))
}
