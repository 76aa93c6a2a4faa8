package packs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()
	require.Len(t, catalog, 7)
	assert.Equal(t, "pack-blueberry.html", catalog[0].Filename)
	assert.Equal(t, "pack-veggie.html", catalog[len(catalog)-1].Filename)

	seen := map[string]bool{}
	for _, p := range catalog {
		assert.False(t, seen[p.Filename], "duplicate filename %s", p.Filename)
		seen[p.Filename] = true
		assert.NotEmpty(t, p.PackName, p.Filename)
		assert.NotEmpty(t, p.SuccessPage, p.Filename)
		assert.Len(t, p.Recipes, 4, p.Filename)
		_, known := palettes[p.AccentColor]
		assert.True(t, known, "unknown accent %q in %s", p.AccentColor, p.Filename)
	}

	// Each call hands out its own slice.
	catalog[0].Title = "changed"
	assert.NotEqual(t, "changed", Default()[0].Title)
}

func TestPaletteFor(t *testing.T) {
	amber := PaletteFor("amber")
	assert.Equal(t, "amber-900", amber.BG)
	assert.Equal(t, "amber-950", amber.Dark)
	assert.Equal(t, "amber-900", amber.Text)
	assert.Equal(t, "amber-100", amber.Subtle)

	sky := PaletteFor("sky")
	assert.Equal(t, Palette{BG: "sky-600", Dark: "sky-900", Light: "sky-400", Accent: "sky-500", Subtle: "sky-100", Text: "sky-600"}, sky)

	assert.Equal(t, PaletteFor(DefaultAccent), PaletteFor("chartreuse"))
	assert.Equal(t, PaletteFor("indigo"), PageConfig{}.Palette())
}

func TestRecipeName(t *testing.T) {
	cfg := PageConfig{Recipes: []Recipe{{Name: "CLASSIC"}}}
	assert.Equal(t, "CLASSIC", cfg.RecipeName(0, "RECIPE 1"))
	assert.Equal(t, "RECIPE 2", cfg.RecipeName(1, "RECIPE 2"))
	assert.Equal(t, "RECIPE 1", PageConfig{}.RecipeName(0, "RECIPE 1"))
}

func TestFind(t *testing.T) {
	p, ok := Find(Default(), "pack-chocolate.html")
	require.True(t, ok)
	assert.Equal(t, "Chocolate Pack", p.PackName)

	_, ok = Find(Default(), "nope.html")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()

	t.Run("valid catalog", func(t *testing.T) {
		doc := `packs:
  - filename: pack-test.html
    title: Test Pack
    packName: Test Pack
    accentColor: sky
    checklist: [one, two]
    recipes:
      - {emoji: "🧁", name: FIRST, protein: 20g, desc: first}
      - {emoji: "🧁", name: SECOND, protein: 21g, desc: second}
  - filename: pack-other.html
    title: Other
`
		require.NoError(t, afero.WriteFile(fs, "packs.yaml", []byte(doc), 0644))

		catalog, err := Load(fs, "packs.yaml")
		require.NoError(t, err)
		require.Len(t, catalog, 2)
		assert.Equal(t, "pack-test.html", catalog[0].Filename)
		assert.Equal(t, []string{"one", "two"}, catalog[0].Checklist)
		require.Len(t, catalog[0].Recipes, 2)
		assert.Equal(t, Recipe{Emoji: "🧁", Name: "SECOND", Protein: "21g", Desc: "second"}, catalog[0].Recipes[1])
		assert.Equal(t, "pack-other.html", catalog[1].Filename)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(fs, "missing.yaml")
		assert.ErrorContains(t, err, "missing.yaml")
	})

	t.Run("empty catalog", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "empty.yaml", []byte("packs: []\n"), 0644))
		_, err := Load(fs, "empty.yaml")
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("unknown field", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "typo.yaml", []byte("packs:\n  - filename: a.html\n    titel: oops\n"), 0644))
		_, err := Load(fs, "typo.yaml")
		assert.Error(t, err)
	})

	t.Run("duplicate filename", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "dup.yaml", []byte("packs:\n  - filename: a.html\n  - filename: a.html\n"), 0644))
		_, err := Load(fs, "dup.yaml")
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("missing filename", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "nofile.yaml", []byte("packs:\n  - title: nameless\n"), 0644))
		_, err := Load(fs, "nofile.yaml")
		assert.ErrorContains(t, err, "no filename")
	})
}

func TestSaveThenLoadKeepsDefaultCatalog(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, Save(fs, "out/packs.yaml", Default()))

	loaded, err := Load(fs, "out/packs.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestLoadOrDefault(t *testing.T) {
	catalog, err := LoadOrDefault(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), catalog)
}
