package pages_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/proteinmuffins/muffins/internal/packs"
	"github.com/proteinmuffins/muffins/internal/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func parseHTML(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func blueberry(t *testing.T) packs.PageConfig {
	t.Helper()
	cfg, ok := packs.Find(packs.Default(), "pack-blueberry.html")
	require.True(t, ok)
	return cfg
}

func TestPackPage_Deterministic(t *testing.T) {
	for _, cfg := range packs.Default() {
		first := render(t, pages.PackPage(cfg))
		second := render(t, pages.PackPage(cfg))
		assert.Equal(t, first, second, cfg.Filename)
	}
}

func TestPackPage_Document(t *testing.T) {
	cfg := blueberry(t)
	out := render(t, pages.PackPage(cfg))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"), "page should start with a doctype")
	doc := parseHTML(t, out)

	assert.Equal(t, cfg.Title, doc.Find("head title").Text())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, cfg.Description, desc)
	pdf, _ := doc.Find("body").Attr("data-pdf")
	assert.Equal(t, "guides/pack-blueberry.pdf", pdf)

	// Hero description is trusted markup.
	assert.Equal(t, "Fresh, frozen, or freeze-dried", doc.Find("#hero p span.font-bold").Text())
	assert.Equal(t, 3, doc.Find("#hero .space-y-3 > div").Length())
	assert.Equal(t, 1, doc.Find("#hero form").Length())
	assert.Equal(t, 1, doc.Find("#final-cta form").Length())

	action, _ := doc.Find("#hero form").Attr("@submit.prevent")
	assert.Equal(t, "loading = true; EmailSignup.submit(email, 'Blueberry Pack', 'success__blueberry_pack_delivery.html')", action)

	assert.Contains(t, doc.Find("#hero").Text(), "LEMON BERRY", "mockup names the second recipe")
	assert.Equal(t, "BERRY GOOD 🫐", doc.Find("#final-cta h2.italic").Text())
	assert.Contains(t, doc.Find("footer").Text(), "© 2026 ProteinMuffins.com")
}

func TestPackPage_RecipeGridOrder(t *testing.T) {
	cfg := blueberry(t)
	doc := parseHTML(t, render(t, pages.PackPage(cfg)))

	names := doc.Find("#recipe-grid .recipe-card h3").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"CLASSIC", "LEMON BERRY", "YOGURT BERRY", "NO POWDER"}, names)
	assert.Equal(t, 4, doc.Find("#recipe-grid h3").Length())
	assert.Equal(t, "ALL 4 RECIPES", doc.Find("#recipe-grid h2").Text())
	assert.Equal(t, "19g protein", doc.Find("#recipe-grid .recipe-card p").First().Text())
}

func TestPackPage_RecipeCountMatchesInput(t *testing.T) {
	for _, n := range []int{0, 1, 3, 6} {
		cfg := blueberry(t)
		cfg.Recipes = nil
		for i := 0; i < n; i++ {
			cfg.Recipes = append(cfg.Recipes, packs.Recipe{Emoji: "🧁", Name: strings.Repeat("X", i+1), Protein: "10g"})
		}
		doc := parseHTML(t, render(t, pages.PackPage(cfg)))
		assert.Equal(t, n, doc.Find("#recipe-grid .recipe-card").Length(), "recipes=%d", n)
	}
}

func TestPackPage_EmptyListsRenderEmptySections(t *testing.T) {
	cfg := packs.PageConfig{Filename: "pack-empty.html", Title: "Empty"}
	doc := parseHTML(t, render(t, pages.PackPage(cfg)))

	assert.Equal(t, 1, doc.Find("#features").Length())
	assert.Equal(t, 0, doc.Find("#features h4").Length())
	assert.Equal(t, 0, doc.Find("#guide .guide-card").Length())
	assert.Equal(t, "ALL 0 RECIPES", doc.Find("#recipe-grid h2").Text())
	assert.Contains(t, doc.Find("#hero").Text(), "RECIPE 1")
	assert.Contains(t, doc.Find("#hero").Text(), "RECIPE 2")
}

func TestPackPage_FeatureIcons(t *testing.T) {
	cfg := blueberry(t)
	doc := parseHTML(t, render(t, pages.PackPage(cfg)))

	tiles := doc.Find("#features .grid > div")
	require.Equal(t, 3, tiles.Length())
	assert.Equal(t, "🫐", tiles.Eq(0).Find("span.text-2xl").Text())
	assert.Equal(t, 1, tiles.Eq(1).Find("svg").Length())
	assert.Equal(t, 1, tiles.Eq(2).Find("svg").Length())

	cls, _ := tiles.Eq(0).Children().First().Attr("class")
	assert.Contains(t, cls, "bg-indigo-100")
	cls, _ = tiles.Eq(1).Children().First().Attr("class")
	assert.Contains(t, cls, "bg-accent-500/10")
	cls, _ = tiles.Eq(2).Children().First().Attr("class")
	assert.Contains(t, cls, "bg-blue-500/10")
}

func TestPackPage_GuideColumnsFollowCardCount(t *testing.T) {
	cfg, ok := packs.Find(packs.Default(), "pack-chocolate.html")
	require.True(t, ok)
	doc := parseHTML(t, render(t, pages.PackPage(cfg)))

	grid := doc.Find("#guide .grid")
	cls, _ := grid.Attr("class")
	assert.Contains(t, cls, "md:grid-cols-3")
	assert.Equal(t, 3, grid.Find(".guide-card").Length())

	section, _ := doc.Find("#guide").Attr("class")
	assert.Contains(t, section, "bg-amber-900")
}

func TestPackPage_EscapesText(t *testing.T) {
	cfg := blueberry(t)
	cfg.Recipes = []packs.Recipe{{Name: `<script>alert("x")</script>`, Protein: "1g"}}
	cfg.PackName = "Mom's Pack"
	out := render(t, pages.PackPage(cfg))

	assert.NotContains(t, out, `<script>alert`)
	doc := parseHTML(t, out)
	assert.Equal(t, `<script>alert("x")</script>`, doc.Find("#recipe-grid h3").Text())
	action, _ := doc.Find("#hero form").Attr("@submit.prevent")
	assert.Contains(t, action, `'Mom\'s Pack'`)
}

func TestSuccessPage(t *testing.T) {
	cfg := blueberry(t)
	out := render(t, pages.SuccessPage(cfg))
	assert.Equal(t, out, render(t, pages.SuccessPage(cfg)))

	doc := parseHTML(t, out)
	assert.Equal(t, "Download Your Blueberry Pack | ProteinMuffins.com", doc.Find("head title").Text())
	robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
	assert.Equal(t, "noindex, nofollow", robots)

	link := doc.Find("#download a[download]")
	href, _ := link.Attr("href")
	assert.Equal(t, "guides/pack-blueberry.pdf", href)
	assert.Equal(t, "YOUR BLUEBERRY PACK IS READY", doc.Find("#download h1").Text())

	items := doc.Find(".success-recipe")
	require.Equal(t, 4, items.Length())
	assert.Equal(t, "🫐 CLASSIC", items.First().Find("p.font-semibold").Text())
	assert.Equal(t, "19g protein per muffin", items.First().Find("p.text-sm").Text())

	back, _ := doc.Find(`a[href="pack-blueberry.html"]`).Attr("href")
	assert.Equal(t, "pack-blueberry.html", back)
}
