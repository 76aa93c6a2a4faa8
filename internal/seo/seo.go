// Package seo adds canonical, Open Graph and Twitter card tags to existing
// recipe pages.
package seo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	siteURL      = "https://proteinmuffins.com/"
	siteName     = "ProteinMuffins.com"
	titleSuffix  = " | ProteinMuffins.com"
	defaultImage = "muff-the-protein-muffins-logo.png"
	themeColor   = "#f59e0b"

	maxDescriptionRunes = 150
)

// Outcome describes what Inject did with a page.
type Outcome int

const (
	Updated Outcome = iota
	SkippedHasCanonical
	SkippedNoDescription
	SkippedMissing
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case SkippedHasCanonical:
		return "already has canonical"
	case SkippedNoDescription:
		return "no meta description found"
	case SkippedMissing:
		return "not found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Meta is what Inject read from a page.
type Meta struct {
	Title       string
	Description string
	Image       string
}

var descriptionTag = regexp.MustCompile(`<meta name="description"[^>]*>`)

// Inject inserts the SEO tag block directly after the page's meta
// description tag. Pages that already declare a canonical link, or have no
// meta description, are returned unchanged.
func Inject(filename string, page []byte) ([]byte, Outcome, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if doc.Find(`link[rel="canonical"]`).Length() > 0 {
		return page, SkippedHasCanonical, nil
	}

	loc := descriptionTag.FindIndex(page)
	if loc == nil {
		return page, SkippedNoDescription, nil
	}

	block, err := renderTags(filename, Extract(filename, doc))
	if err != nil {
		return nil, 0, err
	}

	out := make([]byte, 0, len(page)+len(block))
	out = append(out, page[:loc[1]]...)
	out = append(out, block...)
	out = append(out, page[loc[1]:]...)
	return out, Updated, nil
}

// Extract reads the title, description and recipe image from doc. The
// filename stands in for a missing title, and the title for a missing
// description.
func Extract(filename string, doc *goquery.Document) Meta {
	m := Meta{Title: filename}
	if t := strings.TrimSpace(doc.Find("head title").First().Text()); t != "" {
		m.Title = strings.Replace(t, titleSuffix, "", 1)
	}
	m.Description = m.Title
	if d, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && d != "" {
		m.Description = d
	}

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if img := firstImage(s.Text()); img != "" {
			m.Image = img
			return false
		}
		return true
	})
	return m
}

// jsonFrame tracks one open object or array while scanning tokens.
type jsonFrame struct {
	object  bool
	wantKey bool
}

// firstImage returns the first string-valued "image" property of a JSON-LD
// block in document order, at any depth. Malformed JSON yields whatever was
// found before the syntax error.
func firstImage(raw string) string {
	dec := json.NewDecoder(strings.NewReader(raw))
	var stack []jsonFrame
	key := ""
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			continue
		}

		if n := len(stack); n > 0 && stack[n-1].object {
			top := &stack[n-1]
			if top.wantKey {
				key, _ = tok.(string)
				top.wantKey = false
				continue
			}
			top.wantKey = true
			if v, ok := tok.(string); ok && key == "image" && v != "" {
				return v
			}
		}

		if d, ok := tok.(json.Delim); ok {
			stack = append(stack, jsonFrame{object: d == '{', wantKey: d == '{'})
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func absolute(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return siteURL + strings.TrimPrefix(path, "/")
}

func renderTags(filename string, m Meta) ([]byte, error) {
	url := siteURL + filename
	image := absolute(defaultImage)
	if m.Image != "" {
		image = absolute(m.Image)
	}

	tags := []g.Node{
		h.Meta(h.Name("robots"), h.Content("index, follow")),
		h.Link(h.Rel("canonical"), h.Href(url)),
		h.Meta(g.Attr("property", "og:type"), h.Content("article")),
		h.Meta(g.Attr("property", "og:site_name"), h.Content(siteName)),
		h.Meta(g.Attr("property", "og:title"), h.Content(m.Title)),
		h.Meta(g.Attr("property", "og:description"), h.Content(truncate(m.Description, maxDescriptionRunes))),
		h.Meta(g.Attr("property", "og:image"), h.Content(image)),
		h.Meta(g.Attr("property", "og:url"), h.Content(url)),
		h.Meta(h.Name("twitter:card"), h.Content("summary_large_image")),
		h.Meta(h.Name("twitter:title"), h.Content(m.Title)),
		h.Meta(h.Name("twitter:image"), h.Content(image)),
		h.Meta(h.Name("theme-color"), h.Content(themeColor)),
		h.Link(h.Rel("icon"), h.Type("image/png"), h.Href("/"+defaultImage)),
		h.Link(h.Rel("dns-prefetch"), h.Href("//cdn.tailwindcss.com")),
	}

	var buf bytes.Buffer
	for _, tag := range tags {
		buf.WriteString("\n    ")
		if err := tag.Render(&buf); err != nil {
			return nil, fmt.Errorf("failed to render seo tags: %w", err)
		}
	}
	return buf.Bytes(), nil
}
