package pages

import (
	"strconv"
	"strings"

	"github.com/proteinmuffins/muffins/internal/packs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SuccessPage renders the download page a signup form redirects to.
func SuccessPage(cfg packs.PageConfig) g.Node {
	c := cfg.Palette()
	title := "Download Your " + cfg.PackName

	head := []g.Node{
		h.TitleEl(g.Text(title + " | " + siteName)),
		h.Meta(h.Name("description"), h.Content("Download your "+cfg.PackName+" with protein muffin recipes.")),
		h.Meta(h.Name("robots"), h.Content("noindex, nofollow")),
		h.Meta(h.Name("theme-color"), h.Content("#f59e0b")),
		h.Link(h.Rel("icon"), h.Type("image/png"), h.Href("/"+logoSrc)),
	}
	bodyAttrs := []g.Node{
		h.Class("min-h-screen flex flex-col bg-slate-900 text-white font-sans"),
		g.Attr("x-data", "{ mobileMenu: false }"),
	}

	items := make([]g.Node, 0, len(cfg.Recipes))
	for i, r := range cfg.Recipes {
		items = append(items, h.Div(h.Class("success-recipe flex items-start gap-3"),
			h.Div(h.Class("w-6 h-6 bg-"+c.Accent+"/20 rounded-full flex items-center justify-center flex-shrink-0 mt-0.5"),
				h.Span(h.Class("text-"+c.Light+" text-sm font-bold"), g.Text(strconv.Itoa(i+1))),
			),
			h.Div(
				h.P(h.Class("text-white font-semibold"), g.Text(strings.TrimSpace(r.Emoji+" "+r.Name))),
				h.P(h.Class("text-slate-400 text-sm"), g.Text(r.Protein+" protein per muffin")),
			),
		))
	}

	return document(head, bodyAttrs,
		siteHeader(cfg.HeroTitle, "text-"+c.Text),
		h.Main(h.Class("flex-grow"),
			h.Section(h.ID("download"), h.Class("py-20"),
				h.Div(h.Class("max-w-2xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
					h.Div(h.Class("mb-8"),
						h.Div(h.Class("w-24 h-24 bg-brand-500/20 rounded-full mx-auto flex items-center justify-center"), g.Raw(successIcon)),
					),
					h.Span(h.Class("inline-block px-4 py-1 bg-brand-500/20 text-brand-500 text-sm font-bold rounded-full mb-4"), g.Text("SUCCESS!")),
					h.H1(h.Class("anton-text text-4xl lg:text-5xl text-white mb-4"), g.Text("YOUR "+cases.Upper(language.English).String(cfg.PackName)+" IS READY")),
					h.P(h.Class("text-slate-400 text-lg mb-8"), g.Text(cfg.PDFMockupSubtitle)),
					h.A(h.Href(cfg.PDF), g.Attr("download"),
						h.Class("inline-flex items-center justify-center gap-3 bg-"+c.BG+" text-white px-10 py-4 rounded-xl font-bold text-lg hover:bg-"+c.Dark+" transition shadow-lg mb-8"),
						g.Raw(downloadIcon), g.Text("DOWNLOAD PDF"),
					),
					h.Div(h.Class("bg-slate-800/50 border border-white/10 rounded-2xl p-8 text-left mt-12"),
						h.H2(h.Class("anton-text text-xl text-white mb-6"), g.Text("WHAT'S INSIDE YOUR PACK")),
						h.Div(h.Class("space-y-4"), g.Group(items)),
						h.Div(h.Class("border-t border-white/10 mt-6 pt-6"),
							h.P(h.Class("text-slate-400 text-sm"), g.Text("Plus: Shopping list, nutrition facts, storage tips, and printable recipe cards!")),
						),
					),
					h.Div(h.Class("mt-12"),
						h.P(h.Class("text-slate-400 mb-4"), g.Text("Want more recipes?")),
						h.A(h.Href(cfg.Filename), h.Class("text-"+c.Light+" font-semibold hover:underline"), g.Text("Back to the "+cfg.PackName+" →")),
					),
				),
			),
		),
		siteFooter(),
	)
}
