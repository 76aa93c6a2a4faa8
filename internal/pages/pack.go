package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/proteinmuffins/muffins/internal/packs"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PackPage renders the landing page for one recipe pack.
func PackPage(cfg packs.PageConfig) g.Node {
	c := cfg.Palette()

	head := []g.Node{
		h.TitleEl(g.Text(cfg.Title)),
		h.Meta(h.Name("description"), h.Content(cfg.Description)),
		h.Link(h.Rel("alternate"), h.Type("application/pdf"), h.Href(cfg.PDF)),
		h.Meta(h.Name("pdf-url"), h.Content(cfg.PDF)),
	}
	bodyAttrs := []g.Node{
		h.Class("min-h-screen flex flex-col bg-slate-50 text-slate-900 font-sans"),
		g.Attr("x-data", "{ mobileMenu: false }"),
		g.Attr("data-pdf", cfg.PDF),
	}

	return document(head, bodyAttrs,
		siteHeader(cfg.HeroTitle, "text-"+c.Text),
		h.Main(h.Class("flex-grow"),
			heroSection(cfg, c),
			featureSection(cfg, c),
			recipeSection(cfg, c),
			guideSection(cfg, c),
			finalCTASection(cfg, c),
		),
		mobileCTA(cfg, c),
		siteFooter(),
		h.Script(h.Defer(), h.Src("js/pack-picker.js")),
	)
}

// signupAction is the Alpine submit handler shared by both signup forms.
func signupAction(cfg packs.PageConfig) string {
	return fmt.Sprintf("loading = true; EmailSignup.submit(email, '%s', '%s')", jsString(cfg.PackName), jsString(cfg.SuccessPage))
}

func jsString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

func heroSection(cfg packs.PageConfig, c packs.Palette) g.Node {
	return h.Section(h.ID("hero"), h.Class("relative bg-slate-900 py-16 lg:py-28 overflow-hidden"),
		h.Div(h.Class("absolute inset-0 bg-grid-white pointer-events-none")),
		h.Div(h.Class("absolute top-0 right-0 -translate-y-1/2 translate-x-1/2 w-[600px] h-[600px] bg-"+c.Accent+"/20 rounded-full blur-[120px]")),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 relative z-10"),
			h.Div(h.Class("flex flex-col lg:flex-row items-center gap-16"),
				h.Div(h.Class("w-full lg:w-1/2"),
					h.Span(h.Class("inline-block px-4 py-1 bg-"+c.Accent+" text-white font-bold text-xs uppercase tracking-widest rounded-full mb-6"), g.Text(cfg.HeroTagline)),
					h.H1(h.Class("anton-text text-5xl lg:text-8xl text-white leading-none mb-6 italic"),
						g.Text(cfg.HeroTitle+" "), h.Br(),
						h.Span(h.Class("text-"+c.Light+" underline decoration-accent-500"), g.Text(cfg.HeroSubtitle)),
					),
					h.P(h.Class("text-slate-300 text-lg lg:text-xl mb-8 max-w-xl leading-relaxed"), g.Raw(cfg.HeroDescription)),
					h.Div(h.Class("space-y-3 mb-10"),
						g.Map(cfg.Checklist, func(item string) g.Node {
							return h.Div(h.Class("flex items-center text-slate-200"),
								checkBullet(c.Light),
								h.Span(h.Class("font-medium uppercase tracking-tight text-sm"), g.Text(item)),
							)
						}),
					),
					h.Div(h.Class("bg-white/5 backdrop-blur-md p-2 rounded-3xl border border-white/10 max-w-md"), g.Attr("x-data", "{ email: '', loading: false }"),
						h.Form(g.Attr("@submit.prevent", signupAction(cfg)), h.Class("flex flex-col sm:flex-row gap-2"),
							h.Input(h.Type("email"), g.Attr("x-model", "email"), h.Required(), h.Placeholder("Enter your best email..."),
								h.Class("flex-grow bg-white px-6 py-4 rounded-2xl outline-none focus:ring-2 focus:ring-"+c.Accent+" text-slate-900 font-medium")),
							h.Button(h.Type("submit"), g.Attr(":disabled", "loading"),
								h.Class("bg-"+c.BG+" hover:bg-"+c.Dark+" text-white px-8 py-4 rounded-2xl font-bold anton-text tracking-wider transition shadow-lg disabled:opacity-50"),
								h.Span(g.Attr("x-show", "!loading"), g.Text("GET PACK")),
								h.Span(g.Attr("x-show", "loading"), g.Text("SENDING...")),
							),
						),
					),
				),
				pdfMockup(cfg, c),
			),
		),
	)
}

func pdfMockup(cfg packs.PageConfig, c packs.Palette) g.Node {
	tile := func(name string) g.Node {
		return h.Div(h.Class("h-20 bg-"+c.Subtle+" rounded-lg flex items-center justify-center"),
			h.Span(h.Class("text-[10px] font-bold text-"+c.Text), g.Text(name)),
		)
	}
	return h.Div(h.Class("w-full lg:w-1/2 flex justify-center relative"),
		h.Div(h.Class("relative w-72 h-96 lg:w-96 lg:h-[520px] bg-slate-800 rounded-3xl border-8 border-slate-700 shadow-2xl overflow-hidden animate-float"),
			h.Div(h.Class("absolute inset-0 bg-white p-6 flex flex-col"),
				h.Div(h.Class("bg-"+c.BG+" text-white p-4 -mx-6 -mt-6 mb-6"),
					h.H4(h.Class("anton-text text-2xl leading-none"), g.Text(cfg.PDFMockupTitle)),
					h.P(h.Class("text-[8px] opacity-70 uppercase tracking-widest"), g.Text(cfg.PDFMockupSubtitle)),
				),
				h.Div(h.Class("space-y-4"),
					h.Div(h.Class("h-4 w-3/4 bg-slate-100 rounded")),
					h.Div(h.Class("grid grid-cols-2 gap-2"),
						tile(cfg.RecipeName(0, "RECIPE 1")),
						tile(cfg.RecipeName(1, "RECIPE 2")),
					),
					h.Div(h.Class("space-y-2"),
						h.Div(h.Class("h-2 w-full bg-slate-50 rounded")),
						h.Div(h.Class("h-2 w-full bg-slate-50 rounded")),
						h.Div(h.Class("h-2 w-2/3 bg-slate-50 rounded")),
					),
				),
			),
		),
		h.Div(h.Class("absolute -bottom-6 -right-6 lg:right-12 bg-white p-6 rounded-full shadow-2xl flex flex-col items-center justify-center border-4 border-"+c.Accent),
			h.Span(h.Class("anton-text text-4xl text-slate-900 leading-none"), g.Text(cfg.PDFBadge)),
			h.Span(h.Class("text-[10px] font-black uppercase text-"+c.Text+" tracking-tighter"), g.Text(cfg.PDFBadgeLabel)),
		),
	)
}

// featureTile picks the icon tile colors by position: the pack accent first,
// then the site accent, then blue for everything after.
func featureTile(i int, c packs.Palette) (bg, text string) {
	switch i {
	case 0:
		return c.Subtle, c.Text
	case 1:
		return "accent-500/10", "accent-500"
	default:
		return "blue-500/10", "blue-500"
	}
}

func featureSection(cfg packs.PageConfig, c packs.Palette) g.Node {
	cards := make([]g.Node, 0, len(cfg.Features))
	for i, f := range cfg.Features {
		bg, text := featureTile(i, c)
		cards = append(cards, h.Div(h.Class("bg-slate-50 rounded-[2rem] p-8 border border-slate-100 hover:border-"+c.Accent+"/30 hover:shadow-xl transition duration-300"),
			h.Div(h.Class("w-14 h-14 bg-"+bg+" text-"+text+" rounded-2xl flex items-center justify-center mb-6"), featureIcon(f.Icon)),
			h.H4(h.Class("anton-text text-xl mb-3 tracking-tight"), g.Text(f.Title)),
			h.P(h.Class("text-slate-500 leading-relaxed text-sm"), g.Text(f.Desc)),
		))
	}

	return h.Section(h.ID("features"), h.Class("py-20 bg-white"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("text-center mb-16"),
				h.H2(h.Class("anton-text text-4xl lg:text-5xl text-slate-900 mb-4 uppercase"), g.Text("Everything Inside The Bundle")),
				h.P(h.Class("text-slate-500 max-w-2xl mx-auto text-lg font-medium"), g.Text("Macro-verified recipes with step-by-step instructions.")),
			),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}

func recipeSection(cfg packs.PageConfig, c packs.Palette) g.Node {
	return h.Section(h.ID("recipe-grid"), h.Class("py-24 bg-slate-50"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("text-center mb-16"),
				h.H2(h.Class("anton-text text-4xl lg:text-6xl text-slate-900 mb-4 uppercase"), g.Textf("ALL %d RECIPES", len(cfg.Recipes))),
			),
			h.Div(h.Class("grid grid-cols-2 lg:grid-cols-4 gap-6"),
				g.Map(cfg.Recipes, func(r packs.Recipe) g.Node {
					return h.Div(h.Class("recipe-card bg-white p-8 rounded-3xl text-center hover:shadow-xl transition border border-slate-100"),
						h.Span(h.Class("text-5xl block mb-4"), g.Text(r.Emoji)),
						h.H3(h.Class("anton-text text-xl"), g.Text(r.Name)),
						h.P(h.Class("text-"+c.Text+" font-bold"), g.Text(r.Protein+" protein")),
						h.P(h.Class("text-slate-500 text-sm mt-2"), g.Text(r.Desc)),
					)
				}),
			),
		),
	)
}

func guideSection(cfg packs.PageConfig, c packs.Palette) g.Node {
	return h.Section(h.ID("guide"), h.Class("py-24 bg-"+c.BG+" overflow-hidden relative"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 relative z-10"),
			h.Div(h.Class("text-center mb-16"),
				h.H2(h.Class("anton-text text-4xl lg:text-6xl text-white mb-4 uppercase"), g.Text(cfg.GuideTitle)),
			),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-"+strconv.Itoa(len(cfg.GuideCards))+" gap-8"),
				g.Map(cfg.GuideCards, func(card packs.GuideCard) g.Node {
					return h.Div(h.Class("guide-card bg-white/10 backdrop-blur p-8 rounded-3xl"),
						h.Span(h.Class("text-4xl block mb-4"), g.Text(card.Emoji)),
						h.H3(h.Class("font-bold text-xl text-white mb-2"), g.Text(card.Title)),
						h.P(h.Class("text-white/80 text-sm"), g.Text(card.Desc)),
					)
				}),
			),
		),
	)
}

func finalCTASection(cfg packs.PageConfig, c packs.Palette) g.Node {
	return h.Section(h.ID("final-cta"), h.Class("py-24 bg-slate-900 overflow-hidden relative"),
		h.Div(h.Class("absolute inset-0 opacity-10 flex items-center justify-center"),
			h.H2(h.Class("anton-text text-[20vw] text-white select-none pointer-events-none"), g.Text(cfg.FinalBgText)),
		),
		h.Div(h.Class("max-w-4xl mx-auto px-4 relative z-10 text-center"),
			h.H2(h.Class("anton-text text-5xl lg:text-7xl text-white mb-8 italic"), g.Text(cfg.FinalCTA)),
			h.Div(h.Class("bg-"+c.BG+" p-8 rounded-[2.5rem] shadow-2xl"), g.Attr("x-data", "{ email: '', loading: false }"),
				h.P(h.Class("text-white/90 text-lg mb-8 font-medium"), g.Text("Download the pack now. Includes all recipes and guides.")),
				h.Form(g.Attr("@submit.prevent", signupAction(cfg)), h.Class("flex flex-col sm:flex-row gap-4"),
					h.Input(h.Type("email"), g.Attr("x-model", "email"), h.Required(), h.Placeholder("Where should we send it?"),
						h.Class("flex-grow px-8 py-5 rounded-2xl bg-white text-slate-900 font-bold text-lg outline-none")),
					h.Button(h.Type("submit"), g.Attr(":disabled", "loading"),
						h.Class("bg-slate-900 hover:bg-slate-800 text-white px-10 py-5 rounded-2xl font-bold anton-text text-xl tracking-wider shadow-xl transition transform hover:scale-105 disabled:opacity-50"),
						h.Span(g.Attr("x-show", "!loading"), g.Text("FREE DOWNLOAD")),
						h.Span(g.Attr("x-show", "loading"), g.Text("SENDING...")),
					),
				),
			),
		),
	)
}

func mobileCTA(cfg packs.PageConfig, c packs.Palette) g.Node {
	return h.Div(h.Class("md:hidden sticky bottom-0 z-50 bg-white border-t border-"+c.Subtle+" p-4 shadow-[0_-10px_30px_rgba(0,0,0,0.1)]"),
		h.Button(g.Attr("@click", "window.scrollTo({top: 0, behavior: 'smooth'})"),
			h.Class("w-full bg-"+c.BG+" text-white py-4 rounded-2xl anton-text flex items-center justify-center space-x-3 text-lg"),
			g.Raw(downloadIcon),
			h.Span(g.Text(cfg.MobileCTA)),
		),
	)
}
