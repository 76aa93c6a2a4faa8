// Package pages renders the generated site's HTML documents. Every function
// here is pure: the same config always produces byte-identical output.
package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	siteName = "ProteinMuffins.com"
	logoSrc  = "muff-the-protein-muffins-logo.png"
	fontsURL = "https://fonts.googleapis.com/css2?family=Anton&family=Inter:wght@300;400;600;700&display=swap"
)

const tailwindConfig = `
        tailwind.config = {
            theme: {
                extend: {
                    fontFamily: { 'anton': ['Anton', 'sans-serif'], 'sans': ['Inter', 'sans-serif'] },
                    colors: { brand: { 50: '#fffbeb', 100: '#fef3c7', 500: '#f59e0b', 600: '#d97706', 900: '#451a03' }, accent: { 500: '#10b981' } },
                    backgroundImage: { 'grid-white': "url(\"data:image/svg+xml,%3csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 32 32' width='32' height='32' fill='none' stroke='rgb(255 255 255 / 0.05)'%3e%3cpath d='M0 .5H31.5V32'/%3e%3c/svg%3e\")" }
                }
            }
        }
    `

const baseStyles = `
        [x-cloak] { display: none !important }
        .glass-nav { background: rgba(255, 255, 255, 0.8); backdrop-filter: blur(12px) }
        .anton-text { font-family: 'Anton', sans-serif; letter-spacing: 0.05em }
        @keyframes float { 0%, 100% { transform: translateY(0) } 50% { transform: translateY(-10px) } }
        .animate-float { animation: float 3s ease-in-out infinite }
        @keyframes checkmark { 0% { transform: scale(0); opacity: 0 } 50% { transform: scale(1.2) } 100% { transform: scale(1); opacity: 1 } }
        .animate-checkmark { animation: checkmark 0.5s ease-out forwards }
    `

// document wraps head and body nodes into a complete HTML5 document.
func document(head []g.Node, bodyAttrs []g.Node, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"), h.Class("scroll-smooth"),
			h.Head(
				h.Meta(h.Charset("UTF-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				g.Group(head),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.gstatic.com"), g.Attr("crossorigin")),
				h.Link(h.Href(fontsURL), h.Rel("stylesheet")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("js/email-signup.js")),
				h.Script(h.Defer(), h.Src("https://cdn.jsdelivr.net/npm/alpinejs@3.x.x/dist/cdn.min.js")),
				h.Script(g.Raw(tailwindConfig)),
				h.StyleEl(g.Raw(baseStyles)),
			),
			h.Body(g.Group(bodyAttrs), g.Group(body)),
		),
	)
}

type navLink struct {
	href  string
	label string
}

var desktopNav = []navLink{
	{"index.html#recipes", "Recipes"},
	{"recipe-packs.html", "Recipe Packs"},
	{"/pack-30g-protein.html", "Macro Guide"},
}

// siteHeader renders the sticky header with the desktop nav and the
// Alpine-driven mobile menu. highlight is the label of the extra mobile link
// pointing at the macro guide.
func siteHeader(highlight, highlightClass string) g.Node {
	return h.Header(h.Class("sticky top-0 z-50 glass-nav border-b border-slate-200"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("flex justify-between items-center h-20"),
				h.A(h.Href("/"), h.Class("flex items-center"),
					h.Img(h.Src(logoSrc), h.Alt("Protein Muffins"), h.Class("h-12")),
				),
				h.Nav(h.Class("hidden md:flex space-x-8 items-center"),
					g.Map(desktopNav, func(l navLink) g.Node {
						return h.A(h.Href(l.href), h.Class("text-slate-600 hover:text-brand-600 font-semibold text-sm uppercase tracking-wider"), g.Text(l.label))
					}),
					h.A(h.Href("pack-starter.html"), h.Class("bg-brand-600 text-white px-5 py-2.5 rounded-full font-bold text-sm hover:bg-brand-900 transition shadow-lg shadow-brand-500/30"), g.Text("STARTER PACK (FREE)")),
				),
				h.Button(g.Attr("@click", "mobileMenu = !mobileMenu"), h.Class("md:hidden text-slate-900"), g.Raw(menuIcon)),
			),
		),
		h.Div(g.Attr("x-show", "mobileMenu"), g.Attr("x-transition"), g.Attr("x-cloak"), h.Class("md:hidden bg-white border-t border-slate-100 p-6 space-y-4 shadow-xl"),
			h.A(h.Href("index.html#recipes"), h.Class("block text-xl anton-text text-slate-900"), g.Text("RECIPES")),
			h.A(h.Href("recipe-packs.html"), h.Class("block text-xl anton-text text-slate-900"), g.Text("RECIPE PACKS")),
			h.A(h.Href("pack-30g-protein.html"), h.Class("block text-xl anton-text "+highlightClass), g.Text(highlight)),
		),
	)
}

type footerColumn struct {
	title string
	links []navLink
}

var footerColumns = []footerColumn{
	{"POPULAR RECIPES", []navLink{
		{"protein-banana-muffins.html", "Protein Banana Muffins"},
		{"chocolate-protein-muffins.html", "Chocolate Protein Muffins"},
		{"protein-blueberry-muffins.html", "Blueberry Protein Muffins"},
	}},
	{"RECIPE PACKS", []navLink{
		{"pack-starter.html", "Starter Pack (Free)"},
		{"pack-30g-protein.html", "30g+ Protein Pack"},
		{"pack-chocolate.html", "Chocolate Lovers Pack"},
	}},
	{"RESOURCES", []navLink{
		{"pack-30g-protein.html", "Macro Guide"},
		{"recipe-packs.html", "All Recipe Packs"},
		{"index.html#recipes", "Browse All Recipes"},
	}},
}

func siteFooter() g.Node {
	return h.Footer(h.Class("bg-slate-900 text-white pt-16 pb-8"),
		h.Div(h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-10 mb-12"),
				h.Div(h.Class("lg:col-span-1"),
					h.A(h.Href("/"), h.Class("block mb-5"), h.Img(h.Src(logoSrc), h.Alt("Protein Muffins"), h.Class("h-14"))),
					h.P(h.Class("text-slate-400 text-sm leading-relaxed"), g.Text("The ultimate destination for macro-verified protein muffin recipes.")),
				),
				g.Map(footerColumns, func(col footerColumn) g.Node {
					return h.Div(
						h.H4(h.Class("anton-text text-lg mb-5 tracking-wide text-white"), g.Text(col.title)),
						h.Ul(h.Class("space-y-3 text-sm"),
							g.Map(col.links, func(l navLink) g.Node {
								return h.Li(h.A(h.Href(l.href), h.Class("text-slate-400 hover:text-brand-500 transition"), g.Text(l.label)))
							}),
						),
					)
				}),
			),
			h.Div(h.Class("border-t border-slate-800 pt-8 flex flex-col md:flex-row justify-between items-center gap-4"),
				h.P(h.Class("text-slate-500 text-xs font-medium"), g.Text("© 2026 "+siteName+". All rights reserved.")),
				h.Div(h.Class("flex items-center space-x-6 text-xs font-medium"),
					h.A(h.Href("privacy.html"), h.Class("text-slate-500 hover:text-white transition"), g.Text("Privacy Policy")),
					h.A(h.Href("terms.html"), h.Class("text-slate-500 hover:text-white transition"), g.Text("Terms of Use")),
				),
			),
		),
	)
}
