package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	menuIcon     = `<svg class="h-8 w-8" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 6h16M4 12h16m-7 6h7"></path></svg>`
	downloadIcon = `<svg class="w-6 h-6" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M4 16v1a3 3 0 003 3h10a3 3 0 003-3v-1m-4-4l-4 4m0 0l-4-4m4 4V4"></path></svg>`
	successIcon  = `<svg class="w-12 h-12 text-brand-500 animate-checkmark" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="3" d="M5 13l4 4L19 7"></path></svg>`
)

// featureIcons are the named icons a Feature may reference instead of an emoji.
var featureIcons = map[string]string{
	"check": `<svg class="w-7 h-7" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M9 12l2 2 4-4m6 2a9 9 0 11-18 0 9 9 0 0118 0z"></path></svg>`,
	"bolt":  `<svg class="w-7 h-7" fill="none" stroke="currentColor" viewBox="0 0 24 24"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="M13 10V3L4 14h7v7l9-11h-7z"></path></svg>`,
}

// checkBullet is the filled check used in front of hero checklist items.
func checkBullet(color string) g.Node {
	return g.Raw(`<svg class="w-5 h-5 text-` + color + ` mr-3" fill="currentColor" viewBox="0 0 20 20"><path fill-rule="evenodd" d="M10 18a8 8 0 100-16 8 8 0 000 16zm3.707-9.293a1 1 0 00-1.414-1.414L9 10.586 7.707 9.293a1 1 0 00-1.414 1.414l2 2a1 1 0 001.414 0l4-4z" clip-rule="evenodd"></path></svg>`)
}

// featureIcon renders a named SVG icon, or the icon text as an emoji when
// the name is unknown.
func featureIcon(icon string) g.Node {
	if svg, ok := featureIcons[icon]; ok {
		return g.Raw(svg)
	}
	if icon == "" {
		return nil
	}
	return h.Span(h.Class("text-2xl"), g.Text(icon))
}
