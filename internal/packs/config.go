package packs

// PageConfig is the static content record that drives one generated pack page.
// Filename is the only identity a config has.
type PageConfig struct {
	Filename    string `yaml:"filename" json:"filename"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	PDF         string `yaml:"pdf" json:"pdf"`
	SuccessPage string `yaml:"successPage" json:"successPage"`
	PackName    string `yaml:"packName" json:"packName"`

	HeroTitle    string `yaml:"heroTitle" json:"heroTitle"`
	HeroSubtitle string `yaml:"heroSubtitle" json:"heroSubtitle"`
	HeroTagline  string `yaml:"heroTagline" json:"heroTagline"`
	// HeroDescription is trusted markup and is emitted without escaping.
	HeroDescription string   `yaml:"heroDescription" json:"heroDescription"`
	AccentColor     string   `yaml:"accentColor" json:"accentColor"`
	Checklist       []string `yaml:"checklist" json:"checklist"`

	PDFMockupTitle    string `yaml:"pdfMockupTitle" json:"pdfMockupTitle"`
	PDFMockupSubtitle string `yaml:"pdfMockupSubtitle" json:"pdfMockupSubtitle"`
	PDFBadge          string `yaml:"pdfBadge" json:"pdfBadge"`
	PDFBadgeLabel     string `yaml:"pdfBadgeLabel" json:"pdfBadgeLabel"`

	Features   []Feature   `yaml:"features" json:"features"`
	Recipes    []Recipe    `yaml:"recipes" json:"recipes"`
	GuideTitle string      `yaml:"guideTitle" json:"guideTitle"`
	GuideCards []GuideCard `yaml:"guideCards" json:"guideCards"`

	FinalCTA    string `yaml:"finalCta" json:"finalCta"`
	FinalBgText string `yaml:"finalBgText" json:"finalBgText"`
	Image       string `yaml:"image" json:"image"`
	MobileCTA   string `yaml:"mobileCta" json:"mobileCta"`
}

// Feature is one tile of the "everything inside" grid. Icon is either a
// named icon ("check", "bolt") or an emoji.
type Feature struct {
	Icon  string `yaml:"icon" json:"icon"`
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

// Recipe is one card of the recipe grid.
type Recipe struct {
	Emoji   string `yaml:"emoji" json:"emoji"`
	Name    string `yaml:"name" json:"name"`
	Protein string `yaml:"protein" json:"protein"`
	Desc    string `yaml:"desc" json:"desc"`
}

// GuideCard is one card of the guide section.
type GuideCard struct {
	Emoji string `yaml:"emoji" json:"emoji"`
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

// Palette returns the accent shades for the config.
func (c PageConfig) Palette() Palette {
	return PaletteFor(c.AccentColor)
}

// RecipeName returns the name of the i-th recipe, or fallback when the
// config has fewer recipes.
func (c PageConfig) RecipeName(i int, fallback string) string {
	if i < 0 || i >= len(c.Recipes) || c.Recipes[i].Name == "" {
		return fallback
	}
	return c.Recipes[i].Name
}

// Find returns the config with the given filename.
func Find(catalog []PageConfig, filename string) (PageConfig, bool) {
	for _, c := range catalog {
		if c.Filename == filename {
			return c, true
		}
	}
	return PageConfig{}, false
}
