package packs

// Palette holds the Tailwind color tokens used for one accent color.
type Palette struct {
	BG     string
	Dark   string
	Light  string
	Accent string
	Subtle string
	Text   string
}

// DefaultAccent is used when a config names an unknown accent color.
const DefaultAccent = "indigo"

var palettes = map[string]Palette{
	"indigo":  shades("indigo", "600", "900", "600"),
	"amber":   shades("amber", "900", "950", "900"),
	"orange":  shades("orange", "600", "900", "600"),
	"emerald": shades("emerald", "600", "900", "600"),
	"sky":     shades("sky", "600", "900", "600"),
	"green":   shades("green", "600", "900", "600"),
}

func shades(color, bg, dark, text string) Palette {
	return Palette{
		BG:     color + "-" + bg,
		Dark:   color + "-" + dark,
		Light:  color + "-400",
		Accent: color + "-500",
		Subtle: color + "-100",
		Text:   color + "-" + text,
	}
}

// PaletteFor returns the palette for an accent color key.
func PaletteFor(accent string) Palette {
	if p, ok := palettes[accent]; ok {
		return p
	}
	return palettes[DefaultAccent]
}
