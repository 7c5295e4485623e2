// Package poster maps a project record plus a theme onto a fixed A4 poster
// layout. Render is pure; Rasterize turns the resulting document tree into a
// PNG for print/export.
package poster

// ThemeColors are the tokens the renderer consumes. Hex strings, #RRGGBB.
type ThemeColors struct {
	Primary      string `json:"primary"`
	Secondary    string `json:"secondary"`
	Accent       string `json:"accent"`
	Background   string `json:"background"`
	GradientFrom string `json:"gradient_from"`
	GradientTo   string `json:"gradient_to"`
	Text         string `json:"text"`
}

// Theme is a static visual style descriptor. Themes are pre-defined, loaded
// once per process and never mutated.
type Theme struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Colors ThemeColors `json:"colors"`
}

var themes = []Theme{
	{
		ID:   "solar-orange",
		Name: "Solar Blast",
		Colors: ThemeColors{
			Primary:      "#ea580c",
			Secondary:    "#facc15",
			Accent:       "#ea580c",
			Background:   "#ffffff",
			GradientFrom: "#ea580c",
			GradientTo:   "#eab308",
			Text:         "#111827",
		},
	},
	{
		ID:   "eco-green",
		Name: "Eco Green",
		Colors: ThemeColors{
			Primary:      "#15803d",
			Secondary:    "#34d399",
			Accent:       "#15803d",
			Background:   "#f0fdf4",
			GradientFrom: "#15803d",
			GradientTo:   "#10b981",
			Text:         "#111827",
		},
	},
	{
		ID:   "ocean-blue",
		Name: "Ocean Energy",
		Colors: ThemeColors{
			Primary:      "#1d4ed8",
			Secondary:    "#22d3ee",
			Accent:       "#1d4ed8",
			Background:   "#eff6ff",
			GradientFrom: "#1d4ed8",
			GradientTo:   "#06b6d4",
			Text:         "#111827",
		},
	},
	{
		ID:   "modern-dark",
		Name: "Modern Dark",
		Colors: ThemeColors{
			Primary:      "#1f2937",
			Secondary:    "#8b5cf6",
			Accent:       "#a78bfa",
			Background:   "#111827",
			GradientFrom: "#1f2937",
			GradientTo:   "#374151",
			Text:         "#f3f4f6",
		},
	},
}

// Themes returns the immutable theme catalog.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Lookup returns the theme with the given id, falling back to the first
// theme so a stale or blank id still renders.
func Lookup(id string) Theme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}
