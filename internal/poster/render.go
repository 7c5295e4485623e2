package poster

import "github.com/MakerFest-25-26/makerfest-backend/internal/projects/domain"

// A4 portrait at 96dpi. Rasterization scales this up for print.
const (
	PageWidth  = 794.0
	PageHeight = 1123.0
)

// Block kinds.
const (
	KindHeader      = "header"
	KindTitle       = "title"
	KindByline      = "byline"
	KindEventLabel  = "event-label"
	KindSection     = "section"
	KindImage       = "image"
	KindPlaceholder = "image-placeholder"
	KindPanel       = "panel"
	KindFooter      = "footer"
)

// Rect is a block's position and size on the page, in page units.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Block is one visual element of the poster. Field is non-empty only in
// editable mode, naming the record field a host-side input surface mutates;
// the renderer itself holds no state.
type Block struct {
	Kind         string  `json:"kind"`
	Rect         Rect    `json:"rect"`
	Fill         string  `json:"fill,omitempty"`
	GradientFrom string  `json:"gradient_from,omitempty"`
	GradientTo   string  `json:"gradient_to,omitempty"`
	BorderColor  string  `json:"border_color,omitempty"`
	Title        string  `json:"title,omitempty"`
	TitleColor   string  `json:"title_color,omitempty"`
	Body         string  `json:"body,omitempty"`
	BodyColor    string  `json:"body_color,omitempty"`
	Field        string  `json:"field,omitempty"`
	FontSize     float64 `json:"font_size,omitempty"`
	Italic       bool    `json:"italic,omitempty"`
	ImageRef     string  `json:"image_ref,omitempty"`
}

// Document is the structured poster tree, ready for rasterization.
type Document struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Background string  `json:"background"`
	Blocks     []Block `json:"blocks"`
}

// Layout carries the fixed event strings stamped onto every poster.
type Layout struct {
	EventLabel  string
	EventSub    string
	FooterStamp string
}

// DefaultLayout is the event branding for this season.
var DefaultLayout = Layout{
	EventLabel:  "MakerFest 2025",
	EventSub:    "Design Thinking Portfolio",
	FooterStamp: "Generated via MakerFest Portfolio • 2025",
}

func field(editable bool, name string) string {
	if editable {
		return name
	}
	return ""
}

// Render maps (record, theme, editable) onto the fixed poster template. It is
// a pure function: no I/O, no clock, no randomness; identical inputs produce
// identical documents. Blank narrative fields render as blank, and a missing
// image renders as a placeholder, never an error.
func (l Layout) Render(p domain.Project, t Theme, editable bool) *Document {
	const (
		margin  = 40.0
		gap     = 24.0
		headerH = 140.0
		footerH = 48.0
	)

	doc := &Document{
		Width:      PageWidth,
		Height:     PageHeight,
		Background: t.Colors.Background,
	}

	// Header band: gradient, title, byline, static event label.
	doc.Blocks = append(doc.Blocks,
		Block{
			Kind:         KindHeader,
			Rect:         Rect{0, 0, PageWidth, headerH},
			GradientFrom: t.Colors.GradientFrom,
			GradientTo:   t.Colors.GradientTo,
		},
		Block{
			Kind:      KindTitle,
			Rect:      Rect{margin, 28, PageWidth - 2*margin - 180, 52},
			Body:      p.ProjectTitle,
			BodyColor: "#ffffff",
			Field:     field(editable, "project_title"),
			FontSize:  34,
		},
	)
	if editable {
		// Name and class become separate input surfaces.
		doc.Blocks = append(doc.Blocks,
			Block{
				Kind:      KindByline,
				Rect:      Rect{margin, 88, 220, 28},
				Body:      p.Name,
				BodyColor: "#ffffff",
				Field:     "name",
				FontSize:  17,
			},
			Block{
				Kind:      KindByline,
				Rect:      Rect{margin + 244, 88, 120, 28},
				Body:      p.Class,
				BodyColor: "#ffffff",
				Field:     "class",
				FontSize:  17,
			},
		)
	} else {
		doc.Blocks = append(doc.Blocks, Block{
			Kind:      KindByline,
			Rect:      Rect{margin, 88, PageWidth - 2*margin - 180, 28},
			Body:      "By " + p.Name + " • Class " + p.Class,
			BodyColor: "#ffffff",
			FontSize:  17,
		})
	}
	doc.Blocks = append(doc.Blocks,
		Block{
			Kind:      KindEventLabel,
			Rect:      Rect{PageWidth - margin - 170, 32, 170, 40},
			Title:     l.EventLabel,
			Body:      l.EventSub,
			BodyColor: "#ffffff",
			FontSize:  11,
		},
	)

	// Two-column body grid: 7/12 primary, 5/12 secondary.
	bodyTop := headerH + margin
	bodyW := PageWidth - 2*margin
	leftW := bodyW*7/12 - gap/2
	rightW := bodyW*5/12 - gap/2
	rightX := margin + leftW + gap

	sectionFill := "#ffffff"
	if t.Colors.Background == "#111827" {
		sectionFill = "#1f2937"
	}

	y := bodyTop
	primary := []struct {
		title, body, field string
		h                  float64
	}{
		{"1. The Problem", p.ProblemStatement, "problem_statement", 140},
		{"2. The Solution", p.ProjectIdea, "project_idea", 140},
		{"3. How It Works", p.Working, "working", 160},
	}
	for _, sec := range primary {
		doc.Blocks = append(doc.Blocks, Block{
			Kind:       KindSection,
			Rect:       Rect{margin, y, leftW, sec.h},
			Fill:       sectionFill,
			Title:      sec.title,
			TitleColor: t.Colors.Accent,
			Body:       sec.body,
			BodyColor:  t.Colors.Text,
			Field:      field(editable, sec.field),
			FontSize:   13,
		})
		y += sec.h + gap
	}

	// 2-up challenges / learnings panel.
	halfW := (leftW - gap/2*1) / 2
	doc.Blocks = append(doc.Blocks,
		Block{
			Kind:       KindSection,
			Rect:       Rect{margin, y, halfW, 150},
			Fill:       sectionFill,
			Title:      "Challenges",
			TitleColor: t.Colors.Accent,
			Body:       p.Challenges,
			BodyColor:  t.Colors.Text,
			Field:      field(editable, "challenges"),
			FontSize:   11,
		},
		Block{
			Kind:       KindSection,
			Rect:       Rect{margin + halfW + gap/2, y, halfW, 150},
			Fill:       sectionFill,
			Title:      "Key Learnings",
			TitleColor: t.Colors.Accent,
			Body:       p.Learned,
			BodyColor:  t.Colors.Text,
			Field:      field(editable, "learned"),
			FontSize:   11,
		},
	)

	// Secondary column: square image slot, materials, future scope.
	imgKind := KindImage
	if p.ImagePath == "" {
		imgKind = KindPlaceholder
	}
	doc.Blocks = append(doc.Blocks,
		Block{
			Kind:        imgKind,
			Rect:        Rect{rightX, bodyTop, rightW, rightW},
			BorderColor: t.Colors.Secondary,
			Body:        "No Image",
			BodyColor:   "#9ca3af",
			ImageRef:    p.ImagePath,
			FontSize:    14,
		},
		Block{
			Kind:       KindPanel,
			Rect:       Rect{rightX, bodyTop + rightW + gap, rightW, 180},
			Fill:       t.Colors.Primary,
			Title:      "Materials Used",
			TitleColor: "#ffffff",
			Body:       p.Materials,
			BodyColor:  "#ffffff",
			Field:      field(editable, "materials"),
			FontSize:   11,
		},
		Block{
			Kind:       KindSection,
			Rect:       Rect{rightX, bodyTop + rightW + 180 + 2*gap, rightW, 150},
			Fill:       sectionFill,
			Title:      "Future Scope",
			TitleColor: t.Colors.Accent,
			Body:       p.Future,
			BodyColor:  t.Colors.Text,
			Field:      field(editable, "future"),
			FontSize:   11,
			Italic:     true,
		},
	)

	doc.Blocks = append(doc.Blocks, Block{
		Kind:      KindFooter,
		Rect:      Rect{0, PageHeight - footerH, PageWidth, footerH},
		Body:      l.FooterStamp,
		BodyColor: "#4b5563",
		FontSize:  10,
	})

	return doc
}

// Render renders with the default event layout.
func Render(p domain.Project, t Theme, editable bool) *Document {
	return DefaultLayout.Render(p, t, editable)
}

// ApplyField writes a single edited value back into the record. It is the
// host-side half of editable mode: the caller owns the record, applies each
// (field, value) callback here and re-renders. Returns false for unknown
// field names.
func ApplyField(p *domain.Project, fieldName, value string) bool {
	switch fieldName {
	case "project_title":
		p.ProjectTitle = value
	case "name":
		p.Name = value
	case "class":
		p.Class = value
	case "problem_statement":
		p.ProblemStatement = value
	case "project_idea":
		p.ProjectIdea = value
	case "working":
		p.Working = value
	case "challenges":
		p.Challenges = value
	case "learned":
		p.Learned = value
	case "materials":
		p.Materials = value
	case "future":
		p.Future = value
	default:
		return false
	}
	return true
}
