package poster

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// PrintScale is the raster multiplier used for print-sharp A4 output.
const PrintScale = 2.0

// Rasterize draws the document tree to a PNG. The canvas is the page size
// multiplied by scale; layout coordinates stay in page units.
func Rasterize(doc *Document, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}

	dc := gg.NewContext(int(doc.Width*scale), int(doc.Height*scale))
	dc.Scale(scale, scale)
	dc.SetFontFace(basicfont.Face7x13)

	bg, err := parseHex(doc.Background)
	if err != nil {
		return nil, err
	}
	dc.SetColor(bg)
	dc.Clear()

	for _, b := range doc.Blocks {
		if err := drawBlock(dc, b); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode poster: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBlock(dc *gg.Context, b Block) error {
	r := b.Rect

	switch {
	case b.GradientFrom != "" && b.GradientTo != "":
		from, err := parseHex(b.GradientFrom)
		if err != nil {
			return err
		}
		to, err := parseHex(b.GradientTo)
		if err != nil {
			return err
		}
		grad := gg.NewLinearGradient(r.X, r.Y, r.X+r.W, r.Y)
		grad.AddColorStop(0, from)
		grad.AddColorStop(1, to)
		dc.SetFillStyle(grad)
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		dc.Fill()

	case b.Fill != "":
		fill, err := parseHex(b.Fill)
		if err != nil {
			return err
		}
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 8)
		dc.Fill()
	}

	if b.Kind == KindImage || b.Kind == KindPlaceholder {
		// The image slot always draws: a neutral box with a border, with the
		// placeholder text when no image reference exists. Actual image
		// pixels are composited by the caller; the slot itself never errors.
		dc.SetHexColor("#e5e7eb")
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 12)
		dc.Fill()
		if b.BorderColor != "" {
			border, err := parseHex(b.BorderColor)
			if err != nil {
				return err
			}
			dc.SetColor(border)
			dc.SetLineWidth(4)
			dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 12)
			dc.Stroke()
		}
		if b.Kind == KindPlaceholder {
			dc.SetHexColor("#9ca3af")
			dc.DrawStringAnchored(b.Body, r.X+r.W/2, r.Y+r.H/2, 0.5, 0.5)
		}
		return nil
	}

	pad := 14.0
	textY := r.Y + pad

	if b.Title != "" {
		title, err := parseHex(orDefault(b.TitleColor, "#111827"))
		if err != nil {
			return err
		}
		dc.SetColor(title)
		dc.DrawString(b.Title, r.X+pad, textY+10)
		textY += 26
	}

	if b.Body != "" {
		body, err := parseHex(orDefault(b.BodyColor, "#111827"))
		if err != nil {
			return err
		}
		dc.SetColor(body)
		dc.DrawStringWrapped(b.Body, r.X+pad, textY, 0, 0, r.W-2*pad, 1.5, gg.AlignLeft)
	}

	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// parseHex parses a #RRGGBB color token.
func parseHex(s string) (color.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("invalid color token %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color token %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
