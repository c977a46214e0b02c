package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/ompatel2019/iphone-wallpaper/layout"
)

// Renderer turns a layout plan into PNG bytes.
type Renderer interface {
	Render(plan layout.Plan) ([]byte, error)
}

// GG rasterizes plans with the fogleman/gg drawing context.
type GG struct {
	fonts *FontSet
}

// NewGG builds the production renderer, parsing the embedded fonts.
func NewGG() (*GG, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	return &GG{fonts: fonts}, nil
}

// Render draws the plan: background, day dots (flat or month blocks),
// month labels, then caption lines.
func (g *GG) Render(plan layout.Plan) ([]byte, error) {
	dc := gg.NewContext(plan.Metrics.Width, plan.Metrics.Height)

	pal := plan.Variant.Palette
	dc.SetHexColor(pal.Background)
	dc.Clear()

	for _, c := range plan.Cells {
		drawCell(dc, pal, c)
	}

	if len(plan.Months) > 0 {
		if err := g.drawMonths(dc, plan); err != nil {
			return nil, err
		}
	}

	for _, caption := range plan.Captions {
		if err := g.drawCaption(dc, caption); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCell(dc *gg.Context, pal layout.Palette, c layout.Cell) {
	if c.Day == 0 {
		// Empty placeholder slot in a month block
		return
	}
	dc.SetHexColor(pal.Hex(c.Token))
	dc.DrawCircle(c.X, c.Y, c.R)
	dc.Fill()
}

func (g *GG) drawMonths(dc *gg.Context, plan layout.Plan) error {
	pal := plan.Variant.Palette

	// All labels share one size
	face, err := g.fonts.Face(layout.StyleBold, plan.Months[0].LabelSize)
	if err != nil {
		return err
	}

	for _, block := range plan.Months {
		dc.SetFontFace(face)
		dc.SetHexColor(pal.Muted)
		dc.DrawStringAnchored(block.Name, block.LabelX, block.LabelY, 0.5, 0.5)

		for _, c := range block.Cells {
			drawCell(dc, pal, c)
		}
	}
	return nil
}

// drawCaption measures the segments as one run and centers the block,
// then draws each segment in its own color.
func (g *GG) drawCaption(dc *gg.Context, caption layout.Caption) error {
	face, err := g.fonts.Face(caption.Style, caption.Size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	widths := make([]float64, len(caption.Segments))
	total := 0.0
	for i, seg := range caption.Segments {
		w, _ := dc.MeasureString(seg.Text)
		widths[i] = w
		total += w
	}

	x := caption.CenterX - total/2
	for i, seg := range caption.Segments {
		dc.SetHexColor(seg.Color)
		dc.DrawStringAnchored(seg.Text, x, caption.CenterY, 0, 0.5)
		x += widths[i]
	}
	return nil
}
