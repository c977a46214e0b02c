package layout

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/ompatel2019/iphone-wallpaper/progress"
)

const captionSeparator = " · "

// Segment is one run of caption text with its resolved color.
type Segment struct {
	Text  string
	Color string
}

// Caption is a line of segments centered at a point. The renderer
// measures the joined segments and centers the block at CenterX.
type Caption struct {
	Segments []Segment
	CenterX  float64
	CenterY  float64
	Size     float64 // px
	Style    FontStyle
}

// Compose builds the caption lines for a variant. Sizes are derived from
// the canvas height so the text scales with the requested resolution.
func Compose(prog progress.Progress, v Variant, m Metrics) []Caption {
	h := float64(m.Height)
	centerX := float64(m.Width) / 2
	band := m.BottomTextSpace
	p := v.Palette

	switch v.Caption {
	case CaptionPercent:
		// Large percentage over the tagline, stacked in two fixed slots.
		slot := band / 2
		captions := []Caption{{
			Segments: []Segment{{Text: strconv.Itoa(prog.Percentage) + "%", Color: p.Accent}},
			CenterX:  centerX,
			CenterY:  h - band + slot/2,
			Size:     h * 0.045,
			Style:    StyleBold,
		}}
		if v.Tagline != "" {
			captions = append(captions, Caption{
				Segments: []Segment{{Text: v.Tagline, Color: p.Muted}},
				CenterX:  centerX,
				CenterY:  h - slot/2,
				Size:     h * 0.016,
				Style:    StyleItalic,
			})
		}
		return captions

	case CaptionOrdinal:
		slot := band / 2
		return []Caption{
			{
				Segments: []Segment{{
					Text:  humanize.Ordinal(prog.DayOfYear) + " day of " + strconv.Itoa(prog.Year),
					Color: p.Text,
				}},
				CenterX: centerX,
				CenterY: h - band + slot/2,
				Size:    h * 0.022,
				Style:   StyleBold,
			},
			{
				Segments: []Segment{{
					Text:  fmt.Sprintf("%dd left%s%d%%", prog.DaysLeft, captionSeparator, prog.Percentage),
					Color: p.Muted,
				}},
				CenterX: centerX,
				CenterY: h - slot/2,
				Size:    h * 0.018,
				Style:   StyleRegular,
			},
		}

	default: // CaptionStats
		return []Caption{{
			Segments: []Segment{
				{Text: fmt.Sprintf("%dd done", prog.DayOfYear), Color: p.Text},
				{Text: captionSeparator, Color: p.Muted},
				{Text: fmt.Sprintf("%dd left", prog.DaysLeft), Color: p.Muted},
				{Text: captionSeparator, Color: p.Muted},
				{Text: strconv.Itoa(prog.Percentage) + "%", Color: p.Accent},
			},
			CenterX: centerX,
			CenterY: h - band/2,
			Size:    h * 0.020,
			Style:   StyleRegular,
		}}
	}
}
