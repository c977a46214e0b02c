package layout

import "math"

// GridSpec describes how the days of the year pack into the flat grid.
type GridSpec struct {
	Columns    int
	Rows       int // full rows
	ExtraCells int // days that spill into one partial row, left-packed
	TotalRows  int
}

// ResolveGrid packs totalDays into a columns x rows grid. Days beyond
// columns*rows go into one extra left-packed partial row.
func ResolveGrid(totalDays, columns, rows int) GridSpec {
	extra := totalDays - columns*rows
	if extra < 0 {
		extra = 0
	}
	totalRows := rows
	if extra > 0 {
		totalRows++
	}
	return GridSpec{
		Columns:    columns,
		Rows:       rows,
		ExtraCells: extra,
		TotalRows:  totalRows,
	}
}

// Metrics is the resolved pixel geometry for one render. All values are
// pure functions of the canvas size, the grid spec, and the variant's
// scale constants.
type Metrics struct {
	Width  int
	Height int

	TopPadding      float64 // reserved for the clock / caller overlays
	BottomTextSpace float64 // caption band
	AvailableWidth  float64
	AvailableHeight float64

	SpacingX float64 // cell center-to-center
	SpacingY float64
	DotSize  float64 // diameter

	GridWidth  float64
	GridHeight float64
	StartX     float64 // grid bounding box origin (top-left)
	StartY     float64
}

// ResolveMetrics derives the pixel geometry for the grid. The grid is
// always centered horizontally; vertical placement follows the variant's
// anchor. Callers must not pass non-positive dimensions.
func ResolveMetrics(width, height int, grid GridSpec, v Variant) Metrics {
	m := Metrics{Width: width, Height: height}

	m.TopPadding = float64(height) * v.TopFrac
	m.BottomTextSpace = float64(height) * v.BottomFrac
	m.AvailableHeight = float64(height) - m.TopPadding - m.BottomTextSpace
	m.AvailableWidth = float64(width) * (1 - 2*v.SideFrac)

	if v.MonthGrid {
		// The month arrangement fills the whole drawable region; per-block
		// spacing is resolved in AssembleMonths.
		m.GridWidth = m.AvailableWidth
		m.GridHeight = m.AvailableHeight
		m.StartX = (float64(width) - m.GridWidth) / 2
		m.StartY = m.TopPadding
		return m
	}

	// A one-row grid would divide by zero in the spacing formula
	rowGaps := grid.TotalRows - 1
	if rowGaps < 1 {
		rowGaps = 1
	}

	m.SpacingX = m.AvailableWidth / float64(grid.Columns-1) * v.Scale
	m.SpacingY = m.AvailableHeight / float64(rowGaps) * v.Scale
	m.DotSize = v.DotFrac * math.Min(m.SpacingX, m.SpacingY)

	m.GridWidth = float64(grid.Columns-1)*m.SpacingX + m.DotSize
	m.GridHeight = float64(grid.TotalRows-1)*m.SpacingY + m.DotSize
	m.StartX = (float64(width) - m.GridWidth) / 2

	switch v.Anchor {
	case AnchorTop:
		m.StartY = m.TopPadding
	case AnchorBottom:
		m.StartY = m.TopPadding + (m.AvailableHeight - m.GridHeight)
	default:
		m.StartY = m.TopPadding + (m.AvailableHeight-m.GridHeight)/2
	}

	return m
}

// Colorize classifies a day cell against the current day of the year.
func Colorize(dayNumber, dayOfYear int) ColorToken {
	switch {
	case dayNumber < dayOfYear:
		return TokenPast
	case dayNumber == dayOfYear:
		return TokenCurrent
	default:
		return TokenFuture
	}
}
