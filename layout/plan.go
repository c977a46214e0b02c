package layout

import "github.com/ompatel2019/iphone-wallpaper/progress"

// Cell is one day dot with fully resolved geometry. Day is 1-based within
// the year; Day == 0 marks an empty placeholder slot in a month block.
type Cell struct {
	Row   int
	Col   int
	Day   int
	Token ColorToken
	X     float64 // center
	Y     float64
	R     float64 // radius
}

// Plan is the complete, immutable description of one wallpaper render.
// It is handed whole to the renderer; nothing mutates it afterwards.
type Plan struct {
	Variant  Variant
	Progress progress.Progress
	Grid     GridSpec
	Metrics  Metrics
	Cells    []Cell       // flat variants
	Months   []MonthBlock // month-grid variant
	Captions []Caption
}

// Build computes the full render plan for a variant at the given canvas
// size. It is a pure function; the caller resolves "now" into a Progress
// first so the timezone policy stays with the caller.
func Build(width, height int, prog progress.Progress, v Variant) Plan {
	grid := ResolveGrid(prog.TotalDays, v.Columns, v.Rows)
	m := ResolveMetrics(width, height, grid, v)

	plan := Plan{
		Variant:  v,
		Progress: prog,
		Grid:     grid,
		Metrics:  m,
	}

	if v.MonthGrid {
		plan.Months = AssembleMonths(prog, v, m)
	} else {
		plan.Cells = flatCells(prog, grid, m)
	}

	plan.Captions = Compose(prog, v, m)
	return plan
}

// flatCells lays days 1..TotalDays row-major into the flat grid.
func flatCells(prog progress.Progress, grid GridSpec, m Metrics) []Cell {
	cells := make([]Cell, 0, prog.TotalDays)
	radius := m.DotSize / 2

	for day := 1; day <= prog.TotalDays; day++ {
		idx := day - 1
		row := idx / grid.Columns
		col := idx % grid.Columns

		cells = append(cells, Cell{
			Row:   row,
			Col:   col,
			Day:   day,
			Token: Colorize(day, prog.DayOfYear),
			X:     m.StartX + radius + float64(col)*m.SpacingX,
			Y:     m.StartY + radius + float64(row)*m.SpacingY,
			R:     radius,
		})
	}

	return cells
}
