package layout

import (
	"math"
	"time"

	"github.com/ompatel2019/iphone-wallpaper/progress"
)

// Month block shape: each month is a 7x5 inner grid, the twelve blocks
// sit in a 3-wide, 4-tall outer arrangement with a label above each.
const (
	monthInnerCols = 7
	monthInnerRows = 5
	monthOuterCols = 3
	monthOuterRows = 4

	monthLabelFrac = 0.16 // of block height
	monthInnerWide = 0.84 // inner grid width as a fraction of block width
	monthInnerTall = 0.78 // inner grid height as a fraction of the space under the label
)

// MonthBlock is one month's sub-grid with its label, fully positioned.
type MonthBlock struct {
	Name      string
	LabelX    float64
	LabelY    float64
	LabelSize float64
	Cells     []Cell // monthInnerCols*monthInnerRows slots; Day==0 is empty
}

// AssembleMonths splits the year's days into 12 contiguous runs and lays
// each into its own block. Day numbering stays global (1..TotalDays) so
// coloring works the same as in the flat grid; trailing slots in each
// block are emitted with Day 0 to keep a uniform shape.
func AssembleMonths(prog progress.Progress, v Variant, m Metrics) []MonthBlock {
	lengths := progress.MonthLengths(prog.Year)

	blockW := m.GridWidth / monthOuterCols
	blockH := m.GridHeight / monthOuterRows
	labelH := blockH * monthLabelFrac

	innerW := blockW * monthInnerWide
	innerH := (blockH - labelH) * monthInnerTall
	sx := innerW / (monthInnerCols - 1)
	sy := innerH / (monthInnerRows - 1)
	radius := v.DotFrac * math.Min(sx, sy) / 2

	blocks := make([]MonthBlock, 0, 12)
	day := 1

	for month := 0; month < 12; month++ {
		outerRow := month / monthOuterCols
		outerCol := month % monthOuterCols
		blockX := m.StartX + float64(outerCol)*blockW
		blockY := m.StartY + float64(outerRow)*blockH

		originX := blockX + (blockW-innerW)/2
		originY := blockY + labelH + (blockH-labelH-innerH)/2

		block := MonthBlock{
			Name:      time.Month(month + 1).String()[:3],
			LabelX:    blockX + blockW/2,
			LabelY:    blockY + labelH/2,
			LabelSize: labelH * 0.55,
			Cells:     make([]Cell, 0, monthInnerCols*monthInnerRows),
		}

		for slot := 0; slot < monthInnerCols*monthInnerRows; slot++ {
			row := slot / monthInnerCols
			col := slot % monthInnerCols

			cell := Cell{
				Row: row,
				Col: col,
				X:   originX + float64(col)*sx,
				Y:   originY + float64(row)*sy,
				R:   radius,
			}
			if slot < lengths[month] {
				cell.Day = day
				cell.Token = Colorize(day, prog.DayOfYear)
				day++
			}
			block.Cells = append(block.Cells, cell)
		}

		blocks = append(blocks, block)
	}

	return blocks
}
