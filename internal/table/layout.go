package table

import (
	"strconv"

	"github.com/kobzarvs/gridsel/internal/selection"
)

func (t *Table) gutterWidth() int {
	if !t.showHeaders {
		return 0
	}
	return len(strconv.Itoa(t.rows)) + 1
}

func (t *Table) headerHeight() int {
	if !t.showHeaders {
		return 0
	}
	return 1
}

// CellOrigin returns the screen position of the cell's top-left corner.
func (t *Table) CellOrigin(c selection.Coord) (x, y int) {
	return t.gutterWidth() + (c.Col-1)*t.cellWidth, t.headerHeight() + c.Row - 1
}

// CellAt maps a screen position to the cell under it.
func (t *Table) CellAt(x, y int) (selection.Coord, bool) {
	gx := x - t.gutterWidth()
	gy := y - t.headerHeight()
	if gx < 0 || gy < 0 {
		return selection.Coord{}, false
	}
	col := gx/t.cellWidth + 1
	row := gy + 1
	if col > t.cols || row > t.rows {
		return selection.Coord{}, false
	}
	return selection.Coord{Col: col, Row: row}, true
}

// clampedCellAt is CellAt with the position pulled back inside the table, so
// dragging past an edge keeps extending to the edge cell.
func (t *Table) clampedCellAt(x, y int) selection.Coord {
	gx := x - t.gutterWidth()
	gy := y - t.headerHeight()
	col := clamp(gx/t.cellWidth+1, 1, t.cols)
	row := clamp(gy+1, 1, t.rows)
	return selection.Coord{Col: col, Row: row}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
