package table

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/gridsel/internal/selection"
)

// Render draws headers, cells and the status line.
func (t *Table) Render(s tcell.Screen) {
	w, h := s.Size()
	s.SetStyle(t.styles.Normal)
	s.Clear()

	if t.showHeaders {
		gutter := t.gutterWidth()
		for x := 0; x < gutter && x < w; x++ {
			s.SetContent(x, 0, ' ', nil, t.styles.Header)
		}
		for c := 1; c <= t.cols; c++ {
			x, _ := t.CellOrigin(selection.Coord{Col: c, Row: 1})
			drawCell(s, x, 0, t.cellWidth, strconv.Itoa(c), t.styles.Header)
		}
		for r := 1; r <= t.rows; r++ {
			_, y := t.CellOrigin(selection.Coord{Col: 1, Row: r})
			drawCell(s, 0, y, gutter, strconv.Itoa(r), t.styles.Header)
		}
	}

	for _, cell := range t.cells {
		x, y := t.CellOrigin(cell.Coord)
		if y >= h-1 || x >= w {
			continue
		}
		style := t.styles.Normal
		if cell.Marked {
			style = t.styles.Selected
		}
		drawCell(s, x, y, t.cellWidth, string(cell.ID), style)
	}

	t.renderStatus(s, w, h)
	s.Show()
}

func (t *Table) renderStatus(s tcell.Screen, w, h int) {
	if h < 1 {
		return
	}
	y := h - 1
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, t.styles.Status)
	}
	x := 0
	if t.modifier {
		x = putString(s, x, y, w, " ACC ", t.styles.Indicator)
	}
	msg := fmt.Sprintf(" %d selected", t.MarkedCount())
	if t.status != "" {
		msg += "  " + t.status
	}
	putString(s, x, y, w, msg, t.styles.Status)
}

// drawCell writes text left-aligned with one leading space, padded or cut to
// width.
func drawCell(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	runes := []rune(" " + text)
	for i := 0; i < width; i++ {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		s.SetContent(x+i, y, r, nil, style)
	}
}

func putString(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, r := range text {
		if x >= maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
