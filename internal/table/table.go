// Package table is a terminal table view that hosts a selection.Engine.
//
// Table assigns "<col>-<row>" ids to its cells, turns tcell mouse input into
// pointer, modifier and text-selection events, and carries the selection
// marker on each cell.
package table

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/gridsel/internal/config"
	"github.com/kobzarvs/gridsel/internal/selection"
)

// Cell is the handle the engine marks and unmarks.
type Cell struct {
	ID     selection.CellID
	Coord  selection.Coord
	Marked bool
}

type registration struct {
	id int
	h  selection.Handler
}

// Table lays cells out left to right, top to bottom, below an optional
// header row and right of an optional row-number gutter.
type Table struct {
	cols        int
	rows        int
	cellWidth   int
	showHeaders bool
	cells       map[selection.CellID]*Cell
	styles      Styles

	handlers []registration
	nextID   int

	mouseMod bool
	sticky   bool
	modifier bool

	dragging     bool
	pressInside  bool
	hasSelection bool
	anchor       selection.CellID
	focus        selection.CellID

	status string
}

func New(opts config.GridOptions, styles Styles) *Table {
	cols, rows := opts.Columns, opts.Rows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cellWidth := opts.CellWidth
	if cellWidth < 1 {
		cellWidth = 1
	}
	t := &Table{
		cols:        cols,
		rows:        rows,
		cellWidth:   cellWidth,
		showHeaders: opts.ShowHeaders,
		cells:       make(map[selection.CellID]*Cell, cols*rows),
		styles:      styles,
	}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			coord := selection.Coord{Col: c, Row: r}
			t.cells[coord.ID()] = &Cell{ID: coord.ID(), Coord: coord}
		}
	}
	return t
}

func (t *Table) Size() (cols, rows int) {
	return t.cols, t.rows
}

// Lookup resolves an id to its cell. Ids outside the table are not found.
func (t *Table) Lookup(id selection.CellID) (*Cell, bool) {
	c, ok := t.cells[id]
	return c, ok
}

func (t *Table) Mark(c *Cell) {
	c.Marked = true
}

func (t *Table) Unmark(c *Cell) {
	c.Marked = false
}

// MarkedCount is the number of cells carrying the marker.
func (t *Table) MarkedCount() int {
	n := 0
	for _, c := range t.cells {
		if c.Marked {
			n++
		}
	}
	return n
}

// CurrentTextSelection reports the cells under the drag anchor and focus. The
// app delivers the same data as events; this serves Engine.SyncTextSelection.
func (t *Table) CurrentTextSelection() (selection.CellID, selection.CellID, bool) {
	if !t.hasSelection {
		return "", "", false
	}
	return t.anchor, t.focus, true
}

// PointerInsideGrid reports whether the last button press landed on a cell.
func (t *Table) PointerInsideGrid() bool {
	return t.pressInside
}

// ModifierActive reports the modifier state last sent to handlers.
func (t *Table) ModifierActive() bool {
	return t.modifier
}

func (t *Table) SetStatus(msg string) {
	t.status = msg
}

// Register adds h to the handlers that receive input events.
func (t *Table) Register(h selection.Handler) func() {
	id := t.nextID
	t.nextID++
	t.handlers = append(t.handlers, registration{id: id, h: h})
	return func() {
		for i, r := range t.handlers {
			if r.id == id {
				t.handlers = append(t.handlers[:i], t.handlers[i+1:]...)
				return
			}
		}
	}
}

func (t *Table) emit(fn func(selection.Handler)) {
	hs := make([]registration, len(t.handlers))
	copy(hs, t.handlers)
	for _, r := range hs {
		fn(r.h)
	}
}

// ToggleModifier latches the modifier on or off. Terminals do not report a
// bare Ctrl press, so this stands in for holding it.
func (t *Table) ToggleModifier() {
	t.sticky = !t.sticky
	t.syncModifier()
}

func (t *Table) syncModifier() {
	down := t.mouseMod || t.sticky
	if down == t.modifier {
		return
	}
	t.modifier = down
	t.emit(func(h selection.Handler) { h.OnModifierKeyChanged(down) })
}

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// HandleMouse translates a tcell mouse event. Button 1 press starts a drag,
// motion with the button held moves the focus, release ends it. Wheel-only
// events leave a drag alone. Ctrl or Meta on the event count as the
// accumulation modifier.
func (t *Table) HandleMouse(ev *tcell.EventMouse) {
	t.mouseMod = ev.Modifiers()&(tcell.ModCtrl|tcell.ModMeta) != 0
	t.syncModifier()

	buttons := ev.Buttons()
	if buttons&wheelButtons != 0 && buttons&^wheelButtons == 0 {
		return
	}
	x, y := ev.Position()
	pressed := buttons&tcell.Button1 != 0
	switch {
	case pressed && !t.dragging:
		t.dragging = true
		coord, inside := t.CellAt(x, y)
		t.pressInside = inside
		t.hasSelection = inside
		if inside {
			t.anchor = coord.ID()
			t.focus = t.anchor
		}
		t.emit(func(h selection.Handler) { h.OnPointerDown() })
		if inside {
			t.emitSelection()
		}
	case pressed && t.dragging:
		if !t.hasSelection {
			return
		}
		focus := t.clampedCellAt(x, y).ID()
		if focus == t.focus {
			return
		}
		t.focus = focus
		t.emitSelection()
	case !pressed && t.dragging:
		t.dragging = false
		t.emit(func(h selection.Handler) { h.OnPointerUp() })
	}
}

func (t *Table) emitSelection() {
	anchor, focus := t.anchor, t.focus
	t.emit(func(h selection.Handler) { h.OnTextSelectionChanged(anchor, focus) })
}
