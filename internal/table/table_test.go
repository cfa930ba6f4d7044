package table

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/gridsel/internal/config"
	"github.com/kobzarvs/gridsel/internal/selection"
)

// newTestTable builds a 4x3 table with 5-wide cells. The gutter is 2 wide
// and the header 1 high, so cell c-r starts at x=2+(c-1)*5, y=r.
func newTestTable() (*Table, *selection.Engine[*Cell]) {
	opts := config.GridOptions{Columns: 4, Rows: 3, CellWidth: 5, ShowHeaders: true}
	tbl := New(opts, NewStyles(config.Default().Theme))
	eng := selection.New[*Cell](tbl)
	eng.Attach(tbl)
	return tbl, eng
}

func press(tbl *Table, x, y int, mod tcell.ModMask) {
	tbl.HandleMouse(tcell.NewEventMouse(x, y, tcell.Button1, mod))
}

func release(tbl *Table, x, y int, mod tcell.ModMask) {
	tbl.HandleMouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, mod))
}

func TestCellAt(t *testing.T) {
	tbl, _ := newTestTable()
	tests := []struct {
		x, y   int
		want   selection.Coord
		inside bool
	}{
		{2, 1, selection.Coord{Col: 1, Row: 1}, true},
		{6, 1, selection.Coord{Col: 1, Row: 1}, true},
		{7, 1, selection.Coord{Col: 2, Row: 1}, true},
		{17, 3, selection.Coord{Col: 4, Row: 3}, true},
		{0, 1, selection.Coord{}, false},
		{2, 0, selection.Coord{}, false},
		{22, 1, selection.Coord{}, false},
		{2, 4, selection.Coord{}, false},
	}
	for _, tt := range tests {
		got, inside := tbl.CellAt(tt.x, tt.y)
		if inside != tt.inside || got != tt.want {
			t.Fatalf("CellAt(%d,%d) = %v,%v want %v,%v", tt.x, tt.y, got, inside, tt.want, tt.inside)
		}
	}
}

func TestLookupOutsideTable(t *testing.T) {
	tbl, _ := newTestTable()
	if _, ok := tbl.Lookup("5-1"); ok {
		t.Fatalf("Lookup(5-1) found a cell in a 4 column table")
	}
	c, ok := tbl.Lookup("4-3")
	if !ok || c.Coord != (selection.Coord{Col: 4, Row: 3}) {
		t.Fatalf("Lookup(4-3) = %+v, %v", c, ok)
	}
}

func TestMouseDragSelectsRectangle(t *testing.T) {
	tbl, eng := newTestTable()

	press(tbl, 2, 1, tcell.ModNone)
	press(tbl, 12, 2, tcell.ModNone)
	release(tbl, 12, 2, tcell.ModNone)

	want := []selection.CellID{"1-1", "2-1", "3-1", "1-2", "2-2", "3-2"}
	if got := eng.Selection(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Selection = %v, want %v", got, want)
	}
	if tbl.MarkedCount() != 6 {
		t.Fatalf("MarkedCount = %d, want 6", tbl.MarkedCount())
	}
	if eng.State() != selection.Idle {
		t.Fatalf("State = %v, want idle", eng.State())
	}
}

func TestCtrlClickAccumulates(t *testing.T) {
	tbl, eng := newTestTable()

	press(tbl, 2, 1, tcell.ModNone)
	press(tbl, 7, 2, tcell.ModNone)
	release(tbl, 7, 2, tcell.ModNone)

	press(tbl, 17, 3, tcell.ModCtrl)
	release(tbl, 17, 3, tcell.ModCtrl)
	if !eng.ModifierActive() {
		t.Fatalf("modifier not active after ctrl click")
	}
	if got := len(eng.Selection()); got != 5 {
		t.Fatalf("Selection = %v, want 5 cells", eng.Selection())
	}

	press(tbl, 2, 1, tcell.ModNone)
	release(tbl, 2, 1, tcell.ModNone)
	if got := eng.Selection(); !reflect.DeepEqual(got, []selection.CellID{"1-1"}) {
		t.Fatalf("Selection = %v, want [1-1]", got)
	}
	if tbl.MarkedCount() != 1 {
		t.Fatalf("MarkedCount = %d, want 1", tbl.MarkedCount())
	}
}

func TestMetaCountsAsModifier(t *testing.T) {
	tbl, eng := newTestTable()
	press(tbl, 2, 1, tcell.ModMeta)
	if !eng.ModifierActive() || !tbl.ModifierActive() {
		t.Fatalf("meta did not activate modifier")
	}
}

func TestToggleModifierLatches(t *testing.T) {
	tbl, eng := newTestTable()
	press(tbl, 2, 1, tcell.ModNone)
	release(tbl, 2, 1, tcell.ModNone)

	tbl.ToggleModifier()
	press(tbl, 7, 1, tcell.ModNone)
	release(tbl, 7, 1, tcell.ModNone)
	if got := eng.Selection(); !reflect.DeepEqual(got, []selection.CellID{"1-1", "2-1"}) {
		t.Fatalf("Selection = %v, want [1-1 2-1]", got)
	}

	tbl.ToggleModifier()
	if eng.ModifierActive() {
		t.Fatalf("modifier still active after second toggle")
	}
}

func TestPressOutsideGridKeepsSelection(t *testing.T) {
	tbl, eng := newTestTable()
	press(tbl, 2, 1, tcell.ModNone)
	release(tbl, 2, 1, tcell.ModNone)

	press(tbl, 0, 0, tcell.ModNone)
	press(tbl, 12, 2, tcell.ModNone)
	release(tbl, 12, 2, tcell.ModNone)

	if tbl.PointerInsideGrid() {
		t.Fatalf("PointerInsideGrid = true after press on header")
	}
	if _, _, ok := tbl.CurrentTextSelection(); ok {
		t.Fatalf("text selection reported for a drag started outside")
	}
	if got := eng.Selection(); !reflect.DeepEqual(got, []selection.CellID{"1-1"}) {
		t.Fatalf("Selection = %v, want [1-1]", got)
	}
}

func TestDragPastEdgeClamps(t *testing.T) {
	tbl, eng := newTestTable()
	press(tbl, 2, 1, tcell.ModNone)
	press(tbl, 100, 100, tcell.ModNone)

	anchor, focus, ok := tbl.CurrentTextSelection()
	if !ok || anchor != "1-1" || focus != "4-3" {
		t.Fatalf("CurrentTextSelection = %q %q %v", anchor, focus, ok)
	}
	if got := len(eng.Selection()); got != 12 {
		t.Fatalf("Selection = %d cells, want 12", got)
	}
}

func TestRegisterUnregister(t *testing.T) {
	tbl, eng := newTestTable()
	other := selection.New[*Cell](tbl)
	detach := other.Attach(tbl)
	detach()

	press(tbl, 2, 1, tcell.ModNone)
	if len(eng.Selection()) != 1 {
		t.Fatalf("attached engine missed the event")
	}
	if other.State() != selection.Idle {
		t.Fatalf("detached engine received events")
	}
}

func TestRenderMarkedCellStyle(t *testing.T) {
	tbl, _ := newTestTable()
	press(tbl, 2, 1, tcell.ModNone)
	release(tbl, 2, 1, tcell.ModNone)

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer s.Fini()
	s.SetSize(30, 6)

	tbl.Render(s)
	cells, w, h := s.GetContents()
	_, bgSelected, _ := cells[1*w+3].Style.Decompose()
	_, bgNormal, _ := cells[1*w+8].Style.Decompose()
	if bgSelected == bgNormal {
		t.Fatalf("selection background not applied")
	}
	if r := cells[1*w+3].Runes; len(r) == 0 || r[0] != '1' {
		t.Fatalf("cell label rune = %q, want '1'", r)
	}

	var status strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[(h-1)*w+x].Runes; len(r) > 0 {
			status.WriteRune(r[0])
		}
	}
	if !strings.Contains(status.String(), "1 selected") {
		t.Fatalf("status line = %q, want it to report 1 selected", status.String())
	}
}

func TestRenderModifierIndicator(t *testing.T) {
	tbl, _ := newTestTable()
	tbl.ToggleModifier()

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer s.Fini()
	s.SetSize(30, 6)

	tbl.Render(s)
	cells, w, h := s.GetContents()
	var status strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[(h-1)*w+x].Runes; len(r) > 0 {
			status.WriteRune(r[0])
		}
	}
	if !strings.HasPrefix(status.String(), " ACC ") {
		t.Fatalf("status line = %q, want ACC indicator", status.String())
	}
}

func TestWheelDuringDragKeepsGesture(t *testing.T) {
	tbl, eng := newTestTable()
	press(tbl, 2, 1, tcell.ModNone)
	press(tbl, 7, 2, tcell.ModNone)
	tbl.HandleMouse(tcell.NewEventMouse(7, 2, tcell.WheelDown, tcell.ModNone))
	tbl.HandleMouse(tcell.NewEventMouse(7, 2, tcell.WheelUp, tcell.ModNone))

	if eng.State() != selection.Gesturing {
		t.Fatalf("State = %v after wheel, want gesturing", eng.State())
	}
	press(tbl, 12, 2, tcell.ModNone)
	release(tbl, 12, 2, tcell.ModNone)

	anchor, focus, ok := tbl.CurrentTextSelection()
	if !ok || anchor != "1-1" || focus != "3-2" {
		t.Fatalf("CurrentTextSelection = %q %q %v, want 1-1 3-2", anchor, focus, ok)
	}
	if got := len(eng.Selection()); got != 6 {
		t.Fatalf("Selection = %v, want 6 cells", eng.Selection())
	}
}
