package selection

type fakeCell struct {
	id     CellID
	marked bool
}

// fakeGrid addresses cols x rows cells and counts marker calls.
type fakeGrid struct {
	cells   map[CellID]*fakeCell
	marks   int
	unmarks int
	inside  bool
	anchor  CellID
	focus   CellID
	hasText bool
}

func newFakeGrid(cols, rows int) *fakeGrid {
	g := &fakeGrid{cells: make(map[CellID]*fakeCell), inside: true}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			id := Coord{Col: c, Row: r}.ID()
			g.cells[id] = &fakeCell{id: id}
		}
	}
	return g
}

func (g *fakeGrid) Lookup(id CellID) (*fakeCell, bool) {
	c, ok := g.cells[id]
	return c, ok
}

func (g *fakeGrid) Mark(c *fakeCell) {
	g.marks++
	c.marked = true
}

func (g *fakeGrid) Unmark(c *fakeCell) {
	g.unmarks++
	c.marked = false
}

func (g *fakeGrid) PointerInsideGrid() bool {
	return g.inside
}

func (g *fakeGrid) CurrentTextSelection() (CellID, CellID, bool) {
	return g.anchor, g.focus, g.hasText
}

func (g *fakeGrid) markedSet() Set {
	s := make(Set)
	for id, c := range g.cells {
		if c.marked {
			s.Add(id)
		}
	}
	return s
}

func (g *fakeGrid) resetCounts() {
	g.marks, g.unmarks = 0, 0
}

// plainGrid hides the optional capabilities of fakeGrid.
type plainGrid struct {
	g *fakeGrid
}

func (p plainGrid) Lookup(id CellID) (*fakeCell, bool) { return p.g.Lookup(id) }
func (p plainGrid) Mark(c *fakeCell)                   { p.g.Mark(c) }
func (p plainGrid) Unmark(c *fakeCell)                 { p.g.Unmark(c) }
