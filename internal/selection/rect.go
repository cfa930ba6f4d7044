package selection

import "errors"

// MaxRangeCells caps how many cells one rectangle may cover.
const MaxRangeCells = 1 << 20

// ErrRangeTooLarge is returned for rectangles over MaxRangeCells.
var ErrRangeTooLarge = errors.New("range too large")

// Rect is the inclusive bounding rectangle of two coordinates.
// MinCol <= MaxCol and MinRow <= MaxRow always hold.
type Rect struct {
	MinCol, MaxCol int
	MinRow, MaxRow int
}

// NewRect sorts each axis independently, so any two corners give the same Rect.
func NewRect(a, b Coord) Rect {
	r := Rect{MinCol: a.Col, MaxCol: b.Col, MinRow: a.Row, MaxRow: b.Row}
	if r.MinCol > r.MaxCol {
		r.MinCol, r.MaxCol = r.MaxCol, r.MinCol
	}
	if r.MinRow > r.MaxRow {
		r.MinRow, r.MaxRow = r.MaxRow, r.MinRow
	}
	return r
}

func (r Rect) Contains(c Coord) bool {
	return c.Col >= r.MinCol && c.Col <= r.MaxCol && c.Row >= r.MinRow && c.Row <= r.MaxRow
}

// Len is the number of cells covered. It is only meaningful when Size
// succeeds.
func (r Rect) Len() int {
	return (r.MaxCol - r.MinCol + 1) * (r.MaxRow - r.MinRow + 1)
}

// Size is Len checked against MaxRangeCells. Both axes are bounded before
// multiplying, so it cannot overflow.
func (r Rect) Size() (int, error) {
	w := r.MaxCol - r.MinCol + 1
	h := r.MaxRow - r.MinRow + 1
	if w < 1 || h < 1 || w > MaxRangeCells || h > MaxRangeCells/w {
		return 0, ErrRangeTooLarge
	}
	return w * h, nil
}

// Cells lists the covered ids row by row, left to right. It returns nil for
// rectangles over MaxRangeCells.
func (r Rect) Cells() []CellID {
	n, err := r.Size()
	if err != nil {
		return nil
	}
	ids := make([]CellID, 0, n)
	for row := r.MinRow; row <= r.MaxRow; row++ {
		for col := r.MinCol; col <= r.MaxCol; col++ {
			ids = append(ids, Coord{Col: col, Row: row}.ID())
		}
	}
	return ids
}

// ComputeRange returns every cell of the rectangle spanned by a and b, or nil
// when it covers more than MaxRangeCells.
func ComputeRange(a, b Coord) []CellID {
	return NewRect(a, b).Cells()
}
