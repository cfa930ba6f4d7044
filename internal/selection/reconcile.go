package selection

// ReconcileStats counts the marker operations of one pass.
type ReconcileStats struct {
	Marked   int
	Unmarked int
	Dropped  int
}

// Changed reports whether the pass touched any marker.
func (s ReconcileStats) Changed() bool {
	return s.Marked > 0 || s.Unmarked > 0
}

// Reconciler tracks which cells carry the marker and brings them in line with
// a desired set by explicit diff. It never toggles.
type Reconciler[C any] struct {
	marked Set
}

func NewReconciler[C any]() *Reconciler[C] {
	return &Reconciler[C]{marked: make(Set)}
}

// Reconcile unmarks marked−desired and marks desired−marked. Ids the grid
// cannot resolve are left out of the marked set.
func (r *Reconciler[C]) Reconcile(desired Set, grid Grid[C]) ReconcileStats {
	var stats ReconcileStats
	next := make(Set, len(desired))

	for _, id := range r.marked.Minus(desired).Sorted() {
		if cell, ok := grid.Lookup(id); ok {
			grid.Unmark(cell)
			stats.Unmarked++
		}
	}
	for id := range r.marked {
		if desired.Has(id) {
			next.Add(id)
		}
	}
	for _, id := range desired.Minus(r.marked).Sorted() {
		cell, ok := grid.Lookup(id)
		if !ok {
			stats.Dropped++
			continue
		}
		grid.Mark(cell)
		next.Add(id)
		stats.Marked++
	}

	r.marked = next
	return stats
}

// Marked returns the ids believed to carry the marker, row-major.
func (r *Reconciler[C]) Marked() []CellID {
	return r.marked.Sorted()
}
