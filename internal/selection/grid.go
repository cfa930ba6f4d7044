package selection

// Grid is the host capability the engine draws through. C is the host's cell
// handle. Mark and Unmark must be no-ops when the marker is already in the
// requested state.
type Grid[C any] interface {
	Lookup(id CellID) (C, bool)
	Mark(cell C)
	Unmark(cell C)
}

// TextSelector is implemented by hosts with an ambient drag-to-select
// selection. ok is false when the selection does not span addressable cells.
type TextSelector interface {
	CurrentTextSelection() (anchor, focus CellID, ok bool)
}

// PointerLocator is implemented by hosts that can tell whether the last
// pointer press landed inside the grid.
type PointerLocator interface {
	PointerInsideGrid() bool
}

// Handler receives host input events.
type Handler interface {
	OnModifierKeyChanged(down bool)
	OnPointerDown()
	OnPointerUp()
	OnTextSelectionChanged(anchor, focus CellID)
}

// EventSource delivers input events to registered handlers in the order they
// occur. Register returns a function that removes h.
type EventSource interface {
	Register(h Handler) (unregister func())
}
