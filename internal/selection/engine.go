package selection

import (
	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger used for gesture and reconciliation tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Engine drives the accumulator and reconciler from host input. All methods
// run synchronously on the caller's goroutine; the engine is the only writer
// of its state and is not safe for concurrent use.
type Engine[C any] struct {
	grid Grid[C]
	acc  *Accumulator
	rec  *Reconciler[C]
	log  *zap.Logger
}

func New[C any](grid Grid[C], opts ...Option) *Engine[C] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[C]{
		grid: grid,
		acc:  NewAccumulator(),
		rec:  NewReconciler[C](),
		log:  o.log,
	}
}

// Attach registers e on src and returns the function that detaches it.
func (e *Engine[C]) Attach(src EventSource) (detach func()) {
	return src.Register(e)
}

func (e *Engine[C]) OnModifierKeyChanged(down bool) {
	if down {
		e.acc.ModifierDown()
	} else {
		e.acc.ModifierUp()
	}
	e.log.Debug("modifier changed", zap.Bool("down", down))
}

// OnPointerDown starts a gesture. Presses the grid reports as outside are
// ignored.
func (e *Engine[C]) OnPointerDown() {
	if pl, ok := e.grid.(PointerLocator); ok && !pl.PointerInsideGrid() {
		e.log.Debug("pointer down outside grid ignored")
		return
	}
	e.acc.StartGesture()
	e.log.Debug("gesture started", zap.Bool("accumulate", e.acc.ModifierActive()))
}

// OnTextSelectionChanged sets the in-progress rectangle to the one spanned by
// anchor and focus. A malformed id, or a rectangle over MaxRangeCells, leaves
// everything unchanged.
func (e *Engine[C]) OnTextSelectionChanged(anchor, focus CellID) {
	a, err := ParseCellID(anchor)
	if err != nil {
		e.log.Debug("selection change dropped", zap.Error(err))
		return
	}
	b, err := ParseCellID(focus)
	if err != nil {
		e.log.Debug("selection change dropped", zap.Error(err))
		return
	}
	r := NewRect(a, b)
	if _, err := r.Size(); err != nil {
		e.log.Debug("selection change dropped", zap.Error(err),
			zap.Stringer("anchor", a), zap.Stringer("focus", b))
		return
	}
	if e.acc.State() == Idle {
		e.acc.StartGesture()
		e.log.Debug("implicit gesture started", zap.Bool("accumulate", e.acc.ModifierActive()))
	}
	if err := e.acc.UpdateGesture(r.Cells()); err != nil {
		e.log.Warn("gesture update rejected", zap.Error(err))
		return
	}
	e.reconcile()
}

// SyncTextSelection reads the grid's ambient text selection, if it has one,
// and applies it like OnTextSelectionChanged. It is for hosts that expose a
// selection to poll instead of delivering events through Attach.
func (e *Engine[C]) SyncTextSelection() {
	ts, ok := e.grid.(TextSelector)
	if !ok {
		return
	}
	anchor, focus, ok := ts.CurrentTextSelection()
	if !ok {
		return
	}
	e.OnTextSelectionChanged(anchor, focus)
}

// OnPointerUp commits the gesture and reconciles once more.
func (e *Engine[C]) OnPointerUp() {
	if err := e.acc.EndGesture(); err == nil {
		e.log.Debug("gesture ended", zap.Int("selected", e.acc.Effective().Len()))
	}
	e.reconcile()
}

// Clear discards every region and removes all markers.
func (e *Engine[C]) Clear() {
	e.acc.Reset()
	e.reconcile()
}

// Selection returns the effective selection, row-major.
func (e *Engine[C]) Selection() []CellID {
	return e.acc.Effective().Sorted()
}

// Marked returns the ids currently carrying the marker.
func (e *Engine[C]) Marked() []CellID {
	return e.rec.Marked()
}

func (e *Engine[C]) State() GestureState {
	return e.acc.State()
}

func (e *Engine[C]) ModifierActive() bool {
	return e.acc.ModifierActive()
}

func (e *Engine[C]) reconcile() {
	stats := e.rec.Reconcile(e.acc.Effective(), e.grid)
	if stats.Changed() || stats.Dropped > 0 {
		e.log.Debug("reconciled",
			zap.Int("marked", stats.Marked),
			zap.Int("unmarked", stats.Unmarked),
			zap.Int("dropped", stats.Dropped),
		)
	}
}
