package selection

import "errors"

// ErrNoGesture is returned when a gesture update or end arrives while Idle.
var ErrNoGesture = errors.New("no gesture in progress")

// GestureState is the accumulator's gesture phase.
type GestureState uint8

const (
	Idle GestureState = iota
	Gesturing
)

func (s GestureState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Gesturing:
		return "gesturing"
	default:
		return "unknown"
	}
}

// Accumulator holds committed regions and the rectangle of the gesture in
// progress. The modifier flag changes independently of the gesture phase; it
// only matters at StartGesture.
type Accumulator struct {
	committed Set
	transient Set
	modifier  bool
	state     GestureState
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		committed: make(Set),
		transient: make(Set),
	}
}

func (a *Accumulator) ModifierDown() {
	a.modifier = true
}

func (a *Accumulator) ModifierUp() {
	a.modifier = false
}

func (a *Accumulator) ModifierActive() bool {
	return a.modifier
}

func (a *Accumulator) State() GestureState {
	return a.state
}

// StartGesture begins a new rectangle. Without the modifier held, prior
// regions are discarded.
func (a *Accumulator) StartGesture() {
	if !a.modifier {
		a.committed = make(Set)
	}
	a.transient = make(Set)
	a.state = Gesturing
}

// UpdateGesture replaces the in-progress rectangle with ids.
func (a *Accumulator) UpdateGesture(ids []CellID) error {
	if a.state != Gesturing {
		return ErrNoGesture
	}
	a.transient = NewSet(ids...)
	return nil
}

// EndGesture folds the in-progress rectangle into the committed regions.
func (a *Accumulator) EndGesture() error {
	if a.state != Gesturing {
		return ErrNoGesture
	}
	for id := range a.transient {
		a.committed.Add(id)
	}
	a.transient = make(Set)
	a.state = Idle
	return nil
}

// Reset drops every region and returns to Idle. The modifier flag is kept.
func (a *Accumulator) Reset() {
	a.committed = make(Set)
	a.transient = make(Set)
	a.state = Idle
}

// Effective returns committed ∪ transient as a fresh set.
func (a *Accumulator) Effective() Set {
	return a.committed.Union(a.transient)
}
