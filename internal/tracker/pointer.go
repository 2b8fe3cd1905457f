package tracker

import "github.com/verte-zerg/folio/internal/state"

// Pointer forwards pointer motion until stopped.
type Pointer struct {
	emit    func(state.PointerMoved)
	stopped bool
}

// NewPointer returns a pointer tracker that delivers moves to emit.
func NewPointer(emit func(state.PointerMoved)) *Pointer {
	return &Pointer{emit: emit}
}

// Move reports the latest pointer position.
func (p *Pointer) Move(x, y int) {
	if p.stopped || p.emit == nil {
		return
	}
	p.emit(state.PointerMoved{X: x, Y: y})
}

// Stop unsubscribes the tracker. It is safe to call more than once.
func (p *Pointer) Stop() {
	p.stopped = true
}
