// Package tracker turns scroll and pointer activity into state events.
package tracker

import (
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/state"
)

// DefaultThreshold is the share of a region that must be on screen for it to count as visible.
const DefaultThreshold = 0.3

// Viewport is the window of page lines currently on screen.
type Viewport struct {
	Top    int
	Height int
}

// Ratio returns the share of span's lines that fall inside vp.
func Ratio(span model.Span, vp Viewport) float64 {
	if span.Height <= 0 || vp.Height <= 0 {
		return 0
	}
	top := max(span.Top, vp.Top)
	bottom := min(span.Bottom(), vp.Top+vp.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(span.Height)
}

// Visibility watches the rendered regions and reports which ones intersect the viewport.
type Visibility struct {
	threshold float64
	emit      func(state.ObservationBatch)
	spans     []model.Span
	last      map[model.Region]bool
	stopped   bool
}

// NewVisibility returns a tracker that delivers batches to emit.
// A threshold outside (0, 1] falls back to DefaultThreshold.
func NewVisibility(threshold float64, emit func(state.ObservationBatch)) *Visibility {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Visibility{
		threshold: threshold,
		emit:      emit,
		last:      map[model.Region]bool{},
	}
}

// Observe replaces the observed regions with spans. Spans for unknown regions are ignored.
func (v *Visibility) Observe(spans []model.Span) {
	if v.stopped {
		return
	}
	v.spans = v.spans[:0]
	for _, s := range spans {
		if s.Region.Valid() {
			v.spans = append(v.spans, s)
		}
	}
}

// Check compares every observed region against vp. Regions seen for the
// first time, and regions whose intersecting flag changed, are delivered as
// one batch in page order.
func (v *Visibility) Check(vp Viewport) {
	if v.stopped || len(v.spans) == 0 {
		return
	}
	var entries []state.Observation
	for _, s := range v.spans {
		ratio := Ratio(s, vp)
		intersecting := ratio >= v.threshold
		prev, seen := v.last[s.Region]
		if seen && prev == intersecting {
			continue
		}
		v.last[s.Region] = intersecting
		entries = append(entries, state.Observation{Region: s.Region, Intersecting: intersecting, Ratio: ratio})
	}
	if len(entries) == 0 || v.emit == nil {
		return
	}
	v.emit(state.ObservationBatch{Entries: entries})
}

// Disconnect stops all observation. It is safe to call more than once.
func (v *Visibility) Disconnect() {
	v.stopped = true
	v.spans = nil
}

// Observing reports whether the tracker has not been disconnected.
func (v *Visibility) Observing() bool {
	return !v.stopped
}
