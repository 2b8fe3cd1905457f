// Package state holds the viewer's UI state and the reducer that applies events to it.
package state

import (
	"sort"

	"github.com/verte-zerg/folio/internal/model"
)

// Point is a pointer position in terminal cells.
type Point struct {
	X int
	Y int
}

// State is the complete UI state of the page view.
type State struct {
	Active      model.Region
	MenuOpen    bool
	Dark        bool
	Visible     map[model.Region]bool
	Pointer     Point
	PointerSeen bool
}

// New returns the initial state: home active, menu closed, light theme.
func New() State {
	return State{
		Active:  model.RegionHome,
		Visible: map[model.Region]bool{},
	}
}

// IsVisible reports whether the region currently intersects the viewport.
func (s State) IsVisible(r model.Region) bool {
	return s.Visible[r]
}

// Event is something the reducer can apply.
type Event interface {
	event()
}

// Observation reports whether a region intersects the viewport.
type Observation struct {
	Region       model.Region
	Intersecting bool
	Ratio        float64
}

// ObservationBatch is delivered by the visibility tracker.
type ObservationBatch struct {
	Entries []Observation
}

// PointerMoved is delivered by the pointer tracker.
type PointerMoved struct {
	X int
	Y int
}

// MenuToggled flips the navigation menu.
type MenuToggled struct{}

// MenuClosed closes the navigation menu.
type MenuClosed struct{}

// ThemeToggled flips between the light and dark palettes.
type ThemeToggled struct{}

func (ObservationBatch) event() {}
func (PointerMoved) event()     {}
func (MenuToggled) event()      {}
func (MenuClosed) event()       {}
func (ThemeToggled) event()     {}

// Reduce applies ev to s and returns the resulting state. s is not modified.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case ObservationBatch:
		return applyObservations(s, ev.Entries)
	case PointerMoved:
		s.Pointer = Point{X: ev.X, Y: ev.Y}
		s.PointerSeen = true
	case MenuToggled:
		s.MenuOpen = !s.MenuOpen
	case MenuClosed:
		s.MenuOpen = false
	case ThemeToggled:
		s.Dark = !s.Dark
	}
	return s
}

// Entries are applied in region order, so among several regions reported as
// intersecting in one batch the last in page order becomes active.
func applyObservations(s State, entries []Observation) State {
	ordered := make([]Observation, 0, len(entries))
	for _, e := range entries {
		if e.Region.Valid() {
			ordered = append(ordered, e)
		}
	}
	if len(ordered) == 0 {
		return s
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Region.Index() < ordered[j].Region.Index()
	})

	visible := make(map[model.Region]bool, len(s.Visible)+len(ordered))
	for r, v := range s.Visible {
		visible[r] = v
	}
	for _, e := range ordered {
		visible[e.Region] = e.Intersecting
		if e.Intersecting {
			s.Active = e.Region
		}
	}
	s.Visible = visible
	return s
}
