package state

import (
	"testing"

	"github.com/verte-zerg/folio/internal/model"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.Active != model.RegionHome {
		t.Fatalf("expected home active, got %q", s.Active)
	}
	for _, r := range model.Regions {
		if s.IsVisible(r) {
			t.Fatalf("expected %q not visible before any observation", r)
		}
	}
	if s.MenuOpen || s.Dark || s.PointerSeen {
		t.Fatalf("unexpected initial flags: %+v", s)
	}
	if s.Pointer != (Point{}) {
		t.Fatalf("expected pointer at origin, got %+v", s.Pointer)
	}
}

func TestThemeToggleRoundTrip(t *testing.T) {
	s := New()
	once := Reduce(s, ThemeToggled{})
	if !once.Dark {
		t.Fatalf("expected dark after one toggle")
	}
	twice := Reduce(once, ThemeToggled{})
	if twice.Dark != s.Dark {
		t.Fatalf("expected theme restored after two toggles")
	}
}

func TestMenuClosedFromEitherState(t *testing.T) {
	for _, open := range []bool{true, false} {
		s := New()
		s.MenuOpen = open
		if got := Reduce(s, MenuClosed{}); got.MenuOpen {
			t.Fatalf("expected menu closed (was open=%v)", open)
		}
	}
	if !Reduce(New(), MenuToggled{}).MenuOpen {
		t.Fatalf("expected toggle to open menu")
	}
}

func TestObservationActivatesAndClears(t *testing.T) {
	s := Reduce(New(), ObservationBatch{Entries: []Observation{
		{Region: model.RegionAbout, Intersecting: true, Ratio: 0.3},
	}})
	if !s.IsVisible(model.RegionAbout) || s.Active != model.RegionAbout {
		t.Fatalf("expected about visible and active, got %+v", s)
	}

	s = Reduce(s, ObservationBatch{Entries: []Observation{
		{Region: model.RegionAbout, Intersecting: false, Ratio: 0.1},
	}})
	if s.IsVisible(model.RegionAbout) {
		t.Fatalf("expected about no longer visible")
	}
	if s.Active != model.RegionAbout {
		t.Fatalf("expected active to stay about, got %q", s.Active)
	}
}

func TestObservationOnlyOverwritesReportedRegions(t *testing.T) {
	s := Reduce(New(), ObservationBatch{Entries: []Observation{
		{Region: model.RegionHome, Intersecting: true},
		{Region: model.RegionAbout, Intersecting: true},
	}})
	s = Reduce(s, ObservationBatch{Entries: []Observation{
		{Region: model.RegionHome, Intersecting: false},
	}})
	if s.IsVisible(model.RegionHome) {
		t.Fatalf("expected home hidden")
	}
	if !s.IsVisible(model.RegionAbout) {
		t.Fatalf("expected about to keep its prior value")
	}
}

func TestObservationTieBreakFollowsPageOrder(t *testing.T) {
	s := Reduce(New(), ObservationBatch{Entries: []Observation{
		{Region: model.RegionProjects, Intersecting: true},
		{Region: model.RegionExperience, Intersecting: true},
	}})
	if s.Active != model.RegionProjects {
		t.Fatalf("expected projects active regardless of batch order, got %q", s.Active)
	}
}

func TestObservationIgnoresUnknownRegions(t *testing.T) {
	s := Reduce(New(), ObservationBatch{Entries: []Observation{
		{Region: model.Region("footer"), Intersecting: true},
	}})
	if s.Active != model.RegionHome {
		t.Fatalf("expected active unchanged, got %q", s.Active)
	}
	if len(s.Visible) != 0 {
		t.Fatalf("expected no visibility keys, got %v", s.Visible)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := New()
	_ = Reduce(before, ObservationBatch{Entries: []Observation{
		{Region: model.RegionContact, Intersecting: true},
	}})
	if before.IsVisible(model.RegionContact) {
		t.Fatalf("reducer mutated the input visibility map")
	}
}

func TestPointerLastWriteWins(t *testing.T) {
	s := Reduce(New(), PointerMoved{X: 3, Y: 4})
	s = Reduce(s, PointerMoved{X: 10, Y: 2})
	if s.Pointer != (Point{X: 10, Y: 2}) || !s.PointerSeen {
		t.Fatalf("unexpected pointer state: %+v", s)
	}
}
