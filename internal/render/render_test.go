package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/state"
)

func allVisible() state.State {
	s := state.New()
	for _, r := range model.Regions {
		s.Visible[r] = true
	}
	return s
}

func TestSkillWidthFollowsVisibility(t *testing.T) {
	if got := SkillWidth(85, false); got != 0 {
		t.Fatalf("expected 0%% before reveal, got %d", got)
	}
	if got := SkillWidth(85, true); got != 85 {
		t.Fatalf("expected 85%% after reveal, got %d", got)
	}
	if got := SkillWidth(120, true); got != 100 {
		t.Fatalf("expected level clamped to 100, got %d", got)
	}
	if got := SkillTarget(85, true); got != 0.85 {
		t.Fatalf("expected 0.85, got %v", got)
	}
}

func TestEntranceFor(t *testing.T) {
	if e := EntranceFor(true); e.Offset != 0 || e.Faded {
		t.Fatalf("expected resting entrance, got %+v", e)
	}
	if e := EntranceFor(false); e.Offset != EntranceOffset || !e.Faded {
		t.Fatalf("expected offset faded entrance, got %+v", e)
	}
}

func TestPageSpansCoverRegionsInOrder(t *testing.T) {
	out, spans := Page(Frame{State: state.New(), Width: 100, Height: 30})
	if len(spans) != len(model.Regions) {
		t.Fatalf("expected %d spans, got %d", len(model.Regions), len(spans))
	}
	next := 0
	for i, s := range spans {
		if s.Region != model.Regions[i] {
			t.Fatalf("expected %q at %d, got %q", model.Regions[i], i, s.Region)
		}
		if s.Top != next || s.Height <= 0 {
			t.Fatalf("unexpected span %+v (expected top %d)", s, next)
		}
		next = s.Bottom()
	}
	if lines := strings.Count(out, "\n") + 1; lines <= next {
		t.Fatalf("expected footer after last region, page has %d lines", lines)
	}
}

func TestPageLayoutIndependentOfVisibilityAndTheme(t *testing.T) {
	_, hidden := Page(Frame{State: state.New(), Width: 80, Height: 24})
	shown := allVisible()
	shown.Dark = true
	_, visible := Page(Frame{State: shown, Width: 80, Height: 24, Bars: []float64{1, 1, 1}})
	for i := range hidden {
		if hidden[i] != visible[i] {
			t.Fatalf("span %d moved: %+v vs %+v", i, hidden[i], visible[i])
		}
	}
}

func TestPageHeroFillsScreen(t *testing.T) {
	_, spans := Page(Frame{State: state.New(), Width: 100, Height: 80})
	if spans[0].Height < 80-NavHeight-StatusHeight {
		t.Fatalf("expected hero to fill the first screen, got height %d", spans[0].Height)
	}
}

func TestPageContent(t *testing.T) {
	out, _ := Page(Frame{State: allVisible(), Width: 100, Height: 30})
	plain := ansi.Strip(out)
	for _, want := range []string{
		content.Profile.Name[:7],
		"About Me",
		"Technical Skills",
		"Experience",
		"Current",
		"Certifications",
		"Featured Projects",
		"Let's Connect",
		"jubuhantt@gmail.com",
		"85%",
	} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}
}

func TestNavZonesWide(t *testing.T) {
	zones := NavZones(100, false)
	if len(zones) != len(model.Regions)+1 {
		t.Fatalf("expected %d zones, got %d", len(model.Regions)+1, len(zones))
	}
	prevEnd := 0
	for i, z := range zones {
		if z.X0 < prevEnd || z.X1 <= z.X0 || z.X1 > 100 {
			t.Fatalf("zone %d out of place: %+v", i, z)
		}
		prevEnd = z.X1
	}
	last := zones[len(zones)-1]
	if last.Kind != ZoneTheme || last.X1 != 99 {
		t.Fatalf("expected theme button at the right edge, got %+v", last)
	}
	if !zones[0].Contains(zones[0].X0, 0) || zones[0].Contains(zones[0].X1, 0) {
		t.Fatalf("unexpected Contains bounds for %+v", zones[0])
	}
}

func TestNavZonesCompactMenu(t *testing.T) {
	closed := NavZones(60, false)
	if len(closed) != 2 || closed[0].Kind != ZoneTheme || closed[1].Kind != ZoneMenu {
		t.Fatalf("unexpected compact zones: %+v", closed)
	}
	open := NavZones(60, true)
	if len(open) != 2+len(model.Regions) {
		t.Fatalf("expected dropdown zones, got %+v", open)
	}
	for i, r := range model.Regions {
		z := open[2+i]
		if z.Region != r || z.Row != NavHeight+i {
			t.Fatalf("unexpected dropdown zone %+v", z)
		}
	}
}

func TestNavMarksActiveAndTheme(t *testing.T) {
	s := state.New()
	bar, dropdown := Nav(Frame{State: s, Width: 100})
	plain := ansi.Strip(bar)
	for _, r := range model.Regions {
		if !strings.Contains(plain, Title(r)) {
			t.Fatalf("expected nav to list %q: %q", Title(r), plain)
		}
	}
	if !strings.Contains(plain, "☾") || len(dropdown) != 0 {
		t.Fatalf("expected moon glyph and no dropdown")
	}
	s.Dark = true
	s.MenuOpen = true
	bar, dropdown = Nav(Frame{State: s, Width: 60})
	if !strings.Contains(ansi.Strip(bar), "☀") || len(dropdown) != len(model.Regions) {
		t.Fatalf("expected sun glyph and dropdown on compact dark nav")
	}
}

func TestScreenDrawsFollower(t *testing.T) {
	s := state.Reduce(state.New(), state.PointerMoved{X: 5, Y: 3})
	body := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 80)+"\n", 22), "\n")
	out := Screen(Frame{State: s, Width: 80, Height: 24, Mouse: true}, body, "help")
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 lines, got %d", len(lines))
	}
	if got := []rune(lines[3])[5]; got != '●' {
		t.Fatalf("expected follower at (5,3), got %q", got)
	}
	if !strings.Contains(lines[23], "help") {
		t.Fatalf("expected status line last, got %q", lines[23])
	}

	out = Screen(Frame{State: s, Width: 80, Height: 24, Mouse: false}, body, "help")
	if strings.Contains(ansi.Strip(out), "●") {
		t.Fatalf("expected no follower with mouse disabled")
	}
}

func TestOverlayAt(t *testing.T) {
	if got := overlayAt("abcdef", 2, "X"); got != "abXdef" {
		t.Fatalf("unexpected overlay: %q", got)
	}
	if got := overlayAt("ab", 4, "X"); got != "ab  X" {
		t.Fatalf("unexpected overlay past end: %q", got)
	}
	if !blankAt("a  b", 1) || blankAt("a  b", 3) {
		t.Fatalf("unexpected blankAt results")
	}
	if !blankAt("ab", 5) {
		t.Fatalf("expected cells past the end to be blank")
	}
}

func TestPaletteForDiffers(t *testing.T) {
	if PaletteFor(true) == PaletteFor(false) {
		t.Fatalf("expected distinct palettes")
	}
	if PaletteFor(false).faded().Text != PaletteFor(false).Faint {
		t.Fatalf("expected faded text to use the faint color")
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	lines := FormatTable([]string{"Kind", "Address"}, [][]string{
		{"mail", "a@b.c"},
		{"linkedin", "https://example.com"},
	}, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Kind     Address" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "mail     a@b.c" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	right := FormatTable([]string{"N"}, [][]string{{"100"}, {"7"}}, map[int]bool{0: true})
	if right[0] != "  N" || right[2] != "  7" {
		t.Fatalf("unexpected right alignment: %q", right)
	}
}
