package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
)

// NavHeight is the number of rows the fixed navigation bar occupies.
const NavHeight = 1

// CompactBelow is the width under which the navigation collapses into a menu.
const CompactBelow = 72

const (
	themeButtonWidth = 3
	dropdownWidth    = 14
)

var titleCaser = cases.Title(language.English)

// Title returns the display name of a region.
func Title(r model.Region) string {
	return titleCaser.String(string(r))
}

// ZoneKind tells what a click on a zone does.
type ZoneKind int

// Zone kinds.
const (
	ZoneRegion ZoneKind = iota
	ZoneTheme
	ZoneMenu
)

// Zone is a clickable area of the navigation.
type Zone struct {
	Kind   ZoneKind
	Region model.Region
	Row    int
	X0     int
	X1     int
}

// Contains reports whether the cell (x, y) is inside the zone.
func (z Zone) Contains(x, y int) bool {
	return y == z.Row && x >= z.X0 && x < z.X1
}

// Compact reports whether a screen of this width uses the collapsed navigation.
func Compact(width int) bool {
	return width < CompactBelow
}

// NavZones returns the clickable areas of the navigation for a screen width.
// Dropdown entries are only present on compact screens with the menu open.
func NavZones(width int, menuOpen bool) []Zone {
	if Compact(width) {
		zones := []Zone{
			{Kind: ZoneTheme, Row: 0, X0: width - 2*themeButtonWidth - 2, X1: width - themeButtonWidth - 2},
			{Kind: ZoneMenu, Row: 0, X0: width - themeButtonWidth - 1, X1: width - 1},
		}
		if menuOpen {
			for i, r := range model.Regions {
				zones = append(zones, Zone{Kind: ZoneRegion, Region: r, Row: NavHeight + i, X0: 0, X1: dropdownWidth})
			}
		}
		return zones
	}

	total := themeButtonWidth + 2
	for i, r := range model.Regions {
		if i > 0 {
			total++
		}
		total += runewidth.StringWidth(Title(r)) + 2
	}
	x := width - 1 - total
	zones := make([]Zone, 0, len(model.Regions)+1)
	for _, r := range model.Regions {
		w := runewidth.StringWidth(Title(r)) + 2
		zones = append(zones, Zone{Kind: ZoneRegion, Region: r, Row: 0, X0: x, X1: x + w})
		x += w + 1
	}
	x++
	zones = append(zones, Zone{Kind: ZoneTheme, Row: 0, X0: x, X1: x + themeButtonWidth})
	return zones
}

// Nav renders the navigation bar and, on compact screens with the menu open,
// the dropdown rows drawn beneath it.
func Nav(f Frame) (string, []string) {
	p := PaletteFor(f.State.Dark)
	zones := NavZones(f.Width, f.State.MenuOpen)

	var bar []Zone
	var drop []Zone
	for _, z := range zones {
		if z.Row == 0 {
			bar = append(bar, z)
		} else {
			drop = append(drop, z)
		}
	}
	sort.Slice(bar, func(i, j int) bool { return bar[i].X0 < bar[j].X0 })

	brand := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(content.Profile.Name)
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(brand)
	col := 1 + lipgloss.Width(brand)
	for _, z := range bar {
		if z.X0 < col {
			continue
		}
		b.WriteString(strings.Repeat(" ", z.X0-col))
		b.WriteString(zoneLabel(z, f, p))
		col = z.X1
	}
	line := paint(b.String(), f.Width, p.Surface)

	dropdown := make([]string, 0, len(drop))
	for _, z := range drop {
		dropdown = append(dropdown, paint(zoneLabel(z, f, p), z.X1-z.X0, p.Highlight))
	}
	return line, dropdown
}

func zoneLabel(z Zone, f Frame, p Palette) string {
	width := z.X1 - z.X0
	switch z.Kind {
	case ZoneTheme:
		glyph := "☾"
		if f.State.Dark {
			glyph = "☀"
		}
		return lipgloss.NewStyle().Foreground(p.Text).Width(width).Align(lipgloss.Center).Render(glyph)
	case ZoneMenu:
		glyph := "≡"
		if f.State.MenuOpen {
			glyph = "✕"
		}
		return lipgloss.NewStyle().Foreground(p.Text).Width(width).Align(lipgloss.Center).Render(glyph)
	default:
		st := lipgloss.NewStyle().Foreground(p.Muted).Width(width).Padding(0, 1)
		if z.Region == f.State.Active {
			st = st.Foreground(p.Accent).Bold(true).Background(p.Highlight)
		}
		return st.Render(Title(z.Region))
	}
}
