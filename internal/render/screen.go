package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	particleGlyph = "•"
	followerGlyph = "●"
)

// Screen stacks the navigation, the visible slice of the page and the status
// line, then draws the dropdown, particles and pointer follower on top.
func Screen(f Frame, body, status string) string {
	p := PaletteFor(f.State.Dark)
	bar, dropdown := Nav(f)

	lines := []string{bar}
	if body != "" {
		lines = append(lines, strings.Split(body, "\n")...)
	}
	for len(lines) < f.Height-StatusHeight {
		lines = append(lines, paint("", f.Width, p.Bg))
	}
	if f.Height > 0 && len(lines) > f.Height-StatusHeight {
		lines = lines[:max(f.Height-StatusHeight, NavHeight)]
	}
	lines = append(lines, paint(" "+status, f.Width, p.Surface))

	for i, d := range dropdown {
		row := NavHeight + i
		if row < len(lines)-StatusHeight {
			lines[row] = overlayAt(lines[row], 0, d)
		}
	}

	dot := lipgloss.NewStyle().Foreground(p.Particle).Faint(true).Render(particleGlyph)
	for _, pt := range f.Particles {
		x, y := pt.Cell(f.Width, len(lines)-StatusHeight, f.Elapsed)
		if y < NavHeight || !blankAt(lines[y], x) {
			continue
		}
		lines[y] = overlayAt(lines[y], x, dot)
	}

	if f.Mouse && f.State.PointerSeen {
		x, y := f.State.Pointer.X, f.State.Pointer.Y
		if y >= 0 && y < len(lines) && x >= 0 && x < f.Width {
			lines[y] = overlayAt(lines[y], x, lipgloss.NewStyle().Foreground(p.Follower).Render(followerGlyph))
		}
	}
	return strings.Join(lines, "\n")
}
