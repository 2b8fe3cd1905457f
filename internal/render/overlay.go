package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const resetSeq = "\x1b[0m"

// paint pads or cuts line to width and fills it with bg, re-applying the
// background after every reset so nested styles keep the surface color.
func paint(line string, width int, bg lipgloss.Color) string {
	if w := ansi.StringWidth(line); w > width {
		line = ansi.Truncate(line, width, "")
	} else if w < width {
		line += strings.Repeat(" ", width-w)
	}
	open := openSeq(lipgloss.NewStyle().Background(bg))
	if open == "" {
		return line
	}
	return open + strings.ReplaceAll(line, resetSeq, resetSeq+open) + resetSeq
}

// openSeq returns the escape sequence a style emits before its text.
func openSeq(st lipgloss.Style) string {
	open, _, found := strings.Cut(st.Render("x"), "x")
	if !found {
		return ""
	}
	return open
}

// overlayAt draws s over line starting at column x.
func overlayAt(line string, x int, s string) string {
	if x < 0 {
		return line
	}
	if w := ansi.StringWidth(line); w < x {
		line += strings.Repeat(" ", x-w)
	}
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := ansi.TruncateLeft(line, x+runewidth.StringWidth(ansi.Strip(s)), "")
	return left + s + right
}

// blankAt reports whether column x of line shows nothing but background.
func blankAt(line string, x int) bool {
	if x < 0 {
		return false
	}
	cell := ansi.Strip(ansi.TruncateLeft(ansi.Truncate(line, x+1, ""), x, ""))
	return strings.TrimSpace(cell) == ""
}
