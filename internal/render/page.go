package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
)

const (
	minWidth      = 24
	maxContent    = 96
	twoColumnFrom = 90
	// StatusHeight is the number of rows below the page reserved for the key help.
	StatusHeight = 1
)

type section struct {
	region  model.Region
	surface func(Palette) lipgloss.Color
	build   func(p Palette, width int, f Frame) string
}

var sections = []section{
	{region: model.RegionHome, surface: func(p Palette) lipgloss.Color { return p.Bg }, build: heroSection},
	{region: model.RegionAbout, surface: func(p Palette) lipgloss.Color { return p.Surface }, build: aboutSection},
	{region: model.RegionExperience, surface: func(p Palette) lipgloss.Color { return p.Bg }, build: experienceSection},
	{region: model.RegionProjects, surface: func(p Palette) lipgloss.Color { return p.Surface }, build: projectsSection},
	{region: model.RegionContact, surface: func(p Palette) lipgloss.Color { return p.ContactBg }, build: contactSection},
}

// ContentWidth returns the width of the centered content column.
func ContentWidth(width int) int {
	return max(min(width-2*EntranceOffset, maxContent), minWidth-2*EntranceOffset)
}

// Page renders the scrollable page and reports where each region starts and
// how tall it is. Region heights depend only on the frame size.
func Page(f Frame) (string, []model.Span) {
	width := max(f.Width, minWidth)
	base := PaletteFor(f.State.Dark)
	cw := ContentWidth(width)

	var lines []string
	spans := make([]model.Span, 0, len(sections))
	for _, sec := range sections {
		entrance := EntranceFor(f.visible(sec.region))
		p := base
		if entrance.Faded {
			p = base.faded()
		}
		bg := sec.surface(base)
		block := sec.build(p, cw, f)
		if sec.region == model.RegionHome {
			block = lipgloss.PlaceVertical(heroHeight(f, block), lipgloss.Center, block)
		}
		indent := strings.Repeat(" ", max((width-cw)/2, 0)+entrance.Offset)

		top := len(lines)
		lines = append(lines, paint("", width, bg))
		for _, l := range strings.Split(block, "\n") {
			lines = append(lines, paint(indent+l, width, bg))
		}
		lines = append(lines, paint("", width, bg))
		spans = append(spans, model.Span{Region: sec.region, Top: top, Height: len(lines) - top})
	}
	for _, l := range strings.Split(footer(base, width), "\n") {
		lines = append(lines, paint(l, width, base.Bg))
	}
	return strings.Join(lines, "\n"), spans
}

// heroHeight fills the first screen when the terminal is tall enough.
func heroHeight(f Frame, block string) int {
	return max(lipgloss.Height(block), f.Height-NavHeight-StatusHeight-2)
}

func heading(p Palette, width int, text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Text).Width(width).Align(lipgloss.Center).Render(text)
}

func subheading(p Palette, text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(text)
}

func paragraph(color lipgloss.Color, width int, text string) string {
	return lipgloss.NewStyle().Foreground(color).Width(width).Render(text)
}

func card(border lipgloss.Color, width int, body string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(width-2, 1)).
		Render(body)
}

func hyperlink(url, label string) string {
	return ansi.SetHyperlink(url) + label + ansi.ResetHyperlink()
}

func heroSection(p Palette, width int, _ Frame) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	prof := content.Profile

	avatar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(p.Accent2).
		Foreground(p.Accent).
		Bold(true).
		Padding(1, 3).
		Render(prof.Initials)
	deco := func(c lipgloss.Color) string {
		return lipgloss.NewStyle().Foreground(c).Render("▪ ◆ ▪")
	}
	status := lipgloss.NewStyle().Foreground(p.Success).Render("●")
	first, last, _ := strings.Cut(prof.Name, " ")
	name := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(first) + " " +
		lipgloss.NewStyle().Bold(true).Foreground(p.Accent2).Render(last)
	role := lipgloss.NewStyle().Foreground(p.Text).Render(prof.Role)
	summary := lipgloss.NewStyle().Foreground(p.Muted).Width(min(width, 72)).Align(lipgloss.Center).Render(prof.Summary)

	button := func(fg lipgloss.Color, label string) string {
		return lipgloss.NewStyle().Foreground(fg).Bold(true).Border(lipgloss.RoundedBorder(), true).BorderForeground(fg).Padding(0, 2).Render(label)
	}
	var actions []string
	if mail, ok := content.LinkFor(model.LinkMail); ok {
		actions = append(actions, hyperlink(mail.URL, button(p.Accent, "✉ Get In Touch")))
	}
	if gh, ok := content.LinkFor(model.LinkGitHub); ok {
		actions = append(actions, hyperlink(gh.URL, button(p.Accent2, "View GitHub")))
	}

	parts := []string{
		center.Render(lipgloss.JoinHorizontal(lipgloss.Center, deco(p.Accent), "   ", avatar, "   ", deco(p.Accent2))),
		center.Render(status + " " + lipgloss.NewStyle().Foreground(p.Muted).Render("open to work")),
		"",
		center.Render(name),
		center.Render(role),
		"",
		center.Render(summary),
		"",
		center.Render(lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(actions, "  ")...)),
		"",
		center.Render(lipgloss.NewStyle().Foreground(p.Muted).Render("⌄")),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func joinWithGap(items []string, gap string) []string {
	out := make([]string, 0, 2*len(items))
	for i, item := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, item)
	}
	return out
}

func aboutSection(p Palette, width int, f Frame) string {
	prof := content.Profile
	colWidth := width
	twoCol := width >= twoColumnFrom
	if twoCol {
		colWidth = (width - 4) / 2
	}

	left := []string{
		lipgloss.NewStyle().Foreground(p.Accent).Render("⌖") + " " + lipgloss.NewStyle().Foreground(p.Muted).Render(prof.Location),
		"",
		paragraph(p.Muted, colWidth, prof.Bio),
		"",
		subheading(p, "Education"),
	}
	for i, ed := range content.Education {
		border := p.Accent
		if i%2 == 1 {
			border = p.Success
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render("🎓 "+ed.Degree),
			lipgloss.NewStyle().Foreground(p.Muted).Render(ed.Institution),
			lipgloss.NewStyle().Foreground(p.Muted).Faint(true).Render(ed.Details),
		)
		left = append(left, card(border, colWidth, body))
	}

	right := []string{subheading(p, "Technical Skills"), ""}
	for i, skill := range content.Skills {
		right = append(right, skillRow(p, colWidth, skill, f.bar(i)), "")
	}
	right = append(right, subheading(p, "Achievements"))
	for _, a := range content.Achievements {
		body := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("🏆 "+a.Title) + "\n" +
			lipgloss.NewStyle().Foreground(p.Muted).Render(a.Issuer)
		right = append(right, card(p.Gold, colWidth, body))
	}

	var columns string
	if twoCol {
		columns = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colWidth).Render(lipgloss.JoinVertical(lipgloss.Left, left...)),
			"    ",
			lipgloss.NewStyle().Width(colWidth).Render(lipgloss.JoinVertical(lipgloss.Left, right...)),
		)
	} else {
		columns = lipgloss.JoinVertical(lipgloss.Left, append(append(left, ""), right...)...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading(p, width, "About Me"), "", columns)
}

func skillRow(p Palette, width int, skill model.Skill, shown float64) string {
	label := skill.Icon + " " + lipgloss.NewStyle().Foreground(p.Text).Render(skill.Name)
	pct := lipgloss.NewStyle().Foreground(p.Muted).Render(fmt.Sprintf("%d%%", skill.Level))
	gap := max(width-lipgloss.Width(label)-lipgloss.Width(pct), 1)
	header := label + strings.Repeat(" ", gap) + pct
	return header + "\n" + skillBar(p, width, shown)
}

func skillBar(p Palette, width int, shown float64) string {
	bar := progress.New(
		progress.WithGradient(string(p.Info), string(p.Accent2)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.Full = '█'
	bar.Empty = '█'
	bar.EmptyColor = string(p.Track)
	return bar.ViewAs(min(max(shown, 0), 1))
}

func experienceSection(p Palette, width int, _ Frame) string {
	parts := []string{heading(p, width, "Experience"), ""}
	for _, exp := range content.Experience {
		border := p.Info
		title := lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(exp.Icon + " " + exp.Title)
		if exp.Status == model.StatusCurrent {
			border = p.Success
			badge := lipgloss.NewStyle().Background(p.Success).Foreground(p.ContactFg).Padding(0, 1).Render("Current")
			title += "  " + badge
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			title,
			lipgloss.NewStyle().Foreground(p.Accent).Render(exp.Organization),
			lipgloss.NewStyle().Foreground(p.Muted).Faint(true).Render(exp.Period),
			"",
			paragraph(p.Muted, width-4, exp.Description),
		)
		parts = append(parts, card(border, width, body))
	}

	parts = append(parts, "", lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(subheading(p, "Certifications")), "")
	cols := 1
	switch {
	case width >= 80:
		cols = 3
	case width >= 54:
		cols = 2
	}
	colWidth := (width - (cols - 1)) / cols
	var row []string
	flush := func() {
		if len(row) > 0 {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(row, " ")...))
			row = nil
		}
	}
	for _, cert := range content.Certifications {
		body := lipgloss.JoinVertical(lipgloss.Left,
			cert.Icon,
			paragraph(p.Text, colWidth-4, cert.Name),
			lipgloss.NewStyle().Foreground(p.Muted).Render(cert.Provider),
		)
		row = append(row, card(p.Border, colWidth, body))
		if len(row) == cols {
			flush()
		}
	}
	flush()
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func projectsSection(p Palette, width int, _ Frame) string {
	parts := []string{heading(p, width, "Featured Projects"), ""}
	inner := width - 4
	tagStyle := lipgloss.NewStyle().Background(p.TagBg).Foreground(p.TagFg).Padding(0, 1)
	for _, proj := range content.Projects {
		g := gradientFor(proj.Gradient)
		strip := progress.New(progress.WithGradient(string(g.from), string(g.to)), progress.WithoutPercentage(), progress.WithWidth(inner))
		strip.Full = '▀'
		body := lipgloss.JoinVertical(lipgloss.Left,
			strip.ViewAs(1),
			lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(proj.Icon+" "+proj.Title),
			lipgloss.NewStyle().Foreground(p.Accent).Render(proj.Date),
			"",
			paragraph(p.Muted, inner, proj.Description),
			"",
			flowTags(proj.Tech, inner, tagStyle),
		)
		parts = append(parts, card(p.Border, width, body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// flowTags lays tags out left to right, wrapping to width.
func flowTags(tags []string, width int, st lipgloss.Style) string {
	var lines []string
	var cur []string
	curWidth := 0
	for _, tag := range tags {
		rendered := st.Render(tag)
		w := lipgloss.Width(rendered)
		if curWidth > 0 && curWidth+1+w > width {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
			curWidth = 0
		}
		if curWidth > 0 {
			curWidth++
		}
		cur = append(cur, rendered)
		curWidth += w
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return strings.Join(lines, "\n")
}

var linkGlyphs = map[model.LinkKind]string{
	model.LinkMail:     "✉",
	model.LinkPhone:    "☏",
	model.LinkLinkedIn: "in",
	model.LinkGitHub:   "gh",
}

func contactSection(p Palette, width int, _ Frame) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	text := lipgloss.NewStyle().Foreground(p.ContactFg)
	parts := []string{
		center.Render(text.Bold(true).Render("Let's Connect")),
		"",
		center.Render(text.Render("I'm always open to discussing new opportunities and interesting projects.")),
		"",
	}
	for _, l := range content.Links {
		label := text.Bold(true).Render(linkGlyphs[l.Kind]) + "  " + text.Underline(true).Render(l.Label)
		parts = append(parts, center.Render(hyperlink(l.URL, label)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func footer(p Palette, width int) string {
	text := fmt.Sprintf("© 2025 %s. Built with Go, Bubble Tea, and lots of ☕", content.Profile.Name)
	return "\n" + lipgloss.NewStyle().Foreground(p.Muted).Width(width).Align(lipgloss.Center).Render(text) + "\n"
}
