package render

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors every styled surface draws from.
type Palette struct {
	Bg        lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Accent    lipgloss.Color
	Accent2   lipgloss.Color
	Success   lipgloss.Color
	Info      lipgloss.Color
	Gold      lipgloss.Color
	Highlight lipgloss.Color
	TagBg     lipgloss.Color
	TagFg     lipgloss.Color
	Track     lipgloss.Color
	Particle  lipgloss.Color
	Follower  lipgloss.Color
	ContactBg lipgloss.Color
	ContactFg lipgloss.Color
	Faint     lipgloss.Color
}

var (
	lightPalette = Palette{
		Bg:        lipgloss.Color("#F9FAFB"),
		Surface:   lipgloss.Color("#FFFFFF"),
		Text:      lipgloss.Color("#1F2937"),
		Muted:     lipgloss.Color("#4B5563"),
		Border:    lipgloss.Color("#E5E7EB"),
		Accent:    lipgloss.Color("#2563EB"),
		Accent2:   lipgloss.Color("#9333EA"),
		Success:   lipgloss.Color("#22C55E"),
		Info:      lipgloss.Color("#3B82F6"),
		Gold:      lipgloss.Color("#EAB308"),
		Highlight: lipgloss.Color("#EFF6FF"),
		TagBg:     lipgloss.Color("#DBEAFE"),
		TagFg:     lipgloss.Color("#1E40AF"),
		Track:     lipgloss.Color("#E5E7EB"),
		Particle:  lipgloss.Color("#2563EB"),
		Follower:  lipgloss.Color("#111827"),
		ContactBg: lipgloss.Color("#2563EB"),
		ContactFg: lipgloss.Color("#FFFFFF"),
		Faint:     lipgloss.Color("#D1D5DB"),
	}
	darkPalette = Palette{
		Bg:        lipgloss.Color("#111827"),
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#F3F4F6"),
		Muted:     lipgloss.Color("#D1D5DB"),
		Border:    lipgloss.Color("#374151"),
		Accent:    lipgloss.Color("#3B82F6"),
		Accent2:   lipgloss.Color("#A855F7"),
		Success:   lipgloss.Color("#22C55E"),
		Info:      lipgloss.Color("#3B82F6"),
		Gold:      lipgloss.Color("#EAB308"),
		Highlight: lipgloss.Color("#374151"),
		TagBg:     lipgloss.Color("#1E3A8A"),
		TagFg:     lipgloss.Color("#93C5FD"),
		Track:     lipgloss.Color("#374151"),
		Particle:  lipgloss.Color("#60A5FA"),
		Follower:  lipgloss.Color("#F9FAFB"),
		ContactBg: lipgloss.Color("#1E3A8A"),
		ContactFg: lipgloss.Color("#F9FAFB"),
		Faint:     lipgloss.Color("#4B5563"),
	}
)

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// faded mutes every foreground for regions that have not entered the viewport.
func (p Palette) faded() Palette {
	p.Text = p.Faint
	p.Muted = p.Faint
	p.Accent = p.Faint
	p.Accent2 = p.Faint
	p.Success = p.Faint
	p.Info = p.Faint
	p.Gold = p.Faint
	p.TagFg = p.Faint
	p.ContactFg = p.Faint
	return p
}

type gradient struct {
	from lipgloss.Color
	to   lipgloss.Color
}

var gradients = map[string]gradient{
	"purple-pink":   {from: "#A855F7", to: "#EC4899"},
	"blue-cyan":     {from: "#3B82F6", to: "#06B6D4"},
	"green-emerald": {from: "#22C55E", to: "#10B981"},
	"blue-purple":   {from: "#3B82F6", to: "#A855F7"},
}

// gradientFor resolves a project gradient identifier, falling back to blue-purple.
func gradientFor(id string) gradient {
	if g, ok := gradients[id]; ok {
		return g
	}
	return gradients["blue-purple"]
}
