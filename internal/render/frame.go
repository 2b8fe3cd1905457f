// Package render draws the portfolio page from UI state.
package render

import (
	"time"

	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/particles"
	"github.com/verte-zerg/folio/internal/state"
)

// Frame is everything a single render depends on.
type Frame struct {
	State  state.State
	Width  int
	Height int
	// Bars holds the displayed fill (0-1) of each skill bar, indexed like the skill table.
	Bars      []float64
	Particles []particles.Particle
	Elapsed   time.Duration
	Mouse     bool
}

// SkillWidth returns the bar width, in percent, for a skill whose region is or is not visible.
func SkillWidth(level int, visible bool) int {
	if !visible {
		return 0
	}
	return min(max(level, 0), 100)
}

// SkillTarget is SkillWidth as a fraction.
func SkillTarget(level int, visible bool) float64 {
	return float64(SkillWidth(level, visible)) / 100
}

// Entrance is how a region's content is placed relative to its resting position.
type Entrance struct {
	Offset int
	Faded  bool
}

// EntranceOffset is how far hidden regions are shifted right, in columns.
const EntranceOffset = 2

// EntranceFor returns the resting entrance for visible regions and the
// shifted, faded one otherwise.
func EntranceFor(visible bool) Entrance {
	if visible {
		return Entrance{}
	}
	return Entrance{Offset: EntranceOffset, Faded: true}
}

func (f Frame) bar(i int) float64 {
	if i < 0 || i >= len(f.Bars) {
		return 0
	}
	return f.Bars[i]
}

func (f Frame) visible(r model.Region) bool {
	return f.State.IsVisible(r)
}
