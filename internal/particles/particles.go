// Package particles builds the decorative floating particle field.
package particles

import (
	"math"
	"math/rand"
	"time"
)

// DefaultCount is the number of particles drawn behind the page.
const DefaultCount = 20

// Particle is a dot floating at a fixed position.
type Particle struct {
	// X and Y are percentages of the screen size.
	X      float64
	Y      float64
	Period time.Duration
	Delay  time.Duration
}

// Generator produces randomized particle fields.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Field returns count particles with random positions and timings.
func (g *Generator) Field(count int) []Particle {
	if count <= 0 {
		return nil
	}
	out := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Particle{
			X:      g.rnd.Float64() * 100,
			Y:      g.rnd.Float64() * 100,
			Period: 3*time.Second + time.Duration(g.rnd.Float64()*float64(4*time.Second)),
			Delay:  time.Duration(g.rnd.Float64() * float64(2*time.Second)),
		})
	}
	return out
}

// MaxLift is the highest a particle rises, in rows.
const MaxLift = 2

// Lift returns how many rows the particle has risen at the given elapsed time.
func (p Particle) Lift(elapsed time.Duration) int {
	t := elapsed - p.Delay
	if t <= 0 || p.Period <= 0 {
		return 0
	}
	phase := float64(t%p.Period) / float64(p.Period)
	return int(math.Round(MaxLift * (1 - math.Cos(2*math.Pi*phase)) / 2))
}

// Cell returns the particle's screen cell for a width x height screen.
func (p Particle) Cell(width, height int, elapsed time.Duration) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	x := int(p.X / 100 * float64(width))
	y := int(p.Y/100*float64(height)) - p.Lift(elapsed)
	return clamp(x, 0, width-1), clamp(y, 0, height-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
