package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Star is a background point drifting horizontally.
type Star struct {
	X, Y float64
	VX   float64
}

// StarField is the cosmetic scrolling background.
type StarField struct {
	stars         []Star
	width, height float64
}

// NewStarField scatters cfg.Count stars over the world.
func NewStarField(rng *rand.Rand, cfg config.StarsConfig, width, height float64) *StarField {
	sf := &StarField{
		stars:  make([]Star, cfg.Count),
		width:  width,
		height: height,
	}
	for i := range sf.stars {
		sf.stars[i] = Star{
			X:  rng.Float64() * width,
			Y:  rng.Float64() * height,
			VX: cfg.Speed,
		}
	}
	return sf
}

// Update drifts the stars; one that leaves either side re-enters on the
// opposite edge at a fresh height.
func (sf *StarField) Update(dt float64, rng *rand.Rand) {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.X += s.VX * dt
		switch {
		case s.X < 0:
			s.X = sf.width
			s.Y = rng.Float64() * sf.height
		case s.X > sf.width:
			s.X = 0
			s.Y = rng.Float64() * sf.height
		}
	}
}

// Stars returns the current stars. The slice must not be modified.
func (sf *StarField) Stars() []Star {
	return sf.stars
}
