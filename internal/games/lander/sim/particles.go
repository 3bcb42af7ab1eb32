package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Particle is one piece of explosion debris.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64
	Decay  float64
}

// Particles is the explosion debris system. It keeps animating after the
// run has ended.
type Particles struct {
	items   []Particle
	cfg     config.ParticlesConfig
	gravity float64
}

// NewParticles creates an empty debris system pulled down by gravity
// scaled by cfg.GravityScale.
func NewParticles(cfg config.ParticlesConfig, gravity float64) *Particles {
	return &Particles{
		items:   make([]Particle, 0, cfg.Count),
		cfg:     cfg,
		gravity: gravity,
	}
}

// Spawn adds a burst of debris at (x, y).
func (ps *Particles) Spawn(x, y float64, rng *rand.Rand) {
	for i := 0; i < ps.cfg.Count; i++ {
		ps.items = append(ps.items, Particle{
			X:     x,
			Y:     y,
			VX:    (rng.Float64() - 0.5) * 2 * ps.cfg.Speed,
			VY:    (rng.Float64() - 0.5) * 2 * ps.cfg.Speed,
			Size:  ps.cfg.MinSize + rng.Float64()*(ps.cfg.MaxSize-ps.cfg.MinSize),
			Life:  ps.cfg.Life,
			Decay: ps.cfg.Decay,
		})
	}
}

// Age moves every particle, burns its life and drops the dead ones.
func (ps *Particles) Age(dt float64) {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.VY += ps.gravity * ps.cfg.GravityScale * dt
		p.X += p.VX
		p.Y += p.VY
		p.Life -= p.Decay * dt
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

// Items returns the live particles. The slice must not be modified.
func (ps *Particles) Items() []Particle {
	return ps.items
}

// MaxLife is the life a fresh particle starts with.
func (ps *Particles) MaxLife() float64 {
	return ps.cfg.Life
}

