package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
)

func TestParticlesSpawn(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	ps := NewParticles(cfg.Particles, cfg.Physics.Gravity)
	ps.Spawn(100, 200, rand.New(rand.NewSource(1)))

	if len(ps.Items()) != 30 {
		t.Fatalf("Len = %d, expected 30", len(ps.Items()))
	}
	for i, p := range ps.Items() {
		if p.X != 100 || p.Y != 200 {
			t.Errorf("particle %d spawned at (%f, %f)", i, p.X, p.Y)
		}
		if p.VX < -6 || p.VX > 6 || p.VY < -6 || p.VY > 6 {
			t.Errorf("particle %d velocity (%f, %f) outside [-6, 6]", i, p.VX, p.VY)
		}
		if p.Size < 2 || p.Size > 7 {
			t.Errorf("particle %d size %f outside [2, 7]", i, p.Size)
		}
		if p.Life != 1.5 || p.Decay != 2.0 {
			t.Errorf("particle %d life/decay = %f/%f", i, p.Life, p.Decay)
		}
	}
}

func TestParticlesAge(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	ps := NewParticles(cfg.Particles, cfg.Physics.Gravity)
	ps.items = append(ps.items, Particle{X: 10, Y: 10, VX: 1, VY: 0, Life: 1.5, Decay: 2})

	ps.Age(0.05)

	p := ps.Items()[0]
	if !near(p.VY, 3.5*0.5*0.05) {
		t.Errorf("VY = %f, expected half gravity %f", p.VY, 3.5*0.5*0.05)
	}
	if !near(p.X, 11) || !near(p.Y, 10+3.5*0.5*0.05) {
		t.Errorf("position = (%f, %f)", p.X, p.Y)
	}
	if !near(p.Life, 1.4) {
		t.Errorf("Life = %f, expected 1.4", p.Life)
	}
}

func TestParticlesExpire(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	ps := NewParticles(cfg.Particles, cfg.Physics.Gravity)
	ps.Spawn(0, 0, rand.New(rand.NewSource(2)))

	for i := 0; i < 10; i++ {
		ps.Age(0.05)
	}
	if len(ps.Items()) != 30 {
		t.Errorf("particles died early: %d left after 0.5s", len(ps.Items()))
	}

	for i := 0; i < 10; i++ {
		ps.Age(0.05)
	}
	if len(ps.Items()) != 0 {
		t.Errorf("expected all particles gone after 1s, %d left", len(ps.Items()))
	}
}

func TestStarFieldWraps(t *testing.T) {
	cfg := config.StarsConfig{Count: 1, Speed: -20}
	rng := rand.New(rand.NewSource(5))
	sf := NewStarField(rng, cfg, 800, 600)
	sf.stars[0].X = 0.5

	sf.Update(0.05, rng)

	s := sf.Stars()[0]
	if s.X != 800 {
		t.Errorf("star should wrap to the right edge, X = %f", s.X)
	}
	if s.Y < 0 || s.Y >= 600 {
		t.Errorf("wrapped star Y = %f outside the world", s.Y)
	}
}
