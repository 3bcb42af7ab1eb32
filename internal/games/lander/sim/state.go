package sim

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// escapeDebrisY is where debris spawns when the craft leaves through the top,
// so the burst stays on screen.
const escapeDebrisY = 10

// State is one complete run: craft, terrain, background, debris and the
// landing outcome. It is owned by a single frame driver; independent runs
// use independent States.
type State struct {
	cfg    config.LanderConfig
	logger *log.Logger
	rng    *rand.Rand
	seed   int64

	lander  Lander
	terrain *Terrain
	stars   *StarField
	debris  *Particles

	phase   Phase
	verdict *Verdict
	elapsed float64
}

// New builds a fresh run from seed.
func New(seed int64, cfg config.LanderConfig, logger *log.Logger) *State {
	s := &State{
		cfg:    cfg,
		logger: orDiscard(logger),
	}
	s.Restart(seed)
	return s
}

// Restart discards everything and starts a new run from seed.
func (s *State) Restart(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	w, h := s.cfg.World.Width, s.cfg.World.Height

	s.terrain = GenerateTerrain(s.rng, s.cfg.Terrain, w, h, s.logger)
	s.stars = NewStarField(s.rng, s.cfg.Stars, w, h)
	s.debris = NewParticles(s.cfg.Particles, s.cfg.Physics.Gravity)
	s.lander = NewLander(s.cfg.Lander)
	s.phase = PhaseFlying
	s.verdict = nil
	s.elapsed = 0
}

// Step advances the run by one frame of dt seconds with the given controls.
// Stars and debris always animate; the craft only moves while flying.
func (s *State) Step(dt float64, c Controls) {
	dt = core.ClampF(dt, 0, s.cfg.Physics.MaxDt)
	if !core.IsFinite(dt) {
		dt = 0
	}

	s.stars.Update(dt, s.rng)

	if !s.phase.Terminal() {
		s.elapsed += dt
		s.lander.Controls = c
		s.fly(dt)
	}

	s.debris.Age(dt)
}

func (s *State) fly(dt float64) {
	l := &s.lander

	if Integrate(l, dt, s.cfg.Physics) {
		s.logger.Info("crash: left the top of the screen", "x", l.X, "y", l.Y)
		s.phase = s.phase.Next(EventEscape, Verdict{})
		s.debris.Spawn(l.X, escapeDebrisY, s.rng)
		l.halt()
		return
	}

	groundY := s.terrain.HeightAt(l.X)
	if l.Y+s.cfg.Lander.BottomOffset <= groundY {
		return
	}
	l.Y = groundY - s.cfg.Lander.BottomOffset

	v := Qualify(s.terrain, *l, s.cfg.Landing)
	s.verdict = &v
	s.logger.Info("landing attempt",
		"flat", v.Flat, "diff", v.FlatnessDiff,
		"upright", v.Upright, "angle_deg", degrees(v.Angle),
		"slow", v.Slow, "vx", v.VX, "vy", v.VY)

	s.phase = s.phase.Next(EventTouchdown, v)
	if s.phase == PhaseLanded {
		s.logger.Info("successful landing", "fuel", l.Fuel, "time", s.elapsed)
		l.Angle = 0
	} else {
		s.logger.Info("crash", "reasons", v.Reasons())
		s.debris.Spawn(l.X, l.Y, s.rng)
	}
	l.halt()
}

// Lander returns a copy of the craft.
func (s *State) Lander() Lander {
	return s.lander
}

// Terrain returns the run's terrain.
func (s *State) Terrain() *Terrain {
	return s.terrain
}

// Stars returns the background stars.
func (s *State) Stars() []Star {
	return s.stars.Stars()
}

// Debris returns the live explosion particles.
func (s *State) Debris() []Particle {
	return s.debris.Items()
}

// DebrisMaxLife is the starting life of a debris particle.
func (s *State) DebrisMaxLife() float64 {
	return s.debris.MaxLife()
}

// Phase returns the landing state.
func (s *State) Phase() Phase {
	return s.phase
}

// Terminal reports whether the run is over.
func (s *State) Terminal() bool {
	return s.phase.Terminal()
}

// Success reports whether the run ended in a safe landing.
func (s *State) Success() bool {
	return s.phase == PhaseLanded
}

// Verdict returns the touchdown verdict, if the craft has touched down.
func (s *State) Verdict() (Verdict, bool) {
	if s.verdict == nil {
		return Verdict{}, false
	}
	return *s.verdict, true
}

// Elapsed returns the seconds flown so far.
func (s *State) Elapsed() float64 {
	return s.elapsed
}

// Seed returns the seed the run was built from.
func (s *State) Seed() int64 {
	return s.seed
}

// Config returns the configuration the run uses.
func (s *State) Config() config.LanderConfig {
	return s.cfg
}

// Altitude is the gap between the landing gear and the terrain below it.
// A non-finite result falls back to the world height.
func (s *State) Altitude() float64 {
	d := s.terrain.HeightAt(s.lander.X) - (s.lander.Y + s.cfg.Lander.BottomOffset)
	if !core.IsFinite(d) {
		s.logger.Warn("invalid altitude, using world height", "x", s.lander.X, "y", s.lander.Y)
		return s.cfg.World.Height
	}
	return d
}

// ApproachSafe reports whether the craft is close above a flat spot and
// slow and upright enough that touching down now would likely succeed.
func (s *State) ApproachSafe() bool {
	if s.phase.Terminal() {
		return false
	}
	lc := s.cfg.Landing
	d := s.Altitude()
	if d <= 0 || d >= lc.WarnDistance {
		return false
	}
	if math.Abs(s.lander.VY) >= lc.WarnVy || math.Abs(s.lander.Angle) >= lc.WarnAngle {
		return false
	}
	flat, _ := s.terrain.Flatness(s.lander.X, lc.FlatWindow, lc.FlatTolerance)
	return flat
}

// LegExtension returns how far the landing legs are deployed, from 0
// (retracted) to 1 (fully out), growing as the craft nears the ground.
func (s *State) LegExtension() float64 {
	d := s.Altitude()
	deployAt := s.cfg.Landing.LegDeployAt
	switch {
	case d < 0:
		return 1
	case deployAt <= 0 || d >= deployAt:
		return 0
	default:
		return 1 - d/deployAt
	}
}
