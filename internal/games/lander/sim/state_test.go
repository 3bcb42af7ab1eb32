package sim

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// newFlatState returns a run over level ground at y=550 with the craft
// hovering gap pixels above it.
func newFlatState(gap float64) *State {
	s := New(1, config.DefaultLanderConfig(), nil)
	s.terrain = flatTerrain(550)
	s.lander.Y = 550 - s.cfg.Lander.BottomOffset - gap
	return s
}

func TestStraightDropLands(t *testing.T) {
	s := newFlatState(5)

	for i := 0; i < 100 && !s.Terminal(); i++ {
		s.Step(0.05, Controls{})
	}

	if s.Phase() != PhaseLanded {
		v, _ := s.Verdict()
		t.Fatalf("phase = %v, expected Landed (verdict %+v)", s.Phase(), v)
	}
	l := s.Lander()
	if l.VX != 0 || l.VY != 0 {
		t.Errorf("velocities should be zeroed, got (%f, %f)", l.VX, l.VY)
	}
	if l.Y != 530 {
		t.Errorf("lander should rest on the ground at Y=530, got %f", l.Y)
	}
	if !s.Terminal() || !s.Success() {
		t.Error("landing should be terminal and successful")
	}
	if len(s.Debris()) != 0 {
		t.Errorf("a safe landing should not spawn debris, got %d", len(s.Debris()))
	}
}

func TestFastDropCrashes(t *testing.T) {
	s := newFlatState(5)
	s.lander.VY = 10

	s.Step(0.05, Controls{Thrust: true, RotateLeft: true})

	if s.Phase() != PhaseCrashed {
		t.Fatalf("phase = %v, expected Crashed", s.Phase())
	}
	l := s.Lander()
	if l.VX != 0 || l.VY != 0 {
		t.Errorf("velocities should be zeroed, got (%f, %f)", l.VX, l.VY)
	}
	if l.Controls != (Controls{}) {
		t.Errorf("controls should be cleared, got %+v", l.Controls)
	}
	if len(s.Debris()) != 30 {
		t.Errorf("expected 30 debris particles, got %d", len(s.Debris()))
	}
	if s.Success() {
		t.Error("crash should not be a success")
	}
}

func TestLandedAngleSnapsUpright(t *testing.T) {
	s := newFlatState(0.01)
	s.lander.Angle = 0.5

	s.Step(0.05, Controls{})

	if s.Phase() != PhaseLanded {
		t.Fatalf("phase = %v, expected Landed", s.Phase())
	}
	if s.Lander().Angle != 0 {
		t.Errorf("angle should snap to 0, got %f", s.Lander().Angle)
	}
}

func TestDriftIntoWallClamps(t *testing.T) {
	s := newFlatState(300)
	s.lander.X = 790
	s.lander.VX = 10

	s.Step(0.05, Controls{})

	l := s.Lander()
	if l.X != 795 || l.VX != 0 {
		t.Errorf("X=%f VX=%f, expected X=795 VX=0", l.X, l.VX)
	}
	if s.Terminal() {
		t.Error("hitting the wall should not end the run")
	}
}

func TestEscapeThroughTopCrashes(t *testing.T) {
	s := newFlatState(300)
	s.lander.Y = -29
	s.lander.VY = -5

	s.Step(0.05, Controls{})

	if s.Phase() != PhaseCrashed {
		t.Fatalf("phase = %v, expected Crashed", s.Phase())
	}
	if _, ok := s.Verdict(); ok {
		t.Error("escape is not a touchdown and should carry no verdict")
	}
	if len(s.Debris()) != 30 {
		t.Errorf("expected debris burst, got %d", len(s.Debris()))
	}
	l := s.Lander()
	if l.VX != 0 || l.VY != 0 {
		t.Errorf("velocities should be frozen, got (%f, %f)", l.VX, l.VY)
	}
}

func TestTerminalFreezesCraftButNotDebris(t *testing.T) {
	s := newFlatState(5)
	s.lander.VY = 10
	s.Step(0.05, Controls{})
	frozen := s.Lander()

	for i := 0; i < 40; i++ {
		s.Step(0.05, Controls{Thrust: true})
	}

	if s.Lander() != frozen {
		t.Errorf("craft moved after the run ended: %+v -> %+v", frozen, s.Lander())
	}
	if len(s.Debris()) != 0 {
		t.Errorf("debris should have decayed, %d left", len(s.Debris()))
	}
}

func TestStepClampsDt(t *testing.T) {
	a := newFlatState(300)
	b := newFlatState(300)

	a.Step(1.0, Controls{Thrust: true})
	b.Step(0.05, Controls{Thrust: true})

	if a.Lander() != b.Lander() {
		t.Errorf("long frame should be clamped to 0.05s:\n%+v\n%+v", a.Lander(), b.Lander())
	}

	c := newFlatState(300)
	before := c.Lander()
	c.Step(-1, Controls{})
	if c.Lander() != before {
		t.Error("negative dt should not move the craft")
	}
}

func TestStateDeterministic(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	dts := []float64{0.016, 0.017, 0.033, 0.016, 0.08}

	run := func() *State {
		s := New(2024, cfg, nil)
		for i := 0; i < 600; i++ {
			s.Step(dts[i%len(dts)], Controls{
				Thrust:      i%4 != 0,
				RotateLeft:  i%11 == 0,
				RotateRight: i%13 == 0,
			})
		}
		return s
	}

	a, b := run(), run()
	if a.Lander() != b.Lander() {
		t.Errorf("landers differ:\n%+v\n%+v", a.Lander(), b.Lander())
	}
	if a.Phase() != b.Phase() || a.Elapsed() != b.Elapsed() {
		t.Errorf("phase/elapsed differ: %v/%f vs %v/%f", a.Phase(), a.Elapsed(), b.Phase(), b.Elapsed())
	}
	sa, sb := a.Stars(), b.Stars()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("star %d differs", i)
		}
	}
	da, db := a.Debris(), b.Debris()
	if len(da) != len(db) {
		t.Fatalf("debris counts differ: %d vs %d", len(da), len(db))
	}
}

func TestRestart(t *testing.T) {
	s := newFlatState(5)
	s.lander.VY = 10
	s.Step(0.05, Controls{})
	if !s.Terminal() {
		t.Fatal("setup: expected crash")
	}

	s.Restart(77)

	if s.Phase() != PhaseFlying || s.Terminal() {
		t.Error("restart should return to Flying")
	}
	if len(s.Debris()) != 0 {
		t.Error("restart should clear debris")
	}
	l := s.Lander()
	if l.X != 400 || l.Y != 100 || l.Fuel != 150 || l.VX != 0 || l.VY != 0 {
		t.Errorf("restart should re-initialize the craft, got %+v", l)
	}
	if s.Seed() != 77 {
		t.Errorf("Seed = %d, expected 77", s.Seed())
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed = %f, expected 0", s.Elapsed())
	}
}

func TestAltitudeAndLegs(t *testing.T) {
	s := newFlatState(30)

	if !near(s.Altitude(), 30) {
		t.Errorf("Altitude = %f, expected 30", s.Altitude())
	}
	if !near(s.LegExtension(), 0.5) {
		t.Errorf("LegExtension = %f, expected 0.5", s.LegExtension())
	}
	if !s.ApproachSafe() {
		t.Error("slow upright craft 30px above a pad should be approach-safe")
	}

	s.lander.VY = 3
	if s.ApproachSafe() {
		t.Error("fast descent should not be approach-safe")
	}

	high := newFlatState(200)
	if high.LegExtension() != 0 {
		t.Errorf("legs should be retracted high up, got %f", high.LegExtension())
	}
	if high.ApproachSafe() {
		t.Error("200px up is outside the warning distance")
	}
}
