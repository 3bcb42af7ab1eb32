package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Phase is the landing state machine's state.
type Phase int

const (
	PhaseFlying Phase = iota
	PhaseLanded
	PhaseCrashed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFlying:
		return "Flying"
	case PhaseLanded:
		return "Landed"
	case PhaseCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further flight updates will happen.
func (p Phase) Terminal() bool {
	return p == PhaseLanded || p == PhaseCrashed
}

// Event is an input to the landing state machine.
type Event int

const (
	// EventTouchdown fires when the landing gear meets the terrain.
	EventTouchdown Event = iota
	// EventEscape fires when the craft leaves through the top of the world.
	EventEscape
)

// Next returns the phase after ev. Only Flying has outgoing transitions;
// a touchdown lands when the verdict is safe and crashes otherwise.
func (p Phase) Next(ev Event, v Verdict) Phase {
	if p != PhaseFlying {
		return p
	}
	switch ev {
	case EventEscape:
		return PhaseCrashed
	case EventTouchdown:
		if v.Safe() {
			return PhaseLanded
		}
		return PhaseCrashed
	}
	return p
}

// Verdict is the outcome of checking a touchdown against the landing limits.
type Verdict struct {
	Flat         bool
	FlatnessDiff float64
	Upright      bool
	Slow         bool

	Angle  float64
	VX, VY float64

	limits config.LandingConfig
}

// Qualify evaluates a touchdown of l on t.
func Qualify(t *Terrain, l Lander, cfg config.LandingConfig) Verdict {
	flat, diff := t.Flatness(l.X, cfg.FlatWindow, cfg.FlatTolerance)
	return Verdict{
		Flat:         flat,
		FlatnessDiff: diff,
		Upright:      math.Abs(l.Angle) < cfg.MaxAngle,
		Slow:         math.Abs(l.VY) < cfg.MaxVy && math.Abs(l.VX) < cfg.MaxVx,
		Angle:        l.Angle,
		VX:           l.VX,
		VY:           l.VY,
		limits:       cfg,
	}
}

// Safe reports whether every landing condition holds.
func (v Verdict) Safe() bool {
	return v.Flat && v.Upright && v.Slow
}

// Reasons lists each failed condition. It is empty for a safe landing.
func (v Verdict) Reasons() []string {
	var reasons []string
	if !v.Flat {
		reasons = append(reasons, fmt.Sprintf("not flat enough (diff %.2f >= %.2f)", v.FlatnessDiff, v.limits.FlatTolerance))
	}
	if !v.Upright {
		reasons = append(reasons, fmt.Sprintf("angle too high (|%.1f°| >= %.1f°)", degrees(v.Angle), degrees(v.limits.MaxAngle)))
	}
	if math.Abs(v.VY) >= v.limits.MaxVy {
		reasons = append(reasons, fmt.Sprintf("vertical speed too high (|%.2f| >= %.2f)", v.VY, v.limits.MaxVy))
	}
	if math.Abs(v.VX) >= v.limits.MaxVx {
		reasons = append(reasons, fmt.Sprintf("horizontal speed too high (|%.2f| >= %.2f)", v.VX, v.limits.MaxVx))
	}
	return reasons
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
