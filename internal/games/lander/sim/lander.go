package sim

import "github.com/vovakirdan/tui-lander/internal/config"

// Controls are the held inputs for one frame.
type Controls struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
}

// Lander is the player's craft. Angle is in radians, 0 is upright and
// positive tilts the nose clockwise (to the right).
type Lander struct {
	X, Y   float64
	VX, VY float64
	Angle  float64
	Fuel   float64
	Controls
}

// NewLander returns a craft at rest in its starting position.
func NewLander(cfg config.CraftConfig) Lander {
	return Lander{
		X:    cfg.StartX,
		Y:    cfg.StartY,
		Fuel: cfg.Fuel,
	}
}

// Burning reports whether the engine is firing.
func (l Lander) Burning() bool {
	return l.Thrust && l.Fuel > 0
}

// halt zeroes all motion and releases every control.
func (l *Lander) halt() {
	l.VX, l.VY = 0, 0
	l.Controls = Controls{}
}
