package sim

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
)

// Integrate advances the craft by dt seconds: rotation, thrust, gravity,
// position and the horizontal wall clamp. It returns true when the craft
// has left through the top of the world.
//
// Accelerations are scaled by dt but the position update adds velocity
// unscaled, so velocities behave as pixels per frame.
func Integrate(l *Lander, dt float64, p config.PhysicsConfig) (escaped bool) {
	if l.RotateLeft {
		l.Angle -= p.RotationSpeed * dt
	}
	if l.RotateRight {
		l.Angle += p.RotationSpeed * dt
	}

	if l.Burning() {
		l.VX += p.ThrustAccel * math.Sin(l.Angle) * dt
		l.VY -= p.ThrustAccel * math.Cos(l.Angle) * dt
		l.Fuel -= p.FuelBurnRate * dt
		if l.Fuel < 0 {
			l.Fuel = 0
		}
	}

	l.VY += p.Gravity * dt

	l.X += l.VX
	l.Y += l.VY

	if l.X < p.MinX {
		l.X = p.MinX
		l.VX = 0
	}
	if l.X > p.MaxX {
		l.X = p.MaxX
		l.VX = 0
	}

	return l.Y < p.CeilingY
}
