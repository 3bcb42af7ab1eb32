// Package config provides YAML-based configuration loading for the lander.
package config

import "fmt"

// LanderConfig contains every tunable constant of a run.
type LanderConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Lander    CraftConfig     `yaml:"lander"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Landing   LandingConfig   `yaml:"landing"`
	Particles ParticlesConfig `yaml:"particles"`
	Stars     StarsConfig     `yaml:"stars"`
	Input     InputConfig     `yaml:"input"`
}

// WorldConfig defines the logical playfield in pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the integration constants.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`        // px/s² downward
	ThrustAccel   float64 `yaml:"thrust_accel"`   // px/s² along the body axis
	RotationSpeed float64 `yaml:"rotation_speed"` // rad/s
	FuelBurnRate  float64 `yaml:"fuel_burn_rate"` // units/s while thrusting
	MaxDt         float64 `yaml:"max_dt"`         // seconds; longer frames are clamped
	MinX          float64 `yaml:"min_x"`
	MaxX          float64 `yaml:"max_x"`
	CeilingY      float64 `yaml:"ceiling_y"` // crossing above this is a crash
}

// CraftConfig defines the lander's starting state and geometry.
type CraftConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Fuel         float64 `yaml:"fuel"`
	BottomOffset float64 `yaml:"bottom_offset"` // center to landing gear
}

// TerrainConfig defines procedural terrain generation.
type TerrainConfig struct {
	Step          float64 `yaml:"step"`
	StartY        float64 `yaml:"start_y"`
	MinY          float64 `yaml:"min_y"`
	MaxY          float64 `yaml:"max_y"`
	Roughness     float64 `yaml:"roughness"` // full span of the per-step delta
	MinFlatSpots  int     `yaml:"min_flat_spots"`
	FlatChance    float64 `yaml:"flat_chance"`
	FlatMinWidth  float64 `yaml:"flat_min_width"`
	FlatMaxWidth  float64 `yaml:"flat_max_width"`
	ForcedMinX    float64 `yaml:"forced_min_x"` // forced spots need x strictly inside (min, max)
	ForcedMaxX    float64 `yaml:"forced_max_x"`
	FlatLimitX    float64 `yaml:"flat_limit_x"` // no flat run may start at or past this x
	FailsafeX     float64 `yaml:"failsafe_x"`
	FailsafeWidth float64 `yaml:"failsafe_width"`
	FailsafeMinY  float64 `yaml:"failsafe_min_y"`
	FailsafeMaxY  float64 `yaml:"failsafe_max_y"`
}

// LandingConfig defines the qualification thresholds.
type LandingConfig struct {
	FlatWindow    float64 `yaml:"flat_window"`    // half-width of the flatness window
	FlatTolerance float64 `yaml:"flat_tolerance"` // max-min height must be below this
	MaxAngle      float64 `yaml:"max_angle"`
	MaxVy         float64 `yaml:"max_vy"`
	MaxVx         float64 `yaml:"max_vx"`

	// Approach-warning thresholds used for display only.
	WarnDistance float64 `yaml:"warn_distance"`
	WarnVy       float64 `yaml:"warn_vy"`
	WarnAngle    float64 `yaml:"warn_angle"`
	LegDeployAt  float64 `yaml:"leg_deploy_at"`
}

// ParticlesConfig defines the explosion burst.
type ParticlesConfig struct {
	Count        int     `yaml:"count"`
	Speed        float64 `yaml:"speed"` // velocity components drawn from [-speed, speed]
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	Life         float64 `yaml:"life"`
	Decay        float64 `yaml:"decay"`
	GravityScale float64 `yaml:"gravity_scale"`
}

// StarsConfig defines the background star field.
type StarsConfig struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"` // horizontal px/s, negative drifts left
}

// InputConfig defines how held keys are approximated on terminals,
// which report presses and repeats but not releases.
type InputConfig struct {
	HoldInitialMS int `yaml:"hold_initial_ms"` // after the first press, covers the OS repeat delay
	HoldTimeoutMS int `yaml:"hold_timeout_ms"` // after each repeat
}

// Validate checks that the configuration can drive a run.
func (c LanderConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Physics.MaxDt <= 0:
		return fmt.Errorf("physics.max_dt must be positive, got %g", c.Physics.MaxDt)
	case c.Physics.MinX >= c.Physics.MaxX:
		return fmt.Errorf("physics.min_x (%g) must be below max_x (%g)", c.Physics.MinX, c.Physics.MaxX)
	case c.Lander.Fuel < 0:
		return fmt.Errorf("lander.fuel must not be negative, got %g", c.Lander.Fuel)
	case c.Terrain.Step <= 0:
		return fmt.Errorf("terrain.step must be positive, got %g", c.Terrain.Step)
	case c.Terrain.MinY > c.Terrain.MaxY:
		return fmt.Errorf("terrain.min_y (%g) must not exceed max_y (%g)", c.Terrain.MinY, c.Terrain.MaxY)
	case c.Terrain.FlatMinWidth > c.Terrain.FlatMaxWidth:
		return fmt.Errorf("terrain flat width range [%g, %g] is inverted", c.Terrain.FlatMinWidth, c.Terrain.FlatMaxWidth)
	case c.Terrain.FailsafeMinY > c.Terrain.FailsafeMaxY:
		return fmt.Errorf("terrain failsafe height range [%g, %g] is inverted", c.Terrain.FailsafeMinY, c.Terrain.FailsafeMaxY)
	case c.Landing.FlatWindow <= 0 || c.Landing.FlatTolerance <= 0:
		return fmt.Errorf("landing flat window and tolerance must be positive")
	case c.Landing.MaxAngle < 0 || c.Landing.MaxVx < 0 || c.Landing.MaxVy < 0:
		return fmt.Errorf("landing limits must not be negative")
	case c.Particles.Count < 0 || c.Particles.MinSize > c.Particles.MaxSize:
		return fmt.Errorf("particles config is invalid")
	case c.Input.HoldInitialMS < 0 || c.Input.HoldTimeoutMS < 0:
		return fmt.Errorf("input hold durations must not be negative")
	case c.Stars.Count < 0:
		return fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count)
	}
	return nil
}
