package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the built-in configuration. It mirrors the
// embedded defaults/lander.yaml and is used when that file cannot be parsed.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:       3.5,
			ThrustAccel:   8,
			RotationSpeed: 2,
			FuelBurnRate:  3.0,
			MaxDt:         0.05,
			MinX:          5,
			MaxX:          795,
			CeilingY:      -30,
		},
		Lander: CraftConfig{
			StartX:       400,
			StartY:       100,
			Fuel:         150,
			BottomOffset: 20,
		},
		Terrain: TerrainConfig{
			Step:          10,
			StartY:        550,
			MinY:          480,
			MaxY:          600,
			Roughness:     25,
			MinFlatSpots:  2,
			FlatChance:    0.25,
			FlatMinWidth:  40,
			FlatMaxWidth:  60,
			ForcedMinX:    100,
			ForcedMaxX:    700,
			FlatLimitX:    700,
			FailsafeX:     350,
			FailsafeWidth: 50,
			FailsafeMinY:  530,
			FailsafeMaxY:  570,
		},
		Landing: LandingConfig{
			FlatWindow:    15,
			FlatTolerance: 1.0,
			MaxAngle:      0.7,
			MaxVy:         3.5,
			MaxVx:         4.0,
			WarnDistance:  50,
			WarnVy:        2.5,
			WarnAngle:     0.4,
			LegDeployAt:   60,
		},
		Particles: ParticlesConfig{
			Count:        30,
			Speed:        6,
			MinSize:      2,
			MaxSize:      7,
			Life:         1.5,
			Decay:        2.0,
			GravityScale: 0.5,
		},
		Stars: StarsConfig{
			Count: 100,
			Speed: -20,
		},
		Input: InputConfig{
			HoldInitialMS: 450,
			HoldTimeoutMS: 120,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
