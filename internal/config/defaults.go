package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the built-in configuration used when no
// YAML file can be loaded.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Arena: ArenaConfig{
			Width:  1024,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:        240,
			FireInterval: 0.25,
		},
		Bullets: BulletConfig{
			Speed: 500,
		},
		Enemies: EnemyConfig{
			Speed:            100,
			SpawnInterval:    1.0,
			MinSpawnDistance: 120,
		},
		Particles: ParticleConfig{
			TrailInterval: 0.05,
			Speed:         60,
			Lifetime:      0.6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRocketYAML
}
