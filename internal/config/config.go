// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the rocket arcade.
package config

import (
	"fmt"

	"github.com/vovakirdan/rocket-arcade/internal/geom"
	"github.com/vovakirdan/rocket-arcade/internal/rocket"
)

// RocketConfig contains all gameplay configuration.
type RocketConfig struct {
	Arena     ArenaConfig    `yaml:"arena"`
	Player    PlayerConfig   `yaml:"player"`
	Bullets   BulletConfig   `yaml:"bullets"`
	Enemies   EnemyConfig    `yaml:"enemies"`
	Particles ParticleConfig `yaml:"particles"`
}

// ArenaConfig defines the world dimensions in world units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the rocket's parameters.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`         // world units per second
	FireInterval float64 `yaml:"fire_interval"` // seconds between shots
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed float64 `yaml:"speed"`
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Speed            float64 `yaml:"speed"`
	SpawnInterval    float64 `yaml:"spawn_interval"`
	MinSpawnDistance float64 `yaml:"min_spawn_distance"`
}

// ParticleConfig defines exhaust and explosion particle parameters.
type ParticleConfig struct {
	TrailInterval float64 `yaml:"trail_interval"`
	Speed         float64 `yaml:"speed"`
	Lifetime      float64 `yaml:"lifetime"`
}

// ArenaSize returns the configured arena as a geometry size.
func (c RocketConfig) ArenaSize() geom.Size {
	return geom.NewSize(c.Arena.Width, c.Arena.Height)
}

// Tuning converts the configuration into the time controller's tuning.
func (c RocketConfig) Tuning() rocket.Tuning {
	return rocket.Tuning{
		PlayerSpeed:      c.Player.Speed,
		FireInterval:     c.Player.FireInterval,
		BulletSpeed:      c.Bullets.Speed,
		EnemySpeed:       c.Enemies.Speed,
		SpawnInterval:    c.Enemies.SpawnInterval,
		MinSpawnDistance: c.Enemies.MinSpawnDistance,
		TrailInterval:    c.Particles.TrailInterval,
		ParticleSpeed:    c.Particles.Speed,
		ParticleTTL:      c.Particles.Lifetime,
	}
}

// Validate checks that the configuration can drive a playable game.
func (c RocketConfig) Validate() error {
	if err := c.ArenaSize().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("config: player speed must be positive, got %g", c.Player.Speed)
	}
	if c.Player.FireInterval <= 0 {
		return fmt.Errorf("config: fire interval must be positive, got %g", c.Player.FireInterval)
	}
	if c.Enemies.SpawnInterval <= 0 {
		return fmt.Errorf("config: spawn interval must be positive, got %g", c.Enemies.SpawnInterval)
	}
	return nil
}
