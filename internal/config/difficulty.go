package config

import "fmt"

// DifficultyPreset is a named gameplay pressure level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a user-supplied difficulty name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset scales enemy pressure for a difficulty preset.
func ApplyPreset(cfg *RocketConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Speed *= 0.7
		cfg.Enemies.SpawnInterval *= 1.5
	case DifficultyHard:
		cfg.Enemies.Speed *= 1.4
		cfg.Enemies.SpawnInterval *= 0.6
	}
}
