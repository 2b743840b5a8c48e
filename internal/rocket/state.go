package rocket

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/rocket-arcade/internal/geom"
)

// EnemyScore is the score awarded for each enemy destroyed by a bullet.
const EnemyScore = 10

// GameOverMessage is set on the game state when the rocket is destroyed.
const GameOverMessage = "Game Over"

// GameState is the authoritative world model. It is created once, mutated
// exclusively by the time and collisions controllers, and read by the
// presentation layer. A non-empty Message marks the terminal game-over
// state in which the driver suspends updates until reset.
type GameState struct {
	ArenaSize geom.Size
	Rocket    Rocket
	Enemies   []Enemy
	Bullets   []Bullet
	Particles []Particle
	Score     int
	Message   string
}

// New creates a game state for an arena of the given size. The rocket is
// placed at an rng-chosen position inside the arena; all other entity
// collections start empty. Degenerate arenas are rejected at construction
// time; per-frame updates never fail.
func New(size geom.Size, rng *rand.Rand) (*GameState, error) {
	if err := size.Validate(); err != nil {
		return nil, fmt.Errorf("rocket: invalid arena: %w", err)
	}
	s := &GameState{ArenaSize: size}
	s.Reset(rng)
	return s, nil
}

// Reset reinitializes the entities, clears the message and zeroes the
// score. The driver must call TimeController.Reset together with this so
// fresh state never runs against stale timers.
func (s *GameState) Reset(rng *rand.Rand) {
	s.Rocket = NewRocket(randomPoint(rng, s.ArenaSize, RocketRadius))
	s.Enemies = s.Enemies[:0]
	s.Bullets = s.Bullets[:0]
	s.Particles = s.Particles[:0]
	s.Score = 0
	s.Message = ""
}

// GameOver returns true when a terminal collision has occurred and the
// driver is expected to stop applying gameplay updates until reset.
func (s *GameState) GameOver() bool {
	return s.Message != ""
}

// randomPoint picks a position inside the arena keeping at least margin
// distance from every edge, so entities spawn fully in bounds.
func randomPoint(rng *rand.Rand, size geom.Size, margin float64) geom.Point {
	w := size.Width - 2*margin
	h := size.Height - 2*margin
	if w <= 0 || h <= 0 {
		// Arena smaller than the margin; fall back to the center.
		return size.Center()
	}
	return geom.NewPoint(margin+rng.Float64()*w, margin+rng.Float64()*h)
}
