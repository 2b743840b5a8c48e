package rocket

import (
	"math"

	"github.com/vovakirdan/rocket-arcade/internal/geom"
)

// explosionParticles is the number of particles in an explosion burst.
// Directions are evenly spaced so the pass stays deterministic without rng.
const explosionParticles = 12

const (
	explosionSpeed = 140.0
	explosionTTL   = 0.5
)

// HandleCollisions runs the collision pass over the current entity set.
// It is stateless and runs once per update cycle, after time-stepping, so
// it always observes the post-movement state.
//
// Pairs are processed in a fixed order: each bullet against the enemies in
// slice order, then the rocket against the surviving enemies. An entity
// removed earlier in the pass is never re-tested, so nothing is resolved
// twice within one pass. Malformed geometry (NaN) never collides. The pair
// eligibility matrix is CanCollide: the two loops below cover exactly the
// eligible pairs and nothing else.
//
// The time controller is touched only to cancel the cooldown timers tied
// to a destroyed rocket.
func HandleCollisions(s *GameState, tc *TimeController, events *EventBuffer) {
	dead := make([]bool, len(s.Enemies))

	// Bullets against enemies: the first overlapping enemy consumes the
	// bullet; both are removed and the score advances.
	keptBullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		hit := -1
		for i := range s.Enemies {
			if dead[i] {
				continue
			}
			if geom.Overlap(b.Pos, b.Radius, s.Enemies[i].Pos, s.Enemies[i].Radius) {
				hit = i
				break
			}
		}
		if hit < 0 {
			keptBullets = append(keptBullets, b)
			continue
		}
		dead[hit] = true
		s.Score += EnemyScore
		explode(s, s.Enemies[hit].Pos)
		events.Push(EventEnemyDestroyed)
	}
	s.Bullets = keptBullets

	// The rocket against the surviving enemies: the first hit is terminal.
	if !s.GameOver() {
		for i := range s.Enemies {
			if dead[i] {
				continue
			}
			if geom.Overlap(s.Rocket.Pos, s.Rocket.Radius, s.Enemies[i].Pos, s.Enemies[i].Radius) {
				dead[i] = true
				s.Message = GameOverMessage
				explode(s, s.Rocket.Pos)
				tc.cancelCooldowns()
				events.Push(EventRocketDestroyed)
				break
			}
		}
	}

	// Compact the enemy slice, preserving iteration order.
	keptEnemies := s.Enemies[:0]
	for i, e := range s.Enemies {
		if !dead[i] {
			keptEnemies = append(keptEnemies, e)
		}
	}
	s.Enemies = keptEnemies
}

// explode scatters a ring of particles around a destroyed entity.
func explode(s *GameState, at geom.Point) {
	for i := 0; i < explosionParticles; i++ {
		angle := 2 * math.Pi * float64(i) / explosionParticles
		s.Particles = append(s.Particles, NewParticle(at, geom.FromAngle(angle), explosionSpeed, explosionTTL))
	}
}
