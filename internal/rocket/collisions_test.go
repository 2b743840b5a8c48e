package rocket

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/rocket-arcade/internal/geom"
)

func newCollisionState(t *testing.T) *GameState {
	t.Helper()
	s, err := New(geom.NewSize(1024, 600), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s.Rocket.Pos = geom.NewPoint(512, 300)
	return s
}

func TestBulletDestroysEnemy(t *testing.T) {
	s := newCollisionState(t)
	tc := NewTimeController(DefaultTuning())
	buf := NewEventBuffer()

	s.Enemies = append(s.Enemies, NewEnemy(geom.NewPoint(100, 100), 100))
	s.Bullets = append(s.Bullets, NewBullet(geom.NewPoint(102, 100), geom.NewVector(1, 0), 500))

	HandleCollisions(s, tc, buf)

	if len(s.Enemies) != 0 {
		t.Errorf("enemy should be removed, %d left", len(s.Enemies))
	}
	if len(s.Bullets) != 0 {
		t.Errorf("bullet should be consumed, %d left", len(s.Bullets))
	}
	if s.Score != EnemyScore {
		t.Errorf("score = %d, expected %d", s.Score, EnemyScore)
	}
	if s.GameOver() {
		t.Error("bullet-enemy collision must not end the game")
	}

	events := buf.Drain()
	if len(events) != 1 || events[0] != EventEnemyDestroyed {
		t.Errorf("expected one EnemyDestroyed event, got %v", events)
	}
	if len(s.Particles) == 0 {
		t.Error("destroyed enemy should leave an explosion burst")
	}
}

func TestRocketEnemyCollisionIsTerminal(t *testing.T) {
	s := newCollisionState(t)
	tc := NewTimeController(DefaultTuning())
	buf := NewEventBuffer()

	s.Enemies = append(s.Enemies, NewEnemy(geom.NewPoint(515, 300), 100))

	HandleCollisions(s, tc, buf)

	if s.Message != GameOverMessage {
		t.Errorf("message = %q, expected %q", s.Message, GameOverMessage)
	}
	if len(s.Enemies) != 0 {
		t.Errorf("colliding enemy should be removed, %d left", len(s.Enemies))
	}

	events := buf.Drain()
	if len(events) != 1 || events[0] != EventRocketDestroyed {
		t.Errorf("expected one RocketDestroyed event, got %v", events)
	}
}

func TestNoDoubleResolutionOneBulletTwoEnemies(t *testing.T) {
	s := newCollisionState(t)
	tc := NewTimeController(DefaultTuning())
	buf := NewEventBuffer()

	// Two enemies overlapping the same bullet: only the first in slice
	// order is destroyed, and the bullet is consumed once.
	s.Enemies = append(s.Enemies,
		NewEnemy(geom.NewPoint(100, 100), 100),
		NewEnemy(geom.NewPoint(101, 100), 100),
	)
	s.Bullets = append(s.Bullets, NewBullet(geom.NewPoint(100, 101), geom.NewVector(1, 0), 500))

	HandleCollisions(s, tc, buf)

	if len(s.Enemies) != 1 {
		t.Errorf("exactly one enemy should survive, got %d", len(s.Enemies))
	}
	if s.Score != EnemyScore {
		t.Errorf("score = %d, expected a single kill's worth %d", s.Score, EnemyScore)
	}
}

func TestNoDoubleResolutionTwoBulletsOneEnemy(t *testing.T) {
	s := newCollisionState(t)
	tc := NewTimeController(DefaultTuning())
	buf := NewEventBuffer()

	s.Enemies = append(s.Enemies, NewEnemy(geom.NewPoint(100, 100), 100))
	s.Bullets = append(s.Bullets,
		NewBullet(geom.NewPoint(100, 102), geom.NewVector(1, 0), 500),
		NewBullet(geom.NewPoint(102, 100), geom.NewVector(1, 0), 500),
	)

	HandleCollisions(s, tc, buf)

	// The first bullet consumes the enemy; the second flies on.
	if len(s.Bullets) != 1 {
		t.Errorf("one bullet should survive, got %d", len(s.Bullets))
	}
	if s.Score != EnemyScore {
		t.Errorf("score = %d, enemy must not be scored twice", s.Score)
	}

	kills := 0
	for _, e := range buf.Drain() {
		if e == EventEnemyDestroyed {
			kills++
		}
	}
	if kills != 1 {
		t.Errorf("expected 1 EnemyDestroyed event, got %d", kills)
	}
}

func TestEnemyDestroyedByBulletCannotKillRocket(t *testing.T) {
	s := newCollisionState(t)
	tc := NewTimeController(DefaultTuning())
	buf := NewEventBuffer()

	// The enemy overlaps both a bullet and the rocket. The bullet pass
	// runs first and removes it, so the rocket survives.
	s.Enemies = append(s.Enemies, NewEnemy(geom.NewPoint(520, 300), 100))
	s.Bullets = append(s.Bullets, NewBullet(geom.NewPoint(521, 300), geom.NewVector(1, 0), 500))

	HandleCollisions(s, tc, buf)

	if s.GameOver() {
		t.Error("enemy removed by a bullet must not also destroy the rocket")
	}
	if len(s.Enemies) != 0 {
		t.Errorf("enemy should be gone, %d left", len(s.Enemies))
	}
}

func TestEnemiesDoNotCollideWithEachOther(t *testing.T) {
	s := newCollisionState(t)
	tc := NewTimeController(DefaultTuning())
	buf := NewEventBuffer()

	s.Enemies = append(s.Enemies,
		NewEnemy(geom.NewPoint(100, 100), 100),
		NewEnemy(geom.NewPoint(101, 100), 100),
	)

	HandleCollisions(s, tc, buf)

	if len(s.Enemies) != 2 {
		t.Errorf("overlapping enemies must be left alone, got %d", len(s.Enemies))
	}
	if buf.Len() != 0 {
		t.Errorf("no events expected, got %v", buf.Events())
	}
}

func TestNaNGeometryNeverCollides(t *testing.T) {
	s := newCollisionState(t)
	tc := NewTimeController(DefaultTuning())
	buf := NewEventBuffer()

	s.Enemies = append(s.Enemies, NewEnemy(geom.NewPoint(math.NaN(), math.NaN()), 100))
	s.Bullets = append(s.Bullets, NewBullet(geom.NewPoint(512, 300), geom.NewVector(1, 0), 500))

	HandleCollisions(s, tc, buf)

	if len(s.Enemies) != 1 || len(s.Bullets) != 1 {
		t.Error("NaN geometry must be treated as never colliding, not as a fault")
	}
	if s.GameOver() {
		t.Error("NaN enemy must not destroy the rocket")
	}
}

func TestTerminalCollisionStopsPass(t *testing.T) {
	s := newCollisionState(t)
	tc := NewTimeController(DefaultTuning())
	buf := NewEventBuffer()

	// Two enemies on the rocket: only the first is resolved; the pass
	// does not double-report the terminal condition.
	s.Enemies = append(s.Enemies,
		NewEnemy(geom.NewPoint(515, 300), 100),
		NewEnemy(geom.NewPoint(510, 300), 100),
	)

	HandleCollisions(s, tc, buf)

	deaths := 0
	for _, e := range buf.Drain() {
		if e == EventRocketDestroyed {
			deaths++
		}
	}
	if deaths != 1 {
		t.Errorf("expected exactly one RocketDestroyed event, got %d", deaths)
	}
	if len(s.Enemies) != 1 {
		t.Errorf("only the colliding enemy is removed, got %d survivors", len(s.Enemies))
	}
}

func TestEndToEndOverlapScenario(t *testing.T) {
	// Spec scenario: a rocket overlapping an enemy in one frame; the
	// collisions pass removes the enemy, emits one collision event and
	// sets the terminal message.
	s := newCollisionState(t)
	tn := DefaultTuning()
	tn.SpawnInterval = math.Inf(1)
	tn.TrailInterval = math.Inf(1)
	tc := NewTimeController(tn)
	buf := NewEventBuffer()
	rng := rand.New(rand.NewSource(5))

	s.Enemies = append(s.Enemies, NewEnemy(geom.NewPoint(530, 300), 100))

	tc.UpdateSeconds(0.016, NewActionSet(), s, buf, rng)
	HandleCollisions(s, tc, buf)

	if !s.GameOver() {
		t.Fatal("expected the run to end")
	}

	drained := buf.Drain()
	// GameStart from the first update, then the terminal collision.
	if len(drained) != 2 || drained[0] != EventGameStart || drained[1] != EventRocketDestroyed {
		t.Errorf("unexpected event sequence: %v", drained)
	}
}
