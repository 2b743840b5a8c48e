package rocket

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/rocket-arcade/internal/geom"
)

func TestNewValidatesArena(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		size    geom.Size
		wantErr bool
	}{
		{name: "default arena", size: geom.NewSize(1024, 600), wantErr: false},
		{name: "zero area", size: geom.NewSize(0, 0), wantErr: true},
		{name: "negative height", size: geom.NewSize(1024, -600), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.size, rng)
			if (err != nil) != tc.wantErr {
				t.Errorf("New(%v) error = %v, wantErr %v", tc.size, err, tc.wantErr)
			}
		})
	}
}

func TestNewPlacesRocketInBounds(t *testing.T) {
	arena := geom.NewSize(1024, 600)

	for seed := int64(0); seed < 20; seed++ {
		s, err := New(arena, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		if !s.Rocket.Pos.Inside(arena) {
			t.Errorf("seed %d: rocket spawned out of bounds at %v", seed, s.Rocket.Pos)
		}
	}
}

func TestResetClearsRun(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s, err := New(geom.NewSize(1024, 600), rng)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Dirty the state as a played run would.
	s.Score = 120
	s.Message = GameOverMessage
	s.Enemies = append(s.Enemies, NewEnemy(geom.NewPoint(10, 10), 100))
	s.Bullets = append(s.Bullets, NewBullet(geom.NewPoint(20, 20), geom.NewVector(1, 0), 500))
	s.Particles = append(s.Particles, NewParticle(geom.NewPoint(30, 30), geom.NewVector(0, 1), 60, 1))

	s.Reset(rng)

	if s.Score != 0 {
		t.Errorf("Reset should clear score, got %d", s.Score)
	}
	if s.Message != "" {
		t.Errorf("Reset should clear message, got %q", s.Message)
	}
	if len(s.Enemies) != 0 || len(s.Bullets) != 0 || len(s.Particles) != 0 {
		t.Errorf("Reset should clear entities, got %d enemies, %d bullets, %d particles",
			len(s.Enemies), len(s.Bullets), len(s.Particles))
	}
	if s.GameOver() {
		t.Error("GameOver() should be false after reset")
	}
}

func TestCanCollideMatrix(t *testing.T) {
	tests := []struct {
		a, b     Kind
		expected bool
	}{
		{KindRocket, KindEnemy, true},
		{KindEnemy, KindRocket, true},
		{KindBullet, KindEnemy, true},
		{KindEnemy, KindBullet, true},
		{KindEnemy, KindEnemy, false},
		{KindRocket, KindBullet, false},
		{KindRocket, KindParticle, false},
		{KindEnemy, KindParticle, false},
		{KindBullet, KindBullet, false},
	}

	for _, tc := range tests {
		if got := CanCollide(tc.a, tc.b); got != tc.expected {
			t.Errorf("CanCollide(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestEventBufferOrderAndDrain(t *testing.T) {
	buf := NewEventBuffer()
	buf.Push(EventGameStart)
	buf.Push(EventShotFired)
	buf.Push(EventShotFired) // duplicates are kept

	if buf.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", buf.Len())
	}

	drained := buf.Drain()
	expected := []Event{EventGameStart, EventShotFired, EventShotFired}
	for i, e := range expected {
		if drained[i] != e {
			t.Errorf("drained[%d] = %v, expected %v", i, drained[i], e)
		}
	}

	if buf.Len() != 0 {
		t.Errorf("buffer should be empty after drain, got %d", buf.Len())
	}
}
