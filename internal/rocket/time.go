package rocket

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rocket-arcade/internal/geom"
)

// Tuning carries the gameplay parameters the time controller needs.
// Values are in world units and seconds; the config package builds a
// Tuning from YAML and difficulty presets.
type Tuning struct {
	PlayerSpeed      float64 // rocket speed, units/second
	FireInterval     float64 // minimum seconds between shots
	BulletSpeed      float64
	EnemySpeed       float64
	SpawnInterval    float64 // seconds between enemy spawns
	MinSpawnDistance float64 // enemies never spawn closer to the rocket
	TrailInterval    float64 // seconds between exhaust particles
	ParticleSpeed    float64
	ParticleTTL      float64 // particle lifetime in seconds
}

// DefaultTuning returns the stock gameplay parameters for a 1024x600 arena.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:      240,
		FireInterval:     0.25,
		BulletSpeed:      500,
		EnemySpeed:       100,
		SpawnInterval:    1.0,
		MinSpawnDistance: 120,
		TrailInterval:    0.05,
		ParticleSpeed:    60,
		ParticleTTL:      0.6,
	}
}

// TimeController advances the game state as time passes: it applies player
// actions, moves entities, ages particles and spawns enemies. It owns the
// accumulated simulation time and the cooldown timers, nothing else.
type TimeController struct {
	tuning Tuning

	current   float64 // accumulated simulation time in seconds
	lastShot  float64
	lastSpawn float64
	lastTrail float64
	started   bool // GameStart already emitted for this run
}

// NewTimeController creates a time controller with the given tuning.
func NewTimeController(tuning Tuning) *TimeController {
	tc := &TimeController{tuning: tuning}
	tc.Reset()
	return tc
}

// Reset zeroes the accumulated time and all cooldown timers. It does not
// touch the game state; the driver resets both together so fresh state
// never runs against stale timers.
func (tc *TimeController) Reset() {
	tc.current = 0
	tc.lastShot = math.Inf(-1) // first shot is never on cooldown
	tc.lastSpawn = 0
	tc.lastTrail = 0
	tc.started = false
}

// CurrentTime returns the accumulated simulation time since the last reset.
func (tc *TimeController) CurrentTime() float64 {
	return tc.current
}

// Tuning returns the controller's gameplay parameters.
func (tc *TimeController) Tuning() Tuning {
	return tc.tuning
}

// UpdateSeconds advances the simulation by dt seconds. Movement is scaled
// by dt so motion is frame-rate independent; positions are clamped to the
// arena as a hard constraint, never an error. rng is the only source of
// nondeterminism and is used for enemy placement. Negative or NaN deltas
// are treated as zero.
func (tc *TimeController) UpdateSeconds(dt float64, actions ActionSet, s *GameState, events *EventBuffer, rng *rand.Rand) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	// First update after New/Reset announces the run.
	if !tc.started {
		tc.started = true
		events.Push(EventGameStart)
	}

	tc.current += dt

	moved := tc.moveRocket(dt, actions, s)
	tc.fire(actions, s, events)
	tc.emitTrail(moved, s, rng)
	tc.advanceBullets(dt, s)
	tc.advanceEnemies(dt, s)
	tc.ageParticles(dt, s)
	tc.spawnEnemy(s, events, rng)
}

// cancelCooldowns clears the timers tied to the rocket. Called by the
// collisions pass when the rocket is destroyed so no orphaned fire or
// trail cooldown survives into the next run.
func (tc *TimeController) cancelCooldowns() {
	tc.lastShot = math.Inf(-1)
	tc.lastTrail = 0
}

// moveRocket applies movement actions and returns whether the rocket moved.
func (tc *TimeController) moveRocket(dt float64, actions ActionSet, s *GameState) bool {
	var dir geom.Vector
	if actions.Has(ActionMoveLeft) {
		dir.Dx -= 1
	}
	if actions.Has(ActionMoveRight) {
		dir.Dx += 1
	}
	if actions.Has(ActionMoveUp) {
		dir.Dy -= 1
	}
	if actions.Has(ActionMoveDown) {
		dir.Dy += 1
	}
	if dir.IsZero() {
		return false
	}

	// Axes are independent: holding right for t seconds moves exactly
	// PlayerSpeed*t along x, diagonals move at full speed on both axes.
	v := geom.NewVector(dir.Dx*tc.tuning.PlayerSpeed, dir.Dy*tc.tuning.PlayerSpeed)
	s.Rocket.Pos = s.Rocket.Pos.Translate(v, dt).Clamp(s.ArenaSize)
	s.Rocket.Facing = dir.Normalize()
	return dt > 0
}

// fire spawns a bullet along the rocket's facing when the fire action is
// held and the cooldown has elapsed.
func (tc *TimeController) fire(actions ActionSet, s *GameState, events *EventBuffer) {
	if !actions.Has(ActionFire) {
		return
	}
	if tc.current-tc.lastShot < tc.tuning.FireInterval {
		return
	}
	tc.lastShot = tc.current

	// A rocket hugging a wall puts the muzzle outside the arena; clamp it
	// so the bullet exists for at least one frame instead of being culled
	// before it is ever drawn.
	muzzle := s.Rocket.Pos.Translate(s.Rocket.Facing.Scale(s.Rocket.Radius), 1).Clamp(s.ArenaSize)
	s.Bullets = append(s.Bullets, NewBullet(muzzle, s.Rocket.Facing, tc.tuning.BulletSpeed))
	events.Push(EventShotFired)
}

// emitTrail drops an exhaust particle behind a moving rocket on a cooldown.
func (tc *TimeController) emitTrail(moved bool, s *GameState, rng *rand.Rand) {
	if !moved || tc.current-tc.lastTrail < tc.tuning.TrailInterval {
		return
	}
	tc.lastTrail = tc.current

	tail := s.Rocket.Pos.Translate(s.Rocket.Facing.Scale(-s.Rocket.Radius), 1)
	// Scatter the exhaust a little around the reverse facing direction.
	jitter := (rng.Float64() - 0.5) * math.Pi / 4
	angle := math.Atan2(-s.Rocket.Facing.Dy, -s.Rocket.Facing.Dx) + jitter
	s.Particles = append(s.Particles, NewParticle(tail, geom.FromAngle(angle), tc.tuning.ParticleSpeed, tc.tuning.ParticleTTL))
}

// advanceBullets moves bullets and drops the ones that left the arena.
func (tc *TimeController) advanceBullets(dt float64, s *GameState) {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Pos = b.Pos.Translate(b.Dir.Scale(b.Speed), dt)
		if b.Pos.Inside(s.ArenaSize) {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

// advanceEnemies moves each enemy toward the rocket and clamps to the arena.
func (tc *TimeController) advanceEnemies(dt float64, s *GameState) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		chase := e.Pos.VectorTo(s.Rocket.Pos).Normalize()
		e.Pos = e.Pos.Translate(chase.Scale(e.Speed), dt).Clamp(s.ArenaSize)
	}
}

// ageParticles moves particles and drops the expired ones.
func (tc *TimeController) ageParticles(dt float64, s *GameState) {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		p.TTL -= dt
		if p.TTL <= 0 {
			continue
		}
		p.Pos = p.Pos.Translate(p.Dir.Scale(p.Speed), dt)
		kept = append(kept, p)
	}
	s.Particles = kept
}

// spawnEnemy adds a new enemy on the spawn cooldown at an rng-chosen
// position away from the rocket.
func (tc *TimeController) spawnEnemy(s *GameState, events *EventBuffer, rng *rand.Rand) {
	if tc.current-tc.lastSpawn < tc.tuning.SpawnInterval {
		return
	}
	tc.lastSpawn = tc.current

	pos := randomPoint(rng, s.ArenaSize, EnemyRadius)
	// Keep the spawn fair: a few retries to land outside the exclusion
	// zone, then give up and take the last candidate on tiny arenas.
	for i := 0; i < 10 && pos.DistanceTo(s.Rocket.Pos) < tc.tuning.MinSpawnDistance; i++ {
		pos = randomPoint(rng, s.ArenaSize, EnemyRadius)
	}
	s.Enemies = append(s.Enemies, NewEnemy(pos, tc.tuning.EnemySpeed))
	events.Push(EventEnemySpawned)
}
