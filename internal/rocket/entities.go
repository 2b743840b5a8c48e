package rocket

import "github.com/vovakirdan/rocket-arcade/internal/geom"

// Kind classifies an entity for collision eligibility and rendering.
type Kind int

const (
	KindRocket Kind = iota
	KindEnemy
	KindBullet
	KindParticle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRocket:
		return "Rocket"
	case KindEnemy:
		return "Enemy"
	case KindBullet:
		return "Bullet"
	case KindParticle:
		return "Particle"
	default:
		return "Unknown"
	}
}

// Collision radii in world units. These are entity model data rather than
// tunable gameplay parameters, so they live here and not in the config.
const (
	RocketRadius = 16.0
	EnemyRadius  = 10.0
	BulletRadius = 3.0
)

// CanCollide reports whether two entity kinds are eligible for collision.
// Only rocket-enemy and bullet-enemy pairs collide; enemies pass through
// each other and particles are purely cosmetic.
func CanCollide(a, b Kind) bool {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == KindRocket && b == KindEnemy:
		return true
	case a == KindEnemy && b == KindBullet:
		return true
	default:
		return false
	}
}

// Rocket is the player-controlled entity.
type Rocket struct {
	Pos    geom.Point
	Facing geom.Vector // unit vector, direction of the last movement
	Radius float64
}

// NewRocket creates a rocket at the given position, facing right.
func NewRocket(pos geom.Point) Rocket {
	return Rocket{
		Pos:    pos,
		Facing: geom.NewVector(1, 0),
		Radius: RocketRadius,
	}
}

// Enemy chases the rocket at a fixed speed.
type Enemy struct {
	Pos    geom.Point
	Radius float64
	Speed  float64 // world units per second
}

// NewEnemy creates an enemy at the given position.
func NewEnemy(pos geom.Point, speed float64) Enemy {
	return Enemy{Pos: pos, Radius: EnemyRadius, Speed: speed}
}

// Bullet travels in a straight line until it leaves the arena or hits an enemy.
type Bullet struct {
	Pos    geom.Point
	Dir    geom.Vector // unit vector
	Speed  float64
	Radius float64
}

// NewBullet creates a bullet at the given position heading along dir.
func NewBullet(pos geom.Point, dir geom.Vector, speed float64) Bullet {
	return Bullet{Pos: pos, Dir: dir.Normalize(), Speed: speed, Radius: BulletRadius}
}

// Particle is a short-lived cosmetic entity (exhaust trail, explosions).
// Particles never collide with anything.
type Particle struct {
	Pos   geom.Point
	Dir   geom.Vector // unit vector
	Speed float64
	TTL   float64 // remaining lifetime in seconds
}

// NewParticle creates a particle with the given lifetime.
func NewParticle(pos geom.Point, dir geom.Vector, speed, ttl float64) Particle {
	return Particle{Pos: pos, Dir: dir.Normalize(), Speed: speed, TTL: ttl}
}
