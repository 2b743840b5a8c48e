// Package geom provides the geometry primitives used by the simulation:
// sizes, points, vectors and circle overlap tests. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and
// testable.
package geom

import (
	"fmt"
	"math"
)

// Size represents the dimensions of the arena or an entity, in world units.
type Size struct {
	Width  float64
	Height float64
}

// NewSize creates a new size with the given dimensions.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Validate returns an error if the size cannot bound a playable arena.
// Components must be positive, finite numbers.
func (s Size) Validate() error {
	if math.IsNaN(s.Width) || math.IsNaN(s.Height) {
		return fmt.Errorf("geom: size %gx%g contains NaN", s.Width, s.Height)
	}
	if math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0) {
		return fmt.Errorf("geom: size %gx%g is unbounded", s.Width, s.Height)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("geom: size %gx%g has zero or negative area", s.Width, s.Height)
	}
	return nil
}

// Center returns the center point of a region with this size anchored at the origin.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Point represents a position in world coordinates.
type Point struct {
	X float64
	Y float64
}

// NewPoint creates a new point at the given coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Translate returns the point moved along v for dt seconds.
// The vector carries speed in world units per second.
func (p Point) Translate(v Vector, dt float64) Point {
	return Point{X: p.X + v.Dx*dt, Y: p.Y + v.Dy*dt}
}

// Clamp restricts the point to the region [0, size.Width] x [0, size.Height].
func (p Point) Clamp(size Size) Point {
	return Point{
		X: ClampF(p.X, 0, size.Width),
		Y: ClampF(p.Y, 0, size.Height),
	}
}

// Inside reports whether the point lies within [0, size.Width] x [0, size.Height].
func (p Point) Inside(size Size) bool {
	return p.X >= 0 && p.X <= size.Width && p.Y >= 0 && p.Y <= size.Height
}

// DistanceTo returns the euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// VectorTo returns the vector from this point to another.
func (p Point) VectorTo(other Point) Vector {
	return Vector{Dx: other.X - p.X, Dy: other.Y - p.Y}
}

// Vector represents a direction with magnitude in world units.
type Vector struct {
	Dx float64
	Dy float64
}

// NewVector creates a new vector with the given components.
func NewVector(dx, dy float64) Vector {
	return Vector{Dx: dx, Dy: dy}
}

// FromAngle creates a unit vector pointing at the given angle in radians.
func FromAngle(rad float64) Vector {
	return Vector{Dx: math.Cos(rad), Dy: math.Sin(rad)}
}

// Scale returns the vector multiplied by a factor.
func (v Vector) Scale(f float64) Vector {
	return Vector{Dx: v.Dx * f, Dy: v.Dy * f}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.Dx, v.Dy)
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.Dx == 0 && v.Dy == 0
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return Vector{}
	}
	return Vector{Dx: v.Dx / l, Dy: v.Dy / l}
}

// Overlap reports whether two circles intersect.
// Malformed geometry (NaN coordinates or radii) never overlaps; the
// comparison below is false for NaN operands by IEEE semantics.
func Overlap(p1 Point, r1 float64, p2 Point, r2 float64) bool {
	return p1.DistanceTo(p2) < r1+r2
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
