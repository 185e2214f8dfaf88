// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{X: v.X / length, Y: v.Y / length}
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Degrees returns the heading of the vector in degrees, in [0, 360).
// Screen coordinates are used: y grows downwards, so 90 points down.
func (v Vector2D) Degrees() float64 {
	return NormalizeDegrees(math.Atan2(v.Y, v.X) * 180 / math.Pi)
}

// FromDegrees creates a vector from a heading in degrees and a magnitude.
func FromDegrees(angle, magnitude float64) Vector2D {
	rad := angle * math.Pi / 180
	return Vector2D{
		X: magnitude * math.Cos(rad),
		Y: magnitude * math.Sin(rad),
	}
}

// NormalizeDegrees maps any angle onto [0, 360).
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// AngleDelta returns the signed shortest turn from one heading to another,
// in (-180, 180].
func AngleDelta(from, to float64) float64 {
	d := NormalizeDegrees(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// Wrap folds a position back onto a width x height torus whose origin is the
// top-left corner.
func Wrap(pos Vector2D, width, height float64) Vector2D {
	if width > 0 {
		pos.X = math.Mod(pos.X, width)
		if pos.X < 0 {
			pos.X += width
		}
	}
	if height > 0 {
		pos.Y = math.Mod(pos.Y, height)
		if pos.Y < 0 {
			pos.Y += height
		}
	}
	return pos
}
