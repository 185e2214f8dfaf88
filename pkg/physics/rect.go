package physics

import "math"

// Rect is an axis-aligned rectangle described by its center and size.
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// RectAt builds a rectangle of the given size centered on pos.
func RectAt(pos Vector2D, width, height float64) Rect {
	return Rect{Center: pos, Width: width, Height: height}
}

// Min returns the top-left corner.
func (r Rect) Min() Vector2D {
	return Vector2D{X: r.Center.X - r.Width/2, Y: r.Center.Y - r.Height/2}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vector2D {
	return Vector2D{X: r.Center.X + r.Width/2, Y: r.Center.Y + r.Height/2}
}

// Contains reports whether point lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(point Vector2D) bool {
	lo, hi := r.Min(), r.Max()
	return point.X >= lo.X && point.X < hi.X &&
		point.Y >= lo.Y && point.Y < hi.Y
}

// Overlaps reports whether the two rectangles share any area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	dx, dy := r.Penetration(other)
	return dx > 0 && dy > 0
}

// Penetration returns how deep the rectangles intersect on each axis.
// A zero component means the projections on that axis are disjoint.
func (r Rect) Penetration(other Rect) (dx, dy float64) {
	aLo, aHi := r.Min(), r.Max()
	bLo, bHi := other.Min(), other.Max()
	dx = math.Min(aHi.X, bHi.X) - math.Max(aLo.X, bLo.X)
	dy = math.Min(aHi.Y, bHi.Y) - math.Max(aLo.Y, bLo.Y)
	return math.Max(dx, 0), math.Max(dy, 0)
}

// Grow returns r enlarged by w and h in total size.
func (r Rect) Grow(w, h float64) Rect {
	return Rect{Center: r.Center, Width: r.Width + w, Height: r.Height + h}
}

// Intersects is Overlaps with inclusive edges; used for region tests where
// touching counts.
func (r Rect) Intersects(other Rect) bool {
	aLo, aHi := r.Min(), r.Max()
	bLo, bHi := other.Min(), other.Max()
	return !(aLo.X > bHi.X || aHi.X < bLo.X || aLo.Y > bHi.Y || aHi.Y < bLo.Y)
}
