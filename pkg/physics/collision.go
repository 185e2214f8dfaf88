// pkg/physics/collision.go
package physics

// Ship-to-ship velocity blend factors.
const (
	RetainFactor   = 0.2
	TransferFactor = 0.75
)

// BlendVelocities mixes two colliding velocities. Each side keeps
// RetainFactor of its own velocity and picks up TransferFactor of the
// other's. The result is intentionally not momentum preserving.
func BlendVelocities(self, other Vector2D) (Vector2D, Vector2D) {
	newSelf := self.Scale(RetainFactor).Add(other.Scale(TransferFactor))
	newOther := other.Scale(RetainFactor).Add(self.Scale(TransferFactor))
	return newSelf, newOther
}

// OverlapAxes reports along which axes two overlapping rectangles should be
// separated. The axis with the shallower penetration is chosen; on a tie
// both are. Disjoint rectangles report neither axis.
func OverlapAxes(a, b Rect) (x, y bool) {
	dx, dy := a.Penetration(b)
	if dx <= 0 || dy <= 0 {
		return false, false
	}
	return dx <= dy, dy <= dx
}
