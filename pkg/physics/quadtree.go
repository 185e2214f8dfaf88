package physics

// QuadTree is a point-region quad tree used as a broad phase: objects are
// stored at a single point and found by rectangular queries.
type QuadTree struct {
	Boundary Rect
	Capacity int
	Points   []Vector2D
	Objects  []any
	Divided  bool

	children [4]*QuadTree
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree(boundary Rect, capacity int) *QuadTree {
	if capacity < 1 {
		capacity = 1
	}
	return &QuadTree{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector2D, 0, capacity),
		Objects:  make([]any, 0, capacity),
	}
}

// Insert stores object at point. It returns false when point falls outside
// the tree's boundary.
func (qt *QuadTree) Insert(point Vector2D, object any) bool {
	if !qt.Boundary.Contains(point) {
		return false
	}

	if !qt.Divided && len(qt.Points) < qt.Capacity {
		qt.Points = append(qt.Points, point)
		qt.Objects = append(qt.Objects, object)
		return true
	}

	if !qt.Divided {
		qt.subdivide()
	}

	for _, child := range qt.children {
		if child.Insert(point, object) {
			return true
		}
	}
	return false
}

// subdivide splits the node into four quadrants. Points already held stay in
// this node.
func (qt *QuadTree) subdivide() {
	c := qt.Boundary.Center
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	offsets := [4]Vector2D{
		{X: -w / 2, Y: -h / 2},
		{X: w / 2, Y: -h / 2},
		{X: -w / 2, Y: h / 2},
		{X: w / 2, Y: h / 2},
	}
	for i, off := range offsets {
		qt.children[i] = NewQuadTree(RectAt(c.Add(off), w, h), qt.Capacity)
	}
	qt.Divided = true
}

// Query returns every object whose point lies inside area.
func (qt *QuadTree) Query(area Rect) []any {
	return qt.query(area, nil)
}

func (qt *QuadTree) query(area Rect, found []any) []any {
	if !qt.Boundary.Intersects(area) {
		return found
	}

	for i, point := range qt.Points {
		if area.Contains(point) {
			found = append(found, qt.Objects[i])
		}
	}

	if !qt.Divided {
		return found
	}
	for _, child := range qt.children {
		found = child.query(area, found)
	}
	return found
}

// Clear drops every stored object and collapses the tree.
func (qt *QuadTree) Clear() {
	qt.Points = qt.Points[:0]
	qt.Objects = qt.Objects[:0]
	qt.Divided = false
	qt.children = [4]*QuadTree{}
}

// Len returns the number of objects stored in the tree.
func (qt *QuadTree) Len() int {
	n := len(qt.Points)
	if qt.Divided {
		for _, child := range qt.children {
			n += child.Len()
		}
	}
	return n
}
