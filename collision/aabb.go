package collision

// AABB is an axis-aligned box with its origin at the top-left corner and Y
// growing downward.
type AABB struct {
	X, Y          float64
	Width, Height float64
}

type Vec struct {
	X, Y float64
}

func (a AABB) Right() float64  { return a.X + a.Width }
func (a AABB) Bottom() float64 { return a.Y + a.Height }

func (a AABB) CenterX() float64 { return a.X + a.Width/2 }
func (a AABB) CenterY() float64 { return a.Y + a.Height/2 }

func (a AABB) degenerate() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Intersects reports a strict overlap. Boxes sharing only an edge do not intersect.
func (a AABB) Intersects(b AABB) bool {
	if a.degenerate() || b.degenerate() {
		return false
	}
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

type Info struct {
	IsColliding bool
	OverlapX    float64
	OverlapY    float64
}

func Check(a, b AABB) Info {
	if !a.Intersects(b) {
		return Info{}
	}
	return Info{
		IsColliding: true,
		OverlapX:    min(a.Right(), b.Right()) - max(a.X, b.X),
		OverlapY:    min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y),
	}
}
