package vehicle

// Vehicle is anything on the road that can be hit
type Vehicle interface {
	Bounds() Rect
}

// Rect is an axis-aligned box in screen space (y grows downward)
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether the two boxes share a region of positive area.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	left := max(r.X, o.X)
	right := min(r.X+r.W, o.X+o.W)
	top := max(r.Y, o.Y)
	bottom := min(r.Y+r.H, o.Y+o.H)
	return left < right && top < bottom
}

// Center returns the midpoint of the box
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Collides reports whether two vehicles overlap
func Collides(a, b Vehicle) bool {
	return a.Bounds().Intersects(b.Bounds())
}
