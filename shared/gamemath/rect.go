package gamemath

// Rect is an axis-aligned rectangle in world space. W and H are never negative.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a Rect at (x, y) of size w×h.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inflate returns r grown by m on every side.
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	left := min(r.Left(), o.Left())
	top := min(r.Top(), o.Top())
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Contains reports whether o lies entirely inside r, edges included.
func (r Rect) Contains(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether a and b overlap on both axes. Intervals are open:
// rectangles that only share an edge do not intersect, and a zero-width or
// zero-height rectangle never intersects anything.
func Intersects(a, b Rect) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.Left() < b.Right() && b.Left() < a.Right() &&
		a.Top() < b.Bottom() && b.Top() < a.Bottom()
}
