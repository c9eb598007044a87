package sprite

import "math"

// tieTolerance is how close two x values must be to count as the same
// column when picking the first point of a rotated boundary
const tieTolerance = 1e-9

type Point struct {
	X, Y float64
}

// Boundary is a quadrilateral approximating the screen footprint of a
// single draw call. It is only used for collision, never for drawing.
//
// Unrotated boundaries go bottom-left, bottom-right, top-right, top-left.
type Boundary [4]Point

// Rect returns the unrotated boundary of a w*h box at x, y
func Rect(x, y, w, h float64) Boundary {
	return Boundary{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// Translate returns a copy of the boundary moved by dx, dy
func (b Boundary) Translate(dx, dy float64) Boundary {
	for i := range b {
		b[i].X += dx
		b[i].Y += dy
	}
	return b
}

// AxisAligned reports whether the bottom edge is horizontal
func (b Boundary) AxisAligned() bool {
	return b[0].Y == b[1].Y
}

// Overlaps is a strict AABB test, boxes that only share an edge do not
// overlap. Both boundaries are assumed to be axis-aligned.
func (b Boundary) Overlaps(other Boundary) bool {
	return b[0].X < other[1].X &&
		b[1].X > other[0].X &&
		b[2].Y > other[0].Y &&
		b[0].Y < other[2].Y
}

// Rotate turns the boundary by degrees (counter-clockwise) about ax, ay.
//
// A zero angle returns the boundary untouched. Otherwise the points are
// reordered so the result starts at the left-most point (lowest first on
// ties), which keeps Overlaps valid for boxes rotated by quarter turns.
func Rotate(b Boundary, degrees, ax, ay float64) Boundary {
	if degrees == 0 {
		return b
	}
	sin, cos := sincos(degrees)
	var r Boundary
	for i, p := range b {
		dx, dy := p.X-ax, p.Y-ay
		r[i] = Point{
			X: cos*dx - sin*dy + ax,
			Y: sin*dx + cos*dy + ay,
		}
	}
	return r.canonical()
}

// canonical cycles the points left until the first is the smallest on (x, y)
func (b Boundary) canonical() Boundary {
	first := 0
	for i := 1; i < len(b); i++ {
		if b[i].before(b[first]) {
			first = i
		}
	}
	if first == 0 {
		return b
	}
	var r Boundary
	for i := range r {
		r[i] = b[(first+i)%len(b)]
	}
	return r
}

func (p Point) before(other Point) bool {
	if math.Abs(p.X-other.X) > tieTolerance {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// sincos is exact for quarter turns so rotated boxes keep truly
// horizontal edges
func sincos(degrees float64) (sin, cos float64) {
	switch math.Mod(degrees, 360) {
	case 0:
		return 0, 1
	case 90, -270:
		return 1, 0
	case 180, -180:
		return 0, -1
	case 270, -90:
		return -1, 0
	}
	return math.Sincos(degrees * math.Pi / 180)
}
