package sprite

import "image/color"

// Kind is the type of draw call a render surface accepts
type Kind int

const (
	KindSolid Kind = iota
	KindSprite
	KindLabel
	KindLine
	KindBorder

	kindCount
)

// Kinds lists every primitive kind a surface has an output list for
var Kinds = [kindCount]Kind{KindSolid, KindSprite, KindLabel, KindLine, KindBorder}

func (kind Kind) String() string {
	switch kind {
	case KindSolid:
		return "solids"
	case KindSprite:
		return "sprites"
	case KindLabel:
		return "labels"
	case KindLine:
		return "lines"
	case KindBorder:
		return "borders"
	}
	return "unknown"
}

// Primitive is a single draw call.
//
// X, Y, W and H are required for every kind, the rest only matter to the
// kinds that use them.
type Primitive struct {
	X, Y, W, H float64
	// X2, Y2 is the end point of a line
	X2, Y2 float64
	// Angle is the rotation of an image in degrees, counter-clockwise
	Angle float64
	// Path is the asset path of an image
	Path string
	// Text is the content of a label
	Text  string
	Color color.RGBA
}

// Output is an append-only list of draw calls of one kind
type Output interface {
	Append(p Primitive)
}

// Surface is a named render target with one output list per kind.
//
// Output returns nil for kinds the surface does not know about.
type Surface interface {
	Name() string
	Output(kind Kind) Output
}

// Surfaces finds (or creates) render surfaces by name
type Surfaces interface {
	Surface(name string) Surface
}

// PrimitiveSet records the geometry of every draw call of one kind made
// against a surface, while passing the call itself through untouched.
type PrimitiveSet struct {
	kind       Kind
	surface    Surface
	boundaries []Boundary
}

func NewPrimitiveSet(surface Surface, kind Kind) *PrimitiveSet {
	return &PrimitiveSet{
		kind:    kind,
		surface: surface,
	}
}

func (set *PrimitiveSet) Kind() Kind {
	return set.kind
}

// Submit forwards the draw call to the surface and records its boundary.
// Images are rotated about their own centre when they have an angle.
func (set *PrimitiveSet) Submit(p Primitive) {
	if out := set.surface.Output(set.kind); out != nil {
		out.Append(p)
	}
	if set.kind < 0 || set.kind >= kindCount {
		return
	}
	b := Rect(p.X, p.Y, p.W, p.H)
	if set.kind == KindSprite {
		// anchor Y is offset by half the width, not the height
		b = Rotate(b, p.Angle, p.X+p.W/2, p.Y+p.W/2)
	}
	set.boundaries = append(set.boundaries, b)
}

// Boundaries returns a copy of every recorded boundary moved by ox, oy
func (set *PrimitiveSet) Boundaries(ox, oy float64) []Boundary {
	if len(set.boundaries) == 0 {
		return nil
	}
	r := make([]Boundary, len(set.boundaries))
	for i, b := range set.boundaries {
		r[i] = b.Translate(ox, oy)
	}
	return r
}

func (set *PrimitiveSet) Len() int {
	return len(set.boundaries)
}

// Reset forgets every recorded boundary. Whatever was already forwarded to
// the surface stays there.
func (set *PrimitiveSet) Reset() {
	set.boundaries = set.boundaries[:0]
}
