// sprite renders everything through named render surfaces so that draw
// order can be controlled with z, and tracks the geometry of what was drawn
// so sprites can be tested against each other for collisions.
package sprite

import (
	"fmt"
	"image/color"
)

const (
	// boundsMarkerSize is the size of the box drawn on the first vertex of a
	// boundary by RenderBounds
	boundsMarkerSize = 4
)

var boundsColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// collisionKinds are the primitive kinds that take up space for collisions,
// labels and lines are ignored.
var collisionKinds = [...]Kind{KindSolid, KindBorder, KindSprite}

// Attributes is the placement of a sprite on screen
type Attributes struct {
	X, Y float64
	// Z orders sprites within a frame, lowest first
	Z    int
	W, H float64
	// Source is the region of the render surface that gets drawn
	SourceX, SourceY float64
	SourceW, SourceH float64
	// Angle is the rotation of the whole sprite in degrees, counter-clockwise
	Angle float64
	// Alpha is the opacity of the sprite, 255 is fully opaque
	Alpha uint8
}

// Collider is anything that can report its collision boundaries
type Collider interface {
	Boundaries() []Boundary
}

// Sprite owns one primitive set per kind against a single named surface
type Sprite struct {
	Attributes

	name string
	sets [kindCount]*PrimitiveSet
}

var _ Collider = new(Sprite)

// New creates a sprite drawing into the surface called name. The source
// region and size both default to w*h.
func New(surfaces Surfaces, name string, w, h float64) *Sprite {
	self := &Sprite{
		name: name,
		Attributes: Attributes{
			W:       w,
			H:       h,
			SourceW: w,
			SourceH: h,
			Alpha:   255,
		},
	}
	surface := surfaces.Surface(name)
	for _, kind := range Kinds {
		self.sets[kind] = NewPrimitiveSet(surface, kind)
	}
	return self
}

// Name is the name of the surface the sprite draws into
func (self *Sprite) Name() string {
	return self.name
}

func (self *Sprite) Solids() *PrimitiveSet  { return self.sets[KindSolid] }
func (self *Sprite) Sprites() *PrimitiveSet { return self.sets[KindSprite] }
func (self *Sprite) Labels() *PrimitiveSet  { return self.sets[KindLabel] }
func (self *Sprite) Lines() *PrimitiveSet   { return self.sets[KindLine] }
func (self *Sprite) Borders() *PrimitiveSet { return self.sets[KindBorder] }

// Boundaries returns the boundaries of every solid, border and image drawn
// on the sprite, in screen space. Overlapping boxes are kept as they are.
func (self *Sprite) Boundaries() []Boundary {
	var boundaries []Boundary
	for _, kind := range collisionKinds {
		boundaries = append(boundaries, self.sets[kind].Boundaries(self.X, self.Y)...)
	}
	if self.Angle != 0 {
		cx, cy := self.X+self.W/2, self.Y+self.H/2
		for i, b := range boundaries {
			boundaries[i] = Rotate(b, self.Angle, cx, cy)
		}
	}
	return boundaries
}

// Collides reports whether any of our boundaries overlap with other's.
//
// Anything that isn't a Collider never collides. Only pairs of axis-aligned
// boxes are tested, a pair involving a rotated box is skipped.
func (self *Sprite) Collides(other interface{}) bool {
	if s, ok := other.(*Sprite); ok && s == nil {
		return false
	}
	target, ok := other.(Collider)
	if !ok {
		return false
	}
	theirs := target.Boundaries()
	if len(theirs) == 0 {
		return false
	}
	for _, ours := range self.Boundaries() {
		if !ours.AxisAligned() {
			continue
		}
		for _, their := range theirs {
			if !their.AxisAligned() {
				continue
			}
			if ours.Overlaps(their) {
				return true
			}
		}
	}
	return false
}

// RenderBounds outlines every boundary onto a debug surface, with a small
// marker on the first vertex.
func (self *Sprite) RenderBounds(debug Surface) {
	if debug == nil {
		return
	}
	solids, lines := debug.Output(KindSolid), debug.Output(KindLine)
	if solids == nil || lines == nil {
		return
	}
	for _, b := range self.Boundaries() {
		solids.Append(Primitive{
			X:     b[0].X,
			Y:     b[0].Y,
			W:     boundsMarkerSize,
			H:     boundsMarkerSize,
			Color: boundsColor,
		})
		for i, p := range b {
			next := b[(i+1)%len(b)]
			lines.Append(Primitive{
				X:     p.X,
				Y:     p.Y,
				X2:    next.X,
				Y2:    next.Y,
				Color: boundsColor,
			})
		}
	}
}

// Reset forgets the recorded boundaries of every primitive set
func (self *Sprite) Reset() {
	for _, set := range self.sets {
		set.Reset()
	}
}

func (self *Sprite) String() string {
	return fmt.Sprintf(
		"{name: %s, x: %v, y: %v, z: %d, w: %v, h: %v, source_x: %v, source_y: %v, source_w: %v, source_h: %v, angle: %v, a: %d}",
		self.name, self.X, self.Y, self.Z, self.W, self.H,
		self.SourceX, self.SourceY, self.SourceW, self.SourceH,
		self.Angle, self.Alpha,
	)
}
