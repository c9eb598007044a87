package sprite

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-6

func assertBoundaryInDelta(t *testing.T, expected, actual Boundary) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, tolerance, "x%d", i+1)
		assert.InDelta(t, expected[i].Y, actual[i].Y, tolerance, "y%d", i+1)
	}
}

func TestRectOrder(t *testing.T) {
	b := Rect(5, 5, 20, 10)
	assert.Equal(t, Boundary{{5, 5}, {25, 5}, {25, 15}, {5, 15}}, b)
	assert.True(t, b.AxisAligned())
}

func TestRotateZeroIsIdentity(t *testing.T) {
	boundaries := []Boundary{
		Rect(0, 0, 1, 1),
		Rect(-40, 12.5, 3, 90),
		// deliberately not in canonical order, zero must not reorder
		{{10, 10}, {10, 0}, {0, 0}, {0, 10}},
	}
	for _, b := range boundaries {
		assert.Equal(t, b, Rotate(b, 0, 123, -7))
	}
}

func TestRotateRoundTrip(t *testing.T) {
	square := Rect(0, 0, 1, 1)
	anchors := []Point{{0, 0}, {0.5, 0.5}, {-3, 7}, {100, 250}}
	for angle := -360.0; angle <= 360; angle += 15 {
		for _, anchor := range anchors {
			t.Run(fmt.Sprintf("angle=%v,anchor=%v", angle, anchor), func(t *testing.T) {
				turned := Rotate(square, angle, anchor.X, anchor.Y)
				back := Rotate(turned, -angle, anchor.X, anchor.Y)
				assertBoundaryInDelta(t, square, back)
			})
		}
	}
}

func TestRotateCanonicalOrder(t *testing.T) {
	b := Rect(10, 20, 30, 5)
	for angle := 1.0; angle < 360; angle += 7 {
		r := Rotate(b, angle, 17, 3)
		first := r[0]
		for i := 1; i < len(r); i++ {
			p := r[i]
			assert.LessOrEqual(t, first.X, p.X+tieTolerance, "angle %v: point %d %v is left of point 1 %v", angle, i+1, p, first)
			if math.Abs(first.X-p.X) <= tieTolerance {
				assert.Less(t, first.Y, p.Y, "angle %v: point %d %v ties point 1 %v but is lower", angle, i+1, p, first)
			}
		}
	}
}

func TestRotateQuarterTurnStaysAxisAligned(t *testing.T) {
	for _, angle := range []float64{90, 180, 270, -90} {
		r := Rotate(Rect(0, 0, 13, 37), angle, 6.5, 6.5)
		assert.True(t, r.AxisAligned(), "angle %v gave %v", angle, r)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	// 10x2 box turned a quarter about the origin ends up standing up
	// to the left of the y axis
	r := Rotate(Rect(0, 0, 10, 2), 90, 0, 0)
	assert.Equal(t, Boundary{{-2, 0}, {0, 0}, {0, 10}, {-2, 10}}, r)
}

type overlapTestCase struct {
	A, B   Boundary
	Output bool
}

var overlapGoldenTests = []overlapTestCase{
	{A: Rect(0, 0, 10, 10), B: Rect(5, 5, 10, 10), Output: true},
	{A: Rect(0, 0, 10, 10), B: Rect(20, 0, 10, 10), Output: false},
	// touching edges are not an overlap
	{A: Rect(0, 0, 10, 10), B: Rect(10, 0, 10, 10), Output: false},
	{A: Rect(0, 0, 10, 10), B: Rect(0, 10, 10, 10), Output: false},
	// containment
	{A: Rect(0, 0, 10, 10), B: Rect(2, 2, 2, 2), Output: true},
	{A: Rect(0, 0, 10, 10), B: Rect(0, -5, 10, 4), Output: false},
}

func TestOverlaps(t *testing.T) {
	for _, test := range overlapGoldenTests {
		if res := test.A.Overlaps(test.B); res != test.Output {
			t.Errorf("failed on input (%v, %v), returned %v but expected %v", test.A, test.B, res, test.Output)
		}
		if res := test.B.Overlaps(test.A); res != test.Output {
			t.Errorf("failed on swapped input (%v, %v), returned %v but expected %v", test.B, test.A, res, test.Output)
		}
	}
}
