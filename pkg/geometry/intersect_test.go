package geometry

import (
	"math"
	"testing"
)

func TestIntersectLinesCrossing(t *testing.T) {
	// A horizontal line through y=2 and a vertical line through x=3.
	a := NewSegment2D(-10, 2, 10, 2)
	b := NewSegment2D(3, -10, 3, 10)

	p, ok := IntersectLines(a, b)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if math.Abs(p.X-3) > 1e-12 || math.Abs(p.Y-2) > 1e-12 {
		t.Errorf("intersection at (%g, %g), want (3, 2)", p.X, p.Y)
	}
}

func TestIntersectLinesDiagonal(t *testing.T) {
	// y = x and y = -x + 4 cross at (2, 2).
	a := NewSegment2D(0, 0, 5, 5)
	b := NewSegment2D(0, 4, 4, 0)

	p, ok := IntersectLines(a, b)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if math.Abs(p.X-2) > 1e-12 || math.Abs(p.Y-2) > 1e-12 {
		t.Errorf("intersection at (%g, %g), want (2, 2)", p.X, p.Y)
	}
}

func TestIntersectLinesParallel(t *testing.T) {
	a := NewSegment2D(0, 0, 10, 5)
	b := NewSegment2D(0, 1, 10, 6)

	if _, ok := IntersectLines(a, b); ok {
		t.Error("parallel lines must not intersect")
	}
}

func TestIntersectLinesCoincident(t *testing.T) {
	a := NewSegment2D(0, 0, 10, 5)
	if _, ok := IntersectLines(a, a); ok {
		t.Error("a line is parallel to itself")
	}
}

func TestIntersectSegmentsWithinBothSpans(t *testing.T) {
	a := NewSegment2D(-5, 0, 5, 0)
	b := NewSegment2D(1, -5, 1, 5)

	p, ok := IntersectSegments(a, b)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if math.Abs(p.X-1) > 1e-12 || math.Abs(p.Y) > 1e-12 {
		t.Errorf("intersection at (%g, %g), want (1, 0)", p.X, p.Y)
	}
}

func TestIntersectSegmentsOutsideSpan(t *testing.T) {
	// The supporting lines cross at (8, 0), beyond the end of segment a.
	a := NewSegment2D(-5, 0, 5, 0)
	b := NewSegment2D(8, -5, 8, 5)

	if _, ok := IntersectSegments(a, b); ok {
		t.Error("crossing outside the segment span must be rejected")
	}
}

func TestIntersectSegmentsEndpointTouch(t *testing.T) {
	// Segments meeting exactly at a shared endpoint still intersect.
	a := NewSegment2D(0, 0, 4, 0)
	b := NewSegment2D(4, 0, 4, 7)

	p, ok := IntersectSegments(a, b)
	if !ok {
		t.Fatal("endpoint contact should count as an intersection")
	}
	if math.Abs(p.X-4) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("intersection at (%g, %g), want (4, 0)", p.X, p.Y)
	}
}

func TestPoint2DDistance(t *testing.T) {
	d := Point2D{X: 1, Y: 2}.Distance(Point2D{X: 4, Y: 6})
	if math.Abs(d-5) > 1e-12 {
		t.Errorf("distance = %g, want 5", d)
	}
}
