package geometry

import "math"

const (
	// parallelEpsilon bounds the determinant below which two lines are
	// treated as parallel. Exact floating-point equality is never used.
	parallelEpsilon = 1e-9

	// segmentEpsilon is the tolerance applied at segment endpoints when
	// deciding whether a crossing point lies within a segment.
	segmentEpsilon = 1e-9
)

// IntersectLines computes the crossing point of the two infinite lines
// supporting the given segments. It solves the 2x2 determinant form of the
// line-line intersection equation. The second return value is false when
// the lines are parallel within tolerance.
func IntersectLines(a, b Segment2D) (Point2D, bool) {
	denom := (a.Start.X-a.End.X)*(b.Start.Y-b.End.Y) -
		(a.Start.Y-a.End.Y)*(b.Start.X-b.End.X)
	if math.Abs(denom) < parallelEpsilon {
		return Point2D{}, false
	}

	ca := (a.Start.X*a.End.Y - a.Start.Y*a.End.X) / denom
	cb := (b.Start.X*b.End.Y - b.Start.Y*b.End.X) / denom

	return Point2D{
		X: (b.Start.X-b.End.X)*ca - (a.Start.X-a.End.X)*cb,
		Y: (b.Start.Y-b.End.Y)*ca - (a.Start.Y-a.End.Y)*cb,
	}, true
}

// IntersectSegments computes the crossing point of two finite segments.
// It returns false when the supporting lines are parallel, and also when
// they cross outside either segment's bounding interval (inclusive, with a
// small tolerance at the endpoints).
func IntersectSegments(a, b Segment2D) (Point2D, bool) {
	p, ok := IntersectLines(a, b)
	if !ok {
		return Point2D{}, false
	}
	if !pointWithinSegment(p, a) || !pointWithinSegment(p, b) {
		return p, false
	}
	return p, true
}

func pointWithinSegment(p Point2D, s Segment2D) bool {
	return p.X >= math.Min(s.Start.X, s.End.X)-segmentEpsilon &&
		p.X <= math.Max(s.Start.X, s.End.X)+segmentEpsilon &&
		p.Y >= math.Min(s.Start.Y, s.End.Y)-segmentEpsilon &&
		p.Y <= math.Max(s.Start.Y, s.End.Y)+segmentEpsilon
}
