package geometry

import (
	"math"
)

// DistanceFromPointToLine returns the perpendicular distance from origin to
// the infinite line through p1 and p2.
//
// A vertical line is handled before the slope is taken, so coincident p1 and
// p2 produce |p1.X - origin.X| rather than NaN.
func DistanceFromPointToLine(origin, p1, p2 Vector) float64 {
	if p1.X == p2.X {
		return math.Abs(p1.X - origin.X)
	}

	k, b := slopeIntercept(p1, p2)
	return math.Abs(k*origin.X-origin.Y+b) / math.Sqrt(k*k+1)
}

// DistanceFromPointToLine3D returns the perpendicular distance from origin to
// the infinite line through p1 and p2.
//
//	    origin
//	     /\
//	   b/  \a
//	   /    \
//	 p1------p2
//	     c
//
// The angle at p1 comes from the law of cosines and the distance is
// |b * sin(A)|. When p1 == p2 the result is NaN; use IsDegenerateLine3D to
// check first.
func DistanceFromPointToLine3D(origin, p1, p2 Vector3) float64 {
	a := origin.DistanceTo(p2)
	b := origin.DistanceTo(p1)
	c := p1.DistanceTo(p2)

	if b == 0 && c != 0 {
		// origin sits on p1, the triangle has no angle at p1
		return 0
	}

	cosA := (b*b + c*c - a*a) / (2 * b * c)

	// Clamp to [-1, 1] to handle floating point precision issues
	if cosA > 1 {
		cosA = 1
	} else if cosA < -1 {
		cosA = -1
	}

	return math.Abs(b * math.Sin(math.Acos(cosA)))
}

// IsDegenerateLine reports whether p1 and p2 coincide and so do not define a line.
func IsDegenerateLine(p1, p2 Vector) bool {
	return p1 == p2
}

func IsDegenerateLine3D(p1, p2 Vector3) bool {
	return p1 == p2
}

// slopeIntercept returns k and b of y = kx + b for a non-vertical line
func slopeIntercept(p0, p1 Vector) (k, b float64) {
	k = (p0.Y - p1.Y) / (p0.X - p1.X)
	b = p0.Y - k*p0.X
	return k, b
}
