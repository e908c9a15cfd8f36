package geometry

// ProjectPointOntoLine returns the foot of the perpendicular dropped from
// point onto the infinite line through lineStart and lineEnd. The result can
// lie outside the segment between the two.
func ProjectPointOntoLine(lineStart, lineEnd, point Vector) Vector {
	if lineStart.X == lineEnd.X {
		return Vector{X: lineStart.X, Y: point.Y}
	}

	k, b := slopeIntercept(lineStart, lineEnd)
	x := (k*(point.Y-b) + point.X) / (k*k + 1)
	return Vector{X: x, Y: k*x + b}
}
