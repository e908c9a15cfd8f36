package scene

import (
	"fmt"

	"github.com/meghashyamc/debugview/geometry"
)

type Measurement struct {
	Projection         geometry.Vector
	SegmentLength      float64
	LineDistance       float64
	LineDistance3D     float64
	ProjectionDistance float64
	Degenerate         bool
}

// Measure computes everything the view displays for one frame.
func Measure(lineStart, lineEnd, point geometry.Vector) Measurement {
	projection := geometry.ProjectPointOntoLine(lineStart, lineEnd, point)

	return Measurement{
		Projection:         projection,
		SegmentLength:      lineStart.DistanceTo(lineEnd),
		LineDistance:       geometry.DistanceFromPointToLine(point, lineStart, lineEnd),
		LineDistance3D:     geometry.DistanceFromPointToLine3D(point.To3D(), lineStart.To3D(), lineEnd.To3D()),
		ProjectionDistance: point.DistanceTo(projection),
		Degenerate:         geometry.IsDegenerateLine(lineStart, lineEnd),
	}
}

// Labels returns the text shown next to the projection and next to the
// perpendicular.
func (m Measurement) Labels() (projection, distance string) {
	projection = fmt.Sprintf("Projection: (%.2f, %.2f)\nSegment length: %.2f",
		m.Projection.X, m.Projection.Y, m.SegmentLength)

	if m.Degenerate {
		distance = "Degenerate line: endpoints coincide"
		return projection, distance
	}

	distance = fmt.Sprintf("Point to line distance: %.2f\nPoint to line distance (3D): %.2f\nPoint to projection distance: %.2f",
		m.LineDistance, m.LineDistance3D, m.ProjectionDistance)
	return projection, distance
}
