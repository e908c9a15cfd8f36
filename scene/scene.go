// Package scene holds the editable state of the point-to-line view: two
// points defining a line and a query point. It has no rendering dependency;
// the view reads it every frame and mutates it in response to input.
package scene

import (
	"github.com/meghashyamc/debugview/geometry"
)

type Handle int

const (
	HandleNone Handle = iota
	HandleLineStart
	HandleLineEnd
	HandlePoint
)

func (h Handle) String() string {
	switch h {
	case HandleLineStart:
		return "line start"
	case HandleLineEnd:
		return "line end"
	case HandlePoint:
		return "point"
	default:
		return "none"
	}
}

// Next cycles through the editable handles, skipping HandleNone.
func (h Handle) Next() Handle {
	switch h {
	case HandlePoint:
		return HandleLineStart
	case HandleLineStart:
		return HandleLineEnd
	default:
		return HandlePoint
	}
}

// Snapshot is a copy of the scene positions.
type Snapshot struct {
	LineStart geometry.Vector
	LineEnd   geometry.Vector
	Point     geometry.Vector
}

type Scene struct {
	LineStart geometry.Vector
	LineEnd   geometry.Vector
	Point     geometry.Vector

	initial     Snapshot
	subscribers map[int]func(Event)
	nextID      int
}

func New(lineStart, lineEnd, point geometry.Vector) *Scene {
	s := &Scene{
		initial: Snapshot{
			LineStart: lineStart,
			LineEnd:   lineEnd,
			Point:     point,
		},
		subscribers: make(map[int]func(Event)),
	}
	s.apply(s.initial)
	return s
}

func (s *Scene) Snapshot() Snapshot {
	return Snapshot{LineStart: s.LineStart, LineEnd: s.LineEnd, Point: s.Point}
}

// Restore replaces all positions, e.g. with a snapshot read from a Store.
func (s *Scene) Restore(snap Snapshot) {
	s.apply(snap)
	s.publish(Event{Kind: EventSceneLoaded})
}

// Reset restores the positions the scene was created with.
func (s *Scene) Reset() {
	s.apply(s.initial)
	s.publish(Event{Kind: EventSceneReset})
}

func (s *Scene) Position(h Handle) (geometry.Vector, bool) {
	switch h {
	case HandleLineStart:
		return s.LineStart, true
	case HandleLineEnd:
		return s.LineEnd, true
	case HandlePoint:
		return s.Point, true
	default:
		return geometry.Vector{}, false
	}
}

// HandleAt returns the handle closest to pos within radius. On equal
// distance the query point wins over the line start, and the line start over
// the line end.
func (s *Scene) HandleAt(pos geometry.Vector, radius float64) Handle {
	best := HandleNone
	bestDistance := radius

	for _, h := range []Handle{HandlePoint, HandleLineStart, HandleLineEnd} {
		p, _ := s.Position(h)
		if d := p.DistanceTo(pos); d <= bestDistance && (best == HandleNone || d < bestDistance) {
			best = h
			bestDistance = d
		}
	}

	return best
}

// Move places the handle at pos. Moving HandleNone does nothing.
func (s *Scene) Move(h Handle, pos geometry.Vector) {
	switch h {
	case HandleLineStart:
		s.LineStart = pos
	case HandleLineEnd:
		s.LineEnd = pos
	case HandlePoint:
		s.Point = pos
	default:
		return
	}

	s.publish(Event{Kind: EventHandleMoved, Handle: h, Position: pos})
}

func (s *Scene) Nudge(h Handle, dx, dy float64) {
	p, ok := s.Position(h)
	if !ok {
		return
	}
	s.Move(h, p.Add(geometry.Vector{X: dx, Y: dy}))
}

func (s *Scene) Measure() Measurement {
	return Measure(s.LineStart, s.LineEnd, s.Point)
}

func (s *Scene) apply(snap Snapshot) {
	s.LineStart = snap.LineStart
	s.LineEnd = snap.LineEnd
	s.Point = snap.Point
}
