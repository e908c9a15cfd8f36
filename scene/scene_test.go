package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/meghashyamc/debugview/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene() *Scene {
	return New(geometry.Vector{X: 500, Y: 500}, geometry.Vector{X: 900, Y: 500}, geometry.Vector{X: 800, Y: 600})
}

func TestHandleAt(t *testing.T) {
	s := newTestScene()

	tests := []struct {
		name   string
		pos    geometry.Vector
		radius float64
		want   Handle
	}{
		{"on point", geometry.Vector{X: 800, Y: 600}, 10, HandlePoint},
		{"near line start", geometry.Vector{X: 505, Y: 503}, 10, HandleLineStart},
		{"near line end", geometry.Vector{X: 895, Y: 500}, 10, HandleLineEnd},
		{"outside radius", geometry.Vector{X: 700, Y: 700}, 10, HandleNone},
		{"on radius edge", geometry.Vector{X: 510, Y: 500}, 10, HandleLineStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.HandleAt(tt.pos, tt.radius))
		})
	}
}

func TestHandleAtPrefersPointOnTie(t *testing.T) {
	p := geometry.Vector{X: 1, Y: 1}
	s := New(p, p, p)
	assert.Equal(t, HandlePoint, s.HandleAt(p, 5))

	s.Move(HandlePoint, geometry.Vector{X: 100, Y: 100})
	assert.Equal(t, HandleLineStart, s.HandleAt(p, 5))
}

func TestMoveNudgeAndEvents(t *testing.T) {
	s := newTestScene()

	var events []Event
	unsubscribe := s.Subscribe(func(e Event) { events = append(events, e) })

	s.Move(HandleLineEnd, geometry.Vector{X: 900, Y: 900})
	s.Nudge(HandlePoint, 0.5, -1)
	s.Move(HandleNone, geometry.Vector{X: 1, Y: 1})
	s.Nudge(HandleNone, 1, 1)

	assert.Equal(t, geometry.Vector{X: 900, Y: 900}, s.LineEnd)
	assert.Equal(t, geometry.Vector{X: 800.5, Y: 599}, s.Point)
	require.Len(t, events, 2)
	assert.Equal(t, EventHandleMoved, events[0].Kind)
	assert.Equal(t, HandleLineEnd, events[0].Handle)
	assert.Equal(t, "point moved to (800.50, 599.00)", events[1].String())

	unsubscribe()
	s.Reset()
	assert.Len(t, events, 2)
	assert.Equal(t, geometry.Vector{X: 900, Y: 500}, s.LineEnd)
}

func TestResetAndRestorePublish(t *testing.T) {
	s := newTestScene()

	var kinds []EventKind
	s.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	s.Move(HandlePoint, geometry.Vector{})
	s.Reset()
	s.Restore(Snapshot{LineStart: geometry.Vector{X: 1}, LineEnd: geometry.Vector{X: 2}, Point: geometry.Vector{Y: 3}})
	s.NotifySaved()

	assert.Equal(t, []EventKind{EventHandleMoved, EventSceneReset, EventSceneLoaded, EventSceneSaved}, kinds)
	assert.Equal(t, geometry.Vector{X: 2}, s.LineEnd)
}

func TestHandleNextCycles(t *testing.T) {
	assert.Equal(t, HandlePoint, HandleNone.Next())
	assert.Equal(t, HandleLineStart, HandlePoint.Next())
	assert.Equal(t, HandleLineEnd, HandleLineStart.Next())
	assert.Equal(t, HandlePoint, HandleLineEnd.Next())
}

func TestMeasure(t *testing.T) {
	s := newTestScene()
	m := s.Measure()

	assert.Equal(t, geometry.Vector{X: 800, Y: 500}, m.Projection)
	assert.InDelta(t, 400, m.SegmentLength, 1e-9)
	assert.InDelta(t, 100, m.LineDistance, 1e-9)
	assert.InDelta(t, 100, m.LineDistance3D, 1e-6)
	assert.InDelta(t, 100, m.ProjectionDistance, 1e-9)
	assert.False(t, m.Degenerate)

	projection, distance := m.Labels()
	assert.Equal(t, "Projection: (800.00, 500.00)\nSegment length: 400.00", projection)
	assert.Contains(t, distance, "Point to line distance: 100.00")
	assert.Contains(t, distance, "Point to projection distance: 100.00")
}

func TestMeasureDegenerateLine(t *testing.T) {
	p := geometry.Vector{X: 3, Y: 4}
	m := Measure(p, p, geometry.Vector{X: 10, Y: -2})

	assert.True(t, m.Degenerate)
	assert.True(t, math.IsNaN(m.LineDistance3D))
	assert.Equal(t, geometry.Vector{X: 3, Y: -2}, m.Projection)

	_, distance := m.Labels()
	assert.Equal(t, "Degenerate line: endpoints coincide", distance)
}

func TestStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	st := NewStore(dir, "scene.yaml")

	_, ok, err := st.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	s := newTestScene()
	s.Move(HandlePoint, geometry.Vector{X: -1.25, Y: 7})
	require.NoError(t, st.Save(s.Snapshot()))

	snap, ok, err := st.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s.Snapshot(), snap)
}

func TestStoreRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte("line_start: [oops"), 0644))

	_, ok, err := NewStore(dir, "scene.yaml").Load()
	assert.Error(t, err)
	assert.False(t, ok)
}
