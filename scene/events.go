package scene

import (
	"fmt"

	"github.com/meghashyamc/debugview/geometry"
)

type EventKind int

const (
	EventHandleMoved EventKind = iota
	EventSceneReset
	EventSceneLoaded
	EventSceneSaved
)

type Event struct {
	Kind     EventKind
	Handle   Handle
	Position geometry.Vector
}

func (e Event) String() string {
	switch e.Kind {
	case EventHandleMoved:
		return fmt.Sprintf("%s moved to (%.2f, %.2f)", e.Handle, e.Position.X, e.Position.Y)
	case EventSceneReset:
		return "scene reset"
	case EventSceneLoaded:
		return "scene loaded"
	case EventSceneSaved:
		return "scene saved"
	default:
		return "unknown event"
	}
}

// Subscribe registers fn to receive every event published by the scene.
// The returned function removes the subscription.
func (s *Scene) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		delete(s.subscribers, id)
	}
}

// NotifySaved lets the owner of a Store tell subscribers the scene was persisted.
func (s *Scene) NotifySaved() {
	s.publish(Event{Kind: EventSceneSaved})
}

func (s *Scene) publish(e Event) {
	for _, fn := range s.subscribers {
		fn(e)
	}
}
