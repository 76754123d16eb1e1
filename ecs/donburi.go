package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for motion tween lifecycle events.
var TweenEventType = events.NewEventType[motion.TweenEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Events
// are published to TweenEventType and can be consumed with Subscribe and
// ProcessEvents. The scene emits from its frame goroutine, which should be
// the goroutine that runs the world's systems.
func NewDonburiStore(world donburi.World) motion.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitTweenEvent(event motion.TweenEvent) {
	TweenEventType.Publish(s.world, event)
}
