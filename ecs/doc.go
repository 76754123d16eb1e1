// Package ecs provides ECS adapters for motion's tween lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges tween events
// (started, completed, cancelled, timed out) into a [Donburi] world as typed
// events. Subscribe to [TweenEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
