// Package ecs provides ECS adapters for evergreen's scene lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges evergreen scene
// events (activate, rebuild, resize) into a [Donburi] world as typed events.
// Subscribe to [SceneEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
