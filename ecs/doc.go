// Package ecs provides ECS adapters for cardtable.
//
// [NewDonburiSink] bridges table events (draws, drops, stacking, hand
// docking) into a [Donburi] world as typed events. Subscribe to
// [TableEventType] in your ECS systems to receive them.
//
// [Mirror] keeps one entity per table object with an [Object] component, so
// systems can query cards, decks, and binds alongside the rest of a game.
//
// [Bridge] combines both: it publishes each event, resyncs the mirror, and
// delivers queued events. The cardtable command enables it with --ecs.
//
// Usage:
//
//	bridge := ecs.NewBridge(world, table.Registry())
//	table.SetEventSink(bridge)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
