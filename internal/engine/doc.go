// Package engine drives a [field.Field] on a drawing surface.
//
// An [Engine] is mounted into a [Host], which delivers animation frames,
// viewport resizes and pointer moves, and draws into the [Surface] obtained
// from a [Canvas]. The lifecycle is a three-state machine:
//
//	Stopped --Mount--> Running --Unmount--> Stopped (terminal)
//
// A resize keeps the engine Running and reseeds the field in place. Once
// unmounted an engine never runs again; mount a new one instead.
//
// # Frames
//
// Each frame clears the surface, advances the field one tick, fills every
// particle and strokes every connection, then requests the next frame. The
// frame callback checks the running flag before doing anything, so a frame
// the host delivers after Unmount is a no-op and schedules nothing.
//
// The engine is not safe for concurrent use. Hosts deliver frames and events
// serially, the way a browser event loop or a Bubble Tea program does.
package engine
