// Package viz hosts the plexus engine in the terminal.
//
// The engine paints into a [surface.Braille] canvas; each terminal cell holds
// a 2x4 block of braille dots and covers 8x16 logical pixels. Bubble Tea
// ticks drive the frame callbacks and mouse motion is converted to logical
// pixels before it reaches the engine.
//
// # Key Bindings
//
//	Space - Pause/Resume the field
//	R     - Reseed particles
//	H     - Toggle the HUD
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	E     - Export the current frame as SVG
//	?     - Show help overlay
//	Q/Esc - Quit
//
// # Recording
//
// G starts and stops a GIF recording; E writes the current frame as SVG.
// Both files are written to the current directory.
package viz
