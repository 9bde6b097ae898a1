// Package surface provides drawing surfaces for the plexus engine.
//
//   - [Braille]: terminal canvas, 2x4 dots per cell, one colour per cell
//   - [Raster]: anti-aliased RGBA image, used for GIF and PNG output
//   - [SVG]: vector recorder for still exports
//
// All surfaces use the same logical pixel space, so the field constants
// (connection radius, interaction radius) mean the same on every host.
package surface
