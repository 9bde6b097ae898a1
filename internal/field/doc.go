// Package field implements the particle field behind the plexus animation.
//
// A [Field] owns a fixed number of [Particle] values that drift with constant
// velocity, reflect off the surface bounds and are pushed away from the
// pointer:
//
//	f := field.New(field.DefaultConfig(), rand.New(rand.NewSource(1)))
//	f.Reseed(800, 600)
//	f.SetPointer(400, 300)
//	f.Step()
//	links := f.Connections(nil)
//
// # Connections
//
// [Field.Connections] reports every pair closer than the connection radius.
// Small fields use the plain quadratic scan. Above [Config.GridThreshold]
// particles are bucketed into a uniform grid whose cell edge equals the
// connection radius, so only the 3x3 neighbourhood of each cell is scanned.
// Both paths return the same set of links.
package field
