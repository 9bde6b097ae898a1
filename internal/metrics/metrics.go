// Package metrics observes a particle field frame by frame.
package metrics

import "github.com/san-kum/plexus/internal/field"

// Metric accumulates one scalar over observed frames.
type Metric interface {
	Name() string
	Observe(f *field.Field, links []field.Link)
	Value() float64
	Reset()
}

type KineticEnergy struct {
	name    string
	last    float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

// Observe records the mean of ½|v|² over the particles.
func (k *KineticEnergy) Observe(f *field.Field, _ []field.Link) {
	ps := f.Particles()
	if len(ps) == 0 {
		return
	}
	sum := 0.0
	for _, p := range ps {
		sum += 0.5 * (p.Vel.X*p.Vel.X + p.Vel.Y*p.Vel.Y)
	}
	k.last = sum / float64(len(ps))
	k.samples++
}

func (k *KineticEnergy) Value() float64 { return k.last }

func (k *KineticEnergy) Reset() {
	k.last = 0
	k.samples = 0
}

type Connectivity struct {
	name  string
	links int
	n     int
}

func NewConnectivity() *Connectivity {
	return &Connectivity{name: "connectivity"}
}

func (c *Connectivity) Name() string { return c.name }

func (c *Connectivity) Observe(f *field.Field, links []field.Link) {
	c.links = len(links)
	c.n = f.Len()
}

// Value is the mean number of links per particle in the last frame.
func (c *Connectivity) Value() float64 {
	if c.n == 0 {
		return 0
	}
	return 2 * float64(c.links) / float64(c.n)
}

// Links is the link count of the last frame.
func (c *Connectivity) Links() int { return c.links }

func (c *Connectivity) Reset() {
	c.links = 0
	c.n = 0
}

// Escapes counts particles sitting outside the surface after a tick. The
// pointer nudge can leave a particle one frame past a wall.
type Escapes struct {
	name  string
	last  int
	total int
}

func NewEscapes() *Escapes {
	return &Escapes{name: "escapes"}
}

func (e *Escapes) Name() string { return e.name }

func (e *Escapes) Observe(f *field.Field, _ []field.Link) {
	w, h := f.Size()
	e.last = 0
	for _, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X > w || p.Pos.Y < 0 || p.Pos.Y > h {
			e.last++
		}
	}
	e.total += e.last
}

func (e *Escapes) Value() float64 { return float64(e.last) }

// Total is the sum over every observed frame.
func (e *Escapes) Total() int { return e.total }

func (e *Escapes) Reset() {
	e.last = 0
	e.total = 0
}
