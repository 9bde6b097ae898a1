package field

import "math/rand"

// Field is a fixed-size collection of particles advanced one tick at a time.
// It is not safe for concurrent use; the host serialises all calls.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	particles []Particle
	pointer   Vec2
	w, h      float64
	grid      grid
}

func New(cfg Config, rng *rand.Rand) *Field {
	return &Field{
		cfg:       cfg,
		rng:       rng,
		particles: make([]Particle, 0, cfg.Count),
		pointer:   OffscreenPointer,
	}
}

func (f *Field) Config() Config { return f.cfg }

// Reseed discards every particle and creates cfg.Count new ones inside
// [0,w)x[0,h). It is called on mount and on every resize.
func (f *Field) Reseed(w, h float64) {
	f.w, f.h = w, h
	f.particles = f.particles[:0]
	for i := 0; i < f.cfg.Count; i++ {
		f.particles = append(f.particles, Particle{
			Pos: Vec2{X: f.rng.Float64() * w, Y: f.rng.Float64() * h},
			Vel: Vec2{
				X: (f.rng.Float64()*2 - 1) * f.cfg.MaxSpeed,
				Y: (f.rng.Float64()*2 - 1) * f.cfg.MaxSpeed,
			},
			Radius: f.cfg.MinRadius + f.rng.Float64()*(f.cfg.MaxRadius-f.cfg.MinRadius),
		})
	}
}

// Step advances every particle by one tick: Euler integration, boundary
// reflection, then the pointer nudge. The nudge is applied after the bounds
// check, so a particle pushed over a wall stays outside until the next tick.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.advance(f.w, f.h)
		p.Pos = p.Pos.Add(f.Repulsion(p.Pos))
	}
}

// Repulsion returns the displacement the pointer applies to a particle at
// pos this tick: RepulsionFactor times the pointer-to-particle vector when
// closer than InteractionRadius, zero otherwise.
func (f *Field) Repulsion(pos Vec2) Vec2 {
	d := pos.Sub(f.pointer)
	if d.Len() >= f.cfg.InteractionRadius {
		return Vec2{}
	}
	return d.Scale(f.cfg.RepulsionFactor)
}

// SetPointer records the latest pointer position. No simulation work is done
// until the next Step.
func (f *Field) SetPointer(x, y float64) { f.pointer = Vec2{X: x, Y: y} }

func (f *Field) Pointer() Vec2 { return f.pointer }

// Particles returns the live particle slice. Callers must not retain it
// across Reseed.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) Len() int { return len(f.particles) }

func (f *Field) Size() (w, h float64) { return f.w, f.h }
