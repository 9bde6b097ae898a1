package field

// Particle is one point of the field. Radius is fixed at creation.
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// advance integrates one unit time step and reflects velocity components
// whose coordinate left [0,w] or [0,h]. Position is not clamped.
func (p *Particle) advance(w, h float64) {
	p.Pos = p.Pos.Add(p.Vel)

	if p.Pos.X < 0 || p.Pos.X > w {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > h {
		p.Vel.Y = -p.Vel.Y
	}
}
