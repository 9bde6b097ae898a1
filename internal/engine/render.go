package engine

import "github.com/san-kum/plexus/internal/field"

// paint renders one frame: clear, step, particles, then connections.
func (e *Engine) paint() {
	s := e.surface
	s.Clear()

	if !e.paused {
		e.field.Step()
	}

	fill := e.style.Paint(e.style.FillOpacity)
	for _, p := range e.field.Particles() {
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, fill)
	}

	radius := e.field.Config().ConnectionRadius
	ps := e.field.Particles()
	e.links = e.field.Connections(e.links)
	for _, l := range e.links {
		a := field.LinkOpacity(l.Dist, radius, e.style.LinkOpacity)
		if a <= 0 {
			continue
		}
		p, q := ps[l.I].Pos, ps[l.J].Pos
		s.StrokeLine(p.X, p.Y, q.X, q.Y, e.style.LinkWidth, e.style.Paint(a))
	}

	e.frames++
	if e.observer != nil {
		e.observer.ObserveFrame(e.field, e.links)
	}
}
