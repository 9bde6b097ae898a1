package field

import "sort"

// Link joins two particles closer than the connection radius. I < J.
type Link struct {
	I, J int
	Dist float64
}

// LinkOpacity is the stroke opacity of a link of length d: base at d == 0,
// falling linearly to exactly 0 at d == radius and clamped to [0, base].
func LinkOpacity(d, radius, base float64) float64 {
	if radius <= 0 {
		return 0
	}
	a := base * (1 - d/radius)
	if a < 0 {
		return 0
	}
	if a > base {
		return base
	}
	return a
}

// Connections appends every connected pair to dst[:0] ordered by (I, J).
func (f *Field) Connections(dst []Link) []Link {
	if f.cfg.GridThreshold > 0 && len(f.particles) > f.cfg.GridThreshold {
		return f.GridConnections(dst)
	}
	return f.ScanConnections(dst)
}

// ScanConnections is the O(N²) pairwise scan.
func (f *Field) ScanConnections(dst []Link) []Link {
	dst = dst[:0]
	r := f.cfg.ConnectionRadius
	for i := range f.particles {
		a := f.particles[i].Pos
		for j := i + 1; j < len(f.particles); j++ {
			if d := a.Dist(f.particles[j].Pos); d < r {
				dst = append(dst, Link{I: i, J: j, Dist: d})
			}
		}
	}
	return dst
}

// GridConnections buckets particles into a grid of connection-radius cells
// and only compares particles in neighbouring cells.
func (f *Field) GridConnections(dst []Link) []Link {
	dst = dst[:0]
	r := f.cfg.ConnectionRadius
	if r <= 0 {
		return dst
	}
	g := &f.grid
	g.build(f.particles, f.w, f.h, r)

	for cy := 0; cy < g.rows; cy++ {
		for cx := 0; cx < g.cols; cx++ {
			for _, i := range g.at(cx, cy) {
				a := f.particles[i].Pos
				for ny := cy - 1; ny <= cy+1; ny++ {
					for nx := cx - 1; nx <= cx+1; nx++ {
						for _, j := range g.at(nx, ny) {
							if j <= i {
								continue
							}
							if d := a.Dist(f.particles[j].Pos); d < r {
								dst = append(dst, Link{I: i, J: j, Dist: d})
							}
						}
					}
				}
			}
		}
	}

	sort.Slice(dst, func(a, b int) bool {
		if dst[a].I != dst[b].I {
			return dst[a].I < dst[b].I
		}
		return dst[a].J < dst[b].J
	})
	return dst
}
