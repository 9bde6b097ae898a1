package field

import "math"

// grid is a dense uniform bucket grid rebuilt on every query. Particles
// slightly outside the surface are clamped into the border cells.
type grid struct {
	cols, rows int
	size       float64
	cells      [][]int
}

func (g *grid) build(ps []Particle, w, h, size float64) {
	cols := int(math.Ceil(w/size)) + 1
	rows := int(math.Ceil(h/size)) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols*rows != len(g.cells) {
		g.cells = make([][]int, cols*rows)
	}
	g.cols, g.rows, g.size = cols, rows, size
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i, p := range ps {
		cx, cy := g.cellOf(p.Pos)
		idx := cy*g.cols + cx
		g.cells[idx] = append(g.cells[idx], i)
	}
}

func (g *grid) cellOf(p Vec2) (int, int) {
	cx := clampInt(int(math.Floor(p.X/g.size)), 0, g.cols-1)
	cy := clampInt(int(math.Floor(p.Y/g.size)), 0, g.rows-1)
	return cx, cy
}

func (g *grid) at(cx, cy int) []int {
	if cx < 0 || cy < 0 || cx >= g.cols || cy >= g.rows {
		return nil
	}
	return g.cells[cy*g.cols+cx]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
