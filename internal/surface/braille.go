package surface

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank = 0x2800

	// CellWidth and CellHeight are the logical pixels covered by one
	// terminal cell. One braille dot is DotSize x DotSize logical pixels.
	CellWidth  = 8
	CellHeight = 16
	DotSize    = 4
)

// ink is a premultiplied colour accumulated in one cell.
type ink struct {
	r, g, b, a float64
}

// Braille is a terminal drawing surface. Every cell carries a braille
// pattern and the colour composited into it; a cell shows a single colour,
// so overlapping strokes of different opacity blend per cell, not per dot.
type Braille struct {
	Cols, Rows int
	Grid       [][]rune
	ink        [][]ink
}

func NewBraille(cols, rows int) *Braille {
	b := &Braille{}
	b.resizeCells(cols, rows)
	return b
}

// Size reports the surface in logical pixels.
func (b *Braille) Size() (int, int) {
	return b.Cols * CellWidth, b.Rows * CellHeight
}

// Resize takes logical pixels and rounds down to whole cells.
func (b *Braille) Resize(w, h int) {
	b.resizeCells(max(w, 0)/CellWidth, max(h, 0)/CellHeight)
}

func (b *Braille) resizeCells(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	b.Cols, b.Rows = cols, rows
	b.Grid = make([][]rune, rows)
	b.ink = make([][]ink, rows)
	for i := range b.Grid {
		b.Grid[i] = make([]rune, cols)
		b.ink[i] = make([]ink, cols)
	}
	b.Clear()
}

// Clear resets the canvas
func (b *Braille) Clear() {
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.Grid[i][j] = blank
			b.ink[i][j] = ink{}
		}
	}
}

// Set sets a dot at (x, y) in dot coordinates. The canvas is
// (Cols*2) x (Rows*4) dots.
func (b *Braille) Set(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= b.Cols || row >= b.Rows {
		return false
	}
	b.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	return true
}

// Unset clears a dot
func (b *Braille) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Cols || row >= b.Rows {
		return
	}
	b.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if b.Grid[row][col] < blank {
		b.Grid[row][col] = blank
	}
}

// FillCircle sets every dot whose centre lies inside the circle, and at
// least the dot under the centre.
func (b *Braille) FillCircle(cx, cy, r float64, c color.NRGBA) {
	dx0, dy0 := toDot(cx), toDot(cy)
	reach := int(math.Ceil(r / DotSize))
	// cells already blended this call; small circles stay on the stack
	var buf [16][2]int
	painted := buf[:0]

	for y := dy0 - reach; y <= dy0+reach; y++ {
		for x := dx0 - reach; x <= dx0+reach; x++ {
			if x != dx0 || y != dy0 {
				px := (float64(x) + 0.5) * DotSize
				py := (float64(y) + 0.5) * DotSize
				if math.Hypot(px-cx, py-cy) > r {
					continue
				}
			}
			if b.Set(x, y) {
				cell := [2]int{x / 2, y / 4}
				if !slices.Contains(painted, cell) {
					painted = append(painted, cell)
					b.blend(cell[0], cell[1], c)
				}
			}
		}
	}
}

// StrokeLine draws a one-dot-wide line. Width is ignored: a dot is wider
// than any stroke the engine uses.
func (b *Braille) StrokeLine(x0, y0, x1, y1, _ float64, c color.NRGBA) {
	lastCol, lastRow := -1, -1
	b.line(toDot(x0), toDot(y0), toDot(x1), toDot(y1), func(x, y int) {
		if !b.Set(x, y) {
			return
		}
		col, row := x/2, y/4
		if col != lastCol || row != lastRow {
			b.blend(col, row, c)
			lastCol, lastRow = col, row
		}
	})
}

// DrawLine draws an uncoloured line in dot coordinates.
func (b *Braille) DrawLine(x0, y0, x1, y1 int) {
	b.line(x0, y0, x1, y1, func(x, y int) { b.Set(x, y) })
}

// line walks a segment using Bresenham's algorithm
func (b *Braille) line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Braille) blend(col, row int, c color.NRGBA) {
	a := float64(c.A) / 255
	k := &b.ink[row][col]
	k.r = float64(c.R)/255*a + k.r*(1-a)
	k.g = float64(c.G)/255*a + k.g*(1-a)
	k.b = float64(c.B)/255*a + k.b*(1-a)
	k.a = a + k.a*(1-a)
}

// Coverage returns the straight colour and accumulated alpha of a cell.
func (b *Braille) Coverage(col, row int) (color.NRGBA, float64) {
	if row < 0 || col < 0 || row >= b.Rows || col >= b.Cols {
		return color.NRGBA{}, 0
	}
	k := b.ink[row][col]
	if k.a == 0 {
		return color.NRGBA{}, 0
	}
	return color.NRGBA{
		R: to8(k.r / k.a),
		G: to8(k.g / k.a),
		B: to8(k.b / k.a),
		A: 255,
	}, k.a
}

// CellColor resolves a cell against the background. Gain scales the
// accumulated alpha so faint links stay visible on a 256-colour terminal.
func (b *Braille) CellColor(col, row int, bg color.NRGBA, gain float64) color.NRGBA {
	c, a := b.Coverage(col, row)
	a = math.Min(1, a*gain)
	return color.NRGBA{
		R: to8(float64(c.R)/255*a + float64(bg.R)/255*(1-a)),
		G: to8(float64(c.G)/255*a + float64(bg.G)/255*(1-a)),
		B: to8(float64(c.B)/255*a + float64(bg.B)/255*(1-a)),
		A: 255,
	}
}

// Render returns the canvas with every run of same-coloured cells wrapped
// in a lipgloss foreground style.
func (b *Braille) Render(bg color.NRGBA, gain float64) string {
	var sb strings.Builder
	for row := 0; row < b.Rows; row++ {
		var run strings.Builder
		runHex := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHex == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runHex)).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < b.Cols; col++ {
			hex := ""
			if b.Grid[row][col] != blank {
				hex = Hex(b.CellColor(col, row, bg, gain))
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(b.Grid[row][col])
		}
		flush()
		if row < b.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Braille) String() string {
	var sb strings.Builder
	for _, row := range b.Grid {
		sb.WriteString(string(row) + "\n")
	}
	return sb.String()
}

// Hex formats c as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func toDot(v float64) int {
	return int(math.Floor(v / DotSize))
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
