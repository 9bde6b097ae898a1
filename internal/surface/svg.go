package surface

import (
	"fmt"
	"image/color"
	"strings"
)

// SVG records drawing calls as SVG elements. Clear drops everything drawn
// so far, so String describes the last frame.
type SVG struct {
	w, h       int
	Background color.NRGBA
	elems      []string
}

func NewSVG(w, h int) *SVG {
	return &SVG{w: w, h: h, Background: color.NRGBA{R: 10, G: 10, B: 10, A: 255}}
}

func (s *SVG) Size() (int, int) { return s.w, s.h }

func (s *SVG) Resize(w, h int) {
	s.w, s.h = max(w, 0), max(h, 0)
	s.elems = s.elems[:0]
}

func (s *SVG) Clear() { s.elems = s.elems[:0] }

func (s *SVG) FillCircle(cx, cy, r float64, c color.NRGBA) {
	s.elems = append(s.elems, fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.3f"/>`,
		cx, cy, r, Hex(c), float64(c.A)/255))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	s.elems = append(s.elems, fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"/>`,
		x0, y0, x1, y1, Hex(c), float64(c.A)/255, width))
}

// Len reports the number of recorded elements.
func (s *SVG) Len() int { return len(s.elems) }

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.w, s.h, s.w, s.h, Hex(s.Background)))
	for _, e := range s.elems {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// BrailleToSVG converts a braille canvas to SVG, one circle per set dot,
// filled with the cell colour resolved against bg.
func BrailleToSVG(b *Braille, scale float64, bg color.NRGBA, gain float64) string {
	if b == nil {
		return ""
	}

	width := float64(b.Cols) * scale * 2
	height := float64(b.Rows) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, Hex(bg)))

	dotRadius := scale * 0.4

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			r := b.Grid[row][col]
			if r <= blank {
				continue
			}
			pattern := int(r - blank)
			fill := Hex(b.CellColor(col, row, bg, gain))

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
