package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is an offscreen Ebitengine image the engine paints into. The game
// copies it to the screen in Draw. The image is allocated by the first
// Resize, which happens when the engine mounts.
type Surface struct {
	img  *ebiten.Image
	w, h int
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

func (s *Surface) Resize(w, h int) {
	if s.img != nil {
		s.img.Deallocate()
	}
	s.w, s.h = max(w, 1), max(h, 1)
	s.img = ebiten.NewImage(s.w, s.h)
}

func (s *Surface) Clear() { s.img.Clear() }

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// Image returns the offscreen image, or nil before the first Resize. It is
// replaced on Resize.
func (s *Surface) Image() *ebiten.Image { return s.img }
