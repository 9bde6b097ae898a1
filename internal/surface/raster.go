package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four Béziers approximate a circle.
const kappa = 0.5522847498

// Raster paints into an RGBA image with anti-aliasing.
type Raster struct {
	img *image.RGBA
	bg  color.NRGBA
	z   *vector.Rasterizer
}

func NewRaster(w, h int) *Raster {
	r := &Raster{}
	r.Resize(w, h)
	return r
}

// SetBackground sets the colour Clear fills with. The default is fully
// transparent.
func (r *Raster) SetBackground(c color.NRGBA) { r.bg = c }

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.z = vector.NewRasterizer(w, h)
	r.Clear()
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)
}

// Image returns the backing image. It is replaced on Resize.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	if rad <= 0 || r.empty() {
		return
	}
	x, y, k := float32(cx), float32(cy), float32(rad)
	o := float32(rad * kappa)

	r.reset()
	r.z.MoveTo(x+k, y)
	r.z.CubeTo(x+k, y+o, x+o, y+k, x, y+k)
	r.z.CubeTo(x-o, y+k, x-k, y+o, x-k, y)
	r.z.CubeTo(x-k, y-o, x-o, y-k, x, y-k)
	r.z.CubeTo(x+o, y-k, x+k, y-o, x+k, y)
	r.z.ClosePath()
	r.fill(c)
}

// StrokeLine draws the segment as a quad of the given width.
func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if r.empty() {
		return
	}
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	r.reset()
	r.z.MoveTo(float32(x0+nx), float32(y0+ny))
	r.z.LineTo(float32(x1+nx), float32(y1+ny))
	r.z.LineTo(float32(x1-nx), float32(y1-ny))
	r.z.LineTo(float32(x0-nx), float32(y0-ny))
	r.z.ClosePath()
	r.fill(c)
}

func (r *Raster) empty() bool {
	b := r.img.Bounds()
	return b.Dx() == 0 || b.Dy() == 0
}

func (r *Raster) reset() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
}

func (r *Raster) fill(c color.NRGBA) {
	r.z.DrawOp = draw.Over
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}
