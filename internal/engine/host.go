package engine

import (
	"image/color"
	"time"
)

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameFunc is invoked once per delivered animation frame.
type FrameFunc func(now time.Time)

// Listener is a registered event callback.
type Listener interface {
	Remove()
}

// Host is the environment an engine is mounted into.
type Host interface {
	// Viewport reports the current drawing area in surface pixels.
	Viewport() (w, h int)
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
	OnResize(fn func()) Listener
	OnPointerMove(fn func(x, y float64)) Listener
}

// Surface is a 2D drawing context. Colours are non-premultiplied.
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	Clear()
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// Canvas hands out its drawing context. Context returns nil when the
// context is unavailable.
type Canvas interface {
	Context() Surface
}

// CanvasFunc adapts a function to Canvas.
type CanvasFunc func() Surface

func (f CanvasFunc) Context() Surface { return f() }

// StaticCanvas is a Canvas whose context is always s.
func StaticCanvas(s Surface) Canvas {
	return CanvasFunc(func() Surface { return s })
}
