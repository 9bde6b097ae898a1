// Package host provides the event queue shared by every plexus host.
package host

import (
	"time"

	"github.com/san-kum/plexus/internal/engine"
)

type frameReq struct {
	id engine.FrameID
	fn engine.FrameFunc
}

// Dispatcher implements engine.Host for a single-threaded event loop. The
// owning host feeds it viewport changes, pointer moves and frame ticks.
type Dispatcher struct {
	w, h   int
	nextID uint64

	frames  []frameReq
	resize  map[uint64]func()
	pointer map[uint64]func(x, y float64)
	order   []uint64
}

func NewDispatcher(w, h int) *Dispatcher {
	return &Dispatcher{
		w:       w,
		h:       h,
		resize:  make(map[uint64]func()),
		pointer: make(map[uint64]func(x, y float64)),
	}
}

func (d *Dispatcher) Viewport() (int, int) { return d.w, d.h }

func (d *Dispatcher) RequestFrame(fn engine.FrameFunc) engine.FrameID {
	d.nextID++
	id := engine.FrameID(d.nextID)
	d.frames = append(d.frames, frameReq{id: id, fn: fn})
	return id
}

func (d *Dispatcher) CancelFrame(id engine.FrameID) {
	for i, f := range d.frames {
		if f.id == id {
			d.frames = append(d.frames[:i], d.frames[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) OnResize(fn func()) engine.Listener {
	id := d.register()
	d.resize[id] = fn
	return &listener{d: d, id: id}
}

func (d *Dispatcher) OnPointerMove(fn func(x, y float64)) engine.Listener {
	id := d.register()
	d.pointer[id] = fn
	return &listener{d: d, id: id}
}

func (d *Dispatcher) register() uint64 {
	d.nextID++
	d.order = append(d.order, d.nextID)
	return d.nextID
}

// Resize updates the viewport and notifies resize listeners in
// registration order. Unchanged sizes are ignored.
func (d *Dispatcher) Resize(w, h int) {
	if w == d.w && h == d.h {
		return
	}
	d.w, d.h = w, h
	for _, id := range d.snapshot() {
		if fn, ok := d.resize[id]; ok {
			fn()
		}
	}
}

// PointerMove notifies pointer listeners.
func (d *Dispatcher) PointerMove(x, y float64) {
	for _, id := range d.snapshot() {
		if fn, ok := d.pointer[id]; ok {
			fn(x, y)
		}
	}
}

// RunFrames invokes every frame requested before the call and returns how
// many ran. Frames requested from inside a callback wait for the next call,
// matching requestAnimationFrame.
func (d *Dispatcher) RunFrames(now time.Time) int {
	batch := d.frames
	d.frames = nil
	for _, f := range batch {
		f.fn(now)
	}
	return len(batch)
}

// Pending reports the number of outstanding frame requests.
func (d *Dispatcher) Pending() int { return len(d.frames) }

// Listeners reports the number of registered event listeners.
func (d *Dispatcher) Listeners() int { return len(d.resize) + len(d.pointer) }

func (d *Dispatcher) snapshot() []uint64 {
	ids := make([]uint64, len(d.order))
	copy(ids, d.order)
	return ids
}

func (d *Dispatcher) remove(id uint64) {
	delete(d.resize, id)
	delete(d.pointer, id)
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return
		}
	}
}

type listener struct {
	d  *Dispatcher
	id uint64
}

func (l *listener) Remove() { l.d.remove(l.id) }
