package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/san-kum/plexus/internal/field"
)

// State is the lifecycle state of an Engine.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// FrameObserver is notified after every painted frame.
type FrameObserver interface {
	ObserveFrame(f *field.Field, links []field.Link)
}

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	Field    field.Config
	Style    Style
	Rand     *rand.Rand
	Logger   *log.Logger
	Observer FrameObserver
}

// Engine owns one particle field, the listeners registered on its host and
// the pending frame request.
type Engine struct {
	field    *field.Field
	style    Style
	log      *log.Logger
	observer FrameObserver

	host       Host
	surface    Surface
	state      State
	terminated bool
	paused     bool

	frame    FrameID
	hasFrame bool
	onResize Listener
	onMove   Listener

	links  []field.Link
	frames uint64
}

func New(opts Options) *Engine {
	if opts.Field.Count == 0 {
		opts.Field = field.DefaultConfig()
	}
	if opts.Style == (Style{}) {
		opts.Style = DefaultStyle()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Engine{
		field:    field.New(opts.Field, opts.Rand),
		style:    opts.Style,
		log:      opts.Logger,
		observer: opts.Observer,
	}
}

// Mount sizes the canvas surface to the host viewport, seeds the field,
// registers the resize and pointer listeners and starts the frame loop.
//
// A canvas without a drawing context leaves the engine stopped and returns
// nil: the animation is decorative and must never take its host down. The
// instance is spent either way.
func (e *Engine) Mount(host Host, canvas Canvas) error {
	if e.state == Running {
		return ErrMounted
	}
	if e.terminated {
		return ErrTerminated
	}

	s := canvas.Context()
	if s == nil {
		e.terminated = true
		e.log.Printf("engine: no drawing context, particle field disabled")
		return nil
	}

	e.host, e.surface = host, s
	e.resize()
	e.onResize = host.OnResize(e.handleResize)
	e.onMove = host.OnPointerMove(e.handlePointer)
	e.state = Running
	e.schedule()
	return nil
}

// Unmount stops the loop for good: the pending frame is cancelled and both
// listeners are removed. It is safe to call more than once.
func (e *Engine) Unmount() {
	e.terminated = true
	if e.state != Running {
		return
	}
	e.state = Stopped

	if e.hasFrame {
		e.host.CancelFrame(e.frame)
		e.hasFrame = false
	}
	e.onResize.Remove()
	e.onMove.Remove()
	e.onResize, e.onMove = nil, nil
}

func (e *Engine) State() State { return e.state }

// Terminated reports whether the engine has reached its final Stopped state.
func (e *Engine) Terminated() bool { return e.terminated && e.state == Stopped }

// Field exposes the simulated field for read-only inspection.
func (e *Engine) Field() *field.Field { return e.field }

// Frames returns the number of frames painted so far.
func (e *Engine) Frames() uint64 { return e.frames }

// Links returns the connections painted in the last frame.
func (e *Engine) Links() []field.Link { return e.links }

func (e *Engine) Style() Style { return e.style }

func (e *Engine) SetStyle(s Style) { e.style = s }

// SetPaused freezes the simulation. Frames keep being painted.
func (e *Engine) SetPaused(p bool) { e.paused = p }

func (e *Engine) Paused() bool { return e.paused }

// Reseed replaces every particle without changing the surface size.
func (e *Engine) Reseed() {
	if e.state != Running {
		return
	}
	w, h := e.surface.Size()
	e.field.Reseed(float64(w), float64(h))
}

func (e *Engine) resize() {
	w, h := e.host.Viewport()
	e.surface.Resize(w, h)
	sw, sh := e.surface.Size()
	e.field.Reseed(float64(sw), float64(sh))
}

func (e *Engine) handleResize() {
	if e.state != Running {
		return
	}
	e.resize()
}

func (e *Engine) handlePointer(x, y float64) {
	if e.state != Running {
		return
	}
	e.field.SetPointer(x, y)
}

func (e *Engine) schedule() {
	e.frame = e.host.RequestFrame(e.tick)
	e.hasFrame = true
}

func (e *Engine) tick(time.Time) {
	// a host may deliver a frame it was asked to cancel
	if e.state != Running {
		return
	}
	e.hasFrame = false
	e.paint()
	// an observer may have unmounted the engine during paint
	if e.state == Running {
		e.schedule()
	}
}
