package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/plexus/internal/host"
)

// TickMsg delivers one animation frame.
type TickMsg time.Time

// termHost adapts a Bubble Tea program to engine.Host. Bubble Tea runs
// Update serially, which gives the engine its single-threaded event loop.
type termHost struct {
	*host.Dispatcher
	interval time.Duration
	ticking  bool
}

func newTermHost(w, h, fps int) *termHost {
	return &termHost{
		Dispatcher: host.NewDispatcher(w, h),
		interval:   time.Second / time.Duration(fps),
	}
}

// next returns a tick command when a frame is pending and no tick is in
// flight. An unmounted engine leaves nothing pending, so the ticks stop.
func (h *termHost) next() tea.Cmd {
	if h.ticking || h.Pending() == 0 {
		return nil
	}
	h.ticking = true
	return tea.Tick(h.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (h *termHost) frame(now time.Time) {
	h.ticking = false
	h.RunFrames(now)
}
