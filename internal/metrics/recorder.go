package metrics

import "github.com/san-kum/plexus/internal/field"

const historyCapacity = 600

// Recorder fans frames out to its metrics and keeps a bounded history of
// each value. It implements engine.FrameObserver.
type Recorder struct {
	metrics []Metric
	history map[string][]float64
	frames  int
}

func NewRecorder(ms ...Metric) *Recorder {
	return &Recorder{
		metrics: ms,
		history: make(map[string][]float64, len(ms)),
	}
}

func (r *Recorder) ObserveFrame(f *field.Field, links []field.Link) {
	r.frames++
	for _, m := range r.metrics {
		m.Observe(f, links)
		h := append(r.history[m.Name()], m.Value())
		if len(h) > historyCapacity {
			h = h[1:]
		}
		r.history[m.Name()] = h
	}
}

// History returns the recorded values of the named metric, oldest first.
func (r *Recorder) History(name string) []float64 { return r.history[name] }

// Value returns the latest value of the named metric.
func (r *Recorder) Value(name string) float64 {
	h := r.history[name]
	if len(h) == 0 {
		return 0
	}
	return h[len(h)-1]
}

func (r *Recorder) Frames() int { return r.frames }

func (r *Recorder) Metrics() []Metric { return r.metrics }

func (r *Recorder) Reset() {
	r.frames = 0
	for _, m := range r.metrics {
		m.Reset()
		delete(r.history, m.Name())
	}
}
