package engine_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/host"
	"github.com/san-kum/plexus/internal/surface"
)

var _ = Describe("Engine lifecycle", func() {
	var (
		d *host.Dispatcher
		r *surface.Raster
		e *engine.Engine
	)

	BeforeEach(func() {
		d = host.NewDispatcher(800, 600)
		r = surface.NewRaster(1, 1)
		e = engine.New(engine.Options{Rand: rand.New(rand.NewSource(3))})
	})

	It("starts stopped", func() {
		Expect(e.State()).To(Equal(engine.Stopped))
		Expect(e.Terminated()).To(BeFalse())
	})

	Context("when mounted", func() {
		BeforeEach(func() {
			Expect(e.Mount(d, engine.StaticCanvas(r))).To(Succeed())
		})

		It("is running and owns one frame and two listeners", func() {
			Expect(e.State()).To(Equal(engine.Running))
			Expect(d.Pending()).To(Equal(1))
			Expect(d.Listeners()).To(Equal(2))
		})

		It("sizes the raster to the viewport", func() {
			w, h := r.Size()
			Expect(w).To(Equal(800))
			Expect(h).To(Equal(600))
		})

		It("paints particles into the raster", func() {
			d.RunFrames(time.Now())
			Expect(e.Frames()).To(BeEquivalentTo(1))

			painted := 0
			img := r.Image()
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] != 0 {
					painted++
				}
			}
			Expect(painted).To(BeNumerically(">", 0))
		})

		It("stays running across resizes", func() {
			for _, size := range [][2]int{{1024, 768}, {300, 200}, {1, 1}} {
				d.Resize(size[0], size[1])
				Expect(e.State()).To(Equal(engine.Running))
				for _, p := range e.Field().Particles() {
					Expect(p.Pos.X).To(BeNumerically("<=", size[0]))
					Expect(p.Pos.Y).To(BeNumerically("<=", size[1]))
				}
			}
		})

		Context("and then unmounted", func() {
			BeforeEach(func() {
				d.RunFrames(time.Now())
				e.Unmount()
			})

			It("is terminally stopped", func() {
				Expect(e.State()).To(Equal(engine.Stopped))
				Expect(e.Terminated()).To(BeTrue())
				Expect(e.Mount(d, engine.StaticCanvas(r))).To(MatchError(engine.ErrTerminated))
			})

			It("leaves nothing registered", func() {
				Expect(d.Pending()).To(BeZero())
				Expect(d.Listeners()).To(BeZero())
			})

			It("ignores events dispatched right after", func() {
				frames := e.Frames()
				d.Resize(10, 10)
				d.PointerMove(5, 5)
				Expect(d.RunFrames(time.Now())).To(BeZero())
				Expect(e.Frames()).To(Equal(frames))
				w, _ := r.Size()
				Expect(w).To(Equal(800))
			})

			It("tolerates a second unmount", func() {
				Expect(func() { e.Unmount() }).NotTo(Panic())
			})
		})
	})
})
