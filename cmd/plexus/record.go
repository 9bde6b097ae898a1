package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/host"
	"github.com/san-kum/plexus/internal/metrics"
	"github.com/san-kum/plexus/internal/surface"
	"github.com/spf13/cobra"
)

var recordBackground = color.NRGBA{R: 10, G: 10, B: 10, A: 255}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 || width <= 0 || height <= 0 {
		return fmt.Errorf("frames, width and height must be positive")
	}

	ext := strings.ToLower(filepath.Ext(recordOut))
	if ext != ".gif" && ext != ".svg" {
		return fmt.Errorf("unsupported output %q: use .gif or .svg", recordOut)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	conn := metrics.NewConnectivity()
	energy := metrics.NewKineticEnergy()
	escapes := metrics.NewEscapes()
	rec := metrics.NewRecorder(conn, energy, escapes)

	eng := engine.New(engine.Options{
		Field:    cfg.Field(),
		Style:    cfg.Style(),
		Rand:     rand.New(rand.NewSource(seed)),
		Observer: rec,
	})
	d := host.NewDispatcher(width, height)

	var (
		raster *surface.Raster
		svg    *surface.SVG
		canvas engine.Canvas
	)
	if ext == ".gif" {
		raster = surface.NewRaster(width, height)
		raster.SetBackground(recordBackground)
		canvas = engine.StaticCanvas(raster)
	} else {
		svg = surface.NewSVG(width, height)
		svg.Background = recordBackground
		canvas = engine.StaticCanvas(svg)
	}

	if err := eng.Mount(d, canvas); err != nil {
		return err
	}
	defer eng.Unmount()

	var anim gif.GIF
	pal := rampPalette(recordBackground, cfg)
	delay := max(100/cfg.Render.FPS, 1)
	interval := time.Second / time.Duration(cfg.Render.FPS)
	start := time.Now()

	for i := 0; i < frames; i++ {
		x, y := pointerPath(i, frames, width, height)
		d.PointerMove(x, y)
		d.RunFrames(start.Add(time.Duration(i) * interval))

		if raster != nil {
			img := image.NewPaletted(raster.Image().Bounds(), pal)
			draw.FloydSteinberg.Draw(img, img.Bounds(), raster.Image(), image.Point{})
			anim.Image = append(anim.Image, img)
			anim.Delay = append(anim.Delay, delay)
		}
	}

	err = writeOutput(recordOut, func(w io.Writer) error {
		if raster != nil {
			if err := gif.EncodeAll(w, &anim); err != nil {
				return fmt.Errorf("encode gif: %w", err)
			}
			return nil
		}
		_, err := io.WriteString(w, svg.String())
		return err
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d frames, %dx%d, seed %d)\n\n", recordOut, eng.Frames(), width, height, seed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tLAST\tMIN\tMAX")
	for _, m := range rec.Metrics() {
		lo, hi := span(rec.History(m.Name()))
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\n", m.Name(), m.Value(), lo, hi)
	}
	fmt.Fprintf(w, "escapes (total)\t%d\t\t\n", escapes.Total())
	if err := w.Flush(); err != nil {
		return err
	}

	if h := rec.History(conn.Name()); len(h) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(h,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("links per particle")))
	}
	return nil
}

// writeOutput creates name and fills it with write. A failed write leaves
// no partial file behind.
func writeOutput(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

// pointerPath traces a Lissajous figure over the surface so recordings show
// the repulsion.
func pointerPath(i, n, w, h int) (float64, float64) {
	t := 2 * math.Pi * float64(i) / float64(n)
	cx, cy := float64(w)/2, float64(h)/2
	return cx + 0.35*float64(w)*math.Sin(2*t), cy + 0.35*float64(h)*math.Sin(3*t)
}

// rampPalette blends the background towards the particle colour in 256
// steps, which is every colour the engine draws.
func rampPalette(bg color.NRGBA, cfg *config.Config) color.Palette {
	fg := cfg.Style().Color
	pal := make(color.Palette, 256)
	for i := range pal {
		t := float64(i) / 255
		pal[i] = color.NRGBA{
			R: lerp8(bg.R, fg.R, t),
			G: lerp8(bg.G, fg.G, t),
			B: lerp8(bg.B, fg.B, t),
			A: 255,
		}
	}
	return pal
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func span(vs []float64) (lo, hi float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
