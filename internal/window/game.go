// Package window hosts the plexus engine in a desktop window.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/host"
	"github.com/san-kum/plexus/internal/metrics"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

// Game implements ebiten.Game. Ebitengine calls Update, Draw and Layout
// from one goroutine, which serialises every engine callback.
type Game struct {
	cfg  *config.Config
	eng  *engine.Engine
	host *host.Dispatcher
	surf *Surface
	conn *metrics.Connectivity
	bg   color.NRGBA

	mounted    bool
	lastX      int
	lastY      int
	showStats  bool
	status     string
	statusChan chan string
}

func NewGame(cfg *config.Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	conn := metrics.NewConnectivity()
	return &Game{
		cfg:  cfg,
		host: host.NewDispatcher(windowWidth, windowHeight),
		surf: &Surface{},
		conn: conn,
		bg:   color.NRGBA{R: 5, G: 8, B: 5, A: 255},
		eng: engine.New(engine.Options{
			Field:    cfg.Field(),
			Style:    cfg.Style(),
			Rand:     rand.New(rand.NewSource(seed)),
			Observer: metrics.NewRecorder(conn),
		}),
		lastX:      -1,
		lastY:      -1,
		statusChan: make(chan string, 1),
	}
}

// Engine returns the hosted engine.
func (g *Game) Engine() *engine.Engine { return g.eng }

func (g *Game) Update() error {
	if !g.mounted {
		g.mounted = true
		if err := g.eng.Mount(g.host, engine.StaticCanvas(g.surf)); err != nil {
			return err
		}
	}
	if g.eng.Terminated() {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.eng.Unmount()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.eng.SetPaused(!g.eng.Paused())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.eng.Reseed()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.showStats = !g.showStats
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.screenshot()
	}

	select {
	case s := <-g.statusChan:
		g.status = s
	default:
	}

	if x, y := ebiten.CursorPosition(); x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.host.PointerMove(float64(x), float64(y))
	}

	g.host.RunFrames(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	if img := g.surf.Image(); img != nil {
		screen.DrawImage(img, nil)
	}

	if g.showStats {
		w, h := g.surf.Size()
		msg := fmt.Sprintf("particles: %d  links: %d  surface: %dx%d  TPS: %.1f",
			g.eng.Field().Len(), g.conn.Links(), w, h, ebiten.ActualTPS())
		if g.status != "" {
			msg += "\n" + g.status
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout follows the window size; a change is delivered to the engine as a
// resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// screenshot copies the current frame and asks for a file name off the game
// goroutine.
func (g *Game) screenshot() {
	if g.surf.Image() == nil {
		return
	}
	w, h := g.surf.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	g.surf.Image().ReadPixels(img.Pix)

	go func() {
		name, err := zenity.SelectFileSave(
			zenity.Title("Save frame"),
			zenity.Filename("plexus.png"),
			zenity.ConfirmOverwrite(),
			zenity.FileFilters{{
				Name:     "PNG image",
				Patterns: []string{"*.png"},
			}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				log.Printf("window: save dialog: %v", err)
			}
			return
		}
		if err := writePNG(name, img); err != nil {
			log.Printf("window: %v", err)
			g.report("save failed")
			return
		}
		g.report("saved " + name)
	}()
}

func (g *Game) report(s string) {
	select {
	case g.statusChan <- s:
	default:
	}
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("plexus")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Render.FPS)

	g := NewGame(cfg)
	defer g.Engine().Unmount()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
