package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/metrics"
	"github.com/san-kum/plexus/internal/surface"
)

const (
	width        = 80
	height       = 24
	graphSamples = 120
	gifName      = "plexus.gif"
	svgName      = "plexus.svg"
)

// Model is the Bubble Tea program hosting one engine in the terminal.
type Model struct {
	cfg    *config.Config
	eng    *engine.Engine
	host   *termHost
	canvas *surface.Braille
	rec    *metrics.Recorder

	theme         Theme
	styles        styles
	width, height int
	showHUD       bool
	showHelp      bool
	status        string

	recording bool
	frames    []*image.Paletted

	spring             harmonica.Spring
	linksPos, linksVel float64
	fpsPos, fpsVel     float64
	lastFrame          time.Time
}

// NewModel builds the terminal host and an unmounted engine. The engine is
// mounted by Init and unmounted on quit.
func NewModel(cfg *config.Config) Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rec := metrics.NewRecorder(metrics.NewConnectivity(), metrics.NewKineticEnergy(), metrics.NewEscapes())
	theme := GetTheme(cfg.Render.Theme)

	m := Model{
		cfg:    cfg,
		host:   newTermHost(width*surface.CellWidth, height*surface.CellHeight, cfg.Render.FPS),
		canvas: surface.NewBraille(width, height),
		rec:    rec,
		theme:  theme,
		styles: newStyles(theme),
		width:  width,
		height: height,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.Render.FPS), 6.0, 1.0),
	}
	m.eng = engine.New(engine.Options{
		Field:    cfg.Field(),
		Style:    m.engineStyle(),
		Rand:     rand.New(rand.NewSource(seed)),
		Observer: rec,
	})
	return m
}

// Engine returns the hosted engine.
func (m Model) Engine() *engine.Engine { return m.eng }

func (m Model) Init() tea.Cmd {
	if err := m.eng.Mount(m.host, engine.StaticCanvas(m.canvas)); err != nil {
		log.Printf("viz: mount: %v", err)
		return nil
	}
	return m.host.next()
}

// Update routes terminal events to the host and handles key bindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.host.frame(time.Time(msg))
		m.observeFrame(time.Time(msg))
		if m.recording {
			m.captureFrame()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.host.Resize(m.viewport())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion && msg.X < m.canvasCols() {
			m.host.PointerMove(
				float64(msg.X*surface.CellWidth+surface.CellWidth/2),
				float64(msg.Y*surface.CellHeight+surface.CellHeight/2),
			)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.eng.Unmount()
			return m, tea.Quit
		case " ":
			m.eng.SetPaused(!m.eng.Paused())
		case "r":
			m.eng.Reseed()
			m.rec.Reset()
		case "h":
			m.showHUD = !m.showHUD
			m.host.Resize(m.viewport())
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
			m.eng.SetStyle(m.engineStyle())
		case "g":
			if m.recording {
				m.status = m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
				m.status = "recording"
			}
		case "e":
			m.status = m.exportSVG()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, m.host.next()
}

func (m Model) View() string {
	if m.eng.Terminated() {
		return ""
	}
	canvasView := m.canvas.Render(rgb(m.theme.Background), m.cfg.Render.TerminalGain)
	if m.showHelp {
		return helpText + "\n" + canvasView
	}
	if !m.showHUD {
		return canvasView
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.hudView())
}

func (m Model) hudView() string {
	st := m.styles
	var s strings.Builder
	s.WriteString(st.header.Render("PLEXUS") + "\n")

	status := "RUNNING"
	if m.eng.Paused() {
		status = "PAUSED"
	}
	if m.recording {
		status += " " + st.warn.Render("● REC")
	}
	s.WriteString(status + "\n")

	if hist := m.rec.History("connectivity"); len(hist) > 1 {
		if len(hist) > graphSamples {
			hist = hist[len(hist)-graphSamples:]
		}
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(hudWidth-12), asciigraph.Caption("links/particle"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	f := m.eng.Field()
	w, h := f.Size()
	p := f.Pointer()
	rows := [][2]string{
		{"Particles", fmt.Sprintf("%d", f.Len())},
		{"Links", fmt.Sprintf("%.0f", m.linksPos)},
		{"Energy", fmt.Sprintf("%.4f", m.rec.Value("kinetic_energy"))},
		{"Escaped", fmt.Sprintf("%.0f", m.rec.Value("escapes"))},
		{"Surface", fmt.Sprintf("%.0fx%.0f", w, h)},
		{"Pointer", fmt.Sprintf("%.0f,%.0f", p.X, p.Y)},
		{"FPS", fmt.Sprintf("%.1f", m.fpsPos)},
		{"Theme", m.theme.Name},
	}
	for _, r := range rows {
		s.WriteString(st.label.Render(r[0]) + st.value.Render(r[1]) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + st.warn.Render(m.status) + "\n")
	}
	s.WriteString(st.help.Render("─────────────────────\nSP:Pause R:Reseed Q:Quit\nT:Theme G:Record E:SVG\nH:HUD ?:Help"))
	return st.hud.Render(s.String())
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume field       ║
║  R        - Reseed particles         ║
║  H        - Toggle HUD               ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  E        - Export frame as SVG      ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

func (m Model) canvasCols() int {
	if m.showHUD {
		return max(m.width-hudWidth, 0)
	}
	return m.width
}

// viewport is the canvas area in logical pixels.
func (m Model) viewport() (int, int) {
	return m.canvasCols() * surface.CellWidth, m.height * surface.CellHeight
}

func (m Model) engineStyle() engine.Style {
	s := m.cfg.Style()
	s.Color = rgb(m.theme.Particle)
	return s
}

// observeFrame eases the HUD readouts towards the latest values.
func (m *Model) observeFrame(now time.Time) {
	links := m.rec.Value("connectivity") * float64(m.eng.Field().Len()) / 2
	m.linksPos, m.linksVel = m.spring.Update(m.linksPos, m.linksVel, links)

	if !m.lastFrame.IsZero() {
		if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
			m.fpsPos, m.fpsVel = m.spring.Update(m.fpsPos, m.fpsVel, 1/dt)
		}
	}
	m.lastFrame = now
}

// palette returns the background followed by 15 shades of the particle
// colour of increasing opacity.
func (m Model) palette() color.Palette {
	bg, fg := rgb(m.theme.Background), rgb(m.theme.Particle)
	p := color.Palette{bg}
	for i := 1; i < 16; i++ {
		a := float64(i) / 15
		p = append(p, color.NRGBA{
			R: uint8(float64(fg.R)*a + float64(bg.R)*(1-a)),
			G: uint8(float64(fg.G)*a + float64(bg.G)*(1-a)),
			B: uint8(float64(fg.B)*a + float64(bg.B)*(1-a)),
			A: 255,
		})
	}
	return p
}

func (m *Model) captureFrame() {
	charW, charH := surface.CellWidth, surface.CellHeight
	imgW, imgH := m.canvas.Cols*charW, m.canvas.Rows*charH
	if imgW == 0 || imgH == 0 {
		return
	}
	pal := m.palette()
	bg := rgb(m.theme.Background)
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), pal)
	dotW, dotH := charW/2, charH/4

	for row := 0; row < m.canvas.Rows; row++ {
		for col := 0; col < m.canvas.Cols; col++ {
			r := m.canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			idx := uint8(pal.Index(m.canvas.CellColor(col, row, bg, m.cfg.Render.TerminalGain)))
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					var bit int
					switch dy {
					case 0:
						bit = 1 << (dx * 3)
					case 1:
						bit = 2 << (dx * 3)
					case 2:
						bit = 4 << (dx * 3)
					case 3:
						if dx == 0 {
							bit = 0x40
						} else {
							bit = 0x80
						}
					}
					if pattern&bit != 0 {
						for py := 0; py < dotH; py++ {
							for px := 0; px < dotW; px++ {
								img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
							}
						}
					}
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF() string {
	if len(m.frames) == 0 {
		return "nothing recorded"
	}
	delay := max(100/m.cfg.Render.FPS, 1)
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(gifName)
	if err != nil {
		log.Printf("viz: save gif: %v", err)
		return "gif failed"
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		log.Printf("viz: encode gif: %v", err)
		return "gif failed"
	}
	return fmt.Sprintf("saved %s (%d frames)", gifName, len(m.frames))
}

func (m Model) exportSVG() string {
	svg := surface.BrailleToSVG(m.canvas, 4, rgb(m.theme.Background), m.cfg.Render.TerminalGain)
	if err := os.WriteFile(svgName, []byte(svg), 0644); err != nil {
		log.Printf("viz: export svg: %v", err)
		return "svg failed"
	}
	return "saved " + svgName
}

// Run starts the terminal program. The engine is unmounted on return even
// when the program exits abnormally.
func Run(cfg *config.Config) error {
	m := NewModel(cfg)
	defer m.Engine().Unmount()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
