package viz

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/field"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 11
	m := NewModel(cfg)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected Init to schedule the first frame")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_MountsOnInit(t *testing.T) {
	m := newTestModel(t)

	if m.Engine().State() != engine.Running {
		t.Fatalf("expected running engine, got %v", m.Engine().State())
	}
	if w, h := m.canvas.Size(); w != 640 || h != 384 {
		t.Errorf("expected 640x384 canvas, got %dx%d", w, h)
	}
}

func TestModel_TickPaints(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.Engine().Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", m.Engine().Frames())
	}
	if cmd == nil {
		t.Error("expected next tick to be scheduled")
	}
	if m.View() == "" {
		t.Error("expected canvas in view")
	}
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.canvas.Cols != 120 || m.canvas.Rows != 40 {
		t.Errorf("expected 120x40 cells, got %dx%d", m.canvas.Cols, m.canvas.Rows)
	}
	w, h := m.Engine().Field().Size()
	if w != 960 || h != 640 {
		t.Errorf("expected field 960x640, got %vx%v", w, h)
	}

	m, _ = update(t, m, key("h"))
	if m.canvas.Cols != 120-hudWidth {
		t.Errorf("expected HUD to shrink canvas, got %d cols", m.canvas.Cols)
	}
}

func TestModel_Pointer(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	want := field.Vec2{X: 84, Y: 88}
	if got := m.Engine().Field().Pointer(); got != want {
		t.Errorf("expected pointer %+v, got %+v", want, got)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	m, cmd := update(t, m, key("q"))
	if !m.Engine().Terminated() {
		t.Fatal("expected engine unmounted on quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit command")
	}

	frames := m.Engine().Frames()
	m, cmd = update(t, m, TickMsg(time.Now()))
	if m.Engine().Frames() != frames {
		t.Error("frame painted after quit")
	}
	if cmd != nil {
		t.Error("expected no further ticks after quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestModel_Keys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.Engine().Paused() {
		t.Error("expected paused after space")
	}

	before := m.theme.Name
	m, _ = update(t, m, key("t"))
	if m.theme.Name == before {
		t.Error("expected theme to change")
	}
	if m.Engine().Style().Color != rgb(m.theme.Particle) {
		t.Error("expected engine colour to follow theme")
	}

	m, _ = update(t, m, key("?"))
	if !m.showHelp {
		t.Error("expected help shown")
	}
}

func TestModel_Recording(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, key("g"))
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	if len(m.frames) != 2 {
		t.Errorf("expected 2 captured frames, got %d", len(m.frames))
	}
	b := m.frames[0].Bounds()
	if b.Dx() != 640 || b.Dy() != 384 {
		t.Errorf("unexpected frame size %v", b)
	}
}

func TestTermHost_SingleTickInFlight(t *testing.T) {
	h := newTermHost(10, 10, 60)
	if h.next() != nil {
		t.Error("expected no tick without pending frames")
	}

	h.RequestFrame(func(time.Time) {})
	if h.next() == nil {
		t.Fatal("expected tick for pending frame")
	}
	if h.next() != nil {
		t.Error("expected at most one tick in flight")
	}

	h.frame(time.Now())
	if h.Pending() != 0 || h.ticking {
		t.Error("expected frame consumed and tick cleared")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nonexistent").Name != "plexus" {
		t.Error("expected fallback theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
	if NextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("expected wrap-around")
	}
	if c := rgb(ThemePlexus.Particle); c.R != 93 || c.G != 214 || c.B != 44 {
		t.Errorf("unexpected plexus colour %+v", c)
	}
}
