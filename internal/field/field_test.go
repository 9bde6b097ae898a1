package field

import (
	"math"
	"math/rand"
	"testing"
)

func newTestField(t *testing.T, cfg Config, w, h float64) *Field {
	t.Helper()
	f := New(cfg, rand.New(rand.NewSource(42)))
	f.Reseed(w, h)
	return f
}

func TestReseed(t *testing.T) {
	f := newTestField(t, DefaultConfig(), 800, 600)

	if f.Len() != 60 {
		t.Fatalf("expected 60 particles, got %d", f.Len())
	}
	for i, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= 800 || p.Pos.Y < 0 || p.Pos.Y >= 600 {
			t.Errorf("particle %d out of bounds: %+v", i, p.Pos)
		}
		if math.Abs(p.Vel.X) > DefaultMaxSpeed || math.Abs(p.Vel.Y) > DefaultMaxSpeed {
			t.Errorf("particle %d velocity too large: %+v", i, p.Vel)
		}
		if p.Radius < DefaultMinRadius || p.Radius >= DefaultMaxRadius {
			t.Errorf("particle %d radius %f outside range", i, p.Radius)
		}
	}
}

func TestReseed_Resize(t *testing.T) {
	f := newTestField(t, DefaultConfig(), 1920, 1080)
	for i := 0; i < 100; i++ {
		f.Step()
	}

	f.Reseed(320, 200)

	if f.Len() != DefaultCount {
		t.Fatalf("expected %d particles after resize, got %d", DefaultCount, f.Len())
	}
	for i, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X > 320 || p.Pos.Y < 0 || p.Pos.Y > 200 {
			t.Errorf("particle %d not inside new bounds: %+v", i, p.Pos)
		}
	}
	if w, h := f.Size(); w != 320 || h != 200 {
		t.Errorf("expected size 320x200, got %vx%v", w, h)
	}
}

func TestStep_StaysNearBounds(t *testing.T) {
	cfg := DefaultConfig()
	f := newTestField(t, cfg, 400, 300)
	f.SetPointer(200, 150)

	// one tick can overshoot by the velocity plus the largest nudge
	eps := cfg.MaxSpeed*math.Sqrt2 + cfg.InteractionRadius*cfg.RepulsionFactor

	for tick := 0; tick < 5000; tick++ {
		f.Step()
		for i, p := range f.Particles() {
			if p.Pos.X < -eps || p.Pos.X > 400+eps || p.Pos.Y < -eps || p.Pos.Y > 300+eps {
				t.Fatalf("tick %d: particle %d escaped: %+v", tick, i, p.Pos)
			}
		}
	}
}

func TestStep_ReflectIsSignFlip(t *testing.T) {
	tests := []struct {
		name    string
		pos     Vec2
		vel     Vec2
		wantVel Vec2
	}{
		{"right wall", Vec2{800, 300}, Vec2{0.3, 0.1}, Vec2{-0.3, 0.1}},
		{"left wall", Vec2{0.1, 300}, Vec2{-0.2, 0.1}, Vec2{0.2, 0.1}},
		{"bottom wall", Vec2{400, 599.9}, Vec2{0.05, 0.2}, Vec2{0.05, -0.2}},
		{"corner", Vec2{0, 0}, Vec2{-0.1, -0.1}, Vec2{0.1, 0.1}},
		{"inside", Vec2{400, 300}, Vec2{0.2, -0.2}, Vec2{0.2, -0.2}},
	}

	for _, tt := range tests {
		f := newTestField(t, DefaultConfig(), 800, 600)
		f.particles = []Particle{{Pos: tt.pos, Vel: tt.vel, Radius: 1}}
		f.Step()

		got := f.Particles()[0].Vel
		if got != tt.wantVel {
			t.Errorf("%s: expected velocity %+v, got %+v", tt.name, tt.wantVel, got)
		}
	}
}

func TestStep_EdgeScenario(t *testing.T) {
	f := newTestField(t, DefaultConfig(), 800, 600)
	f.particles = []Particle{{Pos: Vec2{800, 300}, Vel: Vec2{0.3, 0}, Radius: 1}}

	f.Step()
	p := f.Particles()[0]
	if p.Vel.X != -0.3 {
		t.Fatalf("expected vx -0.3, got %f", p.Vel.X)
	}

	f.Step()
	p = f.Particles()[0]
	if p.Pos.X > 800 {
		t.Errorf("expected particle back inside after correction, x=%f", p.Pos.X)
	}
}

func TestRepulsion(t *testing.T) {
	f := newTestField(t, DefaultConfig(), 800, 600)
	f.SetPointer(400, 300)

	if r := f.Repulsion(Vec2{400, 450}); r != (Vec2{}) {
		t.Errorf("expected no nudge outside radius, got %+v", r)
	}
	if r := f.Repulsion(Vec2{500, 300}); r != (Vec2{}) {
		t.Errorf("expected no nudge at the radius, got %+v", r)
	}

	r := f.Repulsion(Vec2{450, 300})
	if math.Abs(r.X-0.5) > 1e-12 || r.Y != 0 {
		t.Errorf("expected nudge (0.5, 0), got %+v", r)
	}

	// pointer exactly on the particle: displacement is the zero vector
	if r := f.Repulsion(Vec2{400, 300}); r != (Vec2{}) {
		t.Errorf("expected zero nudge at distance 0, got %+v", r)
	}
}

func TestRepulsion_PointsAway(t *testing.T) {
	f := newTestField(t, DefaultConfig(), 800, 600)
	f.SetPointer(100, 100)
	f.particles = []Particle{{Pos: Vec2{130, 140}, Radius: 1}}

	before := f.Particles()[0].Pos.Dist(f.Pointer())
	f.Step()
	after := f.Particles()[0].Pos.Dist(f.Pointer())

	if after <= before {
		t.Errorf("expected particle pushed away: before %f, after %f", before, after)
	}
}

func TestRepulsion_NotReflectedSameTick(t *testing.T) {
	f := newTestField(t, DefaultConfig(), 800, 600)
	f.SetPointer(850, 300)
	f.particles = []Particle{{Pos: Vec2{799.9, 300}, Vel: Vec2{0, 0}, Radius: 1}}

	f.Step()
	p := f.Particles()[0]
	if p.Pos.X >= 800 {
		t.Fatalf("expected nudge towards the left, got x=%f", p.Pos.X)
	}

	f.SetPointer(750, 300)
	f.particles[0].Pos = Vec2{799.9, 300}
	f.Step()
	p = f.Particles()[0]
	if p.Pos.X <= 800 {
		t.Errorf("expected nudge to push particle past the wall, got x=%f", p.Pos.X)
	}
	if p.Vel.X != 0 {
		t.Errorf("nudge must not change velocity, got %f", p.Vel.X)
	}
}

func TestDefaultPointerHasNoInfluence(t *testing.T) {
	f := newTestField(t, DefaultConfig(), 800, 600)
	if f.Pointer() != OffscreenPointer {
		t.Fatalf("expected offscreen pointer, got %+v", f.Pointer())
	}
	for _, p := range f.Particles() {
		if r := f.Repulsion(p.Pos); r != (Vec2{}) {
			t.Fatalf("offscreen pointer nudged particle at %+v", p.Pos)
		}
	}
}
