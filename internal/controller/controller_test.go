package controller

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a)-float64(b)) <= epsilon
}

func newController(t *testing.T, camera [3]float32) *Controller {
	t.Helper()
	st := DefaultState()
	st.Camera = camera
	c, err := New(DefaultSettings(), st)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestClickCyclesPainting(t *testing.T) {
	for k := 0; k <= 30; k++ {
		c := newController(t, [3]float32{0, 2, 5})
		for i := 0; i < k; i++ {
			c.Click()
		}
		if got, want := c.State().Painting.Index, k%9; got != want {
			t.Errorf("after %d clicks index = %d, want %d", k, got, want)
		}
	}
}

func TestNineClicksReturnToFirstPainting(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	for i := 0; i < 9; i++ {
		c.Handle(ClickEvent())
	}
	if got := c.State().Painting.Index; got != 0 {
		t.Errorf("index = %d, want 0", got)
	}
}

func TestScrollStaysInZoomBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newController(t, [3]float32{0, 2, 5})
	for i := 0; i < 5000; i++ {
		delta := float32(rng.Intn(3) - 1)
		c.Scroll(delta)
		z := c.State().Camera[2]
		if z < 3 || z > 6 {
			t.Fatalf("step %d: z = %v outside [3,6]", i, z)
		}
	}
}

func TestScrollAtBounds(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		delta float32
		want  float32
	}{
		{"zoom out at max", 6, 1, 6},
		{"zoom in at min", 3, -1, 3},
		{"zoom out", 5, 120, 5.1},
		{"zoom in", 5, -3, 4.9},
		{"zero delta", 5, 0, 5},
		{"zoom out near max clamps", 5.95, 1, 6},
		{"zoom in near min clamps", 3.05, -1, 3},
		{"zoom out from below min steps once", 0, 1, 0.1},
		{"zoom in from above max steps once", 7, -1, 6.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t, [3]float32{0, 2, tt.start})
			c.Handle(ScrollEvent(tt.delta))
			got := c.State().Camera
			if !near(got[2], tt.want) {
				t.Errorf("z = %v, want %v", got[2], tt.want)
			}
			if got[0] != 0 || got[1] != 2 {
				t.Errorf("scroll changed x/y: %v", got)
			}
		})
	}
}

func TestZoomOutSweepStopsAtMax(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 3})
	for i := 0; i < 100; i++ {
		c.Scroll(1)
	}
	if z := c.State().Camera[2]; z != 6 {
		t.Errorf("z = %v, want exactly 6", z)
	}
}

func TestPanStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyNone}
	c := newController(t, [3]float32{0, 2, 0})
	for i := 0; i < 10000; i++ {
		c.KeyDown(keys[rng.Intn(len(keys))])
		cam := c.State().Camera
		if cam[0] < -4 || cam[0] > 4 || cam[2] < -4 || cam[2] > 4 {
			t.Fatalf("step %d: camera %v outside pan bounds", i, cam)
		}
		if cam[1] != 2 {
			t.Fatalf("step %d: y changed to %v", i, cam[1])
		}
	}
}

func TestKeyDown(t *testing.T) {
	tests := []struct {
		name  string
		start [3]float32
		key   Key
		want  [3]float32
	}{
		{"right at max x", [3]float32{4, 2, 0}, KeyRight, [3]float32{4, 2, 0}},
		{"left at min x", [3]float32{-4, 2, 0}, KeyLeft, [3]float32{-4, 2, 0}},
		{"up at min z", [3]float32{0, 2, -4}, KeyUp, [3]float32{0, 2, -4}},
		{"down at max z", [3]float32{0, 2, 4}, KeyDown, [3]float32{0, 2, 4}},
		{"up moves closer", [3]float32{0, 2, 1}, KeyUp, [3]float32{0, 2, 0.9}},
		{"down moves back", [3]float32{0, 2, 1}, KeyDown, [3]float32{0, 2, 1.1}},
		{"left", [3]float32{1, 2, 0}, KeyLeft, [3]float32{0.9, 2, 0}},
		{"right", [3]float32{1, 2, 0}, KeyRight, [3]float32{1.1, 2, 0}},
		{"right near max clamps", [3]float32{3.95, 2, 0}, KeyRight, [3]float32{4, 2, 0}},
		{"down from start beyond pan z", [3]float32{0, 2, 5}, KeyDown, [3]float32{0, 2, 5}},
		{"up from start beyond pan z", [3]float32{0, 2, 5}, KeyUp, [3]float32{0, 2, 4.9}},
		{"left from beyond pan x", [3]float32{6, 2, 0}, KeyLeft, [3]float32{5.9, 2, 0}},
		{"unbound key", [3]float32{1, 2, 1}, KeyNone, [3]float32{1, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newController(t, tt.start)
			c.Handle(KeyEvent(tt.key))
			got := c.State().Camera
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Errorf("camera = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestUpFromStartWalksThroughBothRanges(t *testing.T) {
	c, err := New(DefaultSettings(), DefaultState())
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 10; i++ {
		c.KeyDown(KeyUp)
		if want := 5 - float32(i)*0.1; !near(c.State().Camera[2], want) {
			t.Fatalf("after %d Up presses z = %v, want %v", i, c.State().Camera[2], want)
		}
	}
}

func TestKeyDownClampsHeight(t *testing.T) {
	tests := []struct {
		y, want float32
	}{
		{8, 5},
		{-2, 1},
		{2, 2},
	}
	for _, tt := range tests {
		c := newController(t, [3]float32{0, tt.y, 0})
		c.KeyDown(KeyNone)
		if got := c.State().Camera[1]; got != tt.want {
			t.Errorf("y %v -> %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	const ticks = 100
	for i := 0; i < ticks; i++ {
		c.Tick()
	}
	st := c.State()
	if !near(st.Spotlight.Phase, 0.01*ticks) {
		t.Errorf("spotlight phase = %v, want %v", st.Spotlight.Phase, 0.01*ticks)
	}
	if !near(st.Statue.Phase, 0.02*ticks) {
		t.Errorf("statue phase = %v, want %v", st.Statue.Phase, 0.02*ticks)
	}
	if !near(st.Statue.RotationY, 0.005*ticks) {
		t.Errorf("statue rotation = %v, want %v", st.Statue.RotationY, 0.005*ticks)
	}
	wantOffset := float32(0.2 * math.Sin(0.02*ticks))
	if !near(st.Statue.Offset, wantOffset) || !near(st.Statue.Position[0], wantOffset) {
		t.Errorf("statue offset = %v x = %v, want %v", st.Statue.Offset, st.Statue.Position[0], wantOffset)
	}
	if st.Statue.Position[1] != 1.5 || st.Statue.Position[2] != 0 {
		t.Errorf("statue moved off its lane: %v", st.Statue.Position)
	}
}

func TestRotationDoesNotWrap(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	c.Advance(2000)
	if got := c.State().Statue.RotationY; !near(got, 10) {
		t.Errorf("rotation = %v, want 10", got)
	}
}

func TestSpotlightOrbit(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	for i := 1; i <= 700; i++ {
		c.Tick()
		st := c.State()
		theta := float64(st.Spotlight.Phase)
		want := [3]float32{float32(4 * math.Cos(theta)), 3, float32(4 * math.Sin(theta))}
		for j := range want {
			if !near(st.Spotlight.Position[j], want[j]) {
				t.Fatalf("tick %d: spotlight %v, want %v", i, st.Spotlight.Position, want)
			}
		}
	}
}

func TestOrbitPosition(t *testing.T) {
	for _, theta := range []float32{0, 0.5, math.Pi / 2, math.Pi, 4, 6} {
		got := OrbitPosition(4, 3, theta)
		want := [3]float32{float32(4 * math.Cos(float64(theta))), 3, float32(4 * math.Sin(float64(theta)))}
		for j := range want {
			if !near(got[j], want[j]) {
				t.Errorf("OrbitPosition(%v) = %v, want %v", theta, got, want)
				break
			}
		}
	}
}

func TestTwoTicksEqualDoubleAdvance(t *testing.T) {
	a := newController(t, [3]float32{0, 2, 5})
	b := newController(t, [3]float32{0, 2, 5})
	a.Tick()
	a.Tick()
	b.Advance(2)
	sa, sb := a.State(), b.State()
	pairs := [][2]float32{
		{sa.Statue.RotationY, sb.Statue.RotationY},
		{sa.Statue.Phase, sb.Statue.Phase},
		{sa.Statue.Position[0], sb.Statue.Position[0]},
		{sa.Spotlight.Phase, sb.Spotlight.Phase},
		{sa.Spotlight.Position[0], sb.Spotlight.Position[0]},
		{sa.Spotlight.Position[2], sb.Spotlight.Position[2]},
	}
	for i, p := range pairs {
		if !near(p[0], p[1]) {
			t.Errorf("field %d: two ticks %v, advance(2) %v", i, p[0], p[1])
		}
	}
}

func TestAdvanceNonPositiveIsNoop(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	before := c.State()
	c.Advance(0)
	c.Advance(-3)
	if c.State() != before {
		t.Errorf("state changed: %+v", c.State())
	}
}

func TestSpotlightTargetFollowsStatue(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	for i := 0; i < 50; i++ {
		c.Tick()
		if c.SpotlightTarget() != c.State().Statue.Position {
			t.Fatalf("tick %d: target %v, statue %v", i, c.SpotlightTarget(), c.State().Statue.Position)
		}
	}
}

func TestInputDoesNotTouchAnimator(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 0})
	c.Advance(10)
	before := c.State()
	c.Click()
	c.Scroll(1)
	c.KeyDown(KeyLeft)
	after := c.State()
	if after.Statue != before.Statue || after.Spotlight != before.Spotlight {
		t.Errorf("input changed animator state")
	}
}

func TestPause(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	c.SetPaused(true)
	c.Advance(10)
	if c.State().Statue.Phase != 0 {
		t.Errorf("animator advanced while paused")
	}
	c.Click()
	if c.State().Painting.Index != 1 {
		t.Errorf("click ignored while paused")
	}
	c.SetPaused(false)
	c.Tick()
	if !near(c.State().Statue.Phase, 0.02) {
		t.Errorf("phase = %v after resume", c.State().Statue.Phase)
	}
}

func TestReset(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	c.Click()
	c.Scroll(-1)
	c.Advance(5)
	c.Reset()
	if c.State() != newController(t, [3]float32{0, 2, 5}).State() {
		t.Errorf("Reset() state = %+v", c.State())
	}
}

func TestSetPainting(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	if err := c.SetPainting(8); err != nil {
		t.Fatalf("SetPainting(8) error = %v", err)
	}
	c.Click()
	if got := c.State().Painting.Index; got != 0 {
		t.Errorf("index = %d, want 0", got)
	}
	for _, i := range []int{-1, 9} {
		if err := c.SetPainting(i); err == nil {
			t.Errorf("SetPainting(%d) returned nil error", i)
		}
	}
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.Zoom = Range{Min: 6, Max: 3}
	if _, err := New(s, DefaultState()); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("New() error = %v, want ErrInvalidSettings", err)
	}
}

func TestNewWrapsPaintingIndex(t *testing.T) {
	st := DefaultState()
	st.Painting.Index = 11
	c, err := New(DefaultSettings(), st)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.State().Painting; got.Index != 2 || got.Count != 9 {
		t.Errorf("painting = %+v, want index 2 of 9", got)
	}
}

func TestApplySettings(t *testing.T) {
	c := newController(t, [3]float32{3, 2, 5})
	for i := 0; i < 7; i++ {
		c.Click()
	}

	s := DefaultSettings()
	s.PanX = Range{Min: -2, Max: 2}
	s.Zoom = Range{Min: 3, Max: 4}
	s.PaintingCount = 4
	if err := c.ApplySettings(s); err != nil {
		t.Fatalf("ApplySettings() error = %v", err)
	}
	st := c.State()
	if st.Camera[0] != 2 || st.Camera[2] != 4 {
		t.Errorf("camera = %v, want x=2 z=4", st.Camera)
	}
	if st.Painting.Index != 3 || st.Painting.Count != 4 {
		t.Errorf("painting = %+v, want 3 of 4", st.Painting)
	}

	bad := DefaultSettings()
	bad.CameraSpeed = 0
	if err := c.ApplySettings(bad); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("ApplySettings(bad) error = %v", err)
	}
	if c.Settings().PanX.Max != 2 {
		t.Errorf("rejected settings replaced the old ones")
	}
}

func TestRebase(t *testing.T) {
	c := newController(t, [3]float32{1, 2, 4})
	c.Click()
	c.Advance(10)
	before := c.State()

	next := DefaultState()
	next.Camera = [3]float32{0, 3, 2}
	next.Statue.Origin = [3]float32{1, 1, -1}
	next.Spotlight.Position = [3]float32{2, 4, 2}
	c.Rebase(next)

	st := c.State()
	if st.Camera != before.Camera || st.Painting != before.Painting {
		t.Errorf("Rebase moved live camera or painting: %+v", st)
	}
	if st.Statue.Phase != before.Statue.Phase || st.Spotlight.Phase != before.Spotlight.Phase {
		t.Errorf("Rebase reset animation phases: %+v", st)
	}
	wantStatue := [3]float32{1 + before.Statue.Offset, 1, -1}
	for i := range wantStatue {
		if !near(st.Statue.Position[i], wantStatue[i]) {
			t.Fatalf("statue = %v, want %v", st.Statue.Position, wantStatue)
		}
	}
	if st.Spotlight.Position[1] != 4 {
		t.Errorf("spotlight height = %v, want 4", st.Spotlight.Position[1])
	}

	c.Reset()
	if got := c.State(); got.Camera != next.Camera || got.Statue.Origin != next.Statue.Origin {
		t.Errorf("Reset() after Rebase = %+v", got)
	}
}

func TestRebaseBeforeFirstTick(t *testing.T) {
	c := newController(t, [3]float32{0, 2, 5})
	next := DefaultState()
	next.Spotlight.Position = [3]float32{-1, 2.5, 3}
	next.Statue.Origin = [3]float32{0, 2, 0}
	c.Rebase(next)
	st := c.State()
	if st.Spotlight.Position != next.Spotlight.Position {
		t.Errorf("spotlight = %v, want %v", st.Spotlight.Position, next.Spotlight.Position)
	}
	if st.Statue.Position != next.Statue.Origin {
		t.Errorf("statue = %v, want %v", st.Statue.Position, next.Statue.Origin)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"equal bounds", func(s *Settings) { s.PanX = Range{Min: 1, Max: 1} }, true},
		{"pan x inverted", func(s *Settings) { s.PanX = Range{Min: 4, Max: -4} }, false},
		{"pan z inverted", func(s *Settings) { s.PanZ = Range{Min: 1, Max: 0} }, false},
		{"height inverted", func(s *Settings) { s.Height = Range{Min: 5, Max: 1} }, false},
		{"zero zoom speed", func(s *Settings) { s.ZoomSpeed = 0 }, false},
		{"negative camera speed", func(s *Settings) { s.CameraSpeed = -0.1 }, false},
		{"no paintings", func(s *Settings) { s.PaintingCount = 0 }, false},
		{"negative radius", func(s *Settings) { s.SpotlightRadius = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() error = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := map[string]Key{
		"Up":         KeyUp,
		"ArrowUp":    KeyUp,
		"down":       KeyDown,
		"ArrowLeft":  KeyLeft,
		" Right ":    KeyRight,
		"w":          KeyNone,
		"":           KeyNone,
		"ArrowRight": KeyRight,
	}
	for name, want := range tests {
		if got := ParseKey(name); got != want {
			t.Errorf("ParseKey(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRangeStep(t *testing.T) {
	r := Range{Min: -4, Max: 4}
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"up inside", r.StepUp(1, 0.5), 1.5},
		{"up stops at max", r.StepUp(3.8, 0.5), 4},
		{"up below min", r.StepUp(-10, 0.5), -9.5},
		{"up above max stays", r.StepUp(5, 0.5), 5},
		{"down inside", r.StepDown(1, 0.5), 0.5},
		{"down stops at min", r.StepDown(-3.8, 0.5), -4},
		{"down above max", r.StepDown(10, 0.5), 9.5},
		{"down below min stays", r.StepDown(-5, 0.5), -5},
	}
	for _, tt := range tests {
		if !near(tt.got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: -1, Max: 1}
	for _, tt := range []struct{ in, want float32 }{{-2, -1}, {0.5, 0.5}, {3, 1}} {
		if got := r.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
