package controller

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Painting tracks which of Count textures is on the wall.
type Painting struct {
	Index int
	Count int
}

// Statue is the rotating, swaying statue. Origin is the rest position; Position is Origin
// shifted on X by Offset. RotationY and Phase accumulate without wraparound.
type Statue struct {
	Origin    [3]float32
	Position  [3]float32
	RotationY float32
	Phase     float32
	Offset    float32
}

// Spotlight orbits the statue on the XZ plane at a fixed height (Position[1]).
type Spotlight struct {
	Position [3]float32
	Phase    float32
}

// State is everything the input rules and the animator mutate. The renderer reads a copy.
type State struct {
	Camera    [3]float32
	Painting  Painting
	Statue    Statue
	Spotlight Spotlight
}

// DefaultState returns the starting pose of the museum room: camera at (0,2,5), first
// painting shown, statue at (0,1.5,0), spotlight at (2,3,2).
func DefaultState() State {
	statue := [3]float32{0, 1.5, 0}
	return State{
		Camera:    [3]float32{0, 2, 5},
		Painting:  Painting{Index: 0, Count: 9},
		Statue:    Statue{Origin: statue, Position: statue},
		Spotlight: Spotlight{Position: [3]float32{2, 3, 2}},
	}
}

// Controller owns the viewer state and applies input and frame updates to it.
// It is not safe for concurrent use; every call must come from the frame loop.
type Controller struct {
	settings Settings
	initial  State
	state    State
	paused   bool
}

// New validates settings and returns a controller starting at initial.
// The painting count always follows settings.PaintingCount.
func New(settings Settings, initial State) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	initial.Painting.Count = settings.PaintingCount
	initial.Painting.Index = wrapIndex(initial.Painting.Index, settings.PaintingCount)
	return &Controller{settings: settings, initial: initial, state: initial}, nil
}

// Settings returns the settings in force.
func (c *Controller) Settings() Settings {
	return c.settings
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Handle dispatches one input event to its rule.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case EventClick:
		c.Click()
	case EventScroll:
		c.Scroll(ev.DeltaY)
	case EventKey:
		c.KeyDown(ev.Key)
	}
}

// Click advances the painting to the next texture, wrapping after the last one.
func (c *Controller) Click() {
	p := &c.state.Painting
	p.Index = (p.Index + 1) % p.Count
}

// SetPainting shows the painting at index i.
func (c *Controller) SetPainting(i int) error {
	if i < 0 || i >= c.state.Painting.Count {
		return fmt.Errorf("painting index %d out of range [0,%d)", i, c.state.Painting.Count)
	}
	c.state.Painting.Index = i
	return nil
}

// Scroll zooms the camera along Z. deltaY > 0 moves away (zoom out) while z is below the
// zoom maximum; deltaY < 0 moves closer while z is above the minimum. Zero does nothing.
func (c *Controller) Scroll(deltaY float32) {
	z := &c.state.Camera[2]
	zoom := c.settings.Zoom
	switch {
	case deltaY > 0 && *z < zoom.Max:
		*z = zoom.StepUp(*z, c.settings.ZoomSpeed)
	case deltaY < 0 && *z > zoom.Min:
		*z = zoom.StepDown(*z, c.settings.ZoomSpeed)
	}
}

// KeyDown pans the camera on X or Z, each move gated by its bound pair, then clamps the
// camera height. Nothing binds height today so the clamp only matters if the starting
// position or a reload puts y outside the pair.
func (c *Controller) KeyDown(k Key) {
	cam := &c.state.Camera
	s := c.settings
	switch k {
	case KeyUp:
		if cam[2] > s.PanZ.Min {
			cam[2] = s.PanZ.StepDown(cam[2], s.CameraSpeed)
		}
	case KeyDown:
		if cam[2] < s.PanZ.Max {
			cam[2] = s.PanZ.StepUp(cam[2], s.CameraSpeed)
		}
	case KeyLeft:
		if cam[0] > s.PanX.Min {
			cam[0] = s.PanX.StepDown(cam[0], s.CameraSpeed)
		}
	case KeyRight:
		if cam[0] < s.PanX.Max {
			cam[0] = s.PanX.StepUp(cam[0], s.CameraSpeed)
		}
	}
	cam[1] = s.Height.Clamp(cam[1])
}

// Tick advances the animator by one frame.
func (c *Controller) Tick() {
	c.Advance(1)
}

// Advance moves the statue and the spotlight forward by ticks frames. The two updates
// do not read each other so their order does not matter. ticks <= 0 is a no-op, as is
// any call while paused.
func (c *Controller) Advance(ticks int) {
	if ticks <= 0 || c.paused {
		return
	}
	n := float32(ticks)
	s := c.settings

	st := &c.state.Statue
	st.RotationY += s.StatueSpin * n
	st.Phase += s.StatueSwayStep * n
	st.Offset = s.StatueSwayAmplitude * math32.Sin(st.Phase)
	st.Position = st.Origin
	st.Position[0] += st.Offset

	sp := &c.state.Spotlight
	sp.Phase += s.SpotlightStep * n
	sp.Position = OrbitPosition(s.SpotlightRadius, sp.Position[1], sp.Phase)
}

// OrbitPosition returns the point on a horizontal circle of the given radius and height
// at phase radians.
func OrbitPosition(radius, height, phase float32) [3]float32 {
	return [3]float32{radius * math32.Cos(phase), height, radius * math32.Sin(phase)}
}

// SpotlightTarget returns where the spotlight points. It is read from the statue on every
// call because the statue moves.
func (c *Controller) SpotlightTarget() [3]float32 {
	return c.state.Statue.Position
}

// SetPaused freezes or resumes the animator. Input rules keep working while paused.
func (c *Controller) SetPaused(paused bool) {
	c.paused = paused
}

// Paused reports whether the animator is frozen.
func (c *Controller) Paused() bool {
	return c.paused
}

// Reset restores the state the controller was created with.
func (c *Controller) Reset() {
	c.state = c.initial
}

// ApplySettings swaps in new settings (e.g. after the layout file changed). The camera is
// clamped into the new pan and height pairs, and into the zoom pair when z was inside
// the old one. Invalid settings are rejected and the old ones stay in force.
func (c *Controller) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	old := c.settings
	c.settings = s

	cam := &c.state.Camera
	cam[0] = s.PanX.Clamp(cam[0])
	cam[1] = s.Height.Clamp(cam[1])
	if old.Zoom.Contains(cam[2]) {
		cam[2] = s.Zoom.Clamp(cam[2])
	} else {
		cam[2] = s.PanZ.Clamp(cam[2])
	}

	c.state.Painting.Count = s.PaintingCount
	c.state.Painting.Index = wrapIndex(c.state.Painting.Index, s.PaintingCount)
	c.initial.Painting.Count = s.PaintingCount
	c.initial.Painting.Index = wrapIndex(c.initial.Painting.Index, s.PaintingCount)
	return nil
}

// Rebase takes a new starting state after a layout reload. Reset returns to it from now
// on. The statue origin and the spotlight height follow it at once; the camera, painting
// and animation phases keep their live values.
func (c *Controller) Rebase(initial State) {
	initial.Painting.Count = c.settings.PaintingCount
	initial.Painting.Index = wrapIndex(initial.Painting.Index, c.settings.PaintingCount)
	c.initial = initial

	st := &c.state.Statue
	st.Origin = initial.Statue.Origin
	st.Position = st.Origin
	st.Position[0] += st.Offset

	sp := &c.state.Spotlight
	if sp.Phase == 0 {
		sp.Position = initial.Spotlight.Position
	} else {
		sp.Position = OrbitPosition(c.settings.SpotlightRadius, initial.Spotlight.Position[1], sp.Phase)
	}
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
