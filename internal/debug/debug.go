package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"museum-viewer/internal/controller"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: FPS/Mem text is rebuilt every N frames to limit allocations.
	updateInterval = 30
)

// Overlay draws the HUD (painting and camera, top-left) and the FPS/heap counters
// (top-right). Everything but the HUD is off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHUD      bool
	font         rl.Font
	frameCount   uint32
	fpsText      string
	memText      string
	memStats     runtime.MemStats
	hudText      string
	hudState     controller.State
	hudPaused    bool
}

// New returns an overlay with only the HUD visible.
func New() *Overlay {
	return &Overlay{ShowHUD: true}
}

// SetFont sets the overlay font. A zero texture ID keeps raylib's default font.
func (o *Overlay) SetFont(font rl.Font) {
	o.font = font
}

// HUDText describes the viewer state in one line.
func HUDText(st controller.State, paused bool) string {
	s := fmt.Sprintf("Painting %d/%d   Camera %.2f, %.2f, %.2f",
		st.Painting.Index+1, st.Painting.Count, st.Camera[0], st.Camera[1], st.Camera[2])
	if paused {
		s += "   [paused]"
	}
	return s
}

// Draw renders the enabled overlays. Call after the scene and before the console.
func (o *Overlay) Draw(st controller.State, paused bool) {
	o.frameCount++
	refresh := o.frameCount%updateInterval == 0

	if o.ShowHUD {
		// Only the input-driven fields are shown, so rebuild only when they change.
		if o.hudText == "" || st.Camera != o.hudState.Camera || st.Painting != o.hudState.Painting || paused != o.hudPaused {
			o.hudText = HUDText(st, paused)
			o.hudState = st
			o.hudPaused = paused
		}
		o.text(o.hudText, padding, padding, false)
	}

	y := int32(padding)
	if o.ShowFPS {
		if refresh || o.fpsText == "" {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		o.text(o.fpsText, 0, y, true)
		y += lineHeight
	}
	if o.ShowMemAlloc {
		if refresh || o.memText == "" {
			runtime.ReadMemStats(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		o.text(o.memText, 0, y, true)
	}
}

// text draws s at (x, y); alignRight measures s and pins it to the right edge instead.
func (o *Overlay) text(s string, x, y int32, alignRight bool) {
	if o.font.Texture.ID != 0 {
		sz := float32(fontSize)
		if alignRight {
			x = int32(rl.GetScreenWidth()) - int32(rl.MeasureTextEx(o.font, s, sz, 1).X) - padding
		}
		rl.DrawTextEx(o.font, s, rl.NewVector2(float32(x), float32(y)), sz, 1, rl.Green)
		return
	}
	if alignRight {
		x = int32(rl.GetScreenWidth()) - rl.MeasureText(s, fontSize) - padding
	}
	rl.DrawText(s, x, y, fontSize, rl.Green)
}
