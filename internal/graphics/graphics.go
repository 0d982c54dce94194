package graphics

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"museum-viewer/internal/input"
)

// Window describes the window Run opens.
type Window struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Run opens the window and drives the frame loop until it is closed. Each frame it calls
// update (input, then animation), clears the screen and calls draw. Both run on the
// calling goroutine, which must be the main one. shutdown, if set, runs while the GPU
// context still exists so resources can be unloaded.
// ESC is reserved for the console, so the window only closes via its close button.
func Run(w Window, update, draw, shutdown func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	width, height := int32(w.Width), int32(w.Height)
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()
	if w.Fullscreen {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
		rl.ToggleFullscreen()
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(w.TargetFPS))

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	if shutdown != nil {
		shutdown()
	}
}

// ToggleFullscreen switches between fullscreen and windowed mode.
func ToggleFullscreen() {
	rl.ToggleFullscreen()
}

var arrows = []struct {
	key  int32
	name string
}{
	{rl.KeyUp, "Up"},
	{rl.KeyDown, "Down"},
	{rl.KeyLeft, "Left"},
	{rl.KeyRight, "Right"},
}

func keyName(k int32) string {
	for _, a := range arrows {
		if a.key == k {
			return a.name
		}
	}
	return "key" + strconv.Itoa(int(k))
}

// PollInput collects this frame's viewer input from raylib. When enabled is false (the
// console has focus) it returns an empty frame and leaves the key queue to the console.
// Held arrow keys repeat at the OS key-repeat rate, like browser keydown events.
func PollInput(enabled bool) input.Frame {
	if !enabled {
		return input.Frame{}
	}
	f := input.Frame{
		Clicked:   rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		WheelMove: rl.GetMouseWheelMove(),
	}
	for {
		k := rl.GetKeyPressed()
		if k == 0 {
			break
		}
		f.Keys = append(f.Keys, keyName(k))
	}
	for _, a := range arrows {
		if rl.IsKeyPressedRepeat(a.key) {
			f.Keys = append(f.Keys, a.name)
		}
	}
	return f
}
