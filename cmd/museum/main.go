package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"museum-viewer/internal/commands"
	"museum-viewer/internal/config"
	"museum-viewer/internal/controller"
	"museum-viewer/internal/debug"
	"museum-viewer/internal/env"
	"museum-viewer/internal/fonts"
	"museum-viewer/internal/graphics"
	"museum-viewer/internal/input"
	"museum-viewer/internal/logger"
	"museum-viewer/internal/scene"
	"museum-viewer/internal/terminal"
	"museum-viewer/internal/watch"
)

// viewer is everything the frame loop and the console commands share. All of it is
// touched from the main goroutine only.
type viewer struct {
	log        *logger.Logger
	layoutPath string
	prefsPath  string
	assetDir   string
	prefs      config.Prefs
	ctl        *controller.Controller
	scn        *scene.Scene
	overlay    *debug.Overlay
	term       *terminal.Terminal
	watcher    *watch.Watcher
	font       rl.Font
	fontTried  bool
}

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}
	log := logger.NewAt(env.String(env.LogKey, logger.DefaultPath))
	v, err := newViewer(log)
	if err != nil {
		log.Logf("startup: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	graphics.Run(graphics.Window{
		Title:      "Museum",
		Width:      v.prefs.Width,
		Height:     v.prefs.Height,
		Fullscreen: v.prefs.Fullscreen,
		TargetFPS:  v.prefs.TargetFPS,
	}, v.update, v.draw, v.close)
}

func newViewer(log *logger.Logger) (*viewer, error) {
	v := &viewer{
		log:        log,
		layoutPath: env.String(env.LayoutKey, config.LayoutPath),
		prefsPath:  env.String(env.PrefsKey, config.PrefsPath),
		assetDir:   env.String(env.AssetsKey, ""),
	}
	v.prefs, _ = config.LoadPrefs(v.prefsPath)

	layout, err := v.loadLayout()
	if err != nil {
		return nil, err
	}
	settings, err := layout.Settings()
	if err != nil {
		return nil, err
	}
	v.ctl, err = controller.New(settings, layout.InitialState())
	if err != nil {
		return nil, err
	}
	v.scn, err = scene.New(layout)
	if err != nil {
		return nil, err
	}

	v.overlay = debug.New()
	v.overlay.ShowFPS = v.prefs.ShowFPS
	v.overlay.ShowMemAlloc = v.prefs.ShowMemAlloc
	v.overlay.ShowHUD = v.prefs.ShowHUD

	reg := commands.NewRegistry()
	v.registerCommands(reg)
	v.term = terminal.New(log, reg)

	// Without a layout file there is nothing to watch; reload still works from the console.
	if _, err := os.Stat(v.layoutPath); err == nil {
		if v.watcher, err = watch.New(v.layoutPath); err != nil {
			log.Logf("hot reload disabled: %v", err)
		}
	}
	log.Logf("museum: %d paintings, layout %s", settings.PaintingCount, v.layoutPath)
	return v, nil
}

func (v *viewer) loadLayout() (config.Layout, error) {
	layout, err := config.LoadLayout(v.layoutPath)
	if err != nil {
		return layout, err
	}
	if v.assetDir != "" {
		layout.AssetDir = v.assetDir
	}
	return layout, nil
}

// reload re-reads the layout and applies it. On any error the running layout stays.
func (v *viewer) reload() error {
	layout, err := v.loadLayout()
	if err != nil {
		return err
	}
	settings, err := layout.Settings()
	if err != nil {
		return err
	}
	if err := v.scn.ApplyLayout(layout); err != nil {
		return err
	}
	if err := v.ctl.ApplySettings(settings); err != nil {
		return err
	}
	v.ctl.Rebase(layout.InitialState())
	v.log.Logf("layout reloaded: %d paintings", settings.PaintingCount)
	return nil
}

func (v *viewer) pollWatcher() {
	if v.watcher == nil {
		return
	}
	if len(v.watcher.Drain()) > 0 {
		if err := v.reload(); err != nil {
			v.log.Logf("reload: %v", err)
		}
	}
	select {
	case err := <-v.watcher.Errors:
		v.log.Logf("watch: %v", err)
	default:
	}
}

func (v *viewer) update() {
	v.term.Update()
	v.pollWatcher()
	if f := graphics.PollInput(!v.term.IsOpen()); !f.Empty() {
		for _, ev := range input.Translate(f) {
			v.ctl.Handle(ev)
		}
	}
	v.ctl.Tick()
}

func (v *viewer) draw() {
	v.loadFont()
	st := v.ctl.State()
	v.scn.Draw(st, v.ctl.SpotlightTarget())
	v.overlay.Draw(st, v.ctl.Paused())
	v.term.Draw()
}

// loadFont needs a live window, so it runs on the first frame.
func (v *viewer) loadFont() {
	if v.fontTried {
		return
	}
	v.fontTried = true
	path, ok := fonts.First(fonts.BaseDirs()...)
	if !ok {
		return
	}
	v.font = rl.LoadFont(path)
	if v.font.Texture.ID == 0 {
		v.log.Logf("font %s failed to load, using default", path)
		return
	}
	v.overlay.SetFont(v.font)
	v.term.SetFont(v.font)
}

func (v *viewer) close() {
	if v.watcher != nil {
		_ = v.watcher.Close()
	}
	if v.font.Texture.ID != 0 {
		rl.UnloadFont(v.font)
	}
	v.scn.Close()
}
