package main

import (
	"errors"
	"flag"
	"fmt"

	"museum-viewer/internal/commands"
	"museum-viewer/internal/config"
	"museum-viewer/internal/controller"
	"museum-viewer/internal/graphics"
)

var errShowHide = errors.New("use --show or --hide")

func (v *viewer) registerCommands(reg *commands.Registry) {
	reg.Register("help", "list commands", func(fs *flag.FlagSet) func([]string) error {
		return func([]string) error {
			for _, line := range reg.Help() {
				v.log.Log(line)
			}
			return nil
		}
	})

	reg.Register("painting", "--next | --index N (1-based)", func(fs *flag.FlagSet) func([]string) error {
		next := fs.Bool("next", false, "show the next painting")
		index := fs.Int("index", 0, "show painting N")
		return func([]string) error {
			switch {
			case *next:
				v.ctl.Click()
			case *index > 0:
				if err := v.ctl.SetPainting(*index - 1); err != nil {
					return err
				}
			default:
				return errors.New("painting: use --next or --index N")
			}
			p := v.ctl.State().Painting
			v.log.Logf("painting %d/%d", p.Index+1, p.Count)
			return nil
		}
	})

	reg.Register("zoom", "--in | --out [--steps N]", func(fs *flag.FlagSet) func([]string) error {
		in := fs.Bool("in", false, "move toward the painting")
		out := fs.Bool("out", false, "move away from the painting")
		steps := fs.Int("steps", 1, "number of wheel steps")
		return func([]string) error {
			var dy float32
			switch {
			case *in && !*out:
				dy = -1
			case *out && !*in:
				dy = 1
			default:
				return errors.New("zoom: use --in or --out")
			}
			for range max(*steps, 1) {
				v.ctl.Scroll(dy)
			}
			return v.logCamera()
		}
	})

	reg.Register("pan", "--dir up|down|left|right [--steps N]", func(fs *flag.FlagSet) func([]string) error {
		dir := fs.String("dir", "", "arrow direction")
		steps := fs.Int("steps", 1, "number of key presses")
		return func(args []string) error {
			name := *dir
			if name == "" && len(args) > 0 {
				name = args[0]
			}
			k := controller.ParseKey(name)
			if k == controller.KeyNone {
				return fmt.Errorf("pan: unknown direction %q", name)
			}
			for range max(*steps, 1) {
				v.ctl.KeyDown(k)
			}
			return v.logCamera()
		}
	})

	reg.Register("reset", "restore the initial camera, painting and animation", func(fs *flag.FlagSet) func([]string) error {
		return func([]string) error {
			v.ctl.Reset()
			return v.logCamera()
		}
	})

	reg.Register("pause", "toggle statue and spotlight animation", func(fs *flag.FlagSet) func([]string) error {
		return func([]string) error {
			v.ctl.SetPaused(!v.ctl.Paused())
			if v.ctl.Paused() {
				v.log.Log("animation paused")
			} else {
				v.log.Log("animation resumed")
			}
			return nil
		}
	})

	reg.Register("reload", "re-read the layout file", func(fs *flag.FlagSet) func([]string) error {
		return func([]string) error {
			return v.reload()
		}
	})

	reg.Register("fps", "--show | --hide", v.toggle("fps", &v.overlay.ShowFPS, &v.prefs.ShowFPS))
	reg.Register("memalloc", "--show | --hide", v.toggle("memalloc", &v.overlay.ShowMemAlloc, &v.prefs.ShowMemAlloc))
	reg.Register("hud", "--show | --hide", v.toggle("hud", &v.overlay.ShowHUD, &v.prefs.ShowHUD))

	reg.Register("fullscreen", "toggle fullscreen", func(fs *flag.FlagSet) func([]string) error {
		return func([]string) error {
			graphics.ToggleFullscreen()
			v.prefs.Fullscreen = !v.prefs.Fullscreen
			return v.savePrefs()
		}
	})
}

// toggle builds a --show/--hide command that flips an overlay flag and persists it.
func (v *viewer) toggle(name string, live, saved *bool) commands.Setup {
	return func(fs *flag.FlagSet) func([]string) error {
		show := fs.Bool("show", false, "show "+name)
		hide := fs.Bool("hide", false, "hide "+name)
		return func([]string) error {
			if *show == *hide {
				return fmt.Errorf("%s: %w", name, errShowHide)
			}
			*live, *saved = *show, *show
			return v.savePrefs()
		}
	}
}

func (v *viewer) savePrefs() error {
	return config.SavePrefs(v.prefsPath, v.prefs)
}

func (v *viewer) logCamera() error {
	c := v.ctl.State().Camera
	v.log.Logf("camera %.2f, %.2f, %.2f", c[0], c[1], c[2])
	return nil
}
