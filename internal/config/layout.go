package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LayoutPath is the default museum layout file, relative to the working directory.
const LayoutPath = "config/museum.yaml"

// ErrInvalidLayout is returned (wrapped) when a layout parses but cannot be used.
var ErrInvalidLayout = errors.New("invalid layout")

// Range is a min/max pair as written in the layout file.
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Controls are the input and animation constants. Field names match controller.Settings
// so Layout.Settings can copy them across.
type Controls struct {
	ZoomSpeed           float32 `yaml:"zoom_speed"`
	Zoom                Range   `yaml:"zoom"`
	CameraSpeed         float32 `yaml:"camera_speed"`
	PanX                Range   `yaml:"pan_x"`
	PanZ                Range   `yaml:"pan_z"`
	Height              Range   `yaml:"height"`
	StatueSpin          float32 `yaml:"statue_spin"`
	StatueSwayStep      float32 `yaml:"statue_sway_step"`
	StatueSwayAmplitude float32 `yaml:"statue_sway_amplitude"`
	SpotlightStep       float32 `yaml:"spotlight_step"`
	SpotlightRadius     float32 `yaml:"spotlight_radius"`
}

type CameraSpec struct {
	Position [3]float32 `yaml:"position"`
	Fovy     float32    `yaml:"fovy"`
}

// RoomSpec is the box the viewer stands in, centered on the origin.
type RoomSpec struct {
	Size    [3]float32 `yaml:"size"`
	Wall    string     `yaml:"wall"`
	Ceiling string     `yaml:"ceiling"`
	Floor   string     `yaml:"floor"`
}

type StatueSpec struct {
	Position [3]float32 `yaml:"position"`
	Radius   float32    `yaml:"radius"`
	Height   float32    `yaml:"height"`
	Texture  string     `yaml:"texture"`
}

// PaintingSpec is the wall painting. Textures is the click cycle, in order.
type PaintingSpec struct {
	Position [3]float32 `yaml:"position"`
	Size     [2]float32 `yaml:"size"`
	Textures []string   `yaml:"textures"`
}

type LightSpec struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Distance  float32    `yaml:"distance"`
	Angle     float32    `yaml:"angle,omitempty"` // spotlight cone half-angle in radians
}

// Layout is the whole museum room description loaded from config/museum.yaml.
type Layout struct {
	AssetDir       string       `yaml:"asset_dir"`
	MaxTextureSize int          `yaml:"max_texture_size"`
	Controls       Controls     `yaml:"controls"`
	Camera         CameraSpec   `yaml:"camera"`
	Room           RoomSpec     `yaml:"room"`
	Statue         StatueSpec   `yaml:"statue"`
	Painting       PaintingSpec `yaml:"painting"`
	Spotlight      LightSpec    `yaml:"spotlight"`
	PointLight     LightSpec    `yaml:"point_light"`
}

// DefaultLayout returns the stock room: a 10x5x10 box, a 4-high statue at the center,
// nine paintings on the front wall and a spotlight orbiting at radius 4.
func DefaultLayout() Layout {
	return Layout{
		AssetDir:       "texture",
		MaxTextureSize: 2048,
		Controls: Controls{
			ZoomSpeed:           0.1,
			Zoom:                Range{Min: 3, Max: 6},
			CameraSpeed:         0.1,
			PanX:                Range{Min: -4, Max: 4},
			PanZ:                Range{Min: -4, Max: 4},
			Height:              Range{Min: 1, Max: 5},
			StatueSpin:          0.005,
			StatueSwayStep:      0.02,
			StatueSwayAmplitude: 0.2,
			SpotlightStep:       0.01,
			SpotlightRadius:     4,
		},
		Camera: CameraSpec{Position: [3]float32{0, 2, 5}, Fovy: 75},
		Room: RoomSpec{
			Size:    [3]float32{10, 5, 10},
			Wall:    "sidewall.jpg",
			Ceiling: "room-ceiling.jpg",
			Floor:   "floortiles.jpg",
		},
		Statue: StatueSpec{
			Position: [3]float32{0, 1.5, 0},
			Radius:   0.5,
			Height:   4,
			Texture:  "statue4.png",
		},
		Painting: PaintingSpec{
			Position: [3]float32{-4, 0.75, -4.9},
			Size:     [2]float32{1.5, 2.2},
			Textures: []string{
				"painting.jpg", "painting2.png", "painting3.jpg",
				"painting4.jpg", "painting5.jpg", "painting6.jpg",
				"painting7.jpg", "painting8.jpg", "painting9.jpg",
			},
		},
		Spotlight: LightSpec{
			Position:  [3]float32{2, 3, 2},
			Color:     [3]float32{1, 1, 1},
			Intensity: 1,
			Distance:  10,
			Angle:     1.0472,
		},
		PointLight: LightSpec{
			Position:  [3]float32{0, 5, 5},
			Color:     [3]float32{1, 1, 1},
			Intensity: 1,
			Distance:  10,
		},
	}
}

// LoadLayout reads the layout at path on top of DefaultLayout, so a file only needs the
// keys it changes. A missing file yields the defaults; a malformed or invalid one is an error.
func LoadLayout(path string) (Layout, error) {
	l := DefaultLayout()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return Layout{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return l, nil
}

// Validate checks the parts of the layout the controller does not: room and statue sizes,
// and that every texture slot names a file.
func (l Layout) Validate() error {
	if len(l.Painting.Textures) == 0 {
		return fmt.Errorf("%w: painting needs at least one texture", ErrInvalidLayout)
	}
	for i, name := range l.Painting.Textures {
		if name == "" {
			return fmt.Errorf("%w: painting texture %d is empty", ErrInvalidLayout, i)
		}
	}
	for _, s := range l.Room.Size {
		if s <= 0 {
			return fmt.Errorf("%w: room size %v must be positive", ErrInvalidLayout, l.Room.Size)
		}
	}
	if l.Statue.Radius <= 0 || l.Statue.Height <= 0 {
		return fmt.Errorf("%w: statue radius and height must be positive", ErrInvalidLayout)
	}
	if l.Room.Wall == "" || l.Room.Ceiling == "" || l.Room.Floor == "" || l.Statue.Texture == "" {
		return fmt.Errorf("%w: room and statue textures are required", ErrInvalidLayout)
	}
	if l.MaxTextureSize < 0 {
		return fmt.Errorf("%w: max_texture_size must not be negative", ErrInvalidLayout)
	}
	if _, err := l.Settings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return nil
}

// TexturePath joins name onto the asset directory.
func (l Layout) TexturePath(name string) string {
	return filepath.Join(l.AssetDir, name)
}

// TexturePaths returns every texture the room needs: wall, ceiling, floor, statue, then
// the paintings in cycle order.
func (l Layout) TexturePaths() []string {
	out := []string{
		l.TexturePath(l.Room.Wall),
		l.TexturePath(l.Room.Ceiling),
		l.TexturePath(l.Room.Floor),
		l.TexturePath(l.Statue.Texture),
	}
	return append(out, l.PaintingPaths()...)
}

// PaintingPaths returns the full path of every painting texture, in cycle order.
func (l Layout) PaintingPaths() []string {
	out := make([]string, len(l.Painting.Textures))
	for i, name := range l.Painting.Textures {
		out[i] = l.TexturePath(name)
	}
	return out
}
