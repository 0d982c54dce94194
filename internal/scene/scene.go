package scene

import (
	"fmt"
	"image"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"museum-viewer/internal/assets"
	"museum-viewer/internal/config"
	"museum-viewer/internal/controller"
	"museum-viewer/internal/primitives"
)

const halfPi = 1.5707964

// texture is an image decoded on the CPU whose GPU upload waits for the first Draw.
type texture struct {
	img image.Image
	tex rl.Texture2D
}

func (t *texture) upload() {
	if t.img == nil {
		return
	}
	rimg := rl.NewImageFromImage(t.img)
	t.tex = rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	t.img = nil
}

func (t *texture) unload() {
	if rl.IsTextureValid(t.tex) {
		rl.UnloadTexture(t.tex)
	}
	t.tex = rl.Texture2D{}
}

// Scene is the museum room: a textured box, the statue, the painting and two lights.
// Poses and the painting index are not stored here; Draw reads them from controller state.
type Scene struct {
	Camera rl.Camera3D

	layout    config.Layout
	prims     *primitives.Registry
	wall      *texture
	ceiling   *texture
	floor     *texture
	statue    *texture
	paintings []*texture
	pending   bool // decoded images not yet uploaded
}

// New decodes every texture the layout names. Missing files are all reported in one error,
// which should stop the viewer, as should an unreadable one. GPU upload is deferred to the first Draw so New
// can run before the window exists.
func New(layout config.Layout) (*Scene, error) {
	s := &Scene{layout: layout, prims: primitives.NewRegistry()}
	s.Camera.Position = vec3(layout.Camera.Position)
	s.Camera.Target = rl.NewVector3(layout.Camera.Position[0], layout.Camera.Position[1], layout.Camera.Position[2]-1)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = layout.Camera.Fovy
	s.Camera.Projection = rl.CameraPerspective

	if err := assets.CheckAll(layout.TexturePaths()); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	var err error
	load := func(name string) *texture {
		if err != nil {
			return nil
		}
		var img image.Image
		img, err = assets.LoadImage(layout.TexturePath(name), layout.MaxTextureSize)
		return &texture{img: img}
	}
	s.wall = load(layout.Room.Wall)
	s.ceiling = load(layout.Room.Ceiling)
	s.floor = load(layout.Room.Floor)
	s.statue = load(layout.Statue.Texture)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.loadPaintings(layout); err != nil {
		return nil, err
	}
	s.pending = true
	return s, nil
}

func (s *Scene) loadPaintings(layout config.Layout) error {
	paths := layout.PaintingPaths()
	if err := assets.CheckAll(paths); err != nil {
		return fmt.Errorf("scene: paintings: %w", err)
	}
	out := make([]*texture, 0, len(paths))
	for _, p := range paths {
		img, err := assets.LoadImage(p, layout.MaxTextureSize)
		if err != nil {
			return fmt.Errorf("scene: paintings: %w", err)
		}
		out = append(out, &texture{img: img})
	}
	for _, t := range s.paintings {
		t.unload()
	}
	s.paintings = out
	return nil
}

// ApplyLayout takes a reloaded layout. Painting textures are decoded again only when the
// list changed; on error the current paintings stay.
func (s *Scene) ApplyLayout(layout config.Layout) error {
	if !slices.Equal(layout.PaintingPaths(), s.layout.PaintingPaths()) {
		if err := s.loadPaintings(layout); err != nil {
			return err
		}
		s.pending = true
	}
	s.Camera.Fovy = layout.Camera.Fovy
	s.layout = layout
	return nil
}

func (s *Scene) ensureUploaded() {
	if !s.pending {
		return
	}
	s.pending = false
	for _, t := range []*texture{s.wall, s.ceiling, s.floor, s.statue} {
		t.upload()
	}
	for _, t := range s.paintings {
		t.upload()
	}
}

// Draw renders the room for st. The spotlight aims at target, which the caller resolves
// from the statue every frame.
func (s *Scene) Draw(st controller.State, target [3]float32) {
	s.ensureUploaded()

	cam := st.Camera
	s.Camera.Position = vec3(cam)
	s.Camera.Target = rl.NewVector3(cam[0], cam[1], cam[2]-1)

	spot := lightFrom(s.layout.Spotlight)
	spot.Position = st.Spotlight.Position
	s.prims.SetView(cam)
	s.prims.SetLights(lightFrom(s.layout.PointLight), primitives.Spot{
		Light:  spot,
		Target: target,
		Angle:  s.layout.Spotlight.Angle,
	})

	rl.BeginMode3D(s.Camera)
	rl.DisableBackfaceCulling()
	s.drawRoom()
	s.drawStatue(st.Statue)
	s.drawPainting(st.Painting.Index)
	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

// drawRoom draws the six inner faces of the room box from unit planes.
func (s *Scene) drawRoom() {
	w, h, d := s.layout.Room.Size[0], s.layout.Room.Size[1], s.layout.Room.Size[2]
	faces := []struct {
		tex *texture
		t   primitives.Transform
	}{
		{s.floor, primitives.Transform{Position: [3]float32{0, -h / 2, 0}, Scale: [3]float32{w, 1, d}}},
		{s.ceiling, primitives.Transform{Position: [3]float32{0, h / 2, 0}, Scale: [3]float32{w, 1, d}, Rotation: [3]float32{2 * halfPi, 0, 0}}},
		{s.wall, primitives.Transform{Position: [3]float32{0, 0, -d / 2}, Scale: [3]float32{w, 1, h}, Rotation: [3]float32{halfPi, 0, 0}}},
		{s.wall, primitives.Transform{Position: [3]float32{0, 0, d / 2}, Scale: [3]float32{w, 1, h}, Rotation: [3]float32{-halfPi, 0, 0}}},
		{s.wall, primitives.Transform{Position: [3]float32{-w / 2, 0, 0}, Scale: [3]float32{h, 1, d}, Rotation: [3]float32{0, 0, -halfPi}}},
		{s.wall, primitives.Transform{Position: [3]float32{w / 2, 0, 0}, Scale: [3]float32{h, 1, d}, Rotation: [3]float32{0, 0, halfPi}}},
	}
	for _, f := range faces {
		s.prims.DrawTextured(primitives.Plane, f.t, f.tex.tex)
	}
}

func (s *Scene) drawStatue(st controller.Statue) {
	r, h := s.layout.Statue.Radius, s.layout.Statue.Height
	s.prims.DrawTextured(primitives.Cylinder, primitives.Transform{
		Position: st.Position,
		Scale:    [3]float32{2 * r, h, 2 * r},
		Rotation: [3]float32{0, st.RotationY, 0},
	}, s.statue.tex)
}

func (s *Scene) drawPainting(index int) {
	if len(s.paintings) == 0 {
		return
	}
	tex := s.paintings[index%len(s.paintings)]
	size := s.layout.Painting.Size
	s.prims.DrawTextured(primitives.Plane, primitives.Transform{
		Position: s.layout.Painting.Position,
		Scale:    [3]float32{size[0], 1, size[1]},
		Rotation: [3]float32{halfPi, 0, 0},
	}, tex.tex)
}

// Close frees every texture, mesh and shader the scene uploaded.
func (s *Scene) Close() {
	for _, t := range []*texture{s.wall, s.ceiling, s.floor, s.statue} {
		t.unload()
	}
	for _, t := range s.paintings {
		t.unload()
	}
	s.prims.Unload()
}

func lightFrom(spec config.LightSpec) primitives.Light {
	return primitives.Light{Position: spec.Position, Color: spec.Color, Intensity: spec.Intensity, Distance: spec.Distance}
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
