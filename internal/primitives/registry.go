package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind names a unit primitive mesh.
type Kind string

const (
	Cylinder Kind = "cylinder"
	Plane    Kind = "plane"
)

const defaultCylinderSlices = 32

// Transform places a unit primitive in the world. Rotation is Euler XYZ in radians.
// A zero Scale component is treated as 1.
type Transform struct {
	Position [3]float32
	Scale    [3]float32
	Rotation [3]float32
}

// Light is a point light with linear falloff to zero at Distance (0 = no falloff).
type Light struct {
	Position  [3]float32
	Color     [3]float32
	Intensity float32
	Distance  float32
}

// Spot is a cone light aimed at Target with half-angle Angle (radians).
type Spot struct {
	Light
	Target [3]float32
	Angle  float32
}

type cached struct {
	mesh   rl.Mesh
	mtl    rl.Material
	offset [3]float32 // model-space shift so the mesh is centered on its position
}

// Registry owns one mesh per Kind and a shared textured, lit material. Meshes are created
// on first draw so GPU resources are only allocated once the window exists.
type Registry struct {
	cache   map[Kind]*cached
	shader  rl.Shader
	viewPos [3]float32
	point   Light
	spot    Spot
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[Kind]*cached)}
}

// SetView sets the camera position used for specular highlights this frame.
func (r *Registry) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

// SetLights sets the point light and the spotlight for this frame.
func (r *Registry) SetLights(point Light, spot Spot) {
	r.point = point
	r.spot = spot
}

func (r *Registry) ensure(kind Kind) *cached {
	if c, ok := r.cache[kind]; ok {
		return c
	}
	if !rl.IsShaderValid(r.shader) {
		r.shader = rl.LoadShaderFromMemory(litVS, litTexturedFS)
	}
	c := &cached{}
	switch kind {
	case Cylinder:
		// raylib cylinders span Y=0..height; shift down by half so position is the center.
		c.mesh = rl.GenMeshCylinder(0.5, 1, defaultCylinderSlices)
		c.offset = [3]float32{0, -0.5, 0}
	case Plane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return nil
	}
	c.mtl = rl.LoadMaterialDefault()
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if rl.IsShaderValid(r.shader) {
		c.mtl.Shader = r.shader
	}
	r.cache[kind] = c
	return c
}

// Matrix returns the model matrix: center offset, scale, rotation, then translation.
func (t Transform) Matrix(offset [3]float32) rl.Matrix {
	sx, sy, sz := t.Scale[0], t.Scale[1], t.Scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	m := rl.MatrixTranslate(offset[0], offset[1], offset[2])
	m = rl.MatrixMultiply(m, rl.MatrixScale(sx, sy, sz))
	if t.Rotation != [3]float32{} {
		m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(rl.NewVector3(t.Rotation[0], t.Rotation[1], t.Rotation[2])))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(t.Position[0], t.Position[1], t.Position[2]))
}

// DrawTextured draws kind with tex as albedo. Must be called between BeginMode3D and
// EndMode3D, after SetView and SetLights. An invalid texture draws plain white.
func (r *Registry) DrawTextured(kind Kind, t Transform, tex rl.Texture2D) {
	c := r.ensure(kind)
	if c == nil {
		return
	}
	if rl.IsTextureValid(tex) {
		rl.SetMaterialTexture(&c.mtl, rl.MapAlbedo, tex)
	}
	r.setUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, t.Matrix(c.offset))
}

// Unload frees every cached mesh and the shared shader.
func (r *Registry) Unload() {
	for kind, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, kind)
	}
	if rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
		r.shader = rl.Shader{}
	}
}

// spotDirection returns the unit vector from the spotlight to its target.
func spotDirection(s Spot) [3]float32 {
	d := [3]float32{s.Target[0] - s.Position[0], s.Target[1] - s.Position[1], s.Target[2] - s.Position[2]}
	l := math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if l == 0 {
		return [3]float32{0, -1, 0}
	}
	return [3]float32{d[0] / l, d[1] / l, d[2] / l}
}

func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	setVec3 := func(name string, v [3]float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec3, 1)
		}
	}
	setFloat := func(name string, v float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	setVec3("viewPos", r.viewPos)
	setVec3("ambient", defaultAmbient)
	setVec3("pointPos", r.point.Position)
	setVec3("pointColor", scaled(r.point.Color, r.point.Intensity))
	setFloat("pointRange", r.point.Distance)
	setVec3("spotPos", r.spot.Position)
	setVec3("spotDir", spotDirection(r.spot))
	setVec3("spotColor", scaled(r.spot.Color, r.spot.Intensity))
	setFloat("spotRange", r.spot.Distance)
	setFloat("spotCutoff", math32.Cos(r.spot.Angle))
	setFloat("spotOuter", math32.Cos(r.spot.Angle*spotPenumbra))
}

func scaled(c [3]float32, k float32) [3]float32 {
	return [3]float32{c[0] * k, c[1] * k, c[2] * k}
}
