// Package geometry holds the vertex data and camera transforms drawn by
// the tutorials.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// Mesh is a non-indexed triangle list. Positions and Colors hold three
// floats per vertex; Colors may be nil.
type Mesh struct {
	Positions []float32
	Colors    []float32
}

// VertexCount is the number of vertices in the mesh.
func (m Mesh) VertexCount() int { return len(m.Positions) / 3 }

// Empty reports whether there is anything to draw.
func (m Mesh) Empty() bool { return len(m.Positions) == 0 }

// Triangle covers the lower corners and top centre of clip space.
func Triangle() Mesh {
	return Mesh{Positions: []float32{
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	}}
}

// Cube is a 2x2x2 cube around the origin: 6 faces, 2 triangles each, with
// one colour per vertex.
func Cube() Mesh {
	return Mesh{
		Positions: append([]float32(nil), cubePositions...),
		Colors:    append([]float32(nil), cubeColors...),
	}
}

var cubePositions = []float32{
	-1, -1, -1,
	-1, -1, 1,
	-1, 1, 1,
	1, 1, -1,
	-1, -1, -1,
	-1, 1, -1,
	1, -1, 1,
	-1, -1, -1,
	1, -1, -1,
	1, 1, -1,
	1, -1, -1,
	-1, -1, -1,
	-1, -1, -1,
	-1, 1, 1,
	-1, 1, -1,
	1, -1, 1,
	-1, -1, 1,
	-1, -1, -1,
	-1, 1, 1,
	-1, -1, 1,
	1, -1, 1,
	1, 1, 1,
	1, -1, -1,
	1, 1, -1,
	1, -1, -1,
	1, 1, 1,
	1, -1, 1,
	1, 1, 1,
	1, 1, -1,
	-1, 1, -1,
	1, 1, 1,
	-1, 1, -1,
	-1, 1, 1,
	1, 1, 1,
	-1, 1, 1,
	1, -1, 1,
}

// one colour per vertex, picked at random
var cubeColors = []float32{
	0.583, 0.771, 0.014,
	0.609, 0.115, 0.436,
	0.327, 0.483, 0.844,
	0.822, 0.569, 0.201,
	0.435, 0.602, 0.223,
	0.310, 0.747, 0.185,
	0.597, 0.770, 0.761,
	0.559, 0.436, 0.730,
	0.359, 0.583, 0.152,
	0.483, 0.596, 0.789,
	0.559, 0.861, 0.639,
	0.195, 0.548, 0.859,
	0.014, 0.184, 0.576,
	0.771, 0.328, 0.970,
	0.406, 0.615, 0.116,
	0.676, 0.977, 0.133,
	0.971, 0.572, 0.833,
	0.140, 0.616, 0.489,
	0.997, 0.513, 0.064,
	0.945, 0.719, 0.592,
	0.543, 0.021, 0.978,
	0.279, 0.317, 0.505,
	0.167, 0.620, 0.077,
	0.347, 0.857, 0.137,
	0.055, 0.953, 0.042,
	0.714, 0.505, 0.345,
	0.783, 0.290, 0.734,
	0.722, 0.645, 0.174,
	0.302, 0.455, 0.848,
	0.225, 0.587, 0.040,
	0.517, 0.713, 0.338,
	0.053, 0.959, 0.120,
	0.393, 0.621, 0.362,
	0.673, 0.211, 0.457,
	0.820, 0.883, 0.371,
	0.982, 0.099, 0.879,
}

// Camera is a perspective camera looking from Eye towards Center.
type Camera struct {
	FovY      float32 // degrees
	Aspect    float32
	Near, Far float32
	Eye       mgl32.Vec3
	Center    mgl32.Vec3
	Up        mgl32.Vec3
}

// DefaultCamera sits at (4,3,3) looking at the origin with a 45 degree
// field of view and a 4:3 aspect ratio.
func DefaultCamera() Camera {
	return Camera{
		FovY:   45,
		Aspect: 4.0 / 3.0,
		Near:   0.1,
		Far:    100,
		Eye:    mgl32.Vec3{4, 3, 3},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

// MVP returns projection * view * model.
func (c Camera) MVP(model mgl32.Mat4) mgl32.Mat4 {
	return c.Projection().Mul4(c.View()).Mul4(model)
}
