package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangle(t *testing.T) {
	m := Triangle()
	assert.Equal(t, 3, m.VertexCount())
	assert.Nil(t, m.Colors)
	assert.False(t, m.Empty())
	assert.True(t, Mesh{}.Empty())
}

func TestCube(t *testing.T) {
	m := Cube()
	require.Equal(t, 12*3, m.VertexCount())
	require.Len(t, m.Colors, len(m.Positions))

	for i, v := range m.Positions {
		assert.Contains(t, []float32{-1, 1}, v, "position %d", i)
	}
	for i, c := range m.Colors {
		assert.True(t, c >= 0 && c <= 1, "colour %d out of range: %v", i, c)
	}

	// every corner of the cube is used
	corners := make(map[[3]float32]bool)
	for i := 0; i < len(m.Positions); i += 3 {
		corners[[3]float32{m.Positions[i], m.Positions[i+1], m.Positions[i+2]}] = true
	}
	assert.Len(t, corners, 8)

	// callers get their own copy
	m.Positions[0] = 42
	assert.Equal(t, float32(-1), Cube().Positions[0])
}

func project(mvp mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	clip := mvp.Mul4x1(p.Vec4(1))
	return clip.Vec3().Mul(1 / clip.W())
}

func TestDefaultCameraMVP(t *testing.T) {
	cam := DefaultCamera()
	mvp := cam.MVP(mgl32.Ident4())

	want := cam.Projection().Mul4(cam.View())
	assert.True(t, mvp.ApproxEqualThreshold(want, 1e-6))

	// the camera looks at the origin, so it lands in the centre of the screen
	origin := project(mvp, mgl32.Vec3{})
	assert.InDelta(t, 0, origin.X(), 1e-5)
	assert.InDelta(t, 0, origin.Y(), 1e-5)
	assert.True(t, origin.Z() > -1 && origin.Z() < 1)

	// the whole cube is in front of the near plane and inside the frustum
	cube := Cube()
	for i := 0; i < len(cube.Positions); i += 3 {
		p := project(mvp, mgl32.Vec3{cube.Positions[i], cube.Positions[i+1], cube.Positions[i+2]})
		assert.True(t, p.X() > -1 && p.X() < 1, "x out of frustum: %v", p)
		assert.True(t, p.Y() > -1 && p.Y() < 1, "y out of frustum: %v", p)
	}
}

func TestModelTransformApplied(t *testing.T) {
	cam := DefaultCamera()
	moved := cam.MVP(mgl32.Translate3D(1, 0, 0))
	p := project(moved, mgl32.Vec3{-1, 0, 0})
	o := project(cam.MVP(mgl32.Ident4()), mgl32.Vec3{})
	assert.InDelta(t, o.X(), p.X(), 1e-5)
	assert.InDelta(t, o.Y(), p.Y(), 1e-5)
}
