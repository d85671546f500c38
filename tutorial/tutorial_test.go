package tutorial

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shaderDir = "../assets/shaders"

func TestLookup(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		tut, err := Lookup(n)
		require.NoError(t, err)
		assert.Equal(t, n, tut.Number)
		assert.True(t, strings.HasPrefix(tut.Title, "Tutorial 0"))
	}

	_, err := Lookup(5)
	assert.ErrorContains(t, err, "no tutorial 5")
	_, err = Lookup(0)
	assert.Error(t, err)
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	all[0].Title = "changed"
	tut, err := Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "Tutorial 01", tut.Title)
}

func TestShaderFilesExist(t *testing.T) {
	for _, tut := range All() {
		if !tut.HasProgram() {
			assert.True(t, tut.Mesh.Empty(), "tutorial %d draws without a program", tut.Number)
			continue
		}
		vertex, fragment := tut.ShaderPaths(shaderDir, "", "")
		for _, path := range []string{vertex, fragment} {
			data, err := os.ReadFile(path)
			require.NoError(t, err, "tutorial %d", tut.Number)
			assert.Contains(t, string(data), "#version 330 core")
		}
		if tut.Transform {
			data, err := os.ReadFile(vertex)
			require.NoError(t, err)
			assert.Contains(t, string(data), "uniform mat4 "+MVPUniform)
		}
	}
}

func TestShaderPathOverrides(t *testing.T) {
	tut, err := Lookup(2)
	require.NoError(t, err)

	v, f := tut.ShaderPaths("shaders", "", "")
	assert.Equal(t, filepath.Join("shaders", "simple-vertex.glsl"), v)
	assert.Equal(t, filepath.Join("shaders", "simple-fragment.glsl"), f)

	v, f = tut.ShaderPaths("shaders", "/tmp/mine.vert", "")
	assert.Equal(t, "/tmp/mine.vert", v)
	assert.Equal(t, filepath.Join("shaders", "simple-fragment.glsl"), f)
}

func TestCubeTutorial(t *testing.T) {
	tut, err := Lookup(4)
	require.NoError(t, err)
	assert.True(t, tut.DepthTest)
	assert.Equal(t, 36, tut.Mesh.VertexCount())
	assert.Len(t, tut.Mesh.Colors, 36*3)
	assert.Equal(t, [4]float32{0, 0, 0.4, 0}, tut.ClearColor)
	assert.True(t, tut.MVP().ApproxEqualThreshold(tut.Camera.Projection().Mul4(tut.Camera.View()), 1e-6))
	assert.Equal(t, mgl32.Ident4(), tut.Model)
}
