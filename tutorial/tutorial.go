// Package tutorial describes what each numbered tutorial sets up and draws.
package tutorial

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gltutorials/geometry"
)

// MVPUniform is the uniform the transform shaders read the matrix from.
const MVPUniform = "MVP"

// Tutorial is one step of the series.
type Tutorial struct {
	Number int
	Title  string

	// VertexShader and FragmentShader are file names relative to the shader
	// directory. Both are empty when the tutorial draws nothing.
	VertexShader   string
	FragmentShader string

	ClearColor [4]float32
	DepthTest  bool
	Mesh       geometry.Mesh

	// Transform sends Camera.MVP(Model) to MVPUniform.
	Transform bool
	Camera    geometry.Camera
	Model     mgl32.Mat4
}

var darkBlue = [4]float32{0, 0, 0.4, 0}

var tutorials = []Tutorial{
	{
		Number: 1,
		Title:  "Tutorial 01",
	},
	{
		Number:         2,
		Title:          "Tutorial 02 - Red triangle",
		VertexShader:   "simple-vertex.glsl",
		FragmentShader: "simple-fragment.glsl",
		ClearColor:     darkBlue,
		Mesh:           geometry.Triangle(),
	},
	{
		Number:         3,
		Title:          "Tutorial 03 - Matrices",
		VertexShader:   "simple-transform.glsl",
		FragmentShader: "single-colour.glsl",
		ClearColor:     darkBlue,
		Mesh:           geometry.Triangle(),
		Transform:      true,
		Camera:         geometry.DefaultCamera(),
		Model:          mgl32.Ident4(),
	},
	{
		Number:         4,
		Title:          "Tutorial 04 - Colored Cube",
		VertexShader:   "transform-vertex.glsl",
		FragmentShader: "color-fragment.glsl",
		ClearColor:     darkBlue,
		DepthTest:      true,
		Mesh:           geometry.Cube(),
		Transform:      true,
		Camera:         geometry.DefaultCamera(),
		Model:          mgl32.Ident4(),
	},
}

// All returns every tutorial in order.
func All() []Tutorial {
	out := make([]Tutorial, len(tutorials))
	copy(out, tutorials)
	return out
}

// Lookup returns the tutorial with the given number.
func Lookup(n int) (Tutorial, error) {
	for _, t := range tutorials {
		if t.Number == n {
			return t, nil
		}
	}
	return Tutorial{}, fmt.Errorf("no tutorial %d (have 1-%d)", n, len(tutorials))
}

// HasProgram reports whether the tutorial needs a shader program.
func (t Tutorial) HasProgram() bool {
	return t.VertexShader != "" && t.FragmentShader != ""
}

// ShaderPaths resolves the shader files against dir. Non-empty overrides
// replace the tutorial's own files and are used as given.
func (t Tutorial) ShaderPaths(dir, vertexOverride, fragmentOverride string) (vertex, fragment string) {
	vertex = vertexOverride
	if vertex == "" {
		vertex = filepath.Join(dir, t.VertexShader)
	}
	fragment = fragmentOverride
	if fragment == "" {
		fragment = filepath.Join(dir, t.FragmentShader)
	}
	return vertex, fragment
}

// MVP is the matrix sent to MVPUniform each frame.
func (t Tutorial) MVP() mgl32.Mat4 {
	return t.Camera.MVP(t.Model)
}
