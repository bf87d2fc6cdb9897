// Package scene holds the polygon drawn by the demo and the click counter
// that controls how many of its vertices are used.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goshapes/shader"
)

// MinVertices is the vertex count drawn before any click.
const MinVertices = 3

// cycle is the number of distinct polygon sizes clicks step through.
const cycle = 4

type Scene struct {
	Shaders  []shader.Info
	Vertices []mgl32.Vec3
	Colors   []mgl32.Vec4
	Clicks   int
}

// Default returns the six-vertex polygon with the stock shader pair.
func Default() *Scene {
	return &Scene{
		Shaders: []shader.Info{
			{Type: shader.Vertex, Filename: "vertexshader.glsl"},
			{Type: shader.Fragment, Filename: "fragmentshader.glsl"},
		},
		Vertices: []mgl32.Vec3{
			{0.6, 0.4, 0.0},
			{-0.6, 0.6, 0.0},
			{-0.2, -0.2, 0.0},
			{0.8, -0.2, 0.0},
			{0.8, 0.9, 0.0},
			{-0.6, 0.6, 0.0},
		},
		Colors: []mgl32.Vec4{
			{0.0, 0.5, 0.0, 1.0},
			{0.0, 0.5, 1.0, 1.0},
			{1.0, 0.5, 0.5, 1.0},
			{0.5, 1.0, 0.0, 1.0},
			{0.2, 0.6, 0.5, 1.0},
			{0.0, 0.5, 1.0, 1.0},
		},
	}
}

// Click advances the counter by one mouse click.
func (s *Scene) Click() {
	s.Clicks++
}

// VertexCount is the number of vertices to draw for the current click count.
// It cycles 3, 4, 5, 6 and never exceeds the vertex data.
func (s *Scene) VertexCount() int {
	n := MinVertices + s.Clicks%cycle
	if n > len(s.Vertices) {
		n = len(s.Vertices)
	}
	return n
}

// PositionData flattens the vertices for upload, three floats per vertex.
func (s *Scene) PositionData() []float32 {
	data := make([]float32, 0, len(s.Vertices)*3)
	for _, v := range s.Vertices {
		data = append(data, v[:]...)
	}
	return data
}

// ColorData flattens the colours for upload, four floats per vertex.
func (s *Scene) ColorData() []float32 {
	data := make([]float32, 0, len(s.Colors)*4)
	for _, c := range s.Colors {
		data = append(data, c[:]...)
	}
	return data
}
