// Package geometry builds the vertex data for the scene's meshes.
package geometry

import (
	"math"

	gomath "github.com/Faultbox/earthview/pkg/math"
)

// FloatsPerVertex is the interleaved layout: position(3) normal(3) uv(2).
const FloatsPerVertex = 8

// Mesh holds interleaved vertex data and triangle indices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Radius   float32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) gomath.Vec3 {
	o := i * FloatsPerVertex
	return gomath.Vec3{X: m.Vertices[o], Y: m.Vertices[o+1], Z: m.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) gomath.Vec3 {
	o := i*FloatsPerVertex + 3
	return gomath.Vec3{X: m.Vertices[o], Y: m.Vertices[o+1], Z: m.Vertices[o+2]}
}

// UV returns the texture coordinates of vertex i.
func (m *Mesh) UV(i int) (u, v float32) {
	o := i*FloatsPerVertex + 6
	return m.Vertices[o], m.Vertices[o+1]
}

// Sphere generates a UV sphere centred on the origin.
//
// Rows run from the north pole (+Y) to the south pole. Columns wrap once
// around Y starting at -X, so u=0.5 faces +X.
// Degenerate pole triangles are skipped.
func Sphere(radius float32, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	cols := widthSegments + 1
	rows := heightSegments + 1
	m := &Mesh{
		Vertices: make([]float32, 0, cols*rows*FloatsPerVertex),
		Indices:  make([]uint32, 0, widthSegments*heightSegments*6),
		Radius:   radius,
	}

	for iy := 0; iy < rows; iy++ {
		v := float32(iy) / float32(heightSegments)

		// Nudge pole UVs to the middle of their segment.
		uOffset := float32(0)
		if iy == 0 {
			uOffset = 0.5 / float32(widthSegments)
		} else if iy == heightSegments {
			uOffset = -0.5 / float32(widthSegments)
		}

		sinV := math.Sin(float64(v) * math.Pi)
		cosV := math.Cos(float64(v) * math.Pi)

		for ix := 0; ix < cols; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := float64(u) * 2 * math.Pi

			x := float32(-math.Cos(phi) * sinV)
			y := float32(cosV)
			z := float32(math.Sin(phi) * sinV)

			m.Vertices = append(m.Vertices,
				x*radius, y*radius, z*radius,
				x, y, z,
				u+uOffset, 1-v,
			)
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy*cols + ix + 1)
			b := uint32(iy*cols + ix)
			c := uint32((iy+1)*cols + ix)
			d := uint32((iy+1)*cols + ix + 1)

			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}

	return m
}
