package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/earthview/internal/engine/geometry"
)

// meshBuffer is an indexed triangle mesh on the GPU.
type meshBuffer struct {
	vao, vbo, ebo uint32
	count         int32
}

// mesh returns the GPU buffers for m, uploading them on first use.
func (r *Renderer) mesh(m *geometry.Mesh) *meshBuffer {
	if mb, ok := r.meshes[m]; ok {
		return mb
	}
	mb := newMeshBuffer(m)
	r.meshes[m] = mb
	return mb
}

func newMeshBuffer(m *geometry.Mesh) *meshBuffer {
	mb := &meshBuffer{count: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// UV
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return mb
}

func (mb *meshBuffer) draw() {
	gl.BindVertexArray(mb.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, mb.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (mb *meshBuffer) delete() {
	gl.DeleteVertexArrays(1, &mb.vao)
	gl.DeleteBuffers(1, &mb.vbo)
	gl.DeleteBuffers(1, &mb.ebo)
}

// pointBuffer is an unindexed point cloud on the GPU.
type pointBuffer struct {
	vao, vbo uint32
	count    int32
}

func newPointBuffer(positions []float32) *pointBuffer {
	pb := &pointBuffer{count: int32(len(positions) / 3)}
	if pb.count == 0 {
		return pb
	}

	gl.GenVertexArrays(1, &pb.vao)
	gl.BindVertexArray(pb.vao)

	gl.GenBuffers(1, &pb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, pb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return pb
}

func (pb *pointBuffer) draw() {
	if pb.count == 0 {
		return
	}
	gl.BindVertexArray(pb.vao)
	gl.DrawArrays(gl.POINTS, 0, pb.count)
	gl.BindVertexArray(0)
}

func (pb *pointBuffer) delete() {
	if pb.vao != 0 {
		gl.DeleteVertexArrays(1, &pb.vao)
		gl.DeleteBuffers(1, &pb.vbo)
	}
}
