package openglhelper

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// VertexLayout describes interleaved float vertex data, measured in floats
type VertexLayout struct {
	Stride         int // floats per vertex
	PositionOffset int // offset of the xyz position inside a vertex
}

// PositionOnly is the layout of tightly packed xyz positions
var PositionOnly = VertexLayout{Stride: 3, PositionOffset: 0}

// Mesh represents geometry uploaded to the GPU, optionally indexed
type Mesh struct {
	vao         *VertexArrayObject
	vbo         *BufferObject
	ebo         *BufferObject
	vertexCount int32
	indexCount  int32
}

// NewMesh uploads vertices (and indices, if any) and binds the position
// attribute to positionLocation. Without indices the mesh draws vertices in order.
func NewMesh(vertices []float32, indices []uint32, layout VertexLayout, positionLocation uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)

	var ebo *BufferObject
	if len(indices) > 0 {
		ebo = NewEBO(indices, StaticDraw)
	}

	vao.SetVertexAttribPointer(positionLocation, 3, gl.FLOAT, false, int32(layout.Stride*4), layout.PositionOffset*4)

	vao.Unbind()

	return &Mesh{
		vao:         vao,
		vbo:         vbo,
		ebo:         ebo,
		vertexCount: int32(len(vertices) / layout.Stride),
		indexCount:  int32(len(indices)),
	}
}

// Draw renders the mesh as triangles with the currently active shader
func (m *Mesh) Draw() {
	m.vao.Bind()
	if m.ebo != nil {
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	if m.ebo != nil {
		m.ebo.Delete()
	}
}

// SetWireframe switches polygon rasterisation between lines and filled faces
func SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}
