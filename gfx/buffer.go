package gfx

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/plus3/glsamples/mesh"
)

// VertexArray is a VAO with its vertex and index buffers.
type VertexArray struct {
	vao, vbo, ibo uint32
	count         int32
}

// NewVertexArray uploads interleaved vertices described by layout and
// 32-bit triangle indices.
func NewVertexArray[V any](vertices []V, layout mesh.Layout, indices []uint32) *VertexArray {
	va := &VertexArray{count: int32(len(indices))}

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	va.vbo = createBuffer(gl.ARRAY_BUFFER, vertices)
	for _, attr := range layout.Attributes {
		gl.VertexAttribPointer(attr.Location, attr.Components, gl.FLOAT, false, layout.Stride, gl.PtrOffset(int(attr.Offset)))
		gl.EnableVertexAttribArray(attr.Location)
	}

	va.ibo = createBuffer(gl.ELEMENT_ARRAY_BUFFER, indices)

	gl.BindVertexArray(0)
	return va
}

func createBuffer[T any](target uint32, data []T) uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	gl.BindBuffer(target, buffer)
	if len(data) > 0 {
		size := len(data) * int(unsafe.Sizeof(data[0]))
		gl.BufferData(target, size, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	}
	return buffer
}

// IndexCount returns the number of indices drawn.
func (va *VertexArray) IndexCount() int32 { return va.count }

// Draw binds the VAO and draws its triangles.
func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.vao)
	gl.DrawElements(gl.TRIANGLES, va.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the VAO and both buffers.
func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.vao)
	gl.DeleteBuffers(1, &va.vbo)
	gl.DeleteBuffers(1, &va.ibo)
	va.vao, va.vbo, va.ibo = 0, 0, 0
}
