// Package mesh holds triangle meshes, the OBJ loader that produces them,
// and the interleaved vertex formats they are uploaded as.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNoMeshes is returned when a model file contains no faces.
	ErrNoMeshes = errors.New("mesh: model has no meshes")
	// ErrMissingAttribute is returned when a vertex format needs data the
	// mesh does not carry.
	ErrMissingAttribute = errors.New("mesh: missing vertex attribute")
)

// Mesh is an indexed triangle list. Normals and TextureCoordinates are
// either empty or parallel to Vertices.
type Mesh struct {
	Name               string
	Vertices           []mgl32.Vec3
	Normals            []mgl32.Vec3
	TextureCoordinates []mgl32.Vec2
	Indices            []uint32
}

// Model is an ordered collection of meshes loaded from one file.
type Model struct {
	Meshes []*Mesh
}

// HasNormals reports whether every vertex has a normal.
func (m *Mesh) HasNormals() bool {
	return len(m.Vertices) > 0 && len(m.Normals) == len(m.Vertices)
}

// HasTextureCoordinates reports whether every vertex has texture coordinates.
func (m *Mesh) HasTextureCoordinates() bool {
	return len(m.Vertices) > 0 && len(m.TextureCoordinates) == len(m.Vertices)
}

// PositionTextureVertices interleaves positions and texture coordinates.
func (m *Mesh) PositionTextureVertices() ([]VertexPositionTexture, error) {
	if !m.HasTextureCoordinates() {
		return nil, fmt.Errorf("%w: %q has no texture coordinates", ErrMissingAttribute, m.Name)
	}

	vertices := make([]VertexPositionTexture, 0, len(m.Vertices))
	for i, position := range m.Vertices {
		vertices = append(vertices, VertexPositionTexture{
			Position:           position.Vec4(1),
			TextureCoordinates: m.TextureCoordinates[i],
		})
	}
	return vertices, nil
}

// PositionTextureNormalVertices interleaves positions, texture coordinates
// and normals.
func (m *Mesh) PositionTextureNormalVertices() ([]VertexPositionTextureNormal, error) {
	if !m.HasTextureCoordinates() {
		return nil, fmt.Errorf("%w: %q has no texture coordinates", ErrMissingAttribute, m.Name)
	}
	if !m.HasNormals() {
		return nil, fmt.Errorf("%w: %q has no normals", ErrMissingAttribute, m.Name)
	}

	vertices := make([]VertexPositionTextureNormal, 0, len(m.Vertices))
	for i, position := range m.Vertices {
		vertices = append(vertices, VertexPositionTextureNormal{
			Position:           position.Vec4(1),
			TextureCoordinates: m.TextureCoordinates[i],
			Normal:             m.Normals[i],
		})
	}
	return vertices, nil
}

// PositionColorVertices pairs every position with one color.
func (m *Mesh) PositionColorVertices(color mgl32.Vec4) []VertexPositionColor {
	vertices := make([]VertexPositionColor, 0, len(m.Vertices))
	for _, position := range m.Vertices {
		vertices = append(vertices, VertexPositionColor{
			Position: position.Vec4(1),
			Color:    color,
		})
	}
	return vertices
}

// First returns the model's first mesh.
func (m *Model) First() (*Mesh, error) {
	if len(m.Meshes) == 0 {
		return nil, ErrNoMeshes
	}
	return m.Meshes[0], nil
}
