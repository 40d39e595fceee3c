package mesh

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// objIndex references one position / texture coordinate / normal triple of
// a face corner. Missing components are -1.
type objIndex [3]int

type objBuilder struct {
	flipUVs bool

	positions []mgl32.Vec3
	uvs       []mgl32.Vec2
	normals   []mgl32.Vec3

	model   Model
	current *Mesh
	lookup  map[objIndex]uint32
	allUV   bool
	allN    bool
}

// LoadModel reads a Wavefront OBJ file from fsys.
func LoadModel(fsys fs.FS, name string, flipUVs bool) (*Model, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	model, err := LoadOBJ(f, flipUVs)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", name, err)
	}
	return model, nil
}

// LoadOBJ parses Wavefront OBJ geometry. Every "o" or "g" statement that
// follows faces starts a new mesh. Polygons are triangulated as fans and
// identical corners are shared. Material statements are ignored. With
// flipUVs, v texture coordinates are replaced by 1 - v.
func LoadOBJ(r io.Reader, flipUVs bool) (*Model, error) {
	b := &objBuilder{flipUVs: flipUVs}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}

		fields := strings.Fields(text)
		if err := b.statement(fields[0], fields[1:]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	b.finish()
	if len(b.model.Meshes) == 0 {
		return nil, ErrNoMeshes
	}
	return &b.model, nil
}

func (b *objBuilder) statement(keyword string, args []string) error {
	switch keyword {
	case "v":
		v, err := parseFloats(args, 3)
		if err != nil {
			return fmt.Errorf("vertex: %w", err)
		}
		b.positions = append(b.positions, mgl32.Vec3{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(args, 2)
		if err != nil {
			return fmt.Errorf("texture coordinate: %w", err)
		}
		if b.flipUVs {
			v[1] = 1 - v[1]
		}
		b.uvs = append(b.uvs, mgl32.Vec2{v[0], v[1]})
	case "vn":
		v, err := parseFloats(args, 3)
		if err != nil {
			return fmt.Errorf("normal: %w", err)
		}
		b.normals = append(b.normals, mgl32.Vec3{v[0], v[1], v[2]}.Normalize())
	case "o", "g":
		b.finish()
		b.begin(strings.Join(args, " "))
	case "f":
		return b.face(args)
	}
	return nil
}

func (b *objBuilder) begin(name string) {
	b.current = &Mesh{Name: name}
	b.lookup = make(map[objIndex]uint32)
	b.allUV = true
	b.allN = true
}

// finish closes the current mesh, dropping it when it has no faces and
// dropping attributes not every corner supplied.
func (b *objBuilder) finish() {
	m := b.current
	b.current = nil
	if m == nil || len(m.Indices) == 0 {
		return
	}
	if !b.allUV {
		m.TextureCoordinates = nil
	}
	if !b.allN {
		m.Normals = nil
	}
	b.model.Meshes = append(b.model.Meshes, m)
}

func (b *objBuilder) face(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(args))
	}
	if b.current == nil {
		b.begin("")
	}

	corners := make([]uint32, len(args))
	for i, arg := range args {
		idx, err := b.parseCorner(arg)
		if err != nil {
			return err
		}
		corners[i] = b.vertex(idx)
	}

	for i := 1; i+1 < len(corners); i++ {
		b.current.Indices = append(b.current.Indices, corners[0], corners[i], corners[i+1])
	}
	return nil
}

func (b *objBuilder) vertex(idx objIndex) uint32 {
	if existing, ok := b.lookup[idx]; ok {
		return existing
	}

	m := b.current
	index := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, b.positions[idx[0]])

	if idx[1] >= 0 {
		m.TextureCoordinates = append(m.TextureCoordinates, b.uvs[idx[1]])
	} else {
		b.allUV = false
		m.TextureCoordinates = append(m.TextureCoordinates, mgl32.Vec2{})
	}
	if idx[2] >= 0 {
		m.Normals = append(m.Normals, b.normals[idx[2]])
	} else {
		b.allN = false
		m.Normals = append(m.Normals, mgl32.Vec3{})
	}

	b.lookup[idx] = index
	return index
}

// parseCorner resolves "v", "v/vt", "v//vn" or "v/vt/vn", including
// negative (relative) indices, to zero-based indices.
func (b *objBuilder) parseCorner(corner string) (objIndex, error) {
	idx := objIndex{-1, -1, -1}
	parts := strings.Split(corner, "/")
	if len(parts) > 3 {
		return idx, fmt.Errorf("malformed face corner %q", corner)
	}

	counts := [3]int{len(b.positions), len(b.uvs), len(b.normals)}
	for i, part := range parts {
		if part == "" {
			if i == 0 {
				return idx, fmt.Errorf("face corner %q has no position", corner)
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return idx, fmt.Errorf("face corner %q: %w", corner, err)
		}

		switch {
		case n > 0:
			n--
		case n < 0:
			n += counts[i]
		default:
			return idx, fmt.Errorf("face corner %q: index 0 is invalid", corner)
		}

		if n < 0 || n >= counts[i] {
			return idx, fmt.Errorf("face corner %q: index out of range", corner)
		}
		idx[i] = n
	}
	return idx, nil
}

func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(args))
	}
	values := make([]float32, n)
	for i := range n {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, err
		}
		values[i] = float32(f)
	}
	return values, nil
}
