// Package gfx wraps the OpenGL objects the demos draw with. Every function
// must be called on the thread that owns the GL context.
package gfx

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrUniformNotFound = errors.New("gfx: uniform not found")

// ShaderDefinition names one stage of a program and the asset holding its
// source.
type ShaderDefinition struct {
	Type uint32
	Path string
}

func VertexShader(path string) ShaderDefinition {
	return ShaderDefinition{Type: gl.VERTEX_SHADER, Path: path}
}

func FragmentShader(path string) ShaderDefinition {
	return ShaderDefinition{Type: gl.FRAGMENT_SHADER, Path: path}
}

// Program is a linked shader program built from assets. It can be rebuilt
// in place when its sources change.
type Program struct {
	fsys      fs.FS
	shaders   []ShaderDefinition
	id        uint32
	locations map[string]int32
}

// BuildProgram compiles and links shaders read from fsys.
func BuildProgram(fsys fs.FS, shaders ...ShaderDefinition) (*Program, error) {
	p := &Program{
		fsys:    fsys,
		shaders: shaders,
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 { return p.id }

// Sources returns the asset paths the program is built from.
func (p *Program) Sources() []string {
	paths := make([]string, len(p.shaders))
	for i, shader := range p.shaders {
		paths[i] = shader.Path
	}
	return paths
}

// Uses reports whether the program is built from the asset at path.
func (p *Program) Uses(path string) bool {
	for _, shader := range p.shaders {
		if shader.Path == path {
			return true
		}
	}
	return false
}

// Reload rebuilds the program from its sources. On failure the previous
// program stays in use.
func (p *Program) Reload() error {
	id, err := p.link()
	if err != nil {
		return err
	}
	if p.id != 0 {
		gl.DeleteProgram(p.id)
	}
	p.id = id
	p.locations = make(map[string]int32)
	return nil
}

func (p *Program) link() (uint32, error) {
	if len(p.shaders) == 0 {
		return 0, errors.New("program has no shaders")
	}

	compiled := make([]uint32, 0, len(p.shaders))
	defer func() {
		for _, shader := range compiled {
			gl.DeleteShader(shader)
		}
	}()

	for _, def := range p.shaders {
		source, err := fs.ReadFile(p.fsys, def.Path)
		if err != nil {
			return 0, fmt.Errorf("read shader: %w", err)
		}
		shader, err := compileShader(def.Type, string(source))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", def.Path, err)
		}
		compiled = append(compiled, shader)
	}

	program := gl.CreateProgram()
	for _, shader := range compiled {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", strings.TrimRight(log, "\x00"))
	}

	for _, shader := range compiled {
		gl.DetachShader(program, shader)
	}
	return program, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// Uniform returns the location of an active uniform.
func (p *Program) Uniform(name string) (int32, error) {
	location := p.Location(name)
	if location == -1 {
		return -1, fmt.Errorf("%w: %s", ErrUniformNotFound, name)
	}
	return location, nil
}

// Uniforms checks that every name is an active uniform.
func (p *Program) Uniforms(names ...string) error {
	for _, name := range names {
		if _, err := p.Uniform(name); err != nil {
			return err
		}
	}
	return nil
}

// Location returns the cached location of a uniform, or -1 when the
// program has no such active uniform. GL ignores writes to -1.
func (p *Program) Location(name string) int32 {
	location, ok := p.locations[name]
	if !ok {
		location = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.locations[name] = location
	}
	return location
}

func (p *Program) Use() { gl.UseProgram(p.id) }

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(p.Location(name), 1, &v[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.Location(name), 1, &v[0])
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Location(name), v)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
