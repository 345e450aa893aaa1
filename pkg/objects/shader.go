// Package objects holds the drawable scene objects and the shader program they share.
package objects

import (
	"fmt"

	"github.com/leterax/pgr-skeleton/internal/openglhelper"
)

// VertexShaderSource transforms positions by the combined PVM matrix
const VertexShaderSource = `#version 330 core
in vec3 position;
uniform mat4 PVM;
void main() {
  gl_Position = PVM * vec4(position, 1.0f);
}
`

// FragmentShaderSource paints everything white
const FragmentShaderSource = `#version 330 core
out vec4 fragmentColor;
void main() {
  fragmentColor = vec4(1.0f, 1.0f, 1.0f, 1.0f);
}
`

// Locations are the attribute and uniform locations objects draw with
type Locations struct {
	Position  int32
	PVMMatrix int32
}

// ShaderProgram is a linked program plus its resolved locations
type ShaderProgram struct {
	Shader      *openglhelper.Shader
	Locations   Locations
	Initialized bool
}

// LoadShaderProgram compiles the built-in shaders, or the given files when
// both paths are set, and resolves every required location.
func LoadShaderProgram(vertexPath, fragmentPath string) (*ShaderProgram, error) {
	var (
		shader *openglhelper.Shader
		err    error
	)
	if vertexPath != "" && fragmentPath != "" {
		shader, err = openglhelper.LoadShaderFromFiles(vertexPath, fragmentPath)
	} else {
		shader, err = openglhelper.NewShader(VertexShaderSource, FragmentShaderSource)
	}
	if err != nil {
		return nil, err
	}

	program, err := NewShaderProgram(shader)
	if err != nil {
		shader.Delete()
		return nil, err
	}
	return program, nil
}

// NewShaderProgram resolves the locations of an already linked shader
func NewShaderProgram(shader *openglhelper.Shader) (*ShaderProgram, error) {
	position, err := shader.AttribLocation("position")
	if err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}
	pvm, err := shader.UniformLocation("PVM")
	if err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}

	return &ShaderProgram{
		Shader: shader,
		Locations: Locations{
			Position:  position,
			PVMMatrix: pvm,
		},
		Initialized: true,
	}, nil
}

// Delete releases the program
func (p *ShaderProgram) Delete() {
	if p.Shader != nil {
		p.Shader.Delete()
	}
	p.Initialized = false
}
