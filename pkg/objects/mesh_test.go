package objects

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/pgr-skeleton/pkg/config"
	"github.com/leterax/pgr-skeleton/pkg/render"
	"github.com/leterax/pgr-skeleton/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingChild struct {
	draws   int
	deleted bool
}

func (c *countingChild) Update(float32, *mgl32.Mat4) {}

func (c *countingChild) Draw(mgl32.Mat4, mgl32.Mat4, *render.Camera, *config.Config) {
	c.draws++
}

func (c *countingChild) Delete() {
	c.deleted = true
}

// Objects built without a shader never touch the GL context, which keeps
// them usable in tests.

func TestMeshObjectWithoutShaderDrawsOnlyChildren(t *testing.T) {
	object := NewTriangle(nil)
	child := &countingChild{}
	object.Children = scene.ObjectList{child}

	assert.NotPanics(t, func() {
		object.Draw(mgl32.Ident4(), mgl32.Ident4(), nil, config.Default())
	})
	assert.Equal(t, 1, child.draws)
}

func TestMeshObjectWithUninitializedShader(t *testing.T) {
	object, err := NewMeshObject(&ShaderProgram{}, scene.TriangleGeometry())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		object.Draw(mgl32.Ident4(), mgl32.Ident4(), nil, nil)
	})
}

func TestMeshObjectUpdateUsesParentTransform(t *testing.T) {
	object := NewTriangle(nil)
	object.LocalModelMatrix = mgl32.Translate3D(0, 0, -2)

	parent := mgl32.Translate3D(1, 0, 0)
	object.Update(0.1, &parent)

	assert.True(t, mgl32.Translate3D(1, 0, -2).ApproxEqual(object.GlobalModelMatrix))
}

func TestNewMeshObjectRejectsInvalidGeometry(t *testing.T) {
	_, err := NewMeshObject(nil, &scene.Geometry{Vertices: []float32{0, 0, 0}, Stride: 3})
	assert.Error(t, err)
}

func TestMeshObjectDeleteReleasesChildren(t *testing.T) {
	object := NewTriangle(nil)
	child := &countingChild{}
	object.Children = scene.ObjectList{child}

	object.Delete()

	assert.True(t, child.deleted)
}

func TestShaderProgramDeleteWithoutShader(t *testing.T) {
	program := &ShaderProgram{Initialized: true}
	program.Delete()
	assert.False(t, program.Initialized)
}
