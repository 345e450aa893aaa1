package objects

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
	"github.com/leterax/pgr-skeleton/internal/openglhelper"
	"github.com/leterax/pgr-skeleton/pkg/config"
	"github.com/leterax/pgr-skeleton/pkg/render"
	"github.com/leterax/pgr-skeleton/pkg/scene"
)

// MeshObject draws one piece of geometry with the shared shader program.
// Triangle and SingleMesh differ only in the geometry they upload.
type MeshObject struct {
	scene.Node

	shader *ShaderProgram
	mesh   *openglhelper.Mesh

	// initialized is set when the object has a shader with defined locations
	initialized bool
}

// NewMeshObject uploads the geometry. Without a usable shader the object
// is kept in the scene but draws nothing.
func NewMeshObject(shader *ShaderProgram, geometry *scene.Geometry) (*MeshObject, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	object := &MeshObject{
		Node:   *scene.NewNode(),
		shader: shader,
	}

	if shader == nil || !shader.Initialized {
		glog.Warning("Mesh object created without an initialized shader program; it will not be drawn")
		return object, nil
	}

	layout := openglhelper.VertexLayout{
		Stride:         geometry.Stride,
		PositionOffset: geometry.PositionOffset,
	}
	object.mesh = openglhelper.NewMesh(geometry.Vertices, geometry.Indices, layout, uint32(shader.Locations.Position))
	object.initialized = true

	return object, nil
}

// NewTriangle creates the placeholder triangle
func NewTriangle(shader *ShaderProgram) *MeshObject {
	object, err := NewMeshObject(shader, scene.TriangleGeometry())
	if err != nil {
		// The built-in geometry always validates
		panic(err)
	}
	return object
}

// NewSingleMesh creates an object from a Wavefront OBJ file
func NewSingleMesh(shader *ShaderProgram, path string) (*MeshObject, error) {
	geometry, err := scene.LoadGeometry(path)
	if err != nil {
		return nil, err
	}

	object, err := NewMeshObject(shader, geometry)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", path, err)
	}

	glog.Infof("Loaded mesh %s (%d vertices, %d indices)", path, geometry.VertexCount(), len(geometry.Indices))
	return object, nil
}

// Draw renders the mesh with projection * view * model, then the children
func (o *MeshObject) Draw(viewMatrix, projectionMatrix mgl32.Mat4, camera *render.Camera, cfg *config.Config) {
	if o.initialized {
		pvm := projectionMatrix.Mul4(viewMatrix).Mul4(o.GlobalModelMatrix)

		o.shader.Shader.Use()
		o.shader.Shader.SetMat4(o.shader.Locations.PVMMatrix, pvm)
		openglhelper.SetWireframe(cfg != nil && cfg.Render.Wireframe)
		o.mesh.Draw()
	}

	o.Node.Draw(viewMatrix, projectionMatrix, camera, cfg)
}

// Delete releases the GPU buffers and the children
func (o *MeshObject) Delete() {
	if o.mesh != nil {
		o.mesh.Delete()
		o.mesh = nil
	}
	o.initialized = false
	o.Node.Delete()
}
