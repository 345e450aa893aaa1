// Package scene defines the contract shared by everything that is updated and drawn each frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/pgr-skeleton/pkg/config"
	"github.com/leterax/pgr-skeleton/pkg/render"
)

// ObjectInstance is anything that lives in the scene
type ObjectInstance interface {
	// Update advances the object's state. parentModelMatrix is the parent's
	// world transform; the scene root passes identity.
	Update(elapsedTime float32, parentModelMatrix *mgl32.Mat4)

	// Draw issues the draw calls for the object and its children
	Draw(viewMatrix, projectionMatrix mgl32.Mat4, camera *render.Camera, cfg *config.Config)
}

// Deleter is implemented by objects holding GPU resources
type Deleter interface {
	Delete()
}

// ObjectList is an ordered list of objects. Nil entries are skipped.
type ObjectList []ObjectInstance

// Update calls Update on every object in order
func (l ObjectList) Update(elapsedTime float32, parentModelMatrix *mgl32.Mat4) {
	for _, object := range l {
		if object != nil {
			object.Update(elapsedTime, parentModelMatrix)
		}
	}
}

// Draw calls Draw on every object in order
func (l ObjectList) Draw(viewMatrix, projectionMatrix mgl32.Mat4, camera *render.Camera, cfg *config.Config) {
	for _, object := range l {
		if object != nil {
			object.Draw(viewMatrix, projectionMatrix, camera, cfg)
		}
	}
}

// Delete releases every object that owns resources
func (l ObjectList) Delete() {
	for _, object := range l {
		if d, ok := object.(Deleter); ok {
			d.Delete()
		}
	}
}

// Node is a transform in the scene hierarchy. It is usable on its own as a
// group, or embedded by objects that draw something.
type Node struct {
	LocalModelMatrix  mgl32.Mat4
	GlobalModelMatrix mgl32.Mat4
	Children          ObjectList
}

// NewNode returns a node with identity transforms
func NewNode(children ...ObjectInstance) *Node {
	return &Node{
		LocalModelMatrix:  mgl32.Ident4(),
		GlobalModelMatrix: mgl32.Ident4(),
		Children:          children,
	}
}

// Update recomputes the world transform and updates the children with it
func (n *Node) Update(elapsedTime float32, parentModelMatrix *mgl32.Mat4) {
	if parentModelMatrix != nil {
		n.GlobalModelMatrix = parentModelMatrix.Mul4(n.LocalModelMatrix)
	} else {
		n.GlobalModelMatrix = n.LocalModelMatrix
	}

	n.Children.Update(elapsedTime, &n.GlobalModelMatrix)
}

// Draw draws the children
func (n *Node) Draw(viewMatrix, projectionMatrix mgl32.Mat4, camera *render.Camera, cfg *config.Config) {
	n.Children.Draw(viewMatrix, projectionMatrix, camera, cfg)
}

// Delete releases the children
func (n *Node) Delete() {
	n.Children.Delete()
}
