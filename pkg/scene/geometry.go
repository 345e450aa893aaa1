package scene

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/udhos/gwob"
)

// ErrEmptyGeometry is returned for a mesh with nothing to draw
var ErrEmptyGeometry = errors.New("geometry has no triangles")

// Geometry is interleaved vertex data with optional triangle indices.
// Stride and PositionOffset are measured in floats.
type Geometry struct {
	Vertices       []float32
	Indices        []uint32
	Stride         int
	PositionOffset int
}

// TriangleGeometry returns a single triangle in the z=0 plane
func TriangleGeometry() *Geometry {
	return &Geometry{
		Vertices: []float32{
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,
		},
		Stride: 3,
	}
}

// VertexCount returns the number of vertices
func (g *Geometry) VertexCount() int {
	if g.Stride == 0 {
		return 0
	}
	return len(g.Vertices) / g.Stride
}

// Validate checks the geometry is drawable as triangles
func (g *Geometry) Validate() error {
	if g.Stride < 3 || g.PositionOffset < 0 || g.PositionOffset+3 > g.Stride {
		return fmt.Errorf("invalid vertex layout: stride %d, position offset %d", g.Stride, g.PositionOffset)
	}
	if len(g.Vertices)%g.Stride != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of stride %d", len(g.Vertices), g.Stride)
	}

	count := g.VertexCount()
	if len(g.Indices) == 0 {
		if count == 0 || count%3 != 0 {
			return fmt.Errorf("%w: %d vertices", ErrEmptyGeometry, count)
		}
		return nil
	}

	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(g.Indices))
	}
	for _, index := range g.Indices {
		if int(index) >= count {
			return fmt.Errorf("index %d out of range for %d vertices", index, count)
		}
	}
	return nil
}

// Position returns the position of vertex i
func (g *Geometry) Position(i int) [3]float32 {
	base := i*g.Stride + g.PositionOffset
	return [3]float32{g.Vertices[base], g.Vertices[base+1], g.Vertices[base+2]}
}

// LoadGeometry reads a Wavefront OBJ file
func LoadGeometry(path string) (*Geometry, error) {
	obj, err := gwob.NewObjFromFile(path, objOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ file %s: %w", path, err)
	}

	geometry, err := geometryFromObj(obj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return geometry, nil
}

// ParseGeometry parses Wavefront OBJ data held in memory. name is used in messages.
func ParseGeometry(name string, data []byte) (*Geometry, error) {
	obj, err := gwob.NewObjFromBuf(name, data, objOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ %s: %w", name, err)
	}
	return geometryFromObj(obj)
}

func objOptions() *gwob.ObjParserOptions {
	return &gwob.ObjParserOptions{
		LogStats: bool(glog.V(2)),
		Logger:   func(msg string) { glog.V(2).Info(msg) },
	}
}

func geometryFromObj(obj *gwob.Obj) (*Geometry, error) {
	indices := make([]uint32, len(obj.Indices))
	for i, index := range obj.Indices {
		indices[i] = uint32(index)
	}

	// gwob reports the interleaved layout in bytes
	geometry := &Geometry{
		Vertices:       obj.Coord,
		Indices:        indices,
		Stride:         obj.StrideSize / 4,
		PositionOffset: obj.StrideOffsetPosition / 4,
	}

	if err := geometry.Validate(); err != nil {
		return nil, err
	}
	return geometry, nil
}
