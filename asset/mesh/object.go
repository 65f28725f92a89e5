package mesh

import (
	"fmt"
	"math"

	"github.com/achilleasa/meshc/types"
)

// An Object3d is a named indexed triangle list. All vertices share the same
// format and each triplet of indices defines a triangle.
type Object3d struct {
	Name     string
	Format   VertexFormat
	Vertices []Vertex
	Indices  []uint32

	// Maps each distinct vertex to its slot in Vertices.
	lookup map[Vertex]uint32
}

// Create a new empty object.
func NewObject(name string) *Object3d {
	return &Object3d{
		Name:     name,
		Format:   Unknown,
		Vertices: make([]Vertex, 0),
		Indices:  make([]uint32, 0),
		lookup:   make(map[Vertex]uint32),
	}
}

// AddVertex appends a vertex reference to the index list. Vertices equal to
// an already stored vertex reuse its slot; new vertices are appended to the
// vertex list. The first vertex defines the object format and any vertex with
// a different format is rejected.
func (o *Object3d) AddVertex(v Vertex) error {
	if v.Format == Unknown {
		return ErrUnknownFormat
	}

	if o.Format == Unknown {
		o.Format = v.Format
	} else if o.Format != v.Format {
		return fmt.Errorf("%w: object %q uses %s; got %s", ErrFormatChanged, o.Name, o.Format, v.Format)
	}

	if o.lookup == nil {
		o.rebuildLookup()
	}

	if index, exists := o.lookup[v]; exists {
		o.Indices = append(o.Indices, index)
		return nil
	}

	index := uint32(len(o.Vertices))
	o.Vertices = append(o.Vertices, v)
	o.Indices = append(o.Indices, index)
	o.lookup[v] = index
	return nil
}

// Populate the dedup lookup map from the vertex list. Objects decoded from a
// compiled file do not carry it.
func (o *Object3d) rebuildLookup() {
	o.lookup = make(map[Vertex]uint32, len(o.Vertices))
	for index, v := range o.Vertices {
		if _, exists := o.lookup[v]; !exists {
			o.lookup[v] = uint32(index)
		}
	}
}

// Get the number of triangles defined by the index list.
func (o *Object3d) Triangles() int {
	return len(o.Indices) / 3
}

// Get the object AABB. Empty objects return a zero bbox.
func (o *Object3d) BBox() [2]types.Vec3 {
	if len(o.Vertices) == 0 {
		return [2]types.Vec3{}
	}

	bbox := [2]types.Vec3{
		{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
	for _, v := range o.Vertices {
		bbox[0] = types.MinVec3(bbox[0], v.Position)
		bbox[1] = types.MaxVec3(bbox[1], v.Position)
	}
	return bbox
}

// Validate checks the object invariants: every vertex matches the object
// format, all attributes are finite and every index references a vertex.
func (o *Object3d) Validate() error {
	if o.Format == Unknown && len(o.Vertices) != 0 {
		return fmt.Errorf("mesh: object %q has %d vertices but no format", o.Name, len(o.Vertices))
	}

	for index, v := range o.Vertices {
		if v.Format != o.Format {
			return fmt.Errorf("%w: object %q uses %s; vertex %d uses %s", ErrFormatChanged, o.Name, o.Format, index, v.Format)
		}
		if !v.Position.IsFinite() || !v.Normal.IsFinite() || !types.XYZ(v.TexCoord[0], v.TexCoord[1], 0).IsFinite() {
			return fmt.Errorf("mesh: object %q vertex %d has non-finite attributes", o.Name, index)
		}
	}

	if len(o.Indices)%3 != 0 {
		return fmt.Errorf("mesh: object %q index count %d is not a multiple of 3", o.Name, len(o.Indices))
	}
	for pos, index := range o.Indices {
		if int(index) >= len(o.Vertices) {
			return fmt.Errorf("mesh: object %q index %d at offset %d is out of range [0, %d)", o.Name, index, pos, len(o.Vertices))
		}
	}
	return nil
}
