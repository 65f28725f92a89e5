package mesh

import (
	"fmt"

	"github.com/achilleasa/meshc/types"
)

// VertexFormat describes which attributes are present in a vertex. The
// position attribute is always present.
type VertexFormat uint8

const (
	Unknown VertexFormat = iota
	Position
	PositionNormal
	PositionTexCoord
	PositionNormalTexCoord
)

func (f VertexFormat) String() string {
	switch f {
	case Unknown:
		return "unknown"
	case Position:
		return "P"
	case PositionNormal:
		return "PN"
	case PositionTexCoord:
		return "PT"
	case PositionNormalTexCoord:
		return "PNT"
	}
	return fmt.Sprintf("VertexFormat(%d)", uint8(f))
}

// HasNormal returns true if vertices using this format carry a normal.
func (f VertexFormat) HasNormal() bool {
	return f == PositionNormal || f == PositionNormalTexCoord
}

// HasTexCoord returns true if vertices using this format carry a texture coordinate.
func (f VertexFormat) HasTexCoord() bool {
	return f == PositionTexCoord || f == PositionNormalTexCoord
}

// VertexIndex references the attributes of a single vertex by their 1-based
// position in the position, normal and texture coordinate lists. A zero
// normal or texture coordinate index marks the attribute as absent.
type VertexIndex struct {
	Position uint64
	Normal   uint64
	TexCoord uint64
}

// FormatFromIndex infers the vertex format from the attribute indices that
// are present.
func FormatFromIndex(idx VertexIndex) (VertexFormat, error) {
	if idx.Position == 0 {
		return Unknown, ErrMissingPosition
	}

	hasNormal, hasTexCoord := idx.Normal != 0, idx.TexCoord != 0
	switch {
	case hasNormal && hasTexCoord:
		return PositionNormalTexCoord, nil
	case hasNormal:
		return PositionNormal, nil
	case hasTexCoord:
		return PositionTexCoord, nil
	}
	return Position, nil
}

// A Vertex holds the attributes of a single vertex. Attributes not covered by
// Format are always zero so two vertices are equal (==) iff they have the
// same format and attribute values.
type Vertex struct {
	Format   VertexFormat
	Position types.Vec3
	Normal   types.Vec3
	TexCoord types.Vec2
}

// Create a position-only vertex.
func VertexP(pos types.Vec3) Vertex {
	return Vertex{Format: Position, Position: pos}
}

// Create a vertex with a position and a normal.
func VertexPN(pos, normal types.Vec3) Vertex {
	return Vertex{Format: PositionNormal, Position: pos, Normal: normal}
}

// Create a vertex with a position and a texture coordinate.
func VertexPT(pos types.Vec3, uv types.Vec2) Vertex {
	return Vertex{Format: PositionTexCoord, Position: pos, TexCoord: uv}
}

// Create a vertex with a position, a normal and a texture coordinate.
func VertexPNT(pos, normal types.Vec3, uv types.Vec2) Vertex {
	return Vertex{Format: PositionNormalTexCoord, Position: pos, Normal: normal, TexCoord: uv}
}

func (v Vertex) String() string {
	switch v.Format {
	case PositionNormal:
		return fmt.Sprintf("{P%v N%v}", v.Position, v.Normal)
	case PositionTexCoord:
		return fmt.Sprintf("{P%v T%v}", v.Position, v.TexCoord)
	case PositionNormalTexCoord:
		return fmt.Sprintf("{P%v N%v T%v}", v.Position, v.Normal, v.TexCoord)
	}
	return fmt.Sprintf("{P%v}", v.Position)
}
