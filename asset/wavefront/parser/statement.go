package parser

import (
	"fmt"

	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/asset/wavefront/lexer"
)

// StatementType identifies a wavefront directive.
type StatementType uint8

const (
	Comment StatementType = iota
	MtlLib
	Object
	Vertex
	Normal
	TexCoord
	UseMtl
	Face
	Illum
)

func (t StatementType) String() string {
	switch t {
	case Comment:
		return "comment"
	case MtlLib:
		return "mtllib"
	case Object:
		return "object"
	case Vertex:
		return "vertex"
	case Normal:
		return "normal"
	case TexCoord:
		return "texcoord"
	case UseMtl:
		return "usemtl"
	case Face:
		return "face"
	case Illum:
		return "illum"
	}
	return fmt.Sprintf("StatementType(%d)", uint8(t))
}

// Map a header token to the statement it opens.
func statementTypeFor(t lexer.TokenType) (StatementType, bool) {
	switch t {
	case lexer.Comment:
		return Comment, true
	case lexer.MtlLib:
		return MtlLib, true
	case lexer.Object:
		return Object, true
	case lexer.Vertex:
		return Vertex, true
	case lexer.Normal:
		return Normal, true
	case lexer.TexCoord:
		return TexCoord, true
	case lexer.UseMtl:
		return UseMtl, true
	case lexer.Face:
		return Face, true
	case lexer.Illum:
		return Illum, true
	}
	return 0, false
}

// FaceIndices holds the three vertex references of a triangular face in
// source order: p1, t1, n1, p2, t2, n2, p3, t3, n3. Zero marks an absent
// index.
type FaceIndices [9]uint64

// Vertices converts the face references into vertex indices. This is the only
// place where the source (position, texcoord, normal) ordering is mapped to
// named fields.
func (f FaceIndices) Vertices() [3]mesh.VertexIndex {
	var out [3]mesh.VertexIndex
	for i := range out {
		out[i] = mesh.VertexIndex{
			Position: f[i*3],
			TexCoord: f[i*3+1],
			Normal:   f[i*3+2],
		}
	}
	return out
}

// A Statement is a single parsed directive. The populated payload depends on
// Type:
//  - Comment, MtlLib, Object, UseMtl: Text
//  - Vertex, Normal (3), TexCoord (2), Illum (1): Numbers
//  - Face: Face
type Statement struct {
	Type    StatementType
	Text    string
	Numbers []float64
	Face    FaceIndices

	// Location of the statement header.
	Line   int
	Column int
}
