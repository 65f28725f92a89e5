package lexer

import "fmt"

// TokenType classifies a lexed character run.
type TokenType uint8

// The token types emitted by the lexer. The types up to and including Illum
// open a statement.
const (
	Comment TokenType = iota
	MtlLib
	Object
	Vertex
	Normal
	TexCoord
	UseMtl
	Face
	Illum
	Number
	String
	Polygon
	Separator
	LineBreak
)

var tokenTypeNames = [...]string{
	Comment:   "COMMENT",
	MtlLib:    "MTLLIB",
	Object:    "OBJECT",
	Vertex:    "VERTEX",
	Normal:    "NORMAL",
	TexCoord:  "TEXCOORD",
	UseMtl:    "USEMTL",
	Face:      "FACE",
	Illum:     "ILLUM",
	Number:    "NUMBER",
	String:    "STRING",
	Polygon:   "POLYGON",
	Separator: "SEPARATOR",
	LineBreak: "LINEBREAK",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// IsHeader returns true if the token type starts a statement.
func (t TokenType) IsHeader() bool {
	return t <= Illum
}

// Statement keywords. Comments are recognized by their leading '#'.
var keywords = map[string]TokenType{
	"mtllib": MtlLib,
	"o":      Object,
	"v":      Vertex,
	"vn":     Normal,
	"vt":     TexCoord,
	"usemtl": UseMtl,
	"f":      Face,
	"s":      Illum,
}

// PolygonIndex holds the indices of a face vertex reference in source order:
// position, texture coordinate, normal. A zero value marks an absent index.
type PolygonIndex [3]uint64

// Position index.
func (p PolygonIndex) Position() uint64 { return p[0] }

// Texture coordinate index.
func (p PolygonIndex) TexCoord() uint64 { return p[1] }

// Normal index.
func (p PolygonIndex) Normal() uint64 { return p[2] }

// A Token is a classified run of characters. Only the payload field matching
// Type is populated:
//  - Number: Number
//  - Polygon: Polygon
//  - Comment, LineBreak, String: Text
type Token struct {
	Type    TokenType
	Text    string
	Number  float64
	Polygon PolygonIndex

	// 1-based location of the first character.
	Line   int
	Column int
}

func (t Token) String() string {
	switch t.Type {
	case Number:
		return fmt.Sprintf("%s(%g)@%d:%d", t.Type, t.Number, t.Line, t.Column)
	case Polygon:
		return fmt.Sprintf("%s(%d/%d/%d)@%d:%d", t.Type, t.Polygon[0], t.Polygon[1], t.Polygon[2], t.Line, t.Column)
	case Comment, String, LineBreak:
		return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Text, t.Line, t.Column)
	}
	return fmt.Sprintf("%s@%d:%d", t.Type, t.Line, t.Column)
}
