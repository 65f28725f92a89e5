package mesh

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/achilleasa/meshc/types"
)

func TestFormatFromIndex(t *testing.T) {
	type spec struct {
		in     VertexIndex
		exp    VertexFormat
		expErr error
	}
	specs := []spec{
		{VertexIndex{Position: 1}, Position, nil},
		{VertexIndex{Position: 1, Normal: 2}, PositionNormal, nil},
		{VertexIndex{Position: 1, TexCoord: 2}, PositionTexCoord, nil},
		{VertexIndex{Position: 1, Normal: 2, TexCoord: 3}, PositionNormalTexCoord, nil},
		{VertexIndex{Normal: 2, TexCoord: 3}, Unknown, ErrMissingPosition},
		{VertexIndex{}, Unknown, ErrMissingPosition},
	}

	for idx, s := range specs {
		format, err := FormatFromIndex(s.in)
		if err != s.expErr {
			t.Fatalf("[spec %d] expected error %v; got %v", idx, s.expErr, err)
		}
		if format != s.exp {
			t.Fatalf("[spec %d] expected format %s; got %s", idx, s.exp, format)
		}
	}
}

func TestAddVertexSetsFormat(t *testing.T) {
	obj := NewObject("test")
	if obj.Format != Unknown {
		t.Fatalf("expected new object format to be %s; got %s", Unknown, obj.Format)
	}

	if err := obj.AddVertex(VertexP(types.XYZ(0, 0, 0))); err != nil {
		t.Fatal(err)
	}
	if obj.Format != Position {
		t.Fatalf("expected object format to be %s; got %s", Position, obj.Format)
	}
}

func TestAddVertexRejectsFormatChange(t *testing.T) {
	obj := NewObject("test")
	if err := obj.AddVertex(VertexP(types.XYZ(0, 0, 0))); err != nil {
		t.Fatal(err)
	}

	err := obj.AddVertex(VertexPT(types.XYZ(0, 0, 0), types.XY(0, 0)))
	if !errors.Is(err, ErrFormatChanged) {
		t.Fatalf("expected to get ErrFormatChanged; got %v", err)
	}

	if obj.Format != Position || len(obj.Vertices) != 1 || len(obj.Indices) != 1 {
		t.Fatalf("expected rejected vertex to leave the object untouched; got %+v", obj)
	}
}

func TestAddVertexRejectsUnknownFormat(t *testing.T) {
	obj := NewObject("test")
	if err := obj.AddVertex(Vertex{}); err != ErrUnknownFormat {
		t.Fatalf("expected to get ErrUnknownFormat; got %v", err)
	}
}

func TestAddVertexAppendsNewVertex(t *testing.T) {
	obj := NewObject("test")
	if err := obj.AddVertex(VertexP(types.XYZ(1, 1, 1))); err != nil {
		t.Fatal(err)
	}

	expVerts := []Vertex{VertexP(types.XYZ(1, 1, 1))}
	if !reflect.DeepEqual(obj.Vertices, expVerts) {
		t.Fatalf("expected vertices %v; got %v", expVerts, obj.Vertices)
	}
	expIndices := []uint32{0}
	if !reflect.DeepEqual(obj.Indices, expIndices) {
		t.Fatalf("expected indices %v; got %v", expIndices, obj.Indices)
	}
}

func TestAddVertexReusesDuplicates(t *testing.T) {
	obj := NewObject("test")
	for i := 0; i < 2; i++ {
		if err := obj.AddVertex(VertexP(types.XYZ(1, 1, 1))); err != nil {
			t.Fatal(err)
		}
	}

	if len(obj.Vertices) != 1 {
		t.Fatalf("expected 1 vertex; got %d", len(obj.Vertices))
	}
	expIndices := []uint32{0, 0}
	if !reflect.DeepEqual(obj.Indices, expIndices) {
		t.Fatalf("expected indices %v; got %v", expIndices, obj.Indices)
	}
}

func TestAddVertexPreservesInsertionOrder(t *testing.T) {
	pos := []types.Vec3{
		types.XYZ(0, 0, 0),
		types.XYZ(1, 0, 0),
		types.XYZ(0, 1, 0),
	}
	normal := types.XYZ(0, 0, 1)

	obj := NewObject("test")
	for _, p := range []int{2, 0, 2, 1, 0, 1} {
		if err := obj.AddVertex(VertexPN(pos[p], normal)); err != nil {
			t.Fatal(err)
		}
	}

	expVerts := []Vertex{VertexPN(pos[2], normal), VertexPN(pos[0], normal), VertexPN(pos[1], normal)}
	if !reflect.DeepEqual(obj.Vertices, expVerts) {
		t.Fatalf("expected vertices %v; got %v", expVerts, obj.Vertices)
	}
	expIndices := []uint32{0, 1, 0, 2, 1, 2}
	if !reflect.DeepEqual(obj.Indices, expIndices) {
		t.Fatalf("expected indices %v; got %v", expIndices, obj.Indices)
	}
}

func TestAddVertexDistinguishesAttributes(t *testing.T) {
	obj := NewObject("test")
	pos := types.XYZ(1, 2, 3)
	verts := []Vertex{
		VertexPNT(pos, types.XYZ(0, 1, 0), types.XY(0, 0)),
		VertexPNT(pos, types.XYZ(0, 1, 0), types.XY(0, 1)),
		VertexPNT(pos, types.XYZ(1, 0, 0), types.XY(0, 0)),
		VertexPNT(pos, types.XYZ(0, 1, 0), types.XY(0, 0)),
	}
	for _, v := range verts {
		if err := obj.AddVertex(v); err != nil {
			t.Fatal(err)
		}
	}

	expIndices := []uint32{0, 1, 2, 0}
	if !reflect.DeepEqual(obj.Indices, expIndices) {
		t.Fatalf("expected indices %v; got %v", expIndices, obj.Indices)
	}
}

func TestAddVertexAfterDecode(t *testing.T) {
	// Objects restored from a compiled file have no lookup map.
	obj := &Object3d{
		Name:     "restored",
		Format:   Position,
		Vertices: []Vertex{VertexP(types.XYZ(0, 0, 0)), VertexP(types.XYZ(1, 0, 0))},
		Indices:  []uint32{0, 1},
	}

	if err := obj.AddVertex(VertexP(types.XYZ(1, 0, 0))); err != nil {
		t.Fatal(err)
	}
	expIndices := []uint32{0, 1, 1}
	if !reflect.DeepEqual(obj.Indices, expIndices) || len(obj.Vertices) != 2 {
		t.Fatalf("expected indices %v over 2 vertices; got %v over %d", expIndices, obj.Indices, len(obj.Vertices))
	}
}

func TestBBox(t *testing.T) {
	obj := NewObject("test")
	for _, p := range []types.Vec3{{-1, 0, -1}, {0, 2, 1}, {1, 0, 1}} {
		if err := obj.AddVertex(VertexP(p)); err != nil {
			t.Fatal(err)
		}
	}

	exp := [2]types.Vec3{{-1, 0, -1}, {1, 2, 1}}
	if bbox := obj.BBox(); bbox != exp {
		t.Fatalf("expected bbox %v; got %v", exp, bbox)
	}

	if bbox := NewObject("empty").BBox(); bbox != [2]types.Vec3{} {
		t.Fatalf("expected empty object bbox to be zero; got %v", bbox)
	}
}

func TestValidate(t *testing.T) {
	obj := &Object3d{
		Name:     "broken",
		Format:   Position,
		Vertices: []Vertex{VertexP(types.XYZ(0, 0, 0))},
		Indices:  []uint32{0, 0, 1},
	}

	err := obj.Validate()
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out of range error; got %v", err)
	}

	obj.Indices = []uint32{0, 0, 0}
	if err = obj.Validate(); err != nil {
		t.Fatalf("expected object to be valid; got %v", err)
	}

	obj.Vertices = append(obj.Vertices, VertexPN(types.XYZ(1, 0, 0), types.XYZ(0, 1, 0)))
	if err = obj.Validate(); !errors.Is(err, ErrFormatChanged) {
		t.Fatalf("expected ErrFormatChanged; got %v", err)
	}
}

func TestStats(t *testing.T) {
	obj := NewObject("cube")
	for _, p := range []types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}} {
		if err := obj.AddVertex(VertexP(p)); err != nil {
			t.Fatal(err)
		}
	}

	out := Stats([]*Object3d{obj})
	for _, exp := range []string{"cube", "Total", " P ", "48 bytes"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats output to contain %q; got:\n%s", exp, out)
		}
	}
}
