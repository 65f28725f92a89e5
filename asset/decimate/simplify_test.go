package decimate

import (
	"errors"
	"testing"

	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/types"
)

// Build a flat grid of size x size quads on the XZ plane.
func grid(t *testing.T, size int) *mesh.Object3d {
	obj := mesh.NewObject("grid")
	at := func(x, z int) mesh.Vertex {
		return mesh.VertexP(types.XYZ(float64(x), 0, float64(z)))
	}
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			for _, v := range []mesh.Vertex{
				at(x, z), at(x, z+1), at(x+1, z+1),
				at(x+1, z+1), at(x+1, z), at(x, z),
			} {
				if err := obj.AddVertex(v); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	return obj
}

func TestSimplifyGrid(t *testing.T) {
	obj := grid(t, 8)
	if obj.Triangles() != 128 {
		t.Fatalf("expected 128 triangles; got %d", obj.Triangles())
	}

	out, err := Simplify(obj, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	if out.Triangles() == 0 || out.Triangles() >= obj.Triangles() {
		t.Fatalf("expected triangle count to be reduced; got %d", out.Triangles())
	}
	if out.Name != obj.Name || out.Format != mesh.Position {
		t.Fatalf("expected simplified object to keep name and format; got %q (%s)", out.Name, out.Format)
	}
	if err = out.Validate(); err != nil {
		t.Fatalf("expected simplified object to be valid; got %v", err)
	}
	if obj.Triangles() != 128 {
		t.Fatal("expected input object to remain unchanged")
	}
}

func TestSimplifyErrors(t *testing.T) {
	obj := grid(t, 1)

	for _, factor := range []float64{0, -1, 1.5} {
		if _, err := Simplify(obj, factor); !errors.Is(err, ErrInvalidFactor) {
			t.Fatalf("expected ErrInvalidFactor for factor %g; got %v", factor, err)
		}
	}

	normalObj := mesh.NewObject("normals")
	if err := normalObj.AddVertex(mesh.VertexPN(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0))); err != nil {
		t.Fatal(err)
	}
	if _, err := Simplify(normalObj, 0.5); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat; got %v", err)
	}
}

func TestSimplifyAll(t *testing.T) {
	normalObj := mesh.NewObject("normals")
	if err := normalObj.AddVertex(mesh.VertexPN(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0))); err != nil {
		t.Fatal(err)
	}
	plain := grid(t, 4)

	out, err := SimplifyAll([]*mesh.Object3d{plain, normalObj}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if out[0] != plain {
		t.Fatal("expected a factor of 1 to return the object unchanged")
	}
	if out[1] != normalObj {
		t.Fatal("expected unsupported objects to be passed through")
	}

	if _, err = SimplifyAll([]*mesh.Object3d{plain}, 2); !errors.Is(err, ErrInvalidFactor) {
		t.Fatalf("expected ErrInvalidFactor; got %v", err)
	}
}
