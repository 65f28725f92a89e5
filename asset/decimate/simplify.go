package decimate

import (
	"errors"
	"fmt"

	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/log"
	"github.com/achilleasa/meshc/types"
	"github.com/fogleman/simplify"
)

var (
	ErrUnsupportedFormat = errors.New("decimate: only position-only objects can be simplified")
	ErrInvalidFactor     = errors.New("decimate: factor must be in the (0, 1] range")
)

var logger = log.New("decimate")

// Simplify reduces the triangle count of obj to roughly factor times its
// original count using quadric error metrics. The input object is not
// modified. Normals and texture coordinates cannot be carried through the edge
// collapses so only objects with the P vertex format are accepted.
func Simplify(obj *mesh.Object3d, factor float64) (*mesh.Object3d, error) {
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("%w; got %g", ErrInvalidFactor, factor)
	}
	if obj.Format != mesh.Position {
		return nil, fmt.Errorf("%w: object %q uses %s", ErrUnsupportedFormat, obj.Name, obj.Format)
	}
	if factor == 1 || obj.Triangles() == 0 {
		return obj, nil
	}

	triangles := make([]*simplify.Triangle, 0, obj.Triangles())
	for i := 0; i+2 < len(obj.Indices); i += 3 {
		triangles = append(triangles, simplify.NewTriangle(
			toVector(obj.Vertices[obj.Indices[i]].Position),
			toVector(obj.Vertices[obj.Indices[i+1]].Position),
			toVector(obj.Vertices[obj.Indices[i+2]].Position),
		))
	}

	simplified := simplify.NewMesh(triangles).Simplify(factor)

	out := mesh.NewObject(obj.Name)
	for _, tri := range simplified.Triangles {
		for _, v := range []simplify.Vector{tri.V1, tri.V2, tri.V3} {
			if err := out.AddVertex(mesh.VertexP(fromVector(v))); err != nil {
				return nil, err
			}
		}
	}

	logger.Infof("simplified object %q: %d -> %d triangles", obj.Name, obj.Triangles(), out.Triangles())
	return out, nil
}

// Simplify all objects that support it. Objects with normals or texture
// coordinates are passed through unchanged.
func SimplifyAll(objects []*mesh.Object3d, factor float64) ([]*mesh.Object3d, error) {
	out := make([]*mesh.Object3d, len(objects))
	for i, obj := range objects {
		simplified, err := Simplify(obj, factor)
		switch {
		case errors.Is(err, ErrUnsupportedFormat):
			logger.Warningf("skipping object %q with vertex format %s", obj.Name, obj.Format)
			out[i] = obj
		case err != nil:
			return nil, err
		default:
			out[i] = simplified
		}
	}
	return out, nil
}

func toVector(v types.Vec3) simplify.Vector {
	return simplify.Vector{X: v[0], Y: v[1], Z: v[2]}
}

func fromVector(v simplify.Vector) types.Vec3 {
	return types.XYZ(v.X, v.Y, v.Z)
}
