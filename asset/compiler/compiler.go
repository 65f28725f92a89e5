package compiler

import (
	"fmt"
	"time"

	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/asset/wavefront/parser"
	"github.com/achilleasa/meshc/log"
	"github.com/achilleasa/meshc/types"
)

type objCompiler struct {
	logger log.Logger

	// Name for faces that appear before any object statement.
	defaultName string

	// Attribute lists; face indices are 1-based offsets into them.
	positionList []types.Vec3
	normalList   []types.Vec3
	uvList       []types.Vec2

	// The object receiving faces; nil until the first object or face.
	curObject *mesh.Object3d

	objects []*mesh.Object3d
}

// Compile a parsed statement list into indexed objects. Faces appearing
// before the first object statement are assigned to an object named after
// defaultName. The first error aborts compilation and no objects are
// returned.
func Compile(defaultName string, statements []parser.Statement) ([]*mesh.Object3d, error) {
	c := &objCompiler{
		logger:       log.New("obj compiler"),
		defaultName:  defaultName,
		positionList: make([]types.Vec3, 0),
		normalList:   make([]types.Vec3, 0),
		uvList:       make([]types.Vec2, 0),
		objects:      make([]*mesh.Object3d, 0),
	}

	start := time.Now()
	for _, stmt := range statements {
		if err := c.process(stmt); err != nil {
			return nil, &Error{
				Line:      stmt.Line,
				Column:    stmt.Column,
				Statement: stmt.Type,
				Err:       err,
			}
		}
	}
	c.finalizeObject()

	c.logger.Debugf("compiled %d statements into %d objects in %d ms", len(statements), len(c.objects), time.Since(start).Nanoseconds()/1e6)
	return c.objects, nil
}

func (c *objCompiler) process(stmt parser.Statement) error {
	switch stmt.Type {
	case parser.Comment, parser.MtlLib, parser.UseMtl, parser.Illum:
		// Materials and smoothing groups are recognized but not modeled.
		c.logger.Debugf("[%d:%d] ignoring %s statement", stmt.Line, stmt.Column, stmt.Type)
	case parser.Vertex:
		v, err := vec3(stmt)
		if err != nil {
			return err
		}
		c.positionList = append(c.positionList, v)
	case parser.Normal:
		v, err := vec3(stmt)
		if err != nil {
			return err
		}
		c.normalList = append(c.normalList, v)
	case parser.TexCoord:
		if len(stmt.Numbers) != 2 {
			return fmt.Errorf("%w: expected 2 components; got %d", ErrMalformedData, len(stmt.Numbers))
		}
		c.uvList = append(c.uvList, types.XY(stmt.Numbers[0], stmt.Numbers[1]))
	case parser.Object:
		if stmt.Text == "" {
			return ErrMissingObjectName
		}
		c.finalizeObject()
		c.curObject = mesh.NewObject(stmt.Text)
	case parser.Face:
		return c.addFace(stmt.Face)
	default:
		return fmt.Errorf("%w: unsupported statement type %s", ErrMalformedData, stmt.Type)
	}
	return nil
}

// Resolve the face vertices and append them to the current object.
func (c *objCompiler) addFace(face parser.FaceIndices) error {
	if c.curObject == nil {
		c.curObject = mesh.NewObject(c.defaultName)
	}

	for _, idx := range face.Vertices() {
		v, err := c.resolveVertex(idx)
		if err != nil {
			return err
		}
		if err = c.curObject.AddVertex(v); err != nil {
			return err
		}
	}
	return nil
}

// Build a vertex by looking up the attributes referenced by idx.
func (c *objCompiler) resolveVertex(idx mesh.VertexIndex) (mesh.Vertex, error) {
	format, err := mesh.FormatFromIndex(idx)
	if err != nil {
		return mesh.Vertex{}, err
	}

	v := mesh.Vertex{Format: format}
	if v.Position, err = lookupVec3(c.positionList, idx.Position, "position"); err != nil {
		return v, err
	}
	if format.HasNormal() {
		if v.Normal, err = lookupVec3(c.normalList, idx.Normal, "normal"); err != nil {
			return v, err
		}
	}
	if format.HasTexCoord() {
		if v.TexCoord, err = lookupVec2(c.uvList, idx.TexCoord, "texcoord"); err != nil {
			return v, err
		}
	}
	return v, nil
}

// Move the current object to the output list.
func (c *objCompiler) finalizeObject() {
	if c.curObject == nil {
		return
	}

	c.logger.Infof("compiled object %q: format %s, %d vertices, %d triangles", c.curObject.Name, c.curObject.Format, len(c.curObject.Vertices), c.curObject.Triangles())
	c.objects = append(c.objects, c.curObject)
	c.curObject = nil
}

// Check that a 1-based index references an element of a list with the given length.
func checkIndex(index uint64, listLen int, what string) error {
	if index == 0 || index > uint64(listLen) {
		return fmt.Errorf("%w: %s index %d; %d %s(s) defined", ErrIndexOutOfRange, what, index, listLen, what)
	}
	return nil
}

func lookupVec3(list []types.Vec3, index uint64, what string) (types.Vec3, error) {
	if err := checkIndex(index, len(list), what); err != nil {
		return types.Vec3{}, err
	}
	return list[index-1], nil
}

func lookupVec2(list []types.Vec2, index uint64, what string) (types.Vec2, error) {
	if err := checkIndex(index, len(list), what); err != nil {
		return types.Vec2{}, err
	}
	return list[index-1], nil
}

func vec3(stmt parser.Statement) (types.Vec3, error) {
	if len(stmt.Numbers) != 3 {
		return types.Vec3{}, fmt.Errorf("%w: expected 3 components; got %d", ErrMalformedData, len(stmt.Numbers))
	}
	return types.XYZ(stmt.Numbers[0], stmt.Numbers[1], stmt.Numbers[2]), nil
}
