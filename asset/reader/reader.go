package reader

import (
	"fmt"
	"strings"

	"github.com/achilleasa/meshc/asset"
	"github.com/achilleasa/meshc/asset/mesh"
)

// The Reader interface is implemented by all object readers.
type Reader interface {
	// Read objects from a resource.
	Read(*asset.Resource) ([]*mesh.Object3d, error)
}

// Read objects from a local file or URL. Wavefront files are compiled; faces
// that do not belong to a named object are assigned to an object called
// defaultName or, if empty, the base name of the file.
func ReadObjects(filename, defaultName string) ([]*mesh.Object3d, error) {
	res, err := asset.NewResource(filename)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	// Select reader based on file extension
	var reader Reader
	switch {
	case strings.HasSuffix(res.Name(), ".obj"):
		reader = newWavefrontReader(defaultName)
	case strings.HasSuffix(res.Name(), ".zip"):
		reader = newZipReader()
	default:
		return nil, fmt.Errorf("readObjects: unsupported file format")
	}
	return reader.Read(res)
}
