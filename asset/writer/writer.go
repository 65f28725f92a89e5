package writer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/achilleasa/meshc/asset/mesh"
)

// The Writer interface is implemented by all object writers.
type Writer interface {
	// Write compiled objects.
	Write([]*mesh.Object3d) error
}

// Write objects to a file. The file extension selects the output format:
// - .zip: gob encoded objects which can be loaded back by the reader package
// - .glb: binary glTF
// - .gltf: glTF with embedded buffers
func WriteObjects(objects []*mesh.Object3d, filename string) error {
	var writer Writer
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".zip":
		writer = newZipWriter(filename)
	case ".glb":
		writer = newGltfWriter(filename, true)
	case ".gltf":
		writer = newGltfWriter(filename, false)
	default:
		return fmt.Errorf("writeObjects: unsupported output format %q", filepath.Ext(filename))
	}
	return writer.Write(objects)
}
