package writer

import (
	"time"

	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/log"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

type gltfWriter struct {
	logger   log.Logger
	filename string
	binary   bool
}

// Create a new glTF object writer.
func newGltfWriter(filename string, binary bool) *gltfWriter {
	return &gltfWriter{
		logger:   log.New("gltf writer"),
		filename: filename,
		binary:   binary,
	}
}

// Write each object as a glTF mesh with a single indexed triangle primitive
// and attach a node for it to the default scene.
func (w *gltfWriter) Write(objects []*mesh.Object3d) error {
	w.logger.Noticef("writing glTF document to %s", w.filename)
	start := time.Now()

	doc := buildDocument(objects, w.logger)

	var err error
	if w.binary {
		err = gltf.SaveBinary(doc, w.filename)
	} else {
		err = gltf.Save(doc, w.filename)
	}
	if err != nil {
		return err
	}

	w.logger.Noticef("wrote %d meshes in %d ms", len(doc.Meshes), time.Since(start).Nanoseconds()/1e6)
	return nil
}

func buildDocument(objects []*mesh.Object3d, logger log.Logger) *gltf.Document {
	doc := gltf.NewDocument()
	for _, obj := range objects {
		if len(obj.Indices) == 0 {
			logger.Warningf(`skipping object "%s" as it contains no triangles`, obj.Name)
			continue
		}

		positions := make([][3]float32, len(obj.Vertices))
		for i, v := range obj.Vertices {
			positions[i] = v.Position.Float32()
		}
		attributes := map[string]uint32{
			gltf.POSITION: modeler.WritePosition(doc, positions),
		}

		if obj.Format.HasNormal() {
			normals := make([][3]float32, len(obj.Vertices))
			for i, v := range obj.Vertices {
				normals[i] = v.Normal.Float32()
			}
			attributes[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
		}

		if obj.Format.HasTexCoord() {
			uvs := make([][2]float32, len(obj.Vertices))
			for i, v := range obj.Vertices {
				uvs[i] = v.TexCoord.Float32()
			}
			attributes[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, uvs)
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: obj.Name,
			Primitives: []*gltf.Primitive{
				{
					Indices:    gltf.Index(modeler.WriteIndices(doc, obj.Indices)),
					Attributes: attributes,
				},
			},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: obj.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}
