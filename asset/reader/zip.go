package reader

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"time"

	"github.com/achilleasa/meshc/asset"
	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/log"
)

const (
	dataFile = "objects.bin"
)

type zipReader struct {
	logger log.Logger
}

// Create a new reader for compiled object archives.
func newZipReader() *zipReader {
	return &zipReader{
		logger: log.New("zip reader"),
	}
}

// Read compiled objects from a zip file.
func (p *zipReader) Read(res *asset.Resource) ([]*mesh.Object3d, error) {
	p.logger.Noticef(`loading compiled objects from "%s"`, res.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var objects []*mesh.Object3d
	found := false
	for _, f := range zr.File {
		if f.Name != dataFile {
			p.logger.Warningf("unknown file %s in object archive; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		err = gob.NewDecoder(rc).Decode(&objects)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("zipReader: failed to load %s: %s", f.Name, err.Error())
		}
		found = true
	}

	if !found {
		return nil, fmt.Errorf("zipReader: %s does not contain %s", res.Path(), dataFile)
	}

	for _, obj := range objects {
		if err = obj.Validate(); err != nil {
			return nil, fmt.Errorf("zipReader: %s", err.Error())
		}
	}

	p.logger.Noticef("loaded %d objects in %d ms", len(objects), time.Since(start).Nanoseconds()/1e6)
	return objects, nil
}
