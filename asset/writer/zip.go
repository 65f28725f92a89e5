package writer

import (
	"archive/zip"
	"encoding/gob"
	"os"
	"time"

	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/log"
)

const (
	dataFile = "objects.bin"
)

type zipWriter struct {
	logger   log.Logger
	filename string
}

// Create a new zip object writer
func newZipWriter(filename string) *zipWriter {
	return &zipWriter{
		logger:   log.New("zip writer"),
		filename: filename,
	}
}

// Write compiled objects to a zip file.
func (w *zipWriter) Write(objects []*mesh.Object3d) error {
	w.logger.Noticef("writing compressed objects to %s", w.filename)
	start := time.Now()

	zipFile, err := os.Create(w.filename)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)
	cw, err := zw.Create(dataFile)
	if err != nil {
		zw.Close()
		return err
	}

	err = gob.NewEncoder(cw).Encode(objects)
	if err != nil {
		zw.Close()
		return err
	}

	if err = zw.Close(); err != nil {
		return err
	}

	w.logger.Noticef("compressed objects in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}
