package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/achilleasa/meshc/asset/decimate"
	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/asset/reader"
	"github.com/achilleasa/meshc/asset/writer"
	"github.com/urfave/cli"
)

// Compile wavefront object files into indexed meshes.
func CompileObjects(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing object file argument")
	}

	out := ctx.String("out")
	if out != "" && ctx.NArg() > 1 {
		return errors.New("the out flag can only be used when compiling a single file")
	}

	factor := ctx.Float64("simplify")
	for _, objFile := range ctx.Args() {
		if !strings.HasSuffix(objFile, ".obj") {
			return fmt.Errorf("unsupported file %s", objFile)
		}

		objects, err := reader.ReadObjects(objFile, ctx.String("name"))
		if err != nil {
			return err
		}

		if factor != 0 && factor != 1 {
			if objects, err = decimate.SimplifyAll(objects, factor); err != nil {
				return err
			}
		}

		logger.Noticef("compiled %s\n%s", objFile, mesh.Stats(objects))

		target := out
		if target == "" {
			target = outputFile(objFile)
		}
		if err = writer.WriteObjects(objects, target); err != nil {
			return err
		}
	}

	return nil
}

// Get the default output file for a source file.
func outputFile(objFile string) string {
	return strings.TrimSuffix(objFile, filepath.Ext(objFile)) + ".zip"
}
