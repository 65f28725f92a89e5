package cmd

import (
	"errors"

	"github.com/achilleasa/meshc/asset/mesh"
	"github.com/achilleasa/meshc/asset/reader"
	"github.com/urfave/cli"
)

// Display statistics for wavefront or compiled object files.
func ShowObjectInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing object file argument")
	}

	for _, file := range ctx.Args() {
		objects, err := reader.ReadObjects(file, "")
		if err != nil {
			return err
		}

		logger.Noticef("%s contains %d object(s)\n%s", file, len(objects), mesh.Stats(objects))
	}

	return nil
}
