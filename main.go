package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/meshc/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "meshc"
	app.Usage = "compile wavefront object files into indexed meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "set log level (debug, info, notice, warning, error)",
			EnvVar: "MESHC_LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "compile wavefront object files into indexed meshes",
			Description: `
Parse one or more wavefront obj files, resolve the attribute indices referenced
by each face and build a deduplicated vertex list plus a triangle index list
for every object.

The output format is selected by the extension of the output file: .zip stores
the compiled objects so they can be loaded by the info command, while .glb and
.gltf export them as glTF meshes. When no output file is specified, the objects
are written to a .zip file next to each input file.`,
			ArgsUsage: "object_file1.obj object_file2.obj ...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "out, o",
					Usage:  "output file (.zip, .glb or .gltf)",
					EnvVar: "MESHC_OUT",
				},
				cli.StringFlag{
					Name:  "name",
					Usage: "name for faces outside a named object; defaults to the input file name",
				},
				cli.Float64Flag{
					Name:   "simplify",
					Value:  1.0,
					Usage:  "reduce position-only objects to this fraction of their triangles",
					EnvVar: "MESHC_SIMPLIFY",
				},
			},
			Action: cmd.CompileObjects,
		},
		{
			Name:      "info",
			Usage:     "display statistics for wavefront or compiled object files",
			ArgsUsage: "object_file1.[obj|zip] ...",
			Action:    cmd.ShowObjectInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
