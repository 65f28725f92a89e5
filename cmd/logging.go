package cmd

import (
	"fmt"

	"github.com/achilleasa/meshc/log"
	"github.com/urfave/cli"
)

var logger = log.New("meshc")

func setupLogging(ctx *cli.Context) error {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, ok := log.ParseLevel(name)
		if !ok {
			return fmt.Errorf("unknown log level %q", name)
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	return nil
}
