package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/trackhq/fencewatch/app"
)

var (
	debug      bool
	configPath string
)

func main() {
	cliApp := &cli.App{
		Name:   "fencewatch",
		Usage:  "Geofence events from raw traccar positions",
		Action: run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "debug or not",
				Destination: &debug,
				EnvVars:     []string{"FENCEWATCH_DEBUG"},
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Value:       "config.yaml",
				Usage:       "path to config file",
				Destination: &configPath,
				EnvVars:     []string{"FENCEWATCH_CONFIG"},
			},
			&cli.StringSliceFlag{
				Name:    "host",
				Aliases: []string{"H"},
				Usage:   "listen endpoint, overrides config hosts",
				EnvVars: []string{"FENCEWATCH_HOSTS"},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(c *cli.Context) error {
	if debug {
		log.SetLevel(log.DebugLevel)
		log.Debugln("Debug logging enabled")
	}

	return app.Application{
		ConfigPath: configPath,
		Hosts:      c.StringSlice("host"),
		Debug:      debug,
	}.Run()
}
