package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "alkhair",
		Usage: "Charity office records: cases, donations, aid and affidavits",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-prefix",
				Aliases: []string{"p"},
				Usage:   "Environment variable prefix",
				Value:   "APP",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Dotenv file loaded before the environment",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Override LOG_LEVEL (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			importCommand,
			exportCommand,
			statsCommand,
			matchCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
