package main

import (
	"context"
	"fmt"

	"alkhair/internal/storage"

	"github.com/urfave/cli/v2"
)

var dirFlag = &cli.StringFlag{
	Name:     "dir",
	Aliases:  []string{"d"},
	Usage:    "Directory holding " + storage.DataFileName + " (e.g. a USB drive)",
	Required: true,
}

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Write the whole office to " + storage.DataFileName + " in a directory",
	Flags: []cli.Flag{dirFlag},
	Action: func(cCtx *cli.Context) error {
		ctx := context.Background()

		o, err := openOffice(ctx, cCtx)
		if err != nil {
			return err
		}
		defer o.Close()

		target := storage.NewFileStorage(cCtx.String("dir"))
		if err := target.Save(ctx, o.store.Snapshot()); err != nil {
			return fmt.Errorf("failed to export office: %w", err)
		}

		o.logger.WithField("path", target.Path()).Info("office exported")
		return nil
	},
}

var importCommand = &cli.Command{
	Name:  "import",
	Usage: "Replace the office with " + storage.DataFileName + " from a directory",
	Flags: []cli.Flag{dirFlag},
	Action: func(cCtx *cli.Context) error {
		ctx := context.Background()

		o, err := openOffice(ctx, cCtx)
		if err != nil {
			return err
		}
		defer o.Close()

		source := storage.NewFileStorage(cCtx.String("dir"))
		data, err := source.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", source.Path(), err)
		}

		if err := o.store.Replace(ctx, data); err != nil {
			return fmt.Errorf("failed to import office: %w", err)
		}

		o.logger.WithField("cases", len(data.Cases)).Info("office imported")
		return nil
	},
}
