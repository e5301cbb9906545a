package main

import (
	"context"
	"fmt"

	"alkhair/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Fill an empty office with demo records",
	Action: func(cCtx *cli.Context) error {
		ctx := context.Background()

		o, err := openOffice(ctx, cCtx)
		if err != nil {
			return fmt.Errorf("failed to open office: %w", err)
		}
		defer o.Close()

		res, err := seed.Demo(ctx, o.store)
		if err != nil {
			return fmt.Errorf("failed to seed office: %w", err)
		}

		if res.Skipped {
			o.logger.Info("office already has cases, nothing seeded")
			return nil
		}

		o.logger.WithFields(logrus.Fields{
			"cases":      res.Cases,
			"donations":  res.Donations,
			"expenses":   res.Expenses,
			"volunteers": res.Volunteers,
			"affidavits": res.Affidavits,
		}).Info("demo office seeded")

		return nil
	},
}
