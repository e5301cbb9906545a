package main

import (
	"context"
	"fmt"

	"alkhair/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var statsCommand = &cli.Command{
	Name:  "stats",
	Usage: "Print balances and the per-category breakdown",
	Action: func(cCtx *cli.Context) error {
		ctx := context.Background()

		o, err := openOffice(ctx, cCtx)
		if err != nil {
			return err
		}
		defer o.Close()

		_, err = pp.Println(o.store.Summary())
		return err
	},
}

var matchCommand = &cli.Command{
	Name:      "match",
	Usage:     "Show existing records that look like a name, ID or phone",
	ArgsUsage: "<value>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "field",
			Usage: "name, nationalId, phone, spouseName, spouseId or spousePhone",
			Value: string(types.FieldName),
		},
		&cli.StringFlag{
			Name:  "scope",
			Usage: "affidavit, case or global",
			Value: string(types.ScopeGlobal),
		},
	},
	Action: func(cCtx *cli.Context) error {
		value := cCtx.Args().First()
		if value == "" {
			return fmt.Errorf("give the value to look up")
		}

		field := types.MatchField(cCtx.String("field"))
		if !field.Valid() {
			return fmt.Errorf("unknown field %q", field)
		}

		ctx := context.Background()

		o, err := openOffice(ctx, cCtx)
		if err != nil {
			return err
		}
		defer o.Close()

		matches := o.store.FindMatches(types.MatchScope(cCtx.String("scope")), field, value)
		if len(matches) == 0 {
			fmt.Println("no matches")
			return nil
		}

		for _, m := range matches {
			fmt.Printf("%s: %s (%s #%d)\n", m.Label, m.DisplayName, m.Role, m.EntityID)
		}
		if o.logger.IsLevelEnabled(logrus.DebugLevel) {
			_, err = pp.Println(matches)
		}
		return err
	},
}
