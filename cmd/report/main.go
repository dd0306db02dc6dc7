package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/lutefd/skyblock-facade/internal/domain/profiles"
	"github.com/lutefd/skyblock-facade/internal/lookup"
	"github.com/lutefd/skyblock-facade/internal/report"
)

func main() {
	app := &cli.App{
		Name:  "report",
		Usage: "build a SkyBlock profile workbook from saved Hypixel API responses",
		Commands: []*cli.Command{
			newExportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("report failed", "error", err)
		os.Exit(1)
	}
}

func newExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write an .xlsx workbook for one player",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "uuid", Usage: "player UUID, dashed form", Required: true},
			&cli.StringFlag{Name: "player", Usage: "path to a saved /player response", Required: true},
			&cli.StringFlag{Name: "profiles", Usage: "path to a saved /skyblock/profiles response", Required: true},
			&cli.StringFlag{Name: "out", Usage: "output workbook path", Value: "profiles.xlsx"},
			&cli.StringFlag{Name: "sort", Usage: "order profiles by strategy (weight, skills, slayers, catacombs)"},
		},
		Action: func(c *cli.Context) error {
			playerUUID, err := lookup.ParseUUID(c.String("uuid"))
			if err != nil {
				return fmt.Errorf("%s: %w", c.String("uuid"), err)
			}

			set, err := report.LoadFiles(c.String("player"), c.String("profiles"), playerUUID.String())
			if err != nil {
				return err
			}

			if keyword := c.String("sort"); keyword != "" {
				strategy, ok := profiles.ParseStrategy(keyword)
				if !ok {
					return fmt.Errorf("unknown sort strategy %q", keyword)
				}
				set = profiles.Ranked(set, strategy)
			}

			out := c.String("out")
			if err := report.SaveAs(out, set); err != nil {
				return fmt.Errorf("save %s: %w", out, err)
			}
			fmt.Fprintf(c.App.Writer, "wrote %d profiles to %s\n", len(set), out)
			return nil
		},
	}
}
