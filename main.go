package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/palabras/internal/chart"
	"github.com/dtnitsch/palabras/internal/collect"
	"github.com/dtnitsch/palabras/internal/runs"
)

func main() {
	app := &cli.App{
		Name:  "palabras",
		Usage: "track and chart the most searched dictionary words",
		Commands: []*cli.Command{
			{
				Name:      "collect",
				Usage:     "fetch today's top-searched words and store a snapshot",
				ArgsUsage: "<output_dir>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config overriding source URL and markup selectors",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: collect.CollectAction,
			},
			{
				Name:      "chart",
				Usage:     "accumulate snapshots and render the word-frequency race",
				ArgsUsage: "<input_dir>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output_gif",
						Usage: "path to save the animated race chart GIF",
					},
					&cli.StringFlag{
						Name:  "output_csv",
						Usage: "path to save the cumulative count table as CSV",
					},
					&cli.StringFlag{
						Name:  "output_png",
						Usage: "path to save the final ranking bar chart as PNG",
					},
					&cli.BoolFlag{
						Name:  "show_animation",
						Usage: "print the race frame by frame to the terminal",
					},
					&cli.IntFlag{
						Name:  "frame_duration",
						Value: 500,
						Usage: "GIF frame duration in milliseconds",
					},
					&cli.IntFlag{
						Name:  "top",
						Value: 15,
						Usage: "ranking size for the PNG and terminal output",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: chart.ChartAction,
			},
			{
				Name:  "runs",
				Usage: "list recorded collector runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: ".",
						Usage: "snapshot directory holding the run log",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to show",
					},
				},
				Action: runs.RunsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
