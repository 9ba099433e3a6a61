package chart

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	chartpkg "github.com/dtnitsch/palabras/pkg/chart"
	"github.com/dtnitsch/palabras/pkg/history"
	"github.com/dtnitsch/palabras/pkg/snapshot"
)

func ChartAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	inputDir := c.Args().Get(0)
	if inputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: No input directory provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  palabras chart ./data --output_gif race.gif --output_csv counts.csv")
		os.Exit(1)
	}

	store, err := snapshot.NewStore(inputDir)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}

	tbl, err := history.Accumulate(store)
	if err != nil {
		return fmt.Errorf("failed to accumulate snapshots: %w", err)
	}

	lastDate, ok := tbl.LastDate()
	if !ok {
		return fmt.Errorf("no snapshot files found in %s", inputDir)
	}
	logger.Info("accumulated snapshots",
		"dates", len(tbl.Dates()), "words", len(tbl.Words()), "last_date", lastDate)

	if path := c.String("output_csv"); path != "" {
		if err := writeCSV(tbl, path); err != nil {
			return err
		}
		logger.Info("CSV written", "path", path)
		fmt.Printf("CSV saved to %s\n", path)
	}

	if path := c.String("output_gif"); path != "" {
		frameDuration := time.Duration(c.Int("frame_duration")) * time.Millisecond
		if err := chartpkg.WriteGIF(path, tbl, frameDuration); err != nil {
			return fmt.Errorf("failed to write GIF: %w", err)
		}
		logger.Info("GIF written", "path", path, "frames", len(tbl.Dates()))
		fmt.Printf("GIF saved to %s\n", path)
	}

	if c.Bool("show_animation") {
		showAnimation(tbl, c.Int("top"))
	}

	if path := c.String("output_png"); path != "" {
		ranks := tbl.TopN(lastDate, c.Int("top"))
		if err := chartpkg.WriteRankingPNG(path, ranks, lastDate); err != nil {
			return fmt.Errorf("failed to write PNG: %w", err)
		}
		logger.Info("PNG written", "path", path, "date", lastDate)
		fmt.Printf("PNG saved to %s\n", path)
	}

	return nil
}

func writeCSV(tbl *history.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := tbl.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// showAnimation prints the race frame by frame as terminal tables, the
// closest a batch CLI gets to an interactive animation window.
func showAnimation(tbl *history.Table, top int) {
	for _, date := range tbl.Dates() {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetTitle(date)
		t.AppendHeader(table.Row{"Word", "Cumulative Count"})

		for _, rank := range tbl.TopN(date, top) {
			t.AppendRow(table.Row{rank.Word, rank.Count})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	}
}
