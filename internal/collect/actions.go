package collect

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/palabras/models"
	"github.com/dtnitsch/palabras/pkg/db"
	"github.com/dtnitsch/palabras/pkg/fetcher"
	"github.com/dtnitsch/palabras/pkg/scrape"
	"github.com/dtnitsch/palabras/pkg/snapshot"
)

func CollectAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	outputDir := c.Args().Get(0)
	if outputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: No output directory provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  palabras collect ./data")
		os.Exit(1)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	store, err := snapshot.NewStore(outputDir)
	if err != nil {
		logger.Error("failed to open snapshot store", "error", err)
		os.Exit(2)
	}

	// Run log is advisory: never fail the collection over it.
	runLog, err := db.Open(outputDir)
	if err != nil {
		logger.Warn("run log unavailable", "error", err)
		runLog = nil
	}
	if runLog != nil {
		defer runLog.Close()
	}

	today := time.Now().Format(snapshot.DateLayout)

	// Existence check before the fetch: today's snapshot is immutable, so
	// a second run has no reason to touch the network.
	if store.Exists(today) {
		logger.Info("snapshot already exists", "date", today, "path", store.Path(today))
		recordRun(logger, runLog, today, cfg.SourceURL, 0, db.StatusSkippedExists, "")
		fmt.Printf("Snapshot %s already exists. Nothing to write.\n", store.Path(today))
		return nil
	}

	logger.Info("fetching source page", "url", cfg.SourceURL)
	f := fetcher.NewFetcher()
	doc, err := f.GetHtml(cfg.SourceURL)
	if err != nil {
		recordRun(logger, runLog, today, cfg.SourceURL, 0, db.StatusFetchFailed, err.Error())
		return fmt.Errorf("failed to fetch %s: %w", cfg.SourceURL, err)
	}

	words, err := scrape.TopSearches(doc, scrape.Selectors{
		ContainerID:   cfg.ContainerID,
		WeekListClass: cfg.WeekListClass,
		ItemClass:     cfg.ItemClass,
	})
	if err != nil {
		if errors.Is(err, scrape.ErrMarkupNotFound) {
			// Benign: the page rendered without the widget. Report and
			// leave the day without a snapshot.
			logger.Error("expected markup not found", "error", err)
			recordRun(logger, runLog, today, cfg.SourceURL, 0, db.StatusMarkupMissing, err.Error())
			fmt.Println("The top-searches section was not found on the page. No file written.")
			return nil
		}
		return fmt.Errorf("failed to scrape word list: %w", err)
	}

	if lang, expected := scrape.NewLanguageGuard().Check(words); !expected {
		logger.Warn("snapshot language looks unexpected, page layout may have shifted",
			"detected", lang.String(), "words", len(words))
	}

	path, err := store.Write(today, words)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	recordRun(logger, runLog, today, cfg.SourceURL, len(words), db.StatusWritten, "")
	logger.Info("snapshot written", "date", today, "words", len(words), "path", path)
	fmt.Printf("The most searched words have been written to %s\n", path)
	return nil
}

// recordRun writes a run row, logging instead of failing on error.
func recordRun(logger *slog.Logger, runLog *db.DB, date, sourceURL string, wordCount int, status, errText string) {
	if runLog == nil {
		return
	}
	if _, err := runLog.InsertRun(date, sourceURL, wordCount, status, errText); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
