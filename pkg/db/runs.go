package db

import (
	"fmt"
	"time"
)

// Run statuses recorded by the collector.
const (
	StatusWritten       = "written"
	StatusSkippedExists = "skipped_exists"
	StatusMarkupMissing = "markup_missing"
	StatusFetchFailed   = "fetch_failed"
)

// Run is one recorded collector invocation.
type Run struct {
	ID        int64
	Date      string
	SourceURL string
	WordCount int
	Status    string
	Error     string
	CreatedAt time.Time
}

// InsertRun records one collector invocation and returns its ID.
func (db *DB) InsertRun(date, sourceURL string, wordCount int, status, errText string) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO runs (run_date, source_url, word_count, status, error) VALUES (?, ?, ?, ?, ?)`,
		date, sourceURL, wordCount, status, errText,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(
		`SELECT run_id, run_date, source_url, word_count, status, COALESCE(error, ''), created_at
		 FROM runs ORDER BY run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Date, &r.SourceURL, &r.WordCount, &r.Status, &r.Error, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}
