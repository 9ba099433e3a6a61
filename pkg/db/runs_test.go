package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRun(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	tests := []struct {
		name      string
		date      string
		wordCount int
		status    string
		errText   string
	}{
		{
			name:      "successful collection",
			date:      "2024_01_01",
			wordCount: 10,
			status:    StatusWritten,
		},
		{
			name:   "snapshot already existed",
			date:   "2024_01_01",
			status: StatusSkippedExists,
		},
		{
			name:    "markup missing",
			date:    "2024_01_02",
			status:  StatusMarkupMissing,
			errText: "top searches markup not found",
		},
		{
			name:    "fetch failed",
			date:    "2024_01_03",
			status:  StatusFetchFailed,
			errText: "connection refused",
		},
	}

	var lastID int64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := database.InsertRun(tt.date, "https://academia.gal/dicionario", tt.wordCount, tt.status, tt.errText)
			if err != nil {
				t.Fatalf("InsertRun() error = %v", err)
			}
			if id <= lastID {
				t.Errorf("InsertRun() id = %d, want > %d", id, lastID)
			}
			lastID = id
		})
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	dates := []string{"2024_01_01", "2024_01_02", "2024_01_03"}
	for _, date := range dates {
		if _, err := database.InsertRun(date, "https://example.test", 5, StatusWritten, ""); err != nil {
			t.Fatalf("InsertRun(%s) error = %v", date, err)
		}
	}

	runs, err := database.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != len(dates) {
		t.Fatalf("ListRuns() returned %d runs, want %d", len(runs), len(dates))
	}

	for i, want := range []string{"2024_01_03", "2024_01_02", "2024_01_01"} {
		if runs[i].Date != want {
			t.Errorf("ListRuns()[%d].Date = %s, want %s", i, runs[i].Date, want)
		}
	}
}

func TestListRunsLimit(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	for i := 0; i < 5; i++ {
		if _, err := database.InsertRun("2024_01_01", "https://example.test", i, StatusWritten, ""); err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
	}

	runs, err := database.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("ListRuns(2) returned %d runs, want 2", len(runs))
	}

	// Non-positive limit falls back to the default.
	runs, err = database.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns(0) error = %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("ListRuns(0) returned %d runs, want 5", len(runs))
	}
}

func TestListRunsEmpty(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()

	runs, err := database.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("ListRuns() returned %d runs on empty table", len(runs))
	}
}
