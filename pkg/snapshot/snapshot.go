// Package snapshot stores one dated word-list file per collection day.
// Files are plain UTF-8 text, one word per line, named
// palabras_YYYY_MM_DD.txt, and are never rewritten once present.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	FilePrefix = "palabras_"
	FileExt    = ".txt"
	DateLayout = "2006_01_02"
)

// Snapshot identifies one stored word-list file.
type Snapshot struct {
	Date string
	Path string
}

// Store manages snapshot files inside a single directory.
type Store struct {
	dir string
}

// NewStore ensures the directory exists and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for a given snapshot date.
func (s *Store) Path(date string) string {
	return filepath.Join(s.dir, FilePrefix+date+FileExt)
}

// Exists reports whether the snapshot for date is already on disk. Stat
// failures count as absent so a broken directory surfaces as a write
// error rather than a silent skip.
func (s *Store) Exists(date string) bool {
	_, err := os.Stat(s.Path(date))
	return err == nil
}

// Write creates the snapshot file for date, one word per line. The file
// is opened create-exclusive so an existing snapshot is never clobbered.
func (s *Store) Write(date string, words []string) (string, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", fmt.Errorf("invalid snapshot date %q: %w", date, err)
	}

	path := s.Path(date)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("snapshot %s already exists", path)
		}
		return "", fmt.Errorf("failed to create snapshot: %w", err)
	}

	var b strings.Builder
	for _, word := range words {
		b.WriteString(word)
		b.WriteString("\n")
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close snapshot: %w", err)
	}
	return path, nil
}

// Read returns the word lines of the snapshot for date. Words may repeat;
// blank lines are dropped, everything else is kept verbatim.
func (s *Store) Read(date string) ([]string, error) {
	data, err := os.ReadFile(s.Path(date))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}

// List returns all snapshots in the directory sorted by date ascending.
// Files that do not match the naming convention are ignored.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var snaps []Snapshot
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		date, ok := ParseFilename(entry.Name())
		if !ok {
			continue
		}
		snaps = append(snaps, Snapshot{
			Date: date,
			Path: filepath.Join(s.dir, entry.Name()),
		})
	}

	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Date < snaps[j].Date })
	return snaps, nil
}

// ParseFilename extracts the embedded date from a snapshot file name.
func ParseFilename(name string) (string, bool) {
	if !strings.HasPrefix(name, FilePrefix) || !strings.HasSuffix(name, FileExt) {
		return "", false
	}
	date := strings.TrimSuffix(strings.TrimPrefix(name, FilePrefix), FileExt)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", false
	}
	return date, true
}
