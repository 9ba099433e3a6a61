package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// WriteCSV serializes the table in wide form: header "date,<word1>,...",
// one row per date, cumulative integer counts in column order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{"date"}, t.words...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, date := range t.dates {
		record := make([]string, 0, len(t.words)+1)
		record = append(record, date)
		for _, count := range t.Row(date) {
			record = append(record, strconv.Itoa(count))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %s: %w", date, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// ReadCSV rebuilds a table from a WriteCSV export. Cells written as
// floats by older exports (e.g. "3.0") are accepted.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) == 0 || header[0] != "date" {
		return nil, fmt.Errorf("unexpected CSV header, want leading %q column", "date")
	}

	t := &Table{
		words:  append([]string(nil), header[1:]...),
		counts: make(map[string]map[string]int),
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("CSV row %s has %d cells, want %d", record[0], len(record), len(header))
		}

		date := record[0]
		row := make(map[string]int, len(t.words))
		for i, word := range t.words {
			count, err := parseCount(record[i+1])
			if err != nil {
				return nil, fmt.Errorf("CSV cell (%s, %s): %w", date, word, err)
			}
			if count != 0 {
				row[word] = count
			}
		}
		t.dates = append(t.dates, date)
		t.counts[date] = row
	}
	return t, nil
}

// parseCount reads a cumulative count cell. Integral floats ("3.0") are
// accepted for old exports; anything fractional is corrupt data.
func parseCount(cell string) (int, error) {
	if n, err := strconv.Atoi(cell); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid count %q", cell)
	}
	return int(f), nil
}
