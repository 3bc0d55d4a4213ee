package reporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
)

// CSVHeader returns the lexicographically sorted union of keys across all
// rows. The schema is self-describing and stable only within one run.
func CSVHeader(rows []map[string]string) []string {
	seen := make(map[string]bool)
	var header []string
	for _, row := range rows {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				header = append(header, key)
			}
		}
	}
	sort.Strings(header)
	return header
}

// WriteCSV saves the flattened rows to path. With zero rows there is
// nothing to describe a schema from, so no file is written.
func WriteCSV(path string, rows []map[string]string) error {
	if len(rows) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	header := CSVHeader(rows)

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(header))
		for i, key := range header {
			record[i] = row[key]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}
