// Package export writes the finished timesheet as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rohankatakam/gitsheet/internal/models"
)

// WriteCSV writes the header row followed by one record per entry.
func WriteCSV(w io.Writer, entries []models.LogEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.Fields()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		if err := writer.Write(e.Record()); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

// WriteFile exports the entries to a CSV file at the given path. The file is
// closed on every exit path; a write failure can leave a partial file behind,
// which is not cleaned up.
func WriteFile(path string, entries []models.LogEntry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file %s: %w", path, closeErr)
		}
	}()

	return WriteCSV(f, entries)
}
