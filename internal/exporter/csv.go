package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the fixed CSV header row. Row values are written in exactly
// this order.
var Header = []string{"authors", "title", "narrators", "runtime_mmm", "runtime_hm", "released", "purchased"}

// WriteCSV writes the header row followed by one row per record to path,
// creating parent directories as needed. Row order follows the slice.
func (e *Exporter) WriteCSV(records []Record, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Authors,
			r.Title,
			r.Narrators,
			strconv.Itoa(r.RuntimeMinutes),
			r.RuntimeHM,
			r.Released,
			r.Purchased,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	e.logger.Info().Str("path", path).Int("items", len(records)).Msg("Library data written")
	return nil
}
