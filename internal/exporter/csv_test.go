package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWriteCSV(t *testing.T) {
	exp := New(zerolog.Nop())

	records := []Record{
		{
			Authors:        "Alice Author;Bob Author",
			Title:          "The First Book",
			Narrators:      "Nina Narrator",
			RuntimeMinutes: 125,
			RuntimeHM:      "2:05",
			Released:       "2020-01-15",
			Purchased:      "2021-06-01",
		},
		{
			Authors:        NA,
			Title:          "Unknown Title",
			Narrators:      NA,
			RuntimeMinutes: 0,
			RuntimeHM:      "0:00",
			Released:       "Unknown Release Date",
			Purchased:      "Unknown Purchase Date",
		},
		{
			Authors:        "Carol Writer",
			Title:          "A Title, With Comma",
			Narrators:      "Dan Voice",
			RuntimeMinutes: 59,
			RuntimeHM:      "0:59",
			Released:       "2019-03-01",
			Purchased:      "2022-12-24",
		},
	}

	// Parent directory does not exist yet
	path := filepath.Join(t.TempDir(), "data", "library.csv")

	if err := exp.WriteCSV(records, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != len(records)+1 {
		t.Fatalf("expected %d lines (header + rows), got %d", len(records)+1, len(lines))
	}
	if lines[0] != "authors,title,narrators,runtime_mmm,runtime_hm,released,purchased" {
		t.Errorf("unexpected header: %q", lines[0])
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Row order matches the slice, values follow header order
	for i, rec := range records {
		row := rows[i+1]
		want := []string{rec.Authors, rec.Title, rec.Narrators, strconv.Itoa(rec.RuntimeMinutes), rec.RuntimeHM, rec.Released, rec.Purchased}
		if !reflect.DeepEqual(row, want) {
			t.Errorf("row %d: expected %v, got %v", i, want, row)
		}
	}
}

func TestWriteCSVEmptyLibrary(t *testing.T) {
	exp := New(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "library.csv")

	if err := exp.WriteCSV(nil, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}
