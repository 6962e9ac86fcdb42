package exporter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jfmyers9/audiblex/pkg/audible"
	"github.com/rs/zerolog"
)

// NA is the sentinel written when contributor names cannot be extracted.
const NA = "N/A"

// Defaults substituted for absent item fields (matching the API's own
// field names rather than inventing new ones).
const (
	unknownTitle    = "Unknown Title"
	unknownRelease  = "Unknown Release Date"
	unknownPurchase = "Unknown Purchase Date"
)

// Record is the flat, CSV-ready projection of one library item.
type Record struct {
	Authors        string
	Title          string
	Narrators      string
	RuntimeMinutes int
	RuntimeHM      string
	Released       string
	Purchased      string
}

// Exporter turns library items into records and writes them out.
// Field anomalies are absorbed with defaults and logged, never fatal.
type Exporter struct {
	logger zerolog.Logger
}

// New creates an Exporter that logs anomalies to the given logger
func New(logger zerolog.Logger) *Exporter {
	return &Exporter{
		logger: logger.With().Str("component", "exporter").Logger(),
	}
}

// Records converts items into records, preserving input order.
func (e *Exporter) Records(items []audible.Item) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, e.record(item))
	}
	return records
}

// record builds one Record, substituting defaults for anything missing.
func (e *Exporter) record(item audible.Item) Record {
	authors, err := ContributorNames(item.Authors)
	if err != nil {
		e.logger.Warn().Err(err).Str("title", item.Title).Msg("Failed to extract authors")
		authors = NA
	}

	narrators, err := ContributorNames(item.Narrators)
	if err != nil {
		e.logger.Warn().Err(err).Str("title", item.Title).Msg("Failed to extract narrators")
		narrators = NA
	}

	title := item.Title
	if title == "" {
		title = unknownTitle
	}

	released := item.ReleaseDate
	if released == "" {
		released = unknownRelease
	}

	purchased := item.PurchaseDate
	if purchased == "" {
		purchased = unknownPurchase
	}

	minutes, hm := ConvertRuntime(item.RuntimeLengthMin)
	if minutes != item.RuntimeLengthMin {
		e.logger.Warn().
			Int("runtime_length_min", item.RuntimeLengthMin).
			Str("title", item.Title).
			Msg("Invalid runtime, using 0:00")
	}

	return Record{
		Authors:        authors,
		Title:          title,
		Narrators:      narrators,
		RuntimeMinutes: minutes,
		RuntimeHM:      hm,
		Released:       released,
		Purchased:      purchased,
	}
}

// ConvertRuntime returns a runtime both as total minutes and as "H:MM" with
// the minute part zero-padded to two digits. A negative input is invalid and
// falls back to (0, "0:00"); the function never fails.
func ConvertRuntime(minutes int) (int, string) {
	if minutes < 0 {
		return 0, "0:00"
	}
	return minutes, fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ContributorNames joins contributor names with ";" in input order.
//
// An absent list joins to "". A null or malformed list, or any entry
// without a name, returns an error; the fallback is all-or-nothing, one
// malformed entry discards the whole list. Callers substitute NA for the
// error case.
func ContributorNames(contributors audible.Contributors) (string, error) {
	if contributors.Invalid {
		return "", errors.New("contributor list is null or malformed")
	}

	names := make([]string, 0, len(contributors.List))
	for i, c := range contributors.List {
		if c.Name == "" {
			return "", fmt.Errorf("contributor %d has no name", i)
		}
		names = append(names, c.Name)
	}

	return strings.Join(names, ";"), nil
}
