package exporter

import (
	"testing"

	"github.com/jfmyers9/audiblex/pkg/audible"
	"github.com/rs/zerolog"
)

func TestConvertRuntime(t *testing.T) {
	tests := []struct {
		name        string
		minutes     int
		wantMinutes int
		wantHM      string
	}{
		{
			name:        "two hours five minutes",
			minutes:     125,
			wantMinutes: 125,
			wantHM:      "2:05",
		},
		{
			name:        "under an hour",
			minutes:     59,
			wantMinutes: 59,
			wantHM:      "0:59",
		},
		{
			name:        "zero",
			minutes:     0,
			wantMinutes: 0,
			wantHM:      "0:00",
		},
		{
			name:        "exact hour",
			minutes:     60,
			wantMinutes: 60,
			wantHM:      "1:00",
		},
		{
			name:        "long audiobook",
			minutes:     3003,
			wantMinutes: 3003,
			wantHM:      "50:03",
		},
		{
			name:        "negative falls back",
			minutes:     -7,
			wantMinutes: 0,
			wantHM:      "0:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMinutes, gotHM := ConvertRuntime(tt.minutes)
			if gotMinutes != tt.wantMinutes {
				t.Errorf("expected minutes %d, got %d", tt.wantMinutes, gotMinutes)
			}
			if gotHM != tt.wantHM {
				t.Errorf("expected %q, got %q", tt.wantHM, gotHM)
			}
		})
	}
}

func TestContributorNames(t *testing.T) {
	tests := []struct {
		name         string
		contributors audible.Contributors
		want         string
		wantErr      bool
	}{
		{
			name:         "two names joined in order",
			contributors: audible.Contributors{List: []audible.Contributor{{Name: "A"}, {Name: "B"}}},
			want:         "A;B",
		},
		{
			name:         "single name",
			contributors: audible.Contributors{List: []audible.Contributor{{Name: "Alice Author"}}},
			want:         "Alice Author",
		},
		{
			name:         "empty list",
			contributors: audible.Contributors{List: []audible.Contributor{}},
			want:         "",
		},
		{
			name:         "absent list joins to empty",
			contributors: audible.Contributors{},
			want:         "",
		},
		{
			name:         "null or malformed list",
			contributors: audible.Contributors{Invalid: true},
			wantErr:      true,
		},
		{
			name:         "one malformed entry discards the whole list",
			contributors: audible.Contributors{List: []audible.Contributor{{Name: "A"}, {}, {Name: "C"}}},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContributorNames(tt.contributors)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ContributorNames failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRecords(t *testing.T) {
	exp := New(zerolog.Nop())

	items := []audible.Item{
		{
			Title:            "The First Book",
			Authors:          audible.Contributors{List: []audible.Contributor{{Name: "Alice Author"}, {Name: "Bob Author"}}},
			Narrators:        audible.Contributors{List: []audible.Contributor{{Name: "Nina Narrator"}}},
			RuntimeLengthMin: 125,
			ReleaseDate:      "2020-01-15",
			PurchaseDate:     "2021-06-01",
		},
		{
			// Everything missing: defaults substituted, never fatal
		},
		{
			Title:     "The Broken Book",
			Authors:   audible.Contributors{Invalid: true},
			Narrators: audible.Contributors{Invalid: true},
		},
	}

	records := exp.Records(items)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Authors != "Alice Author;Bob Author" {
		t.Errorf("unexpected authors: %q", first.Authors)
	}
	if first.Narrators != "Nina Narrator" {
		t.Errorf("unexpected narrators: %q", first.Narrators)
	}
	if first.RuntimeMinutes != 125 || first.RuntimeHM != "2:05" {
		t.Errorf("unexpected runtime: %d %q", first.RuntimeMinutes, first.RuntimeHM)
	}
	if first.Released != "2020-01-15" || first.Purchased != "2021-06-01" {
		t.Errorf("unexpected dates: %q %q", first.Released, first.Purchased)
	}

	// Absent contributor lists join to "", only null/malformed ones become N/A
	second := records[1]
	if second.Authors != "" {
		t.Errorf("expected empty authors, got %q", second.Authors)
	}
	if second.Narrators != "" {
		t.Errorf("expected empty narrators, got %q", second.Narrators)
	}
	if second.Title != "Unknown Title" {
		t.Errorf("unexpected title default: %q", second.Title)
	}
	if second.Released != "Unknown Release Date" {
		t.Errorf("unexpected release default: %q", second.Released)
	}
	if second.Purchased != "Unknown Purchase Date" {
		t.Errorf("unexpected purchase default: %q", second.Purchased)
	}
	if second.RuntimeMinutes != 0 || second.RuntimeHM != "0:00" {
		t.Errorf("unexpected runtime default: %d %q", second.RuntimeMinutes, second.RuntimeHM)
	}

	third := records[2]
	if third.Authors != NA {
		t.Errorf("expected authors %q, got %q", NA, third.Authors)
	}
	if third.Narrators != NA {
		t.Errorf("expected narrators %q, got %q", NA, third.Narrators)
	}
}

func TestRecordsPreservesOrder(t *testing.T) {
	exp := New(zerolog.Nop())

	items := []audible.Item{
		{Title: "Zebra", Authors: audible.Contributors{List: []audible.Contributor{{Name: "Z"}}}},
		{Title: "Apple", Authors: audible.Contributors{List: []audible.Contributor{{Name: "A"}}}},
	}

	records := exp.Records(items)
	if records[0].Title != "Zebra" || records[1].Title != "Apple" {
		t.Errorf("record order does not match input order: %+v", records)
	}
}
