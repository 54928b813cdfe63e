package longevity

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iand/lifespan/model"
)

const sampleCSV = `NAME,BIRTH DATE,BIRTH PLACE,DEATH DATE,LOCATION OF DEATH
George Washington,"Feb 22, 1732","Westmoreland Co., Va.","Dec 14, 1799","Mount Vernon, Va."
John Adams,"Oct 30, 1735","Quincy, Mass.","July 4, 1826","Quincy, Mass."
Joe Biden,"Nov 20, 1942","Scranton, Pa.",,
Data compiled from public records,,,,
`

func TestLoad(t *testing.T) {
	ps, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	want := []model.President{
		{
			Name:          "George Washington",
			BirthDate:     model.PreciseDate(1732, 2, 22),
			DeathDate:     model.PreciseDate(1799, 12, 14),
			BirthPlace:    "Westmoreland Co., Va.",
			DeathLocation: "Mount Vernon, Va.",
			Row:           1,
		},
		{
			Name:          "John Adams",
			BirthDate:     model.PreciseDate(1735, 10, 30),
			DeathDate:     model.PreciseDate(1826, 7, 4),
			BirthPlace:    "Quincy, Mass.",
			DeathLocation: "Quincy, Mass.",
			Row:           2,
		},
		{
			Name:       "Joe Biden",
			BirthDate:  model.PreciseDate(1942, 11, 20),
			BirthPlace: "Scranton, Pa.",
			Row:        3,
		},
	}

	if diff := cmp.Diff(want, ps); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDiscardsLastRow(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "header only",
			input: "NAME,BIRTH DATE\n",
			want:  []string{},
		},
		{
			name:  "single row",
			input: "NAME,BIRTH DATE\nA,\"Jan 1, 1900\"\n",
			want:  []string{},
		},
		{
			name:  "trailing valid row",
			input: "NAME,BIRTH DATE\nA,\"Jan 1, 1900\"\nB,\"Jan 1, 1901\"\n",
			want:  []string{"A"},
		},
		{
			name:  "trailing footer",
			input: "NAME,BIRTH DATE\nA,\"Jan 1, 1900\"\nB,\"Jan 1, 1901\"\n,,\n",
			want:  []string{"A", "B"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ps, err := Load(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("got unexpected error: %v", err)
			}
			got := make([]string, 0, len(ps))
			for _, p := range ps {
				got = append(got, p.Name)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadSimilarHeaders(t *testing.T) {
	input := "Name, Birth  Date,DEATHDATE,Birth Place,Location of Death\n" +
		"A,\"Jan 1, 1900\",\"Jan 1, 1950\",X,Y\n" +
		"footer\n"

	ps, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if len(ps) != 1 {
		t.Fatalf("got %d records, wanted 1", len(ps))
	}

	want := model.President{
		Name:          "A",
		BirthDate:     model.PreciseDate(1900, 1, 1),
		DeathDate:     model.PreciseDate(1950, 1, 1),
		BirthPlace:    "X",
		DeathLocation: "Y",
		Row:           1,
	}
	if diff := cmp.Diff(want, ps[0]); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantRow    int
		wantColumn string
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:       "missing name column",
			input:      "PERSON,BIRTH DATE\nA,\"Jan 1, 1900\"\nfooter\n",
			wantColumn: ColumnName,
		},
		{
			name:       "missing birth date column",
			input:      "NAME,DEATH DATE\nA,\"Jan 1, 1900\"\nfooter\n",
			wantColumn: ColumnBirthDate,
		},
		{
			name:       "missing name",
			input:      "NAME,BIRTH DATE\nA,\"Jan 1, 1900\"\n,\"Jan 1, 1900\"\nfooter\n",
			wantRow:    2,
			wantColumn: ColumnName,
		},
		{
			name:       "missing birth date",
			input:      "NAME,BIRTH DATE\nA,\nfooter\n",
			wantRow:    1,
			wantColumn: ColumnBirthDate,
		},
		{
			name:       "malformed birth date",
			input:      "NAME,BIRTH DATE\nA,\"Jan 41, 1900\"\nfooter\n",
			wantRow:    1,
			wantColumn: ColumnBirthDate,
		},
		{
			name:       "malformed death date",
			input:      "NAME,BIRTH DATE,DEATH DATE\nA,\"Jan 1, 1900\",sometime\nfooter\n",
			wantRow:    1,
			wantColumn: ColumnDeathDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ps, err := Load(strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("missing expected error")
			}
			if ps != nil {
				t.Errorf("got %d records, wanted none", len(ps))
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("got error %T, wanted *ParseError", err)
			}
			if perr.Row != tc.wantRow {
				t.Errorf("got row %d, wanted %d", perr.Row, tc.wantRow)
			}
			if perr.Column != tc.wantColumn {
				t.Errorf("got column %q, wanted %q", perr.Column, tc.wantColumn)
			}
		})
	}
}
