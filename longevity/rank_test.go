package longevity

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func recordsWithDays(days ...int) []Record {
	rs := make([]Record, len(days))
	for i, d := range days {
		rs[i].Name = string(rune('A' + i))
		rs[i].Row = i + 1
		rs[i].LivedDays = d
		rs[i].LivedYears = int(float64(d) / DaysPerYear)
	}
	return rs
}

func names(rs []Record) []string {
	ns := make([]string, len(rs))
	for i, r := range rs {
		ns[i] = r.Name
	}
	return ns
}

func TestRankExample(t *testing.T) {
	rs, err := Augment(testPresidents()[:2], testNow)
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	got, err := Rank(rs, Descending, 1)
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"B"}, names(got)); diff != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", diff)
	}
}

func TestRank(t *testing.T) {
	rs := recordsWithDays(300, 100, 200, 100, 400)

	testCases := []struct {
		name  string
		order Order
		limit int
		want  []string
	}{
		{
			name:  "descending",
			order: Descending,
			limit: 3,
			want:  []string{"E", "A", "C"},
		},
		{
			name:  "ascending ties keep input order",
			order: Ascending,
			limit: 3,
			want:  []string{"B", "D", "C"},
		},
		{
			name:  "descending ties keep input order",
			order: Descending,
			limit: 5,
			want:  []string{"E", "A", "C", "B", "D"},
		},
		{
			name:  "limit beyond length",
			order: Ascending,
			limit: 10,
			want:  []string{"B", "D", "C", "A", "E"},
		},
		{
			name:  "zero limit",
			order: Ascending,
			limit: 0,
			want:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Rank(rs, tc.order, tc.limit)
			if err != nil {
				t.Fatalf("got unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, names(got)); diff != "" {
				t.Errorf("Rank mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if diff := cmp.Diff([]string{"A", "B", "C", "D", "E"}, names(rs)); diff != "" {
		t.Errorf("Rank modified its input (-want +got):\n%s", diff)
	}
}

func TestRankFullSetReverses(t *testing.T) {
	rs := recordsWithDays(24767, 30397, 29346, 12000, 33119)

	desc, err := Rank(rs, Descending, len(rs))
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}
	asc, err := Rank(rs, Ascending, len(rs))
	if err != nil {
		t.Fatalf("got unexpected error: %v", err)
	}

	reversed := make([]string, len(asc))
	for i, r := range asc {
		reversed[len(asc)-1-i] = r.Name
	}

	if diff := cmp.Diff(names(desc), reversed); diff != "" {
		t.Errorf("ascending is not the reverse of descending (-want +got):\n%s", diff)
	}
}

func TestRankInvalidArguments(t *testing.T) {
	rs := recordsWithDays(1, 2)

	testCases := []struct {
		name  string
		order Order
		limit int
	}{
		{name: "negative limit", order: Ascending, limit: -1},
		{name: "unknown order", order: Order(7), limit: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Rank(rs, tc.order, tc.limit)
			var aerr *InvalidArgumentError
			if !errors.As(err, &aerr) {
				t.Fatalf("got error %v, wanted *InvalidArgumentError", err)
			}
		})
	}
}
