package longevity

import (
	"fmt"
)

// DefaultBinEdges are five year buckets covering ages 40 to 100.
var DefaultBinEdges = []float64{40, 45, 50, 55, 60, 65, 70, 75, 80, 85, 90, 95, 100}

// Bucket is the half-open interval [Lower, Upper) and the number of records
// falling within it.
type Bucket struct {
	Lower float64
	Upper float64
	Count int
}

// Histogram counts records by years lived into the buckets delimited by
// edges, which must be strictly increasing. Records outside every bucket are
// not counted.
func Histogram(records []Record, field Field, edges []float64) ([]Bucket, error) {
	if field != FieldLivedYears {
		return nil, &InvalidArgumentError{Arg: "field", Reason: fmt.Sprintf("histogram not supported for %q", field)}
	}
	if len(edges) < 2 {
		return nil, &InvalidArgumentError{Arg: "edges", Reason: fmt.Sprintf("need at least 2 edges, got %d", len(edges))}
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, &InvalidArgumentError{Arg: "edges", Reason: fmt.Sprintf("not strictly increasing at index %d (%v after %v)", i, edges[i], edges[i-1])}
		}
	}

	buckets := make([]Bucket, len(edges)-1)
	for i := range buckets {
		buckets[i].Lower = edges[i]
		buckets[i].Upper = edges[i+1]
	}

	for i := range records {
		v, _ := field.value(&records[i])
		if v < edges[0] || v >= edges[len(edges)-1] {
			continue
		}
		for j := range buckets {
			if v < buckets[j].Upper {
				buckets[j].Count++
				break
			}
		}
	}

	return buckets, nil
}

// Counts returns the count of each bucket in order.
func Counts(buckets []Bucket) []int {
	counts := make([]int, len(buckets))
	for i, b := range buckets {
		counts[i] = b.Count
	}
	return counts
}
