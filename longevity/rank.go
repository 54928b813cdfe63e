package longevity

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Rank returns up to limit records ordered by days lived. Records with equal
// lifespans keep their input order. The input slice is not modified.
func Rank(records []Record, order Order, limit int) ([]Record, error) {
	if limit < 0 {
		return nil, &InvalidArgumentError{Arg: "limit", Reason: fmt.Sprintf("must not be negative, got %d", limit)}
	}

	var less func(a, b Record) bool
	switch order {
	case Ascending:
		less = func(a, b Record) bool { return a.LivedDays < b.LivedDays }
	case Descending:
		less = func(a, b Record) bool { return a.LivedDays > b.LivedDays }
	default:
		return nil, &InvalidArgumentError{Arg: "order", Reason: fmt.Sprintf("unsupported order %s", order)}
	}

	ranked := slices.Clone(records)
	slices.SortStableFunc(ranked, less)

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
