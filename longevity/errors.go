package longevity

import (
	"fmt"

	"github.com/iand/lifespan/model"
)

// ParseError reports malformed or missing input while loading records.
type ParseError struct {
	Row    int    // 1-based data row, 0 for the header
	Column string // column name, if known
	Value  string // offending value, if any
	Err    error
}

func (e *ParseError) Error() string {
	msg := "parse"
	if e.Row > 0 {
		msg += fmt.Sprintf(" row %d", e.Row)
	} else {
		msg += " header"
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" value %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidArgumentError reports an argument outside the domain of an operation.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}

// InsufficientDataError reports a statistic requested over too few records.
type InsufficientDataError struct {
	Statistic string
	Need      int
	Have      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s needs at least %d records, have %d", e.Statistic, e.Need, e.Have)
}

// DataIntegrityError reports a record whose end date precedes its birth date.
// It does not prevent the record from being augmented.
type DataIntegrityError struct {
	Row   int
	Name  string
	Birth *model.Date
	End   *model.Date
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("row %d (%s): end date %s precedes birth date %s", e.Row, e.Name, e.End, e.Birth)
}
