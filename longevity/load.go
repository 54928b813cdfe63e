package longevity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/exp/slog"

	"github.com/iand/lifespan/model"
	"github.com/iand/lifespan/text"
)

// Column names expected in the header of the source CSV.
const (
	ColumnName            = "NAME"
	ColumnBirthDate       = "BIRTH DATE"
	ColumnDeathDate       = "DEATH DATE"
	ColumnBirthPlace      = "BIRTH PLACE"
	ColumnLocationOfDeath = "LOCATION OF DEATH"
)

var (
	requiredColumns = []string{ColumnName, ColumnBirthDate}
	optionalColumns = []string{ColumnDeathDate, ColumnBirthPlace, ColumnLocationOfDeath}
)

// HeaderSimilarity is the minimum similarity a header must have to a known
// column name to be accepted in its place.
const HeaderSimilarity = 0.8

// LoadFile reads president records from the named CSV file.
func LoadFile(filename string) ([]model.President, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	ps, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return ps, nil
}

// Load reads president records from CSV. The first row is the header. The last
// row of the source is a trailing artifact and is always discarded. Any
// malformed row aborts the load.
func Load(r io.Reader) ([]model.President, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Err: fmt.Errorf("missing header row")}
		}
		return nil, &ParseError{Err: err}
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	rows, err := cr.ReadAll()
	if err != nil {
		var cerr *csv.ParseError
		if errors.As(err, &cerr) {
			// csv line numbers include the header
			return nil, &ParseError{Row: cerr.StartLine - 1, Err: cerr.Err}
		}
		return nil, &ParseError{Err: err}
	}

	if len(rows) > 0 {
		slog.Debug("discarding trailing row", "row", len(rows), "fields", rows[len(rows)-1])
		rows = rows[:len(rows)-1]
	}

	ps := make([]model.President, 0, len(rows))
	for i, row := range rows {
		p, err := cols.president(i+1, row)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}

	slog.Info("loaded records", "count", len(ps))
	return ps, nil
}

// columnIndex maps known column names to their position in a row.
type columnIndex map[string]int

func normalizeHeader(s string) string {
	return strings.ToUpper(text.RemoveRedundantWhitespace(s))
}

func resolveColumns(header []string) (columnIndex, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}

	cols := make(columnIndex)
	claimed := make(map[int]bool)

	// exact matches take precedence over similar ones
	for _, name := range append(append([]string{}, requiredColumns...), optionalColumns...) {
		for i, h := range normalized {
			if h == name && !claimed[i] {
				cols[name] = i
				claimed[i] = true
				break
			}
		}
	}

	lev := metrics.NewLevenshtein()
	for _, name := range append(append([]string{}, requiredColumns...), optionalColumns...) {
		if _, ok := cols[name]; ok {
			continue
		}
		best, bestScore := -1, 0.0
		for i, h := range normalized {
			if claimed[i] || h == "" {
				continue
			}
			score := strutil.Similarity(name, h, lev)
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best >= 0 && bestScore >= HeaderSimilarity {
			slog.Info("matched column by similarity", "column", name, "header", header[best], "similarity", bestScore)
			cols[name] = best
			claimed[best] = true
		}
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &ParseError{Column: name, Err: fmt.Errorf("missing required column")}
		}
	}
	for _, name := range optionalColumns {
		if _, ok := cols[name]; !ok {
			slog.Debug("optional column not present", "column", name)
		}
	}

	return cols, nil
}

func (c columnIndex) value(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columnIndex) president(n int, row []string) (model.President, error) {
	p := model.President{
		Name:          text.RemoveRedundantWhitespace(c.value(row, ColumnName)),
		BirthPlace:    c.value(row, ColumnBirthPlace),
		DeathLocation: c.value(row, ColumnLocationOfDeath),
		Row:           n,
	}
	if p.Name == "" {
		return p, &ParseError{Row: n, Column: ColumnName, Err: fmt.Errorf("missing value")}
	}

	birth := c.value(row, ColumnBirthDate)
	if birth == "" {
		return p, &ParseError{Row: n, Column: ColumnBirthDate, Err: fmt.Errorf("missing value")}
	}
	var err error
	p.BirthDate, err = model.ParseDate(birth)
	if err != nil {
		return p, &ParseError{Row: n, Column: ColumnBirthDate, Value: birth, Err: err}
	}

	if death := c.value(row, ColumnDeathDate); death != "" {
		p.DeathDate, err = model.ParseDate(death)
		if err != nil {
			return p, &ParseError{Row: n, Column: ColumnDeathDate, Value: death, Err: err}
		}
	}

	return p, nil
}
