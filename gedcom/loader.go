package gedcom

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iand/gdate"
	"github.com/iand/gedcom"
	"golang.org/x/exp/slog"

	"github.com/iand/lifespan/longevity"
	"github.com/iand/lifespan/model"
	"github.com/iand/lifespan/text"
)

// Loader reads presidents from the individuals of a GEDCOM file.
type Loader struct {
	ScopeName string
	Gedcom    *gedcom.Gedcom
}

func NewLoader(filename string) (*Loader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open gedcom file: %w", err)
	}

	return NewLoaderFromReader(filename, bytes.NewReader(data))
}

func NewLoaderFromReader(scope string, r io.Reader) (*Loader, error) {
	d := gedcom.NewDecoder(r)

	g, err := d.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode gedcom: %w", err)
	}
	sort.SliceStable(g.Individual, func(a, b int) bool { return g.Individual[a].Xref < g.Individual[b].Xref })

	return &Loader{
		ScopeName: scope,
		Gedcom:    g,
	}, nil
}

func (l *Loader) Scope() string {
	return l.ScopeName
}

// Load returns a president for each individual that has a name and a birth
// event, in xref order. Individuals without a birth event are skipped. Birth
// and death dates must be precise days.
func (l *Loader) Load() ([]model.President, error) {
	dp := &gdate.Parser{}

	var ps []model.President
	for _, in := range l.Gedcom.Individual {
		logger := slog.With("xref", in.Xref)

		if len(in.Name) == 0 {
			logger.Debug("skipping individual with no name")
			continue
		}
		name := text.RemoveRedundantWhitespace(gedcom.SplitPersonalName(in.Name[0].Name).Full)
		if name == "" {
			logger.Debug("skipping individual with empty name")
			continue
		}

		birth, death := findVitalEvents(in.Event)
		if birth == nil {
			logger.Debug("skipping individual with no birth event", "name", name)
			continue
		}

		p := model.President{
			Name:       name,
			BirthPlace: birth.Place.Name,
			Row:        len(ps) + 1,
		}

		var err error
		p.BirthDate, err = parseEventDate(dp, birth.Date)
		if err != nil {
			return nil, &longevity.ParseError{Row: p.Row, Column: "BIRT", Value: birth.Date, Err: err}
		}

		if death != nil {
			p.DeathLocation = death.Place.Name
			p.DeathDate, err = parseEventDate(dp, death.Date)
			if err != nil {
				return nil, &longevity.ParseError{Row: p.Row, Column: "DEAT", Value: death.Date, Err: err}
			}
		}

		logger.Debug("found president", "name", name, "birth", p.BirthDate, "death", p.DeathDate)
		ps = append(ps, p)
	}

	slog.Info(fmt.Sprintf("loaded %d individuals", len(ps)), "scope", l.ScopeName)
	return ps, nil
}

// findVitalEvents returns the first birth and death events.
func findVitalEvents(events []*gedcom.EventRecord) (birth, death *gedcom.EventRecord) {
	for _, er := range events {
		switch er.Tag {
		case "BIRT":
			if birth == nil {
				birth = er
			}
		case "DEAT":
			if death == nil {
				death = er
			}
		}
	}
	return birth, death
}

func parseEventDate(dp *gdate.Parser, s string) (*model.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("missing date")
	}
	dt, err := dp.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	if _, ok := gdate.AsPrecise(dt); !ok {
		return nil, fmt.Errorf("not a precise date")
	}
	return &model.Date{Date: dt}, nil
}
