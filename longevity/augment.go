package longevity

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/iand/lifespan/model"
)

// Average calendar lengths used to convert a day count to years and months.
const (
	DaysPerYear  = 365.25
	DaysPerMonth = 30.44
)

// Lifespan holds the attributes derived from a president's raw dates.
type Lifespan struct {
	YearOfBirth int
	EndDate     *model.Date // death date, or the processing date when living
	Living      bool        // true if EndDate was substituted for a missing death date
	LivedYears  int
	LivedMonths int
	LivedDays   int
	Flagged     bool // true if EndDate precedes the birth date
	Anomalies   []*model.Anomaly
}

// Record is a president augmented with derived lifespan attributes.
type Record struct {
	model.President
	Lifespan
}

// Augment derives lifespan attributes for each president. Presidents without a
// death date are measured up to the calendar date of now, the same date for
// every record. Records whose end date precedes their birth date are still
// returned, marked Flagged, and reported as DataIntegrityErrors joined into
// the returned error.
func Augment(ps []model.President, now time.Time) ([]Record, error) {
	today := model.DateOf(now)

	var errs []error
	rs := make([]Record, 0, len(ps))
	for _, p := range ps {
		r, err := augment(p, today)
		if err != nil {
			var ierr *DataIntegrityError
			if !errors.As(err, &ierr) {
				return nil, err
			}
			slog.Warn("data integrity", "row", p.Row, "name", p.Name, "error", err)
			errs = append(errs, err)
		}
		rs = append(rs, r)
	}

	return rs, errors.Join(errs...)
}

func augment(p model.President, today *model.Date) (Record, error) {
	r := Record{President: p}

	yob, ok := p.BirthDate.Year()
	if !ok || !p.BirthDate.IsPrecise() {
		return r, &ParseError{Row: p.Row, Column: ColumnBirthDate, Value: p.BirthDate.String(), Err: fmt.Errorf("not a precise date")}
	}
	r.YearOfBirth = yob

	if p.IsLiving() {
		r.EndDate = today
		r.Living = true
	} else {
		r.EndDate = p.DeathDate
	}

	days, ok := p.BirthDate.DaysUntil(r.EndDate)
	if !ok {
		return r, &ParseError{Row: p.Row, Column: ColumnDeathDate, Value: r.EndDate.String(), Err: fmt.Errorf("not a precise date")}
	}

	r.LivedDays = days
	r.LivedYears = int(float64(days) / DaysPerYear)
	r.LivedMonths = int(float64(days) / DaysPerMonth)

	slog.Debug("augmented record", "name", p.Name, "lived_days", r.LivedDays, "lived_years", r.LivedYears)

	if days < 0 {
		r.Flagged = true
		r.Anomalies = append(r.Anomalies, &model.Anomaly{
			Category: model.AnomalyCategoryLifespan,
			Text:     fmt.Sprintf("End date %s precedes birth date %s.", r.EndDate, p.BirthDate),
			Context:  p.Name,
		})
		return r, &DataIntegrityError{Row: p.Row, Name: p.Name, Birth: p.BirthDate, End: r.EndDate}
	}

	return r, nil
}
