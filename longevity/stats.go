package longevity

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Field names a numeric derived attribute of a Record.
type Field string

const (
	FieldLivedDays   Field = "lived_days"
	FieldLivedMonths Field = "lived_months"
	FieldLivedYears  Field = "lived_years"
)

// modeScale converts a lived_years mode into the unit of the field.
var modeScale = map[Field]float64{
	FieldLivedDays:  365,
	FieldLivedYears: 1,
}

func (f Field) value(r *Record) (float64, bool) {
	switch f {
	case FieldLivedDays:
		return float64(r.LivedDays), true
	case FieldLivedMonths:
		return float64(r.LivedMonths), true
	case FieldLivedYears:
		return float64(r.LivedYears), true
	default:
		return 0, false
	}
}

// Sample is the set of values of one field over a sequence of records.
type Sample struct {
	field  Field
	sample stats.Sample
	years  []int
}

// NewSample collects the values of field from records. Only lived_days and
// lived_years are supported.
func NewSample(records []Record, field Field) (*Sample, error) {
	if _, ok := modeScale[field]; !ok {
		return nil, &InvalidArgumentError{Arg: "field", Reason: fmt.Sprintf("statistics not supported for %q", field)}
	}
	if len(records) == 0 {
		return nil, &InsufficientDataError{Statistic: "sample", Need: 1, Have: 0}
	}

	s := &Sample{
		field: field,
		years: make([]int, len(records)),
	}
	s.sample.Xs = make([]float64, len(records))
	for i := range records {
		s.sample.Xs[i], _ = field.value(&records[i])
		s.years[i] = records[i].LivedYears
	}
	s.sample.Sort()

	return s, nil
}

func (s *Sample) Field() Field { return s.field }
func (s *Sample) Len() int     { return len(s.sample.Xs) }

func (s *Sample) Mean() float64 {
	return s.sample.Mean()
}

// WeightedAverage is the mean. No weights are recorded for presidents, so
// every record carries the same weight.
func (s *Sample) WeightedAverage() float64 {
	return s.Mean()
}

func (s *Sample) Median() float64 {
	return s.sample.Quantile(0.5)
}

func (s *Sample) Min() float64 {
	lo, _ := s.sample.Bounds()
	return lo
}

func (s *Sample) Max() float64 {
	_, hi := s.sample.Bounds()
	return hi
}

// StdDev returns the sample standard deviation, which needs at least two values.
func (s *Sample) StdDev() (float64, error) {
	if s.Len() < 2 {
		return 0, &InsufficientDataError{Statistic: "standard deviation", Need: 2, Have: s.Len()}
	}
	return s.sample.StdDev(), nil
}

// Mode returns the most frequent whole years lived, in ascending order and
// expressed in the unit of the sample's field. Whole years are converted to
// days as 365 days per year. More than one value is returned when several
// are equally frequent.
func (s *Sample) Mode() []float64 {
	counts := make(map[int]int)
	top := 0
	for _, y := range s.years {
		counts[y]++
		if counts[y] > top {
			top = counts[y]
		}
	}

	years := maps.Keys(counts)
	slices.Sort(years)

	var modes []float64
	for _, y := range years {
		if counts[y] == top {
			modes = append(modes, float64(y)*modeScale[s.field])
		}
	}
	return modes
}

// Summary holds the descriptive statistics of a field.
type Summary struct {
	Field           Field
	Count           int
	Mean            float64
	WeightedAverage float64
	Median          float64
	Mode            []float64
	Max             float64
	Min             float64
	StdDev          float64
}

// Summarize computes every summary statistic of field over records.
func Summarize(records []Record, field Field) (Summary, error) {
	s, err := NewSample(records, field)
	if err != nil {
		return Summary{}, err
	}

	sd, err := s.StdDev()
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Field:           field,
		Count:           s.Len(),
		Mean:            s.Mean(),
		WeightedAverage: s.WeightedAverage(),
		Median:          s.Median(),
		Mode:            s.Mode(),
		Max:             s.Max(),
		Min:             s.Min(),
		StdDev:          sd,
	}, nil
}
