package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iand/lifespan/config"
	"github.com/iand/lifespan/longevity"
	"github.com/iand/lifespan/render"
)

const (
	CaptionAll          = "U.S. Presidents Birth and Death Information"
	CaptionLongest      = "Top %d Presidents from the longest lived to the shortest lived"
	CaptionShortest     = "Top %d Presidents from the shortest lived to the longest lived"
	CaptionMeasures     = "The mean, weighted average, median, mode, max, min and standard deviation of lived_days"
	CaptionDistribution = "Distribution of Ages"
)

// Alive replaces the death date of presidents who are still living and any
// blank location of death.
const Alive = "ALIVE"

const dateLayout = "Jan 2, 2006"

// Views are the presentation-ready projections of an augmented table.
type Views struct {
	All          *render.Table
	Longest      *render.Table
	Shortest     *render.Table
	Measures     *render.Table
	Distribution *render.Plot

	Summary longevity.Summary
	Ranked  []longevity.Record // every record, longest lived first
	Living  []longevity.Record
	Flagged []longevity.Record
}

// BuildViews derives every table and plot of the report from records.
func BuildViews(records []longevity.Record, cfg *config.Config) (*Views, error) {
	v := &Views{
		All: allTable(records, cfg),
	}

	longest, err := longevity.Rank(records, longevity.Descending, cfg.Limit)
	if err != nil {
		return nil, fmt.Errorf("rank longest: %w", err)
	}
	v.Longest = rankingTable(fmt.Sprintf(CaptionLongest, len(longest)), longest)

	shortest, err := longevity.Rank(records, longevity.Ascending, cfg.Limit)
	if err != nil {
		return nil, fmt.Errorf("rank shortest: %w", err)
	}
	v.Shortest = rankingTable(fmt.Sprintf(CaptionShortest, len(shortest)), shortest)

	v.Summary, err = longevity.Summarize(records, longevity.FieldLivedDays)
	if err != nil {
		return nil, fmt.Errorf("summarize lived days: %w", err)
	}
	v.Measures = measuresTable(v.Summary)

	v.Distribution, err = distributionPlot(records, cfg)
	if err != nil {
		return nil, fmt.Errorf("distribution: %w", err)
	}

	v.Ranked, err = longevity.Rank(records, longevity.Descending, len(records))
	if err != nil {
		return nil, fmt.Errorf("rank all: %w", err)
	}
	for _, r := range records {
		if r.Living {
			v.Living = append(v.Living, r)
		}
		if r.Flagged {
			v.Flagged = append(v.Flagged, r)
		}
	}

	return v, nil
}

func allTable(records []longevity.Record, cfg *config.Config) *render.Table {
	t := &render.Table{
		Caption: CaptionAll,
		Columns: []render.Column{
			{Label: longevity.ColumnName},
			{Label: longevity.ColumnBirthDate},
			{Label: longevity.ColumnBirthPlace},
			{Label: longevity.ColumnDeathDate},
			{Label: longevity.ColumnLocationOfDeath},
			{Label: "year_of_birth", Fill: config.MustColor(cfg.Colors.YearOfBirth)},
			{Label: string(longevity.FieldLivedYears), Fill: config.MustColor(cfg.Colors.LivedYears)},
			{Label: string(longevity.FieldLivedMonths), Fill: config.MustColor(cfg.Colors.LivedMonths)},
			{Label: string(longevity.FieldLivedDays), Fill: config.MustColor(cfg.Colors.LivedDays)},
		},
	}

	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Name,
			r.BirthDate.Format(dateLayout),
			r.BirthPlace,
			deathDate(r),
			deathLocation(r),
			strconv.Itoa(r.YearOfBirth),
			strconv.Itoa(r.LivedYears),
			strconv.Itoa(r.LivedMonths),
			strconv.Itoa(r.LivedDays),
		})
	}
	return t
}

func rankingTable(caption string, records []longevity.Record) *render.Table {
	t := &render.Table{
		Caption: caption,
		Columns: []render.Column{
			{Label: longevity.ColumnName},
			{Label: longevity.ColumnBirthDate},
			{Label: longevity.ColumnDeathDate},
			{Label: "AGE (years)"},
		},
	}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Name,
			r.BirthDate.Format(dateLayout),
			deathDate(r),
			strconv.Itoa(r.LivedYears),
		})
	}
	return t
}

func measuresTable(s longevity.Summary) *render.Table {
	return &render.Table{
		Caption: CaptionMeasures,
		Columns: []render.Column{
			{Label: "Measure"},
			{Label: "Lived Days"},
		},
		Rows: [][]string{
			{"Mean", formatMeasure(s.Mean)},
			{"Weighted average", formatMeasure(s.WeightedAverage)},
			{"Median", formatMeasure(s.Median)},
			{"Mode", formatModes(s.Mode)},
			{"Max", formatMeasure(s.Max)},
			{"Min", formatMeasure(s.Min)},
			{"Standard Deviation", formatMeasure(s.StdDev)},
		},
	}
}

func distributionPlot(records []longevity.Record, cfg *config.Config) (*render.Plot, error) {
	buckets, err := longevity.Histogram(records, longevity.FieldLivedYears, cfg.BinEdges)
	if err != nil {
		return nil, err
	}

	years, err := longevity.NewSample(records, longevity.FieldLivedYears)
	if err != nil {
		return nil, err
	}

	p := &render.Plot{
		Title:  CaptionDistribution,
		XLabel: "Years Lived",
		YLabel: "Number of Presidents",
		Fill:   config.MustColor(cfg.Colors.Histogram),
	}
	for _, b := range buckets {
		p.Buckets = append(p.Buckets, render.Bucket{Lower: b.Lower, Upper: b.Upper, Count: b.Count})
	}

	modes := years.Mode()
	for i, m := range modes {
		label := "Mode"
		if len(modes) > 1 {
			label = fmt.Sprintf("Mode %d", i+1)
		}
		p.Markers = append(p.Markers, render.Marker{Label: label, Value: m, Color: config.MustColor(cfg.Colors.Mode)})
	}
	p.Markers = append(p.Markers,
		render.Marker{Label: "Median", Value: years.Median(), Color: config.MustColor(cfg.Colors.Median)},
		render.Marker{Label: "Mean", Value: years.Mean(), Color: config.MustColor(cfg.Colors.Mean)},
	)

	return p, nil
}

func deathDate(r longevity.Record) string {
	if r.Living {
		return Alive
	}
	return r.DeathDate.Format(dateLayout)
}

func deathLocation(r longevity.Record) string {
	if r.DeathLocation == "" {
		return Alive
	}
	return r.DeathLocation
}

func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatModes(vs []float64) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(ss, ", ")
}
