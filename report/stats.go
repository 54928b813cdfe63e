package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/iand/lifespan/logging"
	"github.com/iand/lifespan/render"
)

var statsOpts struct {
	inputOptions
}

var StatsCommand = &cli.Command{
	Name:   "stats",
	Usage:  "Print longevity rankings, summary measures and age buckets as text.",
	Action: statsCmd,
	Flags:  append(inputFlags(&statsOpts.inputOptions), logging.Flags...),
}

func statsCmd(cc *cli.Context) error {
	logging.Setup()

	records, cfg, err := loadRecords(cc, &statsOpts.inputOptions)
	if err != nil {
		return err
	}

	v, err := BuildViews(records, cfg)
	if err != nil {
		return fmt.Errorf("build views: %w", err)
	}

	return WriteText(os.Stdout, v)
}

// WriteText writes the rankings, measures and distribution of v as plain
// text columns.
func WriteText(w io.Writer, v *Views) error {
	bw := bufio.NewWriter(w)
	for _, t := range []*render.Table{v.Longest, v.Shortest, v.Measures} {
		writeTextTable(bw, t)
	}

	fmt.Fprintln(bw, v.Distribution.Title)
	for _, b := range v.Distribution.Buckets {
		fmt.Fprintf(bw, "  %3g-%-3g %3d %s\n", b.Lower, b.Upper, b.Count, strings.Repeat("#", b.Count))
	}

	if len(v.Flagged) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Anomalies")
		for _, r := range v.Flagged {
			for _, a := range r.Anomalies {
				fmt.Fprintf(bw, "  %s: %s\n", a.Context, a.Text)
			}
		}
	}
	return bw.Flush()
}

func writeTextTable(w io.Writer, t *render.Table) {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c.Label)
	}
	for _, row := range t.Rows {
		for i := range widths {
			if i < len(row) && len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
	}

	writeRow := func(cells func(i int) string) {
		parts := make([]string, len(widths))
		for i, wd := range widths {
			parts[i] = fmt.Sprintf("%-*s", wd, cells(i))
		}
		fmt.Fprintln(w, strings.TrimRight("  "+strings.Join(parts, "  "), " "))
	}

	fmt.Fprintln(w, t.Caption)
	writeRow(func(i int) string { return t.Columns[i].Label })
	for _, row := range t.Rows {
		writeRow(func(i int) string {
			if i < len(row) {
				return row[i]
			}
			return ""
		})
	}
	fmt.Fprintln(w)
}
