/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/urfave/cli/v2"

	"github.com/iand/lifespan/config"
	"github.com/iand/lifespan/gedcom"
	"github.com/iand/lifespan/logging"
	"github.com/iand/lifespan/longevity"
	"github.com/iand/lifespan/model"
	"github.com/iand/lifespan/render"
)

// inputOptions are shared by every command that reads a data file.
type inputOptions struct {
	inputFile  string
	configFile string
	limit      int
	now        string
	strict     bool
}

func inputFlags(o *inputOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "CSV or GEDCOM (.ged) file to read presidents from",
			Destination: &o.inputFile,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Value:       filepath.Join(config.DefaultDir(), config.DefaultFilename),
			Usage:       "Path to the YAML configuration file.",
			Destination: &o.configFile,
		},
		&cli.IntFlag{
			Name:        "limit",
			Aliases:     []string{"n"},
			Usage:       "number of presidents to include in each ranking (overrides config)",
			Destination: &o.limit,
		},
		&cli.StringFlag{
			Name:        "now",
			Usage:       "date in YYYY-MM-DD format to measure living presidents up to (default today)",
			Destination: &o.now,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "treat records whose death precedes their birth as fatal",
			Value:       false,
			Destination: &o.strict,
		},
	}
}

var reportOpts struct {
	inputOptions
	outputDir string
	html      bool
}

var Command = &cli.Command{
	Name:   "report",
	Usage:  "Render longevity tables and an age distribution chart as images and markdown.",
	Action: reportCmd,
	Flags: append(append(inputFlags(&reportOpts.inputOptions),
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Value:       ".",
			Usage:       "Directory in which to write the report",
			Destination: &reportOpts.outputDir,
		},
		&cli.BoolFlag{
			Name:        "html",
			Usage:       "Also write the report as an HTML page",
			Value:       false,
			Destination: &reportOpts.html,
		},
	), logging.Flags...),
}

func reportCmd(cc *cli.Context) error {
	logging.Setup()

	records, cfg, err := loadRecords(cc, &reportOpts.inputOptions)
	if err != nil {
		return err
	}

	v, err := BuildViews(records, cfg)
	if err != nil {
		return fmt.Errorf("build views: %w", err)
	}

	if err := os.MkdirAll(reportOpts.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tr := render.NewTableRenderer(cfg.FontFile, cfg.BoldFontFile, cfg.FontSize)
	for _, t := range []*render.Table{v.All, v.Longest, v.Shortest, v.Measures} {
		var buf bytes.Buffer
		if err := tr.Render(&buf, t); err != nil {
			return fmt.Errorf("render table %q: %w", t.Caption, err)
		}
		if err := writeOutput(imageFilename(t.Caption), buf.Bytes()); err != nil {
			return err
		}
	}

	pr := render.NewPlotRenderer(cfg.FontFile)
	var buf bytes.Buffer
	if err := pr.Render(&buf, v.Distribution); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	plotFilename := imageFilename(v.Distribution.Title)
	if err := writeOutput(plotFilename, buf.Bytes()); err != nil {
		return err
	}

	images := map[string]string{v.Distribution.Title: plotFilename}
	if err := writeOutput("report.md", []byte(EncodeMarkdown(v, images))); err != nil {
		return err
	}

	if reportOpts.html {
		buf.Reset()
		if err := WriteHTML(&buf, v, images); err != nil {
			return fmt.Errorf("encode html: %w", err)
		}
		if err := writeOutput("report.html", buf.Bytes()); err != nil {
			return err
		}
	}

	logging.Info("report written", "dir", reportOpts.outputDir, "records", len(records))
	return nil
}

func imageFilename(caption string) string {
	return slug.Make(caption) + ".png"
}

func writeOutput(name string, data []byte) error {
	fname := filepath.Join(reportOpts.outputDir, name)
	logging.Debug("writing output", "filename", fname, "bytes", len(data))
	if err := os.WriteFile(fname, data, 0o666); err != nil {
		return fmt.Errorf("failed writing output file: %w", err)
	}
	return nil
}

// loadRecords reads, augments and returns the records named by the input
// options together with the effective configuration.
func loadRecords(cc *cli.Context, o *inputOptions) ([]longevity.Record, *config.Config, error) {
	if o.inputFile == "" {
		return nil, nil, fmt.Errorf("no input file specified")
	}

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if cc.IsSet("limit") {
		cfg.Limit = o.limit
	}

	now := time.Now()
	if o.now != "" {
		now, err = time.Parse("2006-01-02", o.now)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid now date: %w", err)
		}
	}

	var l loader
	if strings.EqualFold(filepath.Ext(o.inputFile), ".ged") {
		l, err = gedcom.NewLoader(o.inputFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load gedcom: %w", err)
		}
	} else {
		l = csvLoader(o.inputFile)
	}

	ps, err := l.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load presidents: %w", err)
	}

	records, err := longevity.Augment(ps, now)
	if err != nil {
		if records == nil || o.strict {
			return nil, nil, fmt.Errorf("augment: %w", err)
		}
		logging.Warn("continuing with flagged records", "error", err)
	}

	if logging.Opts.VeryVerbose {
		logging.Dump(cfg)
	}

	return records, cfg, nil
}

type loader interface {
	Load() ([]model.President, error)
}

type csvLoader string

func (c csvLoader) Load() ([]model.President, error) {
	return longevity.LoadFile(string(c))
}
