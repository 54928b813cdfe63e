package logging

import (
	"github.com/iand/pontium/hlog"
	"github.com/kortschak/utter"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"
)

var Flags = []cli.Flag{
	&cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "Set logging level more verbose to include info level logs",
		Value:       false,
		Destination: &Opts.Verbose,
	},

	&cli.BoolFlag{
		Name:        "veryverbose",
		Aliases:     []string{"vv"},
		Usage:       "Set logging level more verbose to include debug level logs",
		Destination: &Opts.VeryVerbose,
	},

	&cli.BoolFlag{
		Name:        "quiet",
		Aliases:     []string{"q"},
		Usage:       "Only log errors, suppressing data integrity warnings",
		Destination: &Opts.Quiet,
	},

	&cli.StringSliceFlag{
		Name:        "log-names",
		Usage:       "Always emit logging for records with these names, comma separated",
		Destination: &Opts.LogNames,
	},
}

var Opts struct {
	Verbose     bool
	VeryVerbose bool
	Quiet       bool
	LogNames    cli.StringSlice
}

func Setup() {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	if Opts.Quiet {
		logLevel.Set(slog.LevelError)
	}
	if Opts.Verbose {
		logLevel.Set(slog.LevelInfo)
	}
	if Opts.VeryVerbose {
		logLevel.Set(slog.LevelDebug)
	}

	h := new(hlog.Handler)
	h = h.WithLevel(logLevel.Level())
	logNames := Opts.LogNames.Value()
	if len(logNames) > 0 {
		for _, name := range logNames {
			h = h.WithAttrLevel(slog.String("name", name), slog.LevelDebug)
		}
	}

	slog.SetDefault(slog.New(h))
}

var (
	Default = slog.Default
	Debug   = slog.Debug
	Info    = slog.Info
	Warn    = slog.Warn
	Error   = slog.Error
	With    = slog.With
)

// Dump logs a detailed representation of v at info level.
func Dump(v any) {
	switch vt := v.(type) {
	case string:
		slog.Info(vt)
	default:
		slog.Info(utter.Sdump(v))
	}
}
