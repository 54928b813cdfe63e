package logging

import (
	"context"
	"testing"

	"golang.org/x/exp/slog"
)

func TestSetupLevels(t *testing.T) {
	testCases := []struct {
		name        string
		verbose     bool
		veryVerbose bool
		quiet       bool
		enabled     slog.Level
		disabled    slog.Level
	}{
		{name: "default", enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{name: "quiet", quiet: true, enabled: slog.LevelError, disabled: slog.LevelWarn},
		{name: "verbose", verbose: true, enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{name: "very verbose", veryVerbose: true, enabled: slog.LevelDebug, disabled: slog.LevelDebug - 4},
	}

	prev := slog.Default()
	defer slog.SetDefault(prev)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			Opts.Verbose = tc.verbose
			Opts.VeryVerbose = tc.veryVerbose
			Opts.Quiet = tc.quiet
			defer func() {
				Opts.Verbose, Opts.VeryVerbose, Opts.Quiet = false, false, false
			}()

			Setup()

			ctx := context.Background()
			if !Default().Enabled(ctx, tc.enabled) {
				t.Errorf("level %s not enabled", tc.enabled)
			}
			if Default().Enabled(ctx, tc.disabled) {
				t.Errorf("level %s unexpectedly enabled", tc.disabled)
			}
		})
	}
}
