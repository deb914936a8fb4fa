package commands

import (
	"context"
	"log/slog"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	paths := [][]string{
		{"trip", "list"},
		{"trip", "show"},
		{"trip", "create"},
		{"trip", "delete"},
		{"trip", "duplicate"},
		{"trip", "set-budget"},
		{"day", "add"},
		{"day", "duplicate"},
		{"item", "add"},
		{"item", "remove"},
		{"item", "done"},
		{"chat", "show"},
		{"chat", "send"},
		{"budget"},
		{"report"},
		{"export"},
		{"import"},
		{"pdf"},
		{"share"},
		{"watch"},
		{"info"},
		{"version"},
	}
	for _, p := range paths {
		cmd, _, err := root.Find(p)
		if err != nil {
			t.Errorf("%v: %v", p, err)
			continue
		}
		if cmd.Name() != p[len(p)-1] {
			t.Errorf("%v resolved to %q", p, cmd.Name())
		}
	}
}

func TestParseDay(t *testing.T) {
	if n, err := parseDay("3"); err != nil || n != 3 {
		t.Errorf("parseDay(3) = %d, %v", n, err)
	}
	if _, err := parseDay("three"); err == nil {
		t.Errorf("expected an error")
	}
}

// runIsolated executes the root command against an empty store in a temp dir.
func runIsolated(t *testing.T, args ...string) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	t.Setenv("WENDY_CONFIG_PATH", dir)
	t.Setenv("WENDY_PATH", dir)

	root := New()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("WENDY_LOG_LEVEL", "debug")
	runIsolated(t, "trip", "list", "--json")

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("WENDY_LOG_LEVEL=debug did not enable debug logging")
	}
}

func TestLogLevelFlagOverridesEnv(t *testing.T) {
	t.Setenv("WENDY_LOG_LEVEL", "debug")
	runIsolated(t, "trip", "list", "--json", "--log-level", "warn")

	ctx := context.Background()
	if slog.Default().Enabled(ctx, slog.LevelInfo) {
		t.Error("--log-level warn still logs at info")
	}
	if !slog.Default().Enabled(ctx, slog.LevelWarn) {
		t.Error("--log-level warn disabled warnings")
	}
}
