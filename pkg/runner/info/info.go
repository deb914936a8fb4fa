// Package info reports the active configuration and what the store holds.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/wendy/pkg/store"
)

// Info prints the settings in effect, then every stored key tagged by what it
// holds.
type Info struct {
	Config store.Config
	KV     store.KV
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Config == nil {
		return errors.New("info: no configuration loaded")
	}

	if override := os.Getenv("WENDY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintf(out, "config dir:  %s (WENDY_CONFIG_PATH)\n", override)
	}
	_, _ = fmt.Fprintf(out, "path:        %s\n", n.Config.BasePath())
	_, _ = fmt.Fprintf(out, "backend:     %s\n", n.Config.Backend())
	_, _ = fmt.Fprintf(out, "currency:    %s\n", n.Config.Currency())
	_, _ = fmt.Fprintf(out, "share base:  %s\n", n.Config.ShareBase())
	_, _ = fmt.Fprintf(out, "log level:   %s\n", n.Config.LogLevel())

	if n.KV == nil {
		return errors.New("info: no storage backend")
	}

	trips := store.NewTrips(n.KV).Load()
	_, _ = fmt.Fprintf(out, "trips:       %d\n", len(trips))

	keys := n.KV.Keys(ctx)
	_, _ = fmt.Fprintln(out, "keys:")
	if len(keys) == 0 {
		_, _ = fmt.Fprintln(out, "  (none)")
	}
	for _, k := range keys {
		_, _ = fmt.Fprintf(out, "  %-40s %s\n", k, describe(k))
	}
	return nil
}

func describe(key string) string {
	switch {
	case key == store.TripsKey:
		return "trips"
	case key == store.LegacyTripsKey:
		return "trips (legacy)"
	case strings.HasPrefix(key, store.ChatKey("")):
		return "chat"
	case strings.HasPrefix(key, store.LegacyChatKey("")):
		return "chat (legacy)"
	}
	return ""
}
