// Package watch follows changes made to the trip store by other processes.
package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/printers"
	"tableflip.dev/wendy/pkg/store"
)

// Watch prints a line for every store change until ctx is cancelled.
type Watch struct {
	printers.Output
	Service *app.Service
}

// Change is printed for every event.
type Change struct {
	At     time.Time `json:"at"`
	Key    string    `json:"key,omitempty"`
	Trips  int       `json:"trips"`
	Reload bool      `json:"reload,omitempty"`
}

func (n *Watch) Do(ctx context.Context) error {
	events, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}
	f := color.New(color.Faint)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventKeyChanged && !relevant(ev.Key) {
				continue
			}
			all, err := n.Service.List(ctx)
			if err != nil {
				return err
			}
			c := Change{At: time.Now(), Key: ev.Key, Trips: len(all), Reload: ev.Type == store.EventInvalidated}
			err = n.Print(c, func(pp *printers.PrettyPrint) {
				w := n.Writer()
				_, _ = f.Fprintf(w, "%s ", c.At.Format("15:04:05"))
				if c.Reload {
					_, _ = fmt.Fprintf(w, "store reloaded, %d trips\n", c.Trips)
					return
				}
				_, _ = fmt.Fprintf(w, "%s changed, %d trips\n", c.Key, c.Trips)
			})
			if err != nil {
				return err
			}
		}
	}
}

func relevant(key string) bool {
	return key == store.TripsKey || key == store.LegacyTripsKey ||
		strings.HasPrefix(key, store.ChatKey("")) || strings.HasPrefix(key, store.LegacyChatKey(""))
}
