// Package share prints the link under which a trip opens in the web planner.
package share

import (
	"context"
	"fmt"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/printers"
)

type Share struct {
	printers.Output
	Service *app.Service
	TripID  string
	Base    string
}

func (n *Share) Do(ctx context.Context) error {
	if _, err := n.Service.Trip(ctx, n.TripID); err != nil {
		return err
	}
	link := app.ShareLink(n.Base, n.TripID)
	return n.Print(map[string]string{"url": link}, func(pp *printers.PrettyPrint) {
		_, _ = fmt.Fprintln(n.Writer(), link)
	})
}
