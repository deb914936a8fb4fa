// Package items runs the commands that edit the activities of a day.
package items

import (
	"context"
	"fmt"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/printers"
)

// Add puts a new activity on top of a day and prints the day.
type Add struct {
	printers.Output
	Service  *app.Service
	TripID   string
	DayIndex int
	Item     app.NewItem
}

func (n *Add) Do(ctx context.Context) error {
	it, err := n.Service.AddItem(ctx, n.TripID, n.DayIndex, n.Item)
	if err != nil {
		return err
	}
	t, err := n.Service.Trip(ctx, n.TripID)
	if err != nil {
		return err
	}
	return n.Print(it, func(pp *printers.PrettyPrint) {
		d, _ := t.Day(n.DayIndex)
		pp.Title(t.Title)
		pp.Day(t, d)
	})
}

// Remove deletes an activity.
type Remove struct {
	printers.Output
	Service *app.Service
	TripID  string
	ItemID  string
}

func (n *Remove) Do(ctx context.Context) error {
	if err := n.Service.RemoveItem(ctx, n.TripID, n.ItemID); err != nil {
		return err
	}
	return n.Print(map[string]string{"removed": n.ItemID}, func(pp *printers.PrettyPrint) {
		_, _ = fmt.Fprintf(n.Writer(), "removed %s\n", n.ItemID)
	})
}

// Done toggles the completion flag of an activity.
type Done struct {
	printers.Output
	Service *app.Service
	TripID  string
	ItemID  string
}

func (n *Done) Do(ctx context.Context) error {
	it, err := n.Service.ToggleDone(ctx, n.TripID, n.ItemID)
	if err != nil {
		return err
	}
	return n.Print(it, func(pp *printers.PrettyPrint) {
		pp.Items(it)
	})
}
