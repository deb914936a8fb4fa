// Package days runs the commands that add days to a trip.
package days

import (
	"context"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/printers"
	"tableflip.dev/wendy/pkg/trip"
)

// Add appends an empty day to a trip.
type Add struct {
	printers.Output
	Service *app.Service
	TripID  string
}

func (n *Add) Do(ctx context.Context) error {
	d, err := n.Service.AddDay(ctx, n.TripID)
	if err != nil {
		return err
	}
	return n.show(ctx, d)
}

// Duplicate appends a copy of a day to a trip.
type Duplicate struct {
	printers.Output
	Service  *app.Service
	TripID   string
	DayIndex int
}

func (n *Duplicate) Do(ctx context.Context) error {
	d, err := n.Service.DuplicateDay(ctx, n.TripID, n.DayIndex)
	if err != nil {
		return err
	}
	return (&Add{Output: n.Output, Service: n.Service, TripID: n.TripID}).show(ctx, d)
}

func (n *Add) show(ctx context.Context, d trip.Day) error {
	t, err := n.Service.Trip(ctx, n.TripID)
	if err != nil {
		return err
	}
	return n.Print(d, func(pp *printers.PrettyPrint) {
		pp.Title(t.Title)
		pp.Day(t, d)
	})
}
