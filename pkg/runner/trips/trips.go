// Package trips runs the trip listing and lifecycle commands.
package trips

import (
	"context"
	"fmt"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/budget"
	"tableflip.dev/wendy/pkg/printers"
)

// List prints every trip, newest first.
type List struct {
	printers.Output
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	all, err := n.Service.List(ctx)
	if err != nil {
		return err
	}
	return n.Print(all, func(pp *printers.PrettyPrint) {
		pp.Trips(all...)
	})
}

// Show prints a single trip with its days.
type Show struct {
	printers.Output
	Service  *app.Service
	ID       string
	Calendar bool
}

func (n *Show) Do(ctx context.Context) error {
	t, err := n.Service.Trip(ctx, n.ID)
	if err != nil {
		return err
	}
	return n.Print(t, func(pp *printers.PrettyPrint) {
		pp.Trip(t)
		if n.Calendar {
			pp.Calendar(t)
		}
	})
}

// Create stores a new trip and prints it.
type Create struct {
	printers.Output
	Service *app.Service
	Trip    app.NewTrip
}

func (n *Create) Do(ctx context.Context) error {
	t, err := n.Service.CreateTrip(ctx, n.Trip)
	if err != nil {
		return err
	}
	return n.Print(t, func(pp *printers.PrettyPrint) {
		pp.ShowID = true
		pp.Trip(t)
	})
}

// Delete removes a trip and its chat.
type Delete struct {
	printers.Output
	Service *app.Service
	ID      string
}

func (n *Delete) Do(ctx context.Context) error {
	if err := n.Service.DeleteTrip(ctx, n.ID); err != nil {
		return err
	}
	return n.Print(map[string]string{"deleted": n.ID}, func(pp *printers.PrettyPrint) {
		_, _ = fmt.Fprintf(n.Writer(), "deleted %s\n", n.ID)
	})
}

// Duplicate copies a trip under new identifiers.
type Duplicate struct {
	printers.Output
	Service *app.Service
	ID      string
}

func (n *Duplicate) Do(ctx context.Context) error {
	t, err := n.Service.DuplicateTrip(ctx, n.ID)
	if err != nil {
		return err
	}
	return n.Print(t, func(pp *printers.PrettyPrint) {
		pp.ShowID = true
		pp.Trip(t)
	})
}

// Budget sets or clears the budget of a trip.
type Budget struct {
	printers.Output
	Service *app.Service
	ID      string
	Budget  *float64
}

func (n *Budget) Do(ctx context.Context) error {
	t, err := n.Service.SetBudget(ctx, n.ID, n.Budget)
	if err != nil {
		return err
	}
	return n.Print(t, func(pp *printers.PrettyPrint) {
		pp.Title(t.Title)
		pp.Budget(budget.Summarize(t))
	})
}
