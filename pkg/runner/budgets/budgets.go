// Package budgets prints the spending figures of a trip.
package budgets

import (
	"context"
	"fmt"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/budget"
	"tableflip.dev/wendy/pkg/printers"
)

// Budget prints the trip summary and, when DayIndex is set, the day figures.
type Budget struct {
	printers.Output
	Service  *app.Service
	TripID   string
	DayIndex int
}

func (n *Budget) Do(ctx context.Context) error {
	t, err := n.Service.Trip(ctx, n.TripID)
	if err != nil {
		return err
	}
	s := budget.Summarize(t)
	if n.DayIndex != 0 {
		d, ok := t.Day(n.DayIndex)
		if !ok {
			return fmt.Errorf("%w: %d", app.ErrDayNotFound, n.DayIndex)
		}
		s = budget.SummarizeDay(t, d)
	}
	return n.Print(s, func(pp *printers.PrettyPrint) {
		pp.Title(t.Title)
		pp.Budget(s)
	})
}
