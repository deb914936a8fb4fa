// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/wendy/pkg/app"
)

// TripOptions captures the fields of a trip to create.
type TripOptions struct {
	Title       string
	Destination string
	Start       DateOptions
	End         DateOptions
	Budget      string
	Days        int
	Template    string
}

// AddTripArgs wires trip creation flags on the provided command.
func AddTripArgs(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().StringVar(&o.Destination, "destination", "",
		"Where the trip goes, example: --destination=\"Italia • Roma\".")
	cmd.Flags().StringVar(&o.Start.Value, "start", "",
		`First day of the trip, example: --start="2026-5-30" or --start="5/30".`)
	cmd.Flags().StringVar(&o.End.Value, "end", "",
		`Last day of the trip, same formats as --start.`)
	AddBudgetArgs(cmd, &o.Budget)
	cmd.Flags().IntVar(&o.Days, "days", 0,
		fmt.Sprintf("Number of days, %d to %d. Defaults to the template's.", app.MinDays, app.MaxDays))
	cmd.Flags().StringVarP(&o.Template, "template", "t", app.Custom,
		"Template to start from: custom, weekend2, citybreak3 or roadtrip7.")
}

// AddBudgetArgs registers the --budget flag.
func AddBudgetArgs(cmd *cobra.Command, budget *string) {
	cmd.Flags().StringVarP(budget, "budget", "b", "",
		`Budget of the trip, example: --budget=450 or --budget="450,50".`)
}

// ParseBudget reads a budget flag. An empty value means no budget.
func ParseBudget(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := app.ParseCost(s)
	if !ok {
		return nil, fmt.Errorf("invalid budget %q", s)
	}
	return &v, nil
}

// NewTrip converts the flags into a creation request.
func (o *TripOptions) NewTrip() (app.NewTrip, error) {
	b, err := ParseBudget(o.Budget)
	if err != nil {
		return app.NewTrip{}, err
	}
	start, err := o.Start.Get()
	if err != nil {
		return app.NewTrip{}, err
	}
	end, err := o.End.Get()
	if err != nil {
		return app.NewTrip{}, err
	}
	return app.NewTrip{
		Title:       o.Title,
		Destination: o.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      b,
		Days:        o.Days,
		Template:    o.Template,
	}, nil
}
