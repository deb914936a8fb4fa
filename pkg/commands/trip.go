package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/commands/options"
	"tableflip.dev/wendy/pkg/runner/trips"
)

func addTrip(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "trip",
		Aliases: []string{"trips"},
		Short:   base.Wrap80("Create, list, show and remove trips."),
		Run: func(cmd *cobra.Command, args []string) {
			// a sub-command is required.
			_ = cmd.Help()
		},
	}

	addTripList(cmd)
	addTripShow(cmd)
	addTripCreate(cmd)
	addTripDelete(cmd)
	addTripDuplicate(cmd)
	addTripBudget(cmd)

	topLevel.AddCommand(cmd)
}

func addTripList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List trips, newest first.",
		Example: `
wendy trip list --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(func(s *session) error {
				r := trips.List{Output: s.output(io.ShowID), Service: s.svc}
				return r.Do(context.Background())
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTripShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	calendar := false

	cmd := &cobra.Command{
		Use:   "show <trip id>",
		Short: "Show a trip with its days and activities.",
		Example: `
wendy trip show trip_5f0c2a9e1b7d4_18c2b5f4a10 --calendar
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := trips.Show{Output: s.output(io.ShowID), Service: s.svc, ID: args[0], Calendar: calendar}
				return r.Do(context.Background())
			})
		},
	}

	cmd.Flags().BoolVar(&calendar, "calendar", false, "Also print the months the trip spans.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTripCreate(topLevel *cobra.Command) {
	to := &options.TripOptions{}

	cmd := &cobra.Command{
		Use:     "create [title]",
		Aliases: []string{"new", "add"},
		Short:   base.Wrap80("Create a trip. Without a title the template's default title is used."),
		Example: `
wendy trip create Rome in spring --template citybreak3 --budget 450 --start 2026-5-30
`,
		Args: func(cmd *cobra.Command, args []string) error {
			to.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := to.NewTrip()
			if err != nil {
				return oo.HandleError(err)
			}
			return run(func(s *session) error {
				r := trips.Create{Output: s.output(true), Service: s.svc, Trip: in}
				return r.Do(context.Background())
			})
		},
	}

	options.AddTripArgs(cmd, to)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTripDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <trip id>",
		Aliases: []string{"rm"},
		Short:   "Delete a trip and its chat.",
		Example: `
wendy trip delete trip_5f0c2a9e1b7d4_18c2b5f4a10
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := trips.Delete{Output: s.output(false), Service: s.svc, ID: args[0]}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTripDuplicate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "duplicate <trip id>",
		Aliases: []string{"cp"},
		Short:   "Copy a trip under new identifiers.",
		Example: `
wendy trip duplicate trip_5f0c2a9e1b7d4_18c2b5f4a10
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := trips.Duplicate{Output: s.output(true), Service: s.svc, ID: args[0]}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTripBudget(topLevel *cobra.Command) {
	var amount string
	remove := false

	cmd := &cobra.Command{
		Use:   "set-budget <trip id>",
		Short: "Set or clear the budget of a trip.",
		Example: `
wendy trip set-budget trip_5f0c2a9e1b7d4_18c2b5f4a10 --budget 600
wendy trip set-budget trip_5f0c2a9e1b7d4_18c2b5f4a10 --clear
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount == "" && !remove {
				return oo.HandleError(errors.New("requires --budget or --clear"))
			}
			b, err := options.ParseBudget(amount)
			if err != nil {
				return oo.HandleError(err)
			}
			if remove {
				b = nil
			}
			return run(func(s *session) error {
				r := trips.Budget{Output: s.output(false), Service: s.svc, ID: args[0], Budget: b}
				return r.Do(context.Background())
			})
		},
	}

	options.AddBudgetArgs(cmd, &amount)
	cmd.Flags().BoolVar(&remove, "clear", false, "Remove the budget.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
