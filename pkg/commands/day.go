package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/runner/days"
)

func addDay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"days"},
		Short:   base.Wrap80("Add days to a trip."),
		Run: func(cmd *cobra.Command, args []string) {
			// a sub-command is required.
			_ = cmd.Help()
		},
	}

	addDayAdd(cmd)
	addDayDuplicate(cmd)

	topLevel.AddCommand(cmd)
}

func addDayAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <trip id>",
		Short: "Append an empty day after the last one.",
		Example: `
wendy day add trip_5f0c2a9e1b7d4_18c2b5f4a10
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := days.Add{Output: s.output(false), Service: s.svc, TripID: args[0]}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addDayDuplicate(topLevel *cobra.Command) {
	var dayIndex int

	cmd := &cobra.Command{
		Use:   "duplicate <trip id> <day>",
		Short: "Append a copy of a day after the last one.",
		Example: `
wendy day duplicate trip_5f0c2a9e1b7d4_18c2b5f4a10 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("requires a trip id and a day number")
			}
			var err error
			dayIndex, err = parseDay(args[1])
			return err
		},
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := days.Duplicate{Output: s.output(false), Service: s.svc, TripID: args[0], DayIndex: dayIndex}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func parseDay(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	return n, nil
}
