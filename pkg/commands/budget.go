package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/commands/options"
	"tableflip.dev/wendy/pkg/runner/budgets"
)

func addBudget(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "budget <trip id>",
		Short: base.Wrap80("Show what a trip costs against its budget, optionally for one day."),
		Example: `
wendy budget trip_5f0c2a9e1b7d4_18c2b5f4a10
wendy budget trip_5f0c2a9e1b7d4_18c2b5f4a10 --day 2
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := budgets.Budget{Output: s.output(false), Service: s.svc, TripID: args[0], DayIndex: do.Day}
				return r.Do(context.Background())
			})
		},
	}

	options.AddDayArgs(cmd, do, "Also show the figures of this day.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
