package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "report <trip id>",
		Short: "Display which activities of a trip are done, grouped by day",
		Long: `Report lists every activity of a trip grouped by day with its completion
state, and sums what the completed activities cost.

Examples:
  wendy report trip_5f0c2a9e1b7d4_18c2b5f4a10
  wendy report trip_5f0c2a9e1b7d4_18c2b5f4a10 --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(func(s *session) error {
				r := report.Report{Output: s.output(false), Service: s.svc, TripID: args[0]}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
