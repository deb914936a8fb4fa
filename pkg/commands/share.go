package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/runner/share"
)

func addShare(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "share <trip id>",
		Short: "Print the link that opens a trip in the web planner.",
		Example: `
wendy share trip_5f0c2a9e1b7d4_18c2b5f4a10
WENDY_SHARE_BASE=https://wendy.example wendy share trip_5f0c2a9e1b7d4_18c2b5f4a10
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := share.Share{Output: s.output(false), Service: s.svc, TripID: args[0], Base: s.cfg.ShareBase()}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
