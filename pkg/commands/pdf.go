package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/commands/options"
	"tableflip.dev/wendy/pkg/runner/itinerary"
)

func addPDF(topLevel *cobra.Command) {
	var out string
	noQR := false

	cmd := &cobra.Command{
		Use:   "pdf <trip id>",
		Short: base.Wrap80("Write a printable itinerary of a trip, with a QR code of its share link."),
		Example: `
wendy pdf trip_5f0c2a9e1b7d4_18c2b5f4a10
wendy pdf trip_5f0c2a9e1b7d4_18c2b5f4a10 --no-qr --out rome.pdf
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := itinerary.PDF{Output: s.output(false), Service: s.svc, TripID: args[0], Path: out}
				if !noQR {
					r.ShareBase = s.cfg.ShareBase()
				}
				return r.Do(context.Background())
			})
		},
	}

	options.AddOutArgs(cmd, &out)
	cmd.Flags().BoolVar(&noQR, "no-qr", false, "Leave out the share link and its QR code.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
