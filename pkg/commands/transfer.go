package commands

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/commands/options"
	"tableflip.dev/wendy/pkg/runner/transfers"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "export [trip id]",
		Short: base.Wrap80("Export a trip, one of its days or every trip as JSON."),
		Example: `
wendy export trip_5f0c2a9e1b7d4_18c2b5f4a10
wendy export trip_5f0c2a9e1b7d4_18c2b5f4a10 --day 2 --out -
wendy export --all --out backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if eo.All {
				return cobra.NoArgs(cmd, args)
			}
			if len(args) != 1 {
				return errors.New("requires a trip id, or --all")
			}
			return nil
		},
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := transfers.Export{Output: s.output(false), Service: s.svc, DayIndex: do.Day, All: eo.All, Path: eo.Out}
				if len(args) > 0 {
					r.TripID = args[0]
				}
				return r.Do(context.Background())
			})
		},
	}

	options.AddExportArgs(cmd, eo)
	options.AddDayArgs(cmd, do, "Export only this day.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: base.Wrap80("Import a trip exported as JSON. The trip gets new identifiers; use - to read stdin."),
		Example: `
wendy import wendenzo-trip-trip_5f0c2a9e1b7d4_18c2b5f4a10.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := transfers.Import{Output: s.output(true), Service: s.svc, Path: args[0], In: os.Stdin}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
