package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/commands/options"
	"tableflip.dev/wendy/pkg/runner/items"
)

func addItem(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items", "activity"},
		Short:   base.Wrap80("Add, remove and complete the activities of a day."),
		Run: func(cmd *cobra.Command, args []string) {
			// a sub-command is required.
			_ = cmd.Help()
		},
	}

	addItemAdd(cmd)
	addItemRemove(cmd)
	addItemDone(cmd)

	topLevel.AddCommand(cmd)
}

func addItemAdd(topLevel *cobra.Command) {
	io := &options.ItemOptions{}
	var dayIndex int

	cmd := &cobra.Command{
		Use:   "add <trip id> <day> <title...>",
		Short: "Add an activity at the top of a day.",
		Example: `
wendy item add trip_5f0c2a9e1b7d4_18c2b5f4a10 1 Colosseo --time 09:00 --cost 18
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return errors.New("requires a trip id, a day number and a title")
			}
			var err error
			if dayIndex, err = parseDay(args[1]); err != nil {
				return err
			}
			io.Title = strings.Join(args[2:], " ")
			return nil
		},
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := items.Add{Output: s.output(false), Service: s.svc, TripID: args[0], DayIndex: dayIndex, Item: io.NewItem()}
				return r.Do(context.Background())
			})
		},
	}

	options.AddItemArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addItemRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <trip id> <item id>",
		Aliases: []string{"rm"},
		Short:   "Remove an activity.",
		Example: `
wendy item remove trip_5f0c2a9e1b7d4_18c2b5f4a10 item_0d1e2f3a4b5c6_18c2b5f4a11
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := items.Remove{Output: s.output(false), Service: s.svc, TripID: args[0], ItemID: args[1]}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addItemDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <trip id> <item id>",
		Aliases: []string{"complete", "toggle"},
		Short:   "Mark an activity done, or open again.",
		Example: `
wendy item done trip_5f0c2a9e1b7d4_18c2b5f4a10 item_0d1e2f3a4b5c6_18c2b5f4a11
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := items.Done{Output: s.output(true), Service: s.svc, TripID: args[0], ItemID: args[1]}
				return r.Do(context.Background())
			})
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
