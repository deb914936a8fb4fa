package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/commands/options"
	"tableflip.dev/wendy/pkg/runner/chatlog"
	"tableflip.dev/wendy/pkg/timeutil"
)

func addChat(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: base.Wrap80("Read and write the chat attached to a trip."),
		Run: func(cmd *cobra.Command, args []string) {
			// a sub-command is required.
			_ = cmd.Help()
		},
	}

	addChatShow(cmd)
	addChatSend(cmd)

	topLevel.AddCommand(cmd)
}

func addChatShow(topLevel *cobra.Command) {
	var last string

	cmd := &cobra.Command{
		Use:   "show <trip id>",
		Short: "Print the chat of a trip, oldest first.",
		Example: `
wendy chat show trip_5f0c2a9e1b7d4_18c2b5f4a10
wendy chat show trip_5f0c2a9e1b7d4_18c2b5f4a10 --last 2d
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := timeutil.ParseWindow(last)
			if err != nil {
				return err
			}
			return run(func(s *session) error {
				r := chatlog.Show{Output: s.output(false), Service: s.svc, TripID: args[0], Last: window}
				return r.Do(context.Background())
			})
		},
	}

	cmd.Flags().StringVar(&last, "last", "", "Only show messages from this window, e.g. 6h, 2d or 1w.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addChatSend(topLevel *cobra.Command) {
	co := &options.ChatOptions{}

	cmd := &cobra.Command{
		Use:   "send <trip id> <text...>",
		Short: "Send a message to the chat of a trip.",
		Example: `
wendy chat send trip_5f0c2a9e1b7d4_18c2b5f4a10 ci vediamo alle nove --author Ana
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a trip id and a message")
			}
			co.Text = strings.Join(args[1:], " ")
			return nil
		},
		ValidArgsFunction: tripArgCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(s *session) error {
				r := chatlog.Send{Output: s.output(false), Service: s.svc, TripID: args[0], Author: co.Author, Text: co.Text}
				return r.Do(context.Background())
			})
		},
	}

	options.AddChatArgs(cmd, co)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
