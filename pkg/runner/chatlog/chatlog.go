// Package chatlog runs the trip chat commands.
package chatlog

import (
	"context"
	"time"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/chat"
	"tableflip.dev/wendy/pkg/printers"
	"tableflip.dev/wendy/pkg/timeutil"
)

// Show prints the chat of a trip, oldest first. A non-zero Last keeps only
// messages sent within that window.
type Show struct {
	printers.Output
	Service *app.Service
	TripID  string
	Last    time.Duration
}

func (n *Show) Do(ctx context.Context) error {
	msgs, err := n.Service.Messages(ctx, n.TripID)
	if err != nil {
		return err
	}
	msgs = since(msgs, timeutil.Cutoff(time.Now(), n.Last))
	return n.Print(msgs, func(pp *printers.PrettyPrint) {
		pp.Chat(msgs...)
	})
}

// Send appends a message to the chat of a trip and prints the log.
type Send struct {
	printers.Output
	Service *app.Service
	TripID  string
	Author  string
	Text    string
}

func (n *Send) Do(ctx context.Context) error {
	if _, err := n.Service.Trip(ctx, n.TripID); err != nil {
		return err
	}
	msg, err := n.Service.SendMessage(ctx, n.TripID, n.Author, n.Text)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Writer(), msg)
	}
	return (&Show{Output: n.Output, Service: n.Service, TripID: n.TripID}).Do(ctx)
}

func since(msgs []chat.Message, cutoff int64) []chat.Message {
	if cutoff == 0 {
		return msgs
	}
	kept := make([]chat.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.CreatedAt >= cutoff {
			kept = append(kept, m)
		}
	}
	return kept
}
