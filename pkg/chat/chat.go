// Package chat holds the per-trip message log.
package chat

import (
	"sort"
	"strings"
	"time"

	"tableflip.dev/wendy/pkg/raw"
	"tableflip.dev/wendy/pkg/uid"
)

const (
	// DefaultAuthor is used for messages without an author.
	DefaultAuthor = "Tu"

	// MaxMessages is how many of the most recent messages a log keeps.
	MaxMessages = 200
)

// Message is a single chat line attached to a trip.
type Message struct {
	ID        string `json:"id"`
	TripID    string `json:"tripId"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"createdAt"`
}

// Normalize turns an untrusted decoded log into messages of tripID. Messages
// with blank text are dropped rather than repaired. The result is sorted
// oldest first and holds at most MaxMessages, the newest ones.
func Normalize(tripID string, v any) []Message {
	list, ok := v.([]any)
	if !ok {
		return []Message{}
	}

	out := make([]Message, 0, len(list))
	for _, item := range list {
		m, _ := raw.Object(item)
		if msg, ok := normalize(tripID, m); ok {
			out = append(out, msg)
		}
	}
	return capped(out)
}

// Append adds msg to an already normalised log and re-applies the ordering
// and cap. A message with blank text leaves the log unchanged.
func Append(tripID string, log []Message, msg Message) []Message {
	next, ok := normalize(tripID, msg.generic())
	if !ok {
		return log
	}
	out := make([]Message, 0, len(log)+1)
	out = append(out, log...)
	out = append(out, next)
	return capped(out)
}

func normalize(tripID string, m map[string]any) (Message, bool) {
	text := raw.String(m, "text")
	if text == "" {
		return Message{}, false
	}
	msg := Message{
		ID:     raw.ID(m, "id"),
		TripID: tripID,
		Text:   text,
		Author: raw.String(m, "author"),
	}
	if at, ok := raw.Millis(m, "createdAt"); ok {
		msg.CreatedAt = at
	} else {
		msg.CreatedAt = time.Now().UnixMilli()
	}
	if strings.TrimSpace(msg.ID) == "" {
		msg.ID = uid.Message(msg.CreatedAt)
	}
	if msg.Author == "" {
		msg.Author = DefaultAuthor
	}
	return msg, true
}

func capped(log []Message) []Message {
	sort.SliceStable(log, func(i, j int) bool {
		return log[i].CreatedAt < log[j].CreatedAt
	})
	if len(log) > MaxMessages {
		log = append([]Message(nil), log[len(log)-MaxMessages:]...)
	}
	return log
}

func (m Message) generic() map[string]any {
	g := map[string]any{
		"id":     m.ID,
		"text":   m.Text,
		"author": m.Author,
	}
	if m.CreatedAt != 0 {
		g["createdAt"] = m.CreatedAt
	}
	return g
}
