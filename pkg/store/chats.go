package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tableflip.dev/wendy/pkg/chat"
	"tableflip.dev/wendy/pkg/raw"
)

// ChatKey is the key holding the message log of a trip.
func ChatKey(tripID string) string {
	return "wendy:chat:" + tripID
}

// LegacyChatKey is where older versions kept the log of a trip. It is only
// ever read.
func LegacyChatKey(tripID string) string {
	return "wendenzo:chat:" + tripID
}

// Chats owns the per-trip message logs.
type Chats struct {
	kv  KV
	log *slog.Logger
}

// NewChats returns a chat store persisting into kv.
func NewChats(kv KV) *Chats {
	return &Chats{kv: kv, log: slog.Default().With("store", "chat")}
}

// Load returns the normalised log of tripID, oldest message first.
func (s *Chats) Load(tripID string) []chat.Message {
	if s == nil || s.kv == nil || tripID == "" {
		return []chat.Message{}
	}

	for _, key := range []string{ChatKey(tripID), LegacyChatKey(tripID)} {
		data, ok := readValue(s.kv, key, s.log)
		if !ok {
			continue
		}
		v, err := raw.Decode(data)
		if err != nil {
			s.log.Debug("discarding unreadable chat", "key", key, "error", err)
			continue
		}
		msgs := chat.Normalize(tripID, v)
		if key != ChatKey(tripID) {
			s.log.Info("migrating legacy chat", "trip", tripID, "count", len(msgs))
		}
		if err := s.write(tripID, msgs); err != nil {
			s.log.Warn("could not persist normalised chat", "trip", tripID, "error", err)
		}
		return msgs
	}
	return []chat.Message{}
}

// Add appends msg to the log of tripID. A message with blank text, or one
// without a trip, is ignored.
func (s *Chats) Add(tripID string, msg chat.Message) error {
	if s == nil || s.kv == nil || tripID == "" {
		return nil
	}
	existing := s.Load(tripID)
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}
	return s.write(tripID, chat.Append(tripID, existing, msg))
}

// Clear removes the log of tripID. Legacy logs are left in place.
func (s *Chats) Clear(tripID string) error {
	if s == nil || s.kv == nil || tripID == "" {
		return nil
	}
	if err := s.kv.Erase(ChatKey(tripID)); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("store: erase chat: %w", err)
	}
	return nil
}

func (s *Chats) write(tripID string, msgs []chat.Message) error {
	if msgs == nil {
		msgs = []chat.Message{}
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("store: encode chat: %w", err)
	}
	if err := s.kv.Write(ChatKey(tripID), data); err != nil {
		return fmt.Errorf("store: write chat: %w", err)
	}
	return nil
}
