package store

import (
	"bytes"
	"fmt"
	"testing"

	"tableflip.dev/wendy/pkg/chat"
)

func TestChatsLoadEmpty(t *testing.T) {
	if got := NewChats(NewMemory(nil)).Load("t1"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty log, got %#v", got)
	}
}

func TestChatsLoadNormalizesAndPersists(t *testing.T) {
	kv := NewMemory(map[string][]byte{ChatKey("t1"): []byte(`[
		{"id": "b", "text": "second", "createdAt": 2},
		{"id": "x", "text": "   ", "createdAt": 3},
		{"id": "a", "text": "first", "createdAt": 1}
	]`)})
	got := NewChats(kv).Load("t1")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected log %+v", got)
	}
	persisted, _ := kv.Read(ChatKey("t1"))
	if bytes.Contains(persisted, []byte(`"x"`)) {
		t.Fatalf("blank message should not be persisted: %s", persisted)
	}
}

func TestChatsLegacyMigrationIsAdditive(t *testing.T) {
	legacy := []byte(`[{"text": "ciao", "createdAt": 5}]`)
	kv := NewMemory(map[string][]byte{LegacyChatKey("t1"): legacy})

	got := NewChats(kv).Load("t1")
	if len(got) != 1 || got[0].Text != "ciao" || got[0].TripID != "t1" || got[0].Author != chat.DefaultAuthor {
		t.Fatalf("unexpected migrated log %+v", got)
	}
	after, err := kv.Read(LegacyChatKey("t1"))
	if err != nil || !bytes.Equal(after, legacy) {
		t.Fatalf("legacy chat changed: %s (%v)", after, err)
	}
	if _, err := kv.Read(ChatKey("t1")); err != nil {
		t.Fatalf("migrated chat should be written to the primary key: %v", err)
	}
}

func TestChatsCorruptPrimaryFallsBackToLegacy(t *testing.T) {
	kv := NewMemory(map[string][]byte{
		ChatKey("t1"):       []byte(`[{"text": `),
		LegacyChatKey("t1"): []byte(`[{"text": "old", "createdAt": 1}]`),
	})
	got := NewChats(kv).Load("t1")
	if len(got) != 1 || got[0].Text != "old" {
		t.Fatalf("expected legacy fallback, got %+v", got)
	}
}

func TestChatsAddCapsAt200(t *testing.T) {
	s := NewChats(NewMemory(nil))
	for i := 1; i <= 250; i++ {
		if err := s.Add("t1", chat.Message{Text: fmt.Sprintf("msg %d", i), CreatedAt: int64(i)}); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	got := s.Load("t1")
	if len(got) != chat.MaxMessages {
		t.Fatalf("expected %d messages, got %d", chat.MaxMessages, len(got))
	}
	for i, m := range got {
		if m.CreatedAt != int64(51+i) {
			t.Fatalf("message %d createdAt = %d, want %d", i, m.CreatedAt, 51+i)
		}
	}
}

func TestChatsAddBlankIsIgnored(t *testing.T) {
	kv := NewMemory(nil)
	s := NewChats(kv)
	if err := s.Add("t1", chat.Message{Text: "  \n"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := s.Load("t1"); len(got) != 0 {
		t.Fatalf("expected empty log, got %+v", got)
	}
}

func TestChatsAddDefaults(t *testing.T) {
	s := NewChats(NewMemory(nil))
	if err := s.Add("t1", chat.Message{Text: " hi ", Author: "  "}); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := s.Load("t1")
	if len(got) != 1 {
		t.Fatalf("expected one message, got %+v", got)
	}
	m := got[0]
	if m.Text != "hi" || m.Author != chat.DefaultAuthor || m.ID == "" || m.CreatedAt == 0 || m.TripID != "t1" {
		t.Fatalf("defaults not applied: %+v", m)
	}
}

func TestChatsClear(t *testing.T) {
	kv := NewMemory(nil)
	s := NewChats(kv)
	_ = s.Add("t1", chat.Message{Text: "hi"})
	if err := s.Clear("t1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.Clear("t1"); err != nil {
		t.Fatalf("clearing twice should be fine: %v", err)
	}
	if got := s.Load("t1"); len(got) != 0 {
		t.Fatalf("expected empty log, got %+v", got)
	}
}

func TestChatsBlankTripIDOnDisk(t *testing.T) {
	kv, err := OpenDisk(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	chats := NewChats(kv)
	if err := chats.Add("", chat.Message{Text: "ciao"}); err != nil {
		t.Fatalf("Add with blank trip: %v", err)
	}
	if got := chats.Load(""); len(got) != 0 {
		t.Fatalf("expected empty log, got %+v", got)
	}
	if err := chats.Clear(""); err != nil {
		t.Fatalf("Clear with blank trip: %v", err)
	}

	// A real trip still lands next to it.
	if err := chats.Add("t1", chat.Message{Text: "ciao"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := chats.Load("t1"); len(got) != 1 {
		t.Fatalf("expected one message, got %+v", got)
	}
}
