package chatlog

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/chat"
	"tableflip.dev/wendy/pkg/printers"
	"tableflip.dev/wendy/pkg/store"
	"tableflip.dev/wendy/pkg/trip"
)

func TestSince(t *testing.T) {
	msgs := []chat.Message{{ID: "a", CreatedAt: 10}, {ID: "b", CreatedAt: 20}, {ID: "c", CreatedAt: 30}}
	if got := since(msgs, 0); len(got) != 3 {
		t.Fatalf("no cutoff kept %d messages", len(got))
	}
	got := since(msgs, 20)
	if len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("unexpected messages: %+v", got)
	}
}

func TestShowLastWindow(t *testing.T) {
	kv := store.NewMemory(nil)
	svc := app.New(kv)
	if err := svc.Trips.Upsert(trip.Trip{ID: "t1", Title: "Napoli", CreatedAt: 1}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	old := time.Now().Add(-72 * time.Hour).UnixMilli()
	if err := svc.Chats.Add("t1", chat.Message{ID: "old", Author: "Ana", Text: "vecchio", CreatedAt: old}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), "t1", "Bea", "nuovo"); err != nil {
		t.Fatalf("send: %v", err)
	}

	var out bytes.Buffer
	n := Show{Output: printers.Output{JSON: true, W: &out}, Service: svc, TripID: "t1", Last: 24 * time.Hour}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if strings.Contains(out.String(), "vecchio") || !strings.Contains(out.String(), "nuovo") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSendRequiresTrip(t *testing.T) {
	n := Send{Output: printers.Output{W: &bytes.Buffer{}}, Service: app.New(store.NewMemory(nil)), TripID: "nope", Text: "ciao"}
	if err := n.Do(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown trip")
	}
}
