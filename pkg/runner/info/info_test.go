package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/wendy/pkg/chat"
	"tableflip.dev/wendy/pkg/store"
	"tableflip.dev/wendy/pkg/trip"
)

type testConfig struct{}

func (testConfig) BasePath() string  { return "/tmp/wendy" }
func (testConfig) Backend() string   { return store.BackendDisk }
func (testConfig) Currency() string  { return "EUR" }
func (testConfig) ShareBase() string { return "https://wendy.example" }
func (testConfig) LogLevel() string  { return "debug" }

func TestInfoListsKeys(t *testing.T) {
	kv := store.NewMemory(nil)
	if err := store.NewTrips(kv).Upsert(trip.Trip{ID: "t1", Title: "Lisbona", CreatedAt: 1}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.NewChats(kv).Add("t1", chat.Message{ID: "m1", Text: "ciao", CreatedAt: 1}); err != nil {
		t.Fatalf("add chat: %v", err)
	}

	var out bytes.Buffer
	n := Info{Config: testConfig{}, KV: kv, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	got := out.String()
	for _, want := range []string{"backend:     diskv", "share base:  https://wendy.example", "trips:       1", store.TripsKey, store.ChatKey("t1")} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestInfoEmptyStore(t *testing.T) {
	var out bytes.Buffer
	n := Info{Config: testConfig{}, KV: store.NewMemory(nil), Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(out.String(), "(none)") {
		t.Errorf("expected no keys, got:\n%s", out.String())
	}
}

func TestInfoWithoutBackend(t *testing.T) {
	n := Info{Config: testConfig{}, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatal("expected an error without a backend")
	}
}

func TestDescribe(t *testing.T) {
	cases := map[string]string{
		store.TripsKey:           "trips",
		store.LegacyTripsKey:     "trips (legacy)",
		store.ChatKey("x"):       "chat",
		store.LegacyChatKey("x"): "chat (legacy)",
		"something-else":         "",
	}
	for key, want := range cases {
		if got := describe(key); got != want {
			t.Errorf("describe(%q) = %q, want %q", key, got, want)
		}
	}
}
