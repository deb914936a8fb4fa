package chat

import (
	"encoding/json"
	"fmt"
	"sort"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestNormalizeNotArray(t *testing.T) {
	for _, in := range []string{`null`, `{}`, `"hi"`, `3`} {
		got := Normalize("t1", decode(t, in))
		if got == nil || len(got) != 0 {
			t.Errorf("Normalize(%s) = %#v, want empty log", in, got)
		}
	}
}

func TestNormalizeDropsBlankText(t *testing.T) {
	// Unlike trip items, a message without text carries nothing and is dropped.
	got := Normalize("t1", decode(t, `[
		{"id": "a", "text": "  ", "createdAt": 1},
		{"id": "b", "createdAt": 2},
		null,
		{"id": "c", "text": " ciao ", "createdAt": 3, "tripId": "other"}
	]`))
	if len(got) != 1 {
		t.Fatalf("expected one message, got %+v", got)
	}
	want := Message{ID: "c", TripID: "t1", Text: "ciao", Author: DefaultAuthor, CreatedAt: 3}
	if got[0] != want {
		t.Errorf("got %+v, want %+v", got[0], want)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	got := Normalize("t1", decode(t, `[{"text": "hello", "author": "  Ada ", "id": "   ", "createdAt": "yesterday"}]`))
	if len(got) != 1 {
		t.Fatalf("expected one message, got %d", len(got))
	}
	m := got[0]
	if m.Author != "Ada" {
		t.Errorf("author = %q, want trimmed", m.Author)
	}
	if m.CreatedAt == 0 {
		t.Errorf("expected createdAt to default to now")
	}
	if m.ID == "" || m.ID == "   " {
		t.Errorf("expected generated id, got %q", m.ID)
	}
}

func TestNormalizeSortsAndCaps(t *testing.T) {
	list := make([]any, 0, 250)
	for i := 250; i > 0; i-- {
		list = append(list, map[string]any{"id": fmt.Sprint(i), "text": "m", "createdAt": float64(i)})
	}
	got := Normalize("t1", list)
	if len(got) != MaxMessages {
		t.Fatalf("expected %d messages, got %d", MaxMessages, len(got))
	}
	if got[0].CreatedAt != 51 || got[len(got)-1].CreatedAt != 250 {
		t.Errorf("expected the newest 200 (51..250), got %d..%d", got[0].CreatedAt, got[len(got)-1].CreatedAt)
	}
}

func TestAppendCapsAtMostRecent(t *testing.T) {
	var log []Message
	for i := 1; i <= 250; i++ {
		log = Append("t1", log, Message{Text: fmt.Sprintf("msg %d", i), CreatedAt: int64(i)})
	}
	if len(log) != MaxMessages {
		t.Fatalf("expected %d messages, got %d", MaxMessages, len(log))
	}
	if !sort.SliceIsSorted(log, func(i, j int) bool { return log[i].CreatedAt < log[j].CreatedAt }) {
		t.Fatalf("log not sorted ascending")
	}
	if log[0].Text != "msg 51" || log[len(log)-1].Text != "msg 250" {
		t.Errorf("unexpected window %q .. %q", log[0].Text, log[len(log)-1].Text)
	}
}

func TestAppendBlankIsNoop(t *testing.T) {
	log := []Message{{ID: "a", TripID: "t1", Text: "hi", Author: DefaultAuthor, CreatedAt: 1}}
	got := Append("t1", log, Message{Text: "   "})
	if len(got) != 1 {
		t.Fatalf("blank message should be ignored, got %+v", got)
	}
}
