package trip

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return v
}

func TestNormalizeDropsTripWithoutTitle(t *testing.T) {
	for _, in := range []string{
		`null`,
		`42`,
		`"Rome"`,
		`[]`,
		`{}`,
		`{"title": ""}`,
		`{"title": "   "}`,
		`{"title": 12, "id": "t1"}`,
		`{"id": "t1", "days": []}`,
	} {
		if got, ok := Normalize(decode(t, in)); ok {
			t.Errorf("Normalize(%s) = %+v, expected the trip to be dropped", in, got)
		}
	}
}

func TestNormalizeRepairsDayAndItem(t *testing.T) {
	// Days and items are never dropped, unlike trips: they get defaults.
	got, ok := Normalize(decode(t, `{
		"title": "  Lisbon  ",
		"destination": "   ",
		"budget": "300",
		"days": [
			{"items": [{"title": "  "}, null, "x"]},
			null,
			{"dayIndex": 7, "label": "  Arrival "}
		]
	}`))
	if !ok {
		t.Fatalf("expected trip to normalise")
	}
	if got.Title != "Lisbon" {
		t.Errorf("title = %q, want trimmed", got.Title)
	}
	if got.Destination != "" {
		t.Errorf("destination = %q, want empty", got.Destination)
	}
	if got.Budget != nil {
		t.Errorf("budget = %v, want nil for non-numeric input", *got.Budget)
	}
	if got.ID == "" || got.CreatedAt == 0 {
		t.Errorf("expected generated id and createdAt, got %q %d", got.ID, got.CreatedAt)
	}
	if len(got.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(got.Days))
	}
	first := got.Days[0]
	if first.DayIndex != 1 || first.Label != "Day 1" {
		t.Errorf("first day = %d %q, want fallback index 1 and label Day 1", first.DayIndex, first.Label)
	}
	if len(first.Items) != 3 {
		t.Fatalf("expected 3 repaired items, got %d", len(first.Items))
	}
	for _, it := range first.Items {
		if it.Title != DefaultItemTitle || it.ID == "" {
			t.Errorf("item = %+v, want placeholder title and generated id", it)
		}
	}
	if got.Days[1].DayIndex != 2 || len(got.Days[1].Items) != 0 {
		t.Errorf("second day = %+v, want fallback index 2 with no items", got.Days[1])
	}
	if got.Days[2].DayIndex != 7 || got.Days[2].Label != "Arrival" {
		t.Errorf("third day = %+v, want index 7 label Arrival", got.Days[2])
	}
}

func TestNormalizeDayFractionalIndexUsesFallback(t *testing.T) {
	got, ok := Normalize(decode(t, `{
		"title": "Roma",
		"days": [{"dayIndex": 1}, {"dayIndex": 1.5}]
	}`))
	if !ok {
		t.Fatalf("expected trip to normalise")
	}
	if len(got.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got.Days))
	}
	if got.Days[0].DayIndex != 1 || got.Days[1].DayIndex != 2 || got.Days[1].Label != "Day 2" {
		t.Errorf("days = %d %d %q, want 1 and fallback 2", got.Days[0].DayIndex, got.Days[1].DayIndex, got.Days[1].Label)
	}
	d := NormalizeDay(decode(t, `{"dayIndex": 2.25}`), 4)
	if d.DayIndex != 4 || d.Label != "Day 4" {
		t.Errorf("day = %d %q, want fallback 4 and Day 4", d.DayIndex, d.Label)
	}
	if d := NormalizeDay(decode(t, `{"dayIndex": 3.0}`), 9); d.DayIndex != 3 {
		t.Errorf("integral float index = %d, want 3", d.DayIndex)
	}
}

func TestNormalizeItemIgnoresStringCost(t *testing.T) {
	it := NormalizeItem(decode(t, `{"title": "  ", "cost": "12"}`))
	if it.Title != DefaultItemTitle {
		t.Errorf("title = %q, want placeholder", it.Title)
	}
	if it.Cost != nil {
		t.Errorf("cost = %v, want nil", *it.Cost)
	}
}

func TestNormalizeItemFields(t *testing.T) {
	it := NormalizeItem(decode(t, `{"id": "i1", "title": " Museum ", "time": " 10:00 ", "note": "  ", "mapUrl": " https://maps.example/x ", "cost": 12.5, "done": true}`))
	want := Item{ID: "i1", Title: "Museum", Time: "10:00", MapURL: "https://maps.example/x", Cost: Float(12.5), Done: true}
	if !reflect.DeepEqual(it, want) {
		t.Errorf("got %+v, want %+v", it, want)
	}
}

func TestNormalizeNonArrayDays(t *testing.T) {
	got, ok := Normalize(decode(t, `{"title": "Rome", "days": {"0": {}}}`))
	if !ok {
		t.Fatalf("expected trip")
	}
	if got.Days == nil || len(got.Days) != 0 {
		t.Errorf("days = %#v, want empty non-nil slice", got.Days)
	}
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	_ = json.Unmarshal(b, &back)
	if _, ok := back["days"].([]any); !ok {
		t.Errorf("days should encode as an array, got %s", b)
	}
}

func TestNormalizeSortsDays(t *testing.T) {
	indexes := []int{3, 1, 4, 10, 2}
	perms := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}
	for _, perm := range perms {
		days := make([]any, 0, len(perm))
		for _, p := range perm {
			days = append(days, map[string]any{"dayIndex": float64(indexes[p])})
		}
		got, ok := Normalize(map[string]any{"title": "Trip", "days": days})
		if !ok {
			t.Fatalf("expected trip")
		}
		if !sort.SliceIsSorted(got.Days, func(i, j int) bool { return got.Days[i].DayIndex < got.Days[j].DayIndex }) {
			t.Errorf("days not sorted for permutation %v: %+v", perm, got.Days)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	first, ok := Normalize(decode(t, `{
		"id": "t1", "title": "Rome", "destination": "Italia • Roma", "startDate": "2025-05-01",
		"budget": 900, "createdAt": 100,
		"days": [
			{"id": "d2", "dayIndex": 2, "label": "Day 2", "items": [{"id": "i2", "title": "Pantheon", "cost": 0}]},
			{"id": "d1", "dayIndex": 1, "label": "Arrival", "date": "2025-05-01", "items": [{"id": "i1", "title": "Check-in", "time": "11:00", "note": "late", "done": true}]}
		]
	}`))
	if !ok {
		t.Fatalf("expected trip")
	}

	b, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, ok := Normalize(decode(t, string(b)))
	if !ok {
		t.Fatalf("expected normalised trip to normalise again")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalisation is not idempotent:\n first: %+v\nsecond: %+v", first, second)
	}

	third, ok := Clean(second)
	if !ok || !reflect.DeepEqual(second, third) {
		t.Errorf("Clean is not idempotent:\n want: %+v\n  got: %+v", second, third)
	}
}

func TestCleanRejectsNonFiniteAmounts(t *testing.T) {
	in := Trip{
		ID:        "t1",
		Title:     "Oslo",
		Budget:    Float(math.Inf(1)),
		CreatedAt: 5,
		Days: []Day{{ID: "d1", DayIndex: 1, Label: "Day 1", Items: []Item{
			{ID: "i1", Title: "Fjord", Cost: Float(math.NaN())},
		}}},
	}
	got, ok := Clean(in)
	if !ok {
		t.Fatalf("expected trip")
	}
	if got.Budget != nil {
		t.Errorf("budget should be dropped, got %v", *got.Budget)
	}
	if got.Days[0].Items[0].Cost != nil {
		t.Errorf("cost should be dropped, got %v", *got.Days[0].Items[0].Cost)
	}
	if got.CreatedAt != 5 {
		t.Errorf("createdAt = %d, want 5", got.CreatedAt)
	}
}

func TestCleanBlankTitle(t *testing.T) {
	if _, ok := Clean(Trip{ID: "t1", Title: " \t"}); ok {
		t.Fatalf("expected blank titled trip to be rejected")
	}
}

func TestCopyIsDeep(t *testing.T) {
	orig := Trip{Title: "A", Budget: Float(10), Days: []Day{{Items: []Item{{Title: "x", Cost: Float(1)}}}}}
	cp := orig.Copy()
	*cp.Budget = 20
	cp.Days[0].Items[0].Title = "y"
	*cp.Days[0].Items[0].Cost = 2
	if *orig.Budget != 10 || orig.Days[0].Items[0].Title != "x" || *orig.Days[0].Items[0].Cost != 1 {
		t.Fatalf("copy shares state with original: %+v", orig)
	}
}
