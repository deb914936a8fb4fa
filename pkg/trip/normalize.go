package trip

import (
	"math"
	"sort"
	"time"

	"tableflip.dev/wendy/pkg/raw"
	"tableflip.dev/wendy/pkg/uid"
)

// Normalize turns an untrusted decoded value into a Trip. It reports false
// when the value is not an object or carries no usable title; such a trip has
// no identity and is dropped by callers. Every other defect is repaired.
func Normalize(v any) (Trip, bool) {
	m, ok := raw.Object(v)
	if !ok {
		return Trip{}, false
	}
	title := raw.String(m, "title")
	if title == "" {
		return Trip{}, false
	}

	t := Trip{
		ID:          raw.ID(m, "id"),
		Title:       title,
		Destination: raw.String(m, "destination"),
		StartDate:   raw.String(m, "startDate"),
		EndDate:     raw.String(m, "endDate"),
	}
	if t.ID == "" {
		t.ID = uid.New("trip")
	}
	if b, ok := raw.Number(m, "budget"); ok {
		t.Budget = Float(b)
	}
	if at, ok := raw.Millis(m, "createdAt"); ok {
		t.CreatedAt = at
	} else {
		t.CreatedAt = time.Now().UnixMilli()
	}

	days := raw.List(m, "days")
	t.Days = make([]Day, 0, len(days))
	for i, d := range days {
		t.Days = append(t.Days, NormalizeDay(d, i+1))
	}
	SortDays(t.Days)
	return t, true
}

// NormalizeDay turns an untrusted value into a Day. fallback is the day's
// 1-based position, used when the value has no numeric dayIndex.
func NormalizeDay(v any, fallback int) Day {
	m, _ := raw.Object(v)

	d := Day{
		ID:       raw.ID(m, "id"),
		DayIndex: fallback,
		Label:    raw.String(m, "label"),
		Date:     raw.String(m, "date"),
	}
	if d.ID == "" {
		d.ID = uid.New("day")
	}
	// Fractional indexes would collide once stored as ints; they count as absent.
	if idx, ok := raw.Number(m, "dayIndex"); ok && idx == math.Trunc(idx) && math.Abs(idx) < math.MaxInt32 {
		d.DayIndex = int(idx)
	}
	if d.Label == "" {
		d.Label = DayLabel(d.DayIndex)
	}

	items := raw.List(m, "items")
	d.Items = make([]Item, 0, len(items))
	for _, it := range items {
		d.Items = append(d.Items, NormalizeItem(it))
	}
	return d
}

// NormalizeItem turns an untrusted value into an Item. It never fails: a
// blank title becomes DefaultItemTitle.
func NormalizeItem(v any) Item {
	m, _ := raw.Object(v)

	it := Item{
		ID:     raw.ID(m, "id"),
		Title:  raw.String(m, "title"),
		Time:   raw.String(m, "time"),
		Note:   raw.String(m, "note"),
		MapURL: raw.String(m, "mapUrl"),
		Done:   raw.Bool(m, "done"),
	}
	if it.ID == "" {
		it.ID = uid.New("item")
	}
	if it.Title == "" {
		it.Title = DefaultItemTitle
	}
	if c, ok := raw.Number(m, "cost"); ok {
		it.Cost = Float(c)
	}
	return it
}

// Clean re-normalises a typed trip through the same rules as Normalize.
func Clean(t Trip) (Trip, bool) {
	return Normalize(t.generic())
}

// SortDays orders days ascending by DayIndex, keeping the relative order of
// equal indexes.
func SortDays(days []Day) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].DayIndex < days[j].DayIndex
	})
}

// generic mirrors the JSON shape of t without encoding it, so non-finite
// amounts reach Normalize instead of failing json.Marshal.
func (t Trip) generic() map[string]any {
	m := map[string]any{
		"id":          t.ID,
		"title":       t.Title,
		"destination": t.Destination,
		"startDate":   t.StartDate,
		"endDate":     t.EndDate,
		"createdAt":   t.CreatedAt,
	}
	if t.CreatedAt == 0 {
		delete(m, "createdAt")
	}
	if t.Budget != nil {
		m["budget"] = *t.Budget
	}
	days := make([]any, len(t.Days))
	for i, d := range t.Days {
		items := make([]any, len(d.Items))
		for j, it := range d.Items {
			im := map[string]any{
				"id":     it.ID,
				"title":  it.Title,
				"time":   it.Time,
				"note":   it.Note,
				"mapUrl": it.MapURL,
				"done":   it.Done,
			}
			if it.Cost != nil {
				im["cost"] = *it.Cost
			}
			items[j] = im
		}
		days[i] = map[string]any{
			"id":       d.ID,
			"dayIndex": d.DayIndex,
			"label":    d.Label,
			"date":     d.Date,
			"items":    items,
		}
	}
	m["days"] = days
	return m
}
