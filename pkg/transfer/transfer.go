// Package transfer reads and writes trips as standalone JSON files.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"tableflip.dev/wendy/pkg/raw"
	"tableflip.dev/wendy/pkg/trip"
	"tableflip.dev/wendy/pkg/uid"
)

// Limits applied to imported files.
const (
	MaxDays        = 21
	MaxItemsPerDay = 200

	maxTitle       = 80
	maxDestination = 120
	maxItemTitle   = 120
	maxTime        = 10
	maxMapURL      = 500
	maxNote        = 800

	fallbackDays = 4
)

// ErrInvalidImport is returned for files that do not describe a trip.
var ErrInvalidImport = errors.New("transfer: not a trip export")

// Import reads an exported trip. The result always gets fresh identifiers and
// a new creation time, so importing the same file twice yields two trips.
func Import(r io.Reader) (trip.Trip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return trip.Trip{}, fmt.Errorf("transfer: read: %w", err)
	}
	v, err := raw.Decode(data)
	if err != nil {
		return trip.Trip{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	m, ok := raw.Object(v)
	if !ok || !raw.Truthy(m["title"]) || !raw.Truthy(m["days"]) {
		return trip.Trip{}, ErrInvalidImport
	}

	out := map[string]any{
		"id":        uid.New("trip"),
		"title":     clip(text(m["title"]), maxTitle),
		"createdAt": time.Now().UnixMilli(),
	}
	if raw.Truthy(m["destination"]) {
		out["destination"] = clip(text(m["destination"]), maxDestination)
	}
	if b, ok := raw.Number(m, "budget"); ok {
		out["budget"] = b
	}

	if days, ok := m["days"].([]any); ok {
		if len(days) > MaxDays {
			days = days[:MaxDays]
		}
		list := make([]any, len(days))
		for i, d := range days {
			list[i] = importDay(d, i+1)
		}
		out["days"] = list
	} else {
		list := make([]any, fallbackDays)
		for i := range list {
			list[i] = map[string]any{"id": uid.New("day"), "dayIndex": i + 1}
		}
		out["days"] = list
	}

	t, ok := trip.Normalize(out)
	if !ok {
		return trip.Trip{}, ErrInvalidImport
	}
	return t, nil
}

func importDay(v any, index int) map[string]any {
	d, _ := raw.Object(v)
	items := raw.List(d, "items")
	if len(items) > MaxItemsPerDay {
		items = items[:MaxItemsPerDay]
	}
	list := make([]any, len(items))
	for i, it := range items {
		list[i] = importItem(it)
	}
	return map[string]any{
		"id":       uid.New("day"),
		"dayIndex": index,
		"label":    trip.DayLabel(index),
		"items":    list,
	}
}

func importItem(v any) map[string]any {
	it, _ := raw.Object(v)
	out := map[string]any{
		"id":    uid.New("item"),
		"title": clip(text(it["title"]), maxItemTitle),
	}
	for key, limit := range map[string]int{"time": maxTime, "mapUrl": maxMapURL, "note": maxNote} {
		if raw.Truthy(it[key]) {
			out[key] = clip(text(it[key]), limit)
		}
	}
	if c, ok := raw.Number(it, "cost"); ok {
		out["cost"] = c
	}
	return out
}

// text stringifies a scalar field of an imported file.
func text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// clip keeps at most n characters of s.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ExportTrip writes t as indented JSON.
func ExportTrip(w io.Writer, t trip.Trip) error {
	return write(w, t)
}

// ExportDay writes a single day as indented JSON.
func ExportDay(w io.Writer, d trip.Day) error {
	return write(w, d)
}

// ExportAll writes the whole collection as indented JSON.
func ExportAll(w io.Writer, trips []trip.Trip) error {
	if trips == nil {
		trips = []trip.Trip{}
	}
	return write(w, trips)
}

func write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("transfer: encode: %w", err)
	}
	return nil
}

// TripFileName is the suggested file name of an exported trip.
func TripFileName(id string) string {
	return fmt.Sprintf("wendenzo-trip-%s.json", id)
}

// DayFileName is the suggested file name of an exported day.
func DayFileName(tripID string, dayIndex int) string {
	return fmt.Sprintf("wendenzo-day-%s-%d.json", tripID, dayIndex)
}

// BackupFileName is the suggested file name of a full export.
const BackupFileName = "wendenzo-backup.json"
