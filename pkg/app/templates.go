package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tableflip.dev/wendy/pkg/trip"
	"tableflip.dev/wendy/pkg/uid"
)

// Day count bounds of a newly created trip.
const (
	MinDays = 1
	MaxDays = 21
)

// ErrUnknownTemplate is returned for a template key that is not registered.
var ErrUnknownTemplate = errors.New("app: unknown template")

// Template pre-fills a new trip with a number of days and, optionally, a set
// of suggested activities for each day.
type Template struct {
	Key          string
	Label        string
	Days         int
	DefaultTitle string

	seed func(day int) []seedItem
}

type seedItem struct {
	title string
	time  string
}

// Template keys.
const (
	Custom     = "custom"
	CityBreak3 = "citybreak3"
	Weekend2   = "weekend2"
	RoadTrip7  = "roadtrip7"
)

var templates = []Template{
	{Key: Custom, Label: "Personalizzato", Days: 4, DefaultTitle: "Viaggio"},
	{Key: CityBreak3, Label: "City break • 3 giorni", Days: 3, DefaultTitle: "City break", seed: func(day int) []seedItem {
		switch day {
		case 1:
			return []seedItem{{"Arrivo + check-in", "12:00"}, {"Punto panoramico", "17:30"}}
		case 2:
			return []seedItem{{"Museo / attrazione", "10:00"}, {"Zona food / serata", "19:30"}}
		default:
			return []seedItem{{"Quartiere tipico / mercato", "10:00"}, {"Partenza", "16:30"}}
		}
	}},
	{Key: Weekend2, Label: "Weekend • 2 giorni", Days: 2, DefaultTitle: "Weekend", seed: func(day int) []seedItem {
		if day == 1 {
			return []seedItem{{"Arrivo + check-in", "11:00"}, {"Centro / passeggiata", "16:30"}, {"Cena", "20:30"}}
		}
		return []seedItem{{"Colazione", "09:00"}, {"Attività principale", "10:30"}, {"Rientro", "18:00"}}
	}},
	{Key: RoadTrip7, Label: "Road trip • 7 giorni", Days: 7, DefaultTitle: "Road trip", seed: func(day int) []seedItem {
		return []seedItem{{fmt.Sprintf("Tappa %d", day), "10:00"}, {"Pranzo", "13:30"}, {"Tramonto / foto spot", "19:00"}}
	}},
}

// Templates lists the registered templates, custom first.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// LookupTemplate finds a template by key. An empty key is the custom template.
func LookupTemplate(key string) (Template, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		key = Custom
	}
	for _, t := range templates {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}

// BuildDays returns count empty days indexed from 1. count is clamped to
// [MinDays, MaxDays].
func BuildDays(count int) []trip.Day {
	count = max(MinDays, min(MaxDays, count))
	days := make([]trip.Day, count)
	for i := range days {
		days[i] = trip.Day{
			ID:       uid.New("day"),
			DayIndex: i + 1,
			Label:    trip.DayLabel(i + 1),
			Items:    []trip.Item{},
		}
	}
	return days
}

// NewTrip describes a trip to create.
type NewTrip struct {
	Title       string
	Destination string
	StartDate   string
	EndDate     string
	Budget      *float64
	// Days overrides the day count of the template when positive.
	Days     int
	Template string
}

// CreateTrip builds and stores a new trip. A blank title takes the default
// title of the template; otherwise the title needs at least two characters.
// Seeded activities are only added for non-custom templates.
func (s *Service) CreateTrip(ctx context.Context, in NewTrip) (trip.Trip, error) {
	if err := s.ready(ctx); err != nil {
		return trip.Trip{}, err
	}
	tpl, ok := LookupTemplate(in.Template)
	if !ok {
		return trip.Trip{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, in.Template)
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = tpl.DefaultTitle
	}
	if utf8.RuneCountInString(title) < 2 {
		return trip.Trip{}, ErrTitleRequired
	}
	count := tpl.Days
	if in.Days > 0 {
		count = in.Days
	}

	t := trip.Trip{
		ID:          uid.New("trip"),
		Title:       title,
		Destination: strings.TrimSpace(in.Destination),
		StartDate:   strings.TrimSpace(in.StartDate),
		EndDate:     strings.TrimSpace(in.EndDate),
		Days:        BuildDays(count),
		CreatedAt:   time.Now().UnixMilli(),
	}
	if in.Budget != nil {
		t.Budget = trip.Float(*in.Budget)
	}
	if tpl.seed != nil {
		for i := range t.Days {
			for _, si := range tpl.seed(t.Days[i].DayIndex) {
				t.Days[i].Items = append(t.Days[i].Items, trip.Item{
					ID:    uid.New("item"),
					Title: si.title,
					Time:  si.time,
				})
			}
		}
	}
	if err := s.Trips.Upsert(t); err != nil {
		return trip.Trip{}, err
	}
	return t, nil
}
