package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"tableflip.dev/wendy/pkg/chat"
	"tableflip.dev/wendy/pkg/store"
	"tableflip.dev/wendy/pkg/trip"
	"tableflip.dev/wendy/pkg/uid"
)

// Service provides the planner operations on top of the trip and chat stores.
// It wraps persistence and entity edits so the CLI and tests share logic.
type Service struct {
	Trips *store.Trips
	Chats *store.Chats

	kv store.KV
}

var (
	ErrNoStore       = errors.New("app: no persistence configured")
	ErrTripNotFound  = errors.New("app: trip not found")
	ErrDayNotFound   = errors.New("app: day not found")
	ErrItemNotFound  = errors.New("app: item not found")
	ErrTitleRequired = errors.New("app: title is required")
	ErrEmptyMessage  = errors.New("app: message is empty")
)

// New builds a Service whose stores share kv.
func New(kv store.KV) *Service {
	return &Service{
		Trips: store.NewTrips(kv),
		Chats: store.NewChats(kv),
		kv:    kv,
	}
}

func (s *Service) ready(ctx context.Context) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if s == nil || s.Trips == nil {
		return ErrNoStore
	}
	return nil
}

// List returns every trip, newest first.
func (s *Service) List(ctx context.Context) ([]trip.Trip, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return s.Trips.Load(), nil
}

// Trip returns the trip with the given id.
func (s *Service) Trip(ctx context.Context, id string) (trip.Trip, error) {
	if err := s.ready(ctx); err != nil {
		return trip.Trip{}, err
	}
	t, ok := s.Trips.Get(id)
	if !ok {
		return trip.Trip{}, fmt.Errorf("%w: %s", ErrTripNotFound, id)
	}
	return t, nil
}

// Watch subscribes to change events of the underlying backend.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return store.Watch(ctx, s.kv)
}

// DeleteTrip removes a trip together with its chat log.
func (s *Service) DeleteTrip(ctx context.Context, id string) error {
	if _, err := s.Trip(ctx, id); err != nil {
		return err
	}
	if err := s.Trips.Delete(id); err != nil {
		return err
	}
	return s.Chats.Clear(id)
}

// DuplicateTrip stores a copy of a trip under new identifiers.
func (s *Service) DuplicateTrip(ctx context.Context, id string) (trip.Trip, error) {
	src, err := s.Trip(ctx, id)
	if err != nil {
		return trip.Trip{}, err
	}
	cp := src.Copy()
	cp.ID = uid.New("trip")
	cp.Title = src.Title + " (copia)"
	cp.CreatedAt = time.Now().UnixMilli()
	for i := range cp.Days {
		cp.Days[i].ID = uid.New("day")
		for j := range cp.Days[i].Items {
			cp.Days[i].Items[j].ID = uid.New("item")
		}
	}
	if err := s.Trips.Upsert(cp); err != nil {
		return trip.Trip{}, err
	}
	return cp, nil
}

// AddDay appends an empty day after the highest existing day index.
func (s *Service) AddDay(ctx context.Context, tripID string) (trip.Day, error) {
	var added trip.Day
	err := s.update(ctx, tripID, func(t *trip.Trip) error {
		next := t.MaxDayIndex() + 1
		added = trip.Day{
			ID:       uid.New("day"),
			DayIndex: next,
			Label:    trip.DayLabel(next),
			Items:    []trip.Item{},
		}
		t.Days = append(t.Days, added)
		return nil
	})
	return added, err
}

// DuplicateDay appends a copy of the given day, with fresh identifiers, after
// the highest existing day index.
func (s *Service) DuplicateDay(ctx context.Context, tripID string, dayIndex int) (trip.Day, error) {
	var added trip.Day
	err := s.update(ctx, tripID, func(t *trip.Trip) error {
		src, ok := t.Day(dayIndex)
		if !ok {
			return fmt.Errorf("%w: %d", ErrDayNotFound, dayIndex)
		}
		next := t.MaxDayIndex() + 1
		added = src.Copy()
		added.ID = uid.New("day")
		added.DayIndex = next
		added.Label = trip.DayLabel(next)
		for i := range added.Items {
			added.Items[i].ID = uid.New("item")
		}
		t.Days = append(t.Days, added)
		return nil
	})
	return added, err
}

// NewItem describes an activity as typed by the user.
type NewItem struct {
	Title  string
	Time   string
	Note   string
	MapURL string
	Cost   string
}

// AddItem puts a new activity at the top of the given day. A cost that does
// not parse is left unset.
func (s *Service) AddItem(ctx context.Context, tripID string, dayIndex int, in NewItem) (trip.Item, error) {
	title := strings.TrimSpace(in.Title)
	if utf8.RuneCountInString(title) < 2 {
		return trip.Item{}, ErrTitleRequired
	}
	it := trip.Item{
		ID:     uid.New("item"),
		Title:  title,
		Time:   strings.TrimSpace(in.Time),
		Note:   strings.TrimSpace(in.Note),
		MapURL: strings.TrimSpace(in.MapURL),
	}
	if c, ok := ParseCost(in.Cost); ok {
		it.Cost = trip.Float(c)
	}
	err := s.update(ctx, tripID, func(t *trip.Trip) error {
		for i := range t.Days {
			if t.Days[i].DayIndex == dayIndex {
				t.Days[i].Items = append([]trip.Item{it}, t.Days[i].Items...)
				return nil
			}
		}
		return fmt.Errorf("%w: %d", ErrDayNotFound, dayIndex)
	})
	return it, err
}

// RemoveItem deletes the activity with the given id from whichever day holds it.
func (s *Service) RemoveItem(ctx context.Context, tripID, itemID string) error {
	return s.update(ctx, tripID, func(t *trip.Trip) error {
		for i := range t.Days {
			items := t.Days[i].Items
			for j := range items {
				if items[j].ID == itemID {
					t.Days[i].Items = append(items[:j:j], items[j+1:]...)
					return nil
				}
			}
		}
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	})
}

// ToggleDone flips the completion flag of an activity.
func (s *Service) ToggleDone(ctx context.Context, tripID, itemID string) (trip.Item, error) {
	var changed trip.Item
	err := s.update(ctx, tripID, func(t *trip.Trip) error {
		for i := range t.Days {
			for j := range t.Days[i].Items {
				it := &t.Days[i].Items[j]
				if it.ID == itemID {
					it.Done = !it.Done
					changed = *it
					return nil
				}
			}
		}
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	})
	return changed, err
}

// SetBudget replaces the budget of a trip. A nil budget removes it.
func (s *Service) SetBudget(ctx context.Context, tripID string, budget *float64) (trip.Trip, error) {
	var out trip.Trip
	err := s.update(ctx, tripID, func(t *trip.Trip) error {
		t.Budget = nil
		if budget != nil {
			t.Budget = trip.Float(*budget)
		}
		out = *t
		return nil
	})
	return out, err
}

// Messages returns the chat log of a trip, oldest first.
func (s *Service) Messages(ctx context.Context, tripID string) ([]chat.Message, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return s.Chats.Load(tripID), nil
}

// SendMessage appends a message to the chat log of a trip.
func (s *Service) SendMessage(ctx context.Context, tripID, author, text string) (chat.Message, error) {
	if err := s.ready(ctx); err != nil {
		return chat.Message{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return chat.Message{}, ErrEmptyMessage
	}
	now := time.Now().UnixMilli()
	msg := chat.Message{
		ID:        uid.Message(now),
		TripID:    tripID,
		Text:      text,
		Author:    strings.TrimSpace(author),
		CreatedAt: now,
	}
	if msg.Author == "" {
		msg.Author = chat.DefaultAuthor
	}
	if err := s.Chats.Add(tripID, msg); err != nil {
		return chat.Message{}, err
	}
	return msg, nil
}

// update loads a trip, applies fn and stores the result.
func (s *Service) update(ctx context.Context, tripID string, fn func(*trip.Trip) error) error {
	t, err := s.Trip(ctx, tripID)
	if err != nil {
		return err
	}
	if err := fn(&t); err != nil {
		return err
	}
	return s.Trips.Upsert(t)
}

// ParseCost reads an amount typed with either a dot or a comma as decimal
// separator. Blank or non-finite input is not a cost.
func ParseCost(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ShareLink is the address under which a trip is opened in the web planner.
func ShareLink(base, tripID string) string {
	return strings.TrimRight(base, "/") + "/trip/" + url.PathEscape(tripID)
}
