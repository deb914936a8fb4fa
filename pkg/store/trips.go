package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"tableflip.dev/wendy/pkg/raw"
	"tableflip.dev/wendy/pkg/trip"
)

// Keys of the trip collection. The legacy key is only ever read.
const (
	TripsKey       = "wendy_trips_v1"
	LegacyTripsKey = "wendenzo_trips_v1"
)

// ErrInvalidTrip is returned by Upsert for a trip without a usable title.
var ErrInvalidTrip = errors.New("store: trip has no title")

// Trips owns the trip collection. Every read normalises the persisted data
// and writes the repaired collection back, so repairs survive the first load.
// A Trips without a KV behaves as an always empty store.
type Trips struct {
	kv  KV
	log *slog.Logger
}

// NewTrips returns a trip store persisting into kv.
func NewTrips(kv KV) *Trips {
	return &Trips{kv: kv, log: slog.Default().With("store", "trips")}
}

// Load returns every valid trip. Unreadable or missing data yields an empty
// list; trips without a title are dropped.
func (s *Trips) Load() []trip.Trip {
	if s == nil || s.kv == nil {
		return []trip.Trip{}
	}

	if list, ok := readList(s.kv, TripsKey, s.log); ok {
		trips := normalizeTrips(list)
		s.persist(trips)
		return trips
	}

	if list, ok := readList(s.kv, LegacyTripsKey, s.log); ok {
		trips := normalizeTrips(list)
		s.log.Info("migrating legacy trips", "count", len(trips))
		s.persist(trips)
		return trips
	}

	return []trip.Trip{}
}

// Save replaces the whole persisted collection with trips.
func (s *Trips) Save(trips []trip.Trip) error {
	if s == nil || s.kv == nil {
		return nil
	}
	if trips == nil {
		trips = []trip.Trip{}
	}
	data, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("store: encode trips: %w", err)
	}
	if err := s.kv.Write(TripsKey, data); err != nil {
		return fmt.Errorf("store: write trips: %w", err)
	}
	return nil
}

// Get returns the trip with the given id.
func (s *Trips) Get(id string) (trip.Trip, bool) {
	for _, t := range s.Load() {
		if t.ID == id {
			return t, true
		}
	}
	return trip.Trip{}, false
}

// Upsert normalises t and stores it, replacing the trip with the same id or
// inserting it first. The collection is then ordered newest created first.
func (s *Trips) Upsert(t trip.Trip) error {
	if s == nil || s.kv == nil {
		return nil
	}
	n, ok := trip.Clean(t)
	if !ok {
		return ErrInvalidTrip
	}

	trips := s.Load()
	idx := -1
	for i := range trips {
		if trips[i].ID == n.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		trips[idx] = n
	} else {
		trips = append([]trip.Trip{n}, trips...)
	}

	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].CreatedAt > trips[j].CreatedAt
	})
	return s.Save(trips)
}

// Delete removes the trip with the given id. Deleting an unknown id still
// rewrites the collection.
func (s *Trips) Delete(id string) error {
	if s == nil || s.kv == nil {
		return nil
	}
	all := s.Load()
	kept := make([]trip.Trip, 0, len(all))
	for _, t := range all {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.Save(kept)
}

func (s *Trips) persist(trips []trip.Trip) {
	if err := s.Save(trips); err != nil {
		s.log.Warn("could not persist normalised trips", "error", err)
	}
}

func normalizeTrips(list []any) []trip.Trip {
	trips := make([]trip.Trip, 0, len(list))
	for _, v := range list {
		if t, ok := trip.Normalize(v); ok {
			trips = append(trips, t)
		}
	}
	return trips
}

// readList reads key and decodes it as a JSON array. Missing keys, empty
// values, corrupt JSON and non-array documents all report false.
func readList(kv KV, key string, log *slog.Logger) ([]any, bool) {
	data, ok := readValue(kv, key, log)
	if !ok {
		return nil, false
	}
	v, err := raw.Decode(data)
	if err != nil {
		log.Debug("discarding unreadable value", "key", key, "error", err)
		return nil, false
	}
	list, ok := v.([]any)
	if !ok {
		log.Debug("discarding non-array value", "key", key)
	}
	return list, ok
}

func readValue(kv KV, key string, log *slog.Logger) ([]byte, bool) {
	data, err := kv.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Debug("read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return data, len(data) > 0
}
