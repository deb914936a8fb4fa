package app

import (
	"context"
	"io"

	"tableflip.dev/wendy/pkg/transfer"
	"tableflip.dev/wendy/pkg/trip"
)

// Import reads an exported trip and stores it as a new trip.
func (s *Service) Import(ctx context.Context, r io.Reader) (trip.Trip, error) {
	if err := s.ready(ctx); err != nil {
		return trip.Trip{}, err
	}
	t, err := transfer.Import(r)
	if err != nil {
		return trip.Trip{}, err
	}
	if err := s.Trips.Upsert(t); err != nil {
		return trip.Trip{}, err
	}
	return t, nil
}
