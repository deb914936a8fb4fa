package app

import (
	"context"

	"tableflip.dev/wendy/pkg/budget"
	"tableflip.dev/wendy/pkg/trip"
)

// ReportItem captures an activity and whether it was carried out.
type ReportItem struct {
	Item trip.Item
	Done bool
}

// ReportSection groups the activities of one day.
type ReportSection struct {
	Day     trip.Day
	Entries []ReportItem
	Done    int
	// Spent sums the cost of the completed activities.
	Spent float64
}

// ReportResult is the completion report of a trip.
type ReportResult struct {
	Trip     trip.Trip
	Sections []ReportSection
	Done     int
	Total    int
	Spent    float64
}

// Report returns the activities of a trip grouped by day with their
// completion state. Days are in day order; activities keep their stored order.
func (s *Service) Report(ctx context.Context, tripID string) (ReportResult, error) {
	t, err := s.Trip(ctx, tripID)
	if err != nil {
		return ReportResult{}, err
	}
	res := ReportResult{Trip: t, Sections: make([]ReportSection, 0, len(t.Days))}
	for _, d := range t.Days {
		section := ReportSection{Day: d, Entries: make([]ReportItem, 0, len(d.Items))}
		completed := trip.Day{}
		for _, it := range d.Items {
			section.Entries = append(section.Entries, ReportItem{Item: it, Done: it.Done})
			if it.Done {
				section.Done++
				completed.Items = append(completed.Items, it)
			}
		}
		section.Spent = budget.DayTotal(completed)
		res.Sections = append(res.Sections, section)
		res.Done += section.Done
		res.Total += len(d.Items)
		res.Spent += section.Spent
	}
	return res, nil
}
