// Package trip defines trips, their days and the activities planned on each
// day, together with the normalisation that turns untrusted data into them.
package trip

import "fmt"

// DefaultItemTitle replaces a blank activity title.
const DefaultItemTitle = "Attività"

// Trip is a planned journey made of ordered days.
type Trip struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Destination string   `json:"destination,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Days        []Day    `json:"days"`
	CreatedAt   int64    `json:"createdAt"`
}

// Day is one subdivision of a trip. DayIndex orders days; gaps are allowed.
type Day struct {
	ID       string `json:"id"`
	DayIndex int    `json:"dayIndex"`
	Label    string `json:"label"`
	Date     string `json:"date,omitempty"`
	Items    []Item `json:"items"`
}

// Item is a single activity planned on a day.
type Item struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Time   string   `json:"time,omitempty"`
	Note   string   `json:"note,omitempty"`
	MapURL string   `json:"mapUrl,omitempty"`
	Cost   *float64 `json:"cost,omitempty"`
	Done   bool     `json:"done,omitempty"`
}

// DayLabel is the label synthesised for a day without one.
func DayLabel(dayIndex int) string {
	return fmt.Sprintf("Day %d", dayIndex)
}

// Float returns a pointer to v, for optional amounts.
func Float(v float64) *float64 {
	return &v
}

// Copy returns a deep copy of t.
func (t Trip) Copy() Trip {
	out := t
	if t.Budget != nil {
		out.Budget = Float(*t.Budget)
	}
	out.Days = make([]Day, len(t.Days))
	for i, d := range t.Days {
		out.Days[i] = d.Copy()
	}
	return out
}

// Copy returns a deep copy of d.
func (d Day) Copy() Day {
	out := d
	out.Items = make([]Item, len(d.Items))
	for i, it := range d.Items {
		out.Items[i] = it.Copy()
	}
	return out
}

// Copy returns a deep copy of it.
func (it Item) Copy() Item {
	out := it
	if it.Cost != nil {
		out.Cost = Float(*it.Cost)
	}
	return out
}

// Day returns the day with the given index.
func (t Trip) Day(dayIndex int) (Day, bool) {
	for _, d := range t.Days {
		if d.DayIndex == dayIndex {
			return d, true
		}
	}
	return Day{}, false
}

// MaxDayIndex returns the highest day index, 0 for a trip without days.
func (t Trip) MaxDayIndex() int {
	highest := 0
	for _, d := range t.Days {
		if d.DayIndex > highest {
			highest = d.DayIndex
		}
	}
	return highest
}
