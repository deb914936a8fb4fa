// Package budget derives spending figures from a trip. Every function is pure
// and recomputed from the trip on each call.
package budget

import (
	"math"

	"github.com/shopspring/decimal"

	"tableflip.dev/wendy/pkg/trip"
)

// TripTotal sums the cost of every item of every day. Items without a cost
// count as zero.
func TripTotal(t trip.Trip) float64 {
	sum := decimal.Zero
	for _, d := range t.Days {
		sum = sum.Add(dayTotal(d))
	}
	return sum.InexactFloat64()
}

// DayTotal sums the cost of the items of d.
func DayTotal(d trip.Day) float64 {
	return dayTotal(d).InexactFloat64()
}

func dayTotal(d trip.Day) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range d.Items {
		if it.Cost != nil {
			sum = sum.Add(decimal.NewFromFloat(*it.Cost))
		}
	}
	return sum
}

// ItemCount counts the items of every day.
func ItemCount(t trip.Trip) int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Items)
	}
	return n
}

// DayTarget is the budget share of a single day, budget / max(1, days).
func DayTarget(t trip.Trip) (float64, bool) {
	if t.Budget == nil {
		return 0, false
	}
	days := int64(len(t.Days))
	if days < 1 {
		days = 1
	}
	return decimal.NewFromFloat(*t.Budget).Div(decimal.NewFromInt(days)).InexactFloat64(), true
}

// RemainingTrip is the budget left once every item is paid.
func RemainingTrip(t trip.Trip) (float64, bool) {
	if t.Budget == nil {
		return 0, false
	}
	total := decimal.NewFromFloat(TripTotal(t))
	return decimal.NewFromFloat(*t.Budget).Sub(total).InexactFloat64(), true
}

// RemainingDay is the day target minus what d costs.
func RemainingDay(t trip.Trip, d trip.Day) (float64, bool) {
	target, ok := DayTarget(t)
	if !ok {
		return 0, false
	}
	return decimal.NewFromFloat(target).Sub(dayTotal(d)).InexactFloat64(), true
}

// TripOver reports whether the items cost more than the budget. A trip
// without a budget is never over it.
func TripOver(t trip.Trip) bool {
	if t.Budget == nil {
		return false
	}
	return TripTotal(t) > *t.Budget
}

// DayOver reports whether d costs more than its share of the budget.
func DayOver(t trip.Trip, d trip.Day) bool {
	target, ok := DayTarget(t)
	if !ok {
		return false
	}
	return DayTotal(d) > target
}

// Utilization is the spent share of the budget as a percentage in [0, 100].
// It is undefined for a missing or non-positive budget.
func Utilization(t trip.Trip) (int, bool) {
	if t.Budget == nil || *t.Budget <= 0 {
		return 0, false
	}
	pct := math.Round(TripTotal(t) / *t.Budget * 100)
	return int(math.Max(0, math.Min(100, pct))), true
}

// Summary bundles the figures shown for a trip and, optionally, one day.
type Summary struct {
	Days      int      `json:"days"`
	Items     int      `json:"items"`
	Total     float64  `json:"total"`
	Budget    *float64 `json:"budget,omitempty"`
	Remaining *float64 `json:"remaining,omitempty"`
	DayTarget *float64 `json:"dayTarget,omitempty"`
	Percent   *int     `json:"percent,omitempty"`
	Over      bool     `json:"over"`

	Day *DaySummary `json:"day,omitempty"`
}

// DaySummary holds the figures of a single day.
type DaySummary struct {
	DayIndex  int      `json:"dayIndex"`
	Label     string   `json:"label"`
	Total     float64  `json:"total"`
	Remaining *float64 `json:"remaining,omitempty"`
	Over      bool     `json:"over"`
}

// Summarize computes the trip figures.
func Summarize(t trip.Trip) Summary {
	s := Summary{
		Days:  len(t.Days),
		Items: ItemCount(t),
		Total: TripTotal(t),
		Over:  TripOver(t),
	}
	if t.Budget != nil {
		s.Budget = trip.Float(*t.Budget)
	}
	if v, ok := RemainingTrip(t); ok {
		s.Remaining = trip.Float(v)
	}
	if v, ok := DayTarget(t); ok {
		s.DayTarget = trip.Float(v)
	}
	if v, ok := Utilization(t); ok {
		s.Percent = &v
	}
	return s
}

// SummarizeDay computes the trip figures plus those of d.
func SummarizeDay(t trip.Trip, d trip.Day) Summary {
	s := Summarize(t)
	s.Day = &DaySummary{
		DayIndex: d.DayIndex,
		Label:    d.Label,
		Total:    DayTotal(d),
		Over:     DayOver(t, d),
	}
	if v, ok := RemainingDay(t, d); ok {
		s.Day.Remaining = trip.Float(v)
	}
	return s
}
