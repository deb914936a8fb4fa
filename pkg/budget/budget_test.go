package budget

import (
	"math"
	"strings"
	"testing"

	"tableflip.dev/wendy/pkg/trip"
)

func day(idx int, costs ...*float64) trip.Day {
	d := trip.Day{DayIndex: idx, Label: trip.DayLabel(idx)}
	for _, c := range costs {
		d.Items = append(d.Items, trip.Item{Title: "x", Cost: c})
	}
	return d
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotals(t *testing.T) {
	tr := trip.Trip{Title: "Rome", Days: []trip.Day{
		day(1, trip.Float(10.1), trip.Float(20.2), nil),
		day(2),
		day(3, trip.Float(0.1), trip.Float(0.2)),
	}}
	if got := TripTotal(tr); !near(got, 30.6) {
		t.Errorf("TripTotal = %v, want 30.6", got)
	}
	if got := DayTotal(tr.Days[2]); got != 0.3 {
		t.Errorf("DayTotal = %v, want exactly 0.3", got)
	}
	if got := ItemCount(tr); got != 5 {
		t.Errorf("ItemCount = %d, want 5", got)
	}
}

func TestTotalsMatchSumOfDays(t *testing.T) {
	tr := trip.Trip{Title: "Rome"}
	want := 0.0
	for i := 1; i <= 6; i++ {
		d := day(i, trip.Float(float64(i)*3.5), nil, trip.Float(1))
		want += DayTotal(d)
		tr.Days = append(tr.Days, d)
	}
	if got := TripTotal(tr); !near(got, want) {
		t.Fatalf("TripTotal = %v, want sum of days %v", got, want)
	}
}

func TestWithoutBudget(t *testing.T) {
	tr := trip.Trip{Title: "Rome", Days: []trip.Day{day(1, trip.Float(1000))}}
	if _, ok := DayTarget(tr); ok {
		t.Errorf("DayTarget should be undefined without budget")
	}
	if _, ok := RemainingTrip(tr); ok {
		t.Errorf("RemainingTrip should be undefined without budget")
	}
	if _, ok := RemainingDay(tr, tr.Days[0]); ok {
		t.Errorf("RemainingDay should be undefined without budget")
	}
	if TripOver(tr) || DayOver(tr, tr.Days[0]) {
		t.Errorf("a trip without budget is never over")
	}
	if _, ok := Utilization(tr); ok {
		t.Errorf("Utilization should be undefined without budget")
	}
}

func TestWithBudget(t *testing.T) {
	tr := trip.Trip{Title: "Rome", Budget: trip.Float(300), Days: []trip.Day{
		day(1, trip.Float(150)),
		day(2, trip.Float(20)),
		day(3),
	}}
	if v, ok := DayTarget(tr); !ok || v != 100 {
		t.Errorf("DayTarget = %v, %v; want 100", v, ok)
	}
	if v, ok := RemainingTrip(tr); !ok || v != 130 {
		t.Errorf("RemainingTrip = %v, %v; want 130", v, ok)
	}
	if v, ok := RemainingDay(tr, tr.Days[0]); !ok || v != -50 {
		t.Errorf("RemainingDay = %v, %v; want -50", v, ok)
	}
	if TripOver(tr) {
		t.Errorf("trip should not be over budget")
	}
	if !DayOver(tr, tr.Days[0]) || DayOver(tr, tr.Days[1]) {
		t.Errorf("only day 1 should be over its target")
	}
	if v, ok := Utilization(tr); !ok || v != 57 {
		t.Errorf("Utilization = %v, %v; want 57", v, ok)
	}
}

func TestDayTargetWithoutDays(t *testing.T) {
	tr := trip.Trip{Title: "Rome", Budget: trip.Float(90)}
	if v, ok := DayTarget(tr); !ok || v != 90 {
		t.Errorf("DayTarget = %v, %v; want the whole budget", v, ok)
	}
}

func TestUtilizationClamped(t *testing.T) {
	over := trip.Trip{Title: "x", Budget: trip.Float(10), Days: []trip.Day{day(1, trip.Float(25))}}
	if v, _ := Utilization(over); v != 100 {
		t.Errorf("Utilization = %d, want clamped to 100", v)
	}
	if !TripOver(over) {
		t.Errorf("trip should be over budget")
	}
	refund := trip.Trip{Title: "x", Budget: trip.Float(10), Days: []trip.Day{day(1, trip.Float(-25))}}
	if v, _ := Utilization(refund); v != 0 {
		t.Errorf("Utilization = %d, want clamped to 0", v)
	}
	zero := trip.Trip{Title: "x", Budget: trip.Float(0)}
	if _, ok := Utilization(zero); ok {
		t.Errorf("Utilization should be undefined for a zero budget")
	}
}

func TestSummarizeDay(t *testing.T) {
	tr := trip.Trip{Title: "Rome", Budget: trip.Float(200), Days: []trip.Day{day(1, trip.Float(120)), day(2)}}
	s := SummarizeDay(tr, tr.Days[0])
	if s.Days != 2 || s.Items != 1 || s.Total != 120 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Percent == nil || *s.Percent != 60 {
		t.Fatalf("percent = %v, want 60", s.Percent)
	}
	if s.Day == nil || !s.Day.Over || s.Day.Remaining == nil || *s.Day.Remaining != -20 {
		t.Fatalf("unexpected day summary %+v", s.Day)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(1234.5, ""); !strings.Contains(got, "1,234.50") || !strings.Contains(got, "€") {
		t.Errorf("Format EUR = %q", got)
	}
	if got := Format(12, "usd"); !strings.Contains(got, "12.00") || !strings.Contains(got, "$") {
		t.Errorf("Format USD = %q", got)
	}
	if got := Format(3, "ZZZ"); got != "3.00 ZZZ" {
		t.Errorf("Format unknown = %q", got)
	}
}
