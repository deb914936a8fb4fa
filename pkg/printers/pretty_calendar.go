package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/wendy/pkg/trip"
)

const dateLayout = "2006-01-02"

// Calendar prints the months a trip spans with its days highlighted. Trips
// without a parseable start date print nothing.
func (pp *PrettyPrint) Calendar(t trip.Trip) {
	dates := TripDates(t)
	if len(dates) == 0 {
		return
	}
	first, last := dates[0], dates[len(dates)-1]
	for m := monthOf(first); !m.After(monthOf(last)); m = NextMonth(m) {
		count := make([]int, DaysIn(m))
		for _, d := range dates {
			if d.Year() == m.Year() && d.Month() == m.Month() {
				count[d.Day()-1]++
			}
		}
		pp.PrintMonthCount(m, count)
	}
}

// TripDates lists the calendar date of every day of t, in order. A day with
// its own date uses it; otherwise the date is counted from the trip start.
func TripDates(t trip.Trip) []time.Time {
	start, err := time.ParseInLocation(dateLayout, t.StartDate, time.Local)
	if err != nil {
		return nil
	}
	var out []time.Time
	for _, d := range t.Days {
		if on, err := time.ParseInLocation(dateLayout, d.Date, time.Local); err == nil {
			out = append(out, on)
			continue
		}
		out = append(out, start.AddDate(0, 0, d.DayIndex-1))
	}
	if len(out) == 0 {
		if end, err := time.ParseInLocation(dateLayout, t.EndDate, time.Local); err == nil {
			for on := start; !on.After(end); on = on.AddDate(0, 0, 1) {
				out = append(out, on)
			}
		} else {
			out = append(out, start)
		}
	}
	sortDates(out)
	return out
}

func sortDates(dates []time.Time) {
	for i := 1; i < len(dates); i++ {
		for j := i; j > 0 && dates[j].Before(dates[j-1]); j-- {
			dates[j], dates[j-1] = dates[j-1], dates[j]
		}
	}
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	w := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite, color.Underline)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(w, "%2d", i+1)
			_, _ = fmt.Fprint(w, " ")
		} else {
			_, _ = l1.Fprintf(w, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 1, 0, 0, 0, t.Location())
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
