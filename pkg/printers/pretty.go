package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/wendy/pkg/budget"
	"tableflip.dev/wendy/pkg/chat"
	"tableflip.dev/wendy/pkg/trip"
)

type PrettyPrint struct {
	ShowID   bool
	Currency string
	Width    int
	Out      io.Writer
}

var (
	spacing = strings.Repeat(" ", len("item_0123456789abc_18c2b5f4a10  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return 80
}

func (pp *PrettyPrint) money(v float64) string {
	return budget.Format(v, pp.Currency)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Trips prints the collection as a table, newest first.
func (pp *PrettyPrint) Trips(trips ...trip.Trip) {
	pp.TitleWithCount("Trips", len(trips), "trip")
	if len(trips) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	header := []interface{}{bold.Sprint("Title"), bold.Sprint("Destination"), bold.Sprint("Days"), bold.Sprint("Spent"), bold.Sprint("Budget"), bold.Sprint("Created")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)
	for _, t := range trips {
		s := budget.Summarize(t)
		spent := pp.money(s.Total)
		if s.Over {
			spent = color.New(color.FgRed).Sprint(spent)
		}
		b := "-"
		if s.Budget != nil {
			b = pp.money(*s.Budget)
		}
		row := []interface{}{t.Title, t.Destination, s.Days, spent, b, created(t.CreatedAt)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(t.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Trip prints the header, budget summary and every day of t.
func (pp *PrettyPrint) Trip(t trip.Trip) {
	pp.Title(t.Title)
	f := color.New(color.Faint)
	if pp.ShowID {
		_, _ = f.Fprintln(pp.out(), t.ID)
	}
	var sub []string
	if t.Destination != "" {
		sub = append(sub, t.Destination)
	}
	if t.StartDate != "" || t.EndDate != "" {
		sub = append(sub, strings.Trim(t.StartDate+" - "+t.EndDate, " -"))
	}
	if len(sub) > 0 {
		_, _ = f.Fprintln(pp.out(), strings.Join(sub, " • "))
	}
	pp.NewLine()
	pp.Budget(budget.Summarize(t))
	for _, d := range t.Days {
		pp.Day(t, d)
	}
}

// Day prints one day with its activities.
func (pp *PrettyPrint) Day(t trip.Trip, d trip.Day) {
	h := color.New(color.Bold)
	c := color.New(color.Faint)
	if budget.DayOver(t, d) {
		c = color.New(color.FgRed)
	}
	label := d.Label
	if d.Date != "" {
		label += " • " + d.Date
	}
	_, _ = h.Fprint(pp.out(), label)
	_, _ = c.Fprintf(pp.out(), "  %s\n", pp.money(budget.DayTotal(d)))
	pp.Items(d.Items...)
}

// Items prints activities, one per line, with wrapped notes below.
func (pp *PrettyPrint) Items(items ...trip.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)
	s := color.New(color.CrossedOut, color.Faint)

	for _, it := range items {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), it.ID)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", max(1, len(spacing)-len(it.ID))))
		}
		mark, title := "•", t
		if it.Done {
			mark, title = "✓", s
		}
		_, _ = t.Fprintf(pp.out(), "%s %-5s ", mark, it.Time)
		_, _ = title.Fprint(pp.out(), it.Title)
		if it.Cost != nil {
			_, _ = f.Fprintf(pp.out(), "  %s", pp.money(*it.Cost))
		}
		_, _ = fmt.Fprintln(pp.out(), "")
		indent := strings.Repeat(" ", 8)
		if pp.ShowID {
			indent += spacing
		}
		if it.Note != "" {
			for _, line := range strings.Split(wordwrap.String(it.Note, pp.width()-len(indent)), "\n") {
				_, _ = f.Fprintf(pp.out(), "%s%s\n", indent, line)
			}
		}
		if it.MapURL != "" {
			_, _ = color.New(color.FgBlue, color.Underline).Fprintf(pp.out(), "%s%s\n", indent, it.MapURL)
		}
	}
	pp.NewLine()
}

// Budget prints the spending figures of a summary.
func (pp *PrettyPrint) Budget(s budget.Summary) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Days"), s.Days)
	tbl.AddRow(bold.Sprint("Activities"), s.Items)
	tbl.AddRow(bold.Sprint("Spent"), pp.money(s.Total))
	if s.Budget != nil {
		tbl.AddRow(bold.Sprint("Budget"), pp.money(*s.Budget))
	}
	if s.Remaining != nil {
		r := green
		if s.Over {
			r = red
		}
		tbl.AddRow(bold.Sprint("Remaining"), r.Sprint(pp.money(*s.Remaining)))
	}
	if s.DayTarget != nil {
		tbl.AddRow(bold.Sprint("Per day"), pp.money(*s.DayTarget))
	}
	if s.Percent != nil {
		tbl.AddRow(bold.Sprint("Used"), gauge(*s.Percent, 20))
	}
	if d := s.Day; d != nil {
		tbl.AddRow("", "")
		tbl.AddRow(bold.Sprint(d.Label), pp.money(d.Total))
		if d.Remaining != nil {
			r := green
			if d.Over {
				r = red
			}
			tbl.AddRow(bold.Sprint("Remaining"), r.Sprint(pp.money(*d.Remaining)))
		}
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Chat prints a message log, oldest first.
func (pp *PrettyPrint) Chat(msgs ...chat.Message) {
	pp.TitleWithCount("Chat", len(msgs), "message")
	if len(msgs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	a := color.New(color.Bold, color.FgCyan)
	f := color.New(color.Faint)
	for _, m := range msgs {
		_, _ = a.Fprint(pp.out(), m.Author)
		_, _ = f.Fprintf(pp.out(), "  %s\n", time.UnixMilli(m.CreatedAt).Local().Format("2006-01-02 15:04"))
		for _, line := range strings.Split(wordwrap.String(m.Text, pp.width()-2), "\n") {
			_, _ = fmt.Fprintf(pp.out(), "  %s\n", line)
		}
	}
	pp.NewLine()
}

func gauge(pct, width int) string {
	filled := pct * width / 100
	return fmt.Sprintf("%s%s %d%%", strings.Repeat("█", filled), strings.Repeat("░", width-filled), pct)
}

func created(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02")
}
