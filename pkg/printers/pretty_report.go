package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/wendy/pkg/app"
)

// Report prints the completion state of every activity of a trip.
func (pp *PrettyPrint) Report(result app.ReportResult) {
	w := pp.out()
	_, _ = fmt.Fprintf(w, "Report · %s (%d/%d done, %s spent)\n", result.Trip.Title, result.Done, result.Total, pp.money(result.Spent))

	if result.Total == 0 {
		_, _ = fmt.Fprintln(w, "  No activities planned yet.")
		pp.NewLine()
		return
	}

	f := color.New(color.Faint)
	for _, section := range result.Sections {
		_, _ = fmt.Fprintf(w, "\n%s", section.Day.Label)
		_, _ = f.Fprintf(w, "  %d/%d\n", section.Done, len(section.Entries))
		for _, entry := range section.Entries {
			mark := "[ ]"
			if entry.Done {
				mark = "[x]"
			}
			line := fmt.Sprintf("  %s %s", mark, entry.Item.Title)
			if entry.Item.Time != "" {
				line = fmt.Sprintf("%s  (%s)", line, entry.Item.Time)
			}
			_, _ = fmt.Fprintln(w, line)
		}
	}
	pp.NewLine()
}
