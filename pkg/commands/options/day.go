package options

import (
	"github.com/spf13/cobra"
)

// DayOptions selects a day of a trip.
type DayOptions struct {
	Day int
}

func AddDayArgs(cmd *cobra.Command, o *DayOptions, usage string) {
	cmd.Flags().IntVarP(&o.Day, "day", "d", 0, usage)
}
