package options

import (
	"github.com/spf13/cobra"
)

// IDOptions toggles printing trip, day and activity ids next to their titles,
// which is what the mutating commands take as arguments.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ids of trips, days and activities.")
}
