package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/wendy/pkg/app"
)

// ItemOptions captures the optional fields of a new activity.
type ItemOptions struct {
	Title  string
	Time   string
	Note   string
	MapURL string
	Cost   string
}

func AddItemArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Time of the activity, example: --time="09:30".`)
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Free text note.")
	cmd.Flags().StringVar(&o.MapURL, "map", "",
		"Link to a map location.")
	cmd.Flags().StringVar(&o.Cost, "cost", "",
		`Cost of the activity, example: --cost="12,50".`)
}

func (o *ItemOptions) NewItem() app.NewItem {
	return app.NewItem{
		Title:  o.Title,
		Time:   o.Time,
		Note:   o.Note,
		MapURL: o.MapURL,
		Cost:   o.Cost,
	}
}
