package options

import (
	"github.com/spf13/cobra"
)

// ChatOptions
type ChatOptions struct {
	Author string
	Text   string
}

func AddChatArgs(cmd *cobra.Command, o *ChatOptions) {
	cmd.Flags().StringVarP(&o.Author, "author", "a", "",
		`Name shown next to the message, defaults to "Tu".`)
}
