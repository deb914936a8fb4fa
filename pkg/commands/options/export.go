package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	All bool
	Out string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Export every trip.")
	AddOutArgs(cmd, &o.Out)
}

// AddOutArgs registers the --out flag. "-" writes to stdout.
func AddOutArgs(cmd *cobra.Command, out *string) {
	cmd.Flags().StringVarP(out, "out", "o", "",
		`File to write, defaults to the suggested file name. Use "-" for stdout.`)
}
