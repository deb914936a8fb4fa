package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/wendy/pkg/runner/info"
	"tableflip.dev/wendy/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where trips are stored.",
		Example: `
wendy info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			kv, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer kv.Close()
			s := info.Info{
				Config: cfg,
				KV:     kv,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
