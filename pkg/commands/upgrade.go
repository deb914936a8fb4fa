package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

const installPath = "tableflip.dev/wendy/cmd/wendy"

func addUpgrade(topLevel *cobra.Command) {
	to := "latest"

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade wendy cli.",
		Example: `
wendy upgrade
wendy upgrade --to v0.3.0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ex := exec.Command("go", "install", installPath+"@"+to)
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return oo.HandleError(fmt.Errorf("%w: %s", err, out.String()))
			}
			fmt.Printf("%s\n", ex.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", to, "Version to install.")
	topLevel.AddCommand(cmd)
}
