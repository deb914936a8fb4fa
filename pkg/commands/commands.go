package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/wendy/pkg/logging"
	"tableflip.dev/wendy/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "wendy",
		Short: base.Wrap80("Plan trips day by day, track their budget and chat about them from the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Reads the config file and WENDY_* env before the level is known.
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error.")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTrip(topLevel)
	addDay(topLevel)
	addItem(topLevel)
	addChat(topLevel)
	addBudget(topLevel)
	addReport(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addPDF(topLevel)
	addShare(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}
