package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	stateFile  string
	backend    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sidebarkit",
		Short:         "A terminal app layout with a collapsible, persisted sidebar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runApp(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default ~/.sidebarkit/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.stateFile, "state-file", "", "Override the storage path of the sidebar state")
	cmd.PersistentFlags().StringVar(&flags.backend, "backend", "", "Override the storage backend (file, sqlite, memory)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newStateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
