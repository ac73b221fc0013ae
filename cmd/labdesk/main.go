package main

import (
	"os"

	"github.com/spf13/cobra"

	"labdesk/internal/interfaces/cli/migrate"
	"labdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "labdesk",
		Short: "labdesk - lab help request dispatcher",
		Long:  `labdesk queues student help requests during lab sessions and dispatches them to teaching assistants.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
