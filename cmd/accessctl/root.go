package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "accessctl",
	Short: "Access grant engine control",
	Long:  `Run and administer the access grant engine: server, schema migrations, projects and permissions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
