package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// projectCmd represents the project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  `Manage tenant projects and their API keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'project' requires a subcommand (create, list, delete, rotate-key)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
}
