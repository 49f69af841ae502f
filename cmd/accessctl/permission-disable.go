package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// permissionDisableCmd represents the permission disable command
var permissionDisableCmd = &cobra.Command{
	Use:   "disable <project_id> <slug>",
	Short: "Disable a permission",
	Long: `Disable a permission. Checks against it deny immediately without
consulting grants; existing grants are kept and resume working when the
permission is enabled again.

Example:
  accessctl permission disable t1 course_ultra`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setPermissionEnabled(args[0], args[1], false); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to disable permission: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Disabled permission '%s' in project '%s'\n", args[1], args[0])
	},
}

func init() {
	permissionCmd.AddCommand(permissionDisableCmd)
}
