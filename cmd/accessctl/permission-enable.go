package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/db"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
)

// permissionEnableCmd represents the permission enable command
var permissionEnableCmd = &cobra.Command{
	Use:   "enable <project_id> <slug>",
	Short: "Enable a permission",
	Long: `Enable a permission so grants against it are honored again.

Example:
  accessctl permission enable t1 course_ultra`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setPermissionEnabled(args[0], args[1], true); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to enable permission: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Enabled permission '%s' in project '%s'\n", args[1], args[0])
	},
}

func init() {
	permissionCmd.AddCommand(permissionEnableCmd)
}

func setPermissionEnabled(projectID, slug string, enabled bool) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	result := database.Model(&model.Permission{}).
		Where("project_id = ? AND slug = ?", projectID, slug).
		Update("enabled", enabled)
	if result.Error != nil {
		return fmt.Errorf("failed to update permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("permission '%s' does not exist in project '%s'", slug, projectID)
	}
	return nil
}
