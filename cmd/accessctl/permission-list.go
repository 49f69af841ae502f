package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/db"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
)

// permissionListCmd represents the permission list command
var permissionListCmd = &cobra.Command{
	Use:   "list <project_id>",
	Short: "List a project's permissions",
	Long: `List the permission catalog of a project with usage counters.

Example:
  accessctl permission list t1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := listPermissions(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list permissions: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	permissionCmd.AddCommand(permissionListCmd)
}

func listPermissions(projectID string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	var permissions []model.Permission
	if err := database.Where("project_id = ?", projectID).Order("slug").Find(&permissions).Error; err != nil {
		return fmt.Errorf("failed to query permissions: %w", err)
	}

	if len(permissions) == 0 {
		fmt.Printf("No permissions in project '%s'\n", projectID)
		return nil
	}

	fmt.Printf("%-30s %-10s %-12s %s\n", "SLUG", "ENABLED", "USAGE", "LAST USED")
	for _, p := range permissions {
		lastUsed := "never"
		if p.LastUsedAt != nil {
			lastUsed = p.LastUsedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%-30s %-10v %-12d %s\n", p.Slug, p.Enabled, p.UsageCount, lastUsed)
	}
	return nil
}
