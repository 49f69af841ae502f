package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/db"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
)

// permissionCreateCmd represents the permission create command
var permissionCreateCmd = &cobra.Command{
	Use:   "create <project_id> <slug>",
	Short: "Create a permission",
	Long: `Create a permission in a project's catalog.

Permissions are created enabled. Use --disabled to create one that denies
all checks until enabled.

Example:
  accessctl permission create t1 course_ultra
  accessctl permission create t1 beta_feature --disabled`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		projectID, slug := args[0], args[1]
		disabled, _ := cmd.Flags().GetBool("disabled")

		if err := createPermission(projectID, slug, !disabled); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create permission: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created permission '%s' in project '%s'\n", slug, projectID)
	},
}

func init() {
	permissionCmd.AddCommand(permissionCreateCmd)
	permissionCreateCmd.Flags().Bool("disabled", false, "Create the permission disabled")
}

func createPermission(projectID, slug string, enabled bool) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	var project model.Project
	if err := database.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		return fmt.Errorf("project '%s' does not exist", projectID)
	}

	permission := model.Permission{
		ProjectID: projectID,
		Slug:      slug,
		Enabled:   enabled,
	}
	if err := database.Create(&permission).Error; err != nil {
		return fmt.Errorf("failed to create permission: %w", err)
	}
	return nil
}
