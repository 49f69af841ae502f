package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/db"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
)

// projectDeleteCmd represents the project delete command
var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project_id>",
	Short: "Delete a project",
	Long: `Delete a project and all its associated data.

API keys, permissions and access grants belonging to the project are
removed by the database's cascading foreign keys.

Example:
  accessctl project delete t1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		projectID := args[0]

		if err := deleteProject(projectID); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete project: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted project '%s'\n", projectID)
	},
}

func init() {
	projectCmd.AddCommand(projectDeleteCmd)
}

func deleteProject(projectID string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	result := database.Where("project_id = ?", projectID).Delete(&model.Project{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project '%s' does not exist", projectID)
	}
	return nil
}
