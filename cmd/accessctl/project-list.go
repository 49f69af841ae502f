package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/db"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
)

// projectListCmd represents the project list command
var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long:  `List all projects.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listProjects(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list projects: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	projectCmd.AddCommand(projectListCmd)
}

func listProjects() error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	var projects []model.Project
	if err := database.Order("created_at").Find(&projects).Error; err != nil {
		return fmt.Errorf("failed to query projects: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects")
		return nil
	}

	fmt.Printf("%-20s %-30s %s\n", "PROJECT", "NAME", "CREATED")
	for _, p := range projects {
		name := p.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%-20s %-30s %s\n", p.ProjectID, name, p.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
