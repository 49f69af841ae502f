package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/apikey"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/db"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/model"
)

// projectCreateCmd represents the project create command
var projectCreateCmd = &cobra.Command{
	Use:   "create <project_id>",
	Short: "Create a project",
	Long: `Create a project and its API key.

The API key is printed to STDOUT once. Only its SHA-256 digest is stored,
so the key cannot be recovered later; use 'project rotate-key' to replace
a lost key.

Example:
  accessctl project create t1
  accessctl project create t1 --name "Tenant One"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		projectID := args[0]
		name, _ := cmd.Flags().GetString("name")

		key, err := createProject(projectID, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create project: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created project '%s'\n", projectID)
		fmt.Printf("API key for %s: %s\n", projectID, key)
	},
}

func init() {
	projectCmd.AddCommand(projectCreateCmd)
	projectCreateCmd.Flags().StringP("name", "n", "", "Human-readable project name")
}

func createProject(projectID, name string) (string, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	var existing model.Project
	if err := database.Where("project_id = ?", projectID).First(&existing).Error; err == nil {
		return "", fmt.Errorf("project '%s' already exists", projectID)
	}

	key, err := apikey.Generate()
	if err != nil {
		return "", err
	}

	err = database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.Project{ProjectID: projectID, Name: name}).Error; err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		if err := tx.Create(&model.APIKey{KeyDigest: apikey.Digest(key), ProjectID: projectID}).Error; err != nil {
			return fmt.Errorf("failed to store API key: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return key, nil
}
