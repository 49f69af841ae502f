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

// projectRotateKeyCmd represents the project rotate-key command
var projectRotateKeyCmd = &cobra.Command{
	Use:   "rotate-key <project_id>",
	Short: "Rotate a project's API key",
	Long: `Replace a project's API key with a freshly generated one.

The old key stops working immediately. The new key is printed to STDOUT
once.

Example:
  accessctl project rotate-key t1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		projectID := args[0]

		key, err := rotateProjectKey(projectID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate key: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(key)
	},
}

func init() {
	projectCmd.AddCommand(projectRotateKeyCmd)
}

func rotateProjectKey(projectID string) (string, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	var project model.Project
	if err := database.Where("project_id = ?", projectID).First(&project).Error; err != nil {
		return "", fmt.Errorf("project '%s' does not exist", projectID)
	}

	key, err := apikey.Generate()
	if err != nil {
		return "", err
	}

	err = database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.APIKey{}).Error; err != nil {
			return fmt.Errorf("failed to remove old key: %w", err)
		}
		if err := tx.Create(&model.APIKey{KeyDigest: apikey.Digest(key), ProjectID: projectID}).Error; err != nil {
			return fmt.Errorf("failed to store new key: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return key, nil
}
