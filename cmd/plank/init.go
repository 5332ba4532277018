package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plankhq/plank/internal/model"
	"github.com/plankhq/plank/internal/repo"
	"github.com/plankhq/plank/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the storage directory",
	Long: `Create the storage directory with empty collection documents, and a
default plank.yml if none exists. Existing collection documents are
left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := storage.New(cfg.StorageDir)

		if err := initCollection[model.User](store, repo.UsersCollection); err != nil {
			return err
		}
		if err := initCollection[model.Team](store, repo.TeamsCollection); err != nil {
			return err
		}
		if err := initCollection[model.Task](store, repo.TasksCollection); err != nil {
			return err
		}

		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			content := fmt.Sprintf("storage_dir: %s\nout_dir: %s\n", cfg.StorageDir, cfg.OutDir)
			if err := os.WriteFile(cfgFile, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}
			fmt.Printf("Wrote %s\n", cfgFile)
		}

		fmt.Printf("Initialized storage in %s\n", cfg.StorageDir)
		return nil
	},
}

// initCollection writes an empty document for the collection unless one
// already exists.
func initCollection[T any](store *storage.Store, collection string) error {
	if _, err := os.Stat(store.Path(collection)); err == nil {
		return nil
	}
	return storage.Save(store, collection, []T{})
}

func init() {
	rootCmd.AddCommand(initCmd)
}
