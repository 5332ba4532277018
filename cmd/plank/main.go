// Command plank manages users, teams, and per-team task boards persisted
// as JSON documents on local disk.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plankhq/plank/internal/board"
	"github.com/plankhq/plank/internal/config"
	"github.com/plankhq/plank/internal/storage"
)

var (
	cfgFile        string
	storageDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "plank",
	Short: "File-backed team task boards",
	Long: `plank tracks users, teams, and tasks for small teams, storing
everything as JSON documents in a local directory. No server, no
database: each collection is one file, rewritten atomically on change.

The storage directory comes from plank.yml (storage_dir) or the --dir
flag and defaults to .plank in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "path to the config file")
	rootCmd.PersistentFlags().StringVar(&storageDirFlag, "dir", "", "storage directory (overrides the config file)")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if storageDirFlag != "" {
		cfg.StorageDir = storageDirFlag
	}
	return cfg, nil
}

func newService() (*board.Service, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	return board.NewService(storage.New(cfg.StorageDir)), cfg, nil
}

// printJSON writes a record as pretty-printed JSON, the output format for
// all `show` commands.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// optional returns a pointer to the flag's value if the flag was set on
// the command line, nil otherwise. Update commands use it to tell "leave
// unchanged" apart from "set to empty".
func optional(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
