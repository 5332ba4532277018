package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/plankhq/plank/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the storage directory for collection changes",
	Long: `Watch the storage directory and print a line whenever a collection
document (users.json, teams.json, tasks.json) is created, rewritten, or
removed. Useful to follow edits made by other plank invocations.
Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.StorageDir, 0755); err != nil {
			return fmt.Errorf("failed to create storage directory: %w", err)
		}

		watcher, err := watch.New()
		if err != nil {
			return err
		}
		if err := watcher.Start(cfg.StorageDir); err != nil {
			return err
		}
		defer watcher.Stop()

		fmt.Printf("Watching %s (Ctrl-C to stop)\n", cfg.StorageDir)

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

		for {
			select {
			case event, ok := <-watcher.Events():
				if !ok {
					return nil
				}
				fmt.Printf("%s  %s %s\n", time.Now().Format(time.TimeOnly), event.Op, event.Collection)
			case err, ok := <-watcher.Errors():
				if !ok {
					return nil
				}
				fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
			case <-sigs:
				fmt.Println("Stopping")
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
