package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "View and export a team's board",
	Long: `A board is the set of a team's tasks grouped into status columns.
It is derived from the tasks collection, not stored separately.`,
}

var boardShowCmd = &cobra.Command{
	Use:   "show <team-id>",
	Short: "Render a team's board in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		view, err := svc.Board(args[0])
		if err != nil {
			return err
		}
		fmt.Print(view.Render(lipgloss.DefaultRenderer()))
		return nil
	},
}

var boardExportCmd = &cobra.Command{
	Use:   "export <team-id>",
	Short: "Export a team's board to a text file",
	Long: `Export a team's board as a plain text file under the out directory
(out_dir in plank.yml). The file is named board_<team-id>.txt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cfg, err := newService()
		if err != nil {
			return err
		}
		view, err := svc.Board(args[0])
		if err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return fmt.Errorf("failed to create out directory: %w", err)
		}
		outPath := filepath.Join(cfg.OutDir, fmt.Sprintf("board_%s.txt", args[0]))
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()

		// A file renderer has no color profile, so the export comes out
		// as plain text.
		if _, err := f.WriteString(view.Render(lipgloss.NewRenderer(f))); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Printf("Exported board to %s\n", outPath)
		return nil
	},
}

func init() {
	boardCmd.AddCommand(boardShowCmd, boardExportCmd)
	rootCmd.AddCommand(boardCmd)
}
