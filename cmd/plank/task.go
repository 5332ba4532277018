package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plankhq/plank/internal/board"
	"github.com/plankhq/plank/internal/model"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var (
	taskTeam        string
	taskTitle       string
	taskDescription string
	taskAssignee    string
	taskListTeam    string
	taskListStatus  string
)

var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task under a team",
	Long: `Create a task under a team. New tasks start in the todo status unless
--status says otherwise. The assignee, if given, must already be a
member of the team.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		status, _ := cmd.Flags().GetString("status")
		task, err := svc.CreateTask(model.Task{
			TeamID:      taskTeam,
			Title:       taskTitle,
			Description: taskDescription,
			AssigneeID:  taskAssignee,
			Status:      model.Status(status),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created task %s\n", task.ID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered by team or status",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		tasks, err := svc.Tasks().List(func(t model.Task) bool {
			if taskListTeam != "" && t.TeamID != taskListTeam {
				return false
			}
			if taskListStatus != "" && t.Status != model.Status(taskListStatus) {
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTEAM\tSTATUS\tASSIGNEE\tTITLE")
		for _, t := range tasks {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.TeamID, t.Status, t.AssigneeID, t.Title)
		}
		return w.Flush()
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show a task as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		task, err := svc.Tasks().Get(args[0])
		if err != nil {
			return err
		}
		return printJSON(task)
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Update a task's title or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		task, err := svc.UpdateTask(args[0], board.TaskUpdate{
			Title:       optional(cmd, "title"),
			Description: optional(cmd, "desc"),
		})
		if err != nil {
			return err
		}
		return printJSON(task)
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		if err := svc.Tasks().Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted task %s\n", args[0])
		return nil
	},
}

var taskAssignCmd = &cobra.Command{
	Use:   "assign <task-id> <user-id>",
	Short: "Assign a task to a team member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		task, err := svc.AssignTask(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Assigned task %s to %s\n", task.ID, task.AssigneeID)
		return nil
	},
}

var taskUnassignCmd = &cobra.Command{
	Use:   "unassign <task-id>",
	Short: "Clear a task's assignee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		task, err := svc.UnassignTask(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Unassigned task %s\n", task.ID)
		return nil
	},
}

var taskStatusCmd = &cobra.Command{
	Use:   "status <task-id> <todo|in_progress|done>",
	Short: "Move a task to another status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		task, err := svc.SetStatus(args[0], model.Status(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("Task %s is now %s\n", task.ID, task.Status)
		return nil
	},
}

func init() {
	taskCreateCmd.Flags().StringVar(&taskTeam, "team", "", "team id the task belongs to (required)")
	taskCreateCmd.Flags().StringVar(&taskTitle, "title", "", "task title (required)")
	taskCreateCmd.Flags().StringVar(&taskDescription, "desc", "", "task description")
	taskCreateCmd.Flags().StringVar(&taskAssignee, "assignee", "", "assignee user id (must be a team member)")
	taskCreateCmd.Flags().String("status", "", "initial status (defaults to todo)")

	taskListCmd.Flags().StringVar(&taskListTeam, "team", "", "only tasks of this team")
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "only tasks with this status")

	taskUpdateCmd.Flags().String("title", "", "new task title")
	taskUpdateCmd.Flags().String("desc", "", "new task description")

	taskCmd.AddCommand(taskCreateCmd, taskListCmd, taskShowCmd, taskUpdateCmd, taskDeleteCmd,
		taskAssignCmd, taskUnassignCmd, taskStatusCmd)
	rootCmd.AddCommand(taskCmd)
}
