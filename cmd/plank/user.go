package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plankhq/plank/internal/board"
	"github.com/plankhq/plank/internal/model"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var (
	userName  string
	userEmail string
)

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		user, err := svc.CreateUser(model.User{Name: userName, Email: userEmail})
		if err != nil {
			return err
		}
		fmt.Printf("Created user %s\n", user.ID)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		users, err := svc.Users().List(nil)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.Name, u.Email)
		}
		return w.Flush()
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show a user as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		user, err := svc.Users().Get(args[0])
		if err != nil {
			return err
		}
		return printJSON(user)
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user's name or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		user, err := svc.UpdateUser(args[0], board.UserUpdate{
			Name:  optional(cmd, "name"),
			Email: optional(cmd, "email"),
		})
		if err != nil {
			return err
		}
		return printJSON(user)
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user",
	Long: `Delete a user. Fails while the user is still a member of any team or
assigned to any task; remove the membership or unassign the task first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		if err := svc.DeleteUser(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted user %s\n", args[0])
		return nil
	},
}

var userTeamsCmd = &cobra.Command{
	Use:   "teams <user-id>",
	Short: "List the teams a user belongs to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		teams, err := svc.UserTeams(args[0])
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMEMBERS")
		for _, t := range teams {
			fmt.Fprintf(w, "%s\t%s\t%d\n", t.ID, t.Name, len(t.MemberIDs))
		}
		return w.Flush()
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userName, "name", "", "user name (required)")
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "user email, unique across users (required)")

	userUpdateCmd.Flags().String("name", "", "new user name")
	userUpdateCmd.Flags().String("email", "", "new user email")

	userCmd.AddCommand(userCreateCmd, userListCmd, userShowCmd, userUpdateCmd, userDeleteCmd, userTeamsCmd)
	rootCmd.AddCommand(userCmd)
}
