package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plankhq/plank/internal/board"
	"github.com/plankhq/plank/internal/model"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams and their membership",
}

var (
	teamName        string
	teamDescription string
	teamMembers     []string
)

var teamCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a team",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		team, err := svc.CreateTeam(model.Team{
			Name:        teamName,
			Description: teamDescription,
			MemberIDs:   teamMembers,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created team %s\n", team.ID)
		return nil
	},
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		teams, err := svc.Teams().List(nil)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tDESCRIPTION")
		for _, t := range teams {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", t.ID, t.Name, len(t.MemberIDs), t.Description)
		}
		return w.Flush()
	},
}

var teamShowCmd = &cobra.Command{
	Use:   "show <team-id>",
	Short: "Show a team as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		team, err := svc.Teams().Get(args[0])
		if err != nil {
			return err
		}
		return printJSON(team)
	},
}

var teamUpdateCmd = &cobra.Command{
	Use:   "update <team-id>",
	Short: "Update a team's name or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		team, err := svc.UpdateTeam(args[0], board.TeamUpdate{
			Name:        optional(cmd, "name"),
			Description: optional(cmd, "desc"),
		})
		if err != nil {
			return err
		}
		return printJSON(team)
	},
}

var teamDeleteCmd = &cobra.Command{
	Use:   "delete <team-id>",
	Short: "Delete a team",
	Long: `Delete a team. Fails while the team still has tasks or members; delete
the tasks and remove the members first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		if err := svc.DeleteTeam(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted team %s\n", args[0])
		return nil
	},
}

var teamAddMemberCmd = &cobra.Command{
	Use:   "add-member <team-id> <user-id>",
	Short: "Add a user to a team",
	Long:  `Add a user to a team. Adding an existing member is a no-op.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		team, err := svc.AddMember(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Team %s now has %d member(s)\n", team.ID, len(team.MemberIDs))
		return nil
	},
}

var teamRemoveMemberCmd = &cobra.Command{
	Use:   "remove-member <team-id> <user-id>",
	Short: "Remove a user from a team",
	Long: `Remove a user from a team. Fails while the user is still assigned to
any of the team's tasks; unassign those tasks first.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		team, err := svc.RemoveMember(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Team %s now has %d member(s)\n", team.ID, len(team.MemberIDs))
		return nil
	},
}

var teamMembersCmd = &cobra.Command{
	Use:   "members <team-id>",
	Short: "List a team's members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		members, err := svc.TeamMembers(args[0])
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL")
		for _, u := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.Name, u.Email)
		}
		return w.Flush()
	},
}

func init() {
	teamCreateCmd.Flags().StringVar(&teamName, "name", "", "team name, unique across teams (required)")
	teamCreateCmd.Flags().StringVar(&teamDescription, "desc", "", "team description")
	teamCreateCmd.Flags().StringSliceVar(&teamMembers, "member", nil, "initial member user id (repeatable)")

	teamUpdateCmd.Flags().String("name", "", "new team name")
	teamUpdateCmd.Flags().String("desc", "", "new team description")

	teamCmd.AddCommand(teamCreateCmd, teamListCmd, teamShowCmd, teamUpdateCmd, teamDeleteCmd,
		teamAddMemberCmd, teamRemoveMemberCmd, teamMembersCmd)
	rootCmd.AddCommand(teamCmd)
}
