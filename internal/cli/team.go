package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "team",
		Aliases: []string{"teams"},
		Short:   "Team roster commands",
	}

	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamShowCmd())
	cmd.AddCommand(newTeamCreateCmd())
	cmd.AddCommand(newTeamRenameCmd())
	cmd.AddCommand(newTeamDeleteCmd())
	cmd.AddCommand(newTeamCheckNameCmd())

	return cmd
}

func teamPath(id string) string {
	return "/api/v1/teams/" + url.PathEscape(id)
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Team

			if err := client.Get("/api/v1/teams", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTeamShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <team-id>",
		Short: "Show a team and its ranked players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Team

			if err := client.Get(teamPath(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTeamCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Team

			if err := client.Post("/api/v1/teams", map[string]string{"name": args[0]}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTeamRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <team-id> <name>",
		Short: "Rename a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Team

			if err := client.Put(teamPath(args[0]), map[string]string{"name": args[1]}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTeamDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <team-id>",
		Short: "Delete a team and all of its players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(teamPath(args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Team deleted")
			return nil
		},
	}
}

func newTeamCheckNameCmd() *cobra.Command {
	var excludeID string

	cmd := &cobra.Command{
		Use:   "check-name <name>",
		Short: "Check whether a team name is free",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			query.Set("name", args[0])
			if excludeID != "" {
				query.Set("exclude_id", excludeID)
			}

			var result NameCheck
			if err := client.Get("/api/v1/teams/name-check?"+query.Encode(), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&excludeID, "exclude", "", "Team ID to ignore (when renaming)")

	return cmd
}
