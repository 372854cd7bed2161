package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands within a team",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerMoveCmd("up", "Move a player one rank up"))
	cmd.AddCommand(newPlayerMoveCmd("down", "Move a player one rank down"))

	return cmd
}

// playerFlags are shared by add and update
type playerFlags struct {
	first  string
	last   string
	gender string
	level  float64
}

func (f *playerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.first, "first", "", "First name")
	cmd.Flags().StringVar(&f.last, "last", "", "Last name")
	cmd.Flags().StringVar(&f.gender, "gender", "", "Gender: M or F")
	cmd.Flags().Float64Var(&f.level, "level", 0, "Skill level: 2.0 to 5.0 in steps of 0.5")
}

func playerPath(teamID, playerID string) string {
	return teamPath(teamID) + "/players/" + url.PathEscape(playerID)
}

func newPlayerAddCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "add <team-id>",
		Short: "Add a player at the bottom of a team's ranking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"first_name": flags.first,
				"last_name":  flags.last,
				"gender":     strings.ToUpper(flags.gender),
				"level":      flags.level,
			}

			var result Player
			if err := client.Post(teamPath(args[0])+"/players", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "update <team-id> <player-id>",
		Short: "Change a player's details; unset flags keep their current value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, playerID := args[0], args[1]

			var team Team
			if err := client.Get(teamPath(teamID), &team); err != nil {
				return err
			}

			var current *Player
			for i := range team.Players {
				if team.Players[i].ID == playerID {
					current = &team.Players[i]
					break
				}
			}
			if current == nil {
				return fmt.Errorf("player %s not found in team %s", playerID, teamID)
			}

			changed := cmd.Flags().Changed
			if changed("first") {
				current.FirstName = flags.first
			}
			if changed("last") {
				current.LastName = flags.last
			}
			if changed("gender") {
				current.Gender = strings.ToUpper(flags.gender)
			}
			if changed("level") {
				current.Level = flags.level
			}

			req := map[string]any{
				"first_name": current.FirstName,
				"last_name":  current.LastName,
				"gender":     current.Gender,
				"level":      current.Level,
			}

			var result Player
			if err := client.Put(playerPath(teamID, playerID), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <team-id> <player-id>",
		Short: "Remove a player from a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(playerPath(args[0], args[1])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Player deleted")
			return nil
		},
	}
}

func newPlayerMoveCmd(direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   direction + " <team-id> <player-id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Team

			if err := client.Post(playerPath(args[0], args[1])+"/"+direction, nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
