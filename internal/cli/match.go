package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Current match commands",
	}

	cmd.AddCommand(newMatchStartCmd())
	cmd.AddCommand(newMatchShowCmd())
	cmd.AddCommand(newMatchScoreCmd("inc", "Add a point for a side", "increment"))
	cmd.AddCommand(newMatchScoreCmd("dec", "Remove a point from a side", "decrement"))
	cmd.AddCommand(newMatchUndoCmd())
	cmd.AddCommand(newMatchClearCmd())

	return cmd
}

func newMatchStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [mode]",
		Short: "Start a new match, discarding the current one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if len(args) == 1 {
				req["mode_id"] = args[0]
			}

			var result Match
			if err := client.Post("/api/v1/match", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current match",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Get("/api/v1/match", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchScoreCmd(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <side>",
		Short: short + " (1, 2, team1 or team2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := parseSide(args[0])
			if err != nil {
				return err
			}

			var result Match
			if err := client.Post(fmt.Sprintf("/api/v1/match/%s/%s", side, action), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the last score change",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post("/api/v1/match/undo", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newMatchClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the current match",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/match"); err != nil {
				return err
			}

			output(cmd).PrintMessage("Match cleared")
			return nil
		},
	}
}

// parseSide accepts the short forms 1 and 2
func parseSide(s string) (string, error) {
	switch strings.ToLower(s) {
	case "1", "team1":
		return "team1", nil
	case "2", "team2":
		return "team2", nil
	default:
		return "", fmt.Errorf("side must be 1, 2, team1 or team2, got %q", s)
	}
}
