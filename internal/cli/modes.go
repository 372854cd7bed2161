package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newModesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "modes",
		Aliases: []string{"mode"},
		Short:   "Game mode commands",
	}

	cmd.AddCommand(newModesListCmd())
	cmd.AddCommand(newModesGetCmd())
	cmd.AddCommand(newModesSavedCmd())
	cmd.AddCommand(newModesSetCustomCmd())

	return cmd
}

func newModesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all game modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []GameMode

			if err := client.Get("/api/v1/modes", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newModesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one game mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameMode

			if err := client.Get("/api/v1/modes/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newModesSavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "Show the saved custom mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameMode

			if err := client.Get("/api/v1/modes/custom/saved", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newModesSetCustomCmd() *cobra.Command {
	var maxScore, margin, rotation int
	var name, description string

	cmd := &cobra.Command{
		Use:   "set-custom",
		Short: "Save the custom game mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"max_score":              maxScore,
				"winning_margin":         margin,
				"team_rotation_interval": rotation,
			}
			if name != "" {
				req["name"] = name
			}
			if description != "" {
				req["description"] = description
			}

			var result GameMode
			if err := client.Put("/api/v1/modes/custom", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxScore, "max-score", 11, "Points to win")
	cmd.Flags().IntVar(&margin, "margin", 2, "Winning margin")
	cmd.Flags().IntVar(&rotation, "rotation", 0, "Rotate teams every N points (0 = never)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&description, "description", "", "Description")

	return cmd
}
