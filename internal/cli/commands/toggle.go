package commands

import (
	"fmt"

	"github.com/gridironlabs/keeper/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewToggleCommand creates the toggle command.
func NewToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <player>",
		Short: "Toggle a player's keeper status",
		Long: `Flip a player's keeper status in the draft results file.

The player is matched by case-insensitive substring. When the query
matches more than one player, nothing is written and the matches are
listed so the query can be narrowed.`,
		Example: `  # Mark (or unmark) a player as a keeper
  keeper toggle "Jefferson"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args[0])
		},
	}
}

func runToggle(cmd *cobra.Command, query string) error {
	ctx := NewCommandContext(cmd)
	r := ctx.Renderer

	result, err := ctx.Source.ToggleKeeper(query)
	if err != nil {
		return err
	}

	switch {
	case result.NotFound():
		r.Printf("No player matching %q\n", query)
	case result.Ambiguous():
		r.Printf("Multiple players match %q:\n", query)
		for _, p := range result.Matches {
			r.Detail(fmt.Sprintf("%s (round %s)", p.PlayerName, output.FormatOptionalInt(p.Round)))
		}
		r.Println("Narrow the query and try again.")
	default:
		status := "no longer a keeper"
		if result.NewStatus {
			status = "now a keeper"
		}
		r.Printf("%s is %s\n", result.Updated.PlayerName, status)
	}

	return nil
}
