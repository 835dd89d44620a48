package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gridironlabs/keeper/internal/cli/output"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/spf13/cobra"
)

// NewRecommendCommand creates the recommend command.
func NewRecommendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <manager>",
		Short: "Recommend keepers for a manager",
		Long: `Rank a manager's eligible players by keeper value (projected draft
round minus keeper round cost) and show the top candidates.`,
		Example: `  # Top keeper candidates for a manager
  keeper recommend "Alice"

  # As JSON
  keeper recommend "Alice" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, args[0])
		},
	}
}

func runRecommend(cmd *cobra.Command, manager string) error {
	ctx := NewCommandContext(cmd)
	r := ctx.Renderer

	records, err := ctx.Source.Analysis()
	if err != nil {
		return err
	}

	recs := league.Recommend(records, manager)

	if r.EffectiveMode() == output.ModeJSON {
		out := map[string]any{
			"manager":         manager,
			"recommendations": recs,
		}
		if len(recs) == 0 {
			out["message"] = "No eligible keeper candidates found"
		}
		return r.JSON(out)
	}

	r.Header(1, fmt.Sprintf("Keeper Recommendations: %s", manager))

	if len(recs) == 0 {
		r.Println("No eligible keeper candidates found.")
		managers := league.Managers(records)
		if len(managers) > 0 {
			r.Println("Known managers: " + strings.Join(managers, ", "))
		}
		return nil
	}

	rows := make([][]string, 0, len(recs))
	for i, rec := range recs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.PlayerName,
			output.FormatOptionalInt(rec.ProjectedRound),
			output.FormatOptionalInt(rec.KeeperRound),
			fmt.Sprintf("%+d", rec.KeeperValue),
		})
	}
	r.Table([]string{"#", "Player", "Proj Rd", "Keep Rd", "Value"}, rows)

	return nil
}
