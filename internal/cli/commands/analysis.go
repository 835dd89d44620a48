package commands

import (
	"fmt"
	"sort"

	"github.com/gridironlabs/keeper/internal/cli/output"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/spf13/cobra"
)

// NewAnalysisCommand creates the analysis command.
func NewAnalysisCommand() *cobra.Command {
	var manager string

	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Show the full keeper analysis",
		Long: `Join last season's draft results with this season's rankings and
show the keeper analysis: where each player would go this year, what
round keeping them would cost, and who the best values are.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format

Use --output to override: auto, text, markdown, json`,
		Example: `  # Full analysis
  keeper analysis

  # One manager's players only
  keeper analysis --manager "Alice"

  # As JSON
  keeper analysis --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalysis(cmd, manager)
		},
	}

	cmd.Flags().StringVarP(&manager, "manager", "m", "", "Limit to one manager's players")

	return cmd
}

func runAnalysis(cmd *cobra.Command, manager string) error {
	ctx := NewCommandContext(cmd)
	r := ctx.Renderer

	records, err := ctx.Source.Analysis()
	if err != nil {
		return err
	}

	if manager != "" {
		filtered := make([]league.KeeperRecord, 0, len(records))
		for _, rec := range records {
			if rec.Manager == manager {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{
			"players":     records,
			"total_count": len(records),
		})
	case output.ModeMarkdown:
		return analysisMarkdown(r, records)
	default:
		return analysisText(r, records)
	}
}

func analysisText(r *output.Renderer, records []league.KeeperRecord) error {
	r.Header(1, fmt.Sprintf("Keeper Analysis (%d players)", len(records)))
	r.Table(analysisHeaders(), analysisRows(records))

	keepers := currentKeepers(records)
	if len(keepers) > 0 {
		r.Println("")
		r.Header(2, fmt.Sprintf("Current Keepers (%d)", len(keepers)))
		r.Table(analysisHeaders(), analysisRows(keepers))
	}

	best := bestValues(records)
	if len(best) > 0 {
		r.Println("")
		r.Header(2, "Best Values")
		for i, rec := range best {
			r.Detail(fmt.Sprintf("%d. %s (%s): round %s for a projected round %s pick (+%d)",
				i+1, rec.PlayerName, rec.Manager,
				output.FormatOptionalInt(rec.KeeperRound),
				output.FormatOptionalInt(rec.ProjectedRound),
				keeperValue(rec)))
		}
	}

	return nil
}

func analysisMarkdown(r *output.Renderer, records []league.KeeperRecord) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Keeper Analysis (%d players)", len(records))))
	r.Println("")
	r.Table(analysisHeaders(), analysisRows(records))

	best := bestValues(records)
	if len(best) > 0 {
		r.Println("")
		r.Println(output.FormatHeader(2, "Best Values"))
		for _, rec := range best {
			r.Println(output.FormatKeyValue(rec.PlayerName,
				fmt.Sprintf("%s, keeper round %s, projected round %s, value +%d",
					rec.Manager,
					output.FormatOptionalInt(rec.KeeperRound),
					output.FormatOptionalInt(rec.ProjectedRound),
					keeperValue(rec))))
		}
	}

	return nil
}

func analysisHeaders() []string {
	return []string{"Player", "Manager", "Drafted", "Rank", "Pos", "Proj Rd", "Keep Rd", "Keeper"}
}

func analysisRows(records []league.KeeperRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.PlayerName,
			rec.Manager,
			output.FormatOptionalInt(rec.DraftRound),
			output.FormatOptionalInt(rec.DraftRank),
			output.FormatOptionalString(rec.PositionRank),
			output.FormatOptionalInt(rec.ProjectedRound),
			output.FormatOptionalInt(rec.KeeperRound),
			output.FormatBool(rec.KeeperStatus),
		})
	}
	return rows
}

func currentKeepers(records []league.KeeperRecord) []league.KeeperRecord {
	keepers := make([]league.KeeperRecord, 0)
	for _, rec := range records {
		if rec.KeeperStatus {
			keepers = append(keepers, rec)
		}
	}
	return keepers
}

// bestValues returns the top eligible values across all managers.
func bestValues(records []league.KeeperRecord) []league.KeeperRecord {
	best := make([]league.KeeperRecord, 0)
	for _, rec := range records {
		if rec.KeeperEligible && rec.ProjectedRound != nil && rec.KeeperRound != nil {
			best = append(best, rec)
		}
	}
	sort.SliceStable(best, func(i, j int) bool {
		return keeperValue(best[i]) > keeperValue(best[j])
	})
	if len(best) > league.RecommendationLimit {
		best = best[:league.RecommendationLimit]
	}
	return best
}

func keeperValue(rec league.KeeperRecord) int {
	if rec.ProjectedRound == nil || rec.KeeperRound == nil {
		return 0
	}
	return *rec.ProjectedRound - *rec.KeeperRound
}
