package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/gridironlabs/keeper/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewStandingsCommand creates the standings command.
func NewStandingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show final league standings",
		Long:  `Show the teams ordered by their final rank last season.`,
		Example: `  # Show standings
  keeper standings

  # As markdown (for scripts)
  keeper standings --output markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStandings(cmd)
		},
	}
}

type standingRow struct {
	Rank    int     `json:"rank"`
	Team    string  `json:"team_name"`
	Manager string  `json:"manager"`
	Rating  float64 `json:"rating"`
	Level   string  `json:"level"`
}

func runStandings(cmd *cobra.Command) error {
	ctx := NewCommandContext(cmd)
	r := ctx.Renderer

	draft, err := ctx.Source.LoadDraft()
	if err != nil {
		return err
	}

	standings := make([]standingRow, 0, len(draft.Teams))
	for _, t := range draft.Teams {
		standings = append(standings, standingRow{
			Rank:    t.Rank,
			Team:    t.Name,
			Manager: t.Manager,
			Rating:  t.Rating,
			Level:   t.Level,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Rank < standings[j].Rank })

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{"standings": standings})
	}

	r.Header(1, "Final Standings")
	rows := make([][]string, 0, len(standings))
	for _, s := range standings {
		rows = append(rows, []string{
			strconv.Itoa(s.Rank),
			s.Team,
			s.Manager,
			fmt.Sprintf("%.1f", s.Rating),
			s.Level,
		})
	}
	r.Table([]string{"Rank", "Team", "Manager", "Rating", "Level"}, rows)

	return nil
}
