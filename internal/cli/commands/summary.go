package commands

import (
	"fmt"
	"strconv"

	"github.com/gridironlabs/keeper/internal/cli/output"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/spf13/cobra"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the league draft summary",
		Long: `Show draft info and the teams in the league.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format

Use --output to override: auto, text, markdown, json`,
		Example: `  # Show the draft summary
  keeper summary

  # As JSON
  keeper summary --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd)
		},
	}
}

type summaryOutput struct {
	Draft      league.DraftInfo `json:"draft_info"`
	TotalPicks int              `json:"total_picks"`
	Keepers    int              `json:"keepers"`
	Teams      []league.Team    `json:"teams"`
}

func runSummary(cmd *cobra.Command) error {
	ctx := NewCommandContext(cmd)
	r := ctx.Renderer

	draft, err := ctx.Source.LoadDraft()
	if err != nil {
		return err
	}

	out := summaryOutput{
		Draft:      draft.Info,
		TotalPicks: len(draft.Picks),
		Keepers:    len(draft.Keepers()),
		Teams:      draft.Teams,
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	r.Header(1, "League Summary")
	r.KeyValue("Draft type", out.Draft.DraftType)
	r.KeyValue("Teams", strconv.Itoa(out.Draft.TotalTeams))
	r.KeyValue("Rounds", strconv.Itoa(out.Draft.TotalRounds))
	r.KeyValue("Picks", strconv.Itoa(out.TotalPicks))
	r.KeyValue("Current keepers", strconv.Itoa(out.Keepers))
	r.Println("")

	r.Header(2, fmt.Sprintf("Teams (%d)", len(out.Teams)))
	rows := make([][]string, 0, len(out.Teams))
	for _, t := range out.Teams {
		rows = append(rows, []string{t.Name, t.Manager})
	}
	r.Table([]string{"Team", "Manager"}, rows)

	return nil
}
