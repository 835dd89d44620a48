package commands

import (
	"fmt"

	"github.com/gridironlabs/keeper/internal/cli/output"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/spf13/cobra"
)

// NewKeepersCommand creates the keepers command.
func NewKeepersCommand() *cobra.Command {
	var ineligible bool
	var eligibility bool

	cmd := &cobra.Command{
		Use:   "keepers",
		Short: "List current keepers",
		Long: `List the picks currently marked as keepers, ordered by overall pick.

With --ineligible, list the players who cannot be kept next season
instead. With --eligibility, annotate each keeper with its eligibility
and print a summary count.`,
		Example: `  # Current keepers
  keeper keepers

  # Players ruled out for next season
  keeper keepers --ineligible

  # Keepers with eligibility status
  keeper keepers --eligibility`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKeepers(cmd, ineligible, eligibility)
		},
	}

	cmd.Flags().BoolVar(&ineligible, "ineligible", false, "List ineligible players instead")
	cmd.Flags().BoolVar(&eligibility, "eligibility", false, "Show eligibility status per keeper")

	return cmd
}

func runKeepers(cmd *cobra.Command, ineligible, eligibility bool) error {
	ctx := NewCommandContext(cmd)
	r := ctx.Renderer

	draft, err := ctx.Source.LoadDraft()
	if err != nil {
		return err
	}

	if ineligible {
		return renderPickList(r, draft, "Ineligible for Next Season", draft.Ineligible())
	}

	keepers := draft.Keepers()
	if !eligibility {
		return renderPickList(r, draft, "Current Keepers", keepers)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{"keepers": keepers})
	}

	r.Header(1, "Current Keepers")
	eligible := 0
	rows := make([][]string, 0, len(keepers))
	for _, p := range keepers {
		if p.Eligible2025() {
			eligible++
		}
		rows = append(rows, []string{
			p.PlayerName,
			teamLabel(draft, p),
			output.FormatOptionalInt(p.Round),
			output.FormatBool(p.Eligible2025()),
		})
	}
	r.Table([]string{"Player", "Team", "Round", "Eligible"}, rows)
	r.Println("")
	r.Println(fmt.Sprintf("%d of %d keepers eligible for next season", eligible, len(keepers)))

	return nil
}

func renderPickList(r *output.Renderer, draft *league.Draft, title string, picks []league.DraftPick) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{"players": picks, "total_count": len(picks)})
	}

	r.Header(1, fmt.Sprintf("%s (%d)", title, len(picks)))
	rows := make([][]string, 0, len(picks))
	for _, p := range picks {
		rows = append(rows, []string{
			p.PlayerName,
			teamLabel(draft, p),
			output.FormatOptionalInt(p.Round),
			output.FormatOptionalInt(p.OverallPick),
		})
	}
	r.Table([]string{"Player", "Team", "Round", "Pick"}, rows)
	return nil
}

// teamLabel prefers the team roster entry, falling back to the raw
// drafting_team value from the pick.
func teamLabel(draft *league.Draft, p league.DraftPick) string {
	if t := draft.TeamByID(p.TeamID); t != nil {
		return t.Name
	}
	return p.DraftingTeam
}
