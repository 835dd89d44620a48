package views

import (
	"bytes"
	"testing"

	"github.com/gridironlabs/keeper/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAnalysis(t *testing.T) {
	round := 1
	pickNum := 6
	rank := 4
	pos := "WR2"
	proj := 1
	keeperRound := 1

	buf := new(bytes.Buffer)
	err := RenderAnalysis(buf, AnalysisData{
		Managers: []string{"Alice", "Bob"},
		Selected: "Alice",
		Players: []league.KeeperRecord{{
			PlayerName:     "CeeDee Lamb",
			Manager:        "Alice",
			DraftRound:     &round,
			OverallPick:    &pickNum,
			KeeperStatus:   true,
			KeeperEligible: true,
			DraftRank:      &rank,
			PositionRank:   &pos,
			ProjectedRound: &proj,
			KeeperRound:    &keeperRound,
		}},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "CeeDee Lamb")
	assert.Contains(t, html, `data-manager="Alice"`)
	assert.Contains(t, html, `class="keeper"`)
	assert.Contains(t, html, `<option value="Alice" selected>`)
	assert.Contains(t, html, "1 players")
}

func TestRenderAnalysisNullFieldsShowDash(t *testing.T) {
	buf := new(bytes.Buffer)
	err := RenderAnalysis(buf, AnalysisData{
		Players: []league.KeeperRecord{{PlayerName: "Waiver Guy", Manager: "Bob", WaiverPickup: true}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<td>-</td>")
}

func TestRenderError(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, RenderError(buf, "Failed to load data"))
	assert.Contains(t, buf.String(), "Failed to load data")
	assert.Contains(t, buf.String(), "/keeper-analysis")
}
