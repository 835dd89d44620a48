package commands

import (
	"encoding/json"
	"testing"

	"github.com/gridironlabs/keeper/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisJSON(t *testing.T) {
	out, err := execute(t, NewAnalysisCommand(), testConfig(t))
	require.NoError(t, err)

	var resp struct {
		Players    []league.KeeperRecord `json:"players"`
		TotalCount int                   `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	require.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, "CeeDee Lamb", resp.Players[0].PlayerName, "sorted by overall pick")
	assert.Equal(t, "Alice", resp.Players[0].Manager)

	// Puka Nacua: rank 12 projects to round 1, drafted round 9 keeps at 8
	puka := resp.Players[2]
	require.Equal(t, "Puka Nacua", puka.PlayerName)
	require.NotNil(t, puka.ProjectedRound)
	assert.Equal(t, 1, *puka.ProjectedRound)
	require.NotNil(t, puka.KeeperRound)
	assert.Equal(t, 8, *puka.KeeperRound)
}

func TestAnalysisManagerFilter(t *testing.T) {
	out, err := execute(t, NewAnalysisCommand(), testConfig(t), "--manager", "Bob")
	require.NoError(t, err)

	var resp struct {
		Players    []league.KeeperRecord `json:"players"`
		TotalCount int                   `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	require.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "Saquon Barkley", resp.Players[0].PlayerName)
}

func TestAnalysisMissingSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.DraftFile = "missing.json"

	_, err := execute(t, NewAnalysisCommand(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, league.ErrSourceUnavailable)
}

func TestRecommendJSON(t *testing.T) {
	out, err := execute(t, NewRecommendCommand(), testConfig(t), "Alice")
	require.NoError(t, err)

	var resp struct {
		Manager         string                  `json:"manager"`
		Recommendations []league.Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "Alice", resp.Manager)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "CeeDee Lamb", resp.Recommendations[0].PlayerName, "highest keeper value first")
	assert.Equal(t, 0, resp.Recommendations[0].KeeperValue)
	assert.Equal(t, -7, resp.Recommendations[1].KeeperValue)
}

func TestRecommendUnknownManager(t *testing.T) {
	out, err := execute(t, NewRecommendCommand(), testConfig(t), "Nobody")
	require.NoError(t, err, "an empty result is not an error")

	var resp struct {
		Recommendations []league.Recommendation `json:"recommendations"`
		Message         string                  `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Empty(t, resp.Recommendations)
	assert.NotEmpty(t, resp.Message)
}
