package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draftFixture = `{
  "draft_info": {"total_teams": 12, "total_rounds": 16, "draft_type": "snake"},
  "teams": [
    {"team_id": 1, "team_name": "Gridiron Gang", "manager": "Alice", "rank": 1, "rating": 102.5, "level": "Platinum"},
    {"team_id": 2, "team_name": "Couch Potatoes", "manager": "Bob", "rank": 2, "rating": 98.1, "level": "Gold"}
  ],
  "draft_picks": [
    {"player_name": "CeeDee Lamb", "team_id": 1, "drafting_team": "Gridiron Gang", "round": 1, "overall_pick": 6, "keeper_status": true},
    {"player_name": "Saquon Barkley", "team_id": 2, "drafting_team": "Couch Potatoes", "round": 2, "overall_pick": 13, "keeper_status": false},
    {"player_name": "Justin Tucker", "team_id": 1, "drafting_team": "Gridiron Gang", "round": 14, "overall_pick": 160, "keeper_status": false}
  ]
}`

const rankingsFixture = "RK,PLAYER NAME,POS\n" +
	"4,CeeDee Lamb,WR2\n" +
	"10,Saquon Barkley,RB5\n" +
	"150,Justin Tucker,K1\n"

func testRouter(t *testing.T) chi.Router {
	t.Helper()
	dir := t.TempDir()

	draftPath := filepath.Join(dir, "draft_results.json")
	rankingsPath := filepath.Join(dir, "fantasy_pros.csv")
	require.NoError(t, os.WriteFile(draftPath, []byte(draftFixture), 0644))
	require.NoError(t, os.WriteFile(rankingsPath, []byte(rankingsFixture), 0644))

	source := league.NewSource(draftPath, rankingsPath, nil)

	r := chi.NewRouter()
	SetupRoutes(r, source, nil, "test-instance")
	return r
}

func emptyRouter(t *testing.T) chi.Router {
	t.Helper()
	dir := t.TempDir()
	source := league.NewSource(
		filepath.Join(dir, "missing.json"),
		filepath.Join(dir, "missing.csv"),
		nil,
	)

	r := chi.NewRouter()
	SetupRoutes(r, source, nil, "test-instance")
	return r
}

func get(t *testing.T, router chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPlayersEndpoint(t *testing.T) {
	rec := get(t, testRouter(t), "/api/players")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Players    []league.KeeperRecord `json:"players"`
		TotalCount int                   `json:"total_count"`
		Status     string                `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.TotalCount, "kicker is filtered out")
	assert.Len(t, resp.Players, 2)
	assert.Equal(t, "CeeDee Lamb", resp.Players[0].PlayerName)
}

func TestManagersEndpoint(t *testing.T) {
	rec := get(t, testRouter(t), "/api/managers")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Managers []string `json:"managers"`
		Status   string   `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, []string{"Alice", "Bob"}, resp.Managers)
}

func TestRecommendationsEndpoint(t *testing.T) {
	rec := get(t, testRouter(t), "/api/keeper-recommendations/Alice")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Manager         string                  `json:"manager"`
		Recommendations []league.Recommendation `json:"recommendations"`
		Status          string                  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Alice", resp.Manager)
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "CeeDee Lamb", resp.Recommendations[0].PlayerName)
	// rank 4 -> projected round 1, draft round 1 -> keeper round 1
	assert.Equal(t, 0, resp.Recommendations[0].KeeperValue)
}

func TestRecommendationsNoEligibleKeepersIsSuccess(t *testing.T) {
	rec := get(t, testRouter(t), "/api/keeper-recommendations/Nobody")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Recommendations []league.Recommendation `json:"recommendations"`
		Message         string                  `json:"message"`
		Status          string                  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Empty(t, resp.Recommendations)
	assert.NotEmpty(t, resp.Message)
}

func TestSourceUnavailableIs404JSON(t *testing.T) {
	router := emptyRouter(t)
	for _, path := range []string{"/api/players", "/api/managers", "/api/keeper-recommendations/Alice"} {
		rec := get(t, router, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp["status"], path)
		assert.Equal(t, "No data available", resp["error"], path)
	}
}

func TestUnknownAPIRouteIs404JSON(t *testing.T) {
	rec := get(t, testRouter(t), "/api/does-not-exist")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
}

func TestHealthEndpoint(t *testing.T) {
	rec := get(t, testRouter(t), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "test-instance", resp["instance"])
}
