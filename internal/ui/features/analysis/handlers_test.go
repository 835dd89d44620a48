package analysis

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/gridironlabs/keeper/internal/ui/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draftFixture = `{
  "draft_info": {"total_teams": 12, "total_rounds": 16, "draft_type": "snake"},
  "teams": [
    {"team_id": 1, "team_name": "Gridiron Gang", "manager": "Alice", "rank": 1, "rating": 102.5, "level": "Platinum"}
  ],
  "draft_picks": [
    {"player_name": "CeeDee Lamb", "team_id": 1, "drafting_team": "Gridiron Gang", "round": 1, "overall_pick": 6, "keeper_status": true}
  ]
}`

const rankingsFixture = "RK,PLAYER NAME,POS\n4,CeeDee Lamb,WR2\n"

func testRouter(t *testing.T, withData bool) chi.Router {
	t.Helper()
	dir := t.TempDir()

	draftPath := filepath.Join(dir, "draft_results.json")
	rankingsPath := filepath.Join(dir, "fantasy_pros.csv")
	if withData {
		require.NoError(t, os.WriteFile(draftPath, []byte(draftFixture), 0644))
		require.NoError(t, os.WriteFile(rankingsPath, []byte(rankingsFixture), 0644))
	}

	source := league.NewSource(draftPath, rankingsPath, nil)
	store := sessions.NewCookieStore([]byte("test-secret"))

	r := chi.NewRouter()
	SetupRoutes(r, source, store, notifier.New(), nil)
	return r
}

func TestRootRedirectsToAnalysis(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	testRouter(t, true).ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/keeper-analysis", rec.Header().Get("Location"))
}

func TestAnalysisPageRenders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/keeper-analysis", nil)
	rec := httptest.NewRecorder()
	testRouter(t, true).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "CeeDee Lamb")
	assert.Contains(t, body, "manager-filter")
}

func TestAnalysisPageManagerFilterSticksInSession(t *testing.T) {
	router := testRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/keeper-analysis?manager=Alice", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "filter selection should set a session cookie")

	// A later request without the parameter keeps the filter.
	req = httptest.NewRequest(http.MethodGet, "/keeper-analysis", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="Alice" selected>`)
}

func TestAnalysisPageSourceFailureRendersErrorView(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/keeper-analysis", nil)
	rec := httptest.NewRecorder()
	testRouter(t, false).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unable to load keeper analysis data")
}
