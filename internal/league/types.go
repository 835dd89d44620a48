// Package league holds the domain model and the keeper analysis
// transform: draft results and season rankings are loaded from flat
// files, joined by player name, and a handful of projected values are
// derived for the following season.
package league

// DraftInfo describes the shape of the draft a results file records.
type DraftInfo struct {
	TotalTeams  int    `json:"total_teams"`
	TotalRounds int    `json:"total_rounds"`
	DraftType   string `json:"draft_type"`
}

// Team is one franchise in the league. TeamID uniquely identifies it.
type Team struct {
	ID      int     `json:"team_id"`
	Name    string  `json:"team_name"`
	Manager string  `json:"manager"`
	Rank    int     `json:"rank"`
	Rating  float64 `json:"rating"`
	Level   string  `json:"level"`
}

// DraftPick is a single selection from the draft results file.
//
// Round and OverallPick are pointers because waiver pickups enter the
// file without draft positions. KeeperEligible is a pointer so that a
// key absent from the source keeps its default (eligible) without
// being rewritten into the file on save.
type DraftPick struct {
	PlayerName     string `json:"player_name"`
	TeamID         int    `json:"team_id"`
	DraftingTeam   string `json:"drafting_team"`
	Round          *int   `json:"round,omitempty"`
	OverallPick    *int   `json:"overall_pick,omitempty"`
	KeeperStatus   bool   `json:"keeper_status"`
	KeeperEligible *bool  `json:"2025_keeper_eligible,omitempty"`
	WaiverPickup   bool   `json:"waiver_pickup,omitempty"`
}

// Eligible2025 reports whether the pick may be kept next season.
// Absent in the source means eligible.
func (p *DraftPick) Eligible2025() bool {
	return p.KeeperEligible == nil || *p.KeeperEligible
}

// Draft is the full parsed draft results source.
type Draft struct {
	Info  DraftInfo   `json:"draft_info"`
	Teams []Team      `json:"teams"`
	Picks []DraftPick `json:"draft_picks"`
}

// TeamByID returns the team with the given id, or nil.
func (d *Draft) TeamByID(id int) *Team {
	for i := range d.Teams {
		if d.Teams[i].ID == id {
			return &d.Teams[i]
		}
	}
	return nil
}

// ManagerByTeamName maps team names to managers. Picks whose drafting
// team is missing from the map fall back to the raw team name.
func (d *Draft) ManagerByTeamName() map[string]string {
	m := make(map[string]string, len(d.Teams))
	for _, t := range d.Teams {
		m[t.Name] = t.Manager
	}
	return m
}

// Ranking is one row of the season rankings source after header
// normalization (PLAYER NAME, RK, POS).
type Ranking struct {
	PlayerName   string
	Rank         int
	PositionRank string
}

// KeeperRecord is one output row of the keeper analysis transform.
// JSON field names match the columns the API has always served.
type KeeperRecord struct {
	PlayerName     string  `json:"player_name"`
	Manager        string  `json:"2024_manager"`
	DraftRound     *int    `json:"2024_draft_round"`
	OverallPick    *int    `json:"2024_overall_pick"`
	KeeperStatus   bool    `json:"2024_keeper_status"`
	KeeperEligible bool    `json:"2025_keeper_eligible"`
	DraftRank      *int    `json:"2025_draft_rank"`
	PositionRank   *string `json:"2025_position_rank"`
	ProjectedRound *int    `json:"2025_projected_draft_round"`
	KeeperRound    *int    `json:"2025_keeper_round"`
	WaiverPickup   bool    `json:"waiver_pickup"`
}
