package league

import (
	"os"
	"path/filepath"
	"testing"
)

// testDraft builds a small draft with two teams and a configurable set
// of picks.
func testDraft(picks ...DraftPick) *Draft {
	return &Draft{
		Info: DraftInfo{TotalTeams: 12, TotalRounds: 16, DraftType: "snake"},
		Teams: []Team{
			{ID: 1, Name: "Gridiron Gang", Manager: "Alice", Rank: 1, Rating: 102.5, Level: "Platinum"},
			{ID: 2, Name: "Couch Potatoes", Manager: "Bob", Rank: 2, Rating: 98.1, Level: "Gold"},
		},
		Picks: picks,
	}
}

func pick(name string, teamID int, round, overall int, opts ...func(*DraftPick)) DraftPick {
	teamName := "Gridiron Gang"
	if teamID == 2 {
		teamName = "Couch Potatoes"
	}
	p := DraftPick{
		PlayerName:   name,
		TeamID:       teamID,
		DraftingTeam: teamName,
		Round:        intPtr(round),
		OverallPick:  intPtr(overall),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func asKeeper(p *DraftPick)  { p.KeeperStatus = true }
func asWaiver(p *DraftPick)  { p.WaiverPickup = true; p.Round = nil; p.OverallPick = nil }
func ineligible(p *DraftPick) {
	v := false
	p.KeeperEligible = &v
}

func ranking(name string, rank int, pos string) Ranking {
	return Ranking{PlayerName: name, Rank: rank, PositionRank: pos}
}

// writeDraftFile writes a draft results fixture and returns a Source
// over it plus an empty-but-valid rankings file.
func writeDraftFile(t *testing.T, draft *Draft) *Source {
	t.Helper()
	dir := t.TempDir()

	draftPath := filepath.Join(dir, "draft_results.json")
	rankingsPath := filepath.Join(dir, "fantasy_pros.csv")

	src := NewSource(draftPath, rankingsPath, nil)
	if err := src.SaveDraft(draft); err != nil {
		t.Fatalf("failed to write draft fixture: %v", err)
	}

	csv := "RK,PLAYER NAME,POS\n1,Test Player,RB1\n"
	if err := os.WriteFile(rankingsPath, []byte(csv), 0644); err != nil {
		t.Fatalf("failed to write rankings fixture: %v", err)
	}

	return src
}
