package league

import "strings"

// ToggleResult reports the outcome of a keeper status toggle.
//
// Exactly one of the three shapes holds: Updated is set when a single
// pick matched and was flipped; Matches holds the ambiguous set when
// several picks matched (nothing was written); both empty means no
// pick matched. Lookup misses are results, not errors.
type ToggleResult struct {
	Updated   *DraftPick
	NewStatus bool
	Matches   []DraftPick
}

// NotFound reports that no pick matched the query.
func (r *ToggleResult) NotFound() bool {
	return r.Updated == nil && len(r.Matches) == 0
}

// Ambiguous reports that more than one pick matched the query.
func (r *ToggleResult) Ambiguous() bool {
	return len(r.Matches) > 1
}

// ToggleKeeper flips the keeper status of the single pick whose player
// name contains the query (case-insensitive substring) and rewrites
// the draft results file. With zero or multiple matches nothing is
// written and the result describes the miss.
//
// This is a read-modify-write with no concurrency control; invocation
// is a manual, single-operator action and concurrent toggles are
// last-writer-wins.
func (s *Source) ToggleKeeper(query string) (*ToggleResult, error) {
	draft, err := s.LoadDraft()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matches []int
	for i := range draft.Picks {
		if strings.Contains(strings.ToLower(draft.Picks[i].PlayerName), q) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return &ToggleResult{}, nil
	case 1:
		// fall through to the mutation below
	default:
		ambiguous := make([]DraftPick, 0, len(matches))
		for _, i := range matches {
			ambiguous = append(ambiguous, draft.Picks[i])
		}
		return &ToggleResult{Matches: ambiguous}, nil
	}

	pick := &draft.Picks[matches[0]]
	pick.KeeperStatus = !pick.KeeperStatus

	if err := s.SaveDraft(draft); err != nil {
		return nil, err
	}

	s.logger.Info("toggled keeper status",
		"player", pick.PlayerName,
		"team", pick.DraftingTeam,
		"keeper", pick.KeeperStatus)

	updated := *pick
	return &ToggleResult{Updated: &updated, NewStatus: pick.KeeperStatus}, nil
}

// FindTeams returns the teams whose name contains the query,
// case-insensitive. Used by the interactive roster lookup.
func (d *Draft) FindTeams(query string) []Team {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Team
	for _, t := range d.Teams {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}

// PicksForTeam returns the picks belonging to a team id, sorted by
// overall pick.
func (d *Draft) PicksForTeam(teamID int) []DraftPick {
	var picks []DraftPick
	for _, p := range d.Picks {
		if p.TeamID == teamID {
			picks = append(picks, p)
		}
	}
	sortPicks(picks)
	return picks
}

// Keepers returns the picks currently marked as keepers, sorted by
// overall pick.
func (d *Draft) Keepers() []DraftPick {
	var picks []DraftPick
	for _, p := range d.Picks {
		if p.KeeperStatus {
			picks = append(picks, p)
		}
	}
	sortPicks(picks)
	return picks
}

// Ineligible returns the picks that may not be kept next season,
// sorted by overall pick.
func (d *Draft) Ineligible() []DraftPick {
	var picks []DraftPick
	for _, p := range d.Picks {
		if !p.Eligible2025() {
			picks = append(picks, p)
		}
	}
	sortPicks(picks)
	return picks
}
