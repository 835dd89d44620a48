package league

import (
	"sort"
	"strings"
)

// LeagueSize is the number of teams a projected draft round divides
// over. It is a property of the derivation, not configuration.
const LeagueSize = 12

// WaiverKeeperRound is the fixed keeper cost for waiver pickups,
// regardless of any draft position.
const WaiverKeeperRound = 5

// BuildAnalysis joins draft picks to season rankings and derives the
// projected round, keeper round and eligibility columns.
//
// Matching is exact string equality after whitespace trimming; picks
// with no ranking match are dropped, as are kickers and defenses
// (position rank starting with K or DST). Output is sorted ascending
// by overall pick.
func BuildAnalysis(draft *Draft, rankings []Ranking) []KeeperRecord {
	managers := draft.ManagerByTeamName()

	byName := make(map[string]Ranking, len(rankings))
	for _, rk := range rankings {
		if _, seen := byName[rk.PlayerName]; !seen {
			byName[rk.PlayerName] = rk
		}
	}

	records := make([]KeeperRecord, 0, len(draft.Picks))
	for _, pick := range draft.Picks {
		manager, ok := managers[pick.DraftingTeam]
		if !ok {
			manager = pick.DraftingTeam
		}

		rec := KeeperRecord{
			PlayerName:     pick.PlayerName,
			Manager:        manager,
			DraftRound:     pick.Round,
			OverallPick:    pick.OverallPick,
			KeeperStatus:   pick.KeeperStatus,
			KeeperEligible: pick.Eligible2025(),
			WaiverPickup:   pick.WaiverPickup,
			KeeperRound:    keeperRound(pick),
		}

		rk, matched := byName[strings.TrimSpace(pick.PlayerName)]
		if !matched {
			// No ranking match after trim: the row is silently dropped.
			continue
		}
		rec.DraftRank = intPtr(rk.Rank)
		rec.PositionRank = strPtr(rk.PositionRank)
		rec.ProjectedRound = intPtr(projectedRound(rk.Rank))

		if excludedPosition(rk.PositionRank) {
			continue
		}

		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return pickOrder(records[i].OverallPick) < pickOrder(records[j].OverallPick)
	})

	return records
}

// projectedRound is ceil(rank / LeagueSize).
func projectedRound(rank int) int {
	return (rank + LeagueSize - 1) / LeagueSize
}

// keeperRound applies the keeper cost policy in priority order:
// waiver pickups cost a fixed round, drafted players cost one round
// better than their draft slot (floored at 1), anything else has no
// keeper cost.
func keeperRound(pick DraftPick) *int {
	if pick.WaiverPickup {
		return intPtr(WaiverKeeperRound)
	}
	if pick.Round != nil {
		return intPtr(max(1, *pick.Round-1))
	}
	return nil
}

// excludedPosition reports whether the position rank marks a kicker or
// a defense.
func excludedPosition(pos string) bool {
	return strings.HasPrefix(pos, "K") || strings.HasPrefix(pos, "DST")
}

// pickOrder sorts picks without an overall number after everything
// else, keeping input order among themselves.
func pickOrder(pick *int) int {
	if pick == nil {
		return int(^uint(0) >> 1)
	}
	return *pick
}

// Managers returns the distinct manager names in the records, sorted.
func Managers(records []KeeperRecord) []string {
	seen := map[string]struct{}{}
	var managers []string
	for _, rec := range records {
		if _, ok := seen[rec.Manager]; ok {
			continue
		}
		seen[rec.Manager] = struct{}{}
		managers = append(managers, rec.Manager)
	}
	sort.Strings(managers)
	return managers
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
