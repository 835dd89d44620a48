package league

import "sort"

// RecommendationLimit is how many keeper suggestions a manager gets.
const RecommendationLimit = 5

// Recommendation is a KeeperRecord scored by how many rounds of draft
// value keeping the player saves.
type Recommendation struct {
	KeeperRecord
	KeeperValue int `json:"keeper_value"`
}

// Recommend returns the top keeper candidates for a manager: eligible
// records only, scored by projected round minus keeper round, highest
// first. Ties keep the input order. An empty result means the manager
// simply has no eligible keepers; it is not a failure.
func Recommend(records []KeeperRecord, manager string) []Recommendation {
	var candidates []Recommendation
	for _, rec := range records {
		if rec.Manager != manager || !rec.KeeperEligible {
			continue
		}
		if rec.ProjectedRound == nil || rec.KeeperRound == nil {
			// No score can be computed without both rounds.
			continue
		}
		candidates = append(candidates, Recommendation{
			KeeperRecord: rec,
			KeeperValue:  *rec.ProjectedRound - *rec.KeeperRound,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].KeeperValue > candidates[j].KeeperValue
	})

	if len(candidates) > RecommendationLimit {
		candidates = candidates[:RecommendationLimit]
	}
	return candidates
}
