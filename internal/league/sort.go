package league

import "sort"

// sortPicks orders picks ascending by overall pick, unnumbered picks
// last in input order.
func sortPicks(picks []DraftPick) {
	sort.SliceStable(picks, func(i, j int) bool {
		return pickOrder(picks[i].OverallPick) < pickOrder(picks[j].OverallPick)
	})
}
