package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Tier names a bucket of the 1-10 rarity scale used for UI grouping.
type Tier string

const (
	TierLegendary Tier = "legendary"
	TierEpic      Tier = "epic"
	TierVeryRare  Tier = "very-rare"
	TierRare      Tier = "rare"
	TierUncommon  Tier = "uncommon"
	TierCommon    Tier = "common"
)

type rarityRange struct {
	min, max int
}

var tierRanges = map[Tier]rarityRange{
	TierLegendary: {10, 10},
	TierEpic:      {9, 9},
	TierVeryRare:  {8, 8},
	TierRare:      {7, 7},
	TierUncommon:  {5, 6},
	TierCommon:    {1, 4},
}

// ParseTier maps a caller-supplied tier name onto a known tier.
func ParseTier(name string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(name)))
	_, ok := tierRanges[t]
	return t, ok
}

// Query carries the composable catalog filters. Zero values are no-ops.
type Query struct {
	Search        string
	Tier          Tier
	AvailableOnly bool
}

// Filter applies the query to the entries, AND-composing every active
// filter. The search text matches case-insensitively against the decimal
// string, the category label, and the description. A non-empty tier outside
// the named set matches nothing. Entries with unknown or out-of-range fields
// are dropped; the pass never aborts.
func Filter(entries []Entry, q Query) []Entry {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	bounds, tierKnown := tierRanges[q.Tier]
	if q.Tier != "" && !tierKnown {
		return nil
	}
	return lo.Filter(entries, func(e Entry, _ int) bool {
		if !wellFormed(e) {
			return false
		}
		if q.AvailableOnly && !e.Available {
			return false
		}
		if tierKnown && (e.Rarity < bounds.min || e.Rarity > bounds.max) {
			return false
		}
		if needle != "" && !matches(e, needle) {
			return false
		}
		return true
	})
}

func wellFormed(e Entry) bool {
	return e.Category.Valid() && e.Rarity >= 1 && e.Rarity <= 10
}

func matches(e Entry, needle string) bool {
	return strings.Contains(e.Sat.String(), needle) ||
		strings.Contains(strings.ToLower(string(e.Category)), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle)
}
