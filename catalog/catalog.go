// Package catalog builds the browsable rare-sat catalog, reconciles it
// against a caller's held satoshis, and filters it for display. Every call
// rebuilds its result from its inputs; nothing is stored between calls.
package catalog

import (
	"github.com/samber/lo"

	"github.com/ordkit/raresat/sat"
)

// Entry is one browsable catalog row.
type Entry struct {
	Sat            sat.Sat      `json:"satoshi"`
	Category       sat.Category `json:"category"`
	Rarity         int          `json:"rarity"`
	Description    string       `json:"description"`
	Available      bool         `json:"available"`
	Representative bool         `json:"representative"`
}

type representative struct {
	Category sat.Category
	Sat      sat.Sat
}

// representatives fixes one example satoshi per category, in priority order.
// Each example satisfies its category's predicate and resolves to that
// category under the classifier. Common is not browsable.
var representatives = []representative{
	{sat.First, 21},
	{sat.Block9, 45_000_000_000},
	{sat.Block78, 390_000_000_000},
	{sat.Rodarmor, 5_000_000_000},
	{sat.Pizza, 20_458_900_000_000},
	{sat.AlphaMega, 1_000_000_000_000},
	{sat.Palindrome, 10_000_000_001},
	{sat.Sequence, 123_456_789},
	{sat.Repeating, 123_123},
	{sat.Prime, 1_000_003},
	{sat.Black, 10_000_000_000},
	{sat.Evil, 3},
	{sat.Omega, 10_500_000_000},
	{sat.White, 500_000_000},
	{sat.Binary, 1_100_110},
	{sat.Vintage, 60_000},
	{sat.ASCII, 7},
	{sat.Uncommon, 262_144},
}

// Generate builds the pristine catalog: one entry per rare category so the
// full taxonomy is browsable before any wallet data exists. Nothing is
// marked available yet.
func Generate() []Entry {
	return lo.Map(representatives, func(r representative, _ int) Entry {
		return Entry{
			Sat:            r.Sat,
			Category:       r.Category,
			Rarity:         r.Category.Rarity(),
			Description:    r.Category.Description(),
			Representative: true,
		}
	})
}

// Reconcile marks which catalog entries are covered by the caller's held
// satoshis. Availability is per category: holding two sats of one rare
// category still lights up a single representative. Both inputs are left
// untouched; a fresh slice is returned.
func Reconcile(held []sat.Sat, entries []Entry) []Entry {
	present := make(map[sat.Category]struct{}, len(held))
	for _, s := range held {
		present[sat.Classify(s).Category] = struct{}{}
	}
	return lo.Map(entries, func(e Entry, _ int) Entry {
		_, ok := present[e.Category]
		e.Available = ok
		return e
	})
}
