package sat

import "testing"

func TestClassifyVerdicts(t *testing.T) {
	cases := []struct {
		sat    Sat
		want   Category
		rarity int
	}{
		{21, First, 10},
		{45_000_000_000, Block9, 10},
		{390_000_000_000, Block78, 9},
		{5_000_000_000, Rodarmor, 9},
		{20_458_900_000_000, Pizza, 9},
		{1_000_000_000_000, AlphaMega, 8},
		{10_000_000_001, Palindrome, 8},
		{123_456_789, Sequence, 8},
		{123_123, Repeating, 7},
		{1_000_003, Prime, 7},
		{10_000_000_000, Black, 6},
		{3, Evil, 6},
		{10_500_000_000, Omega, 5},
		{500_000_000, White, 5},
		{1_100_110, Binary, 5},
		{60_000, Vintage, 4},
		{7, ASCII, 4},
		{262_144, Uncommon, 2},
		// 600000 has an even popcount, so the evil rule claims it first.
		{600_000, Evil, 6},
		{2_097_152, Common, 1},
		{1_300_000, Common, 1},
	}
	for _, c := range cases {
		got := Classify(c.sat)
		if got.Category != c.want {
			t.Errorf("Classify(%d).Category = %q, want %q", c.sat, got.Category, c.want)
		}
		if got.Rarity != c.rarity {
			t.Errorf("Classify(%d).Rarity = %d, want %d", c.sat, got.Rarity, c.rarity)
		}
		if got.Sat != c.sat {
			t.Errorf("Classify(%d) echoed satoshi %d", c.sat, got.Sat)
		}
		if got.Description != c.want.Description() {
			t.Errorf("Classify(%d).Description = %q", c.sat, got.Description)
		}
	}
}

// Small ordinals sit inside several overlapping bands; the rule order must
// settle them the same way every time.
func TestClassifyOverlaps(t *testing.T) {
	// 45e9 is also white and black; block 9 outranks both.
	if got := Classify(45_000_000_000).Category; got != Block9 {
		t.Errorf("45e9 classified as %q, want %q", got, Block9)
	}
	// 1e12 is also black and white; the 10,000 BTC stride outranks them.
	if got := Classify(1_000_000_000_000).Category; got != AlphaMega {
		t.Errorf("1e12 classified as %q, want %q", got, AlphaMega)
	}
	// 7 is a prime, ASCII, and below one million; the prime floor and the
	// vintage lower bound leave ASCII as the verdict.
	if got := Classify(7).Category; got != ASCII {
		t.Errorf("7 classified as %q, want %q", got, ASCII)
	}
	// Below the floor, primality is ignored.
	if got := Classify(9_973).Category; got == Prime {
		t.Errorf("9973 classified as prime despite the floor")
	}
	// Just above it, a prime is a prime.
	if got := Classify(10_007).Category; got != Prime {
		t.Errorf("10007 classified as %q, want %q", got, Prime)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for _, s := range []Sat{0, 21, 1_000_003, 45_000_000_000, Sat(Supply - 1)} {
		first := Classify(s)
		for i := 0; i < 3; i++ {
			if again := Classify(s); again != first {
				t.Fatalf("Classify(%d) flapped: %+v then %+v", s, first, again)
			}
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	samples := []Sat{
		0, 1, 9, 10, 127, 128, 9_999, 10_000, 99_999, 100_000,
		999_999, 1_000_000, 4_999_999_999, 5_000_000_000,
		20_458_899_999_999, Sat(Supply - 1),
	}
	for _, s := range samples {
		got := Classify(s)
		if !got.Category.Valid() {
			t.Errorf("Classify(%d) produced unknown category %q", s, got.Category)
		}
		if got.Rarity < 1 || got.Rarity > 10 {
			t.Errorf("Classify(%d) rarity %d out of range", s, got.Rarity)
		}
		if got.Description == "" {
			t.Errorf("Classify(%d) produced an empty description", s)
		}
	}
}

// The rule order is load-bearing: every category except the fallback appears
// exactly once, and palindromes outrank sequences.
func TestPriorityOrder(t *testing.T) {
	seen := make(map[Category]int)
	for i, rule := range Priority {
		if rule.Category == Common {
			t.Fatalf("rule %d carries the fallback category", i)
		}
		if prev, dup := seen[rule.Category]; dup {
			t.Fatalf("category %q appears at both %d and %d", rule.Category, prev, i)
		}
		seen[rule.Category] = i
	}
	if len(seen) != len(traits)-1 {
		t.Fatalf("priority covers %d categories, want %d", len(seen), len(traits)-1)
	}
	if seen[Palindrome] >= seen[Sequence] {
		t.Errorf("palindrome must outrank sequence")
	}
	if seen[Black] >= seen[Evil] {
		t.Errorf("black must outrank evil")
	}
}

func TestRarityMatchesCategory(t *testing.T) {
	for c, tr := range traits {
		if c.Rarity() != tr.rarity {
			t.Errorf("%q rarity mismatch", c)
		}
		if !c.Valid() {
			t.Errorf("%q not valid", c)
		}
	}
	if Category("bogus").Valid() {
		t.Errorf("unknown category reported valid")
	}
	if Category("bogus").Rarity() != 0 {
		t.Errorf("unknown category carries a rarity")
	}
}
