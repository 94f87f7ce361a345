package sat

// Classified is the classifier's verdict for one satoshi.
type Classified struct {
	Sat         Sat      `json:"satoshi"`
	Category    Category `json:"category"`
	Rarity      int      `json:"rarity"`
	Description string   `json:"description"`
}

// Rule pairs one predicate with the category it admits.
type Rule struct {
	Match    func(Sat) bool
	Category Category
}

// primeFloor guards the prime category: below it, small primes would swamp
// otherwise common numbers.
const primeFloor Sat = 10_000

func guardedPrime(s Sat) bool {
	return s > primeFloor && IsPrime(s)
}

// Priority is the classification order, rarest first. The first rule whose
// predicate matches wins. Common is the fallback and carries no rule.
var Priority = []Rule{
	{IsFirstBlock, First},
	{IsBlock9, Block9},
	{IsBlock78, Block78},
	{IsRodarmor, Rodarmor},
	{IsPizza, Pizza},
	{IsAlphaMega, AlphaMega},
	{IsPalindrome, Palindrome},
	{IsSequence, Sequence},
	{IsRepeating, Repeating},
	{guardedPrime, Prime},
	{IsBlack, Black},
	{IsEvil, Evil},
	{IsOmega, Omega},
	{IsWhite, White},
	{IsBinary, Binary},
	{IsVintage, Vintage},
	{IsASCII, ASCII},
	{IsUncommon, Uncommon},
}

// Classify maps one satoshi to exactly one category. It is total over valid
// ordinals and deterministic: when no rule matches, the verdict is Common.
func Classify(s Sat) Classified {
	for _, rule := range Priority {
		if rule.Match(s) {
			return verdict(s, rule.Category)
		}
	}
	return verdict(s, Common)
}

func verdict(s Sat, c Category) Classified {
	return Classified{
		Sat:         s,
		Category:    c,
		Rarity:      c.Rarity(),
		Description: c.Description(),
	}
}
