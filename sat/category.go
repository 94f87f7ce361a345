package sat

// Category tags one satoshi with the single rarity bucket it belongs to.
// The set is closed: Classify never returns anything outside this list.
type Category string

const (
	First      Category = "first"
	Block9     Category = "block9"
	Block78    Category = "block78"
	Rodarmor   Category = "rodarmor"
	Pizza      Category = "pizza"
	AlphaMega  Category = "alpha-mega"
	Palindrome Category = "palindrome"
	Sequence   Category = "sequence"
	Repeating  Category = "repeating"
	Prime      Category = "prime"
	Black      Category = "black"
	Evil       Category = "evil"
	Omega      Category = "omega"
	White      Category = "white"
	Binary     Category = "binary"
	Vintage    Category = "vintage"
	ASCII      Category = "ascii"
	Uncommon   Category = "uncommon"
	Common     Category = "common"
)

type categoryTraits struct {
	rarity      int
	description string
}

var traits = map[Category]categoryTraits{
	First:      {10, "Mined in the opening moments of the genesis block"},
	Block9:     {10, "From block 9, source of the earliest coins still spendable"},
	Block78:    {9, "From block 78, the first block mined by Hal Finney"},
	Rodarmor:   {9, "From block 1, the first block after genesis"},
	Pizza:      {9, "Spent in the 10,000 BTC pizza purchase of May 2010"},
	AlphaMega:  {8, "Opens a 10,000 BTC span"},
	Palindrome: {8, "Reads the same forwards and backwards"},
	Sequence:   {8, "Digits run in consecutive order"},
	Repeating:  {7, "Digit pattern tiles itself end to end"},
	Prime:      {7, "Divisible only by itself and one"},
	Black:      {6, "Opens a 100 bitcoin brick"},
	Evil:       {6, "Carries an even count of one bits"},
	Omega:      {5, "Falls on a halving-epoch stride"},
	White:      {5, "First satoshi of a whole bitcoin"},
	Binary:     {5, "Written with only zeros and ones"},
	Vintage:    {4, "Among the hundred thousand oldest satoshis"},
	ASCII:      {4, "Numbered within the ASCII table"},
	Uncommon:   {2, "Numbered below one million"},
	Common:     {1, "No notable numeric properties"},
}

// Rarity is fixed per category: 1 through 10, 10 rarest.
func (c Category) Rarity() int {
	return traits[c].rarity
}

func (c Category) Description() string {
	return traits[c].description
}

func (c Category) Valid() bool {
	_, ok := traits[c]
	return ok
}
