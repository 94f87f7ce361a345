package sat

import (
	"math/bits"
	"strings"
)

// Canonical range and stride constants. Earlier revisions carried several
// drifting definitions of the same category; these are the pinned ones
// (see DESIGN.md for the decisions).
const (
	// The celebrated opening sats of the genesis block. Single-digit
	// ordinals keep their ASCII reading.
	firstMin Sat = 10
	firstMax Sat = 10_000

	// 50 BTC subsidy blocks.
	satsPerBlock Sat = 5_000_000_000

	block1Start  Sat = 1 * satsPerBlock
	block1End    Sat = 2 * satsPerBlock
	block9Start  Sat = 9 * satsPerBlock
	block9End    Sat = 10 * satsPerBlock
	block78Start Sat = 78 * satsPerBlock
	block78End   Sat = 79 * satsPerBlock

	// The 10,000 BTC pizza purchase of May 2010.
	pizzaStart Sat = 20_458_900_000_000
	pizzaEnd   Sat = 21_458_900_000_000

	whiteStride Sat = 100_000_000       // one whole bitcoin
	blackStride Sat = 10_000_000_000    // a 100 BTC brick
	megaStride  Sat = 1_000_000_000_000 // a 10,000 BTC span
	omegaStride Sat = 10_500_000_000    // 1/100,000 of a halving epoch

	asciiMax    Sat = 127
	vintageMax  Sat = 100_000
	uncommonMax Sat = 1_000_000
)

func IsFirstBlock(s Sat) bool { return s >= firstMin && s < firstMax }
func IsRodarmor(s Sat) bool   { return s >= block1Start && s < block1End }
func IsBlock9(s Sat) bool     { return s >= block9Start && s < block9End }
func IsBlock78(s Sat) bool    { return s >= block78Start && s < block78End }
func IsPizza(s Sat) bool      { return s >= pizzaStart && s < pizzaEnd }

// IsPalindrome reports whether the decimal digits read the same in both
// directions. Single digits are not counted.
func IsPalindrome(s Sat) bool {
	d := s.String()
	if len(d) < 2 {
		return false
	}
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		if d[i] != d[j] {
			return false
		}
	}
	return true
}

// IsSequence reports whether the decimal digits run strictly ascending by
// one throughout, or strictly descending by one throughout.
func IsSequence(s Sat) bool {
	d := s.String()
	if len(d) < 2 {
		return false
	}
	asc, desc := true, true
	for i := 1; i < len(d); i++ {
		if d[i] != d[i-1]+1 {
			asc = false
		}
		if d[i] != d[i-1]-1 {
			desc = false
		}
	}
	return asc || desc
}

// IsRepeating reports whether the digit string is exactly tiled by some
// proper prefix of itself.
func IsRepeating(s Sat) bool {
	d := s.String()
	for p := 1; p <= len(d)/2; p++ {
		if len(d)%p != 0 {
			continue
		}
		if strings.Repeat(d[:p], len(d)/p) == d {
			return true
		}
	}
	return false
}

// IsPrime runs 6k±1 trial division up to the square root.
func IsPrime(s Sat) bool {
	n := uint64(s)
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// IsEvil reports an even popcount of the binary representation.
func IsEvil(s Sat) bool {
	return bits.OnesCount64(uint64(s))%2 == 0
}

func IsBlack(s Sat) bool     { return s > 0 && s%blackStride == 0 }
func IsWhite(s Sat) bool     { return s > 0 && s%whiteStride == 0 }
func IsAlphaMega(s Sat) bool { return s > 0 && s%megaStride == 0 }
func IsOmega(s Sat) bool     { return s > 0 && s%omegaStride == 0 }

// IsBinary reports whether the decimal digits are drawn solely from 0 and 1.
func IsBinary(s Sat) bool {
	for _, ch := range s.String() {
		if ch != '0' && ch != '1' {
			return false
		}
	}
	return true
}

func IsASCII(s Sat) bool    { return s <= asciiMax }
func IsVintage(s Sat) bool  { return s > asciiMax && s < vintageMax }
func IsUncommon(s Sat) bool { return s < uncommonMax }
