// Package sat classifies satoshi ordinals into a fixed taxonomy of rare
// categories. Every function is pure; nothing in the package holds state
// between calls.
package sat

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Supply is the total number of satoshis under the 21-million-coin cap.
// Ordinal numbers are valid in [0, Supply).
const Supply uint64 = 2_100_000_000_000_000

// Sat is the ordinal number of one satoshi, counted in issuance order.
type Sat uint64

// ErrInvalidSat reports boundary input that is not a valid ordinal number.
var ErrInvalidSat = errors.New("invalid satoshi ordinal")

// ParseSat validates caller-supplied input. Negative, non-numeric, and
// beyond-supply values are rejected here so the predicates can assume
// well-formed ordinals.
func ParseSat(s string) (Sat, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSat, s)
	}
	if n >= Supply {
		return 0, fmt.Errorf("%w: %q exceeds the supply cap", ErrInvalidSat, s)
	}
	return Sat(n), nil
}

func (s Sat) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Satoshi ordinals cross the wire as decimal strings.
func (s Sat) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Sat) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseSat(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
