package apis

import (
	"github.com/ordkit/raresat/sat"
)

// BatchParseSats decodes caller-supplied decimal strings into ordinals.
func BatchParseSats(strs []string) ([]sat.Sat, error) {
	res := make([]sat.Sat, 0, len(strs))
	for _, s := range strs {
		v, err := sat.ParseSat(s)
		if err != nil {
			return res, err
		}
		res = append(res, v)
	}
	return res, nil
}
