package metrics

import (
	"sort"
	"strings"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

const plateEpsilon = 1e-9

type PlateLoad struct {
	// PerSide lists the plates for one side, heaviest first.
	PerSide []float64 `json:"perSide"`
	Actual  float64   `json:"actual"`
	Display string    `json:"display"`
}

// LoadPlates greedily fills (target-bar)/2 per side with the heaviest
// plates that fit. Actual may fall short of target when the remainder
// is smaller than the lightest plate.
func LoadPlates(target, bar float64, plates []float64) PlateLoad {
	if len(plates) == 0 {
		plates = catalog.StandardPlates
	}
	denoms := append([]float64(nil), plates...)
	sort.Sort(sort.Reverse(sort.Float64Slice(denoms)))

	res := PlateLoad{PerSide: []float64{}, Actual: bar}
	remaining := (target - bar) / 2
	var side float64
	for _, p := range denoms {
		if p <= 0 {
			continue
		}
		for remaining+plateEpsilon >= p {
			res.PerSide = append(res.PerSide, p)
			remaining -= p
			side += p
		}
	}
	res.Actual = bar + 2*side
	res.Display = plateDisplay(res.PerSide)
	return res
}

func plateDisplay(perSide []float64) string {
	if len(perSide) == 0 {
		return "Empty bar"
	}
	parts := make([]string, len(perSide))
	for i, p := range perSide {
		parts[i] = utils.FormatWeight(p)
	}
	return strings.Join(parts, " + ") + " per side"
}
