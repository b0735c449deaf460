package metrics

import (
	"math"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
)

// degenerateRatio is used when the first session has no weight to
// compare against.
const degenerateRatio = 0.3

type Score struct {
	Score       int     `json:"score"`
	AvgPct      float64 `json:"avgPct"`
	CoveragePct float64 `json:"coveragePct"`
	Tracked     int     `json:"tracked"`
	Total       int     `json:"total"`
}

// ImprovementRatio compares the best weight ever with the best weight
// of the first session: min(1, gain/first*0.5 + 0.5).
func ImprovementRatio(sessions []models.StrengthSession) float64 {
	if len(sessions) == 0 {
		return 0
	}

	first := sessions[0]
	bestEver := 0.0
	for _, s := range sessions {
		if s.Date.Before(first.Date) {
			first = s
		}
		bestEver = math.Max(bestEver, s.BestWeight())
	}

	firstBest := first.BestWeight()
	if firstBest == 0 || bestEver == 0 {
		return degenerateRatio
	}
	return math.Min(1, (bestEver-firstBest)/firstBest*0.5+0.5)
}

// StrengthScore blends the average improvement of logged exercises
// (70%) with catalog coverage (30%) into 0..100. Every non-cardio
// catalog exercise counts toward coverage.
func StrengthScore(history models.History, cat *catalog.Catalog) Score {
	var sum float64
	tracked := 0
	total := 0
	for _, def := range cat.All() {
		if def.Kind() == models.KindCardio {
			continue
		}
		total++
		sessions := history[def.ID]
		if len(sessions) == 0 {
			continue
		}
		tracked++
		sum += ImprovementRatio(sessions)
	}
	if total == 0 {
		return Score{}
	}

	var avg float64
	if tracked > 0 {
		avg = sum / float64(tracked)
	}
	coverage := float64(tracked) / float64(total)

	return Score{
		Score:       int(math.Round((avg*0.7 + coverage*0.3) * 100)),
		AvgPct:      math.Round(avg * 100),
		CoveragePct: math.Round(coverage * 100),
		Tracked:     tracked,
		Total:       total,
	}
}
