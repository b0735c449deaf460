package metrics_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/metrics"
	"github.com/misterclayt0n/liftlog/internal/models"
)

// Loading never overshoots the target and misses it by less than one
// pair of the lightest plate.
func TestProperty_PlatesNeverOvershoot(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("bar + plates stays within one small pair of target", prop.ForAll(
		func(target float64) bool {
			load := metrics.LoadPlates(target, 45, nil)
			if load.Actual > target+1e-6 {
				return false
			}
			if target-load.Actual >= 2*2.5 {
				return false
			}
			var side float64
			for i, p := range load.PerSide {
				if i > 0 && p > load.PerSide[i-1] {
					return false
				}
				side += p
			}
			return load.Actual == 45+2*side
		},
		gen.Float64Range(45, 1000),
	))

	properties.TestingRun(t)
}

// The score is always a 0..100 percentage whatever the history.
func TestProperty_ScoreBounded(t *testing.T) {
	cat := catalog.Default()
	defs := cat.All()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

	properties := gopter.NewProperties(nil)
	properties.Property("score stays within 0..100", prop.ForAll(
		func(picks []int, weights []float64) bool {
			h := models.History{}
			for i, p := range picks {
				def := defs[p%len(defs)]
				w := 0.0
				if i < len(weights) {
					w = weights[i]
				}
				h[def.ID] = append(h[def.ID], models.StrengthSession{
					Date: start.AddDate(0, 0, i),
					Sets: []models.LoggedSet{{Weight: w, Reps: 5}},
				})
			}

			s := metrics.StrengthScore(h, cat)
			if s.Score < 0 || s.Score > 100 {
				return false
			}
			for _, sessions := range h {
				r := metrics.ImprovementRatio(sessions)
				if r != 0.3 && (r < 0.5 || r > 1) {
					return false
				}
			}
			return s.Tracked <= s.Total
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
		gen.SliceOf(gen.Float64Range(0, 500)),
	))

	properties.TestingRun(t)
}

// Logging more training never lowers the best streak.
func TestProperty_StreakMonotonic(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

	properties := gopter.NewProperties(nil)
	properties.Property("adding a day keeps or raises the best streak", prop.ForAll(
		func(offsets []int, extra int) bool {
			var sessions []models.StrengthSession
			for _, o := range offsets {
				sessions = append(sessions, models.StrengthSession{
					Date: start.AddDate(0, 0, o),
					Sets: []models.LoggedSet{{Weight: 100, Reps: 5}},
				})
			}
			before := metrics.Streak(metrics.Activity{History: models.History{"bb_squat": sessions}})
			more := append(append([]models.StrengthSession(nil), sessions...), models.StrengthSession{
				Date: start.AddDate(0, 0, extra),
				Sets: []models.LoggedSet{{Weight: 100, Reps: 5}},
			})
			after := metrics.Streak(metrics.Activity{History: models.History{"bb_squat": more}})
			return after.Best >= before.Best && after.Current >= 1 && after.Current <= after.Best
		},
		gen.SliceOf(gen.IntRange(0, 60)),
		gen.IntRange(0, 60),
	))

	properties.TestingRun(t)
}

// A new personal best, with coverage fixed, never lowers the score.
func TestProperty_PersonalBestNeverLowersScore(t *testing.T) {
	cat := catalog.Default()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

	properties := gopter.NewProperties(nil)
	properties.Property("score is non-decreasing in best-ever weight", prop.ForAll(
		func(weights []float64, gain float64, other float64) bool {
			h := models.History{"db_row": {{Date: start, Sets: []models.LoggedSet{{Weight: other, Reps: 8}}}}}
			best := 0.0
			for i, w := range weights {
				h["bb_squat"] = append(h["bb_squat"], models.StrengthSession{
					Date: start.AddDate(0, 0, i),
					Sets: []models.LoggedSet{{Weight: w, Reps: 5}},
				})
				if w > best {
					best = w
				}
			}
			before := metrics.StrengthScore(h, cat)

			h["bb_squat"] = append(h["bb_squat"], models.StrengthSession{
				Date: start.AddDate(0, 0, len(weights)),
				Sets: []models.LoggedSet{{Weight: best + gain, Reps: 5}},
			})
			after := metrics.StrengthScore(h, cat)
			return after.Score >= before.Score && after.Tracked == before.Tracked
		},
		gen.SliceOfN(5, gen.Float64Range(5, 500)),
		gen.Float64Range(0.5, 100),
		gen.Float64Range(5, 500),
	))

	properties.TestingRun(t)
}
