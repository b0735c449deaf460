package metrics_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/metrics"
	"github.com/misterclayt0n/liftlog/internal/models"
)

func at(day string, hour int) time.Time {
	t, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		panic(err)
	}
	return t.Add(time.Duration(hour) * time.Hour)
}

func session(day string, hour int, weight float64, reps int) models.StrengthSession {
	return models.StrengthSession{Date: at(day, hour), Sets: []models.LoggedSet{{Weight: weight, Reps: reps}}}
}

func TestStreak(t *testing.T) {
	a := metrics.Activity{History: models.History{
		"bb_squat": {
			session("2024-01-01", 9, 200, 5),
			session("2024-01-02", 9, 200, 5),
			session("2024-01-03", 9, 200, 5),
			session("2024-01-05", 9, 200, 5),
		},
	}}
	res := metrics.Streak(a)
	assert.Equal(t, 3, res.Best)
	assert.Equal(t, 1, res.Current)
	assert.Equal(t, "2024-01-05", res.LastDay)

	// A rest day bridges the gap.
	a.RestDays = []string{"2024-01-04"}
	res = metrics.Streak(a)
	assert.Equal(t, 5, res.Best)
	assert.Equal(t, 5, res.Current)
}

func TestStreakCountsCardioAndDayEntries(t *testing.T) {
	a := metrics.Activity{
		Cardio: models.CardioHistory{"running": {{Date: at("2024-02-01", 7), Entries: []models.CardioEntry{{DurationMin: 30}}}}},
		Days: map[string]models.DayEntry{
			"2024-02-02": {Type: models.DayWorkout, ExerciseIDs: []string{"bb_row"}},
			"2024-02-03": {Type: models.DayRest},
		},
	}
	res := metrics.Streak(a)
	assert.Equal(t, 3, res.Best)
	assert.Equal(t, 3, res.Current)
}

func TestStreakIgnoresRestOnlyHistory(t *testing.T) {
	res := metrics.Streak(metrics.Activity{RestDays: []string{"2024-01-01", "2024-01-02"}})
	assert.Equal(t, metrics.StreakResult{}, res)
	assert.Equal(t, metrics.StreakResult{}, metrics.Streak(metrics.Activity{}))
}

func TestImprovementRatio(t *testing.T) {
	assert.Zero(t, metrics.ImprovementRatio(nil))

	single := []models.StrengthSession{session("2024-01-01", 9, 100, 5)}
	assert.Equal(t, 0.5, metrics.ImprovementRatio(single))

	grown := []models.StrengthSession{
		session("2024-01-08", 9, 150, 5),
		session("2024-01-01", 9, 100, 5),
	}
	assert.InDelta(t, 0.75, metrics.ImprovementRatio(grown), 1e-9)

	doubled := append(grown, session("2024-01-15", 9, 200, 5))
	assert.Equal(t, 1.0, metrics.ImprovementRatio(doubled))

	empty := []models.StrengthSession{{Date: at("2024-01-01", 9)}}
	assert.Equal(t, 0.3, metrics.ImprovementRatio(empty))
}

func TestStrengthScore(t *testing.T) {
	cat := catalog.Default()

	zero := metrics.StrengthScore(models.History{}, cat)
	assert.Equal(t, 0, zero.Score)
	assert.Equal(t, cat.ScoredTotal(), zero.Total)

	h := models.History{
		"bb_squat": {session("2024-01-01", 9, 100, 5), session("2024-02-01", 9, 200, 5)},
		// Cardio never counts toward the score.
		"cardio_running": {session("2024-01-01", 9, 1, 1)},
	}
	s := metrics.StrengthScore(h, cat)
	assert.Equal(t, 1, s.Tracked)
	assert.Equal(t, 100.0, s.AvgPct)
	want := int(math.Round((1.0*0.7 + 1/float64(cat.ScoredTotal())*0.3) * 100))
	assert.Equal(t, want, s.Score)
}

func TestLoadPlates(t *testing.T) {
	cases := []struct {
		target  float64
		perSide []float64
		actual  float64
		display string
	}{
		{225, []float64{45, 45}, 225, "45 + 45 per side"},
		{135, []float64{45}, 135, "45 per side"},
		{185, []float64{45, 25}, 185, "45 + 25 per side"},
		{140, []float64{45, 2.5}, 140, "45 + 2.5 per side"},
		{45, []float64{}, 45, "Empty bar"},
		{44, []float64{}, 45, "Empty bar"},
		{47, []float64{}, 45, "Empty bar"},
	}
	for _, c := range cases {
		got := metrics.LoadPlates(c.target, 45, nil)
		assert.Equal(t, c.perSide, got.PerSide, "target %v", c.target)
		assert.Equal(t, c.actual, got.Actual, "target %v", c.target)
		assert.Equal(t, c.display, got.Display, "target %v", c.target)
	}

	custom := metrics.LoadPlates(100, 20, []float64{10, 20, 0})
	assert.Equal(t, []float64{20, 20}, custom.PerSide)
	assert.Equal(t, 100.0, custom.Actual)
}

func TestMuscleDistribution(t *testing.T) {
	now := at("2024-06-30", 12)
	h := models.History{
		"bb_squat":       {session("2024-06-28", 9, 200, 5), session("2024-06-01", 9, 190, 5)},
		"bb_bench":       {session("2024-06-10", 9, 150, 5)},
		"lat_pulldown":   {session("2024-04-15", 9, 120, 10)},
		"kung_fu":        {session("2024-06-29", 9, 1, 1)},
		"shoulder_press": {session("2023-01-01", 9, 80, 10)},
	}
	cat := catalog.Default()

	week := metrics.MuscleDistribution(h, cat, metrics.Week, now)
	assert.Equal(t, 1, week[catalog.Legs])
	assert.Equal(t, 1, week.Total())
	assert.Len(t, week, len(catalog.Groups))

	month := metrics.MuscleDistribution(h, cat, metrics.Month, now)
	assert.Equal(t, 2, month[catalog.Legs])
	assert.Equal(t, 1, month[catalog.Chest])
	assert.Equal(t, 3, month.Total())

	quarter := metrics.MuscleDistribution(h, cat, metrics.Quarter, now)
	assert.Equal(t, 1, quarter[catalog.Back])
	assert.Equal(t, 0, quarter[catalog.Shoulders])
	assert.Equal(t, 4, quarter.Total())

	_, err := metrics.ParseWindow(14)
	assert.Error(t, err)
	w, err := metrics.ParseWindow(30)
	require.NoError(t, err)
	assert.Equal(t, metrics.Month, w)
}

func TestMuscleDistributionUsesWholeDays(t *testing.T) {
	now := at("2024-06-30", 8)
	h := models.History{
		"bb_squat": {session("2024-06-23", 23, 200, 5), session("2024-06-24", 22, 200, 5)},
		"bb_bench": {session("2024-06-30", 20, 150, 5)},
	}

	week := metrics.MuscleDistribution(h, catalog.Default(), metrics.Week, now)
	assert.Equal(t, 1, week[catalog.Legs], "the first day of the window counts whatever the hour")
	assert.Equal(t, 1, week[catalog.Chest], "later today still counts")
	assert.Equal(t, 2, week.Total())
}

func TestBestSet(t *testing.T) {
	_, ok := metrics.BestSet(nil)
	assert.False(t, ok)

	sessions := []models.StrengthSession{
		{Date: at("2024-01-01", 9), Sets: []models.LoggedSet{{Weight: 125, Reps: 1}, {Weight: 120, Reps: 3}}},
		{Date: at("2024-01-08", 9), Sets: []models.LoggedSet{{Weight: 100, Reps: 10}, {Weight: 0, Reps: 50}}},
	}
	pb, ok := metrics.BestSet(sessions)
	require.True(t, ok)
	assert.Equal(t, models.LoggedSet{Weight: 100, Reps: 10}, pb.Set)
	assert.Equal(t, at("2024-01-08", 9), pb.Date)
	assert.InDelta(t, 133.33, pb.Estimated1RM, 0.01)
}

func TestSummarize(t *testing.T) {
	a := metrics.Activity{
		History: models.History{
			"bb_squat": {session("2024-03-01", 9, 200, 5), session("2024-03-02", 9, 210, 5)},
		},
		Cardio: models.CardioHistory{
			"running": {{Date: at("2024-03-02", 18), Entries: []models.CardioEntry{{DurationMin: 20}, {DurationMin: 10}}}},
		},
	}
	now := at("2024-03-07", 10)

	s := metrics.Summarize(a, now)
	assert.Equal(t, 2, s.WorkoutDays)
	assert.Equal(t, 2, s.StrengthCount)
	assert.Equal(t, 1, s.CardioCount)
	assert.Equal(t, 2050.0, s.TotalVolume)
	assert.Equal(t, 30.0, s.CardioMinutes)
	assert.Equal(t, "2024-03-02", s.LastWorkout)
	assert.Equal(t, 5, s.DaysSince)
	assert.True(t, s.ShowRestPrompt)
	assert.Equal(t, 2, s.Streak.Best)

	a.RestDays = []string{"2024-03-04"}
	s = metrics.Summarize(a, now)
	assert.Equal(t, 1, s.RestDays)
	assert.False(t, s.ShowRestPrompt)

	s = metrics.Summarize(a, at("2024-03-04", 10))
	assert.False(t, s.ShowRestPrompt)

	empty := metrics.Summarize(metrics.Activity{}, now)
	assert.Zero(t, empty.WorkoutDays)
	assert.Empty(t, empty.LastWorkout)
	assert.False(t, empty.ShowRestPrompt)
}
