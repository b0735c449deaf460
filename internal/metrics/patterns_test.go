package metrics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/metrics"
	"github.com/misterclayt0n/liftlog/internal/models"
)

func titles(ps []metrics.Pattern) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func TestPatternsNeedEnoughSessions(t *testing.T) {
	a := metrics.Activity{History: models.History{
		"bb_squat": {session("2024-06-03", 7, 200, 5), session("2024-06-04", 7, 200, 5)},
	}, Cardio: models.CardioHistory{
		"running": {{Date: at("2024-06-05", 7), Entries: []models.CardioEntry{{DurationMin: 30}}}},
	}}
	assert.Empty(t, metrics.Patterns(a, catalog.Default()))
}

func TestPatternsMorningSquatter(t *testing.T) {
	a := metrics.Activity{History: models.History{
		"bb_squat": {
			session("2024-06-03", 7, 200, 5),
			session("2024-06-04", 7, 200, 5),
			session("2024-06-05", 7, 200, 5),
			session("2024-06-06", 7, 200, 5),
		},
	}}

	got := titles(metrics.Patterns(a, catalog.Default()))
	assert.Equal(t, []string{
		"Morning lifter",
		"Favorite: Legs",
		"Leg day regular",
		"Free-weight focused",
		"Consistent trainer",
		"Weekday warrior",
	}, got)
}

func TestPatternsCardioDuration(t *testing.T) {
	cardio := func(day string, minutes float64) models.CardioSession {
		return models.CardioSession{Date: at(day, 18), Entries: []models.CardioEntry{{DurationMin: minutes}}}
	}
	a := metrics.Activity{Cardio: models.CardioHistory{
		"running": {
			cardio("2024-06-01", 28),
			cardio("2024-06-02", 31),
			cardio("2024-06-08", 33),
			cardio("2024-06-09", 45),
		},
	}}

	got := titles(metrics.Patterns(a, catalog.Default()))
	assert.Contains(t, got, "Evening lifter")
	assert.Contains(t, got, "Cardio regular")
	assert.Contains(t, got, "Usually ~30 min")
	assert.Contains(t, got, "Steady routine")
	assert.Contains(t, got, "Weekend warrior")
	assert.NotContains(t, got, "Leg day regular")
}

func TestPatternsAreCappedAndUnique(t *testing.T) {
	ids := []string{"bb_squat", "leg_press", "ab_crunch", "bb_bench", "lat_pulldown", "db_curl", "shoulder_press"}
	h := models.History{}
	days := []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07", "2024-06-10", "2024-06-11"}
	for _, day := range days {
		for _, id := range ids {
			h[id] = append(h[id], session(day, 6, 100, 8))
		}
	}
	cardio := models.CardioHistory{}
	for _, day := range days {
		cardio["running"] = append(cardio["running"], models.CardioSession{
			Date: at(day, 7), Entries: []models.CardioEntry{{DurationMin: 20}},
		})
	}

	ps := metrics.Patterns(metrics.Activity{History: h, Cardio: cardio}, catalog.Default())
	require.Len(t, ps, metrics.MaxPatterns)
	seen := make(map[string]bool)
	for _, p := range ps {
		assert.False(t, seen[p.Title], p.Title)
		seen[p.Title] = true
		assert.NotEmpty(t, p.Icon)
		assert.NotEmpty(t, p.Detail)
	}
	assert.Equal(t, "Morning lifter", ps[0].Title)
}

func dayN(i int) string {
	return fmt.Sprintf("2024-06-%02d", i+1)
}

// repeat logs one session of id on each of the given days.
func repeat(h models.History, id string, hour int, days ...int) {
	for _, d := range days {
		h[id] = append(h[id], session(dayN(d), hour, 100, 8))
	}
}

func span(from, to int) []int {
	var out []int
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func TestPatternsEquipmentMixEdges(t *testing.T) {
	cases := []struct {
		machines, free int
		want           string
		absent         []string
	}{
		{3, 7, "Balanced equipment mix", []string{"Free-weight focused", "Machine focused"}},
		{7, 3, "Balanced equipment mix", []string{"Free-weight focused", "Machine focused"}},
		{2, 8, "Free-weight focused", []string{"Balanced equipment mix"}},
		{8, 2, "Machine focused", []string{"Balanced equipment mix"}},
	}
	for _, c := range cases {
		h := models.History{}
		repeat(h, "chest_press", 7, span(0, c.machines)...)
		repeat(h, "bb_bench", 7, span(c.machines, c.machines+c.free)...)

		got := titles(metrics.Patterns(metrics.Activity{History: h}, catalog.Default()))
		assert.Contains(t, got, c.want, "%d machines, %d free", c.machines, c.free)
		for _, title := range c.absent {
			assert.NotContains(t, got, title, "%d machines, %d free", c.machines, c.free)
		}
	}
}

func TestPatternsTimeOfDayEdge(t *testing.T) {
	build := func(morning int) []string {
		h := models.History{}
		repeat(h, "bb_squat", 7, span(0, morning)...)
		repeat(h, "bb_squat", 13, span(morning, 14)...)
		repeat(h, "bb_squat", 19, span(14, 20)...)
		return titles(metrics.Patterns(metrics.Activity{History: h}, catalog.Default()))
	}

	assert.Contains(t, build(9), "Morning lifter", "9 of 20 is 45%")

	got := build(8)
	for _, title := range []string{"Morning lifter", "Afternoon lifter", "Evening lifter", "Night owl"} {
		assert.NotContains(t, got, title, "no bucket reaches 45%")
	}
}

func TestPatternsCoreComboEdge(t *testing.T) {
	build := func(combos int, coreAlone bool) []string {
		h := models.History{}
		repeat(h, "ab_crunch", 7, span(0, combos)...)
		if coreAlone {
			repeat(h, "bb_squat", 7, span(combos, 20)...)
		} else {
			repeat(h, "bb_squat", 7, span(0, 20)...)
		}
		return titles(metrics.Patterns(metrics.Activity{History: h}, catalog.Default()))
	}

	assert.Contains(t, build(7, false), "Core finisher", "7 of 20 days is 35%")
	assert.NotContains(t, build(6, false), "Core finisher", "6 of 20 days is 30%")
	assert.NotContains(t, build(7, true), "Core finisher", "core on its own is not a combo")
}

func TestPatternsVarietyEdge(t *testing.T) {
	three := models.History{}
	repeat(three, "chest_press", 7, 0, 1)
	repeat(three, "lat_pulldown", 7, 2)
	repeat(three, "leg_press", 7, 3)
	assert.NotContains(t, titles(metrics.Patterns(metrics.Activity{History: three}, catalog.Default())), "Well-rounded")

	four := models.History{}
	repeat(four, "chest_press", 7, 0)
	repeat(four, "lat_pulldown", 7, 1)
	repeat(four, "leg_press", 7, 2)
	repeat(four, "ab_crunch", 7, 3)
	assert.Contains(t, titles(metrics.Patterns(metrics.Activity{History: four}, catalog.Default())), "Well-rounded")
}
