package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

const (
	// MinPatternSessions is the number of combined sessions needed before
	// any pattern is reported.
	MinPatternSessions = 4
	MaxPatterns        = 8

	timeOfDayShare     = 0.45
	balancedShare      = 0.30
	dominantShare      = 0.70
	coreComboShare     = 0.35
	varietyGroups      = 4
	minDurationSamples = 3
	frequentPerWeek    = 4
	weekdayShare       = 0.70
	weekendShare       = 0.50
)

type Pattern struct {
	Icon   string `json:"icon"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type patternSet struct {
	out  []Pattern
	seen map[string]bool
}

func (p *patternSet) add(icon, title, detail string, args ...any) {
	if p.seen[title] || len(p.out) >= MaxPatterns {
		return
	}
	p.seen[title] = true
	p.out = append(p.out, Pattern{Icon: icon, Title: title, Detail: fmt.Sprintf(detail, args...)})
}

// Patterns reports observed habits in a fixed order, at most
// MaxPatterns with unique titles. Fewer than MinPatternSessions
// strength and cardio sessions yields nothing.
func Patterns(a Activity, cat *catalog.Catalog) []Pattern {
	strength := a.strengthSessions()
	cardio := a.cardioSessions()
	if len(strength)+len(cardio) < MinPatternSessions {
		return nil
	}

	var dates []time.Time
	for _, s := range strength {
		dates = append(dates, s.Date)
	}
	for _, s := range cardio {
		dates = append(dates, s.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	weeks := weeksSpanned(dates[0], dates[len(dates)-1])

	ps := &patternSet{seen: make(map[string]bool)}
	muscles := collectMuscles(strength, cat)
	timeOfDay(ps, dates)
	dominantGroup(ps, muscles)
	legDays(ps, muscles, weeks)
	equipmentMix(ps, strength, cat)
	coreCombos(ps, muscles)
	variety(ps, muscles)
	cardioHabits(ps, cardio, weeks)
	frequency(ps, dates, weeks)
	return ps.out
}

func bucketOf(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 11:
		return "morning"
	case h >= 11 && h < 17:
		return "afternoon"
	case h >= 17 && h < 22:
		return "evening"
	default:
		return "night"
	}
}

var bucketTitles = []struct {
	bucket, icon, title string
}{
	{"morning", "🌅", "Morning lifter"},
	{"afternoon", "☀️", "Afternoon lifter"},
	{"evening", "🌆", "Evening lifter"},
	{"night", "🌙", "Night owl"},
}

func timeOfDay(ps *patternSet, dates []time.Time) {
	counts := make(map[string]int)
	for _, d := range dates {
		counts[bucketOf(d)]++
	}
	for _, b := range bucketTitles {
		share := float64(counts[b.bucket]) / float64(len(dates))
		if share >= timeOfDayShare {
			ps.add(b.icon, b.title, "%d%% of your sessions are in the %s", pct(share), b.bucket)
			return
		}
	}
}

type muscleStats struct {
	groupCounts map[catalog.Group]int
	dayGroups   map[string]map[catalog.Group]bool
}

func collectMuscles(strength []strengthSession, cat *catalog.Catalog) muscleStats {
	st := muscleStats{
		groupCounts: make(map[catalog.Group]int),
		dayGroups:   make(map[string]map[catalog.Group]bool),
	}
	for _, s := range strength {
		g, ok := cat.GroupOfExercise(s.ExerciseID)
		if !ok {
			continue
		}
		st.groupCounts[g]++
		day := utils.DayKey(s.Date)
		if st.dayGroups[day] == nil {
			st.dayGroups[day] = make(map[catalog.Group]bool)
		}
		st.dayGroups[day][g] = true
	}
	return st
}

func dominantGroup(ps *patternSet, st muscleStats) {
	var top catalog.Group
	for _, g := range catalog.Groups {
		if st.groupCounts[g] > st.groupCounts[top] {
			top = g
		}
	}
	if top != "" {
		ps.add("🎯", "Favorite: "+titleCase(string(top)), "%d of your sessions hit %s", st.groupCounts[top], top)
	}
}

func legDays(ps *patternSet, st muscleStats, weeks float64) {
	if len(st.dayGroups) == 0 {
		return
	}
	days := 0
	for _, groups := range st.dayGroups {
		if groups[catalog.Legs] {
			days++
		}
	}
	perWeek := float64(days) / weeks
	switch {
	case perWeek >= 2:
		ps.add("🦵", "Leg day regular", "%.1f leg days per week", perWeek)
	case perWeek >= 1:
		ps.add("🦵", "Weekly leg day", "%.1f leg days per week", perWeek)
	case days > 0:
		ps.add("🦵", "Occasional leg day", "%.1f leg days per week", perWeek)
	default:
		ps.add("🦵", "Skipping leg day", "no leg sessions logged yet")
	}
}

func coreCombos(ps *patternSet, st muscleStats) {
	if len(st.dayGroups) == 0 {
		return
	}
	combos := 0
	for _, groups := range st.dayGroups {
		if groups[catalog.Core] && len(groups) > 1 {
			combos++
		}
	}
	share := float64(combos) / float64(len(st.dayGroups))
	if share >= coreComboShare {
		ps.add("🧱", "Core finisher", "core rides along on %d%% of your training days", pct(share))
	}
}

func variety(ps *patternSet, st muscleStats) {
	trained := 0
	for _, g := range catalog.Groups {
		if st.groupCounts[g] > 0 {
			trained++
		}
	}
	if trained >= varietyGroups {
		ps.add("🌈", "Well-rounded", "you've trained %d muscle groups", trained)
	}
}

func equipmentMix(ps *patternSet, strength []strengthSession, cat *catalog.Catalog) {
	machines, free := 0, 0
	for _, s := range strength {
		def, ok := cat.Lookup(s.ExerciseID)
		if !ok {
			continue
		}
		switch def.Kind() {
		case models.KindMachine:
			machines++
		case models.KindDumbbell, models.KindBarbell:
			free++
		}
	}
	total := machines + free
	if total == 0 {
		return
	}

	mp := float64(machines) / float64(total)
	fp := float64(free) / float64(total)
	switch {
	case mp >= balancedShare && fp >= balancedShare:
		ps.add("⚖️", "Balanced equipment mix", "%d%% machines, %d%% free weights", pct(mp), pct(fp))
	case mp > dominantShare:
		ps.add("🏗️", "Machine focused", "%d%% of your lifts are on machines", pct(mp))
	case fp > dominantShare:
		ps.add("🏋️", "Free-weight focused", "%d%% of your lifts use free weights", pct(fp))
	}
}

func cardioHabits(ps *patternSet, cardio []models.CardioSession, weeks float64) {
	if len(cardio) == 0 {
		return
	}

	perWeek := float64(len(cardio)) / weeks
	switch {
	case perWeek >= 3:
		ps.add("🏃", "Cardio regular", "%.1f cardio sessions per week", perWeek)
	case perWeek >= 1:
		ps.add("🏃", "Weekly cardio", "%.1f cardio sessions per week", perWeek)
	default:
		ps.add("🏃", "Occasional cardio", "%.1f cardio sessions per week", perWeek)
	}

	var durations []float64
	for _, s := range cardio {
		if m := s.TotalMinutes(); m > 0 {
			durations = append(durations, m)
		}
	}
	if len(durations) < minDurationSamples {
		return
	}
	typical := utils.RoundTo(median(durations), 5)
	ps.add("⏱️", fmt.Sprintf("Usually ~%s min", utils.FormatWeight(typical)), "median of %d cardio sessions", len(durations))
}

func frequency(ps *patternSet, dates []time.Time, weeks float64) {
	days := make(map[string]time.Weekday)
	for _, d := range dates {
		days[utils.DayKey(d)] = d.Weekday()
	}

	perWeek := float64(len(days)) / weeks
	switch {
	case perWeek >= frequentPerWeek:
		ps.add("🔥", "Consistent trainer", "%.1f training days per week", perWeek)
	case perWeek >= 2:
		ps.add("📅", "Steady routine", "%.1f training days per week", perWeek)
	default:
		ps.add("🌱", "Building the habit", "%.1f training days per week", perWeek)
	}

	weekend := 0
	for _, wd := range days {
		if wd == time.Saturday || wd == time.Sunday {
			weekend++
		}
	}
	we := float64(weekend) / float64(len(days))
	switch {
	case 1-we >= weekdayShare:
		ps.add("💼", "Weekday warrior", "%d%% of your training days are weekdays", pct(1-we))
	case we >= weekendShare:
		ps.add("🏖️", "Weekend warrior", "%d%% of your training days are weekends", pct(we))
	}
}

func median(vals []float64) float64 {
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

func pct(share float64) int {
	return int(math.Round(share * 100))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
