// Package metrics derives statistics from workout history. Every
// function is pure and recomputes from its inputs.
package metrics

import (
	"sort"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// Activity is the read-only input shared by the metrics.
type Activity struct {
	History  models.History
	Cardio   models.CardioHistory
	Days     map[string]models.DayEntry
	RestDays []string
}

// FromState borrows the maps of st without copying.
func FromState(st *models.State) Activity {
	return Activity{
		History:  st.History,
		Cardio:   st.CardioHistory,
		Days:     st.Meta.Days,
		RestDays: st.RestDays,
	}
}

type strengthSession struct {
	ExerciseID string
	models.StrengthSession
}

func (a Activity) strengthSessions() []strengthSession {
	var out []strengthSession
	for id, sessions := range a.History {
		for _, s := range sessions {
			out = append(out, strengthSession{ExerciseID: id, StrengthSession: s})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ExerciseID < out[j].ExerciseID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (a Activity) cardioSessions() []models.CardioSession {
	var out []models.CardioSession
	for _, sessions := range a.Cardio {
		out = append(out, sessions...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// WorkoutDays are the day keys with any logged strength or cardio
// session or a day entry of type workout.
func (a Activity) WorkoutDays() map[string]bool {
	days := make(map[string]bool)
	for _, sessions := range a.History {
		for _, s := range sessions {
			days[utils.DayKey(s.Date)] = true
		}
	}
	for _, sessions := range a.Cardio {
		for _, s := range sessions {
			days[utils.DayKey(s.Date)] = true
		}
	}
	for day, e := range a.Days {
		if e.Type == models.DayWorkout {
			days[day] = true
		}
	}
	return days
}

func (a Activity) restDays() map[string]bool {
	days := make(map[string]bool)
	for _, d := range a.RestDays {
		days[d] = true
	}
	for day, e := range a.Days {
		if e.Type == models.DayRest {
			days[day] = true
		}
	}
	return days
}

func sortedDays(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// weeksSpanned is the span between the first and last day in weeks,
// never less than one.
func weeksSpanned(first, last time.Time) float64 {
	weeks := float64(utils.DaysBetween(first, last)+1) / 7
	if weeks < 1 {
		return 1
	}
	return weeks
}
