package metrics

import (
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// RestPromptAfter is how many idle days pass before suggesting a rest
// day be logged.
const RestPromptAfter = 4

type PersonalBest struct {
	Set  models.LoggedSet `json:"set"`
	Date time.Time        `json:"date"`
	// Estimated1RM uses the Epley formula.
	Estimated1RM float64 `json:"estimated1RM"`
}

// BestSet returns the set with the highest estimated one-rep max.
func BestSet(sessions []models.StrengthSession) (PersonalBest, bool) {
	var best PersonalBest
	found := false
	for _, s := range sessions {
		for _, set := range s.Sets {
			if !set.Valid() {
				continue
			}
			orm := utils.CalculateEpley1RM(set.Weight, set.Reps)
			if !found || orm > best.Estimated1RM {
				best = PersonalBest{Set: set, Date: s.Date, Estimated1RM: orm}
				found = true
			}
		}
	}
	return best, found
}

type Summary struct {
	WorkoutDays    int          `json:"workoutDays"`
	StrengthCount  int          `json:"strengthCount"`
	CardioCount    int          `json:"cardioCount"`
	TotalVolume    float64      `json:"totalVolume"`
	CardioMinutes  float64      `json:"cardioMinutes"`
	LastWorkout    string       `json:"lastWorkout,omitempty"`
	DaysSince      int          `json:"daysSince"`
	RestDays       int          `json:"restDays"`
	ShowRestPrompt bool         `json:"showRestPrompt"`
	Streak         StreakResult `json:"streak"`
}

// Summarize totals the activity as of now. ShowRestPrompt is set when
// the last workout is RestPromptAfter or more days old and no rest day
// was logged since.
func Summarize(a Activity, now time.Time) Summary {
	s := Summary{Streak: Streak(a)}

	for _, sessions := range a.History {
		for _, sess := range sessions {
			s.StrengthCount++
			for _, set := range sess.Sets {
				s.TotalVolume += set.Volume()
			}
		}
	}
	for _, sessions := range a.Cardio {
		for _, sess := range sessions {
			s.CardioCount++
			s.CardioMinutes += sess.TotalMinutes()
		}
	}

	workouts := sortedDays(a.WorkoutDays())
	rests := sortedDays(a.restDays())
	s.WorkoutDays = len(workouts)
	s.RestDays = len(rests)
	if len(workouts) == 0 {
		return s
	}

	s.LastWorkout = workouts[len(workouts)-1]
	last, err := utils.ParseDayKey(s.LastWorkout)
	if err != nil {
		return s
	}
	s.DaysSince = utils.DaysBetween(last, now)

	restedSince := len(rests) > 0 && rests[len(rests)-1] > s.LastWorkout
	s.ShowRestPrompt = s.DaysSince >= RestPromptAfter && !restedSince
	return s
}
