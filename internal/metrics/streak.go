package metrics

import "github.com/misterclayt0n/liftlog/internal/utils"

type StreakResult struct {
	Current int `json:"current"`
	Best    int `json:"best"`
	// LastDay is the most recent marked day, empty without history.
	LastDay string `json:"lastDay,omitempty"`
}

// Streak counts runs of consecutive marked days, where a day is marked by
// a workout or an explicit rest day. Current is the run ending at the
// most recent marked day. Rest days alone never start a streak.
func Streak(a Activity) StreakResult {
	workouts := a.WorkoutDays()
	if len(workouts) == 0 {
		return StreakResult{}
	}

	marked := make(map[string]bool, len(workouts))
	for d := range workouts {
		marked[d] = true
	}
	for d := range a.restDays() {
		marked[d] = true
	}
	days := sortedDays(marked)

	var res StreakResult
	run := 0
	var prev string
	for _, d := range days {
		if prev != "" && consecutive(prev, d) {
			run++
		} else {
			run = 1
		}
		if run > res.Best {
			res.Best = run
		}
		prev = d
	}
	res.Current = run
	res.LastDay = prev
	return res
}

func consecutive(a, b string) bool {
	ta, err := utils.ParseDayKey(a)
	if err != nil {
		return false
	}
	tb, err := utils.ParseDayKey(b)
	if err != nil {
		return false
	}
	return utils.DaysBetween(ta, tb) == 1
}
