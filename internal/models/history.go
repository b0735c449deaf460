package models

import "time"

type LoggedSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

func (s LoggedSet) Valid() bool {
	return s.Weight > 0 && s.Reps > 0
}

func (s LoggedSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// StrengthSession is the record of one exercise on one calendar day.
type StrengthSession struct {
	Date           time.Time   `json:"date"`
	Sets           []LoggedSet `json:"sets"`
	AnchorWeight   *float64    `json:"anchorWeight,omitempty"`
	AnchorReps     *int        `json:"anchorReps,omitempty"`
	BaselineWeight *float64    `json:"baselineWeight,omitempty"`
	BaselineReps   *int        `json:"baselineReps,omitempty"`
	Note           string      `json:"note,omitempty"`
}

// BestWeight is the heaviest logged set weight of the session.
func (s StrengthSession) BestWeight() float64 {
	var best float64
	for _, set := range s.Sets {
		if set.Weight > best {
			best = set.Weight
		}
	}
	return best
}

// Baseline reads the baseline set from the oldest record. Sessions are
// oldest first.
func Baseline(sessions []StrengthSession) (LoggedSet, bool) {
	if len(sessions) == 0 || sessions[0].BaselineWeight == nil {
		return LoggedSet{}, false
	}
	set := LoggedSet{Weight: *sessions[0].BaselineWeight}
	if sessions[0].BaselineReps != nil {
		set.Reps = *sessions[0].BaselineReps
	}
	return set, true
}

type CardioEntry struct {
	DurationMin  float64  `json:"durationMin"`
	Distance     *float64 `json:"distance,omitempty"`
	DistanceUnit string   `json:"distanceUnit,omitempty"`
	Pace         string   `json:"pace,omitempty"`
	Activity     string   `json:"activity,omitempty"`
	Environment  string   `json:"environment,omitempty"`
	Stroke       string   `json:"stroke,omitempty"`
	Effort       string   `json:"effort,omitempty"`
}

func (e CardioEntry) Valid() bool {
	return e.DurationMin > 0 && (e.Distance == nil || *e.Distance >= 0)
}

// CardioSession is the record of one cardio type on one calendar day.
type CardioSession struct {
	Date    time.Time     `json:"date"`
	Entries []CardioEntry `json:"entries"`
}

func (s CardioSession) TotalMinutes() float64 {
	var total float64
	for _, e := range s.Entries {
		total += e.DurationMin
	}
	return total
}

// History maps an exercise ID to its sessions, oldest first.
type History map[string][]StrengthSession

// CardioHistory maps a cardio exercise ID to its sessions, oldest first.
type CardioHistory map[string][]CardioSession

type DayType string

const (
	DayWorkout DayType = "workout"
	DayRest    DayType = "rest"
)

type DayEntry struct {
	Type        DayType  `json:"type"`
	ExerciseIDs []string `json:"exerciseIds"`
}
