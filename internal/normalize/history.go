package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
)

type rawSet struct {
	Weight *number `json:"weight"`
	Reps   *number `json:"reps"`
}

type rawStrength struct {
	Date           string            `json:"date"`
	Sets           []json.RawMessage `json:"sets"`
	AnchorWeight   *number           `json:"anchorWeight"`
	AnchorReps     *number           `json:"anchorReps"`
	BaselineWeight *number           `json:"baselineWeight"`
	BaselineReps   *number           `json:"baselineReps"`
	Note           string            `json:"note"`
}

func positiveFloat(n *number) *float64 {
	if n == nil || *n <= 0 {
		return nil
	}
	f := float64(*n)
	return &f
}

func positiveInt(n *number) *int {
	if n == nil || *n < 1 {
		return nil
	}
	i := int(*n)
	return &i
}

// Strength parses one strength session. Sets without positive weight
// and reps are dropped; a session left with no sets is discarded.
func Strength(raw json.RawMessage) Parsed[models.StrengthSession] {
	if !IsObject(raw) {
		return discard[models.StrengthSession]("not an object")
	}
	var r rawStrength
	if err := json.Unmarshal(raw, &r); err != nil {
		return discard[models.StrengthSession]("malformed session: %v", err)
	}
	date, err := parseDate(r.Date)
	if err != nil {
		return discard[models.StrengthSession]("%v", err)
	}

	s := models.StrengthSession{
		Date:           date,
		AnchorWeight:   positiveFloat(r.AnchorWeight),
		AnchorReps:     positiveInt(r.AnchorReps),
		BaselineWeight: positiveFloat(r.BaselineWeight),
		BaselineReps:   positiveInt(r.BaselineReps),
		Note:           strings.TrimSpace(r.Note),
	}
	for _, rs := range r.Sets {
		var set rawSet
		if err := json.Unmarshal(rs, &set); err != nil || set.Weight == nil || set.Reps == nil {
			continue
		}
		ls := models.LoggedSet{Weight: float64(*set.Weight), Reps: int(*set.Reps)}
		if ls.Valid() {
			s.Sets = append(s.Sets, ls)
		}
	}
	if len(s.Sets) == 0 {
		return discard[models.StrengthSession]("no valid sets")
	}
	return Parsed[models.StrengthSession]{Record: s}
}

type rawCardioEntry struct {
	DurationMin  *number `json:"durationMin"`
	Duration     *number `json:"duration"`
	Distance     *number `json:"distance"`
	DistanceUnit string  `json:"distanceUnit"`
	Pace         string  `json:"pace"`
	Activity     string  `json:"activity"`
	Environment  string  `json:"environment"`
	Stroke       string  `json:"stroke"`
	Effort       string  `json:"effort"`
}

type rawCardio struct {
	Date    string            `json:"date"`
	Entries []json.RawMessage `json:"entries"`
}

// Cardio parses one cardio session. Entries without a positive duration
// are dropped; a session left empty is discarded.
func Cardio(raw json.RawMessage) Parsed[models.CardioSession] {
	if !IsObject(raw) {
		return discard[models.CardioSession]("not an object")
	}
	var r rawCardio
	if err := json.Unmarshal(raw, &r); err != nil {
		return discard[models.CardioSession]("malformed session: %v", err)
	}
	date, err := parseDate(r.Date)
	if err != nil {
		return discard[models.CardioSession]("%v", err)
	}

	s := models.CardioSession{Date: date}
	for _, re := range r.Entries {
		var e rawCardioEntry
		if err := json.Unmarshal(re, &e); err != nil {
			continue
		}
		dur := e.DurationMin
		if dur == nil {
			dur = e.Duration
		}
		if dur == nil || *dur <= 0 {
			continue
		}
		entry := models.CardioEntry{
			DurationMin:  float64(*dur),
			DistanceUnit: e.DistanceUnit,
			Pace:         e.Pace,
			Activity:     e.Activity,
			Environment:  e.Environment,
			Stroke:       e.Stroke,
			Effort:       e.Effort,
		}
		if e.Distance != nil && *e.Distance > 0 {
			d := float64(*e.Distance)
			entry.Distance = &d
		}
		s.Entries = append(s.Entries, entry)
	}
	if len(s.Entries) == 0 {
		return discard[models.CardioSession]("no valid entries")
	}
	return Parsed[models.CardioSession]{Record: s}
}

func parseMap[T any](raw json.RawMessage, field string, parse func(json.RawMessage) Parsed[T], date func(T) time.Time) (map[string][]T, []Discard, error) {
	entries, err := objectEntries(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", field, err)
	}

	out := make(map[string][]T, len(entries))
	var discarded []Discard
	for _, key := range sortedKeys(entries) {
		list, err := recordList(entries[key])
		if err != nil {
			discarded = append(discarded, Discard{Key: key, Index: -1, Reason: err.Error()})
			continue
		}
		var records []T
		for i, item := range list {
			p := parse(item)
			if !p.Valid() {
				discarded = append(discarded, Discard{Key: key, Index: i, Reason: p.Reason})
				continue
			}
			records = append(records, p.Record)
		}
		if len(records) > 0 {
			out[key] = collapseByDay(records, date)
		}
	}
	return out, discarded, nil
}

// History parses an exercise-id keyed map of strength sessions. Only a
// non-object top level is an error.
func History(raw json.RawMessage) (Result[models.History], error) {
	m, discarded, err := parseMap(raw, "history", Strength, func(s models.StrengthSession) time.Time { return s.Date })
	if err != nil {
		return Result[models.History]{}, err
	}
	return Result[models.History]{Records: models.History(m), Discarded: discarded}, nil
}

// CardioHistory parses a cardio-type keyed map of cardio sessions.
func CardioHistory(raw json.RawMessage) (Result[models.CardioHistory], error) {
	m, discarded, err := parseMap(raw, "cardioHistory", Cardio, func(s models.CardioSession) time.Time { return s.Date })
	if err != nil {
		return Result[models.CardioHistory]{}, err
	}
	return Result[models.CardioHistory]{Records: models.CardioHistory(m), Discarded: discarded}, nil
}
