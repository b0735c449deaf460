package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

type SaveOptions struct {
	// Anchor defaults to the heaviest set.
	Anchor *models.LoggedSet
	Note   string
}

// SaveStrength records sets for today outside of a session. A second save
// on the same day replaces the first.
func (t *Tracker) SaveStrength(id string, sets []models.LoggedSet, opts SaveOptions) (models.StrengthSession, error) {
	def, err := t.lookup(id)
	if err != nil {
		return models.StrengthSession{}, err
	}
	if !def.IsStrength() {
		return models.StrengthSession{}, ErrWrongKind
	}
	sets = validSets(sets)
	if len(sets) == 0 {
		return models.StrengthSession{}, ErrInvalidSet
	}

	now := t.clock()
	rec := t.saveStrength(id, sets, opts, now)
	t.markWorkout(utils.DayKey(now), []string{id})
	t.touch(id)
	return rec, nil
}

// SaveCardio records cardio entries for today under a cardio type such
// as "running", or the ID of a cardio exercise.
func (t *Tracker) SaveCardio(kind string, entries []models.CardioEntry) (models.CardioSession, error) {
	def, err := t.cardioDef(kind)
	if err != nil {
		return models.CardioSession{}, err
	}
	entries = validCardio(entries)
	if len(entries) == 0 {
		return models.CardioSession{}, ErrInvalidCardio
	}

	now := t.clock()
	rec := t.saveCardio(cardioType(def), entries, now)
	t.markWorkout(utils.DayKey(now), []string{def.ID})
	t.touch(def.ID)
	return rec, nil
}

func (t *Tracker) cardioDef(kind string) (models.Definition, error) {
	if def, ok := t.cat.Lookup(kind); ok {
		if def.Kind() != models.KindCardio {
			return models.Definition{}, ErrWrongKind
		}
		return def, nil
	}
	for _, def := range t.cat.ByKind(models.KindCardio) {
		if cardioType(def) == kind {
			return def, nil
		}
	}
	return models.Definition{}, fmt.Errorf("%w: %s", ErrUnknownExercise, kind)
}

func (t *Tracker) saveStrength(id string, sets []models.LoggedSet, opts SaveOptions, now time.Time) models.StrengthSession {
	day := utils.DayKey(now)
	existing := t.state.History[id]

	rec := models.StrengthSession{
		Date: now,
		Sets: append([]models.LoggedSet(nil), sets...),
		Note: opts.Note,
	}

	anchor := heaviest(sets)
	if opts.Anchor != nil && opts.Anchor.Valid() {
		anchor = *opts.Anchor
	}
	rec.AnchorWeight = &anchor.Weight
	rec.AnchorReps = &anchor.Reps

	// Only the exercise's first-ever session holds a baseline.
	priorDays := 0
	for _, s := range existing {
		if utils.DayKey(s.Date) != day {
			priorDays++
		}
	}
	if priorDays == 0 {
		w, r := sets[0].Weight, sets[0].Reps
		rec.BaselineWeight, rec.BaselineReps = &w, &r
	}

	t.state.History[id] = putStrength(existing, rec)
	return rec
}

func (t *Tracker) saveCardio(kind string, entries []models.CardioEntry, now time.Time) models.CardioSession {
	rec := models.CardioSession{
		Date:    now,
		Entries: append([]models.CardioEntry(nil), entries...),
	}
	t.state.CardioHistory[kind] = putCardio(t.state.CardioHistory[kind], rec)
	return rec
}

// markWorkout types the day as workout and adds the exercise IDs to it.
// A workout day is never downgraded to rest.
func (t *Tracker) markWorkout(day string, ids []string) {
	if len(ids) == 0 {
		return
	}
	e := t.state.Meta.Days[day]
	e.Type = models.DayWorkout
	for _, id := range ids {
		if !contains(e.ExerciseIDs, id) {
			e.ExerciseIDs = append(e.ExerciseIDs, id)
		}
	}
	t.state.Meta.Days[day] = e
}

// purgeToday removes today's committed records for the exercise and
// stores what it removed in action.
func (t *Tracker) purgeToday(id string, action *UndoAction) bool {
	def, err := t.lookup(id)
	if err != nil {
		return false
	}
	day := action.Day
	purged := false

	if def.Kind() == models.KindCardio {
		kind := cardioType(def)
		if rest, removed, ok := takeCardio(t.state.CardioHistory[kind], day); ok {
			t.setCardio(kind, rest)
			action.CardioType = kind
			action.CardioRecord = &removed
			purged = true
		}
	} else if rest, removed, ok := takeStrength(t.state.History[id], day); ok {
		t.setStrength(id, rest)
		action.Record = &removed
		purged = true
	}

	if e, ok := t.state.Meta.Days[day]; ok && contains(e.ExerciseIDs, id) {
		prev := e
		prev.ExerciseIDs = append([]string(nil), e.ExerciseIDs...)
		action.DayEntryTouched = true
		action.DayEntry = &prev
		t.dropFromDay(day, id)
		purged = true
	}
	return purged
}

// DeleteRecord removes the record for an exercise or cardio type on day.
func (t *Tracker) DeleteRecord(id, day string) error {
	day, err := utils.ParseDay(day)
	if err != nil {
		return err
	}

	if def, err := t.cardioDef(id); err == nil {
		kind := cardioType(def)
		rest, _, ok := takeCardio(t.state.CardioHistory[kind], day)
		if !ok {
			return ErrNoRecord
		}
		t.setCardio(kind, rest)
		t.dropFromDay(day, def.ID)
		return nil
	}

	rest, _, ok := takeStrength(t.state.History[id], day)
	if !ok {
		return ErrNoRecord
	}
	t.setStrength(id, rest)
	t.dropFromDay(day, id)
	return nil
}

func (t *Tracker) dropFromDay(day, id string) {
	e, ok := t.state.Meta.Days[day]
	if !ok {
		return
	}
	var ids []string
	for _, x := range e.ExerciseIDs {
		if x != id {
			ids = append(ids, x)
		}
	}
	e.ExerciseIDs = ids
	if len(ids) > 0 || e.Type == models.DayRest {
		t.state.Meta.Days[day] = e
		return
	}
	if contains(t.state.RestDays, day) {
		t.state.Meta.Days[day] = models.DayEntry{Type: models.DayRest}
		return
	}
	delete(t.state.Meta.Days, day)
}

// LogRestDay marks day (today when empty) as a rest day. A day already
// typed workout keeps its type. Resting today closes the open session.
func (t *Tracker) LogRestDay(day string) error {
	today := t.today()
	if day == "" {
		day = today
	}
	day, err := utils.ParseDay(day)
	if err != nil {
		return err
	}
	if contains(t.state.RestDays, day) {
		return nil
	}

	action := UndoAction{
		Kind:            UndoRestDay,
		Label:           "Rest day " + day,
		Day:             day,
		AddedRestDay:    true,
		DayEntryTouched: true,
	}
	if e, ok := t.state.Meta.Days[day]; ok {
		prev := e
		action.DayEntry = &prev
	}

	t.state.RestDays = append(t.state.RestDays, day)
	sort.Strings(t.state.RestDays)
	if e := t.state.Meta.Days[day]; e.Type != models.DayWorkout {
		t.state.Meta.Days[day] = models.DayEntry{Type: models.DayRest}
	}
	if day == today && t.state.Active != nil {
		action.Active = t.state.Active.Clone()
		t.state.Active = nil
	}

	t.undo.Push(action, t.clock())
	return nil
}

func (t *Tracker) UndoRestDay(day string) error {
	day, err := utils.ParseDay(day)
	if err != nil {
		return err
	}
	if !contains(t.state.RestDays, day) {
		return ErrNotRestDay
	}
	t.state.RestDays = removeDay(t.state.RestDays, day)
	if e, ok := t.state.Meta.Days[day]; ok && e.Type == models.DayRest {
		delete(t.state.Meta.Days, day)
	}
	return nil
}

func (t *Tracker) setStrength(id string, sessions []models.StrengthSession) {
	if len(sessions) == 0 {
		delete(t.state.History, id)
		return
	}
	t.state.History[id] = sessions
}

func (t *Tracker) setCardio(kind string, sessions []models.CardioSession) {
	if len(sessions) == 0 {
		delete(t.state.CardioHistory, kind)
		return
	}
	t.state.CardioHistory[kind] = sessions
}

func cardioType(def models.Definition) string {
	if def.Cardio != nil && def.Cardio.Group != "" {
		return def.Cardio.Group
	}
	return def.ID
}

func validSets(sets []models.LoggedSet) []models.LoggedSet {
	var out []models.LoggedSet
	for _, s := range sets {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

func validCardio(entries []models.CardioEntry) []models.CardioEntry {
	var out []models.CardioEntry
	for _, e := range entries {
		if e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

// heaviest picks the heaviest set, breaking ties on reps.
func heaviest(sets []models.LoggedSet) models.LoggedSet {
	best := sets[0]
	for _, s := range sets[1:] {
		if s.Weight > best.Weight || (s.Weight == best.Weight && s.Reps > best.Reps) {
			best = s
		}
	}
	return best
}

// putStrength replaces the record on rec's day, keeping date order.
func putStrength(sessions []models.StrengthSession, rec models.StrengthSession) []models.StrengthSession {
	rest, _, _ := takeStrength(sessions, utils.DayKey(rec.Date))
	rest = append(rest, rec)
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Date.Before(rest[j].Date) })
	return rest
}

func takeStrength(sessions []models.StrengthSession, day string) ([]models.StrengthSession, models.StrengthSession, bool) {
	var removed models.StrengthSession
	found := false
	out := make([]models.StrengthSession, 0, len(sessions))
	for _, s := range sessions {
		if utils.DayKey(s.Date) == day {
			removed, found = s, true
			continue
		}
		out = append(out, s)
	}
	return out, removed, found
}

func putCardio(sessions []models.CardioSession, rec models.CardioSession) []models.CardioSession {
	rest, _, _ := takeCardio(sessions, utils.DayKey(rec.Date))
	rest = append(rest, rec)
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Date.Before(rest[j].Date) })
	return rest
}

func takeCardio(sessions []models.CardioSession, day string) ([]models.CardioSession, models.CardioSession, bool) {
	var removed models.CardioSession
	found := false
	out := make([]models.CardioSession, 0, len(sessions))
	for _, s := range sessions {
		if utils.DayKey(s.Date) == day {
			removed, found = s, true
			continue
		}
		out = append(out, s)
	}
	return out, removed, found
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func removeDay(days []string, day string) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		if d != day {
			out = append(out, d)
		}
	}
	return out
}
