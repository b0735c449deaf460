// Package session implements the workout lifecycle: an idle day gets a
// draft, a started draft becomes active, and finishing commits the
// logged sets to history.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// Tracker mutates a State. It is not safe for concurrent use.
type Tracker struct {
	state *models.State
	cat   *catalog.Catalog
	clock utils.Clock
	undo  *UndoBuffer
	newID func() string
}

func New(st *models.State, cat *catalog.Catalog, clock utils.Clock, undo *UndoBuffer) *Tracker {
	if clock == nil {
		clock = utils.SystemClock
	}
	if undo == nil {
		undo = NewUndoBuffer(DefaultUndoWindow)
	}
	st.EnsureMaps()
	return &Tracker{
		state: st,
		cat:   cat,
		clock: clock,
		undo:  undo,
		newID: uuid.NewString,
	}
}

func (t *Tracker) State() *models.State { return t.state }
func (t *Tracker) Undo() *UndoBuffer { return t.undo }

func (t *Tracker) today() string {
	return utils.DayKey(t.clock())
}

func (t *Tracker) Status() models.Status {
	if t.state.Active == nil {
		return models.StatusIdle
	}
	return t.state.Active.Status
}

// Active returns the open session, or nil when idle.
func (t *Tracker) Active() *models.ActiveSession {
	return t.state.Active
}

func (t *Tracker) lookup(id string) (models.Definition, error) {
	def, ok := t.cat.Lookup(id)
	if !ok {
		return models.Definition{}, fmt.Errorf("%w: %s", ErrUnknownExercise, id)
	}
	return def, nil
}

// NewSession opens a draft for today holding the given exercises.
func (t *Tracker) NewSession(source string, ids ...string) error {
	if t.state.Active != nil {
		return ErrSessionExists
	}

	var entries []models.SessionEntry
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		entry, err := t.cat.Entry(id)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownExercise, id)
		}
		entries = append(entries, entry)
	}

	now := t.clock()
	s := models.NewActiveSession(t.newID(), utils.DayKey(now), source, now)
	s.Entries = entries
	t.state.Active = s
	logrus.WithFields(logrus.Fields{"session": s.ID, "exercises": len(entries)}).Debug("draft created")
	return nil
}

func (t *Tracker) ApplyTemplate(id string) error {
	tpl, ok := t.cat.Template(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, id)
	}
	return t.NewSession("template:"+tpl.ID, tpl.ExerciseIDs...)
}

func (t *Tracker) ApplyPlan(split catalog.Split, gym catalog.GymType) error {
	ids, err := catalog.GeneratePlan(split, gym)
	if err != nil {
		return err
	}
	return t.NewSession("plan:"+string(split), ids...)
}

// Start moves a draft to active. The day entry is written at finish.
func (t *Tracker) Start() error {
	s := t.state.Active
	if s == nil {
		return ErrNoSession
	}
	if s.Status != models.StatusDraft {
		return ErrNotDraft
	}
	now := t.clock()
	s.Status = models.StatusActive
	s.StartedAt = &now
	return nil
}

func (t *Tracker) open() (*models.ActiveSession, error) {
	if t.state.Active == nil {
		return nil, ErrNoSession
	}
	t.state.Active.EnsureMaps()
	return t.state.Active, nil
}

func (t *Tracker) started() (*models.ActiveSession, error) {
	s, err := t.open()
	if err != nil {
		return nil, err
	}
	if s.Status != models.StatusActive {
		return nil, ErrNotActive
	}
	return s, nil
}

func (t *Tracker) AddExercise(id string) error {
	s, err := t.open()
	if err != nil {
		return err
	}
	entry, err := t.cat.Entry(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownExercise, id)
	}
	if s.IndexOf(id) >= 0 {
		return ErrAlreadyInSession
	}
	s.Entries = append(s.Entries, entry)
	return nil
}

// RemoveExercise drops an exercise and anything logged for it today,
// including a record already committed for today. Removing logged work
// is undoable.
func (t *Tracker) RemoveExercise(id string) error {
	s, err := t.open()
	if err != nil {
		return err
	}
	idx := s.IndexOf(id)
	if idx < 0 {
		return ErrNotInSession
	}

	removed := takeEntry(s, idx)
	action := UndoAction{
		Kind:       UndoRemoveExercise,
		Label:      "Removed " + removed.Entry.Name,
		Day:        t.today(),
		Removed:    &removed,
		ExerciseID: id,
	}
	logged := len(removed.Sets) > 0 || len(removed.Cardio) > 0

	s.Entries = append(s.Entries[:idx], s.Entries[idx+1:]...)
	dropLogged(s, id)

	if t.purgeToday(id, &action) {
		logged = true
	}
	if logged {
		t.undo.Push(action, t.clock())
	}
	return nil
}

// SwapExercise replaces one exercise with another in the same slot. Sets
// logged for the old exercise are dropped.
func (t *Tracker) SwapExercise(oldID, newID string) error {
	s, err := t.open()
	if err != nil {
		return err
	}
	idx := s.IndexOf(oldID)
	if idx < 0 {
		return ErrNotInSession
	}
	if s.IndexOf(newID) >= 0 {
		return ErrAlreadyInSession
	}
	entry, err := t.cat.Entry(newID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownExercise, newID)
	}

	if s.EntryLogged(oldID) {
		removed := takeEntry(s, idx)
		removed.Replacement = newID
		t.undo.Push(UndoAction{
			Kind:       UndoSwapExercise,
			Label:      fmt.Sprintf("Swapped %s for %s", removed.Entry.Name, entry.Name),
			Day:        t.today(),
			Removed:    &removed,
			ExerciseID: oldID,
		}, t.clock())
	}
	s.Entries[idx] = entry
	dropLogged(s, oldID)
	return nil
}

// takeEntry copies the slot at idx and everything logged for it.
func takeEntry(s *models.ActiveSession, idx int) RemovedEntry {
	e := s.Entries[idx]
	r := RemovedEntry{
		Entry:  e,
		Index:  idx,
		Sets:   append([]models.LoggedSet(nil), s.Sets[e.ExerciseID]...),
		Cardio: append([]models.CardioEntry(nil), s.Cardio[e.ExerciseID]...),
		Note:   s.Notes[e.ExerciseID],
	}
	if a, ok := s.Anchors[e.ExerciseID]; ok {
		r.Anchor = &a
	}
	return r
}

// restoreEntry puts a removed slot back into today's session. Work logged
// since the removal is kept: a swap replacement with logged sets stays in
// the session next to the restored exercise.
func (t *Tracker) restoreEntry(day string, r RemovedEntry) {
	s := t.state.Active
	if s == nil || s.Date != day {
		return
	}
	s.EnsureMaps()
	id := r.Entry.ExerciseID

	if r.Replacement != "" {
		if j := s.IndexOf(r.Replacement); j >= 0 && !s.EntryLogged(r.Replacement) {
			s.Entries = append(s.Entries[:j], s.Entries[j+1:]...)
			dropLogged(s, r.Replacement)
		}
	}
	if s.IndexOf(id) < 0 {
		idx := min(max(r.Index, 0), len(s.Entries))
		s.Entries = append(s.Entries[:idx], append([]models.SessionEntry{r.Entry}, s.Entries[idx:]...)...)
	}

	if len(r.Sets) > 0 {
		s.Sets[id] = append(append([]models.LoggedSet(nil), r.Sets...), s.Sets[id]...)
	}
	if len(r.Cardio) > 0 {
		s.Cardio[id] = append(append([]models.CardioEntry(nil), r.Cardio...), s.Cardio[id]...)
	}
	if r.Note != "" && s.Notes[id] == "" {
		s.Notes[id] = r.Note
	}
	if _, ok := s.Anchors[id]; r.Anchor != nil && !ok {
		s.Anchors[id] = *r.Anchor
	}
}

func dropLogged(s *models.ActiveSession, id string) {
	delete(s.Sets, id)
	delete(s.Cardio, id)
	delete(s.Notes, id)
	delete(s.Anchors, id)
}

// LogSet appends a set and returns its position.
func (t *Tracker) LogSet(id string, weight float64, reps int) (int, error) {
	s, err := t.started()
	if err != nil {
		return 0, err
	}
	if err := t.strengthEntry(s, id); err != nil {
		return 0, err
	}
	set := models.LoggedSet{Weight: weight, Reps: reps}
	if !set.Valid() {
		return 0, ErrInvalidSet
	}
	s.Sets[id] = append(s.Sets[id], set)
	return len(s.Sets[id]) - 1, nil
}

func (t *Tracker) UpdateSet(id string, idx int, weight float64, reps int) error {
	s, err := t.started()
	if err != nil {
		return err
	}
	if err := t.strengthEntry(s, id); err != nil {
		return err
	}
	if idx < 0 || idx >= len(s.Sets[id]) {
		return ErrNoSuchSet
	}
	set := models.LoggedSet{Weight: weight, Reps: reps}
	if !set.Valid() {
		return ErrInvalidSet
	}
	s.Sets[id][idx] = set
	return nil
}

func (t *Tracker) DeleteSet(id string, idx int) error {
	s, err := t.started()
	if err != nil {
		return err
	}
	sets := s.Sets[id]
	if idx < 0 || idx >= len(sets) {
		return ErrNoSuchSet
	}
	s.Sets[id] = append(sets[:idx], sets[idx+1:]...)
	if len(s.Sets[id]) == 0 {
		delete(s.Sets, id)
	}
	return nil
}

func (t *Tracker) strengthEntry(s *models.ActiveSession, id string) error {
	idx := s.IndexOf(id)
	if idx < 0 {
		return ErrNotInSession
	}
	if s.Entries[idx].Kind != models.EntryStrength {
		return ErrWrongKind
	}
	return nil
}

func (t *Tracker) LogCardio(id string, entry models.CardioEntry) error {
	s, err := t.started()
	if err != nil {
		return err
	}
	idx := s.IndexOf(id)
	if idx < 0 {
		return ErrNotInSession
	}
	if s.Entries[idx].Kind != models.EntryCardio {
		return ErrWrongKind
	}
	if !entry.Valid() {
		return ErrInvalidCardio
	}
	s.Cardio[id] = append(s.Cardio[id], entry)
	return nil
}

// SetNote attaches a note to an exercise; an empty note clears it.
func (t *Tracker) SetNote(id, note string) error {
	s, err := t.open()
	if err != nil {
		return err
	}
	if s.IndexOf(id) < 0 {
		return ErrNotInSession
	}
	if note == "" {
		delete(s.Notes, id)
		return nil
	}
	s.Notes[id] = note
	return nil
}

// SetAnchor pins the set saved as the exercise's anchor at finish.
func (t *Tracker) SetAnchor(id string, set models.LoggedSet) error {
	s, err := t.open()
	if err != nil {
		return err
	}
	if err := t.strengthEntry(s, id); err != nil {
		return err
	}
	if !set.Valid() {
		return ErrInvalidSet
	}
	s.Anchors[id] = set
	return nil
}

type FinishResult struct {
	Day         string
	ExerciseIDs []string
	Sets        int
	Cardio      int
}

func (r FinishResult) Empty() bool {
	return len(r.ExerciseIDs) == 0
}

// Finish commits today's logged work. With nothing logged no record or
// day entry is written; an active session is cleared and a draft is
// left alone.
func (t *Tracker) Finish() (FinishResult, error) {
	s, err := t.open()
	if err != nil {
		return FinishResult{}, err
	}
	now := t.clock()
	res := FinishResult{Day: utils.DayKey(now)}

	if !s.HasLogged() {
		if s.Status == models.StatusActive {
			t.state.Active = nil
			t.undo.Commit()
		}
		return res, nil
	}

	for _, e := range s.Entries {
		id := e.ExerciseID
		switch e.Kind {
		case models.EntryStrength:
			sets := validSets(s.Sets[id])
			if len(sets) == 0 {
				continue
			}
			opts := SaveOptions{Note: s.Notes[id]}
			if a, ok := s.Anchors[id]; ok {
				opts.Anchor = &a
			}
			t.saveStrength(id, sets, opts, now)
			res.Sets += len(sets)
		case models.EntryCardio:
			entries := validCardio(s.Cardio[id])
			if len(entries) == 0 {
				continue
			}
			def, err := t.lookup(id)
			if err != nil {
				return FinishResult{}, err
			}
			t.saveCardio(cardioType(def), entries, now)
			res.Cardio += len(entries)
		}
		res.ExerciseIDs = append(res.ExerciseIDs, id)
	}

	t.markWorkout(res.Day, res.ExerciseIDs)
	for _, id := range res.ExerciseIDs {
		t.touch(id)
	}
	t.state.Active = nil
	t.undo.Commit()

	logrus.WithFields(logrus.Fields{
		"session":   s.ID,
		"exercises": len(res.ExerciseIDs),
		"sets":      res.Sets,
	}).Info("session finished")
	return res, nil
}

// Cancel discards the session. Logged work needs confirm.
func (t *Tracker) Cancel(confirm bool) error {
	s, err := t.open()
	if err != nil {
		return err
	}
	if s.HasLogged() && !confirm {
		return ErrConfirmDiscard
	}
	t.state.Active = nil
	t.undo.Commit()
	return nil
}

// UndoLast reverts the pending undoable action.
func (t *Tracker) UndoLast() (UndoAction, error) {
	a, ok := t.undo.Take(t.clock())
	if !ok {
		return UndoAction{}, ErrNothingToUndo
	}

	if a.Active != nil && t.state.Active == nil {
		t.state.Active = a.Active.Clone()
	}
	if a.Removed != nil {
		t.restoreEntry(a.Day, *a.Removed)
	}
	if a.Record != nil {
		t.state.History[a.ExerciseID] = putStrength(t.state.History[a.ExerciseID], *a.Record)
	}
	if a.CardioRecord != nil {
		t.state.CardioHistory[a.CardioType] = putCardio(t.state.CardioHistory[a.CardioType], *a.CardioRecord)
	}
	if a.AddedRestDay {
		t.state.RestDays = removeDay(t.state.RestDays, a.Day)
	}
	if a.DayEntryTouched {
		if a.DayEntry != nil {
			t.state.Meta.Days[a.Day] = *a.DayEntry
		} else {
			delete(t.state.Meta.Days, a.Day)
		}
	}
	return a, nil
}

const maxRecent = 10

func (t *Tracker) touch(id string) {
	recent := []string{id}
	for _, r := range t.state.Meta.Recent {
		if r != id && len(recent) < maxRecent {
			recent = append(recent, r)
		}
	}
	t.state.Meta.Recent = recent
	t.state.Meta.Usage[id]++
}

func (t *Tracker) Pin(id string, pinned bool) error {
	if _, err := t.lookup(id); err != nil {
		return err
	}
	out := make([]string, 0, len(t.state.Meta.Pinned)+1)
	for _, p := range t.state.Meta.Pinned {
		if p != id {
			out = append(out, p)
		}
	}
	if pinned {
		out = append(out, id)
	}
	t.state.Meta.Pinned = out
	return nil
}
