package session

import (
	"sync"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// DefaultUndoWindow is how long a destructive action stays undoable.
const DefaultUndoWindow = 4 * time.Second

type UndoKind string

const (
	UndoRemoveExercise UndoKind = "removeExercise"
	UndoSwapExercise   UndoKind = "swapExercise"
	UndoRestDay        UndoKind = "restDay"
)

// UndoAction holds what a destructive action replaced. It is a plain
// value so it can be persisted and restored by a later process.
type UndoAction struct {
	Kind      UndoKind  `json:"kind"`
	Label     string    `json:"label"`
	Day       string    `json:"day"`
	ExpiresAt time.Time `json:"expiresAt"`

	// Active is the session a rest day closed.
	Active       *models.ActiveSession   `json:"active,omitempty"`
	Removed      *RemovedEntry           `json:"removed,omitempty"`
	ExerciseID   string                  `json:"exerciseId,omitempty"`
	Record       *models.StrengthSession `json:"record,omitempty"`
	CardioType   string                  `json:"cardioType,omitempty"`
	CardioRecord *models.CardioSession   `json:"cardioRecord,omitempty"`

	// DayEntry is the previous entry for Day when DayEntryTouched is set;
	// nil means there was none.
	DayEntryTouched bool             `json:"dayEntryTouched,omitempty"`
	DayEntry        *models.DayEntry `json:"dayEntry,omitempty"`
	AddedRestDay    bool             `json:"addedRestDay,omitempty"`
}

// RemovedEntry is one session slot taken out by a remove or a swap,
// with everything logged for it.
type RemovedEntry struct {
	Entry  models.SessionEntry  `json:"entry"`
	Index  int                  `json:"index"`
	Sets   []models.LoggedSet   `json:"sets,omitempty"`
	Cardio []models.CardioEntry `json:"cardio,omitempty"`
	Note   string               `json:"note,omitempty"`
	Anchor *models.LoggedSet    `json:"anchor,omitempty"`

	// Replacement is the exercise a swap put in the slot.
	Replacement string `json:"replacement,omitempty"`
}

func (a UndoAction) Expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// UndoBuffer is a single-slot undo. A new push replaces the pending
// action; the pending action commits when its window elapses.
type UndoBuffer struct {
	window time.Duration

	mu      sync.Mutex
	pending *UndoAction
	seq     uint64
	timer   *time.Timer
}

func NewUndoBuffer(window time.Duration) *UndoBuffer {
	if window <= 0 {
		window = DefaultUndoWindow
	}
	return &UndoBuffer{window: window}
}

func (b *UndoBuffer) Window() time.Duration {
	return b.window
}

// Push stamps the action's expiry and makes it the pending action.
func (b *UndoBuffer) Push(a UndoAction, now time.Time) {
	a.ExpiresAt = now.Add(b.window)
	b.arm(a, b.window)
}

// Restore reinstates an action loaded from storage, keeping its original
// expiry. It reports false when the action has already expired.
func (b *UndoBuffer) Restore(a UndoAction, now time.Time) bool {
	if a.Expired(now) {
		return false
	}
	b.arm(a, a.ExpiresAt.Sub(now))
	return true
}

func (b *UndoBuffer) arm(a UndoAction, after time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()
	b.seq++
	seq := b.seq
	b.pending = &a
	b.timer = time.AfterFunc(after, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.seq == seq {
			b.pending = nil
			b.timer = nil
		}
	})
}

// Take removes and returns the pending action if it has not expired.
func (b *UndoBuffer) Take(now time.Time) (UndoAction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pending == nil {
		return UndoAction{}, false
	}
	a := *b.pending
	b.stopLocked()
	b.pending = nil
	b.seq++
	if a.Expired(now) {
		return UndoAction{}, false
	}
	return a, true
}

func (b *UndoBuffer) Pending() (UndoAction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pending == nil {
		return UndoAction{}, false
	}
	return *b.pending, true
}

// Commit drops the pending action.
func (b *UndoBuffer) Commit() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()
	b.pending = nil
	b.seq++
}

// Stop cancels the expiry timer and keeps the pending action, so it can
// be persisted on exit.
func (b *UndoBuffer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

func (b *UndoBuffer) stopLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
