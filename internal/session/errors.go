package session

import "errors"

var (
	ErrSessionExists    = errors.New("a session is already open for today")
	ErrNoSession        = errors.New("no session in progress")
	ErrNotDraft         = errors.New("session has already started")
	ErrNotActive        = errors.New("session has not started")
	ErrUnknownExercise  = errors.New("unknown exercise")
	ErrUnknownTemplate  = errors.New("unknown template")
	ErrNotInSession     = errors.New("exercise is not in the session")
	ErrAlreadyInSession = errors.New("exercise is already in the session")
	ErrWrongKind        = errors.New("exercise does not take this kind of entry")
	ErrInvalidSet       = errors.New("weight and reps must be positive")
	ErrInvalidCardio    = errors.New("cardio duration must be positive")
	ErrNoSuchSet        = errors.New("no set at that position")
	ErrConfirmDiscard   = errors.New("session has logged sets, confirm to discard")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNoRecord         = errors.New("no record for that day")
	ErrNotRestDay       = errors.New("day is not a rest day")
)
