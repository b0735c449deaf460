package models

import "time"

type Status string

const (
	StatusIdle   Status = "idle"
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
)

type EntryKind string

const (
	EntryStrength EntryKind = "strength"
	EntryCardio   EntryKind = "cardio"
)

type SessionEntry struct {
	ExerciseID string    `json:"exerciseId"`
	Name       string    `json:"name"`
	Muscle     string    `json:"muscle"`
	Kind       EntryKind `json:"kind"`
}

// ActiveSession is today's draft or in-progress workout.
type ActiveSession struct {
	ID        string                   `json:"id"`
	Date      string                   `json:"date"`
	Status    Status                   `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
	StartedAt *time.Time               `json:"startedAt,omitempty"`
	Source    string                   `json:"source,omitempty"`
	Entries   []SessionEntry           `json:"entries"`
	Sets      map[string][]LoggedSet   `json:"sets"`
	Cardio    map[string][]CardioEntry `json:"cardio,omitempty"`
	Notes     map[string]string        `json:"notes,omitempty"`
	Anchors   map[string]LoggedSet     `json:"anchors,omitempty"`
}

func NewActiveSession(id, day, source string, now time.Time) *ActiveSession {
	return &ActiveSession{
		ID:        id,
		Date:      day,
		Status:    StatusDraft,
		CreatedAt: now,
		Source:    source,
		Sets:      make(map[string][]LoggedSet),
		Cardio:    make(map[string][]CardioEntry),
		Notes:     make(map[string]string),
		Anchors:   make(map[string]LoggedSet),
	}
}

// EnsureMaps initializes maps that may be missing after decoding.
func (s *ActiveSession) EnsureMaps() {
	if s.Sets == nil {
		s.Sets = make(map[string][]LoggedSet)
	}
	if s.Cardio == nil {
		s.Cardio = make(map[string][]CardioEntry)
	}
	if s.Notes == nil {
		s.Notes = make(map[string]string)
	}
	if s.Anchors == nil {
		s.Anchors = make(map[string]LoggedSet)
	}
}

func (s *ActiveSession) IndexOf(exerciseID string) int {
	for i, e := range s.Entries {
		if e.ExerciseID == exerciseID {
			return i
		}
	}
	return -1
}

// HasLogged reports whether any set or cardio entry was logged.
func (s *ActiveSession) HasLogged() bool {
	for _, sets := range s.Sets {
		if len(sets) > 0 {
			return true
		}
	}
	for _, entries := range s.Cardio {
		if len(entries) > 0 {
			return true
		}
	}
	return false
}

// EntryLogged reports whether anything was logged for one exercise.
func (s *ActiveSession) EntryLogged(exerciseID string) bool {
	return len(s.Sets[exerciseID]) > 0 || len(s.Cardio[exerciseID]) > 0
}

func (s *ActiveSession) Clone() *ActiveSession {
	if s == nil {
		return nil
	}
	c := *s
	c.Entries = append([]SessionEntry(nil), s.Entries...)
	if s.StartedAt != nil {
		t := *s.StartedAt
		c.StartedAt = &t
	}
	c.Sets = make(map[string][]LoggedSet, len(s.Sets))
	for k, v := range s.Sets {
		c.Sets[k] = append([]LoggedSet(nil), v...)
	}
	c.Cardio = make(map[string][]CardioEntry, len(s.Cardio))
	for k, v := range s.Cardio {
		c.Cardio[k] = append([]CardioEntry(nil), v...)
	}
	c.Notes = make(map[string]string, len(s.Notes))
	for k, v := range s.Notes {
		c.Notes[k] = v
	}
	c.Anchors = make(map[string]LoggedSet, len(s.Anchors))
	for k, v := range s.Anchors {
		c.Anchors[k] = v
	}
	return &c
}
