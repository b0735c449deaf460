package models

import "time"

type Profile struct {
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar,omitempty"`
	Gender     Gender  `json:"gender"`
	Tier       Tier    `json:"tier"`
	BodyWeight float64 `json:"bodyWeight"`
	GymType    string  `json:"gymType"`
	Goal       string  `json:"goal,omitempty"`
}

func DefaultProfile() Profile {
	return Profile{
		Gender:     Male,
		Tier:       Beginner,
		BodyWeight: 170,
		GymType:    "commercial",
		Goal:       "health",
	}
}

type Settings struct {
	InsightsEnabled           bool     `json:"insightsEnabled"`
	SmartSuggestionsEnabled   bool     `json:"smartSuggestionsEnabled"`
	DarkMode                  bool     `json:"darkMode"`
	DarkAccent                string   `json:"darkAccent"`
	ShowAllExercises          bool     `json:"showAllExercises"`
	PinnedExercises           []string `json:"pinnedExercises"`
	WorkoutViewMode           string   `json:"workoutViewMode"`
	SuggestedWorkoutCollapsed bool     `json:"suggestedWorkoutCollapsed"`
	UseDemoData               bool     `json:"useDemoData"`
	BarWeight                 float64  `json:"barWeight"`
	Unit                      string   `json:"unit"`
}

func DefaultSettings() Settings {
	return Settings{
		InsightsEnabled:           true,
		SmartSuggestionsEnabled:   true,
		DarkAccent:                "purple",
		PinnedExercises:           []string{},
		WorkoutViewMode:           "all",
		SuggestedWorkoutCollapsed: true,
		BarWeight:                 45,
		Unit:                      "lb",
	}
}

type LastStats struct {
	ComputedAt    time.Time `json:"computedAt"`
	CurrentStreak int       `json:"currentStreak"`
	BestStreak    int       `json:"bestStreak"`
	Score         int       `json:"score"`
}

type Meta struct {
	Pinned    []string            `json:"pinned"`
	Recent    []string            `json:"recent"`
	Usage     map[string]int      `json:"usage"`
	Days      map[string]DayEntry `json:"days"`
	LastStats *LastStats          `json:"lastStats,omitempty"`
}

func NewMeta() Meta {
	return Meta{
		Pinned: []string{},
		Recent: []string{},
		Usage:  make(map[string]int),
		Days:   make(map[string]DayEntry),
	}
}

// State is everything the application persists.
type State struct {
	Profile       Profile
	Settings      Settings
	History       History
	CardioHistory CardioHistory
	RestDays      []string
	Active        *ActiveSession
	Meta          Meta
}

func NewState() *State {
	return &State{
		Profile:       DefaultProfile(),
		Settings:      DefaultSettings(),
		History:       make(History),
		CardioHistory: make(CardioHistory),
		RestDays:      []string{},
		Meta:          NewMeta(),
	}
}

// EnsureMaps initializes nil maps left by decoding partial data.
func (s *State) EnsureMaps() {
	if s.History == nil {
		s.History = make(History)
	}
	if s.CardioHistory == nil {
		s.CardioHistory = make(CardioHistory)
	}
	if s.RestDays == nil {
		s.RestDays = []string{}
	}
	if s.Meta.Usage == nil {
		s.Meta.Usage = make(map[string]int)
	}
	if s.Meta.Days == nil {
		s.Meta.Days = make(map[string]DayEntry)
	}
	if s.Meta.Pinned == nil {
		s.Meta.Pinned = []string{}
	}
	if s.Meta.Recent == nil {
		s.Meta.Recent = []string{}
	}
	if s.Active != nil {
		s.Active.EnsureMaps()
	}
}
