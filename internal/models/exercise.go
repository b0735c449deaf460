package models

import "fmt"

// Kind is the equipment category of an exercise.
type Kind string

const (
	KindMachine   Kind = "machine"
	KindDumbbell  Kind = "dumbbell"
	KindBarbell   Kind = "barbell"
	KindCardio    Kind = "cardio"
	KindEasterEgg Kind = "easterEgg"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindMachine, KindDumbbell, KindBarbell, KindCardio, KindEasterEgg:
		return k, nil
	}
	return "", fmt.Errorf("unknown exercise kind %q", s)
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Tier indexes the four difficulty columns of a multiplier table.
type Tier int

const (
	Beginner Tier = iota
	Novice
	Intermediate
	Advanced
)

var tierLabels = [...]string{"Beginner", "Novice", "Intermediate", "Advanced"}

func (t Tier) String() string {
	if t < Beginner || t > Advanced {
		return "Unknown"
	}
	return tierLabels[t]
}

func ParseTier(s string) (Tier, error) {
	for i, l := range tierLabels {
		if l == s {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown experience level %q", s)
}

// Multipliers maps body weight to a starting load per gender and tier.
type Multipliers map[Gender][4]float64

func (m Multipliers) For(g Gender, t Tier) (float64, bool) {
	row, ok := m[g]
	if !ok || t < Beginner || t > Advanced {
		return 0, false
	}
	return row[t], true
}

type Machine struct {
	StackCap float64
	// Ratio scales the suggested load for cable stations.
	Ratio float64
}

type Dumbbell struct{}

type Barbell struct {
	PlateOptions []float64
}

type Cardio struct {
	Group string
}

type EasterEgg struct{}

// Definition is a static catalog entry. Exactly one of the variant
// pointers is set and it always matches Kind().
type Definition struct {
	ID          string
	Name        string
	Target      string
	Muscles     string
	Tags        []string
	Cues        []string
	Progression string
	Emoji       string
	Multipliers Multipliers

	Machine   *Machine
	Dumbbell  *Dumbbell
	Barbell   *Barbell
	Cardio    *Cardio
	EasterEgg *EasterEgg
}

func (d Definition) Kind() Kind {
	switch {
	case d.Machine != nil:
		return KindMachine
	case d.Dumbbell != nil:
		return KindDumbbell
	case d.Barbell != nil:
		return KindBarbell
	case d.Cardio != nil:
		return KindCardio
	case d.EasterEgg != nil:
		return KindEasterEgg
	}
	panic("models: definition " + d.ID + " has no kind")
}

// IsStrength reports whether sets of weight x reps are logged for it.
func (d Definition) IsStrength() bool {
	switch d.Kind() {
	case KindMachine, KindDumbbell, KindBarbell:
		return true
	case KindCardio, KindEasterEgg:
		return false
	}
	return false
}

func (d Definition) EntryKind() EntryKind {
	if d.Kind() == KindCardio {
		return EntryCardio
	}
	return EntryStrength
}

//
// For TOML parsing only
//

type TemplateTOML struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Exercises   []string `toml:"exercises"`
}

type TemplateImport struct {
	Templates []TemplateTOML `toml:"template"`
}
