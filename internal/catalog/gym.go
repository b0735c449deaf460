package catalog

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

type DumbbellRack struct {
	Available  bool
	Max        float64
	Increments []float64
}

type BarbellRack struct {
	Available   bool
	StandardBar float64
}

type GymType struct {
	ID        string
	Label     string
	Emoji     string
	Machines  bool
	Dumbbells DumbbellRack
	Barbells  BarbellRack
	// MachineStackCap is zero when the gym has no machines.
	MachineStackCap float64
}

var GymTypes = map[string]GymType{
	"planet": {
		ID: "planet", Label: "Planet Fitness", Emoji: "🟣", Machines: true,
		Dumbbells:       DumbbellRack{Available: true, Max: 75, Increments: []float64{5}},
		Barbells:        BarbellRack{Available: true, StandardBar: 45},
		MachineStackCap: 260,
	},
	"commercial": {
		ID: "commercial", Label: "Commercial Gym", Emoji: "🏋️", Machines: true,
		Dumbbells:       DumbbellRack{Available: true, Max: 120, Increments: []float64{2.5, 5}},
		Barbells:        BarbellRack{Available: true, StandardBar: 45},
		MachineStackCap: 300,
	},
	"iron": {
		ID: "iron", Label: "Powerlifting Gym", Emoji: "⚡",
		Dumbbells: DumbbellRack{Available: true, Max: 150, Increments: []float64{2.5, 5, 10}},
		Barbells:  BarbellRack{Available: true, StandardBar: 45},
	},
	"home": {
		ID: "home", Label: "Home Gym", Emoji: "🏠",
		Dumbbells: DumbbellRack{Available: true, Max: 100, Increments: []float64{5}},
		Barbells:  BarbellRack{Available: true, StandardBar: 45},
	},
}

func Gym(id string) (GymType, error) {
	g, ok := GymTypes[id]
	if !ok {
		return GymType{}, fmt.Errorf("unknown gym type %q", id)
	}
	return g, nil
}

type CardioActivity struct {
	ID    string
	Label string
}

type CardioType struct {
	Name       string
	Emoji      string
	Activities []CardioActivity
	ProMetrics []string
}

var CardioTypes = map[string]CardioType{
	"swimming": {
		Name: "Swimming", Emoji: "🏊",
		Activities: []CardioActivity{
			{"laps", "Swimming Laps"}, {"water_walk", "Water Walking"}, {"water_aerobics", "Water Aerobics"},
			{"treading", "Treading Water"}, {"casual", "Casual Swim"},
		},
		ProMetrics: []string{"distance", "pace", "strokes"},
	},
	"running": {
		Name: "Running", Emoji: "🏃",
		Activities: []CardioActivity{
			{"treadmill", "Treadmill"}, {"outdoor", "Outdoor Run"}, {"walk", "Walking"},
			{"hiit", "HIIT/Intervals"}, {"cooldown", "Cool Down Walk"},
		},
		ProMetrics: []string{"distance", "pace", "elevation"},
	},
}

// SuggestWeight derives a starting load from body weight, gender and
// experience. Cardio and easter eggs have no load and return false.
func SuggestWeight(def models.Definition, profile models.Profile, gym GymType) (float64, bool) {
	m, ok := def.Multipliers.For(profile.Gender, profile.Tier)
	if !ok || profile.BodyWeight <= 0 {
		return 0, false
	}
	raw := profile.BodyWeight * m

	switch def.Kind() {
	case models.KindMachine:
		if def.Machine.Ratio > 0 {
			raw *= def.Machine.Ratio
		}
		limit := def.Machine.StackCap
		if gym.MachineStackCap > 0 && gym.MachineStackCap < limit {
			limit = gym.MachineStackCap
		}
		w := utils.RoundTo(raw, 5)
		if limit > 0 {
			w = math.Min(w, limit)
		}
		return math.Max(w, 5), true
	case models.KindDumbbell:
		step := 5.0
		if len(gym.Dumbbells.Increments) > 0 {
			step = gym.Dumbbells.Increments[0]
		}
		w := math.Max(utils.RoundTo(raw, step), step)
		if gym.Dumbbells.Max > 0 {
			w = math.Min(w, gym.Dumbbells.Max)
		}
		return w, true
	case models.KindBarbell:
		bar := gym.Barbells.StandardBar
		if bar <= 0 {
			bar = 45
		}
		return math.Max(utils.RoundTo(raw, 5), bar), true
	case models.KindCardio, models.KindEasterEgg:
		return 0, false
	}
	return 0, false
}
