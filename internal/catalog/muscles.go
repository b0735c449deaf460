package catalog

import "strings"

// Group is a normalized muscle group used by the distribution view.
type Group string

const (
	Chest     Group = "chest"
	Back      Group = "back"
	Legs      Group = "legs"
	Core      Group = "core"
	Arms      Group = "arms"
	Shoulders Group = "shoulders"
)

var Groups = []Group{Chest, Back, Legs, Core, Arms, Shoulders}

var targetGroups = map[string]Group{
	"chest":        Chest,
	"upper chest":  Chest,
	"back":         Back,
	"lower back":   Back,
	"traps":        Back,
	"lats":         Back,
	"legs":         Legs,
	"quads":        Legs,
	"hamstrings":   Legs,
	"glutes":       Legs,
	"calves":       Legs,
	"inner thighs": Legs,
	"core":         Core,
	"abs":          Core,
	"biceps":       Arms,
	"triceps":      Arms,
	"forearms":     Arms,
	"arms":         Arms,
	"shoulders":    Shoulders,
	"delts":        Shoulders,
}

// GroupOf normalizes a target muscle. Targets outside the six groups
// (cardio, easter eggs) report false.
func GroupOf(target string) (Group, bool) {
	g, ok := targetGroups[strings.ToLower(strings.TrimSpace(target))]
	return g, ok
}

// GroupOfExercise looks the exercise up and normalizes its target.
func (c *Catalog) GroupOfExercise(id string) (Group, bool) {
	d, ok := c.Lookup(id)
	if !ok {
		return "", false
	}
	return GroupOf(d.Target)
}
