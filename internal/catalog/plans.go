package catalog

import (
	"fmt"
	"strings"
)

type Split string

const (
	SplitPush     Split = "Push"
	SplitPull     Split = "Pull"
	SplitLegs     Split = "Legs"
	SplitFullBody Split = "FullBody"
)

func ParseSplit(s string) (Split, error) {
	for _, sp := range []Split{SplitPush, SplitPull, SplitLegs, SplitFullBody} {
		if strings.EqualFold(string(sp), s) || strings.EqualFold(strings.ReplaceAll(string(sp), "Body", "_body"), s) {
			return sp, nil
		}
	}
	return "", fmt.Errorf("unknown split %q (push, pull, legs, fullbody)", s)
}

type plan struct {
	Machines  []string
	Dumbbells []string
	Barbells  []string
}

var workoutPlans = map[Split]plan{
	SplitPush: {
		Machines:  []string{"chest_press", "shoulder_press", "pec_fly", "cable_tricep"},
		Dumbbells: []string{"db_bench_press", "db_shoulder_press"},
		Barbells:  []string{"bb_bench", "bb_overhead_press"},
	},
	SplitPull: {
		Machines:  []string{"lat_pulldown", "seated_row", "cable_bicep", "ab_crunch"},
		Dumbbells: []string{"db_row", "db_curl"},
		Barbells:  []string{"bb_deadlift", "bb_row"},
	},
	SplitLegs: {
		Machines:  []string{"leg_press", "leg_extension", "leg_curl", "ab_crunch"},
		Dumbbells: []string{"db_goblet_squat", "db_lunge"},
		Barbells:  []string{"bb_squat"},
	},
	SplitFullBody: {
		Machines:  []string{"chest_press", "lat_pulldown", "leg_press"},
		Dumbbells: []string{"db_row"},
		Barbells:  []string{"bb_deadlift"},
	},
}

// BigBasics are the foundational movements shown by default.
var BigBasics = []string{
	"chest_press", "lat_pulldown", "seated_row", "shoulder_press", "leg_press", "leg_curl",
	"db_bench_press", "db_row", "db_shoulder_press", "db_curl",
	"bb_squat", "bb_bench", "bb_deadlift", "bb_row", "bb_overhead_press",
}

// GeneratePlan lists the split's exercises that the gym can host,
// machines first, without duplicates.
func GeneratePlan(split Split, gym GymType) ([]string, error) {
	p, ok := workoutPlans[split]
	if !ok {
		return nil, fmt.Errorf("no plan for split %q", split)
	}

	var ids []string
	seen := make(map[string]bool)
	add := func(list []string) {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if gym.Machines {
		add(p.Machines)
	}
	if gym.Dumbbells.Available {
		add(p.Dumbbells)
	}
	if gym.Barbells.Available {
		add(p.Barbells)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("gym %q has no equipment for %s", gym.ID, split)
	}
	return ids, nil
}

type Template struct {
	ID          string   `json:"id"`
	Key         string   `json:"key,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ExerciseIDs []string `json:"exerciseIds"`
	CreatedFrom string   `json:"createdFrom,omitempty"`
}

var defaultTemplates = []Template{
	{
		ID: "push", Key: "Push", Name: "Upper body: push",
		Description: "Chest, shoulders, and triceps with simple press movements.",
		ExerciseIDs: []string{"chest_press", "shoulder_press", "db_bench_press", "bb_bench"},
		CreatedFrom: "template",
	},
	{
		ID: "pull", Key: "Pull", Name: "Upper body: pull",
		Description: "Back and biceps using rows and pull-downs.",
		ExerciseIDs: []string{"lat_pulldown", "seated_row", "db_row", "bb_row"},
		CreatedFrom: "template",
	},
	{
		ID: "legs", Key: "Legs", Name: "Leg day",
		Description: "Quads, hamstrings, and glutes without overcomplicating it.",
		ExerciseIDs: []string{"leg_press", "leg_curl", "db_goblet_squat", "bb_squat"},
		CreatedFrom: "template",
	},
	{
		ID: "full_body", Key: "FullBody", Name: "Full body basics",
		Description: "One round that hits upper, lower, and posterior chain.",
		ExerciseIDs: []string{"chest_press", "leg_press", "db_row", "bb_deadlift"},
		CreatedFrom: "template",
	},
}

// AddTemplate registers a template, replacing one with the same ID.
func (c *Catalog) AddTemplate(t Template) error {
	if t.ID == "" {
		return fmt.Errorf("template %q has no id", t.Name)
	}
	if len(t.ExerciseIDs) == 0 {
		return fmt.Errorf("template %q has no exercises", t.ID)
	}
	for _, id := range t.ExerciseIDs {
		if _, ok := c.Lookup(id); !ok {
			return fmt.Errorf("template %q: unknown exercise %q", t.ID, id)
		}
	}
	for i := range c.templates {
		if c.templates[i].ID == t.ID {
			c.templates[i] = t
			return nil
		}
	}
	c.templates = append(c.templates, t)
	return nil
}

func (c *Catalog) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

func (c *Catalog) Template(id string) (Template, bool) {
	for _, t := range c.templates {
		if t.ID == id || strings.EqualFold(t.Key, id) {
			return t, true
		}
	}
	return Template{}, false
}
