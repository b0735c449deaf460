package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// Catalog is a read-only exercise library plus workout templates.
type Catalog struct {
	defs      []models.Definition
	byID      map[string]int
	templates []Template
}

// New builds a catalog from definitions. IDs must be unique.
func New(defs []models.Definition, templates []Template) (*Catalog, error) {
	c := &Catalog{
		defs: make([]models.Definition, 0, len(defs)),
		byID: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("exercise %q has no id", d.Name)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", d.ID)
		}
		_ = d.Kind() // panics on a definition without a variant
		c.byID[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	for _, t := range templates {
		if err := c.AddTemplate(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

var builtin *Catalog

func init() {
	var err error
	builtin, err = New(equipment, defaultTemplates)
	if err != nil {
		panic("catalog: " + err.Error())
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return builtin
}

func (c *Catalog) Lookup(id string) (models.Definition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Definition{}, false
	}
	return c.defs[i], true
}

func (c *Catalog) All() []models.Definition {
	return append([]models.Definition(nil), c.defs...)
}

func (c *Catalog) ByKind(kind models.Kind) []models.Definition {
	var out []models.Definition
	for _, d := range c.defs {
		if d.Kind() == kind {
			out = append(out, d)
		}
	}
	return out
}

// Search matches the query against name, id and target, case-insensitive.
func (c *Catalog) Search(query string) []models.Definition {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Definition
	for _, d := range c.defs {
		if q == "" ||
			strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(d.ID, q) ||
			strings.Contains(strings.ToLower(d.Target), q) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ScoredTotal is the number of exercises the strength score covers:
// everything that is not cardio.
func (c *Catalog) ScoredTotal() int {
	n := 0
	for _, d := range c.defs {
		if d.Kind() != models.KindCardio {
			n++
		}
	}
	return n
}

// Entry builds a session entry for the exercise.
func (c *Catalog) Entry(id string) (models.SessionEntry, error) {
	d, ok := c.Lookup(id)
	if !ok {
		return models.SessionEntry{}, fmt.Errorf("unknown exercise %q", id)
	}
	return models.SessionEntry{
		ExerciseID: d.ID,
		Name:       d.Name,
		Muscle:     d.Target,
		Kind:       d.EntryKind(),
	}, nil
}
