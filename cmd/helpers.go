package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// resolveEntry accepts a 1-based position in the open session or an
// exercise ID and returns the exercise ID.
func resolveEntry(arg string) (string, error) {
	s := application.Tracker().Active()
	if s == nil {
		return "", fmt.Errorf("No active session")
	}
	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(s.Entries) {
			return "", fmt.Errorf("Exercise index out of range")
		}
		return s.Entries[idx-1].ExerciseID, nil
	}
	if s.IndexOf(arg) < 0 {
		return "", fmt.Errorf("Exercise %s is not in the session", arg)
	}
	return arg, nil
}

// resolveExercise finds a catalog exercise by ID or by a name query that
// matches exactly one exercise.
func resolveExercise(query string) (models.Definition, error) {
	cat := application.Catalog()
	if def, ok := cat.Lookup(query); ok {
		return def, nil
	}
	matches := cat.Search(query)
	switch len(matches) {
	case 0:
		return models.Definition{}, fmt.Errorf("No exercise matches %q", query)
	case 1:
		return matches[0], nil
	}
	for _, m := range matches {
		if strings.EqualFold(m.Name, query) {
			return m, nil
		}
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.ID)
	}
	return models.Definition{}, fmt.Errorf("%q is ambiguous: %s", query, strings.Join(names, ", "))
}

// parseSets reads specs like "135x8".
func parseSets(specs []string) ([]models.LoggedSet, error) {
	sets := make([]models.LoggedSet, 0, len(specs))
	for _, spec := range specs {
		w, r, err := utils.ParseSetSpec(spec)
		if err != nil {
			return nil, err
		}
		sets = append(sets, models.LoggedSet{Weight: w, Reps: r})
	}
	return sets, nil
}

func fmtWeight(w float64) string {
	return utils.FormatWeight(w)
}

func formatSet(s models.LoggedSet) string {
	return fmt.Sprintf("%s x %d", utils.FormatWeight(s.Weight), s.Reps)
}

func unit() string {
	if u := application.State().Settings.Unit; u != "" {
		return u
	}
	return "lb"
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
