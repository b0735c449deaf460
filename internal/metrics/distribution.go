package metrics

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// Window is a trailing number of days.
type Window int

const (
	Week    Window = 7
	Month   Window = 30
	Quarter Window = 90
)

func ParseWindow(days int) (Window, error) {
	switch w := Window(days); w {
	case Week, Month, Quarter:
		return w, nil
	}
	return 0, fmt.Errorf("window must be 7, 30 or 90 days, got %d", days)
}

// Distribution counts sessions per normalized muscle group.
type Distribution map[catalog.Group]int

func (d Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// MuscleDistribution counts one per strength session in the trailing
// window, by muscle group. The window is whole calendar days ending
// today. Sets do not matter; targets outside the six groups are ignored.
func MuscleDistribution(history models.History, cat *catalog.Catalog, window Window, now time.Time) Distribution {
	dist := make(Distribution, len(catalog.Groups))
	for _, g := range catalog.Groups {
		dist[g] = 0
	}

	today := utils.StartOfDay(now)
	cutoff := today.AddDate(0, 0, -(int(window) - 1))
	end := today.AddDate(0, 0, 1)
	for id, sessions := range history {
		group, ok := cat.GroupOfExercise(id)
		if !ok {
			continue
		}
		for _, s := range sessions {
			if s.Date.Before(cutoff) || !s.Date.Before(end) {
				continue
			}
			dist[group]++
		}
	}
	return dist
}
