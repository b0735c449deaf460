package app

import (
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

const (
	DefaultDemoSeed = 42
	demoDays        = 60
)

var demoRotation = []catalog.Split{catalog.SplitPush, catalog.SplitPull, catalog.SplitLegs}

// GenerateDemo builds a plausible two-month history ending yesterday.
// The same seed and day always give the same history.
func GenerateDemo(seed int64, now time.Time, cat *catalog.Catalog) *models.State {
	faker := gofakeit.New(seed)
	st := models.NewState()
	st.Profile.Name = faker.FirstName()
	st.Settings.UseDemoData = true

	gym, _ := catalog.Gym(st.Profile.GymType)
	start := utils.StartOfDay(now).AddDate(0, 0, -demoDays)
	split := 0

	for day := 0; day < demoDays; day++ {
		date := start.AddDate(0, 0, day)
		key := utils.DayKey(date)

		if faker.Float64Range(0, 1) > 0.55 {
			if faker.Float64Range(0, 1) < 0.3 {
				st.RestDays = append(st.RestDays, key)
				st.Meta.Days[key] = models.DayEntry{Type: models.DayRest}
			}
			continue
		}

		at := date.Add(time.Duration(faker.IntRange(6, 20)) * time.Hour).
			Add(time.Duration(faker.IntRange(0, 59)) * time.Minute)
		ids, err := catalog.GeneratePlan(demoRotation[split%len(demoRotation)], gym)
		split++
		if err != nil {
			continue
		}

		entry := models.DayEntry{Type: models.DayWorkout}
		progress := 1 + 0.004*float64(day)
		for _, id := range ids {
			def, ok := cat.Lookup(id)
			if !ok {
				continue
			}
			base, ok := catalog.SuggestWeight(def, st.Profile, gym)
			if !ok {
				continue
			}
			weight := utils.RoundTo(base*progress, 5)
			if weight < 5 {
				weight = 5
			}

			sets := make([]models.LoggedSet, faker.IntRange(2, 4))
			for i := range sets {
				sets[i] = models.LoggedSet{Weight: weight, Reps: faker.IntRange(6, 12)}
			}
			rec := models.StrengthSession{Date: at, Sets: sets}
			if len(st.History[id]) == 0 {
				w, r := sets[0].Weight, sets[0].Reps
				rec.BaselineWeight, rec.BaselineReps = &w, &r
			}
			st.History[id] = append(st.History[id], rec)
			entry.ExerciseIDs = append(entry.ExerciseIDs, id)
			st.Meta.Usage[id]++
		}

		if faker.Float64Range(0, 1) < 0.25 {
			kind := faker.RandomString([]string{"running", "swimming"})
			st.CardioHistory[kind] = append(st.CardioHistory[kind], models.CardioSession{
				Date: at.Add(time.Hour),
				Entries: []models.CardioEntry{{
					DurationMin: float64(faker.IntRange(3, 9) * 5),
					Effort:      faker.RandomString([]string{"easy", "moderate", "hard"}),
				}},
			})
			entry.ExerciseIDs = append(entry.ExerciseIDs, "cardio_"+kind)
		}

		if len(entry.ExerciseIDs) > 0 {
			st.Meta.Days[key] = entry
		}
	}

	sort.Strings(st.RestDays)
	return st
}
