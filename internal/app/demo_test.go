package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/metrics"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

func TestGenerateDemoIsDeterministic(t *testing.T) {
	cat := catalog.Default()
	a := app.GenerateDemo(app.DefaultDemoSeed, today, cat)
	b := app.GenerateDemo(app.DefaultDemoSeed, today, cat)

	assert.Equal(t, a.History, b.History)
	assert.Equal(t, a.CardioHistory, b.CardioHistory)
	assert.Equal(t, a.RestDays, b.RestDays)
	assert.Equal(t, a.Profile.Name, b.Profile.Name)
}

func TestGenerateDemoIsWellFormed(t *testing.T) {
	cat := catalog.Default()
	st := app.GenerateDemo(7, today, cat)
	require.NotEmpty(t, st.History)

	todayKey := utils.DayKey(today)
	for id, sessions := range st.History {
		_, ok := cat.Lookup(id)
		require.True(t, ok, id)
		require.NotNil(t, sessions[0].BaselineWeight, id)

		seen := make(map[string]bool)
		for i, s := range sessions {
			day := utils.DayKey(s.Date)
			assert.Less(t, day, todayKey)
			assert.False(t, seen[day], "two %s records on %s", id, day)
			seen[day] = true
			if i > 0 {
				assert.True(t, sessions[i-1].Date.Before(s.Date))
			}
			for _, set := range s.Sets {
				assert.True(t, set.Valid())
			}
		}
	}
	for _, d := range st.RestDays {
		assert.Equal(t, models.DayRest, st.Meta.Days[d].Type)
	}

	assert.Positive(t, metrics.StrengthScore(st.History, cat).Score)
	assert.NotEmpty(t, metrics.Patterns(metrics.FromState(st), cat))
}
