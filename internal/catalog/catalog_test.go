package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	cat := catalog.Default()

	def, ok := cat.Lookup("bb_squat")
	require.True(t, ok)
	assert.Equal(t, models.KindBarbell, def.Kind())
	assert.True(t, def.IsStrength())

	_, ok = cat.Lookup("nope")
	assert.False(t, ok)

	running, ok := cat.Lookup("cardio_running")
	require.True(t, ok)
	assert.Equal(t, models.KindCardio, running.Kind())
	assert.Equal(t, models.EntryCardio, running.EntryKind())
	assert.False(t, running.IsStrength())

	egg, ok := cat.Lookup("kung_fu")
	require.True(t, ok)
	assert.Equal(t, models.KindEasterEgg, egg.Kind())
	assert.Equal(t, models.EntryStrength, egg.EntryKind())

	assert.Len(t, cat.ByKind(models.KindCardio), 2)
	assert.Equal(t, len(cat.All())-2, cat.ScoredTotal())
}

func TestEveryDefinitionHasOneKind(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range catalog.Default().All() {
		require.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true

		variants := 0
		for _, set := range []bool{d.Machine != nil, d.Dumbbell != nil, d.Barbell != nil, d.Cardio != nil, d.EasterEgg != nil} {
			if set {
				variants++
			}
		}
		assert.Equal(t, 1, variants, d.ID)
	}
}

func TestNewRejectsBadDefinitions(t *testing.T) {
	_, err := catalog.New([]models.Definition{{Name: "no id", Dumbbell: &models.Dumbbell{}}}, nil)
	assert.Error(t, err)

	dup := models.Definition{ID: "x", Dumbbell: &models.Dumbbell{}}
	_, err = catalog.New([]models.Definition{dup, dup}, nil)
	assert.Error(t, err)

	assert.Panics(t, func() {
		_, _ = catalog.New([]models.Definition{{ID: "bare"}}, nil)
	})
}

func TestSearch(t *testing.T) {
	cat := catalog.Default()

	all := cat.Search("")
	assert.Len(t, all, len(cat.All()))

	hits := cat.Search("  SQUAT ")
	require.NotEmpty(t, hits)
	for _, d := range hits {
		assert.Containsf(t, d.ID+" "+d.Name+" "+d.Target, "quat", "%s matched", d.ID)
	}
	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i-1].Name, hits[i].Name)
	}

	assert.Empty(t, cat.Search("zzzz"))
}

func TestEntry(t *testing.T) {
	cat := catalog.Default()

	e, err := cat.Entry("cardio_swimming")
	require.NoError(t, err)
	assert.Equal(t, models.EntryCardio, e.Kind)
	assert.Equal(t, "Swimming", e.Name)

	_, err = cat.Entry("missing")
	assert.Error(t, err)
}

func TestGroups(t *testing.T) {
	g, ok := catalog.GroupOf(" Quads ")
	require.True(t, ok)
	assert.Equal(t, catalog.Legs, g)

	_, ok = catalog.GroupOf("Cardio")
	assert.False(t, ok)

	g, ok = catalog.Default().GroupOfExercise("bb_squat")
	require.True(t, ok)
	assert.Equal(t, catalog.Legs, g)

	_, ok = catalog.Default().GroupOfExercise("cardio_running")
	assert.False(t, ok)
}
