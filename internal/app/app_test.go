package app_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/misterclayt0n/liftlog/internal/app"
	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var today = time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

func clock() time.Time { return today }

func openStore(t *testing.T) *storage.Storage {
	t.Helper()
	st, err := storage.Open("file:" + filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func newApp(t *testing.T, backend storage.Backend) *app.App {
	t.Helper()
	a := app.New(app.Options{
		Backend:    backend,
		WriteDelay: time.Hour,
		UndoWindow: time.Minute,
		Clock:      clock,
	})
	require.NoError(t, a.Load())
	return a
}

func stored(t *testing.T, st *storage.Storage, key string) (string, bool) {
	t.Helper()
	v, ok, err := st.Load(context.Background(), key)
	require.NoError(t, err)
	return string(v), ok
}

func TestLoadEmptyGivesDefaults(t *testing.T) {
	a := newApp(t, nil)
	defer a.Close()

	assert.Equal(t, models.DefaultProfile(), a.State().Profile)
	assert.Empty(t, a.State().History)
	assert.False(t, a.DemoMode())
	assert.Empty(t, a.Discarded())
	assert.Equal(t, today, a.Now())
}

func TestStateSurvivesRestart(t *testing.T) {
	store := openStore(t)

	a := newApp(t, store)
	a.UpdateProfile(func(p *models.Profile) { p.Name = "Robin" })
	_, err := a.Tracker().SaveCardio("running", []models.CardioEntry{{DurationMin: 25}})
	require.NoError(t, err)
	require.NoError(t, a.Tracker().NewSession("manual", "bb_squat"))
	a.Close()

	_, ok := stored(t, store, storage.KeyLastOpen)
	assert.True(t, ok)

	b := newApp(t, store)
	defer b.Close()
	assert.Equal(t, "Robin", b.State().Profile.Name)
	assert.Len(t, b.State().CardioHistory["running"], 1)
	require.NotNil(t, b.State().Active)
	assert.Equal(t, models.StatusDraft, b.Tracker().Status())
	require.NotNil(t, b.State().Meta.LastStats)
	assert.Equal(t, 1, b.State().Meta.LastStats.CurrentStreak)
}

func TestLoadDropsStaleSessionAndBadRecords(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, storage.KeyActiveSession,
		[]byte(`{"id":"old","date":"2024-06-09","status":"active","entries":[],"sets":{}}`)))
	require.NoError(t, store.Save(ctx, storage.KeyHistory, []byte(`{
		"bb_squat": [
			{"date": "2024-06-08T09:00:00Z", "sets": [{"weight": 200, "reps": 5}]},
			{"date": "2024-06-09T09:00:00Z", "sets": []}
		]
	}`)))
	require.NoError(t, store.Save(ctx, storage.KeyRestDays, []byte(`["2024-06-07", "bad"]`)))

	a := newApp(t, store)
	defer a.Close()

	assert.Nil(t, a.State().Active)
	assert.Len(t, a.State().History["bb_squat"], 1)
	assert.Equal(t, []string{"2024-06-07"}, a.State().RestDays)
	assert.Len(t, a.Discarded(), 2)
}

func TestPendingUndoSurvivesRestart(t *testing.T) {
	store := openStore(t)

	a := newApp(t, store)
	tr := a.Tracker()
	require.NoError(t, tr.NewSession("manual", "bb_squat"))
	require.NoError(t, tr.Start())
	_, err := tr.LogSet("bb_squat", 225, 5)
	require.NoError(t, err)
	require.NoError(t, tr.RemoveExercise("bb_squat"))
	a.Close()

	_, ok := stored(t, store, storage.KeyUndo)
	require.True(t, ok)

	b := newApp(t, store)
	defer b.Close()
	action, err := b.Tracker().UndoLast()
	require.NoError(t, err)
	assert.Equal(t, "Removed Barbell Squat", action.Label)
	require.NotNil(t, b.State().Active)
	assert.Len(t, b.State().Active.Sets["bb_squat"], 1)
}

func TestDemoModeNeverPersistsDemoHistory(t *testing.T) {
	store := openStore(t)

	a := newApp(t, store)
	a.SetDemoMode(true)
	assert.True(t, a.DemoMode())
	assert.NotEmpty(t, a.State().History)
	assert.True(t, a.State().Settings.UseDemoData)
	a.Close()

	history, ok := stored(t, store, storage.KeyHistory)
	require.True(t, ok)
	assert.JSONEq(t, `{}`, history)

	b := newApp(t, store)
	defer b.Close()
	assert.True(t, b.DemoMode(), "the demo setting is remembered")
	assert.NotEmpty(t, b.State().History)

	b.SetDemoMode(false)
	assert.False(t, b.DemoMode())
	assert.Empty(t, b.State().History)

	var buf bytes.Buffer
	require.NoError(t, b.Export(&buf))
	assert.NotContains(t, buf.String(), "bb_squat")
}

func TestProfileEditsReachDemoState(t *testing.T) {
	a := newApp(t, nil)
	defer a.Close()

	a.SetDemoMode(true)
	a.UpdateProfile(func(p *models.Profile) { p.BodyWeight = 200 })
	a.UpdateSettings(func(s *models.Settings) { s.Unit = "kg" })
	assert.Equal(t, 200.0, a.State().Profile.BodyWeight)
	assert.Equal(t, "kg", a.State().Settings.Unit)

	a.SetDemoMode(false)
	assert.Equal(t, 200.0, a.State().Profile.BodyWeight)
}

func TestReset(t *testing.T) {
	store := openStore(t)
	a := newApp(t, store)
	defer a.Close()

	_, err := a.Tracker().SaveCardio("swimming", []models.CardioEntry{{DurationMin: 40}})
	require.NoError(t, err)
	a.Persist()
	a.Reset()

	assert.Empty(t, a.State().CardioHistory)
	keys, err := store.Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestImport(t *testing.T) {
	src := models.NewState()
	src.Profile.Name = "Imported"
	src.History["bb_bench"] = []models.StrengthSession{
		{Date: today.AddDate(0, 0, -3), Sets: []models.LoggedSet{{Weight: 185, Reps: 5}}},
	}
	src.Active = models.NewActiveSession("stale", "2024-06-01", "manual", today.AddDate(0, 0, -9))

	var buf bytes.Buffer
	require.NoError(t, storage.Export(&buf, src, today))

	a := newApp(t, nil)
	defer a.Close()
	imp, err := a.Import(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, imp.Discarded)
	assert.Equal(t, "Imported", a.State().Profile.Name)
	assert.Len(t, a.State().History["bb_bench"], 1)
	assert.Nil(t, a.State().Active)

	_, err = a.Import([]byte(`{"profile": {}}`))
	var ie *storage.ImportError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "Imported", a.State().Profile.Name, "a rejected file changes nothing")
}

func TestImportTemplatesArePersisted(t *testing.T) {
	store := openStore(t)
	a := newApp(t, store)

	added, err := a.ImportTemplates([]byte(`
[[template]]
id = "arms"
name = "Arm day"
exercises = ["db_curl", "cable_tricep"]
`))
	require.NoError(t, err)
	require.Len(t, added, 1)
	require.NoError(t, a.Tracker().ApplyTemplate("arms"))
	a.Close()

	b := newApp(t, store)
	defer b.Close()
	tpl, ok := b.Catalog().Template("arms")
	require.True(t, ok)
	assert.Equal(t, "Arm day", tpl.Name)

	_, ok = catalog.Default().Template("arms")
	assert.False(t, ok)
}

func TestAbortFlushesLoadWritesOnly(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	stale := `{"id":"old","date":"2024-06-09","status":"active","entries":[],"sets":{}}`
	require.NoError(t, store.Save(ctx, storage.KeyActiveSession, []byte(stale)))

	a := newApp(t, store)
	assert.Nil(t, a.State().Active)
	a.UpdateProfile(func(p *models.Profile) { p.Name = "Half done" })
	a.Abort()

	_, ok := stored(t, store, storage.KeyLastOpen)
	assert.True(t, ok, "writes queued while loading are flushed")
	_, ok = stored(t, store, storage.KeyActiveSession)
	assert.False(t, ok, "the stale session drop is flushed")
	_, ok = stored(t, store, storage.KeyProfile)
	assert.False(t, ok, "state changed by the failed command is not persisted")
}
