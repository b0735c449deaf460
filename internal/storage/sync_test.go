package storage_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/storage"
)

func sampleState() *models.State {
	st := models.NewState()
	st.Profile.Name = "Sam"
	st.Profile.BodyWeight = 180
	st.Settings.Unit = "kg"
	day := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	st.History["bb_squat"] = []models.StrengthSession{
		{Date: day, Sets: []models.LoggedSet{{Weight: 225, Reps: 5}, {Weight: 235, Reps: 3}}, Note: "depth ok"},
	}
	dist := 3.1
	st.CardioHistory["running"] = []models.CardioSession{
		{Date: day.Add(time.Hour), Entries: []models.CardioEntry{{DurationMin: 30, Distance: &dist, DistanceUnit: "mi"}}},
	}
	st.RestDays = []string{"2024-05-02"}
	st.Meta.Days["2024-05-01"] = models.DayEntry{Type: models.DayWorkout, ExerciseIDs: []string{"bb_squat", "cardio_running"}}
	st.Meta.Usage["bb_squat"] = 1
	return st
}

func TestExportImportRoundTrip(t *testing.T) {
	st := sampleState()
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, storage.Export(&buf, st, now))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	for _, k := range []string{"version", "exportDate", "profile", "settings", "history", "cardioHistory", "appState", "meta"} {
		assert.Contains(t, doc, k)
	}
	assert.JSONEq(t, `3`, string(doc["version"]))

	imp, err := storage.Import(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, imp.Discarded)

	got := imp.State
	assert.Equal(t, st.Profile, got.Profile)
	assert.Equal(t, st.Settings, got.Settings)
	assert.Equal(t, st.RestDays, got.RestDays)
	assert.Equal(t, st.Meta.Days, got.Meta.Days)
	require.Len(t, got.History["bb_squat"], 1)
	squat := got.History["bb_squat"][0]
	assert.True(t, squat.Date.Equal(st.History["bb_squat"][0].Date))
	assert.Equal(t, st.History["bb_squat"][0].Sets, squat.Sets)
	assert.Equal(t, "depth ok", squat.Note)
	require.Len(t, got.CardioHistory["running"], 1)
	assert.Equal(t, 30.0, got.CardioHistory["running"][0].TotalMinutes())
	assert.Nil(t, got.Active)
}

func TestImportRejectsBadFiles(t *testing.T) {
	valid := `"profile": {}, "settings": {}, "history": {}, "cardioHistory": {}`
	cases := map[string]string{
		"not json":            `{"profile":`,
		"array":               `[]`,
		"missing profile":     `{"settings": {}, "history": {}, "cardioHistory": {}}`,
		"missing cardio":      `{"profile": {}, "settings": {}, "history": {}}`,
		"history is a list":   `{"profile": {}, "settings": {}, "history": [], "cardioHistory": {}}`,
		"settings is null":    `{"profile": {}, "settings": null, "history": {}, "cardioHistory": {}}`,
		"profile is a string": `{"profile": "me", "settings": {}, "history": {}, "cardioHistory": {}}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := storage.Import([]byte(data))
			require.Error(t, err)
			var ie *storage.ImportError
			assert.True(t, errors.As(err, &ie))
		})
	}

	imp, err := storage.Import([]byte(`{` + valid + `}`))
	require.NoError(t, err)
	assert.NotNil(t, imp.State.History)
	assert.NotNil(t, imp.State.Meta.Days)
}

func TestImportDropsMalformedRecords(t *testing.T) {
	data := `{
		"profile": {"name": "Kai"},
		"settings": {"unit": "lb"},
		"history": {"bb_bench": [
			{"date": "2024-05-01T10:00:00Z", "sets": [{"weight": 185, "reps": 5}]},
			{"date": "", "sets": [{"weight": 185, "reps": 5}]}
		]},
		"cardioHistory": {"swimming": [{"date": "2024-05-01", "entries": []}]},
		"appState": {"restDays": ["2024-05-02", "garbage"]}
	}`
	imp, err := storage.Import([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "Kai", imp.State.Profile.Name)
	assert.Len(t, imp.State.History["bb_bench"], 1)
	assert.Empty(t, imp.State.CardioHistory)
	assert.Equal(t, []string{"2024-05-02"}, imp.State.RestDays)
	assert.Len(t, imp.Discarded, 3)
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

	path, err := storage.ExportFile(filepath.Join(dir, "backup.json"), sampleState(), now)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	imp, err := storage.ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sam", imp.State.Profile.Name)

	_, err = storage.ImportFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	path, err = storage.ExportFile("", sampleState(), now)
	require.NoError(t, err)
	assert.Equal(t, "liftlog-backup-2024-05-03.json", filepath.Base(path))
}
