package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/storage"
)

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEV_MODE", "")
	t.Setenv("LIFTLOG_LOG_LEVEL", "")
	dsn := "file:" + filepath.Join(t.TempDir(), "cli.db")
	t.Setenv("LIFTLOG_DB_URL", dsn)
	return dsn
}

func run(args ...string) error {
	rootCmd.SetArgs(args)
	return Execute()
}

func load(t *testing.T, dsn, key string) (string, bool) {
	t.Helper()
	st, err := storage.Open(dsn)
	require.NoError(t, err)
	defer st.Close()

	v, ok, err := st.Load(context.Background(), key)
	require.NoError(t, err)
	return string(v), ok
}

func TestFailedCommandStillClosesStore(t *testing.T) {
	dsn := isolate(t)

	err := run("edit-set", "1", "1", "--weight", "100", "--reps", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No active session")

	assert.Nil(t, application)
	assert.Nil(t, store)
	_, ok := load(t, dsn, storage.KeyLastOpen)
	assert.True(t, ok, "writes queued while loading are flushed")
	_, ok = load(t, dsn, storage.KeyProfile)
	assert.False(t, ok)
}

func TestSuccessfulCommandPersists(t *testing.T) {
	dsn := isolate(t)

	require.NoError(t, run("profile", "--name", "Sam"))

	assert.Nil(t, application)
	assert.Nil(t, store)
	profile, ok := load(t, dsn, storage.KeyProfile)
	require.True(t, ok)
	assert.Contains(t, profile, `"name":"Sam"`)
}
