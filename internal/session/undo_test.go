package session_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/session"
)

func TestUndoBufferKeepsOneAction(t *testing.T) {
	b := session.NewUndoBuffer(time.Hour)
	defer b.Commit()
	now := time.Now()

	b.Push(session.UndoAction{Kind: session.UndoRestDay, Label: "first"}, now)
	b.Push(session.UndoAction{Kind: session.UndoSwapExercise, Label: "second"}, now)

	a, ok := b.Pending()
	require.True(t, ok)
	assert.Equal(t, "second", a.Label)
	assert.Equal(t, now.Add(time.Hour), a.ExpiresAt)

	a, ok = b.Take(now)
	require.True(t, ok)
	assert.Equal(t, "second", a.Label)
	_, ok = b.Take(now)
	assert.False(t, ok)
}

func TestUndoBufferExpiresOnTimer(t *testing.T) {
	b := session.NewUndoBuffer(20 * time.Millisecond)
	b.Push(session.UndoAction{Label: "gone soon"}, time.Now())

	require.Eventually(t, func() bool {
		_, ok := b.Pending()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestUndoBufferStopKeepsPending(t *testing.T) {
	b := session.NewUndoBuffer(30 * time.Millisecond)
	b.Push(session.UndoAction{Label: "kept"}, time.Now())
	b.Stop()

	time.Sleep(60 * time.Millisecond)
	_, ok := b.Pending()
	assert.True(t, ok)
	b.Commit()
	_, ok = b.Pending()
	assert.False(t, ok)
}

func TestUndoBufferRestore(t *testing.T) {
	b := session.NewUndoBuffer(0)
	defer b.Commit()
	assert.Equal(t, session.DefaultUndoWindow, b.Window())

	now := time.Now()
	data, err := json.Marshal(session.UndoAction{Label: "persisted", ExpiresAt: now.Add(time.Minute)})
	require.NoError(t, err)
	var loaded session.UndoAction
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.False(t, b.Restore(loaded, now.Add(2*time.Minute)))
	_, ok := b.Pending()
	assert.False(t, ok)

	require.True(t, b.Restore(loaded, now))
	a, ok := b.Take(now.Add(30 * time.Second))
	require.True(t, ok)
	assert.Equal(t, "persisted", a.Label)
}
