package session_test

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTracker(t *testing.T) (*session.Tracker, *models.State, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)}
	st := models.NewState()
	undo := session.NewUndoBuffer(time.Minute)
	t.Cleanup(undo.Commit)
	return session.New(st, catalog.Default(), clock.Now, undo), st, clock
}
