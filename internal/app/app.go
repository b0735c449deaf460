// Package app owns the loaded state and everything that reads or writes
// it, so commands never touch package-level globals.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/metrics"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/normalize"
	"github.com/misterclayt0n/liftlog/internal/session"
	"github.com/misterclayt0n/liftlog/internal/storage"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

type Options struct {
	// Backend is nil for a memory-only app.
	Backend    storage.Backend
	WriteDelay time.Duration
	UndoWindow time.Duration
	Clock      utils.Clock
	Catalog    *catalog.Catalog
	// DemoSeed seeds the generated demo history.
	DemoSeed int64
}

type App struct {
	kv    *storage.KV
	queue *storage.Queue
	clock utils.Clock
	base  *catalog.Catalog
	cat   *catalog.Catalog
	undo  *session.UndoBuffer
	seed  int64

	real    *models.State
	demo    *models.State
	state   *models.State
	tracker *session.Tracker

	custom    []catalog.Template
	discarded []normalize.Discard
}

func New(opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = utils.SystemClock
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.DemoSeed == 0 {
		opts.DemoSeed = DefaultDemoSeed
	}

	kv := storage.NewKV(opts.Backend)
	a := &App{
		kv:    kv,
		queue: storage.NewQueue(kv, opts.WriteDelay),
		clock: opts.Clock,
		base:  opts.Catalog,
		cat:   opts.Catalog.Clone(),
		undo:  session.NewUndoBuffer(opts.UndoWindow),
		seed:  opts.DemoSeed,
		real:  models.NewState(),
	}
	a.use(a.real)
	return a
}

func (a *App) use(st *models.State) {
	a.state = st
	a.tracker = session.New(st, a.cat, a.clock, a.undo)
}

func (a *App) Now() time.Time { return a.clock() }
func (a *App) State() *models.State { return a.state }
func (a *App) Tracker() *session.Tracker { return a.tracker }
func (a *App) Catalog() *catalog.Catalog { return a.cat }
func (a *App) DemoMode() bool { return a.state == a.demo && a.demo != nil }
func (a *App) Discarded() []normalize.Discard { return a.discarded }

func (a *App) Activity() metrics.Activity {
	return metrics.FromState(a.state)
}

// Load reads every key, dropping malformed records. A session left open
// on an earlier day is discarded.
func (a *App) Load() error {
	st := models.NewState()
	st.Profile = storage.Get(a.kv, storage.KeyProfile, models.DefaultProfile())
	st.Settings = storage.Get(a.kv, storage.KeySettings, models.DefaultSettings())
	st.Meta = storage.Get(a.kv, storage.KeyMeta, models.NewMeta())

	a.discarded = nil
	if raw, ok := a.kv.GetRaw(storage.KeyHistory); ok {
		res, err := normalize.History(raw)
		if err != nil {
			logrus.WithError(err).Warn("stored history unreadable, starting empty")
		} else {
			st.History = res.Records
			a.discarded = append(a.discarded, res.Discarded...)
		}
	}
	if raw, ok := a.kv.GetRaw(storage.KeyCardioHistory); ok {
		res, err := normalize.CardioHistory(raw)
		if err != nil {
			logrus.WithError(err).Warn("stored cardio history unreadable, starting empty")
		} else {
			st.CardioHistory = res.Records
			a.discarded = append(a.discarded, res.Discarded...)
		}
	}
	days, dropped := normalize.DayKeys(storage.Get(a.kv, storage.KeyRestDays, []string{}))
	st.RestDays = days
	a.discarded = append(a.discarded, dropped...)

	now := a.clock()
	st.Active = storage.Get[*models.ActiveSession](a.kv, storage.KeyActiveSession, nil)
	if st.Active != nil && st.Active.Date != utils.DayKey(now) {
		logrus.WithField("day", st.Active.Date).Info("discarding session from an earlier day")
		st.Active = nil
		a.queue.Delete(storage.KeyActiveSession)
	}
	st.EnsureMaps()

	for _, d := range a.discarded {
		logrus.WithField("record", d.String()).Warn("dropped malformed record")
	}

	a.cat = a.base.Clone()
	a.custom = nil
	for _, t := range storage.Get(a.kv, storage.KeyTemplates, []catalog.Template{}) {
		if err := a.cat.AddTemplate(t); err != nil {
			logrus.WithError(err).Warn("skipping stored template")
			continue
		}
		a.custom = append(a.custom, t)
	}

	a.real = st
	a.demo = nil
	a.use(a.real)
	if st.Settings.UseDemoData {
		a.use(a.demoState())
	}

	a.undo.Commit()
	if pending := storage.Get[*session.UndoAction](a.kv, storage.KeyUndo, nil); pending != nil {
		if !a.undo.Restore(*pending, now) {
			a.queue.Delete(storage.KeyUndo)
		}
	}

	a.queue.Put(storage.KeyLastOpen, now)
	return nil
}

// Persist queues every key of the real state. Demo data is never
// written.
func (a *App) Persist() {
	st := a.real
	if !a.DemoMode() {
		sum := metrics.Summarize(metrics.FromState(st), a.clock())
		score := metrics.StrengthScore(st.History, a.cat)
		st.Meta.LastStats = &models.LastStats{
			ComputedAt:    a.clock(),
			CurrentStreak: sum.Streak.Current,
			BestStreak:    sum.Streak.Best,
			Score:         score.Score,
		}
	}

	a.queue.Put(storage.KeyProfile, st.Profile)
	a.queue.Put(storage.KeySettings, st.Settings)
	a.queue.Put(storage.KeyHistory, st.History)
	a.queue.Put(storage.KeyCardioHistory, st.CardioHistory)
	a.queue.Put(storage.KeyRestDays, st.RestDays)
	a.queue.Put(storage.KeyMeta, st.Meta)
	a.queue.Put(storage.KeyTemplates, a.custom)
	if st.Active != nil {
		a.queue.Put(storage.KeyActiveSession, st.Active)
	} else {
		a.queue.Delete(storage.KeyActiveSession)
	}

	if pending, ok := a.undo.Pending(); ok && !a.DemoMode() {
		a.queue.Put(storage.KeyUndo, pending)
	} else {
		a.queue.Delete(storage.KeyUndo)
	}
}

// Close persists, stops the undo timer and flushes the write queue.
func (a *App) Close() {
	a.undo.Stop()
	a.Persist()
	a.queue.Close()
}

// Abort stops the undo timer and flushes writes already queued without
// persisting the state. Used when a command fails part way.
func (a *App) Abort() {
	a.undo.Stop()
	a.queue.Close()
}

// Reset wipes every key and starts from an empty state.
func (a *App) Reset() {
	for _, k := range storage.AllKeys {
		a.queue.Delete(k)
	}
	a.undo.Commit()
	a.cat = a.base.Clone()
	a.custom = nil
	a.real = models.NewState()
	a.demo = nil
	a.use(a.real)
	a.queue.Flush()
}

// SetDemoMode swaps a generated history in or out. The real state is
// kept aside and restored when demo mode is turned off.
func (a *App) SetDemoMode(on bool) {
	a.real.Settings.UseDemoData = on
	a.undo.Commit()
	if on {
		a.use(a.demoState())
		return
	}
	a.use(a.real)
}

func (a *App) demoState() *models.State {
	if a.demo == nil {
		a.demo = GenerateDemo(a.seed, a.clock(), a.cat)
	}
	a.demo.Profile = a.real.Profile
	a.demo.Settings = a.real.Settings
	return a.demo
}

func (a *App) UpdateProfile(fn func(p *models.Profile)) {
	fn(&a.real.Profile)
	if a.demo != nil {
		a.demo.Profile = a.real.Profile
	}
}

func (a *App) UpdateSettings(fn func(s *models.Settings)) {
	fn(&a.real.Settings)
	if a.demo != nil {
		a.demo.Settings = a.real.Settings
	}
}

func (a *App) Export(w io.Writer) error {
	return storage.Export(w, a.real, a.clock())
}

func (a *App) ExportFile(path string) (string, error) {
	return storage.ExportFile(path, a.real, a.clock())
}

// Import replaces the real state with a backup. A rejected file leaves
// everything untouched.
func (a *App) Import(data []byte) (*storage.Imported, error) {
	imp, err := storage.Import(data)
	if err != nil {
		return nil, err
	}

	st := imp.State
	if st.Active != nil && st.Active.Date != utils.DayKey(a.clock()) {
		st.Active = nil
	}
	a.undo.Commit()
	a.real = st
	a.demo = nil
	a.use(a.real)
	if st.Settings.UseDemoData {
		a.use(a.demoState())
	}
	a.Persist()
	return imp, nil
}

func (a *App) ImportFile(path string) (*storage.Imported, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading file %s: %w", path, err)
	}
	return a.Import(data)
}

// ImportTemplates registers templates from TOML and keeps them for later
// runs.
func (a *App) ImportTemplates(data []byte) ([]catalog.Template, error) {
	added, err := a.cat.LoadTemplatesTOML(data)
	if err != nil {
		return nil, err
	}
	for _, t := range added {
		a.custom = replaceTemplate(a.custom, t)
	}
	return added, nil
}

func replaceTemplate(list []catalog.Template, t catalog.Template) []catalog.Template {
	for i := range list {
		if list[i].ID == t.ID {
			list[i] = t
			return list
		}
	}
	return append(list, t)
}
