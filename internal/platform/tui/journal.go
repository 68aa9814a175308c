package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fx/internal/fx"
	"github.com/vovakirdan/tui-fx/internal/storage"
)

// activeRun tracks one top-level effect while the manager drives it.
type activeRun struct {
	preset  string
	frames  int
	elapsed time.Duration
}

// journal records every effect started by the demo and writes a run entry
// when the manager reports it completed or cancelled.
type journal struct {
	runs   map[fx.Handle]*activeRun
	store  *storage.Store
	logger *log.Logger
}

func newJournal(store *storage.Store, logger *log.Logger) *journal {
	return &journal{
		runs:   make(map[fx.Handle]*activeRun),
		store:  store,
		logger: logger,
	}
}

// start registers a freshly added effect.
func (j *journal) start(h fx.Handle, preset string) {
	if h == 0 {
		return
	}
	j.runs[h] = &activeRun{preset: preset}
	j.logger.Debug("effect started", "preset", preset, "handle", h)
}

// frame accounts one processed frame to every running effect.
func (j *journal) frame(delta time.Duration) {
	for _, r := range j.runs {
		r.frames++
		r.elapsed += delta
	}
}

// finish is the manager's completion hook.
func (j *journal) finish(h fx.Handle, o fx.Outcome) {
	r, ok := j.runs[h]
	if !ok {
		return
	}
	delete(j.runs, h)

	j.logger.Info("effect "+o.String(),
		"preset", r.preset,
		"frames", r.frames,
		"elapsed", r.elapsed,
	)

	if j.store == nil {
		return
	}
	outcome := storage.OutcomeCompleted
	if o == fx.OutcomeCancelled {
		outcome = storage.OutcomeCancelled
	}
	if _, err := j.store.SaveRun(storage.RunEntry{
		PresetID: r.preset,
		Frames:   r.frames,
		Elapsed:  r.elapsed,
		Outcome:  outcome,
	}); err != nil {
		// Best-effort save, the demo continues regardless
		j.logger.Warn("could not save run", "preset", r.preset, "error", err)
	}
}

// active returns the number of effects being tracked.
func (j *journal) active() int {
	return len(j.runs)
}
