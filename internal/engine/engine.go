package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/oshokin/alarm-countdown/internal/domain/alarm"
	"github.com/oshokin/alarm-countdown/internal/logger"
	"github.com/oshokin/alarm-countdown/internal/playback"
	"github.com/oshokin/alarm-countdown/internal/scheduler"
)

// DefaultTickInterval is the countdown cadence.
const DefaultTickInterval = time.Second

var (
	// ErrNotFound is returned for unknown alarm IDs or positions.
	ErrNotFound = errors.New("alarm not found")
	// ErrClosed is returned by operations on a closed engine.
	ErrClosed = errors.New("engine closed")
)

// Engine owns the alarm collection, its periodic tick and the playback handles
// of ringing alarms.
type Engine struct {
	// player creates playback handles.
	player playback.Player
	// scheduler drives Tick.
	scheduler scheduler.Scheduler
	// token identifies the scheduled tick.
	token scheduler.Token

	// alarms is the current snapshot. Tick replaces it with a derived copy.
	alarms []*domain.Alarm
	// handles holds active playback by alarm ID.
	handles map[string]playback.Handle
	// closed is set by Close.
	closed bool
	// mu serializes ticks and user operations.
	mu sync.Mutex

	// newID generates durable alarm identifiers.
	newID func() string
	// now returns the current time for CreatedAt.
	now func() time.Time
	// interval is the tick cadence.
	interval time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithTickInterval overrides the tick cadence.
func WithTickInterval(interval time.Duration) Option {
	return func(e *Engine) {
		if interval > 0 {
			e.interval = interval
		}
	}
}

// WithIDGenerator overrides how alarm IDs are generated.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		if newID != nil {
			e.newID = newID
		}
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an empty engine and schedules its tick right away.
// The tick keeps running until Close or until ctx is cancelled.
func New(ctx context.Context, player playback.Player, sched scheduler.Scheduler, opts ...Option) *Engine {
	e := &Engine{
		player:    player,
		scheduler: sched,
		handles:   make(map[string]playback.Handle),
		newID:     uuid.NewString,
		now:       time.Now,
		interval:  DefaultTickInterval,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.token = sched.Schedule(ctx, e.Tick, e.interval)

	logger.DebugKV(ctx, "Alarm engine started", "tick_interval", e.interval)

	return e
}

// Add commits the draft as a new alarm at the end of the collection and
// resets the draft. A zero duration is rejected with *domain.ValidationError
// and leaves both the draft and the collection untouched.
func (e *Engine) Add(ctx context.Context, draft *domain.Draft) (*domain.Alarm, error) {
	if draft == nil {
		draft = domain.NewDraft()
	}

	candidate := draft.Clone()
	candidate.Normalize()

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}

	record := domain.New(e.newID(), candidate, e.now())
	e.alarms = append(slices.Clip(e.alarms), record)

	draft.Reset()

	logger.InfoKV(
		ctx,
		"Alarm added",
		"alarm_id", record.ID,
		"duration", domain.FormatRemaining(record.DurationTotalSeconds),
		"sound", record.Sound.String(),
	)

	return record.Clone(), nil
}

// Tick advances every alarm by one second. An alarm whose countdown reaches
// zero starts ringing in the same tick; playback starts once per alarm.
func (e *Engine) Tick(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	next := make([]*domain.Alarm, len(e.alarms))

	for i, current := range e.alarms {
		updated := current.Clone()

		if updated.RemainingSeconds > 0 && !updated.IsRinging {
			updated.RemainingSeconds--
		}

		if updated.RemainingSeconds == 0 && !updated.IsRinging && !updated.HasPlayedOnce {
			updated.IsRinging = true
			updated.HasPlayedOnce = true

			e.startPlayback(ctx, updated)
		}

		next[i] = updated
	}

	e.alarms = next
}

// Stop silences the alarm, keeps it in the collection and returns its new
// state. It does not re-arm: the countdown is over and playback never starts again.
func (e *Engine) Stop(ctx context.Context, id string) (*domain.Alarm, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}

	return e.stopLocked(ctx, id)
}

// StopAt stops the alarm at the zero-based position and returns its new state.
func (e *Engine) StopAt(ctx context.Context, position int) (*domain.Alarm, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}

	id, err := e.idAt(position)
	if err != nil {
		return nil, err
	}

	return e.stopLocked(ctx, id)
}

// Remove stops the alarm and deletes it. Later alarms move up one position
// and keep their IDs and playback.
func (e *Engine) Remove(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	return e.removeLocked(ctx, id)
}

// RemoveAt removes the alarm at the zero-based position.
func (e *Engine) RemoveAt(ctx context.Context, position int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	id, err := e.idAt(position)
	if err != nil {
		return err
	}

	return e.removeLocked(ctx, id)
}

// List returns copies of all alarms in order.
func (e *Engine) List() []*domain.Alarm {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := make([]*domain.Alarm, 0, len(e.alarms))
	for _, a := range e.alarms {
		result = append(result, a.Clone())
	}

	return result
}

// Get returns a copy of the alarm with the given ID.
func (e *Engine) Get(id string) (*domain.Alarm, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	index := e.indexOf(id)
	if index < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return e.alarms[index].Clone(), nil
}

// Close cancels the tick and tears down all playback. It is idempotent.
func (e *Engine) Close(ctx context.Context) {
	// Cancel waits for an in-flight tick, which needs the mutex.
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	e.closed = true
	e.mu.Unlock()

	e.scheduler.Cancel(e.token)

	e.mu.Lock()
	defer e.mu.Unlock()

	for id := range e.handles {
		e.releaseHandle(ctx, id)
	}

	logger.Info(ctx, "Alarm engine stopped")
}

// startPlayback acquires a looping handle for the alarm unless one exists.
func (e *Engine) startPlayback(ctx context.Context, a *domain.Alarm) {
	if _, ok := e.handles[a.ID]; ok {
		return
	}

	ctx = logger.WithFields(ctx, "alarm_id", a.ID, "sound", a.Sound.String())

	handle, err := e.player.Create(ctx, a.Sound)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to start alarm sound", "error", err)
		return
	}

	handle.SetLoop(true)
	handle.Play()

	e.handles[a.ID] = handle

	logger.Info(ctx, "Alarm ringing")
}

func (e *Engine) stopLocked(ctx context.Context, id string) (*domain.Alarm, error) {
	index := e.indexOf(id)
	if index < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	e.releaseHandle(ctx, id)

	// Replace rather than mutate, readers may hold the previous snapshot.
	if e.alarms[index].IsRinging {
		stopped := e.alarms[index].Clone()
		stopped.IsRinging = false

		e.alarms = slices.Clone(e.alarms)
		e.alarms[index] = stopped

		logger.InfoKV(ctx, "Alarm stopped", "alarm_id", id)
	}

	return e.alarms[index].Clone(), nil
}

func (e *Engine) removeLocked(ctx context.Context, id string) error {
	if _, err := e.stopLocked(ctx, id); err != nil {
		return err
	}

	index := e.indexOf(id)
	e.alarms = slices.Delete(slices.Clone(e.alarms), index, index+1)

	logger.InfoKV(ctx, "Alarm removed", "alarm_id", id)

	return nil
}

// releaseHandle pauses, rewinds, unloops and forgets the alarm's handle.
func (e *Engine) releaseHandle(ctx context.Context, id string) {
	handle, ok := e.handles[id]
	if !ok {
		return
	}

	delete(e.handles, id)

	handle.Pause()

	if err := handle.ResetPosition(); err != nil {
		logger.WarnKV(ctx, "Failed to rewind alarm sound", "alarm_id", id, "error", err)
	}

	handle.SetLoop(false)

	if err := handle.Close(); err != nil {
		logger.WarnKV(ctx, "Failed to release alarm sound", "alarm_id", id, "error", err)
	}
}

func (e *Engine) idAt(position int) (string, error) {
	if position < 0 || position >= len(e.alarms) {
		return "", fmt.Errorf("%w: position %d", ErrNotFound, position)
	}

	return e.alarms[position].ID, nil
}

func (e *Engine) indexOf(id string) int {
	return slices.IndexFunc(e.alarms, func(a *domain.Alarm) bool {
		return a.ID == id
	})
}
