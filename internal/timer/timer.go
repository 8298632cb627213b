// Package timer implements the countdown state machine driving the focus
// timer. A single instance lives for the process; events (start, pause,
// tick, complete, reset) are serialized by a mutex so they apply one at a
// time in arrival order.
package timer

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aditya10866/personal-pomo/internal/apperr"
	"github.com/aditya10866/personal-pomo/internal/model"
	"github.com/aditya10866/personal-pomo/internal/service"
)

// State of the countdown.
type State string

const (
	// StateIdle: no task entered, timer at configured length, not running.
	StateIdle State = "idle"
	// StateConfigured: task and subject set, not running.
	StateConfigured State = "configured"
	// StateRunning: counting down.
	StateRunning State = "running"
)

const recordTimeout = 10 * time.Second

// Recorder persists a completed run. Implemented by service.SessionService.
type Recorder interface {
	Create(ctx context.Context, input service.SessionInput) (*model.WorkSession, error)
}

// TickScheduler owns the recurring one-second callback. Implemented by
// service.SchedulerService.
type TickScheduler interface {
	ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error)
	Remove(id cron.EntryID)
}

// Snapshot is a read-only view of the timer for the HTTP surface.
type Snapshot struct {
	State            State         `json:"state"`
	TaskName         string        `json:"taskName"`
	Subject          model.Subject `json:"subject"`
	SessionSeconds   int           `json:"sessionSeconds"`
	RemainingSeconds int           `json:"remainingSeconds"`
	StartedAt        *time.Time    `json:"startedAt,omitempty"`
}

// Timer is the countdown controller. Completing a run is the only path
// that persists a work session.
type Timer struct {
	mu sync.Mutex

	state     State
	taskName  string
	subject   model.Subject
	length    int // configured session length, seconds
	remaining int
	startedAt time.Time // zero unless running

	tickEntry cron.EntryID
	ticking   bool

	scheduler TickScheduler
	recorder  Recorder
	logger    *zap.Logger
	now       func() time.Time
}

// New builds an idle timer with the given default session length.
func New(scheduler TickScheduler, recorder Recorder, logger *zap.Logger, defaultMinutes int) *Timer {
	if defaultMinutes < 0 {
		defaultMinutes = 0
	}
	length := defaultMinutes * 60
	return &Timer{
		state:     StateIdle,
		subject:   model.Subjects()[0],
		length:    length,
		remaining: length,
		scheduler: scheduler,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// SetLength changes the configured session length. Rejected while running.
// Negative minutes clamp to zero.
func (t *Timer) SetLength(minutes int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateRunning {
		return apperr.Validationf("cannot change session length while running")
	}
	if minutes < 0 {
		minutes = 0
	}
	t.length = minutes * 60
	t.remaining = t.length
	return nil
}

// SetTask sets the task description. Rejected while running.
func (t *Timer) SetTask(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateRunning {
		return apperr.Validationf("cannot change task while running")
	}
	t.taskName = strings.TrimSpace(name)
	t.syncIdleState()
	return nil
}

// SetSubject sets the subject tag. Rejected while running.
func (t *Timer) SetSubject(subject model.Subject) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateRunning {
		return apperr.Validationf("cannot change subject while running")
	}
	if !subject.Valid() {
		return apperr.Validationf("unknown subject %q", subject)
	}
	t.subject = subject
	return nil
}

// Start begins the countdown. A timer without a task name stays put.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateRunning {
		return nil
	}
	if t.taskName == "" {
		return apperr.Validationf("task name is required to start")
	}

	t.state = StateRunning
	t.startedAt = t.now()
	t.scheduleTickLocked()
	return nil
}

// Tick advances the countdown by one second. It is invoked once per second
// by the scheduler while running and is a no-op in any other state.
func (t *Timer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.completeLocked()
	}
}

// Pause stops counting without recording a session.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return apperr.Validationf("timer is not running")
	}
	t.cancelTickLocked()
	t.state = StateConfigured
	t.startedAt = time.Time{}
	return nil
}

// Complete finishes the current run early, recording the elapsed time.
func (t *Timer) Complete() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return apperr.Validationf("timer is not running")
	}
	t.completeLocked()
	return nil
}

// Reset stops counting and restores the configured length. Allowed in any
// state; never records a session.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelTickLocked()
	t.remaining = t.length
	t.startedAt = time.Time{}
	t.syncIdleState()
}

// Stop tears the timer down on shutdown, cancelling the tick without
// recording anything.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelTickLocked()
	if t.state == StateRunning {
		t.state = StateConfigured
		t.startedAt = time.Time{}
	}
}

// Snapshot returns the current state for display.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		State:            t.state,
		TaskName:         t.taskName,
		Subject:          t.subject,
		SessionSeconds:   t.length,
		RemainingSeconds: t.remaining,
	}
	if !t.startedAt.IsZero() {
		startedAt := t.startedAt
		snap.StartedAt = &startedAt
	}
	return snap
}

// completeLocked is the single producer of session records. It computes the
// wall-clock elapsed time, hands the record off without blocking, and
// resets to idle. The reset happens whether or not the write succeeds.
func (t *Timer) completeLocked() {
	t.cancelTickLocked()

	elapsed := int(t.now().Sub(t.startedAt).Round(time.Second).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}

	input := service.SessionInput{
		TaskName: t.taskName,
		Subject:  t.subject,
		Duration: elapsed,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if _, err := t.recorder.Create(ctx, input); err != nil {
			t.logger.Error("record completed session",
				zap.String("task", input.TaskName),
				zap.String("subject", input.Subject.String()),
				zap.Error(err))
		}
	}()

	t.state = StateIdle
	t.taskName = ""
	t.remaining = t.length
	t.startedAt = time.Time{}
}

func (t *Timer) scheduleTickLocked() {
	if t.ticking {
		return
	}
	id, err := t.scheduler.ScheduleInterval(time.Second, t.Tick)
	if err != nil {
		t.logger.Error("schedule tick", zap.Error(err))
		return
	}
	t.tickEntry = id
	t.ticking = true
}

func (t *Timer) cancelTickLocked() {
	if !t.ticking {
		return
	}
	t.scheduler.Remove(t.tickEntry)
	t.ticking = false
}

// syncIdleState keeps the idle/configured distinction in line with whether
// a task has been entered.
func (t *Timer) syncIdleState() {
	if t.state == StateRunning {
		return
	}
	if t.taskName == "" {
		t.state = StateIdle
	} else {
		t.state = StateConfigured
	}
}
