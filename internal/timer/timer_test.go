package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aditya10866/personal-pomo/internal/model"
	"github.com/aditya10866/personal-pomo/internal/service"
)

// fakeScheduler records scheduled entries; ticks are driven by the test.
type fakeScheduler struct {
	mu      sync.Mutex
	nextID  cron.EntryID
	active  map[cron.EntryID]func()
	removed int
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{active: make(map[cron.EntryID]func())}
}

func (f *fakeScheduler) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.active[f.nextID] = job
	return f.nextID, nil
}

func (f *fakeScheduler) Remove(id cron.EntryID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, id)
	f.removed++
}

func (f *fakeScheduler) activeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.active)
}

// fakeRecorder signals every recorded session on a channel.
type fakeRecorder struct {
	recorded chan service.SessionInput
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{recorded: make(chan service.SessionInput, 8)}
}

func (f *fakeRecorder) Create(ctx context.Context, input service.SessionInput) (*model.WorkSession, error) {
	f.recorded <- input
	return &model.WorkSession{TaskName: input.TaskName, Subject: input.Subject, Duration: input.Duration}, nil
}

func newTestTimer(t *testing.T) (*Timer, *fakeScheduler, *fakeRecorder, *time.Time) {
	t.Helper()
	sched := newFakeScheduler()
	rec := newFakeRecorder()
	tm := New(sched, rec, zap.NewNop(), 25)

	now := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.Local)
	tm.now = func() time.Time { return now }
	return tm, sched, rec, &now
}

func (f *fakeRecorder) waitForSession(t *testing.T) service.SessionInput {
	t.Helper()
	select {
	case input := <-f.recorded:
		return input
	case <-time.After(2 * time.Second):
		t.Fatal("no session was recorded")
		return service.SessionInput{}
	}
}

func (f *fakeRecorder) assertNoSession(t *testing.T) {
	t.Helper()
	select {
	case input := <-f.recorded:
		t.Fatalf("unexpected session recorded: %+v", input)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStartWithoutTaskIsRejected(t *testing.T) {
	tm, sched, _, _ := newTestTimer(t)

	if err := tm.Start(); err == nil {
		t.Fatal("expected an error starting with no task")
	}

	snap := tm.Snapshot()
	if snap.State != StateIdle {
		t.Errorf("state = %q, want %q", snap.State, StateIdle)
	}
	if snap.RemainingSeconds != 25*60 {
		t.Errorf("remaining = %d, want %d", snap.RemainingSeconds, 25*60)
	}
	if sched.activeCount() != 0 {
		t.Error("tick was scheduled for a rejected start")
	}
}

func TestStartTickAndAutoComplete(t *testing.T) {
	tm, sched, rec, now := newTestTimer(t)

	if err := tm.SetLength(0); err != nil {
		t.Fatalf("SetLength: %v", err)
	}
	if err := tm.SetLength(1); err != nil {
		t.Fatalf("SetLength: %v", err)
	}
	if err := tm.SetTask("essay draft"); err != nil {
		t.Fatalf("SetTask: %v", err)
	}
	if err := tm.SetSubject(model.SubjectEnglish); err != nil {
		t.Fatalf("SetSubject: %v", err)
	}

	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := tm.Snapshot().State; got != StateRunning {
		t.Fatalf("state = %q, want %q", got, StateRunning)
	}
	if sched.activeCount() != 1 {
		t.Fatalf("active tick entries = %d, want 1", sched.activeCount())
	}

	// Remaining time strictly decreases on every tick.
	prev := tm.Snapshot().RemainingSeconds
	for i := 0; i < 59; i++ {
		tm.Tick()
		cur := tm.Snapshot().RemainingSeconds
		if cur >= prev {
			t.Fatalf("tick %d: remaining went %d -> %d", i, prev, cur)
		}
		prev = cur
	}

	// Wall clock has moved 75s even though only 60 ticks fired.
	*now = now.Add(75 * time.Second)
	tm.Tick()

	input := rec.waitForSession(t)
	if input.TaskName != "essay draft" || input.Subject != model.SubjectEnglish {
		t.Errorf("recorded %+v", input)
	}
	if input.Duration != 75 {
		t.Errorf("duration = %d, want wall-clock 75", input.Duration)
	}

	snap := tm.Snapshot()
	if snap.State != StateIdle {
		t.Errorf("state after completion = %q, want %q", snap.State, StateIdle)
	}
	if snap.TaskName != "" {
		t.Errorf("task was not cleared: %q", snap.TaskName)
	}
	if snap.RemainingSeconds != 60 {
		t.Errorf("remaining = %d, want reset to 60", snap.RemainingSeconds)
	}
	if snap.StartedAt != nil {
		t.Error("startedAt was not cleared")
	}
	if sched.activeCount() != 0 {
		t.Error("tick entry survived completion")
	}

	// Exactly one session per run; stray ticks must not fire again.
	tm.Tick()
	rec.assertNoSession(t)
}

func TestPauseDoesNotRecord(t *testing.T) {
	tm, sched, rec, _ := newTestTimer(t)

	if err := tm.SetTask("flashcards"); err != nil {
		t.Fatalf("SetTask: %v", err)
	}
	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	tm.Tick()
	tm.Tick()

	if err := tm.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}

	rec.assertNoSession(t)

	snap := tm.Snapshot()
	if snap.State != StateConfigured {
		t.Errorf("state = %q, want %q", snap.State, StateConfigured)
	}
	if snap.TaskName != "flashcards" {
		t.Errorf("pause cleared the task: %q", snap.TaskName)
	}
	if snap.StartedAt != nil {
		t.Error("startedAt survived pause")
	}
	if sched.activeCount() != 0 {
		t.Error("tick entry survived pause")
	}

	// Remaining time is frozen while paused.
	frozen := snap.RemainingSeconds
	tm.Tick()
	if got := tm.Snapshot().RemainingSeconds; got != frozen {
		t.Errorf("remaining moved while paused: %d -> %d", frozen, got)
	}
}

func TestManualComplete(t *testing.T) {
	tm, _, rec, now := newTestTimer(t)

	if err := tm.SetTask("past papers"); err != nil {
		t.Fatalf("SetTask: %v", err)
	}
	if err := tm.SetSubject(model.SubjectPhysics); err != nil {
		t.Fatalf("SetSubject: %v", err)
	}
	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	*now = now.Add(90 * time.Second)
	if err := tm.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	input := rec.waitForSession(t)
	if input.Duration != 90 {
		t.Errorf("duration = %d, want 90", input.Duration)
	}
	if input.Subject != model.SubjectPhysics {
		t.Errorf("subject = %q", input.Subject)
	}

	if err := tm.Complete(); err == nil {
		t.Error("Complete out of running state should fail")
	}
	rec.assertNoSession(t)
}

func TestResetNeverRecords(t *testing.T) {
	tm, sched, rec, _ := newTestTimer(t)

	if err := tm.SetTask("notes"); err != nil {
		t.Fatalf("SetTask: %v", err)
	}
	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	tm.Tick()

	tm.Reset()

	rec.assertNoSession(t)
	snap := tm.Snapshot()
	if snap.RemainingSeconds != 25*60 {
		t.Errorf("remaining = %d, want %d", snap.RemainingSeconds, 25*60)
	}
	if snap.State != StateConfigured {
		t.Errorf("state = %q, want %q (task still set)", snap.State, StateConfigured)
	}
	if sched.activeCount() != 0 {
		t.Error("tick entry survived reset")
	}
}

func TestConfigurationRejectedWhileRunning(t *testing.T) {
	tm, _, _, _ := newTestTimer(t)

	if err := tm.SetTask("revision"); err != nil {
		t.Fatalf("SetTask: %v", err)
	}
	if err := tm.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := tm.SetLength(50); err == nil {
		t.Error("SetLength while running should fail")
	}
	if err := tm.SetTask("other"); err == nil {
		t.Error("SetTask while running should fail")
	}
	if err := tm.SetSubject(model.SubjectPE); err == nil {
		t.Error("SetSubject while running should fail")
	}
}

func TestSetTaskTogglesIdleAndConfigured(t *testing.T) {
	tm, _, _, _ := newTestTimer(t)

	if err := tm.SetTask("geometry"); err != nil {
		t.Fatalf("SetTask: %v", err)
	}
	if got := tm.Snapshot().State; got != StateConfigured {
		t.Errorf("state = %q, want %q", got, StateConfigured)
	}

	if err := tm.SetTask("   "); err != nil {
		t.Fatalf("SetTask: %v", err)
	}
	if got := tm.Snapshot().State; got != StateIdle {
		t.Errorf("state = %q, want %q", got, StateIdle)
	}
}
