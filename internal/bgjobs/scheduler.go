package bgjobs

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs a task once after a delay.
// Scheduled tasks can't be canceled.
type Scheduler interface {
	After(delay time.Duration, task func())
}

// TimerScheduler runs delayed tasks as background jobs, so that
// Register.WaitAll also waits for pending tasks.
type TimerScheduler struct {
	register *Register
}

func NewTimerScheduler(register *Register) *TimerScheduler {
	return &TimerScheduler{
		register: register,
	}
}

func (s *TimerScheduler) After(delay time.Duration, task func()) {
	s.register.Go(func() {
		time.Sleep(delay)
		task()
	})
}

// ManualScheduler doesn't use real time. Tasks fire only when the clock
// is advanced, which makes it handy in tests.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []manualTask
}

type manualTask struct {
	at   time.Duration
	seq  int
	task func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) After(delay time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.tasks = append(s.tasks, manualTask{
		at:   s.now + delay,
		seq:  s.seq,
		task: task,
	})
}

// Pending returns the number of tasks that haven't fired yet.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Advance moves the clock forward and runs all tasks that became due,
// in due order. Returns the number of tasks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	s.now += d
	now := s.now
	s.mu.Unlock()

	var ran int
	for {
		task, ok := s.popDue(now)
		if !ok {
			return ran
		}
		// tasks run without the lock, they may schedule more tasks
		task()
		ran++
	}
}

// RunAll advances the clock far enough to run every pending task.
func (s *ManualScheduler) RunAll() int {
	s.mu.Lock()
	var last time.Duration
	for _, t := range s.tasks {
		if t.at > last {
			last = t.at
		}
	}
	d := last - s.now
	s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	return s.Advance(d)
}

func (s *ManualScheduler) popDue(now time.Duration) (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].at != s.tasks[j].at {
			return s.tasks[i].at < s.tasks[j].at
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})

	if len(s.tasks) == 0 || s.tasks[0].at > now {
		return nil, false
	}

	task := s.tasks[0].task
	s.tasks = s.tasks[1:]
	return task, true
}
