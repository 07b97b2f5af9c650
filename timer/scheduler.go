package timer

import (
	"container/heap"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler is the single-goroutine, min-heap-backed delayed-effect
// service spec.md §9 calls for (the DPDT relay's 10 ms switching
// delay, and any future component needing the same). Schedule never
// blocks the caller; Cancel and the dispatcher's decision to fire are
// serialized by the scheduler's mutex, so a fired callback and a
// racing Cancel can never both "win" — exactly one does.
type Scheduler struct {
	clock Clock

	mu    sync.Mutex
	tasks taskHeap

	wake chan struct{}
	stop chan struct{}
	done chan struct{}

	nextID  uint64
	stopped int32
}

// NewScheduler creates a Scheduler backed by the real wall clock and
// starts its dispatcher goroutine.
func NewScheduler() *Scheduler {
	return NewSchedulerWithClock(realClock{})
}

// NewSchedulerWithClock creates a Scheduler backed by an injected
// Clock — used by tests to drive delayed effects without sleeping.
func NewSchedulerWithClock(c Clock) *Scheduler {
	s := &Scheduler{
		clock: c,
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Handle references one scheduled callback, returned by Schedule.
type Handle struct {
	s    *Scheduler
	task *task
}

// Cancel prevents the callback from firing, if it has not already.
// Returns false if the callback already fired or was already
// cancelled.
func (h *Handle) Cancel() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if h.task.fired || h.task.cancelled {
		return false
	}
	h.task.cancelled = true
	return true
}

// Schedule arms fn to run after delay. fn runs on the scheduler's
// dispatcher goroutine, so it must not block or call back into
// Schedule/Cancel/Shutdown synchronously in a way that would deadlock
// (components typically just mutate their own state and bridges, see
// components.DPDTRelay).
func (s *Scheduler) Schedule(delay time.Duration, fn func()) *Handle {
	s.mu.Lock()
	s.nextID++
	t := &task{
		id:     s.nextID,
		fireAt: s.clock.Now().Add(delay).UnixNano(),
		fn:     fn,
	}
	heap.Push(&s.tasks, t)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}

	return &Handle{s: s, task: t}
}

// Shutdown stops the dispatcher, waiting up to timeout for any
// in-flight callback to finish (spec.md §4.9: the engine waits briefly
// for in-flight delayed effects to complete on shutdown). Pending,
// not-yet-fired tasks are abandoned.
func (s *Scheduler) Shutdown(timeout time.Duration) error {
	if atomic.CompareAndSwapInt32(&s.stopped, 0, 1) {
		close(s.stop)
	}
	select {
	case <-s.done:
		return nil
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}

func (s *Scheduler) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		if s.tasks.Len() == 0 {
			s.mu.Unlock()
			select {
			case <-s.wake:
				continue
			case <-s.stop:
				return
			}
		}

		next := s.tasks[0]
		now := s.clock.Now().UnixNano()
		if next.fireAt <= now {
			heap.Pop(&s.tasks)
			if next.cancelled {
				s.mu.Unlock()
				continue
			}
			next.fired = true
			s.mu.Unlock()
			next.fn()
			continue
		}

		wait := time.Duration(next.fireAt - now)
		s.mu.Unlock()

		select {
		case <-s.clock.After(wait):
		case <-s.wake:
		case <-s.stop:
			return
		}
	}
}
