// Package timer provides a cooperative, virtual-time timer queue.
// Time only moves when the owner calls Advance, so every delayed
// transition runs on the caller's goroutine and cancellation is
// synchronous: a cancelled callback can never fire afterwards.
package timer

import (
	"container/heap"
	"time"
)

// Scheduler holds pending callbacks ordered by deadline.
// It is not safe for concurrent use; the platform drives it from the
// Bubble Tea update loop.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending entryHeap
}

// entry is a single scheduled callback.
type entry struct {
	seq       uint64
	at        time.Duration
	fn        func()
	group     *Group
	index     int
	cancelled bool
	fired     bool
}

// Handle identifies a scheduled callback. The zero Handle is inert.
type Handle struct {
	e *entry
}

// Active reports whether the callback is still waiting to fire.
func (h Handle) Active() bool {
	return h.e != nil && !h.e.cancelled && !h.e.fired
}

// Deadline returns the virtual instant at which the callback fires.
func (h Handle) Deadline() time.Duration {
	if h.e == nil {
		return 0
	}
	return h.e.at
}

// NewScheduler creates an empty scheduler at virtual time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, e := range s.pending {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// After schedules fn to run once d has elapsed from Now.
// Non-positive delays fire on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.schedule(d, fn, nil)
}

func (s *Scheduler) schedule(d time.Duration, fn func(), g *Group) Handle {
	if d < 0 {
		d = 0
	}
	s.seq++
	e := &entry{
		seq:   s.seq,
		at:    s.now + d,
		fn:    fn,
		group: g,
	}
	heap.Push(&s.pending, e)
	if g != nil {
		g.entries[e.seq] = e
	}
	return Handle{e: e}
}

// Cancel prevents the callback from firing.
// Returns false if it already fired or was already cancelled.
func (s *Scheduler) Cancel(h Handle) bool {
	if !h.Active() {
		return false
	}
	h.e.cancelled = true
	if h.e.index >= 0 && h.e.index < len(s.pending) && s.pending[h.e.index] == h.e {
		heap.Remove(&s.pending, h.e.index)
	}
	if h.e.group != nil {
		delete(h.e.group.entries, h.e.seq)
	}
	return true
}

// Advance moves virtual time forward by d, firing every callback whose
// deadline falls within the window in deadline order. Callbacks scheduled
// while firing are honoured if they also fall inside the window.
// Returns the number of callbacks fired.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return s.AdvanceTo(s.now + d)
}

// AdvanceTo moves virtual time forward to t. Moving backwards is a no-op.
func (s *Scheduler) AdvanceTo(t time.Duration) int {
	fired := 0
	for len(s.pending) > 0 {
		next := s.pending[0]
		if next.at > t {
			break
		}
		heap.Pop(&s.pending)
		if next.cancelled {
			continue
		}
		if next.at > s.now {
			s.now = next.at
		}
		next.fired = true
		if next.group != nil {
			delete(next.group.entries, next.seq)
		}
		next.fn()
		fired++
	}
	if t > s.now {
		s.now = t
	}
	return fired
}

// NewGroup creates a timer group bound to this scheduler.
func (s *Scheduler) NewGroup() *Group {
	return &Group{
		sched:   s,
		entries: make(map[uint64]*entry),
	}
}

// Group is a set of timers owned by one component. Stopping the group
// cancels everything it scheduled, which is how a screen tears down its
// pending transitions when it is left.
type Group struct {
	sched   *Scheduler
	entries map[uint64]*entry
	stopped bool
}

// Now returns the scheduler's current virtual time.
func (g *Group) Now() time.Duration {
	return g.sched.Now()
}

// After schedules fn on the owning scheduler. A stopped group schedules nothing
// and returns the zero Handle.
func (g *Group) After(d time.Duration, fn func()) Handle {
	if g.stopped {
		return Handle{}
	}
	return g.sched.schedule(d, fn, g)
}

// Cancel cancels a single timer belonging to this group.
func (g *Group) Cancel(h Handle) bool {
	if h.e == nil || h.e.group != g {
		return false
	}
	return g.sched.Cancel(h)
}

// Pending returns the number of live timers in the group.
func (g *Group) Pending() int {
	return len(g.entries)
}

// Stop cancels every pending timer and refuses new ones.
// Calling Stop more than once is safe.
func (g *Group) Stop() {
	for _, e := range g.entries {
		g.sched.Cancel(Handle{e: e})
	}
	g.stopped = true
}

// Stopped reports whether Stop has been called.
func (g *Group) Stopped() bool {
	return g.stopped
}

// entryHeap orders entries by deadline, then by scheduling order.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].at == h[j].at {
		return h[i].seq < h[j].seq
	}
	return h[i].at < h[j].at
}

func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}
