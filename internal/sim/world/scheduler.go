package world

import (
	"container/heap"

	"wildgrid/internal/ecs"
)

// Scheduler is the action-economy consumer: a time-ordered queue of agents.
// Pop yields the next due agent and advances the simulated clock to its
// turn; the committed action's delay decides when the agent comes up again.
// Ties pop in insertion order so equal-speed agents alternate fairly.
type Scheduler struct {
	q   turnQueue
	seq uint64
	now float64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues the agent to act at the given time. Times before the
// current clock are clamped to "now" — the clock never runs backwards.
func (s *Scheduler) Schedule(id ecs.ID, at float64) {
	if at < s.now {
		at = s.now
	}
	s.seq++
	heap.Push(&s.q, turn{at: at, seq: s.seq, id: id})
}

// Pop removes and returns the next due agent, advancing the clock.
func (s *Scheduler) Pop() (ecs.ID, bool) {
	if s.q.Len() == 0 {
		return ecs.None, false
	}
	t := heap.Pop(&s.q).(turn)
	s.now = t.at
	return t.id, true
}

func (s *Scheduler) Now() float64 { return s.now }
func (s *Scheduler) Len() int     { return s.q.Len() }

type turn struct {
	at  float64
	seq uint64
	id  ecs.ID
}

type turnQueue []turn

func (q turnQueue) Len() int { return len(q) }
func (q turnQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q turnQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *turnQueue) Push(x any) { *q = append(*q, x.(turn)) }

func (q *turnQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}

// Turn runs one full decide→validate→commit cycle for the next due agent.
// Dead or deleted agents fall out of the rotation here. Returns false when
// the queue is empty.
func (w *World) Turn(c *Controller) bool {
	id, ok := w.sched.Pop()
	if !ok {
		return false
	}
	if !w.Alive(id) {
		return true
	}
	delay := c.Act(id)
	if delay <= 0 {
		// Nothing happened (all behaviors scored 0, or the chosen action was
		// rejected); retry after a minimal delay rather than spinning.
		delay = w.tun.Scheduler.RetryDelay
	}
	w.sched.Schedule(id, w.sched.Now()+delay)
	return true
}

// RunTurns drives n turns; it stops early only if the queue empties.
func (w *World) RunTurns(c *Controller, n int) {
	for i := 0; i < n; i++ {
		if !w.Turn(c) {
			return
		}
	}
}
