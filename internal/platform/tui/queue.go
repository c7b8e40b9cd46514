package tui

import "github.com/vovakirdan/tui-tetris/internal/core"

// DefaultQueueLimit bounds buffered key presses so held keys cannot build
// a long backlog.
const DefaultQueueLimit = 32

// InputQueue buffers actions between ticks in arrival order.
// Each Poll takes at most one action, so a tick never sees two inputs.
type InputQueue struct {
	pending []core.Action
	limit   int
}

var _ core.InputSource = (*InputQueue)(nil)

// NewInputQueue creates a queue holding at most limit actions.
// A non-positive limit selects DefaultQueueLimit.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	return &InputQueue{limit: limit}
}

// Push appends an action. Returns false if the queue is full or a is ActionNone.
func (q *InputQueue) Push(a core.Action) bool {
	if a == core.ActionNone || len(q.pending) >= q.limit {
		return false
	}
	q.pending = append(q.pending, a)
	return true
}

// Poll removes and returns the oldest action.
func (q *InputQueue) Poll() core.Poll {
	if len(q.pending) == 0 {
		return core.NoKey()
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	return core.KeyPress(a)
}

// Len returns the number of buffered actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Clear drops all buffered actions.
func (q *InputQueue) Clear() {
	q.pending = nil
}
