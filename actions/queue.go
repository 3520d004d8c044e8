package actions

// Queue collects actions produced during a frame. It is owned by the
// game loop; nothing about it is safe for concurrent use.
type Queue struct {
	pending []Action
}

// Push appends one action.
func (q *Queue) Push(a Action) {
	q.pending = append(q.pending, a)
}

// PushAll appends a batch, keeping its order.
func (q *Queue) PushAll(batch ...Action) {
	q.pending = append(q.pending, batch...)
}

// Empty reports whether anything is queued.
func (q *Queue) Empty() bool { return len(q.pending) == 0 }

// Len returns the number of queued actions.
func (q *Queue) Len() int { return len(q.pending) }

// Drain removes and returns everything queued, in insertion order.
func (q *Queue) Drain() []Action {
	out := q.pending
	q.pending = nil
	return out
}

// Handler applies a single action. Mutations are visible immediately, so
// later actions in the same batch see the new state.
type Handler interface {
	Apply(Action)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(Action)

func (f HandlerFunc) Apply(a Action) { f(a) }

// Dispatch applies every queued action in insertion order, including
// actions the handler enqueues while the dispatch runs. Returns the
// number of actions applied.
func (q *Queue) Dispatch(h Handler) int {
	n := 0
	for !q.Empty() {
		for _, a := range q.Drain() {
			h.Apply(a)
			n++
		}
	}
	return n
}
