package command

import (
	"errors"
	"sync"
)

var (
	ErrQueueFull   = errors.New("command queue is full")
	ErrQueueClosed = errors.New("command queue is closed")
)

// Queue buffers commands for RemoteControl.Drain. Drain returns once the
// queue is closed and empty.
type Queue struct {
	ch     chan Command
	lock   sync.Mutex
	closed bool
}

func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan Command, size)}
}

// Enqueue adds all of cmds or none of them. It never blocks: a batch that
// does not fit the free buffer returns ErrQueueFull.
func (q *Queue) Enqueue(cmds ...Command) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	if len(q.ch)+len(cmds) > cap(q.ch) {
		return ErrQueueFull
	}
	for _, c := range cmds {
		q.ch <- c
	}
	return nil
}

// Close is safe to call more than once.
func (q *Queue) Close() {
	q.lock.Lock()
	defer q.lock.Unlock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
}
