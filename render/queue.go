package render

import (
	"errors"
	"sync"

	"github.com/lixenwraith/invaders/core"
)

// ErrQueueClosed is returned when sending on a closed queue
var ErrQueueClosed = errors.New("frame queue closed")

// FrameQueue is an unbounded FIFO with one producer and one consumer.
// Send never blocks; Receive blocks until a frame is queued or the queue is closed and drained.
type FrameQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frames []*core.Frame
	closed bool
}

// NewFrameQueue creates an empty open queue
func NewFrameQueue() *FrameQueue {
	q := &FrameQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send enqueues f; ownership of f passes to the consumer
func (q *FrameQueue) Send(f *core.Frame) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.frames = append(q.frames, f)
	q.cond.Signal()
	return nil
}

// Receive returns the oldest frame, or false once closed with nothing left
func (q *FrameQueue) Receive() (*core.Frame, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.frames) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.frames) == 0 {
		return nil, false
	}

	f := q.frames[0]
	q.frames[0] = nil
	q.frames = q.frames[1:]
	return f, true
}

// Close stops further sends; queued frames are still delivered
func (q *FrameQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// Len returns the number of frames waiting
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}
