package render

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/invaders/core"
)

// Worker owns the on-screen frame and diff-renders queued frames on its own goroutine
type Worker struct {
	sink   Sink
	bounds core.Bounds
	queue  *FrameQueue
	done   chan struct{}

	frames atomic.Uint64
	cells  atomic.Uint64
}

// NewWorker creates a worker for frames of the given size; call Start to run it
func NewWorker(sink Sink, b core.Bounds) *Worker {
	return &Worker{
		sink:   sink,
		bounds: b,
		queue:  NewFrameQueue(),
		done:   make(chan struct{}),
	}
}

// Start launches the render goroutine under crash recovery
func (w *Worker) Start() {
	core.Go(w.run)
}

func (w *Worker) run() {
	defer close(w.done)

	// Full first paint clears whatever the terminal held before
	last := core.NewFrame(w.bounds)
	w.cells.Add(uint64(Render(w.sink, last, last, true)))

	for {
		f, ok := w.queue.Receive()
		if !ok {
			return
		}
		w.cells.Add(uint64(Render(w.sink, last, f, false)))
		w.frames.Add(1)
		last = f
	}
}

// Send queues a frame for rendering without waiting for it to be drawn
func (w *Worker) Send(f *core.Frame) error {
	return w.queue.Send(f)
}

// Stop closes the queue and blocks until every queued frame has been drawn
func (w *Worker) Stop() {
	w.queue.Close()
	<-w.done

	frames, cells := w.Stats()
	log.Printf("render: stopped after %d frames, %d cells written", frames, cells)
}

// Stats returns rendered frame and written cell counts
func (w *Worker) Stats() (frames, cells uint64) {
	return w.frames.Load(), w.cells.Load()
}
