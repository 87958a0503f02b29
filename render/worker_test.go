package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/core"
)

// TestWorkerRendersEveryFrameInOrder verifies no frame is skipped or reordered
func TestWorkerRendersEveryFrameInOrder(t *testing.T) {
	sink := &recordingSink{}
	w := NewWorker(sink, testBounds)
	w.Start()

	// Each frame moves a single marker one column right
	for x := 0; x < testBounds.Width; x++ {
		f := core.NewFrame(testBounds)
		f.SetRune(core.Point{X: x, Y: 0}, 'A', tcell.StyleDefault)
		if err := w.Send(f); err != nil {
			t.Fatalf("Send failed: %v", err)
		}
	}
	w.Stop()

	total := testBounds.Width * testBounds.Height
	if len(sink.writes) < total {
		t.Fatalf("Expected a forced first paint of %d cells, got %d writes", total, len(sink.writes))
	}
	for _, wr := range sink.writes[:total] {
		if wr.r != ' ' {
			t.Fatalf("Expected blank first paint, got %v", wr)
		}
	}

	// First frame draws the marker; each later frame clears the old cell and draws the new
	var markers []int
	for _, wr := range sink.writes[total:] {
		if wr.r == 'A' {
			markers = append(markers, wr.x)
		}
	}
	if len(markers) != testBounds.Width {
		t.Fatalf("Expected %d marker writes, got %d", testBounds.Width, len(markers))
	}
	for i, x := range markers {
		if x != i {
			t.Errorf("Marker write %d at column %d, frames out of order", i, x)
		}
	}

	frames, cells := w.Stats()
	if frames != uint64(testBounds.Width) {
		t.Errorf("Expected %d frames rendered, got %d", testBounds.Width, frames)
	}
	if cells != uint64(len(sink.writes)) {
		t.Errorf("Expected cell count %d to match writes, got %d", len(sink.writes), cells)
	}
	if sink.flushes != testBounds.Width+1 {
		t.Errorf("Expected %d flushes, got %d", testBounds.Width+1, sink.flushes)
	}
}

// TestWorkerStopWithoutFrames verifies a clean shutdown with an empty queue
func TestWorkerStopWithoutFrames(t *testing.T) {
	sink := &recordingSink{}
	w := NewWorker(sink, testBounds)
	w.Start()
	w.Stop()

	if sink.flushes != 1 {
		t.Errorf("Expected only the initial paint, got %d flushes", sink.flushes)
	}
	if err := w.Send(core.NewFrame(testBounds)); err == nil {
		t.Error("Expected Send to fail after Stop")
	}
}
