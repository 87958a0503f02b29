package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/constant"
	"github.com/lixenwraith/invaders/core"
)

// ErrInputClosed is returned by Poll once the event stream has ended
var ErrInputClosed = errors.New("terminal: input closed")

// Host owns the terminal session: alternate screen, raw mode, cursor and input pump
type Host struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	mu      sync.Mutex
	running bool
}

// New wraps a screen; call Init to enter the session
func New(screen tcell.Screen) *Host {
	return &Host{
		screen: screen,
		events: make(chan tcell.Event, constant.InputQueueSize),
		quit:   make(chan struct{}),
	}
}

// Open creates a host on the controlling terminal and initializes it
func Open() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	h := New(screen)
	if err := h.Init(); err != nil {
		return nil, err
	}
	return h, nil
}

// Init enters raw mode and the alternate screen, hides the cursor and starts the input pump
func (h *Host) Init() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return nil
	}

	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	h.screen.HideCursor()
	h.screen.Clear()
	core.RegisterCrashScreen(h.screen)

	// ChannelEvents closes h.events when quit is closed or the screen ends
	go h.screen.ChannelEvents(h.events, h.quit)

	h.running = true
	return nil
}

// Screen returns the underlying tcell screen, used as the render sink
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Poll drains every pending key event without blocking.
// Resize events resync the screen; an input error or closed stream is returned as an error.
func (h *Host) Poll() ([]*tcell.EventKey, error) {
	var keys []*tcell.EventKey
	for {
		select {
		case ev, ok := <-h.events:
			if !ok {
				return keys, ErrInputClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys = append(keys, ev)
			case *tcell.EventResize:
				h.screen.Sync()
			case *tcell.EventError:
				return keys, fmt.Errorf("terminal: input: %w", ev)
			}
		default:
			return keys, nil
		}
	}
}

// Fini stops the input pump and restores the terminal
func (h *Host) Fini() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return
	}
	h.running = false

	close(h.quit)
	core.RegisterCrashScreen(nil)
	h.screen.ShowCursor(0, 0)
	h.screen.Fini()
}
