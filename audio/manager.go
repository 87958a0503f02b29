package audio

import (
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Manager plays named cues. Cues load from wav files; names without a file
// fall back to a synthesized tone. Without a working speaker every call is a no-op.
type Manager struct {
	mu          sync.Mutex
	config      Config
	rate        beep.SampleRate
	sounds      map[string]*beep.Buffer
	playing     sync.WaitGroup
	initialized bool
}

// NewManager creates a manager; call Initialize to open the speaker
func NewManager(cfg Config) *Manager {
	return &Manager{
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		sounds: make(map[string]*beep.Buffer),
	}
}

// Initialize opens the speaker. On failure the manager stays silent.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.rate, m.rate.N(m.config.BufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	m.initialized = true
	return nil
}

// LoadDir registers every wav file in dir under its file stem.
// An unreadable directory or undecodable file is an error.
func (m *Manager) LoadDir(dir string) (int, error) {
	files, err := discover(dir)
	if err != nil {
		return 0, fmt.Errorf("audio: %w", err)
	}

	loaded := make(map[string]*beep.Buffer, len(files))
	for name, path := range files {
		buf, err := decodeFile(path, m.rate)
		if err != nil {
			return 0, fmt.Errorf("audio: load %s: %w", path, err)
		}
		loaded[name] = buf
	}

	m.mu.Lock()
	for name, buf := range loaded {
		m.sounds[name] = buf
	}
	m.mu.Unlock()

	log.Printf("audio: loaded %d cues from %s", len(loaded), dir)
	return len(loaded), nil
}

// Names returns the registered cue names, sorted
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.sounds))
	for name := range m.sounds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Play starts a cue and returns immediately
func (m *Manager) Play(name string) {
	m.mu.Lock()
	if !m.initialized {
		m.mu.Unlock()
		return
	}

	var s beep.Streamer
	if buf, ok := m.sounds[name]; ok {
		s = buf.Streamer(0, buf.Len())
	} else if s = synthCue(name, m.rate); s == nil {
		m.mu.Unlock()
		log.Printf("audio: unknown cue %q", name)
		return
	}

	m.playing.Add(1)
	vol := m.config.Volume
	m.mu.Unlock()

	speaker.Play(beep.Seq(newVolume(s, vol), beep.Callback(m.playing.Done)))
}

// Wait blocks until every started cue has finished
func (m *Manager) Wait() {
	m.playing.Wait()
}

// Close stops all sounds and releases the speaker
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	m.initialized = false
}
