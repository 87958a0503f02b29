package audio

import (
	"time"

	"github.com/lixenwraith/invaders/constant"
)

// Config holds speaker and mixing settings
type Config struct {
	SampleRate     int
	BufferDuration time.Duration
	Volume         float64 // master volume, 0.0-1.0
}

// DefaultConfig returns full-volume output at the stock sample rate
func DefaultConfig() Config {
	return Config{
		SampleRate:     constant.AudioSampleRate,
		BufferDuration: constant.AudioBufferDuration,
		Volume:         1.0,
	}
}
