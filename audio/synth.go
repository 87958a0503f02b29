package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/invaders/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

type note struct {
	freq float64
	wave WaveType
}

// sequence plays shaped notes back to back
func sequence(rate beep.SampleRate, dur, attack, release time.Duration, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = NewEnvelope(NewOscillator(n.freq, dur, n.wave, rate), dur, attack, release, rate)
	}
	return beep.Seq(parts...)
}

// synthCue generates a stand-in for a cue with no sound file; nil for unknown names
func synthCue(name string, rate beep.SampleRate) beep.Streamer {
	switch name {
	case constant.CueStartup:
		return sequence(rate, constant.JingleNoteDuration, constant.JingleNoteAttack, constant.JingleNoteRelease,
			note{987.77, WaveSquare}, note{1318.51, WaveSquare})
	case constant.CuePew:
		return newVolume(sequence(rate, constant.PewSoundDuration/2, constant.PewSoundAttack, constant.PewSoundRelease/2,
			note{1760, WaveSquare}, note{1320, WaveSquare}), 0.4)
	case constant.CueExplode:
		noise := NewOscillator(0, constant.ExplodeSoundDuration, WaveNoise, rate)
		return newVolume(NewEnvelope(noise, constant.ExplodeSoundDuration, constant.ExplodeSoundAttack, constant.ExplodeSoundRelease, rate), 0.6)
	case constant.CueMove:
		osc := NewOscillator(110, constant.MoveSoundDuration, WaveSquare, rate)
		return newVolume(NewEnvelope(osc, constant.MoveSoundDuration, constant.MoveSoundAttack, constant.MoveSoundRelease, rate), 0.3)
	case constant.CueWin:
		return sequence(rate, constant.JingleNoteDuration, constant.JingleNoteAttack, constant.JingleNoteRelease,
			note{523.25, WaveSine}, note{659.25, WaveSine}, note{783.99, WaveSine}, note{1046.50, WaveSine})
	case constant.CueLose:
		return sequence(rate, 2*constant.JingleNoteDuration, constant.JingleNoteAttack, constant.JingleNoteRelease,
			note{392.00, WaveSaw}, note{329.63, WaveSaw}, note{261.63, WaveSaw})
	default:
		return nil
	}
}
