package constant

import "time"

// Cue names, matched against sound file stems
const (
	CueStartup = "startup"
	CuePew     = "pew"
	CueExplode = "explode"
	CueMove    = "move"
	CueWin     = "win"
	CueLose    = "lose"
)

// Audio output settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
	SoundFileExt        = ".wav"
)

// Synthesized fallback cue shapes
const (
	PewSoundDuration = 120 * time.Millisecond
	PewSoundAttack   = 2 * time.Millisecond
	PewSoundRelease  = 60 * time.Millisecond

	ExplodeSoundDuration = 300 * time.Millisecond
	ExplodeSoundAttack   = 2 * time.Millisecond
	ExplodeSoundRelease  = 220 * time.Millisecond

	MoveSoundDuration = 60 * time.Millisecond
	MoveSoundAttack   = 5 * time.Millisecond
	MoveSoundRelease  = 20 * time.Millisecond

	JingleNoteDuration = 140 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 60 * time.Millisecond
)
