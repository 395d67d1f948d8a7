package parameter

import "time"

// Audio output
const (
	// AudioSampleRate for the speaker and synthesized clips
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume default linear gain
	AudioMasterVolume = 0.8
)

// Synthesized clip lengths
const (
	ClipHonk  = 220 * time.Millisecond
	ClipEcho  = 600 * time.Millisecond
	ClipPeep  = 90 * time.Millisecond
	ClipSplat = 250 * time.Millisecond
	ClipCrack = 180 * time.Millisecond
	ClipBonk  = 140 * time.Millisecond
	ClipDance = 8800 * time.Millisecond
)
