package audio

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = 8 // two float32 channels
)

// Gain applied on top of the user volume, for effects and music alike.
const mixGain = 0.3

// tone describes a single oscillator burst.
type tone struct {
	freq     float64 // start frequency in Hz
	endFreq  float64 // end frequency for sweeps; 0 keeps freq
	duration float64 // seconds
}

// eventTones maps simulation events to their effect.
var eventTones = map[core.EventKind]tone{
	core.EventStart:     {freq: 500, duration: 0.2},
	core.EventFlap:      {freq: 400, duration: 0.1},
	core.EventScore:     {freq: 600, duration: 0.15},
	core.EventCollision: {freq: 200, duration: 0.3},
	core.EventFall:      {freq: 700, endFreq: 150, duration: 0.5},
}

// trackPatterns are the looping background melodies, as note frequencies
// played for noteLen seconds each.
var trackPatterns = map[string]struct {
	notes   []float64
	noteLen float64
}{
	"track1": {notes: []float64{261.63, 329.63, 392.00, 329.63}, noteLen: 0.6},
	"track2": {notes: []float64{220.00, 261.63, 329.63, 261.63, 196.00, 246.94}, noteLen: 0.35},
	"track3": {notes: []float64{329.63, 392.00, 493.88, 587.33, 493.88, 392.00}, noteLen: 0.18},
	"track4": {notes: []float64{293.66, 349.23, 440.00, 349.23, 293.66, 261.63, 293.66, 220.00}, noteLen: 0.25},
}

// effectGain is the starting amplitude for a user volume in 0..100.
func effectGain(volume int) float64 {
	return float64(volume) / 100 * mixGain
}

// synthTone renders a sine burst whose gain decays exponentially from gain
// to 0.01 over the duration.
func synthTone(t tone, gain float64) []byte {
	frames := int(t.duration * SampleRate)
	if frames <= 0 || gain <= 0 {
		return nil
	}
	buf := make([]byte, frames*bytesPerFrame)

	end := t.endFreq
	if end == 0 {
		end = t.freq
	}
	floor := 0.01
	if gain < floor {
		floor = gain
	}
	decay := math.Log(floor / gain)

	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := t.freq + (end-t.freq)*progress
		phase += 2 * math.Pi * freq / SampleRate
		amp := gain * math.Exp(decay*progress)
		putStereoF32(buf, i, amp*math.Sin(phase))
	}
	return buf
}

// synthTrack renders one loop of a background melody at unit gain.
// Volume is applied by the player so loops can be reused.
func synthTrack(id string) []byte {
	pattern, ok := trackPatterns[id]
	if !ok {
		return nil
	}
	noteFrames := int(pattern.noteLen * SampleRate)
	buf := make([]byte, noteFrames*len(pattern.notes)*bytesPerFrame)

	for n, freq := range pattern.notes {
		for i := 0; i < noteFrames; i++ {
			progress := float64(i) / float64(noteFrames)
			// short attack and release keep note boundaries click-free
			env := math.Min(1, math.Min(progress*20, (1-progress)*8))
			t := float64(i) / SampleRate
			sample := 0.6*math.Sin(2*math.Pi*freq*t) + 0.2*math.Sin(4*math.Pi*freq*t)
			putStereoF32(buf, n*noteFrames+i, env*sample)
		}
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	off := i * bytesPerFrame
	for ch := 0; ch < ChannelCount; ch++ {
		buf[off+ch*4] = byte(v)
		buf[off+ch*4+1] = byte(v >> 8)
		buf[off+ch*4+2] = byte(v >> 16)
		buf[off+ch*4+3] = byte(v >> 24)
	}
}
