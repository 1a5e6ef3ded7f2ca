// Package audio turns simulation events into sound. Playback is fire and
// forget: failures are logged and never reach the caller.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Nop discards every sound request. Used when audio is disabled or the
// device cannot be opened.
type Nop struct{}

func (Nop) Play(core.Event)  {}
func (Nop) PlayTrack(string) {}
func (Nop) StopTrack()       {}
func (Nop) SetVolume(int)    {}

// Tone synthesizes effects and background loops through oto.
type Tone struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger

	mu     sync.Mutex
	volume int
	music  oto.Player
	cache  map[core.EventKind][]byte // effects rendered at the current volume
}

// NewTone opens the default audio device.
func NewTone(logger *log.Logger, volume int) (*Tone, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Tone{
		ctx:    ctx,
		ready:  ready,
		logger: logger,
		volume: core.Clamp(volume, 0, 100),
		cache:  make(map[core.EventKind][]byte),
	}, nil
}

// Open returns a Tone sink, or Nop when the device is unavailable.
func Open(logger *log.Logger, volume int) Sink {
	t, err := NewTone(logger, volume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return Nop{}
	}
	return t
}

// Sink is implemented by Tone and Nop.
type Sink interface {
	Play(ev core.Event)
	PlayTrack(id string)
	StopTrack()
	SetVolume(volume int)
}

func (t *Tone) isReady() bool {
	select {
	case <-t.ready:
		return true
	default:
		return false
	}
}

// Play starts the effect for ev in the background.
func (t *Tone) Play(ev core.Event) {
	burst, ok := eventTones[ev.Kind]
	if !ok || !t.isReady() {
		return
	}

	t.mu.Lock()
	volume := t.volume
	samples, cached := t.cache[ev.Kind]
	if !cached {
		samples = synthTone(burst, effectGain(volume))
		t.cache[ev.Kind] = samples
	}
	t.mu.Unlock()

	if len(samples) == 0 {
		return
	}

	go func() {
		player := t.ctx.NewPlayer(&sampleReader{data: samples})
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Err(); err != nil {
			t.logger.Warn("audio playback failed", "event", ev.Kind, "error", err)
		}
		player.Close()
	}()
}

// PlayTrack replaces the background loop with track id. "none" or an
// unknown id only stops the current loop.
func (t *Tone) PlayTrack(id string) {
	t.StopTrack()
	if !t.isReady() {
		return
	}

	loop := synthTrack(id)
	if len(loop) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.volume == 0 {
		return
	}
	player := t.ctx.NewPlayer(&sampleReader{data: loop, loop: true})
	player.SetVolume(effectGain(t.volume))
	player.Play()
	t.music = player
}

// StopTrack stops the background loop, if any.
func (t *Tone) StopTrack() {
	t.mu.Lock()
	player := t.music
	t.music = nil
	t.mu.Unlock()

	if player == nil {
		return
	}
	player.Pause()
	if err := player.Close(); err != nil {
		t.logger.Warn("audio close failed", "error", err)
	}
}

// SetVolume changes the volume for later effects and the running loop.
func (t *Tone) SetVolume(volume int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.volume = core.Clamp(volume, 0, 100)
	clear(t.cache)
	if t.music != nil {
		t.music.SetVolume(effectGain(t.volume))
	}
}

// sampleReader streams a PCM buffer, optionally looping forever.
type sampleReader struct {
	data []byte
	pos  int
	loop bool
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	if r.pos >= len(r.data) {
		if !r.loop {
			return 0, io.EOF
		}
		r.pos = 0
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
