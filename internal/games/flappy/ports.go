package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Store is the persistent record the game reads on creation and writes on
// every change. storage.Store satisfies it.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	SaveScore(entry storage.ScoreEntry) (int64, error)
}

// Sound receives discrete events and background track changes.
// Implementations must not block. audio.Sink satisfies it.
type Sound interface {
	Play(ev core.Event)
	PlayTrack(id string)
	StopTrack()
	SetVolume(volume int)
}

type silent struct{}

func (silent) Play(core.Event)  {}
func (silent) PlayTrack(string) {}
func (silent) StopTrack()       {}
func (silent) SetVolume(int)    {}
