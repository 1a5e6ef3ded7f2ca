package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// DefaultVolume is used until the player changes it.
const DefaultVolume = 50

// TrackNone disables background music.
const TrackNone = "none"

// Track is a background music choice.
type Track struct {
	ID    string
	Title string
}

var tracks = []Track{
	{ID: TrackNone, Title: "Off"},
	{ID: "track1", Title: "Super Slow"},
	{ID: "track2", Title: "Never Alone"},
	{ID: "track3", Title: "Light It Up"},
	{ID: "track4", Title: "Xonada"},
}

// Tracks lists the selectable tracks in cycling order.
func Tracks() []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks)
	return out
}

func trackIndex(id string) int {
	for i, t := range tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Prefs are the player's persisted settings.
type Prefs struct {
	Volume     int
	Track      string
	Difficulty config.Difficulty
}

// TrackTitle returns the display name of the selected track.
func (p Prefs) TrackTitle() string {
	if i := trackIndex(p.Track); i >= 0 {
		return tracks[i].Title
	}
	return tracks[0].Title
}

func (g *Game) loadPrefs() {
	g.volume = core.Clamp(g.readInt(KeyVolume, DefaultVolume), 0, 100)

	g.track = TrackNone
	if v, ok := g.readString(KeyTrack); ok && trackIndex(v) >= 0 {
		g.track = v
	}

	g.difficulty = g.cfg.Difficulty.Default
	if v, ok := g.readString(KeyDifficulty); ok {
		if d, err := config.ParseDifficulty(v); err == nil {
			g.difficulty = d
		} else {
			g.logger.Warn("ignoring stored difficulty", "value", v)
		}
	}
}

// Prefs returns the current settings.
func (g *Game) Prefs() Prefs {
	return Prefs{Volume: g.volume, Track: g.track, Difficulty: g.difficulty}
}

// SetVolume sets the sound volume (clamped to 0..100) and persists it.
func (g *Game) SetVolume(volume int) {
	g.volume = core.Clamp(volume, 0, 100)
	g.writeInt(KeyVolume, g.volume)
	g.sound.SetVolume(g.volume)
}

// NextTrack selects the following track, wrapping around.
func (g *Game) NextTrack() {
	i := trackIndex(g.track)
	g.SelectTrack(tracks[(i+1)%len(tracks)].ID)
}

// PrevTrack selects the previous track, wrapping around.
func (g *Game) PrevTrack() {
	i := trackIndex(g.track)
	if i < 0 {
		i = 0
	}
	g.SelectTrack(tracks[(i-1+len(tracks))%len(tracks)].ID)
}

// SelectTrack persists the background track and restarts the music if a
// session is running and not paused. Unknown ids are ignored.
func (g *Game) SelectTrack(id string) bool {
	if trackIndex(id) < 0 {
		return false
	}
	g.track = id
	g.write(KeyTrack, id)
	g.sound.StopTrack()
	if g.phase == core.PhaseRunning {
		g.startMusic()
	}
	return true
}

func (g *Game) startMusic() {
	if g.track != TrackNone {
		g.sound.PlayTrack(g.track)
	}
}
