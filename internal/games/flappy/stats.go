package flappy

import (
	"strconv"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Persisted keys.
const (
	KeyHighScore   = "flappyHighScore"
	KeyGamesPlayed = "flappyGamesPlayed"
	KeyTotalScore  = "flappyTotalScore"
	KeyVolume      = "flappySoundVolume"
	KeyTrack       = "flappyBackgroundTrack"
	KeyDifficulty  = "flappyDifficulty"
)

// Record holds the cumulative statistics across sessions.
type Record struct {
	HighScore   int
	GamesPlayed int
	TotalScore  int
}

// Medal grades a final score.
type Medal int

const (
	MedalBronze Medal = iota
	MedalSilver
	MedalTrophy
)

// MedalFor returns the medal earned by score.
func MedalFor(score int) Medal {
	switch {
	case score > 50:
		return MedalTrophy
	case score > 20:
		return MedalSilver
	default:
		return MedalBronze
	}
}

// String returns the medal name.
func (m Medal) String() string {
	switch m {
	case MedalTrophy:
		return "trophy"
	case MedalSilver:
		return "silver"
	default:
		return "bronze"
	}
}

// Glyph returns the medal emoji.
func (m Medal) Glyph() string {
	switch m {
	case MedalTrophy:
		return "🏆"
	case MedalSilver:
		return "🥈"
	default:
		return "🥉"
	}
}

// readInt returns the integer under key, or def when it is missing,
// unreadable or unparseable.
func (g *Game) readInt(key string, def int) int {
	v, ok := g.readString(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		g.logger.Warn("ignoring unparseable stored value", "key", key, "value", v)
		return def
	}
	return n
}

func (g *Game) readString(key string) (string, bool) {
	v, ok, err := g.store.Get(key)
	if err != nil {
		g.logger.Warn("store read failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (g *Game) write(key, value string) {
	if err := g.store.Set(key, value); err != nil {
		g.logger.Warn("store write failed", "key", key, "error", err)
	}
}

func (g *Game) writeInt(key string, n int) {
	g.write(key, strconv.Itoa(n))
}

func (g *Game) loadRecord() {
	g.record = Record{
		HighScore:   g.readInt(KeyHighScore, 0),
		GamesPlayed: g.readInt(KeyGamesPlayed, 0),
		TotalScore:  g.readInt(KeyTotalScore, 0),
	}
}

// flushRecord folds the finished session into the record and persists each
// counter immediately. Failed writes are logged; the in-memory record keeps
// the new values.
func (g *Game) flushRecord() {
	g.record.GamesPlayed++
	g.record.TotalScore += g.score
	g.writeInt(KeyGamesPlayed, g.record.GamesPlayed)
	g.writeInt(KeyTotalScore, g.record.TotalScore)

	if g.score > g.record.HighScore {
		g.record.HighScore = g.score
		g.writeInt(KeyHighScore, g.record.HighScore)
	}

	if g.score > 0 {
		_, err := g.store.SaveScore(storage.ScoreEntry{
			Difficulty: string(g.difficulty),
			Score:      g.score,
			CreatedAt:  time.Now(),
		})
		if err != nil {
			g.logger.Warn("score history write failed", "score", g.score, "error", err)
		}
	}
}
