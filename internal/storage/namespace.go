package storage

// Namespaced gives one player a private record inside a shared Store.
// Keys are prefixed with the player name and scores are tagged with it;
// the score history stays shared so TopScores is a global leaderboard.
type Namespaced struct {
	Store
	player string
}

// Namespace wraps s for player. An empty player returns s unchanged.
func Namespace(s Store, player string) Store {
	if player == "" {
		return s
	}
	return &Namespaced{Store: s, player: player}
}

// Player returns the namespace name.
func (n *Namespaced) Player() string {
	return n.player
}

func (n *Namespaced) key(key string) string {
	return "player:" + n.player + ":" + key
}

// Get reads key from the player's namespace.
func (n *Namespaced) Get(key string) (string, bool, error) {
	return n.Store.Get(n.key(key))
}

// Set writes key into the player's namespace.
func (n *Namespaced) Set(key, value string) error {
	return n.Store.Set(n.key(key), value)
}

// SaveScore tags the entry with the player name.
func (n *Namespaced) SaveScore(entry ScoreEntry) (int64, error) {
	entry.Player = n.player
	return n.Store.SaveScore(entry)
}

// Close leaves the shared store open; its owner closes it.
func (n *Namespaced) Close() error {
	return nil
}
