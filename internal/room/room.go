package room

import (
	"fmt"
	"sync"

	"redistrict/internal/engine"
)

// Room is one player's run through the level sequence. Spectators can
// watch but only the claiming player edits.
type Room struct {
	mu sync.Mutex

	ID         string
	PlayerID   string
	PlayerName string

	session    *engine.Session
	levelIndex int
	completed  []int
}

// New creates a room with no player and no level yet.
func New(id string) *Room {
	return &Room{ID: id}
}

// Claim binds the room to a player. Re-claiming with the same id is a
// reconnect and allowed; a second player is not.
func (r *Room) Claim(playerID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.PlayerID != "" && r.PlayerID != playerID {
		return fmt.Errorf("room already has a player")
	}
	r.PlayerID = playerID
	r.PlayerName = name
	return nil
}

// Player returns the claiming player's id and name.
func (r *Room) Player() (id, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.PlayerID, r.PlayerName
}

// IsPlayer reports whether playerID is the room's claiming player.
func (r *Room) IsPlayer(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return playerID != "" && r.PlayerID == playerID
}

// StartLevel generates the level at index and opens a fresh session on
// it. Generation failures are programming errors in the level table and
// surface here rather than mid-play.
func (r *Room) StartLevel(index int) (*engine.Session, error) {
	if index < 1 {
		index = 1
	}
	level, err := engine.NewLevel(index)
	if err != nil {
		return nil, fmt.Errorf("start level %d: %w", index, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.levelIndex = index
	r.session = engine.NewSession(level)
	return r.session, nil
}

// NextLevel opens the level after the current one.
func (r *Room) NextLevel() (*engine.Session, error) {
	r.mu.Lock()
	next := r.levelIndex + 1
	r.mu.Unlock()
	return r.StartLevel(next)
}

// Session returns the live session, or nil before the first level.
func (r *Room) Session() *engine.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// LevelIndex returns the current level number.
func (r *Room) LevelIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levelIndex
}

// MarkWon records the current level as completed.
func (r *Room) MarkWon() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.completed {
		if c == r.levelIndex {
			return
		}
	}
	r.completed = append(r.completed, r.levelIndex)
}

// Completed returns a copy of the completed level numbers.
func (r *Room) Completed() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.completed))
	copy(out, r.completed)
	return out
}
