package lobby

import (
	"errors"
	"sync"

	"machikoro/internal/engine"
)

var (
	ErrStarted       = errors.New("game already started")
	ErrFull          = errors.New("lobby is full")
	ErrNotEnough     = errors.New("not enough players")
	ErrNotReady      = errors.New("not all players ready")
	ErrUnknownPlayer = errors.New("player not in lobby")
)

// PlayerInfo holds lobby-level player information.
type PlayerInfo struct {
	ID    string
	Name  string
	Ready bool
}

// Lobby collects players for one table until the game starts. Join order
// becomes the seat order.
type Lobby struct {
	mu         sync.Mutex
	ID         string
	Players    []*PlayerInfo
	MaxPlayers int
	MinPlayers int
	Started    bool
}

func NewLobby(id string, minPlayers, maxPlayers int) *Lobby {
	return &Lobby{
		ID:         id,
		MaxPlayers: maxPlayers,
		MinPlayers: minPlayers,
	}
}

// Join adds a player. Joining again with a known id only renames, so a
// reconnecting phone keeps its seat.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name
			return nil
		}
	}
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) >= l.MaxPlayers {
		return ErrFull
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name})
	return nil
}

// Leave removes a player and reports whether they were seated.
func (l *Lobby) Leave(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Lobby) SetReady(id string, ready bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Ready = ready
			return nil
		}
	}
	return ErrUnknownPlayer
}

// Has reports whether id holds a seat.
func (l *Lobby) Has(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.canStart() == nil
}

func (l *Lobby) canStart() error {
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) < l.MinPlayers {
		return ErrNotEnough
	}
	for _, p := range l.Players {
		if !p.Ready {
			return ErrNotReady
		}
	}
	return nil
}

// Start closes the lobby and returns the roster in seat order.
func (l *Lobby) Start() ([]engine.Seat, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.canStart(); err != nil {
		return nil, err
	}
	l.Started = true
	return l.seats(), nil
}

// seats returns the roster in join order.
func (l *Lobby) seats() []engine.Seat {
	out := make([]engine.Seat, len(l.Players))
	for i, p := range l.Players {
		out[i] = engine.Seat{ID: p.ID, Name: p.Name}
	}
	return out
}

func (l *Lobby) IsStarted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Started
}

// GetPlayers returns a copy of the player list.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}
