package lobby

import (
	"sync"

	"github.com/google/uuid"
)

// Manager manages multiple lobbies.
type Manager struct {
	mu         sync.Mutex
	lobbies    map[string]*Lobby
	minPlayers int
	maxPlayers int
	newID      func() string
}

func NewManager(minPlayers, maxPlayers int) *Manager {
	return &Manager{
		lobbies:    make(map[string]*Lobby),
		minPlayers: minPlayers,
		maxPlayers: maxPlayers,
		newID:      newID,
	}
}

// Create opens a new lobby and returns it.
func (m *Manager) Create() *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.newID()
	for m.lobbies[id] != nil {
		id = m.newID()
	}
	l := NewLobby(id, m.minPlayers, m.maxPlayers)
	m.lobbies[id] = l
	return l
}

// Get returns a lobby by ID.
func (m *Manager) Get(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[id]
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lobbies, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lobbies)
}

// Game ids go into join URLs and QR codes, so they are kept short.
func newID() string {
	return uuid.NewString()[:8]
}
