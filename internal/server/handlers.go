package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"machikoro/internal/engine"
	"machikoro/internal/lobby"
	qr "machikoro/internal/qrcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	LobbyMgr *lobby.Manager
	catalog  *engine.Catalog
	rules    engine.Rules
	logger   *zap.Logger

	mu   sync.Mutex
	hubs map[string]*Hub
	// leaveGrace overrides the hub default when non-zero; negative drops a
	// disconnected player at once.
	leaveGrace time.Duration
}

func NewHandlers(mgr *lobby.Manager, catalog *engine.Catalog, rules engine.Rules, logger *zap.Logger) *Handlers {
	return &Handlers{
		LobbyMgr: mgr,
		catalog:  catalog,
		rules:    rules,
		logger:   logger,
		hubs:     make(map[string]*Hub),
	}
}

// CreateResponse answers a JSON create request.
type CreateResponse struct {
	GameID  string `json:"game_id"`
	JoinURL string `json:"join_url"`
	TVURL   string `json:"tv_url"`
}

// HandleCreateGame opens a new room. Browsers are redirected to the shared
// screen; POST callers get the ids as JSON.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	hub := h.createHub()
	gameID := hub.gameID

	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/tv.html?game="+gameID, http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateResponse{
		GameID:  gameID,
		JoinURL: qr.JoinURL(scheme(r), r.Host, gameID),
		TVURL:   "/tv.html?game=" + gameID,
	})
}

func (h *Handlers) createHub() *Hub {
	lob := h.LobbyMgr.Create()
	hub := NewHub(lob, h.catalog, h.rules, h.logger)
	if h.leaveGrace != 0 {
		hub.leaveGrace = h.leaveGrace
	}
	hub.onClose = h.removeHub

	h.mu.Lock()
	h.hubs[lob.ID] = hub
	h.mu.Unlock()

	go hub.Run()
	h.logger.Info("room created", zap.String("game", lob.ID))
	return hub
}

func (h *Handlers) hub(gameID string) *Hub {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hubs[gameID]
}

func (h *Handlers) removeHub(gameID string) {
	h.mu.Lock()
	delete(h.hubs, gameID)
	h.mu.Unlock()
	h.LobbyMgr.Remove(gameID)
}

// CloseAll stops every running room.
func (h *Handlers) CloseAll() {
	h.mu.Lock()
	hubs := make([]*Hub, 0, len(h.hubs))
	for _, hub := range h.hubs {
		hubs = append(hubs, hub)
	}
	h.mu.Unlock()

	for _, hub := range hubs {
		hub.Close()
	}
}

// HandleQR generates a QR code PNG for joining the game.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	if h.hub(gameID) == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	png, err := qr.Generate(qr.JoinURL(scheme(r), r.Host, gameID))
	if err != nil {
		h.logger.Error("qr generation failed", zap.String("game", gameID), zap.Error(err))
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "tv" or "player"

	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	hub := h.hub(gameID)
	if hub == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.String("game", gameID), zap.Error(err))
		return
	}

	ct := ClientPlayer
	if clientType == "tv" {
		ct = ClientTV
	}

	client := NewClient(hub, conn, playerID, ct)
	if !hub.Register(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(GeneratePlayerID()))
}

// GeneratePlayerID creates a unique player ID.
func GeneratePlayerID() string {
	return uuid.New().String()
}

func scheme(r *http.Request) string {
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		return "https"
	}
	return "http"
}
