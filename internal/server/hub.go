package server

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"machikoro/internal/engine"
	"machikoro/internal/lobby"
	"machikoro/internal/protocol"
)

// How long a dropped phone may take to reconnect before its seat is given up.
const defaultLeaveGrace = 30 * time.Second

var errEngineFailure = errors.New("game engine failure, room closed")

// Hub manages WebSocket connections and game state for one game room. All
// engine calls happen on the Run goroutine.
type Hub struct {
	mu      sync.Mutex
	gameID  string
	lobby   *lobby.Lobby
	game    *engine.Game
	catalog *engine.Catalog
	rules   engine.Rules
	rng     engine.Rand
	logger  *zap.Logger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	expired    chan string
	quit       chan struct{}
	done       chan struct{}

	leaveGrace time.Duration
	leaving    map[string]*time.Timer

	// closeReason is set on the Run goroutine to stop the room.
	closeReason string
	onClose     func(gameID string)
}

func NewHub(lob *lobby.Lobby, catalog *engine.Catalog, rules engine.Rules, logger *zap.Logger) *Hub {
	return &Hub{
		gameID:     lob.ID,
		lobby:      lob,
		catalog:    catalog,
		rules:      rules,
		rng:        engine.NewRand(),
		logger:     logger.With(zap.String("game", lob.ID)),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		expired:    make(chan string),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		leaveGrace: defaultLeaveGrace,
		leaving:    make(map[string]*time.Timer),
	}
}

func (h *Hub) Run() {
	defer h.shutdown()
	for {
		select {
		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case id := <-h.expired:
			delete(h.leaving, id)
			if !h.connected(id) {
				h.dropPlayer(id)
			}

		case <-h.quit:
			h.closeReason = "server shutting down"
		}
		if h.closeReason != "" {
			return
		}
	}
}

// Register hands a new connection to the room. It returns false when the
// room has already closed.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Close stops the room and waits for Run to return.
func (h *Hub) Close() {
	select {
	case h.quit <- struct{}{}:
		<-h.done
	case <-h.done:
	}
}

func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) shutdown() {
	h.logger.Info("room closed", zap.String("reason", h.closeReason))
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgClosed, protocol.ClosedMsg{Reason: h.closeReason}))

	for _, t := range h.leaving {
		t.Stop()
	}
	h.mu.Lock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()

	if h.onClose != nil {
		h.onClose(h.gameID)
	}
	close(h.done)
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	if client.PlayerID != "" {
		h.cancelLeave(client.PlayerID)
	}
	h.sendLobbyUpdate()
	if h.game != nil {
		h.sendStateToClient(client)
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.mu.Unlock()

	if client.Type == ClientPlayer && h.lobby.Has(client.PlayerID) && !h.connected(client.PlayerID) {
		h.scheduleLeave(client.PlayerID)
	}
	h.sendLobbyUpdate()

	// A finished game has nothing left to show once everyone is gone.
	// TODO: expire lobbies that never start once no client is connected.
	if h.game != nil && h.game.Phase == engine.PhaseGameOver && h.clientCount() == 0 {
		h.closeReason = "game finished"
	}
}

func (h *Hub) scheduleLeave(playerID string) {
	if h.leaveGrace <= 0 {
		h.dropPlayer(playerID)
		return
	}
	if _, ok := h.leaving[playerID]; ok {
		return
	}
	h.leaving[playerID] = time.AfterFunc(h.leaveGrace, func() {
		select {
		case h.expired <- playerID:
		case <-h.done:
		}
	})
}

func (h *Hub) cancelLeave(playerID string) {
	if t, ok := h.leaving[playerID]; ok {
		t.Stop()
		delete(h.leaving, playerID)
	}
}

// dropPlayer gives up a seat, in the lobby or at the table.
func (h *Hub) dropPlayer(playerID string) {
	h.cancelLeave(playerID)
	h.lobby.Leave(playerID)

	if h.game == nil || h.game.GetPlayer(playerID) == nil {
		h.sendLobbyUpdate()
		return
	}
	h.logger.Info("player left the table", zap.String("player", playerID))
	events, err := h.guard(func() ([]engine.Event, error) {
		return h.game.RemovePlayer(playerID), nil
	})
	if err != nil {
		return
	}
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStartGame(msg)
	case protocol.MsgLeave:
		h.handleLeave(msg)
	default:
		if !protocol.IsAction(msg.Envelope.Type) {
			h.sendError(msg.Client, "unknown message type "+msg.Envelope.Type)
			return
		}
		h.handleGameAction(msg)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil || join.PlayerID == "" {
		h.sendError(msg.Client, "invalid join message")
		return
	}

	if h.game != nil && h.game.GetPlayer(join.PlayerID) == nil {
		h.sendError(msg.Client, lobby.ErrStarted.Error())
		return
	}
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	msg.Client.PlayerID = join.PlayerID
	msg.Client.Type = ClientPlayer
	h.cancelLeave(join.PlayerID)

	h.sendLobbyUpdate()
	if h.game != nil {
		h.sendStateToClient(msg.Client)
	}
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := msg.Envelope.Decode(&ready); err != nil {
		h.sendError(msg.Client, "invalid ready message")
		return
	}
	if err := h.lobby.SetReady(msg.Client.PlayerID, ready.Ready); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.sendLobbyUpdate()
}

func (h *Hub) handleLeave(msg IncomingMessage) {
	id := msg.Client.PlayerID
	if id == "" {
		return
	}
	msg.Client.PlayerID = ""
	h.dropPlayer(id)
}

func (h *Hub) handleStartGame(msg IncomingMessage) {
	seats, err := h.lobby.Start()
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	events, err := h.guard(func() ([]engine.Event, error) {
		h.game = engine.NewGame(h.gameID, seats, h.catalog, h.rules, h.rng)
		return h.game.Start(), nil
	})
	if err != nil {
		return
	}
	h.logger.Info("game started", zap.Int("players", len(seats)), zap.String("first", h.game.Current))

	h.sendLobbyUpdate()
	h.broadcastEvents(events)
	h.broadcastState()
}

func (h *Hub) handleGameAction(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, "game not started")
		return
	}

	action, err := protocol.DecodeAction(msg.Envelope)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	events, err := h.guard(func() ([]engine.Event, error) {
		return h.game.Apply(msg.Client.PlayerID, action)
	})
	if err != nil {
		if !errors.Is(err, errEngineFailure) {
			h.logger.Debug("action rejected",
				zap.String("player", msg.Client.PlayerID),
				zap.String("action", string(action.Type)),
				zap.Error(err))
			h.sendError(msg.Client, err.Error())
		}
		return
	}

	h.broadcastEvents(events)
	h.broadcastState()
	if h.game.Phase == engine.PhaseGameOver {
		h.logger.Info("game over", zap.String("winner", h.game.Winner))
	}
}

// guard runs an engine call. Engine panics mean broken invariants, so the
// room is closed instead of continuing on a corrupt game.
func (h *Hub) guard(fn func() ([]engine.Event, error)) (events []engine.Event, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("engine panic", zap.Any("panic", r), zap.Stack("stack"))
			h.closeReason = errEngineFailure.Error()
			events, err = nil, errEngineFailure
		}
	}()
	return fn()
}

func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		env := protocol.MustEnvelope(protocol.MsgEvent, ev)
		h.broadcastAll(env)
	}
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.sendStateToClient(client)
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	if client.Type == ClientTV {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, h.game.PublicView()))
		return
	}
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgPlayerState, h.game.ViewFor(client.PlayerID)))
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{
			ID:        p.ID,
			Name:      p.Name,
			Ready:     p.Ready,
			Connected: h.connected(p.ID),
		}
	}
	env := protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:     h.gameID,
		Players:    lps,
		Started:    h.lobby.IsStarted(),
		CanStart:   h.lobby.CanStart(),
		MinPlayers: h.lobby.MinPlayers,
		MaxPlayers: h.lobby.MaxPlayers,
	})
	h.broadcastAll(env)
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("broadcast marshal", zap.String("type", env.Type), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.sendRaw(data)
	}
}

func (h *Hub) sendError(client *Client, message string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}

func (h *Hub) connected(playerID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if client.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
