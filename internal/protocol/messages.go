package protocol

import "machikoro/internal/engine"

// Message types: Server → Client
const (
	MsgLobbyUpdate = "lobby_update"
	MsgGameState   = "game_state"
	MsgPlayerState = "player_state"
	MsgEvent       = "event"
	MsgError       = "error"
	MsgClosed      = "closed"
)

// Message types: Client → Server
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
	MsgLeave     = "leave"
)

// In-game actions use the engine ActionType names as envelope types.
var actionTypes = map[string]engine.ActionType{
	string(engine.ActionRollDice):      engine.ActionRollDice,
	string(engine.ActionAddTwo):        engine.ActionAddTwo,
	string(engine.ActionEndRoll):       engine.ActionEndRoll,
	string(engine.ActionTargetedInput): engine.ActionTargetedInput,
	string(engine.ActionLandmarkInput): engine.ActionLandmarkInput,
	string(engine.ActionBuyCard):       engine.ActionBuyCard,
	string(engine.ActionEndTurn):       engine.ActionEndTurn,
}

// IsAction reports whether typ names an in-game action.
func IsAction(typ string) bool {
	_, ok := actionTypes[typ]
	return ok
}

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID     string        `json:"game_id"`
	Players    []LobbyPlayer `json:"players"`
	Started    bool          `json:"started"`
	CanStart   bool          `json:"can_start"`
	MinPlayers int           `json:"min_players"`
	MaxPlayers int           `json:"max_players"`
}

type LobbyPlayer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Ready     bool   `json:"ready"`
	Connected bool   `json:"connected"`
}

// JoinMsg is sent by a player to join the game.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type ReadyMsg struct {
	Ready bool `json:"ready"`
}

type ErrorMsg struct {
	Message string `json:"message"`
}

// ClosedMsg tells clients the room is gone and why.
type ClosedMsg struct {
	Reason string `json:"reason"`
}
