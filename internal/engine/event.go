package engine

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventGameStart         EventType = "game_start"
	EventDiceRoll          EventType = "dice_roll"
	EventAddTwo            EventType = "add_two"
	EventProducerEffects   EventType = "producer_effects"
	EventShopEffects       EventType = "shop_effects"
	EventRestaurantEffects EventType = "restaurant_effects"
	EventTargetedWait      EventType = "targeted_wait"
	EventTargetedResult    EventType = "targeted_result"
	EventLandmarkPassive   EventType = "landmark_passive"
	EventLandmarkWait      EventType = "landmark_wait"
	EventLandmarkResult    EventType = "landmark_result"
	EventTownHallGain      EventType = "town_hall_gain"
	EventBuildingPossible  EventType = "building_possible"
	EventCardBought        EventType = "card_bought"
	EventHoardCoin         EventType = "hoard_coin"
	EventAirportGain       EventType = "airport_gain"
	EventNewTurn           EventType = "new_turn"
	EventExtraTurn         EventType = "extra_turn"
	EventPlayerLeft        EventType = "player_left"
	EventGameOver          EventType = "game_over"
	EventPhaseChange       EventType = "phase_change"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type   EventType              `json:"type"`
	Player string                 `json:"player,omitempty"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

// Activation records what one player's card did during a resolution phase.
type Activation struct {
	Player string `json:"player"`
	Card   CardID `json:"card"`
	// Fired counts copies whose effect ran.
	Fired int `json:"fired"`
	// Reopened counts inert copies that became active instead of paying.
	Reopened int `json:"reopened"`
}

// LandmarkResult describes one resolved active landmark.
type LandmarkResult struct {
	Card   CardID         `json:"card"`
	Args   Args           `json:"args"`
	Money  map[string]int `json:"money_delta"`
	Closed map[string]int `json:"closed,omitempty"`
}

// moneyMap snapshots every player's balance.
func (g *Game) moneyMap() map[string]int {
	m := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		m[p.ID] = p.Money
	}
	return m
}

func (g *Game) phaseEvent() Event {
	return Event{Type: EventPhaseChange, Player: g.Current, Data: map[string]interface{}{
		"phase": g.Phase.String(),
	}}
}

func (g *Game) effectsEvent(typ EventType, acts []Activation) Event {
	return Event{Type: typ, Player: g.Current, Data: map[string]interface{}{
		"activations": acts,
		"money":       g.moneyMap(),
		"bank":        g.Market.Bank,
	}}
}
