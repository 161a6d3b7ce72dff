package engine

import (
	"fmt"
	"slices"
)

// Game holds the entire state of one table.
type Game struct {
	ID      string    `json:"id"`
	Players []*Player `json:"players"`
	Market  *Market   `json:"-"`
	Catalog *Catalog  `json:"-"`
	Rules   Rules     `json:"-"`

	Phase    GamePhase `json:"phase"`
	Current  string    `json:"current"`
	LastRoll *Roll     `json:"last_roll,omitempty"`
	Winner   string    `json:"winner,omitempty"`

	rng  Rand
	turn turnState
}

// turnState is reset at the start of every turn.
type turnState struct {
	justBought map[CardID]bool
	built      bool
	rolls      int
	sharedRoll int

	// pendingTargeted is the number of Logistics Company copies that were
	// active before restaurant resolution.
	pendingTargeted int
	// pendingLandmarks lists active landmarks awaiting input, in resolution order.
	pendingLandmarks []CardID
}

func newTurnState() turnState {
	return turnState{justBought: make(map[CardID]bool)}
}

// NewGame seats the players in the given order, hands out starting money and
// cards and deals the market. The seat order never changes afterwards.
func NewGame(id string, seats []Seat, cat *Catalog, rules Rules, rng Rand) *Game {
	if len(seats) < MinPlayers || len(seats) > MaxPlayers {
		panic(fmt.Sprintf("engine: %d seats, need %d-%d", len(seats), MinPlayers, MaxPlayers))
	}
	if rng == nil {
		rng = NewRand()
	}
	g := &Game{
		ID:      id,
		Catalog: cat,
		Rules:   rules,
		Phase:   PhaseLobby,
		rng:     rng,
		turn:    newTurnState(),
	}
	for _, s := range seats {
		p := NewPlayer(s.ID, s.Name)
		p.Money = rules.StartingMoney
		for _, c := range rules.StartingCards {
			cat.Lookup(c)
			p.Cards.Add(c, 1)
		}
		g.Players = append(g.Players, p)
	}
	g.Market = NewMarket(cat, rules, len(seats), rng)
	return g
}

// Start picks the first player uniformly at random and opens the first turn.
func (g *Game) Start() []Event {
	g.mustBe(PhaseLobby)
	first := g.Players[g.rng.IntN(len(g.Players))]
	g.Current = first.ID
	g.Phase = PhaseAwaitingRoll

	return []Event{
		{Type: EventGameStart, Data: map[string]interface{}{
			"first":  first.ID,
			"market": g.Market.View(),
			"money":  g.moneyMap(),
		}},
		{Type: EventNewTurn, Player: first.ID},
		g.phaseEvent(),
	}
}

// GetPlayer finds a player by ID.
func (g *Game) GetPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil before Start.
func (g *Game) CurrentPlayer() *Player {
	return g.GetPlayer(g.Current)
}

func (g *Game) seatOf(id string) int {
	return slices.IndexFunc(g.Players, func(p *Player) bool { return p.ID == id })
}

func (g *Game) mustCurrent() (*Player, int) {
	k := g.seatOf(g.Current)
	if k < 0 {
		panic("engine: no current player")
	}
	return g.Players[k], k
}

func (g *Game) mustBe(phases ...GamePhase) {
	if !slices.Contains(phases, g.Phase) {
		panic(fmt.Sprintf("engine: operation not allowed in phase %s", g.Phase))
	}
}

// AntiClockwise returns the seat indexes visited when seat k is active in a
// table of n: k-1 down to 0, then n-1 down to k+1.
func AntiClockwise(n, k int) []int {
	out := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, ((k-i)%n+n)%n)
	}
	return out
}

// RemovePlayer drops a seat from the table. The rest keep their order. When
// the leaver was on turn the following seat starts a fresh turn, and a table
// left with fewer than two seats is over.
func (g *Game) RemovePlayer(id string) []Event {
	k := g.seatOf(id)
	if k < 0 {
		return nil
	}
	wasCurrent := g.Current == id
	g.Players = slices.Delete(g.Players, k, k+1)

	events := []Event{{Type: EventPlayerLeft, Player: id, Data: map[string]interface{}{
		"remaining": len(g.Players),
	}}}

	if g.Phase == PhaseLobby || g.Phase == PhaseGameOver {
		return events
	}
	if len(g.Players) < MinPlayers {
		g.Phase = PhaseGameOver
		g.Current = ""
		return append(events,
			Event{Type: EventGameOver, Data: map[string]interface{}{"reason": "abandoned"}},
			g.phaseEvent(),
		)
	}
	if wasCurrent {
		next := g.Players[k%len(g.Players)]
		events = append(events, g.beginTurn(next.ID)...)
	}
	return events
}

func (g *Game) beginTurn(playerID string) []Event {
	g.Current = playerID
	g.LastRoll = nil
	g.turn = newTurnState()
	g.Phase = PhaseAwaitingRoll
	return []Event{
		{Type: EventNewTurn, Player: playerID},
		g.phaseEvent(),
	}
}

// WinCheck reports whether p owns every victory milestone.
func (g *Game) WinCheck(p *Player) bool {
	for _, id := range winMilestones {
		if !p.HasCard(id) {
			return false
		}
	}
	if g.Rules.RequireTownHall && !p.HasCard(optionalMilestone) {
		return false
	}
	return true
}

// JustBought reports whether id was bought during the current turn.
func (g *Game) JustBought(id CardID) bool {
	return g.turn.justBought[id]
}

// Built reports whether the current player bought a card this turn.
func (g *Game) Built() bool {
	return g.turn.built
}

// PendingTargeted returns how many targeted restaurant moves may be supplied.
func (g *Game) PendingTargeted() int {
	if g.Phase != PhaseAwaitingTargetedInput {
		return 0
	}
	return g.turn.pendingTargeted
}

// PendingLandmarks returns the active landmarks waiting for input.
func (g *Game) PendingLandmarks() []CardID {
	if g.Phase != PhaseAwaitingLandmarkInput {
		return nil
	}
	return slices.Clone(g.turn.pendingLandmarks)
}
