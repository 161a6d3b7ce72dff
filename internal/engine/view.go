package engine

// PublicViewData is the game state visible on the shared screen.
type PublicViewData struct {
	ID               string             `json:"id"`
	Phase            string             `json:"phase"`
	Current          string             `json:"current,omitempty"`
	CurrentName      string             `json:"current_name,omitempty"`
	Players          []PublicPlayerData `json:"players"`
	Market           MarketView         `json:"market"`
	LastRoll         *Roll              `json:"last_roll,omitempty"`
	AwaitingInput    bool               `json:"awaiting_input,omitempty"`
	PendingTargeted  int                `json:"pending_targeted,omitempty"`
	PendingLandmarks []CardID           `json:"pending_landmarks,omitempty"`
	Winner           string             `json:"winner,omitempty"`
	Standings        []ScoreEntry       `json:"standings,omitempty"`
}

type PublicPlayerData struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Money      int               `json:"money"`
	Cards      map[CardID][]bool `json:"cards"`
	Hoard      int               `json:"hoard,omitempty"`
	Milestones int               `json:"milestones"`
	// Establishments lists the owned ids that can be given, swapped or
	// renovated.
	Establishments []CardID `json:"establishments,omitempty"`
}

func (g *Game) PublicView() PublicViewData {
	pv := PublicViewData{
		ID:               g.ID,
		Phase:            g.Phase.String(),
		Current:          g.Current,
		Market:           g.Market.View(),
		AwaitingInput:    g.Phase.Paused(),
		PendingTargeted:  g.PendingTargeted(),
		PendingLandmarks: g.PendingLandmarks(),
		Winner:           g.Winner,
	}
	if g.LastRoll != nil {
		r := *g.LastRoll
		pv.LastRoll = &r
	}
	if p := g.CurrentPlayer(); p != nil {
		pv.CurrentName = p.Name
	}
	if g.Phase == PhaseGameOver {
		pv.Standings = g.Standings()
	}

	for _, p := range g.Players {
		pv.Players = append(pv.Players, PublicPlayerData{
			ID:         p.ID,
			Name:       p.Name,
			Money:      p.Money,
			Cards:      p.Cards.Snapshot(),
			Hoard:      p.Hoard,
			Milestones: p.DominantCount(true),

			Establishments: g.establishments(p),
		})
	}
	return pv
}

// PlayerViewData is the state sent to one player's phone.
type PlayerViewData struct {
	PublicViewData
	Me       string       `json:"me"`
	IsMyTurn bool         `json:"is_my_turn"`
	Allowed  []ActionType `json:"allowed,omitempty"`
	// Affordable lists the cards the player could buy right now.
	Affordable []CardID `json:"affordable,omitempty"`
}

func (g *Game) ViewFor(playerID string) PlayerViewData {
	pv := PlayerViewData{
		PublicViewData: g.PublicView(),
		Me:             playerID,
	}

	p := g.GetPlayer(playerID)
	if p == nil {
		return pv
	}
	pv.IsMyTurn = g.Current == playerID
	pv.Allowed = g.AllowedActions(playerID)

	if pv.IsMyTurn && g.Phase == PhaseAwaitingBuild && !g.Built() {
		for _, def := range g.Catalog.All() {
			if def.Cost > p.Money {
				continue
			}
			switch {
			case def.Category == CategoryMilestone && !p.HasCard(def.ID):
				pv.Affordable = append(pv.Affordable, def.ID)
			case def.Category != CategoryMilestone && g.Market.Offers(def.ID):
				pv.Affordable = append(pv.Affordable, def.ID)
			}
		}
	}
	return pv
}

func (g *Game) establishments(p *Player) []CardID {
	var out []CardID
	for _, id := range p.Cards.IDs() {
		if g.isEstablishment(id) {
			out = append(out, id)
		}
	}
	return out
}
