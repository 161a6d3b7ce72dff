package engine

import (
	"errors"
	"slices"
)

var (
	ErrNotYourTurn    = errors.New("not your turn")
	ErrWrongPhase     = errors.New("wrong phase for this action")
	ErrNotEnoughMoney = errors.New("not enough money")
	ErrNotInMarket    = errors.New("card is not in the market")
	ErrAlreadyBuilt   = errors.New("already bought a card this turn")
	ErrAlreadyOwned   = errors.New("milestone already owned")
	ErrInvalidTarget  = errors.New("invalid target")
	ErrInvalidCard    = errors.New("invalid card")
	ErrNotEligible    = errors.New("not eligible")
	ErrInvalidAction  = errors.New("invalid action")
)

// ActionType identifies player actions.
type ActionType string

const (
	ActionRollDice      ActionType = "roll_dice"
	ActionAddTwo        ActionType = "add_two"
	ActionEndRoll       ActionType = "end_roll"
	ActionTargetedInput ActionType = "targeted_input"
	ActionLandmarkInput ActionType = "landmark_input"
	ActionBuyCard       ActionType = "buy_card"
	ActionEndTurn       ActionType = "end_turn"
)

// Action is a player action sent to Apply.
type Action struct {
	Type      ActionType      `json:"type"`
	Dice      int             `json:"dice,omitempty"`
	Card      CardID          `json:"card,omitempty"`
	Invest    bool            `json:"invest,omitempty"`
	Moves     []Args          `json:"moves,omitempty"`
	Landmarks map[CardID]Args `json:"landmarks,omitempty"`
}

// Apply is the single entry point for player actions. It checks that the
// action is legal, runs it and returns the resulting events.
func (g *Game) Apply(playerID string, action Action) ([]Event, error) {
	if g.Phase == PhaseLobby || g.Phase == PhaseGameOver {
		return nil, ErrWrongPhase
	}
	if g.Current != playerID {
		return nil, ErrNotYourTurn
	}

	switch action.Type {
	case ActionRollDice:
		return g.applyRollDice(action)
	case ActionAddTwo:
		return g.applyAddTwo()
	case ActionEndRoll:
		return g.applyEndRoll()
	case ActionTargetedInput:
		return g.applyTargetedInput(action)
	case ActionLandmarkInput:
		return g.applyLandmarkInput(action)
	case ActionBuyCard:
		return g.applyBuyCard(action)
	case ActionEndTurn:
		return g.applyEndTurn(action)
	default:
		return nil, ErrInvalidAction
	}
}

func (g *Game) applyRollDice(action Action) ([]Event, error) {
	p := g.CurrentPlayer()
	switch g.Phase {
	case PhaseAwaitingRoll:
	case PhaseAwaitingProducerEffects:
		if !g.canReroll(p) {
			return nil, ErrNotEligible
		}
	default:
		return nil, ErrWrongPhase
	}

	n := action.Dice
	if n == 0 {
		n = 1
	}
	switch {
	case n != 1 && n != 2:
		return nil, ErrInvalidAction
	case n == 2 && !p.HasCard(Station):
		return nil, ErrNotEligible
	}

	r := g.RollDice(n)
	events := []Event{{Type: EventDiceRoll, Player: p.ID, Data: map[string]interface{}{
		"dice":   r.Dice,
		"sum":    r.Sum,
		"reroll": g.turn.rolls > 1,
	}}}
	if g.canReroll(p) || g.canAddTwo(p) {
		return append(events, g.phaseEvent()), nil
	}
	return append(events, g.Advance()...), nil
}

func (g *Game) applyAddTwo() ([]Event, error) {
	if g.Phase != PhaseAwaitingProducerEffects {
		return nil, ErrWrongPhase
	}
	p := g.CurrentPlayer()
	if !g.canAddTwo(p) {
		return nil, ErrNotEligible
	}
	r := g.AddTwoToRoll()
	events := []Event{{Type: EventAddTwo, Player: p.ID, Data: map[string]interface{}{
		"sum": r.Sum,
	}}}
	return append(events, g.Advance()...), nil
}

func (g *Game) applyEndRoll() ([]Event, error) {
	if g.Phase != PhaseAwaitingProducerEffects {
		return nil, ErrWrongPhase
	}
	return g.Advance(), nil
}

func (g *Game) applyTargetedInput(action Action) ([]Event, error) {
	if g.Phase != PhaseAwaitingTargetedInput {
		return nil, ErrWrongPhase
	}
	if len(action.Moves) > g.turn.pendingTargeted {
		return nil, ErrInvalidAction
	}
	p := g.CurrentPlayer()

	// Moves apply one after another, so a card given away earlier in the
	// list is no longer available to later moves.
	given := make(map[CardID]int)
	for _, m := range action.Moves {
		if err := g.checkTarget(p, m.Target); err != nil {
			return nil, err
		}
		if !g.isEstablishment(m.Give) || p.Cards.Count(m.Give)-given[m.Give] < 1 {
			return nil, ErrInvalidCard
		}
		given[m.Give]++
	}
	return g.Resume(Input{Moves: action.Moves}), nil
}

func (g *Game) applyLandmarkInput(action Action) ([]Event, error) {
	if g.Phase != PhaseAwaitingLandmarkInput {
		return nil, ErrWrongPhase
	}
	p := g.CurrentPlayer()
	pending := g.turn.pendingLandmarks

	for id, args := range action.Landmarks {
		if !slices.Contains(pending, id) {
			return nil, ErrNotEligible
		}
		switch id {
		case TelevisionStudio:
			if err := g.checkTarget(p, args.Target); err != nil {
				return nil, err
			}
		case OfficeBuilding:
			if err := g.checkTarget(p, args.Target); err != nil {
				return nil, err
			}
			target := g.GetPlayer(args.Target)
			if !g.isEstablishment(args.Give) || !p.HasCard(args.Give) {
				return nil, ErrInvalidCard
			}
			if !g.isEstablishment(args.Take) || !target.HasCard(args.Take) {
				return nil, ErrInvalidCard
			}
		case RenovationCompany:
			if !g.isEstablishment(args.Card) {
				return nil, ErrInvalidCard
			}
		}
	}
	return g.Resume(Input{Landmarks: action.Landmarks}), nil
}

func (g *Game) applyBuyCard(action Action) ([]Event, error) {
	if g.Phase != PhaseAwaitingBuild {
		return nil, ErrWrongPhase
	}
	if g.turn.built {
		return nil, ErrAlreadyBuilt
	}
	if !g.Catalog.Has(action.Card) {
		return nil, ErrInvalidCard
	}
	p := g.CurrentPlayer()
	def := g.Catalog.Lookup(action.Card)

	if def.Category == CategoryMilestone {
		if p.HasCard(def.ID) {
			return nil, ErrAlreadyOwned
		}
	} else if !g.Market.Offers(def.ID) {
		return nil, ErrNotInMarket
	}
	if def.Cost > p.Money {
		return nil, ErrNotEnoughMoney
	}

	drawn := g.BuyCard(p.ID, def.ID)
	return []Event{{Type: EventCardBought, Player: p.ID, Data: map[string]interface{}{
		"card":   def.ID,
		"cost":   def.Cost,
		"money":  p.Money,
		"drawn":  drawn,
		"market": g.Market.View(),
	}}}, nil
}

func (g *Game) applyEndTurn(action Action) ([]Event, error) {
	if g.Phase != PhaseAwaitingBuild {
		return nil, ErrWrongPhase
	}
	p := g.CurrentPlayer()
	if action.Invest {
		if !p.HasCard(ITCenter) {
			return nil, ErrNotEligible
		}
		if p.Money < 1 {
			return nil, ErrNotEnoughMoney
		}
	}
	return g.EndTurn(action.Invest), nil
}

func (g *Game) canReroll(p *Player) bool {
	return g.Phase == PhaseAwaitingProducerEffects && p.HasCard(Transmitter) && g.turn.rolls < 2
}

func (g *Game) canAddTwo(p *Player) bool {
	return g.Phase == PhaseAwaitingProducerEffects && p.HasCard(Port) &&
		g.LastRoll != nil && g.LastRoll.Sum >= 10 && !g.LastRoll.AddedTwo
}

func (g *Game) checkTarget(p *Player, id string) error {
	if id == "" || id == p.ID || g.GetPlayer(id) == nil {
		return ErrInvalidTarget
	}
	return nil
}

func (g *Game) isEstablishment(id CardID) bool {
	return g.Catalog.Has(id) && g.Catalog.Lookup(id).Category.Establishment()
}

// AllowedActions lists what playerID may do right now.
func (g *Game) AllowedActions(playerID string) []ActionType {
	if g.Current != playerID {
		return nil
	}
	p := g.CurrentPlayer()
	switch g.Phase {
	case PhaseAwaitingRoll:
		return []ActionType{ActionRollDice}
	case PhaseAwaitingProducerEffects:
		out := []ActionType{ActionEndRoll}
		if g.canReroll(p) {
			out = append(out, ActionRollDice)
		}
		if g.canAddTwo(p) {
			out = append(out, ActionAddTwo)
		}
		return out
	case PhaseAwaitingTargetedInput:
		return []ActionType{ActionTargetedInput}
	case PhaseAwaitingLandmarkInput:
		return []ActionType{ActionLandmarkInput}
	case PhaseAwaitingBuild:
		if g.turn.built {
			return []ActionType{ActionEndTurn}
		}
		return []ActionType{ActionBuyCard, ActionEndTurn}
	}
	return nil
}
