package engine

// RollDice rolls n dice for the current player and records the result. It
// is also how a reroll replaces the previous roll. Whether the player may
// roll n dice is checked by Apply.
func (g *Game) RollDice(n int) Roll {
	g.mustBe(PhaseAwaitingRoll, PhaseAwaitingProducerEffects)
	if n != 1 && n != 2 {
		panic("engine: roll one or two dice")
	}
	r := Roll{Player: g.Current, Dice: make([]int, n)}
	for i := range r.Dice {
		r.Dice[i] = rollDie(g.rng)
		r.Sum += r.Dice[i]
	}
	g.LastRoll = &r
	g.turn.rolls++
	g.Phase = PhaseAwaitingProducerEffects
	return r
}

// AddTwoToRoll adds 2 to the recorded sum, once per roll.
func (g *Game) AddTwoToRoll() Roll {
	g.mustBe(PhaseAwaitingProducerEffects)
	if g.LastRoll.AddedTwo {
		panic("engine: two already added to this roll")
	}
	g.LastRoll.Sum += 2
	g.LastRoll.AddedTwo = true
	return *g.LastRoll
}

// ZeroIncomeCheck gives a Town Hall owner who has no money one coin from the
// bank and opens the build phase. It reports whether the coin was paid.
func (g *Game) ZeroIncomeCheck() bool {
	g.mustBe(PhaseAwaitingZeroIncomeCheck)
	p, _ := g.mustCurrent()
	g.Phase = PhaseAwaitingBuild

	if !p.HasCard(optionalMilestone) || p.Money != 0 {
		return false
	}
	def := g.Catalog.Lookup(optionalMilestone)
	def.Effect(p, g.context(def), nil)
	return true
}

// BuyCard moves a card from the market (or the milestone supply) to the
// player and returns the ids drawn to refill the market. Affordability and
// duplicate milestones are checked by Apply.
func (g *Game) BuyCard(playerID string, id CardID) []CardID {
	g.mustBe(PhaseAwaitingBuild)
	p := g.GetPlayer(playerID)
	if p == nil {
		panic("engine: buy by unknown player " + playerID)
	}
	def := g.Catalog.Lookup(id)

	var drawn []CardID
	if def.Category != CategoryMilestone {
		drawn = g.Market.take(id)
	}
	p.Money -= def.Cost
	g.Market.Bank += def.Cost
	p.Cards.Add(id, 1)

	g.turn.built = true
	if justBoughtSuppressed[id] {
		g.turn.justBought[id] = true
	}
	return drawn
}

// EndTurn closes the build phase. An IT Center owner may invest one coin into
// the hoard, an Airport owner who bought nothing collects the bonus, and a
// player holding every milestone wins. Otherwise the next seat rolls, unless
// the Amusement Park grants the same player another turn.
func (g *Game) EndTurn(invest bool) []Event {
	g.mustBe(PhaseAwaitingBuild)
	p, k := g.mustCurrent()
	g.Phase = PhaseEndingTurn

	var events []Event
	if invest && p.HasCard(ITCenter) && p.Money > 0 {
		p.Money--
		p.Hoard++
		events = append(events, Event{Type: EventHoardCoin, Player: p.ID, Data: map[string]interface{}{
			"hoard": p.Hoard,
		}})
	}

	if p.HasCard(Airport) && !g.turn.built && !g.turn.justBought[Airport] {
		def := g.Catalog.Lookup(Airport)
		def.Effect(p, g.context(def), nil)
		events = append(events, Event{Type: EventAirportGain, Player: p.ID, Data: map[string]interface{}{
			"money": p.Money,
			"bank":  g.Market.Bank,
		}})
	}

	if g.WinCheck(p) {
		g.Phase = PhaseGameOver
		g.Winner = p.ID
		return append(events,
			Event{Type: EventGameOver, Player: p.ID, Data: map[string]interface{}{
				"reason":    "victory",
				"standings": g.Standings(),
			}},
			g.phaseEvent(),
		)
	}

	if g.extraTurn(p) {
		events = append(events, Event{Type: EventExtraTurn, Player: p.ID})
		return append(events, g.beginTurn(p.ID)...)
	}
	next := g.Players[(k+1)%len(g.Players)]
	return append(events, g.beginTurn(next.ID)...)
}

func (g *Game) extraTurn(p *Player) bool {
	return p.HasCard(AmusementPark) &&
		g.LastRoll != nil && g.LastRoll.Double() &&
		!g.turn.justBought[AmusementPark]
}

// Input carries player choices for the two paused phases.
type Input struct {
	Moves     []Args
	Landmarks map[CardID]Args
}

// Resume feeds input to a paused phase and runs on to the next stop.
func (g *Game) Resume(in Input) []Event {
	var events []Event
	switch g.Phase {
	case PhaseAwaitingTargetedInput:
		acts := g.ResolveTargetedRestaurant(in.Moves)
		events = append(events, g.effectsEvent(EventTargetedResult, acts))
	case PhaseAwaitingLandmarkInput:
		results := g.ResolveLandmarkActive(in.Landmarks)
		events = append(events, Event{Type: EventLandmarkResult, Player: g.Current, Data: map[string]interface{}{
			"results": results,
			"money":   g.moneyMap(),
			"bank":    g.Market.Bank,
		}})
	default:
		panic("engine: resume outside a paused phase")
	}
	return append(events, g.Advance()...)
}

// Advance runs the automatic phases after a roll until the turn pauses for
// input or reaches the build phase.
func (g *Game) Advance() []Event {
	var events []Event
	for {
		switch g.Phase {
		case PhaseAwaitingProducerEffects:
			fire := g.AnyProducerTriggered()
			acts := g.ResolveProducerCards()
			if fire {
				events = append(events, g.effectsEvent(EventProducerEffects, acts))
			}
		case PhaseAwaitingShopEffects:
			fire := g.AnyShopTriggered()
			acts := g.ResolveShopCards()
			if fire {
				events = append(events, g.effectsEvent(EventShopEffects, acts))
			}
		case PhaseAwaitingRestaurantEffects:
			fire := g.AnyRestaurantTriggered()
			acts, wait := g.ResolveRestaurantCards()
			if fire {
				events = append(events, g.effectsEvent(EventRestaurantEffects, acts))
			}
			if wait {
				return append(events, Event{Type: EventTargetedWait, Player: g.Current, Data: map[string]interface{}{
					"moves": g.turn.pendingTargeted,
				}}, g.phaseEvent())
			}
		case PhaseAwaitingLandmarkPassive:
			fire := g.AnyPassiveLandmarkTriggered()
			acts := g.ResolveLandmarkPassive()
			if fire {
				events = append(events, g.effectsEvent(EventLandmarkPassive, acts))
			}
			if g.Phase == PhaseAwaitingLandmarkInput {
				return append(events, Event{Type: EventLandmarkWait, Player: g.Current, Data: map[string]interface{}{
					"landmarks": g.PendingLandmarks(),
				}}, g.phaseEvent())
			}
		case PhaseAwaitingZeroIncomeCheck:
			if g.ZeroIncomeCheck() {
				events = append(events, Event{Type: EventTownHallGain, Player: g.Current, Data: map[string]interface{}{
					"money": 1,
				}})
			}
		case PhaseAwaitingBuild:
			return append(events, Event{Type: EventBuildingPossible, Player: g.Current, Data: map[string]interface{}{
				"money":  g.CurrentPlayer().Money,
				"market": g.Market.View(),
			}}, g.phaseEvent())
		default:
			return events
		}
	}
}
