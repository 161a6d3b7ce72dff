package engine

// Resolve runs the card phases of a turn. Each resolver checks that the game
// is in its phase and moves it to the next one, so a phase with nothing to
// fire is still passed through.

// ResolveProducerCards pays the producer cards of every player except the
// active one, visiting seats anti-clockwise from the one before the active
// seat. The active player pays each claimant in full until the money runs
// out, so later seats may receive a clamped remainder.
func (g *Game) ResolveProducerCards() []Activation {
	g.mustBe(PhaseAwaitingProducerEffects)
	_, k := g.mustCurrent()

	var acts []Activation
	for _, idx := range AntiClockwise(len(g.Players), k) {
		owner := g.Players[idx]
		acts = append(acts, g.fireCategory(owner, CategoryProducer)...)
	}
	g.Phase = PhaseAwaitingShopEffects
	return acts
}

// ResolveShopCards pays every player's shop cards from the bank.
func (g *Game) ResolveShopCards() []Activation {
	g.mustBe(PhaseAwaitingShopEffects)

	var acts []Activation
	for _, owner := range g.Players {
		acts = append(acts, g.fireCategory(owner, CategoryShop)...)
	}
	g.Phase = PhaseAwaitingRestaurantEffects
	return acts
}

// ResolveRestaurantCards resolves the active player's restaurant cards.
// Targeted copies never pay inline: inert ones reopen and the ones that were
// active before resolution are counted as pending moves. needsInput reports
// whether the turn now waits in PhaseAwaitingTargetedInput.
func (g *Game) ResolveRestaurantCards() (acts []Activation, needsInput bool) {
	g.mustBe(PhaseAwaitingRestaurantEffects)
	p, _ := g.mustCurrent()
	sum := g.LastRoll.Sum

	pending := 0
	for _, id := range targetedRestaurants {
		if p.HasCard(id) && g.Catalog.Lookup(id).TriggeredBy(sum) {
			pending += p.Cards.ActiveCount(id)
		}
	}

	for _, id := range g.Catalog.ByCategory(CategoryRestaurant) {
		def := g.Catalog.Lookup(id)
		if !p.HasCard(id) || !def.TriggeredBy(sum) {
			continue
		}
		if isTargetedRestaurant(id) {
			if act := reopenInert(p, id); act.Reopened > 0 {
				acts = append(acts, act)
			}
			continue
		}
		acts = append(acts, g.fireCopies(p, def, nil))
	}

	g.turn.pendingTargeted = pending
	if pending > 0 {
		g.Phase = PhaseAwaitingTargetedInput
		return acts, true
	}
	g.Phase = PhaseAwaitingLandmarkPassive
	return acts, false
}

// ResolveTargetedRestaurant applies the player's moves for the paused
// targeted restaurant phase. Moves beyond the pending count are ignored and
// fewer moves decline the rest.
func (g *Game) ResolveTargetedRestaurant(moves []Args) []Activation {
	g.mustBe(PhaseAwaitingTargetedInput)
	p, _ := g.mustCurrent()

	if len(moves) > g.turn.pendingTargeted {
		moves = moves[:g.turn.pendingTargeted]
	}

	var acts []Activation
	for _, id := range targetedRestaurants {
		if len(moves) == 0 || !p.HasCard(id) {
			continue
		}
		def := g.Catalog.Lookup(id)
		ctx := g.context(def)
		act := Activation{Player: p.ID, Card: id}
		for i := range moves {
			def.Effect(p, ctx, &moves[i])
			act.Fired++
		}
		moves = nil
		acts = append(acts, act)
	}

	g.turn.pendingTargeted = 0
	g.Phase = PhaseAwaitingLandmarkPassive
	return acts
}

// ResolveLandmarkPassive fires the active player's passive landmarks once
// each, in canonical order. Afterwards the game waits for landmark input if
// any active landmark is triggered.
func (g *Game) ResolveLandmarkPassive() []Activation {
	g.mustBe(PhaseAwaitingLandmarkPassive)
	p, _ := g.mustCurrent()
	sum := g.LastRoll.Sum

	var acts []Activation
	for _, id := range passiveLandmarks {
		def := g.Catalog.Lookup(id)
		if !p.HasCard(id) || !def.TriggeredBy(sum) {
			continue
		}
		def.Effect(p, g.context(def), nil)
		acts = append(acts, Activation{Player: p.ID, Card: id, Fired: 1})
	}

	g.turn.pendingLandmarks = g.triggered(p, activeLandmarks)
	if len(g.turn.pendingLandmarks) > 0 {
		g.Phase = PhaseAwaitingLandmarkInput
	} else {
		g.Phase = PhaseAwaitingZeroIncomeCheck
	}
	return acts
}

// ResolveLandmarkActive invokes each landmark present in inputs exactly once,
// in canonical order. Which landmarks get an entry is up to the caller.
func (g *Game) ResolveLandmarkActive(inputs map[CardID]Args) []LandmarkResult {
	g.mustBe(PhaseAwaitingLandmarkInput)
	p, _ := g.mustCurrent()

	var results []LandmarkResult
	for _, id := range activeLandmarks {
		args, ok := inputs[id]
		if !ok {
			continue
		}
		def := g.Catalog.Lookup(id)
		before := g.moneyMap()
		ctx := g.context(def)
		def.Effect(p, ctx, &args)

		delta := make(map[string]int)
		for pid, m := range g.moneyMap() {
			if d := m - before[pid]; d != 0 {
				delta[pid] = d
			}
		}
		results = append(results, LandmarkResult{Card: id, Args: args, Money: delta, Closed: ctx.closed})
	}

	g.turn.pendingLandmarks = nil
	g.Phase = PhaseAwaitingZeroIncomeCheck
	return results
}

func (g *Game) fireCategory(owner *Player, cat Category) []Activation {
	var acts []Activation
	sum := g.LastRoll.Sum
	for _, id := range g.Catalog.ByCategory(cat) {
		def := g.Catalog.Lookup(id)
		if owner.HasCard(id) && def.TriggeredBy(sum) {
			acts = append(acts, g.fireCopies(owner, def, nil))
		}
	}
	return acts
}

// fireCopies applies the charge-up rule to every copy of def the owner holds:
// an inert copy reopens without paying, an active copy runs the effect.
func (g *Game) fireCopies(owner *Player, def *CardDef, args *Args) Activation {
	act := Activation{Player: owner.ID, Card: def.ID}
	ctx := g.context(def)
	for i, active := range owner.Cards.States(def.ID) {
		if !active {
			owner.Cards.setActive(def.ID, i, true)
			act.Reopened++
			continue
		}
		def.Effect(owner, ctx, args)
		act.Fired++
		if selfClosing[def.ID] {
			owner.Cards.setActive(def.ID, i, false)
		}
	}
	return act
}

func reopenInert(owner *Player, id CardID) Activation {
	act := Activation{Player: owner.ID, Card: id}
	for i, active := range owner.Cards.States(id) {
		if !active {
			owner.Cards.setActive(id, i, true)
			act.Reopened++
		}
	}
	return act
}

// triggered filters ids down to those p owns and the current sum triggers.
func (g *Game) triggered(p *Player, ids []CardID) []CardID {
	if g.LastRoll == nil {
		return nil
	}
	var out []CardID
	for _, id := range ids {
		if p.HasCard(id) && g.Catalog.Lookup(id).TriggeredBy(g.LastRoll.Sum) {
			out = append(out, id)
		}
	}
	return out
}

func (g *Game) anyTriggered(players []*Player, cat Category) bool {
	for _, p := range players {
		if len(g.triggered(p, g.Catalog.ByCategory(cat))) > 0 {
			return true
		}
	}
	return false
}

// AnyProducerTriggered reports whether any opponent of the active player
// holds a producer card matching the roll.
func (g *Game) AnyProducerTriggered() bool {
	p := g.CurrentPlayer()
	if p == nil {
		return false
	}
	return g.anyTriggered(g.context(nil).Opponents(p), CategoryProducer)
}

func (g *Game) AnyShopTriggered() bool {
	return g.anyTriggered(g.Players, CategoryShop)
}

func (g *Game) AnyRestaurantTriggered() bool {
	p := g.CurrentPlayer()
	return p != nil && g.anyTriggered([]*Player{p}, CategoryRestaurant)
}

func (g *Game) AnyPassiveLandmarkTriggered() bool {
	p := g.CurrentPlayer()
	return p != nil && len(g.triggered(p, passiveLandmarks)) > 0
}

func (g *Game) AnyActiveLandmarkTriggered() bool {
	p := g.CurrentPlayer()
	return p != nil && len(g.triggered(p, activeLandmarks)) > 0
}
