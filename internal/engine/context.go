package engine

import "fmt"

// Args is the caller-supplied input of a targeted card.
//
//	Television Studio:  Target
//	Office Building:    Target, Give (own card), Take (target's card)
//	Logistics Company:  Target, Give
//	Renovation Company: Card
type Args struct {
	Target string `json:"target,omitempty"`
	Give   CardID `json:"give,omitempty"`
	Take   CardID `json:"take,omitempty"`
	Card   CardID `json:"card,omitempty"`
}

// Context is the only handle an Effect gets on the game.
type Context struct {
	g    *Game
	card *CardDef

	// closed accumulates CloseEverywhere results for landmark reports.
	closed map[string]int
}

func (g *Game) context(def *CardDef) *Context {
	return &Context{g: g, card: def}
}

// Card returns the definition currently resolving.
func (c *Context) Card() *CardDef { return c.card }

// Catalog returns the shared card registry.
func (c *Context) Catalog() *Catalog { return c.g.Catalog }

// Rules returns the rules of the game.
func (c *Context) Rules() Rules { return c.g.Rules }

// ActivePlayer returns the player whose turn it is.
func (c *Context) ActivePlayer() *Player { return c.g.CurrentPlayer() }

// Players returns all players in seat order.
func (c *Context) Players() []*Player { return c.g.Players }

// Opponents returns every player except p, in seat order.
func (c *Context) Opponents(p *Player) []*Player {
	out := make([]*Player, 0, len(c.g.Players)-1)
	for _, o := range c.g.Players {
		if o != p {
			out = append(out, o)
		}
	}
	return out
}

// Player returns the seat with the given id. Unknown ids panic.
func (c *Context) Player(id string) *Player {
	p := c.g.GetPlayer(id)
	if p == nil {
		panic(fmt.Sprintf("engine: unknown player %q", id))
	}
	return p
}

// Sum returns the dice sum being resolved.
func (c *Context) Sum() int { return c.g.LastRoll.Sum }

// SharedRoll returns this turn's 2d6 roll shared by every Fishing Ship. It is
// rolled on first use and then reused for the rest of the turn.
func (c *Context) SharedRoll() int {
	t := &c.g.turn
	if t.sharedRoll == 0 {
		t.sharedRoll = rollDie(c.g.rng) + rollDie(c.g.rng)
	}
	return t.sharedRoll
}

// Transfer moves up to amount coins from one player to another and returns
// what was actually paid. The payer is never driven below zero.
func (c *Context) Transfer(from, to *Player, amount int) int {
	return transfer(from, to, amount)
}

func transfer(from, to *Player, amount int) int {
	actual := min(amount, from.Money)
	if actual <= 0 {
		return 0
	}
	from.Money -= actual
	to.Money += actual
	return actual
}

// FromBank pays amount from the bank to p. The bank is not clamped and a
// negative amount moves coins back into the bank.
func (c *Context) FromBank(p *Player, amount int) {
	p.Money += amount
	c.g.Market.Bank -= amount
}

// Income applies the Shopping Center bonus to a base payout of the card
// currently resolving. A zero payout stays zero.
func (c *Context) Income(owner *Player, base int) int {
	if base > 0 && c.card != nil && boostedSymbols[c.card.Symbol] && owner.HasCard(ShoppingCenter) {
		return base + 1
	}
	return base
}

// Move hands one copy of id from one player to another, keeping its state.
func (c *Context) Move(from, to *Player, id CardID) {
	active := from.Cards.Take(id)
	to.Cards.AddCopy(id, active)
}

// CloseEverywhere forces every copy of id inert across all players and
// returns, per player id, how many copies were newly closed.
func (c *Context) CloseEverywhere(id CardID) map[string]int {
	closed := make(map[string]int)
	for _, p := range c.g.Players {
		if n := p.Cards.DeactivateAll(id); n > 0 {
			closed[p.ID] = n
		}
	}
	if c.closed == nil {
		c.closed = make(map[string]int)
	}
	for pid, n := range closed {
		c.closed[pid] += n
	}
	return closed
}
