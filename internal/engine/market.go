package engine

import "fmt"

// Market holds the bank and the three purchasable pools with their piles.
type Market struct {
	// Bank may go negative.
	Bank int

	piles   map[Tier]*Pile
	visible map[Tier]*Collection
	targets map[Tier]int
	tiers   map[CardID]Tier
}

// NewMarket splits the catalog's establishments and landmarks into their
// tier piles, shuffles each pile once and deals the visible pools.
func NewMarket(cat *Catalog, rules Rules, players int, rng Rand) *Market {
	m := &Market{
		Bank:    rules.BankTotal - players*rules.StartingMoney,
		piles:   make(map[Tier]*Pile),
		visible: make(map[Tier]*Collection),
		targets: make(map[Tier]int),
		tiers:   make(map[CardID]Tier),
	}

	stock := make(map[Tier][]CardID)
	for _, def := range cat.All() {
		tier := def.Tier()
		if tier == TierNone {
			continue
		}
		copies := rules.EstablishmentCopies
		if tier == TierLandmark {
			copies = rules.LandmarkCopies
		}
		for i := 0; i < copies; i++ {
			stock[tier] = append(stock[tier], def.ID)
		}
		m.tiers[def.ID] = tier
	}

	for _, t := range MarketTiers {
		m.piles[t] = NewPile(stock[t], rng)
		m.visible[t] = NewCollection()
		m.targets[t] = rules.target(t)
		m.refill(t)
	}
	return m
}

// Visible returns the purchasable pool of one tier.
func (m *Market) Visible(t Tier) *Collection {
	return m.visible[t]
}

// PileLen returns how many cards remain face down in a tier.
func (m *Market) PileLen(t Tier) int {
	return m.piles[t].Len()
}

// Offers reports whether at least one copy of id is on display.
func (m *Market) Offers(id CardID) bool {
	t, ok := m.tiers[id]
	return ok && m.visible[t].Has(id)
}

// take removes one copy of id from its pool and refills the pool. The ids
// drawn from the pile are returned in draw order.
func (m *Market) take(id CardID) []CardID {
	t, ok := m.tiers[id]
	if !ok || !m.visible[t].Has(id) {
		panic(fmt.Sprintf("engine: %s is not on display", id))
	}
	m.visible[t].Remove(id)
	return m.refill(t)
}

func (m *Market) refill(t Tier) []CardID {
	var drawn []CardID
	pool := m.visible[t]
	for pool.Distinct() < m.targets[t] {
		id, ok := m.piles[t].Draw()
		if !ok {
			break
		}
		pool.Add(id, 1)
		drawn = append(drawn, id)
	}
	return drawn
}

// MarketView is the serialisable state of the market.
type MarketView struct {
	Bank  int                     `json:"bank"`
	Pools map[Tier]map[CardID]int `json:"pools"`
	Piles map[Tier]int            `json:"piles"`
}

func (m *Market) View() MarketView {
	v := MarketView{
		Bank:  m.Bank,
		Pools: make(map[Tier]map[CardID]int),
		Piles: make(map[Tier]int),
	}
	for _, t := range MarketTiers {
		pool := make(map[CardID]int)
		for _, id := range m.visible[t].IDs() {
			pool[id] = m.visible[t].Count(id)
		}
		v.Pools[t] = pool
		v.Piles[t] = m.piles[t].Len()
	}
	return v
}
