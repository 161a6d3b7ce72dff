package engine

import (
	"fmt"
	"slices"
)

// Effect is a card's income procedure. It runs once per active copy and may
// only touch game state through ctx. args is nil except for cards that take
// player input.
type Effect func(owner *Player, ctx *Context, args *Args)

// CardDef is the immutable definition of one card kind.
type CardDef struct {
	ID          CardID   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cost        int      `json:"cost"`
	Category    Category `json:"category"`
	Symbol      Symbol   `json:"symbol"`
	Triggers    []int    `json:"triggers"`
	Effect      Effect   `json:"-"`
}

// TriggeredBy reports whether sum is in the card's trigger set.
func (d *CardDef) TriggeredBy(sum int) bool {
	return slices.Contains(d.Triggers, sum)
}

// Tier returns the market pool the card is sold from. Establishments whose
// average trigger number is at most 6 are low, the rest are high.
func (d *CardDef) Tier() Tier {
	switch {
	case d.Category == CategoryLandmark:
		return TierLandmark
	case d.Category == CategoryMilestone:
		return TierNone
	case len(d.Triggers) == 0:
		return TierLow
	}
	total := 0
	for _, n := range d.Triggers {
		total += n
	}
	if total <= 6*len(d.Triggers) {
		return TierLow
	}
	return TierHigh
}

// Catalog is the registry of card definitions shared read-only by every
// game in the process.
type Catalog struct {
	defs       map[CardID]*CardDef
	order      []CardID
	byCategory map[Category][]CardID
}

func NewCatalog() *Catalog {
	return &Catalog{
		defs:       make(map[CardID]*CardDef),
		byCategory: make(map[Category][]CardID),
	}
}

// Register adds a definition. Registering an ID twice panics.
func (c *Catalog) Register(d CardDef) {
	if _, ok := c.defs[d.ID]; ok {
		panic(fmt.Sprintf("engine: card %s registered twice", d.ID))
	}
	if d.Effect == nil {
		d.Effect = func(*Player, *Context, *Args) {}
	}
	def := d
	c.defs[d.ID] = &def
	c.order = append(c.order, d.ID)
	slices.Sort(c.order)
	c.byCategory[d.Category] = append(c.byCategory[d.Category], d.ID)
	slices.Sort(c.byCategory[d.Category])
}

// Lookup returns the definition for id. Unknown ids are programmer errors.
func (c *Catalog) Lookup(id CardID) *CardDef {
	d, ok := c.defs[id]
	if !ok {
		panic(fmt.Sprintf("engine: unknown card id %d", int(id)))
	}
	return d
}

// Has reports whether id is registered.
func (c *Catalog) Has(id CardID) bool {
	_, ok := c.defs[id]
	return ok
}

// ByCategory returns the ids of one category in ascending id order.
func (c *Catalog) ByCategory(cat Category) []CardID {
	return c.byCategory[cat]
}

// IDs returns every registered id in ascending order.
func (c *Catalog) IDs() []CardID {
	return c.order
}

// All returns every definition in ascending id order.
func (c *Catalog) All() []*CardDef {
	out := make([]*CardDef, len(c.order))
	for i, id := range c.order {
		out[i] = c.defs[id]
	}
	return out
}

// Rule tables. These stay keyed by id instead of living as flags on the
// definitions.
var (
	// passiveLandmarks resolve automatically, in this order.
	passiveLandmarks = []CardID{Stadium, PublishingHouse, FinancialOffice, ITCenter, Park}

	// activeLandmarks need caller-supplied input, resolved in this order.
	activeLandmarks = []CardID{TelevisionStudio, OfficeBuilding, RenovationCompany}

	// targetedRestaurants pause the turn for input instead of resolving inline.
	targetedRestaurants = []CardID{LogisticsCompany}

	// winMilestones must all be owned to win.
	winMilestones = []CardID{Port, Station, ShoppingCenter, AmusementPark, Transmitter, Airport}

	// optionalMilestone is left out of DominantCount(false) and only
	// required to win under Rules.RequireTownHall.
	optionalMilestone = TownHall

	// selfClosing copies go inert right after paying out.
	selfClosing = map[CardID]bool{Winery: true}

	// justBoughtSuppressed milestones skip their end-of-turn effect on the
	// turn they are bought.
	justBoughtSuppressed = map[CardID]bool{AmusementPark: true, Airport: true}

	// boostedSymbols earn one extra coin per firing with a Shopping Center.
	boostedSymbols = map[Symbol]bool{SymbolCoffee: true, SymbolBox: true}
)

// PassiveLandmarks returns the canonical passive landmark order.
func PassiveLandmarks() []CardID { return slices.Clone(passiveLandmarks) }

// ActiveLandmarks returns the canonical active landmark order.
func ActiveLandmarks() []CardID { return slices.Clone(activeLandmarks) }

// WinMilestones returns the milestones required for victory.
func WinMilestones() []CardID { return slices.Clone(winMilestones) }

// IsActiveLandmark reports whether id resolves with caller input.
func IsActiveLandmark(id CardID) bool { return slices.Contains(activeLandmarks, id) }

func isTargetedRestaurant(id CardID) bool { return slices.Contains(targetedRestaurants, id) }
