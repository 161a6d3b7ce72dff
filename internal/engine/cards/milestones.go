package cards

import "machikoro/internal/engine"

// Milestones are never sold from the market. Only the Town Hall and the
// Airport pay anything; the rest change the turn rules.
func registerMilestones(c *engine.Catalog) {
	c.Register(engine.CardDef{
		ID:          engine.TownHall,
		Name:        "Town Hall",
		Cost:        0,
		Description: "Before building, if you have no coins, get 1 coin from the bank.",
		Category:    engine.CategoryMilestone,
		Effect: func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
			ctx.FromBank(owner, 1)
		},
	})
	c.Register(engine.CardDef{
		ID:          engine.Port,
		Name:        "Port",
		Cost:        2,
		Description: "When your roll is 10 or more you may add 2 to it.",
		Category:    engine.CategoryMilestone,
	})
	c.Register(engine.CardDef{
		ID:          engine.Station,
		Name:        "Station",
		Cost:        4,
		Description: "You may roll two dice.",
		Category:    engine.CategoryMilestone,
	})
	c.Register(engine.CardDef{
		ID:          engine.ShoppingCenter,
		Name:        "Shopping Center",
		Cost:        10,
		Description: "Your coffee and box cards earn 1 extra coin.",
		Category:    engine.CategoryMilestone,
	})
	c.Register(engine.CardDef{
		ID:          engine.AmusementPark,
		Name:        "Amusement Park",
		Cost:        16,
		Description: "If you roll doubles, take another turn.",
		Category:    engine.CategoryMilestone,
	})
	c.Register(engine.CardDef{
		ID:          engine.Transmitter,
		Name:        "Transmitter",
		Cost:        22,
		Description: "Once per turn you may roll again.",
		Category:    engine.CategoryMilestone,
	})
	c.Register(engine.CardDef{
		ID:          engine.Airport,
		Name:        "Airport",
		Cost:        30,
		Description: "If you build nothing on your turn, get 10 coins from the bank.",
		Category:    engine.CategoryMilestone,
		Effect: func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
			ctx.FromBank(owner, ctx.Rules().AirportBonus)
		},
	})
}
