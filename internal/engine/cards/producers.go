package cards

import "machikoro/internal/engine"

func registerProducers(c *engine.Catalog) {
	c.Register(engine.CardDef{
		ID:          engine.SushiBar,
		Name:        "Sushi Bar",
		Cost:        2,
		Description: "Take 3 coins from the player who rolled, if you have a Port.",
		Category:    engine.CategoryProducer,
		Symbol:      engine.SymbolCoffee,
		Triggers:    triggers(1),
		Effect:      fromActive(withPort(flat(3))),
	})
	c.Register(engine.CardDef{
		ID:          engine.CoffeeShop,
		Name:        "Coffee Shop",
		Cost:        2,
		Description: "Take 1 coin from the player who rolled.",
		Category:    engine.CategoryProducer,
		Symbol:      engine.SymbolCoffee,
		Triggers:    triggers(3),
		Effect:      fromActive(flat(1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.LuxuriousRestaurant,
		Name:        "Luxurious Restaurant",
		Cost:        3,
		Description: "Take 5 coins from the player who rolled if they own 2 or more milestones.",
		Category:    engine.CategoryProducer,
		Symbol:      engine.SymbolCoffee,
		Triggers:    triggers(5),
		Effect: fromActive(func(_ *engine.Player, ctx *engine.Context) int {
			if ctx.ActivePlayer().DominantCount(false) >= 2 {
				return 5
			}
			return 0
		}),
	})
	c.Register(engine.CardDef{
		ID:          engine.Pizzeria,
		Name:        "Pizzeria",
		Cost:        1,
		Description: "Take 1 coin from the player who rolled.",
		Category:    engine.CategoryProducer,
		Symbol:      engine.SymbolCoffee,
		Triggers:    triggers(7),
		Effect:      fromActive(flat(1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.BurgerGrill,
		Name:        "Burger Grill",
		Cost:        1,
		Description: "Take 1 coin from the player who rolled.",
		Category:    engine.CategoryProducer,
		Symbol:      engine.SymbolCoffee,
		Triggers:    triggers(8),
		Effect:      fromActive(flat(1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.Restaurant,
		Name:        "Restaurant",
		Cost:        3,
		Description: "Take 2 coins from the player who rolled.",
		Category:    engine.CategoryProducer,
		Symbol:      engine.SymbolCoffee,
		Triggers:    triggers(9, 10),
		Effect:      fromActive(flat(2)),
	})
	c.Register(engine.CardDef{
		ID:          engine.NightClub,
		Name:        "Night Club",
		Cost:        4,
		Description: "Take all coins from the player who rolled if they own 3 or more milestones.",
		Category:    engine.CategoryProducer,
		Symbol:      engine.SymbolCoffee,
		Triggers:    triggers(12, 13, 14),
		Effect: func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
			active := ctx.ActivePlayer()
			if active.DominantCount(false) >= 3 {
				ctx.Transfer(active, owner, active.Money)
			}
		},
	})
}
