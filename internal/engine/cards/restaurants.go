package cards

import "machikoro/internal/engine"

func registerRestaurants(c *engine.Catalog) {
	c.Register(engine.CardDef{
		ID:          engine.ConvenienceStore,
		Name:        "Convenience Store",
		Cost:        0,
		Description: "Get 2 coins from the bank on your turn if you own at most 1 milestone.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolBox,
		Triggers:    triggers(2),
		Effect: fromBank(func(owner *engine.Player, _ *engine.Context) int {
			if owner.DominantCount(false) <= 1 {
				return 2
			}
			return 0
		}),
	})
	c.Register(engine.CardDef{
		ID:          engine.Bakery,
		Name:        "Bakery",
		Cost:        1,
		Description: "Get 1 coin from the bank on your turn.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolBox,
		Triggers:    triggers(2, 3),
		Effect:      fromBank(flat(1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.Shop,
		Name:        "Shop",
		Cost:        2,
		Description: "Get 3 coins from the bank on your turn.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolBox,
		Triggers:    triggers(4),
		Effect:      fromBank(flat(3)),
	})
	c.Register(engine.CardDef{
		ID:          engine.FlowerShop,
		Name:        "Flower Shop",
		Cost:        2,
		Description: "Get 1 coin from the bank for each Flower Garden you own.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolBox,
		Triggers:    triggers(6),
		Effect:      fromBank(perCard(engine.FlowerGarden, 1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.Dairy,
		Name:        "Dairy",
		Cost:        5,
		Description: "Get 3 coins from the bank for each pig card you own.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolFactory,
		Triggers:    triggers(7),
		Effect:      fromBank(perSymbol(engine.SymbolPig, 3)),
	})
	c.Register(engine.CardDef{
		ID:          engine.FurnitureFactory,
		Name:        "Furniture Factory",
		Cost:        3,
		Description: "Get 3 coins from the bank for each cog card you own.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolFactory,
		Triggers:    triggers(8),
		Effect:      fromBank(perSymbol(engine.SymbolCog, 3)),
	})
	c.Register(engine.CardDef{
		ID:          engine.LogisticsCompany,
		Name:        "Logistics Company",
		Cost:        2,
		Description: "Give one of your establishments to another player and get 4 coins from the bank.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolSuitcase,
		Triggers:    triggers(9, 10),
		Effect: func(owner *engine.Player, ctx *engine.Context, args *engine.Args) {
			if args == nil {
				return
			}
			ctx.Move(owner, ctx.Player(args.Target), args.Give)
			ctx.FromBank(owner, 4)
		},
	})
	c.Register(engine.CardDef{
		ID:          engine.Winery,
		Name:        "Winery",
		Cost:        3,
		Description: "Get 6 coins from the bank for each Vineyard you own, then close this Winery.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolFactory,
		Triggers:    triggers(9),
		Effect:      fromBank(perCard(engine.Vineyard, 6)),
	})
	// Soda Company counts closed coffee cards as well.
	c.Register(engine.CardDef{
		ID:          engine.SodaCompany,
		Name:        "Soda Company",
		Cost:        5,
		Description: "Get 1 coin from the bank for each coffee card owned by any player.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolFactory,
		Triggers:    triggers(11),
		Effect: fromBank(func(_ *engine.Player, ctx *engine.Context) int {
			n := 0
			for _, p := range ctx.Players() {
				n += p.Cards.SymbolCountAll(ctx.Catalog(), engine.SymbolCoffee)
			}
			return n
		}),
	})
	c.Register(engine.CardDef{
		ID:          engine.FruitMarket,
		Name:        "Fruit Market",
		Cost:        2,
		Description: "Get 2 coins from the bank for each wheat card you own.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolFruit,
		Triggers:    triggers(11, 12),
		Effect:      fromBank(perSymbol(engine.SymbolWheat, 2)),
	})
	c.Register(engine.CardDef{
		ID:          engine.FoodWholesale,
		Name:        "Food Wholesale",
		Cost:        2,
		Description: "Get 2 coins from the bank for each coffee card you own.",
		Category:    engine.CategoryRestaurant,
		Symbol:      engine.SymbolFruit,
		Triggers:    triggers(12, 13),
		Effect:      fromBank(perSymbol(engine.SymbolCoffee, 2)),
	})
}

func perCard(id engine.CardID, unit int) func(*engine.Player, *engine.Context) int {
	return func(owner *engine.Player, _ *engine.Context) int {
		return unit * owner.Cards.ActiveCount(id)
	}
}

func perSymbol(sym engine.Symbol, unit int) func(*engine.Player, *engine.Context) int {
	return func(owner *engine.Player, ctx *engine.Context) int {
		return unit * owner.Cards.SymbolCount(ctx.Catalog(), sym)
	}
}
