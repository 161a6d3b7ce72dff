package cards

import "machikoro/internal/engine"

func registerShops(c *engine.Catalog) {
	c.Register(engine.CardDef{
		ID:          engine.WheatField,
		Name:        "Wheat Field",
		Cost:        1,
		Description: "Get 1 coin from the bank on anyone's turn.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolWheat,
		Triggers:    triggers(1),
		Effect:      fromBank(flat(1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.Farm,
		Name:        "Farm",
		Cost:        1,
		Description: "Get 1 coin from the bank on anyone's turn.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolPig,
		Triggers:    triggers(2),
		Effect:      fromBank(flat(1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.CornField,
		Name:        "Corn Field",
		Cost:        2,
		Description: "Get 1 coin from the bank if you own at most 1 milestone.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolWheat,
		Triggers:    triggers(3, 4),
		Effect: fromBank(func(owner *engine.Player, _ *engine.Context) int {
			if owner.DominantCount(false) <= 1 {
				return 1
			}
			return 0
		}),
	})
	c.Register(engine.CardDef{
		ID:          engine.FlowerGarden,
		Name:        "Flower Garden",
		Cost:        2,
		Description: "Get 1 coin from the bank on anyone's turn.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolWheat,
		Triggers:    triggers(4),
		Effect:      fromBank(flat(1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.Forest,
		Name:        "Forest",
		Cost:        3,
		Description: "Get 1 coin from the bank on anyone's turn.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolCog,
		Triggers:    triggers(5),
		Effect:      fromBank(flat(1)),
	})
	c.Register(engine.CardDef{
		ID:          engine.Vineyard,
		Name:        "Vineyard",
		Cost:        3,
		Description: "Get 3 coins from the bank on anyone's turn.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolWheat,
		Triggers:    triggers(7),
		Effect:      fromBank(flat(3)),
	})
	c.Register(engine.CardDef{
		ID:          engine.FishingBoat,
		Name:        "Fishing Boat",
		Cost:        2,
		Description: "Get 3 coins from the bank if you have a Port.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolCog,
		Triggers:    triggers(8),
		Effect:      fromBank(withPort(flat(3))),
	})
	c.Register(engine.CardDef{
		ID:          engine.Mine,
		Name:        "Mine",
		Cost:        6,
		Description: "Get 5 coins from the bank on anyone's turn.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolCog,
		Triggers:    triggers(9),
		Effect:      fromBank(flat(5)),
	})
	c.Register(engine.CardDef{
		ID:          engine.AppleOrchard,
		Name:        "Apple Orchard",
		Cost:        3,
		Description: "Get 3 coins from the bank on anyone's turn.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolWheat,
		Triggers:    triggers(10),
		Effect:      fromBank(flat(3)),
	})
	// Every Fishing Ship pays the same 2d6 roll, made once per turn.
	c.Register(engine.CardDef{
		ID:          engine.FishingShip,
		Name:        "Fishing Ship",
		Cost:        5,
		Description: "If you have a Port, roll two dice once for the whole table and get that many coins from the bank.",
		Category:    engine.CategoryShop,
		Symbol:      engine.SymbolBoat,
		Triggers:    triggers(12, 13, 14),
		Effect: fromBank(withPort(func(_ *engine.Player, ctx *engine.Context) int {
			return ctx.SharedRoll()
		})),
	})
}
