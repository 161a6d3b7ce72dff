package cards

import "machikoro/internal/engine"

func registerLandmarks(c *engine.Catalog) {
	// Passive landmarks.
	c.Register(engine.CardDef{
		ID:          engine.Stadium,
		Name:        "Stadium",
		Cost:        6,
		Description: "Take 2 coins from every other player.",
		Category:    engine.CategoryLandmark,
		Symbol:      engine.SymbolTower,
		Triggers:    triggers(6),
		Effect: func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
			for _, o := range ctx.Opponents(owner) {
				ctx.Transfer(o, owner, 2)
			}
		},
	})
	c.Register(engine.CardDef{
		ID:          engine.PublishingHouse,
		Name:        "Publishing House",
		Cost:        5,
		Description: "Take 1 coin from every other player for each coffee and box card they own.",
		Category:    engine.CategoryLandmark,
		Symbol:      engine.SymbolTower,
		Triggers:    triggers(7),
		Effect: func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
			for _, o := range ctx.Opponents(owner) {
				n := o.Cards.SymbolCount(ctx.Catalog(), engine.SymbolCoffee) +
					o.Cards.SymbolCount(ctx.Catalog(), engine.SymbolBox)
				ctx.Transfer(o, owner, n)
			}
		},
	})
	c.Register(engine.CardDef{
		ID:          engine.FinancialOffice,
		Name:        "Financial Office",
		Cost:        4,
		Description: "Every other player with 10 or more coins gives you half of them, rounded down.",
		Category:    engine.CategoryLandmark,
		Symbol:      engine.SymbolTower,
		Triggers:    triggers(8, 9),
		Effect: func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
			for _, o := range ctx.Opponents(owner) {
				if o.Money >= 10 {
					ctx.Transfer(o, owner, o.Money/2)
				}
			}
		},
	})
	c.Register(engine.CardDef{
		ID:          engine.ITCenter,
		Name:        "IT Center",
		Cost:        1,
		Description: "At the end of your turn you may put 1 coin on this card. Take as many coins as are on it from every other player.",
		Category:    engine.CategoryLandmark,
		Symbol:      engine.SymbolTower,
		Triggers:    triggers(10),
		Effect: func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
			for _, o := range ctx.Opponents(owner) {
				ctx.Transfer(o, owner, owner.Hoard)
			}
		},
	})
	// Park rounds the share up; the bank covers the difference.
	c.Register(engine.CardDef{
		ID:          engine.Park,
		Name:        "Park",
		Cost:        3,
		Description: "Pool the coins of all players and split them evenly, rounded up with coins from the bank.",
		Category:    engine.CategoryLandmark,
		Symbol:      engine.SymbolTower,
		Triggers:    triggers(11, 12, 13),
		Effect: func(_ *engine.Player, ctx *engine.Context, _ *engine.Args) {
			players := ctx.Players()
			total := 0
			for _, p := range players {
				total += p.Money
			}
			share := (total + len(players) - 1) / len(players)
			for _, p := range players {
				ctx.FromBank(p, share-p.Money)
			}
		},
	})

	// Active landmarks take caller input.
	c.Register(engine.CardDef{
		ID:          engine.TelevisionStudio,
		Name:        "Television Studio",
		Cost:        7,
		Description: "Take 5 coins from a player of your choice.",
		Category:    engine.CategoryLandmark,
		Symbol:      engine.SymbolTower,
		Triggers:    triggers(6),
		Effect: func(owner *engine.Player, ctx *engine.Context, args *engine.Args) {
			if args == nil {
				return
			}
			ctx.Transfer(ctx.Player(args.Target), owner, 5)
		},
	})
	c.Register(engine.CardDef{
		ID:          engine.OfficeBuilding,
		Name:        "Office Building",
		Cost:        8,
		Description: "Swap one of your establishments with one establishment of another player.",
		Category:    engine.CategoryLandmark,
		Symbol:      engine.SymbolTower,
		Triggers:    triggers(6),
		Effect: func(owner *engine.Player, ctx *engine.Context, args *engine.Args) {
			if args == nil {
				return
			}
			target := ctx.Player(args.Target)
			ctx.Move(owner, target, args.Give)
			ctx.Move(target, owner, args.Take)
		},
	})
	c.Register(engine.CardDef{
		ID:          engine.RenovationCompany,
		Name:        "Renovation Company",
		Cost:        4,
		Description: "Name an establishment. Every copy of it closes, and each other owner pays you 1 coin per copy closed.",
		Category:    engine.CategoryLandmark,
		Symbol:      engine.SymbolTower,
		Triggers:    triggers(8),
		Effect: func(owner *engine.Player, ctx *engine.Context, args *engine.Args) {
			if args == nil {
				return
			}
			for id, n := range ctx.CloseEverywhere(args.Card) {
				if id != owner.ID {
					ctx.Transfer(ctx.Player(id), owner, n)
				}
			}
		},
	})
}
