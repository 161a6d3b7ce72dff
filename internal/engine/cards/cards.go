// Package cards defines the card set and registers it into an engine.Catalog.
package cards

import "machikoro/internal/engine"

// NewCatalog builds the catalog with every card. It is built once at process
// start and shared by every game.
func NewCatalog() *engine.Catalog {
	c := engine.NewCatalog()
	registerProducers(c)
	registerShops(c)
	registerRestaurants(c)
	registerLandmarks(c)
	registerMilestones(c)
	return c
}

func triggers(n ...int) []int { return n }

// fromActive builds a producer effect: the active player pays amount to the
// owner, clamped to what the active player has.
func fromActive(amount func(owner *engine.Player, ctx *engine.Context) int) engine.Effect {
	return func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
		n := amount(owner, ctx)
		if n <= 0 {
			return
		}
		ctx.Transfer(ctx.ActivePlayer(), owner, ctx.Income(owner, n))
	}
}

// fromBank builds a shop or restaurant effect paid by the bank.
func fromBank(amount func(owner *engine.Player, ctx *engine.Context) int) engine.Effect {
	return func(owner *engine.Player, ctx *engine.Context, _ *engine.Args) {
		n := amount(owner, ctx)
		if n <= 0 {
			return
		}
		ctx.FromBank(owner, ctx.Income(owner, n))
	}
}

func flat(n int) func(*engine.Player, *engine.Context) int {
	return func(*engine.Player, *engine.Context) int { return n }
}

// withPort pays only when the owner has built the Port.
func withPort(f func(*engine.Player, *engine.Context) int) func(*engine.Player, *engine.Context) int {
	return func(owner *engine.Player, ctx *engine.Context) int {
		if !owner.HasCard(engine.Port) {
			return 0
		}
		return f(owner, ctx)
	}
}
