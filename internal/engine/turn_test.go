package engine_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machikoro/internal/engine"
	"machikoro/internal/engine/cards"
)

func buy(g *engine.Game, id engine.CardID) ([]engine.Event, error) {
	return g.Apply(g.Current, engine.Action{Type: engine.ActionBuyCard, Card: id})
}

func TestInitialMarket(t *testing.T) {
	g, _ := newTestGame(t, 2)
	m := g.Market

	assert.Equal(t, []engine.CardID{
		engine.SushiBar, engine.CoffeeShop, engine.LuxuriousRestaurant, engine.WheatField, engine.Farm,
	}, m.Visible(engine.TierLow).IDs())
	assert.Equal(t, []engine.CardID{
		engine.Pizzeria, engine.BurgerGrill, engine.Restaurant, engine.NightClub, engine.Vineyard,
	}, m.Visible(engine.TierHigh).IDs())
	assert.Equal(t, []engine.CardID{engine.Stadium, engine.TelevisionStudio}, m.Visible(engine.TierLandmark).IDs())

	assert.Equal(t, 72-25, m.PileLen(engine.TierLow))
	assert.Equal(t, 96-25, m.PileLen(engine.TierHigh))
	assert.Equal(t, 32-5, m.PileLen(engine.TierLandmark))
	assert.False(t, m.Offers(engine.Park))
	assert.False(t, m.Offers(engine.Port))
}

func TestBuyCardRefillsMarket(t *testing.T) {
	g, rng := newTestGame(t, 2)
	a := player(g, "A")
	bank := g.Market.Bank
	rng.dice(5)
	roll(t, g, 1)

	_, err := buy(g, engine.Park)
	assert.ErrorIs(t, err, engine.ErrNotInMarket)
	_, err = buy(g, engine.Stadium)
	assert.ErrorIs(t, err, engine.ErrNotEnoughMoney)
	_, err = buy(g, engine.CardID(999))
	assert.ErrorIs(t, err, engine.ErrInvalidCard)

	events, err := buy(g, engine.Farm)
	require.NoError(t, err)
	require.True(t, hasEvent(events, engine.EventCardBought))
	assert.Equal(t, []engine.CardID{engine.Farm}, events[0].Data["drawn"])
	assert.Equal(t, 2, a.Money)
	assert.Equal(t, bank+1, g.Market.Bank)
	assert.True(t, a.HasCard(engine.Farm))
	assert.Equal(t, 5, g.Market.Visible(engine.TierLow).Distinct())
	assert.Equal(t, 72-26, g.Market.PileLen(engine.TierLow))

	_, err = buy(g, engine.CoffeeShop)
	assert.ErrorIs(t, err, engine.ErrAlreadyBuilt)
}

func TestBuyCardWithoutRefill(t *testing.T) {
	g, rng := newTestGame(t, 2)
	rng.dice(5)
	roll(t, g, 1)

	drawn := g.BuyCard("A", engine.CoffeeShop)
	assert.Empty(t, drawn)
	assert.Equal(t, 5, g.Market.Visible(engine.TierLow).Count(engine.CoffeeShop))
}

func TestBuyMilestone(t *testing.T) {
	g, rng := newTestGame(t, 2)
	a := player(g, "A")
	rng.dice(5)
	roll(t, g, 1)

	landmarks := g.Market.PileLen(engine.TierLandmark)
	_, err := buy(g, engine.Port)
	require.NoError(t, err)
	assert.True(t, a.HasCard(engine.Port))
	assert.Equal(t, 1, a.Money)
	assert.Equal(t, landmarks, g.Market.PileLen(engine.TierLandmark))
	endTurn(t, g)

	rng.dice(5)
	roll(t, g, 1)
	endTurn(t, g)
	rng.dice(5)
	roll(t, g, 1)
	_, err = buy(g, engine.Port)
	assert.ErrorIs(t, err, engine.ErrAlreadyOwned)
}

func TestBuyOutsideBuildPhase(t *testing.T) {
	g, _ := newTestGame(t, 2)
	_, err := buy(g, engine.Farm)
	assert.ErrorIs(t, err, engine.ErrWrongPhase)
	assert.Panics(t, func() { g.BuyCard("A", engine.Farm) })
}

func TestMarketKeepsTargetsWhilePilesLast(t *testing.T) {
	seats := []engine.Seat{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
	rules := engine.DefaultRules()
	g := engine.NewGame("g", seats, cards.NewCatalog(), rules, engine.NewRand())
	g.Start()

	targets := map[engine.Tier]int{
		engine.TierLow:      rules.LowTarget,
		engine.TierHigh:     rules.HighTarget,
		engine.TierLandmark: rules.LandmarkTarget,
	}

	for i := 0; i < 120 && g.Phase != engine.PhaseGameOver; i++ {
		p := g.CurrentPlayer()
		p.Money = 100
		_, err := g.Apply(p.ID, engine.Action{Type: engine.ActionRollDice})
		require.NoError(t, err)
		for g.Phase != engine.PhaseAwaitingBuild {
			var action engine.Action
			switch g.Phase {
			case engine.PhaseAwaitingTargetedInput:
				action.Type = engine.ActionTargetedInput
			case engine.PhaseAwaitingLandmarkInput:
				action.Type = engine.ActionLandmarkInput
			default:
				t.Fatalf("unexpected phase %s", g.Phase)
			}
			_, err := g.Apply(p.ID, action)
			require.NoError(t, err)
		}

		tier := engine.MarketTiers[i%len(engine.MarketTiers)]
		if ids := g.Market.Visible(tier).IDs(); len(ids) > 0 {
			_, err := buy(g, ids[i%len(ids)])
			require.NoError(t, err)
			// The pool only stays short once its pile is exhausted.
			if g.Market.PileLen(tier) > 0 {
				assert.Equal(t, targets[tier], g.Market.Visible(tier).Distinct(), "tier %s", tier)
			}
		}
		endTurn(t, g)
	}
}

func TestExtraTurnOnDoubles(t *testing.T) {
	g, rng := newTestGame(t, 2)
	a := player(g, "A")
	a.Cards.Add(engine.Station, 1)
	a.Cards.Add(engine.AmusementPark, 1)

	rng.dice(4, 4)
	roll(t, g, 2)
	events := endTurn(t, g)
	assert.True(t, hasEvent(events, engine.EventExtraTurn))
	assert.Equal(t, "A", g.Current)
	assert.Equal(t, engine.PhaseAwaitingRoll, g.Phase)

	rng.dice(4, 5)
	roll(t, g, 2)
	endTurn(t, g)
	assert.Equal(t, "B", g.Current)
}

func TestNoExtraTurnWhenParkJustBought(t *testing.T) {
	g, rng := newTestGame(t, 2)
	a := player(g, "A")
	a.Cards.Add(engine.Station, 1)
	a.Money = 16

	rng.dice(4, 4)
	roll(t, g, 2)
	_, err := buy(g, engine.AmusementPark)
	require.NoError(t, err)
	assert.True(t, g.JustBought(engine.AmusementPark))

	events := endTurn(t, g)
	assert.False(t, hasEvent(events, engine.EventExtraTurn))
	assert.Equal(t, "B", g.Current)
	assert.False(t, g.JustBought(engine.AmusementPark))
}

func TestNoExtraTurnWithOneDie(t *testing.T) {
	g, rng := newTestGame(t, 2)
	player(g, "A").Cards.Add(engine.AmusementPark, 1)

	rng.dice(5)
	roll(t, g, 1)
	endTurn(t, g)
	assert.Equal(t, "B", g.Current)
}

func TestAirportBonus(t *testing.T) {
	g, rng := newTestGame(t, 2)
	a := player(g, "A")
	a.Cards.Add(engine.Airport, 1)
	bank := g.Market.Bank

	rng.dice(5)
	roll(t, g, 1)
	events := endTurn(t, g)
	assert.True(t, hasEvent(events, engine.EventAirportGain))
	assert.Equal(t, 13, a.Money)
	assert.Equal(t, bank-10, g.Market.Bank)
}

func TestAirportSkippedAfterBuying(t *testing.T) {
	t.Run("bought this turn", func(t *testing.T) {
		g, rng := newTestGame(t, 2)
		a := player(g, "A")
		a.Money = 30
		rng.dice(5)
		roll(t, g, 1)
		_, err := buy(g, engine.Airport)
		require.NoError(t, err)

		events := endTurn(t, g)
		assert.False(t, hasEvent(events, engine.EventAirportGain))
		assert.Equal(t, 0, a.Money)
	})

	t.Run("built something else", func(t *testing.T) {
		g, rng := newTestGame(t, 2)
		a := player(g, "A")
		a.Cards.Add(engine.Airport, 1)
		rng.dice(5)
		roll(t, g, 1)
		_, err := buy(g, engine.Farm)
		require.NoError(t, err)

		endTurn(t, g)
		assert.Equal(t, 2, a.Money)
	})
}

func TestITCenterInvest(t *testing.T) {
	g, rng := newTestGame(t, 2)
	a := player(g, "A")
	bank := g.Market.Bank

	rng.dice(5)
	roll(t, g, 1)
	_, err := g.Apply("A", engine.Action{Type: engine.ActionEndTurn, Invest: true})
	assert.ErrorIs(t, err, engine.ErrNotEligible)

	a.Cards.Add(engine.ITCenter, 1)
	events, err := g.Apply("A", engine.Action{Type: engine.ActionEndTurn, Invest: true})
	require.NoError(t, err)
	assert.True(t, hasEvent(events, engine.EventHoardCoin))
	assert.Equal(t, 1, a.Hoard)
	assert.Equal(t, 2, a.Money)
	assert.Equal(t, bank, g.Market.Bank)
}

func TestWinCheck(t *testing.T) {
	all := engine.WinMilestones()
	tests := []struct {
		name     string
		owned    []engine.CardID
		townHall bool
		want     bool
	}{
		{"nothing", nil, false, false},
		{"all but one", all[1:], false, false},
		{"all", all, false, true},
		{"all, town hall required", all, true, false},
		{"all plus town hall, required", append([]engine.CardID{engine.TownHall}, all...), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, 2)
			g.Rules.RequireTownHall = tt.townHall
			p := player(g, "A")
			for _, id := range tt.owned {
				p.Cards.Add(id, 1)
			}
			assert.Equal(t, tt.want, g.WinCheck(p))
		})
	}
}

func TestWinningEndsGame(t *testing.T) {
	g, rng := newTestGame(t, 2)
	a := player(g, "A")
	for _, id := range engine.WinMilestones() {
		if id != engine.Airport {
			a.Cards.Add(id, 1)
		}
	}
	a.Money = 30

	rng.dice(5)
	roll(t, g, 1)
	// Transmitter keeps the roll open.
	_, err := g.Apply("A", engine.Action{Type: engine.ActionEndRoll})
	require.NoError(t, err)
	_, err = buy(g, engine.Airport)
	require.NoError(t, err)

	events := endTurn(t, g)
	assert.True(t, hasEvent(events, engine.EventGameOver))
	assert.Equal(t, engine.PhaseGameOver, g.Phase)
	assert.Equal(t, "A", g.Winner)

	standings := g.Standings()
	require.Len(t, standings, 2)
	assert.Equal(t, "A", standings[0].PlayerID)
	assert.True(t, standings[0].Winner)
	assert.Equal(t, 6, standings[0].Milestones)

	_, err = g.Apply("A", engine.Action{Type: engine.ActionRollDice})
	assert.ErrorIs(t, err, engine.ErrWrongPhase)
}

func TestViewFor(t *testing.T) {
	g, rng := newTestGame(t, 2)
	rng.dice(5)
	roll(t, g, 1)

	v := g.ViewFor("A")
	assert.True(t, v.IsMyTurn)
	assert.Equal(t, "AwaitingBuild", v.Phase)
	assert.ElementsMatch(t, []engine.ActionType{engine.ActionBuyCard, engine.ActionEndTurn}, v.Allowed)
	assert.Contains(t, v.Affordable, engine.Farm)
	assert.Contains(t, v.Affordable, engine.Port)
	assert.Contains(t, v.Affordable, engine.TownHall)
	assert.NotContains(t, v.Affordable, engine.Stadium)
	assert.NotContains(t, v.Affordable, engine.Park)
	require.NotNil(t, v.LastRoll)
	assert.Equal(t, 5, v.LastRoll.Sum)
	assert.False(t, v.AwaitingInput)
	assert.Equal(t, []engine.CardID{engine.WheatField, engine.Bakery}, v.Players[0].Establishments)

	other := g.ViewFor("B")
	assert.False(t, other.IsMyTurn)
	assert.Empty(t, other.Allowed)
	assert.Empty(t, other.Affordable)

	b, err := json.Marshal(g.PublicView())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"wheat_field":[true]`)
	assert.Contains(t, string(b), `"phase":"AwaitingBuild"`)

	var decoded engine.PublicViewData
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, g.Market.View(), decoded.Market)
	assert.Equal(t, g.PublicView().Players, decoded.Players)

	_, err = buy(g, engine.Farm)
	require.NoError(t, err)
	assert.Empty(t, g.ViewFor("A").Affordable, "nothing more to buy this turn")
}
