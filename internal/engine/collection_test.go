package engine_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machikoro/internal/engine"
)

func TestCollectionAddRemove(t *testing.T) {
	c := engine.NewCollection()
	c.Add(engine.Bakery, 2)
	c.Add(engine.Mine, 1)

	assert.Equal(t, 2, c.Count(engine.Bakery))
	assert.True(t, c.Has(engine.Mine))
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, 2, c.Distinct())
	assert.Equal(t, []engine.CardID{engine.Mine, engine.Bakery}, c.IDs())

	c.Remove(engine.Mine)
	assert.False(t, c.Has(engine.Mine))
	assert.Equal(t, 1, c.Distinct())
	assert.NotContains(t, c.Snapshot(), engine.Mine)

	assert.Panics(t, func() { c.Remove(engine.Mine) })
}

func TestCollectionTakeKeepsState(t *testing.T) {
	c := engine.NewCollection()
	c.AddCopy(engine.Forest, true)
	c.AddCopy(engine.Forest, false)

	assert.False(t, c.Take(engine.Forest))
	assert.True(t, c.Take(engine.Forest))
	assert.Zero(t, c.Count(engine.Forest))
}

func TestCollectionActivation(t *testing.T) {
	c := engine.NewCollection()
	c.Add(engine.CoffeeShop, 3)

	assert.Equal(t, 3, c.DeactivateAll(engine.CoffeeShop))
	assert.Zero(t, c.ActiveCount(engine.CoffeeShop))
	assert.Zero(t, c.DeactivateAll(engine.CoffeeShop))
	assert.False(t, c.IsActive(engine.CoffeeShop, 0))

	c.ActivateAll(engine.CoffeeShop)
	assert.Equal(t, 3, c.ActiveCount(engine.CoffeeShop))
	assert.True(t, c.IsActive(engine.CoffeeShop, 2))
	assert.False(t, c.IsActive(engine.CoffeeShop, 3))
	assert.False(t, c.IsActive(engine.CoffeeShop, -1))
}

func TestCollectionSymbolCount(t *testing.T) {
	c := engine.NewCollection()
	c.Add(engine.CoffeeShop, 2)
	c.DeactivateAll(engine.CoffeeShop)
	c.Add(engine.CoffeeShop, 1)
	c.Add(engine.SushiBar, 1)
	c.Add(engine.Bakery, 1)

	assert.Equal(t, 2, c.SymbolCount(catalog, engine.SymbolCoffee))
	assert.Equal(t, 4, c.SymbolCountAll(catalog, engine.SymbolCoffee))
	assert.Equal(t, 1, c.SymbolCount(catalog, engine.SymbolBox))
	assert.Zero(t, c.SymbolCount(catalog, engine.SymbolPig))
}

func TestCollectionSnapshotIsACopy(t *testing.T) {
	c := engine.NewCollection()
	c.Add(engine.Farm, 1)
	snap := c.Snapshot()
	snap[engine.Farm][0] = false
	assert.True(t, c.IsActive(engine.Farm, 0))

	states := c.States(engine.Farm)
	states[0] = false
	assert.True(t, c.IsActive(engine.Farm, 0))
}

func TestCollectionJSON(t *testing.T) {
	c := engine.NewCollection()
	c.Add(engine.WheatField, 1)
	c.AddCopy(engine.WheatField, false)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"wheat_field":[true,false]}`, string(b))

	var back engine.Collection
	require.NoError(t, json.Unmarshal([]byte(`{"wheat_field":[true,false],"farm":[]}`), &back))
	assert.Equal(t, 2, back.Count(engine.WheatField))
	assert.False(t, back.Has(engine.Farm))
	assert.Equal(t, 1, back.Distinct())
}

func TestDominantCount(t *testing.T) {
	p := engine.NewPlayer("A", "Ann")
	p.Cards.Add(engine.Port, 1)
	p.Cards.Add(engine.Station, 1)
	p.Cards.Add(engine.TownHall, 1)
	p.Cards.Add(engine.Stadium, 1)

	assert.Equal(t, 2, p.DominantCount(false))
	assert.Equal(t, 3, p.DominantCount(true))
}
