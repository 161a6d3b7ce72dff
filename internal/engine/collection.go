package engine

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Collection is a multiset of card copies. Each copy carries its own active
// flag, indexed by acquisition order; an inert copy is closed until its next
// qualifying trigger reopens it.
type Collection struct {
	cards map[CardID][]bool
}

func NewCollection() *Collection {
	return &Collection{cards: make(map[CardID][]bool)}
}

// Add appends n active copies of id.
func (c *Collection) Add(id CardID, n int) {
	for i := 0; i < n; i++ {
		c.cards[id] = append(c.cards[id], true)
	}
}

// AddCopy appends one copy with the given state.
func (c *Collection) AddCopy(id CardID, active bool) {
	c.cards[id] = append(c.cards[id], active)
}

// Remove drops the most recently acquired copy of id.
func (c *Collection) Remove(id CardID) {
	c.Take(id)
}

// Take drops the most recently acquired copy of id and returns its state.
// Taking a card that is not owned panics.
func (c *Collection) Take(id CardID) bool {
	states, ok := c.cards[id]
	if !ok || len(states) == 0 {
		panic(fmt.Sprintf("engine: remove %s: not owned", id))
	}
	active := states[len(states)-1]
	if len(states) == 1 {
		delete(c.cards, id)
	} else {
		c.cards[id] = states[:len(states)-1]
	}
	return active
}

func (c *Collection) Count(id CardID) int {
	return len(c.cards[id])
}

func (c *Collection) Has(id CardID) bool {
	return len(c.cards[id]) > 0
}

// Distinct returns the number of different ids held.
func (c *Collection) Distinct() int {
	return len(c.cards)
}

// IDs returns the held ids in ascending order.
func (c *Collection) IDs() []CardID {
	return slices.Sorted(maps.Keys(c.cards))
}

// Total returns the number of copies across all ids.
func (c *Collection) Total() int {
	n := 0
	for _, states := range c.cards {
		n += len(states)
	}
	return n
}

func (c *Collection) IsActive(id CardID, i int) bool {
	states := c.cards[id]
	return i >= 0 && i < len(states) && states[i]
}

// ActiveCount returns how many copies of id are active.
func (c *Collection) ActiveCount(id CardID) int {
	n := 0
	for _, active := range c.cards[id] {
		if active {
			n++
		}
	}
	return n
}

// States returns a copy of the per-copy flags for id.
func (c *Collection) States(id CardID) []bool {
	return slices.Clone(c.cards[id])
}

// Snapshot returns a deep copy of every id's flags.
func (c *Collection) Snapshot() map[CardID][]bool {
	out := make(map[CardID][]bool, len(c.cards))
	for id, states := range c.cards {
		out[id] = slices.Clone(states)
	}
	return out
}

func (c *Collection) ActivateAll(id CardID) {
	c.fill(id, true)
}

// DeactivateAll closes every copy of id and returns how many were active.
func (c *Collection) DeactivateAll(id CardID) int {
	n := c.ActiveCount(id)
	c.fill(id, false)
	return n
}

func (c *Collection) fill(id CardID, active bool) {
	for i := range c.cards[id] {
		c.cards[id][i] = active
	}
}

func (c *Collection) setActive(id CardID, i int, active bool) {
	states := c.cards[id]
	if i < 0 || i >= len(states) {
		panic(fmt.Sprintf("engine: %s has no copy %d", id, i))
	}
	states[i] = active
}

// SymbolCount sums the active copies of every card carrying sym.
func (c *Collection) SymbolCount(cat *Catalog, sym Symbol) int {
	n := 0
	for id := range c.cards {
		if cat.Lookup(id).Symbol == sym {
			n += c.ActiveCount(id)
		}
	}
	return n
}

// SymbolCountAll is SymbolCount including inert copies. Only Soda Company
// counts this way.
func (c *Collection) SymbolCountAll(cat *Catalog, sym Symbol) int {
	n := 0
	for id, states := range c.cards {
		if cat.Lookup(id).Symbol == sym {
			n += len(states)
		}
	}
	return n
}

func (c *Collection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.cards)
}

func (c *Collection) UnmarshalJSON(b []byte) error {
	cards := make(map[CardID][]bool)
	if err := json.Unmarshal(b, &cards); err != nil {
		return err
	}
	for id, states := range cards {
		if len(states) == 0 {
			delete(cards, id)
		}
	}
	c.cards = cards
	return nil
}
