package engine

import "math/rand/v2"

// Rand is the randomness source for dice and pile shuffles.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source with random seeds.
func NewRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Roll is the most recent dice roll of a turn.
type Roll struct {
	Player   string `json:"player"`
	Dice     []int  `json:"dice"`
	Sum      int    `json:"sum"`
	AddedTwo bool   `json:"added_two,omitempty"`
}

// Double reports two equal dice.
func (r Roll) Double() bool {
	return len(r.Dice) == 2 && r.Dice[0] == r.Dice[1]
}

func rollDie(rng Rand) int {
	return rng.IntN(6) + 1
}

// Pile is a face-down draw pile. It is shuffled once and only shrinks.
type Pile struct {
	cards []CardID
}

// NewPile creates a shuffled pile from the given cards.
func NewPile(cards []CardID, rng Rand) *Pile {
	p := &Pile{cards: make([]CardID, len(cards))}
	copy(p.cards, cards)
	rng.Shuffle(len(p.cards), func(i, j int) {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	})
	return p
}

// Draw removes and returns the top card. ok is false on an empty pile.
func (p *Pile) Draw() (id CardID, ok bool) {
	if len(p.cards) == 0 {
		return 0, false
	}
	id = p.cards[0]
	p.cards = p.cards[1:]
	return id, true
}

// Len returns the number of cards remaining.
func (p *Pile) Len() int {
	return len(p.cards)
}
