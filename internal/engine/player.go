package engine

// Seat is a roster entry handed to NewGame.
type Seat struct {
	ID   string
	Name string
}

// Player holds one seat's state.
type Player struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Money int         `json:"money"`
	Cards *Collection `json:"cards"`
	// Hoard is the coin stack invested into an IT Center over past turns.
	Hoard int `json:"hoard"`
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Cards: NewCollection(),
	}
}

// HasCard returns true if the player owns at least one copy of id.
func (p *Player) HasCard(id CardID) bool {
	return p.Cards.Has(id)
}

// DominantCount counts distinct milestones owned. The Town Hall only counts
// when includeOptional is set.
func (p *Player) DominantCount(includeOptional bool) int {
	n := 0
	for _, id := range winMilestones {
		if p.HasCard(id) {
			n++
		}
	}
	if includeOptional && p.HasCard(optionalMilestone) {
		n++
	}
	return n
}
