package engine

import "sort"

// ScoreEntry holds one player's position when the game ends.
type ScoreEntry struct {
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name"`
	Milestones     int    `json:"milestones"`
	Money          int    `json:"money"`
	Establishments int    `json:"establishments"`
	Landmarks      int    `json:"landmarks"`
	Winner         bool   `json:"winner"`
}

// Standings ranks the players: the winner first, then by milestones owned
// and money.
func (g *Game) Standings() []ScoreEntry {
	entries := make([]ScoreEntry, len(g.Players))

	for i, p := range g.Players {
		e := ScoreEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Milestones: p.DominantCount(true),
			Money:      p.Money,
			Winner:     p.ID == g.Winner,
		}
		for _, id := range p.Cards.IDs() {
			switch cat := g.Catalog.Lookup(id).Category; {
			case cat.Establishment():
				e.Establishments += p.Cards.Count(id)
			case cat == CategoryLandmark:
				e.Landmarks += p.Cards.Count(id)
			}
		}
		entries[i] = e
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Winner != b.Winner {
			return a.Winner
		}
		if a.Milestones != b.Milestones {
			return a.Milestones > b.Milestones
		}
		return a.Money > b.Money
	})
	return entries
}
