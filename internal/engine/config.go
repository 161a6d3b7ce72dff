package engine

// Rules holds the tunable numbers of a game.
type Rules struct {
	StartingMoney int      `yaml:"starting_money" json:"starting_money"`
	StartingCards []CardID `yaml:"starting_cards" json:"starting_cards"`
	// BankTotal is the coin supply before starting money is handed out.
	BankTotal int `yaml:"bank_total" json:"bank_total"`

	EstablishmentCopies int `yaml:"establishment_copies" json:"establishment_copies"`
	LandmarkCopies      int `yaml:"landmark_copies" json:"landmark_copies"`

	// Distinct ids kept visible per market tier.
	LowTarget      int `yaml:"low_target" json:"low_target"`
	HighTarget     int `yaml:"high_target" json:"high_target"`
	LandmarkTarget int `yaml:"landmark_target" json:"landmark_target"`

	AirportBonus int `yaml:"airport_bonus" json:"airport_bonus"`

	// RequireTownHall adds the Town Hall to the victory set.
	RequireTownHall bool `yaml:"require_town_hall" json:"require_town_hall"`
}

func DefaultRules() Rules {
	return Rules{
		StartingMoney:       3,
		StartingCards:       []CardID{WheatField, Bakery},
		BankTotal:           210,
		EstablishmentCopies: 6,
		LandmarkCopies:      4,
		LowTarget:           5,
		HighTarget:          5,
		LandmarkTarget:      2,
		AirportBonus:        10,
	}
}

func (r Rules) target(t Tier) int {
	switch t {
	case TierLow:
		return r.LowTarget
	case TierHigh:
		return r.HighTarget
	case TierLandmark:
		return r.LandmarkTarget
	}
	return 0
}

const (
	MinPlayers = 2
	MaxPlayers = 4
)
