package engine

// GamePhase represents the current phase of the turn state machine.
type GamePhase int

const (
	PhaseLobby                   GamePhase = iota // not started
	PhaseAwaitingRoll                             // current player must roll
	PhaseAwaitingProducerEffects                  // rolled; reroll or add two still possible
	PhaseAwaitingShopEffects
	PhaseAwaitingRestaurantEffects
	PhaseAwaitingTargetedInput // Logistics Company needs moves
	PhaseAwaitingLandmarkPassive
	PhaseAwaitingLandmarkInput // active landmarks need input
	PhaseAwaitingZeroIncomeCheck
	PhaseAwaitingBuild
	PhaseEndingTurn
	PhaseGameOver
)

var phaseNames = map[GamePhase]string{
	PhaseLobby:                     "Lobby",
	PhaseAwaitingRoll:              "AwaitingRoll",
	PhaseAwaitingProducerEffects:   "AwaitingProducerEffects",
	PhaseAwaitingShopEffects:       "AwaitingShopEffects",
	PhaseAwaitingRestaurantEffects: "AwaitingRestaurantEffects",
	PhaseAwaitingTargetedInput:     "AwaitingTargetedInput",
	PhaseAwaitingLandmarkPassive:   "AwaitingLandmarkPassive",
	PhaseAwaitingLandmarkInput:     "AwaitingLandmarkInput",
	PhaseAwaitingZeroIncomeCheck:   "AwaitingZeroIncomeCheck",
	PhaseAwaitingBuild:             "AwaitingBuild",
	PhaseEndingTurn:                "EndingTurn",
	PhaseGameOver:                  "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

func (p GamePhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Paused reports whether the phase waits for player-supplied input.
func (p GamePhase) Paused() bool {
	return p == PhaseAwaitingTargetedInput || p == PhaseAwaitingLandmarkInput
}
