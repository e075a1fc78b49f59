package game

import "math"

// BattleState is a raider's tactical posture. Exactly one is active at a
// time; the classifier stage reassigns it from distance bands and timers.
type BattleState int

const (
	StateNoBattle BattleState = iota
	StateFlankLeft
	StateFlankRight
	StateAdvancing
	StateRetreating
)

// NumBattleStates is the size of the posture set, used for uniform re-rolls.
const NumBattleStates = 5

// stateThrustBias is the angular offset each posture adds to the bearing
// toward the ship when orienting thrust. Flanking postures run broadside,
// advancing cuts slightly off the bow, retreating is nearly reversed.
var stateThrustBias = map[BattleState]float64{
	StateNoBattle:   0,
	StateFlankLeft:  math.Pi / 2,
	StateFlankRight: -math.Pi / 2,
	StateAdvancing:  10 * math.Pi / 180,
	StateRetreating: 190 * math.Pi / 180,
}

// ThrustBias returns the thrust-direction offset for the posture.
func (s BattleState) ThrustBias() float64 {
	return stateThrustBias[s]
}

func (s BattleState) String() string {
	switch s {
	case StateNoBattle:
		return "no-battle"
	case StateFlankLeft:
		return "flank-left"
	case StateFlankRight:
		return "flank-right"
	case StateAdvancing:
		return "advancing"
	case StateRetreating:
		return "retreating"
	default:
		return "unknown"
	}
}
