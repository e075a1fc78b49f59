// Package klingon is the autonomous raider simulation core. It advances the
// world as a pure value transformation: every entry point takes a snapshot
// and returns a replacement, with all randomness drawn from the generator
// injected at construction. The driver owns cadence; this package owns the
// raiders.
package klingon

import (
	"math/rand"

	"github.com/mlunde/raider-web/game"
)

// Engine drives every raider decision. It holds no world state of its own,
// only the random source shared by the stages that need one.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine drawing from the given generator. Tests pass a
// source with pinned output to make every stage deterministic.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// UpdatePerTick advances raider combat by one tick: posture classification,
// then defense, then offense, then motion, in that order. The order is a
// hard invariant. Posture gates both thrust direction and firing, damage
// must land before survivors recharge and shoot, and the suppression draw
// made during offense times the weapon costs. Reordering changes outcomes.
func (e *Engine) UpdatePerTick(elapsed float64, w game.World) game.World {
	w = e.ClassifyBattleStates(elapsed, w)
	w = e.ResolveDefense(elapsed, w)
	w = e.RunOffense(elapsed, w)
	w = IntegrateMotion(elapsed, w)
	return w
}

// UpdatePerSecond advances the slow strategic layer: idle raiders head for
// the nearest base, then docked raiders drain what they reach.
func (e *Engine) UpdatePerSecond(w game.World) game.World {
	w = SeekBases(w)
	w = ResolveTheft(w)
	return w
}

// Initialize rolls the starting roster: a fixed count of raiders scattered
// across the sector with randomized drift and antimatter stores.
func (e *Engine) Initialize() []game.Klingon {
	roster := make([]game.Klingon, 0, game.KlingonCount)
	for i := 0; i < game.KlingonCount; i++ {
		k := Spawn(e.rng.Float64()*game.SectorWidth, e.rng.Float64()*game.SectorHeight)
		k.Vel = game.Vec2{
			X: (e.rng.Float64()*2 - 1) * game.InitialDrift,
			Y: (e.rng.Float64()*2 - 1) * game.InitialDrift,
		}
		k.Antimatter = game.MaxAntimatter * (0.5 + 0.5*e.rng.Float64())
		roster = append(roster, k)
	}
	return roster
}

// Spawn builds one raider at the given position with full default stores.
func Spawn(x, y float64) game.Klingon {
	return game.Klingon{
		Pos:        game.Vec2{X: x, Y: y},
		Shields:    game.MaxShields,
		Antimatter: game.MaxAntimatter,
		Kinetics:   game.DefaultKinetics,
		Torpedos:   game.DefaultTorpedos,
		State:      game.StateNoBattle,
	}
}
