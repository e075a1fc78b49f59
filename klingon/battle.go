package klingon

import "github.com/mlunde/raider-web/game"

// ClassifyBattleStates recomputes each raider's posture from its distance to
// the ship and its time-in-state. Rules apply in priority order, first match
// wins: beyond tactical range the fight is over; inside it but outside the
// evasion limit the raider closes; in close combat a raider holds its
// posture until the dwell timer expires, then re-rolls uniformly over the
// whole posture set. A raider too low on antimatter to keep fighting is
// forced into retreat regardless of the roll.
func (e *Engine) ClassifyBattleStates(elapsed float64, w game.World) game.World {
	out := make([]game.Klingon, 0, len(w.Klingons))
	for _, k := range w.Klingons {
		dist := game.Distance(k.Pos, w.Ship.Pos)
		expired := k.StateAge >= game.StateTransitionMs
		switch {
		case dist >= game.TacticalRange:
			k.State = game.StateNoBattle
		case dist >= game.EvasionLimit:
			k.State = game.StateAdvancing
		case expired:
			k.State = game.BattleState(e.rng.Intn(game.NumBattleStates))
		}
		if k.Antimatter <= game.RunawayAntimatter && dist <= game.TacticalRange {
			k.State = game.StateRetreating
		}
		if expired {
			k.StateAge = 0
		} else {
			k.StateAge += elapsed
		}
		out = append(out, k)
	}
	w.Klingons = out
	return w
}
