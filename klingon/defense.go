package klingon

import "github.com/mlunde/raider-web/game"

// ResolveDefense lands pending strikes, culls the dead, and recharges the
// survivors' shields from their antimatter stores. A destroyed raider is
// replaced by one explosion and one debris cloud at its last position, both
// appended for the effects layer to drain.
func (e *Engine) ResolveDefense(elapsed float64, w game.World) game.World {
	survivors := make([]game.Klingon, 0, len(w.Klingons))
	for _, k := range w.Klingons {
		if len(k.Hits) > 0 {
			for _, h := range k.Hits {
				k.Shields -= h.Total()
			}
			// Taking fire forces a posture re-roll on the next tick.
			k.StateAge = game.StateTransitionMs + 1
			k.Hits = nil
		}
		if k.Shields < 0 {
			w.Explosions = append(w.Explosions, game.Explosion{Pos: k.Pos})
			w.Clouds = append(w.Clouds, game.DebrisCloud{
				Pos:       k.Pos,
				Magnitude: e.rng.Float64() * game.DebrisYield,
			})
			continue
		}
		k = rechargeShields(elapsed, k)
		survivors = append(survivors, k)
	}
	w.Klingons = survivors
	return w
}

// rechargeShields restores shields at the recharge rate, clamped by the
// deficit to max and by what the raider's antimatter can pay for.
func rechargeShields(elapsed float64, k game.Klingon) game.Klingon {
	amount := min(
		elapsed*game.ShieldRechargeRate,
		game.MaxShields-k.Shields,
		k.Antimatter/game.ShieldRechargeCost,
	)
	if amount <= 0 {
		return k
	}
	k.Shields += amount
	k.Antimatter -= amount * game.ShieldRechargeCost
	return k
}
