package klingon

import "github.com/mlunde/raider-web/game"

// SeekBases points idle raiders at the nearest antimatter base at full
// thrust, ignoring the shield and antimatter scaling that governs combat
// thrust. Raiders in any other posture are left alone.
func SeekBases(w game.World) game.World {
	if len(w.Bases) == 0 {
		return w
	}
	out := make([]game.Klingon, 0, len(w.Klingons))
	for _, k := range w.Klingons {
		if k.State == game.StateNoBattle {
			nearest := w.Bases[0]
			best := game.Distance(k.Pos, nearest.Pos)
			for _, b := range w.Bases[1:] {
				if d := game.Distance(k.Pos, b.Pos); d < best {
					best, nearest = d, b
				}
			}
			k.Thrust = game.FromAngle(game.Bearing(k.Pos, nearest.Pos)).Scale(game.MaxThrust)
		}
		out = append(out, k)
	}
	w.Klingons = out
	return w
}

// ResolveTheft drains bases into docked raiders. Every raider/base pair
// within docking distance interacts, resolved in roster order against live
// balances: a base mobbed by several raiders is emptied first come first
// served, and a raider parked between two bases draws on both. Each
// transfer moves the lesser of the thief's deficit and the base's reserve,
// so antimatter is conserved across the pass.
func ResolveTheft(w game.World) game.World {
	klingons := make([]game.Klingon, len(w.Klingons))
	copy(klingons, w.Klingons)
	bases := make([]game.Base, len(w.Bases))
	copy(bases, w.Bases)

	for i := range klingons {
		for j := range bases {
			if game.Distance(klingons[i].Pos, bases[j].Pos) > game.DockingDistance {
				continue
			}
			take := min(game.MaxAntimatter-klingons[i].Antimatter, bases[j].Antimatter)
			if take <= 0 {
				continue
			}
			klingons[i].Antimatter += take
			bases[j].Antimatter -= take
		}
	}

	w.Klingons = klingons
	w.Bases = bases
	return w
}
