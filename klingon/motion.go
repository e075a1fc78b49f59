package klingon

import (
	"math"

	"github.com/mlunde/raider-web/game"
)

// IntegrateMotion turns posture into thrust and steps the raiders' physics.
// Inside tactical range thrust points along the bearing to the ship offset
// by the posture's bias; beyond it the previous thrust carries unchanged.
// Thrust strength is capped by the drive and by remaining antimatter, and a
// battered raider pushes proportionally weaker. Integration is explicit
// Euler with exponential drag, so the step is frame-rate independent.
func IntegrateMotion(elapsed float64, w game.World) game.World {
	drag := math.Pow(game.DragFactor, elapsed)
	out := make([]game.Klingon, 0, len(w.Klingons))
	for _, k := range w.Klingons {
		if game.Distance(k.Pos, w.Ship.Pos) < game.TacticalRange {
			dir := game.Bearing(k.Pos, w.Ship.Pos) + k.State.ThrustBias()
			mag := min(game.MaxThrust, k.Antimatter) * k.ShieldFraction()
			k.Thrust = game.FromAngle(dir).Scale(mag)
		}
		k.Vel = k.Vel.Add(k.Thrust.Scale(elapsed))
		k.Pos = k.Pos.Add(k.Vel.Scale(elapsed))
		k.Vel = k.Vel.Scale(drag)
		out = append(out, k)
	}
	w.Klingons = out
	return w
}
