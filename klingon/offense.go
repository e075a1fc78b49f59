package klingon

import (
	"math"

	"github.com/mlunde/raider-web/game"
)

// RunOffense charges weapons and pulls triggers. Charging happens every tick
// for every raider inside the engagement envelope; one shared suppression
// draw then decides whether anyone fires at all this tick. When firing
// proceeds, each raider picks at most one ready weapon in strict torpedo,
// phaser, kinetic priority and launches it with an intercept lead on the
// ship, paying charge, antimatter, and ammunition.
func (e *Engine) RunOffense(elapsed float64, w game.World) game.World {
	hold := e.rng.Float64() < game.FiringSuppression

	out := make([]game.Klingon, 0, len(w.Klingons))
	for _, k := range w.Klingons {
		dist := game.Distance(k.Pos, w.Ship.Pos)
		if dist <= game.KineticFiringDistance {
			k.Charge += elapsed * game.WeaponChargeRate * k.ShieldFraction()
		}
		if !hold {
			if weapon, ok := readyWeapon(k, w.Ship, dist); ok {
				k, w.Shots = fire(k, w.Ship, weapon, w.Shots)
			}
		}
		out = append(out, k)
	}
	w.Klingons = out
	return w
}

// readyWeapon returns the first weapon the raider can fire this tick.
// Priority is fixed: torpedo over phaser over kinetic, and evaluation stops
// at the first weapon whose conditions all hold.
func readyWeapon(k game.Klingon, ship game.Ship, dist float64) (game.WeaponType, bool) {
	// A torpedo needs a committed target: while the ship is still swinging
	// toward its helm setting the launch is skipped.
	torp := game.WeaponData[game.WeaponTorpedo]
	if math.Abs(game.AngleDiff(ship.Heading, ship.HeadingSet)) <= game.HeadingTolerance &&
		k.Torpedos > 0 &&
		dist <= game.TorpedoFiringDistance &&
		k.Antimatter > torp.Power &&
		k.Charge >= torp.Threshold {
		return game.WeaponTorpedo, true
	}

	phaser := game.WeaponData[game.WeaponPhaser]
	if dist <= game.PhaserFiringDistance &&
		k.Antimatter > phaser.Power &&
		k.Charge >= phaser.Threshold {
		return game.WeaponPhaser, true
	}

	// Kinetics have no range gate: once charged they fire from anywhere.
	kin := game.WeaponData[game.WeaponKinetic]
	if k.Antimatter > kin.Power &&
		k.Kinetics > 0 &&
		k.Charge >= kin.Threshold {
		return game.WeaponKinetic, true
	}

	return 0, false
}

// fire launches one round with an intercept lead and debits its costs:
// charge by the weapon's threshold, antimatter by its power, and one round
// of ammunition for the weapons that carry any.
func fire(k game.Klingon, ship game.Ship, weapon game.WeaponType, shots []game.Shot) (game.Klingon, []game.Shot) {
	stats := game.WeaponData[weapon]
	dir := FiringSolution(k.Pos, ship.Pos, ship.Vel, stats.Speed)
	k.Charge -= stats.Threshold
	k.Antimatter -= stats.Power
	switch weapon {
	case game.WeaponKinetic:
		k.Kinetics--
	case game.WeaponTorpedo:
		k.Torpedos--
	}
	return k, append(shots, game.Shot{Pos: k.Pos, Dir: dir, Weapon: weapon})
}

// FiringSolution returns the launch direction that leads a target moving at
// targetVel so a round flying at speed intercepts it. The target's velocity
// is split into components along and across the line of sight; the round
// spends part of its speed budget cancelling the cross component and aims
// the remainder down the line. When the target drifts across the line
// faster than the round can cancel, or shooter and target coincide, the
// direct bearing is used instead (0 for a coincident target).
func FiringSolution(from, target, targetVel game.Vec2, speed float64) float64 {
	los := target.Sub(from)
	dist := los.Length()
	if dist == 0 {
		return 0
	}
	unit := los.Scale(1 / dist)
	along := targetVel.Dot(unit)
	cross := targetVel.Sub(unit.Scale(along))
	budget := speed*speed - cross.LengthSq()
	if budget <= 0 {
		return los.Angle()
	}
	return unit.Scale(math.Sqrt(budget)).Add(cross).Angle()
}
