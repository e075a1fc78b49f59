package server

import (
	"math"

	"github.com/mlunde/raider-web/game"
	"github.com/mlunde/raider-web/klingon"
)

// Player ship tuning
const (
	ShipMaxHull     = 300.0
	ShipMaxEnergy   = 5000.0
	ShipEnergyRegen = 0.25   // energy per ms
	ShipTurnRate    = 0.0025 // radians per ms toward the helm setting
	ShipMaxThrust   = 0.0008 // acceleration at full impulse, units per ms^2
	ShipImpulseCost = 0.3    // energy per ms at full impulse

	ShipPhaserCost  = 250.0 // energy per volley, hit or miss
	ShipPhaserArc   = math.Pi / 3
	ShipTorpedoCost = 400.0
	ShipTorpedoAmmo = 30
)

// ShipSystems is the driver-side half of the player ship: the pools and
// counters the raider core never sees. Position and motion live on the
// world's Ship so the core can read them.
type ShipSystems struct {
	Hull     float64 `json:"hull"`
	Energy   float64 `json:"energy"`
	Impulse  float64 `json:"impulse"` // throttle, 0..1
	Torpedos int     `json:"torpedos"`
	Kills    int     `json:"kills"`
}

// NewShipSystems returns a fresh ship: full hull, full energy, full racks.
func NewShipSystems() ShipSystems {
	return ShipSystems{
		Hull:     ShipMaxHull,
		Energy:   ShipMaxEnergy,
		Torpedos: ShipTorpedoAmmo,
	}
}

// updateShip integrates the player ship one tick: swing the heading toward
// the helm setting, burn impulse along the heading, then the same Euler step
// and drag the raiders use. The hull only moves while energy lasts.
func (s *Server) updateShip(elapsed float64) {
	ship := &s.world.Ship

	diff := game.AngleDiff(ship.HeadingSet, ship.Heading)
	step := ShipTurnRate * elapsed
	switch {
	case math.Abs(diff) <= step:
		ship.Heading = ship.HeadingSet
	case diff > 0:
		ship.Heading = game.NormalizeAngle(ship.Heading + step)
	default:
		ship.Heading = game.NormalizeAngle(ship.Heading - step)
	}

	if s.ship.Impulse > 0 && s.ship.Energy > 0 {
		burn := ShipMaxThrust * s.ship.Impulse
		ship.Vel = ship.Vel.Add(game.FromAngle(ship.Heading).Scale(burn * elapsed))
		s.ship.Energy = math.Max(0, s.ship.Energy-ShipImpulseCost*s.ship.Impulse*elapsed)
	}

	ship.Pos = ship.Pos.Add(ship.Vel.Scale(elapsed))
	ship.Vel = ship.Vel.Scale(math.Pow(game.DragFactor, elapsed))

	// The sector has walls; sliding along one kills the normal velocity.
	if ship.Pos.X < 0 {
		ship.Pos.X, ship.Vel.X = 0, 0
	}
	if ship.Pos.X > game.SectorWidth {
		ship.Pos.X, ship.Vel.X = game.SectorWidth, 0
	}
	if ship.Pos.Y < 0 {
		ship.Pos.Y, ship.Vel.Y = 0, 0
	}
	if ship.Pos.Y > game.SectorHeight {
		ship.Pos.Y, ship.Vel.Y = game.SectorHeight, 0
	}

	s.ship.Energy = math.Min(ShipMaxEnergy, s.ship.Energy+ShipEnergyRegen*elapsed)
}

// firePhasers sweeps a volley across every raider inside phaser range and
// within the firing arc of the ship's heading. Each raider caught takes one
// beam at its connect range; damage falls off linearly the way all phaser
// fire does. Energy is spent whether or not anything is in the arc.
// Caller holds stateMu.
func (s *Server) firePhasers() bool {
	if s.ship.Energy < ShipPhaserCost {
		return false
	}
	s.ship.Energy -= ShipPhaserCost

	ship := s.world.Ship
	for i := range s.world.Klingons {
		k := &s.world.Klingons[i]
		dist := game.Distance(ship.Pos, k.Pos)
		if dist > game.MaxPhaserRange {
			continue
		}
		off := game.AngleDiff(game.Bearing(ship.Pos, k.Pos), ship.Heading)
		if math.Abs(off) > ShipPhaserArc {
			continue
		}
		k.Hits = append(k.Hits, game.Hit{
			Weapon: game.WeaponPhaser,
			Beams:  []float64{dist},
		})
	}
	return true
}

// fireTorpedo launches one player torpedo with an intercept lead on the
// nearest raider in range, or straight ahead when nothing is close enough.
// Caller holds stateMu.
func (s *Server) fireTorpedo() bool {
	if s.ship.Torpedos <= 0 || s.ship.Energy < ShipTorpedoCost {
		return false
	}
	s.ship.Torpedos--
	s.ship.Energy -= ShipTorpedoCost

	ship := s.world.Ship
	stats := game.WeaponData[game.WeaponTorpedo]
	dir := ship.Heading
	best := game.TorpedoFiringDistance
	for _, k := range s.world.Klingons {
		if d := game.Distance(ship.Pos, k.Pos); d <= best {
			best = d
			dir = klingon.FiringSolution(ship.Pos, k.Pos, k.Vel, stats.Speed)
		}
	}

	shot := game.Shot{Pos: ship.Pos, Dir: dir, Weapon: game.WeaponTorpedo}
	s.projectiles = append(s.projectiles, NewProjectile(shot, false))
	return true
}
