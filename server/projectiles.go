package server

import (
	"github.com/mlunde/raider-web/game"
)

// Projectile is a round in flight. It wraps the core's Shot with the motion
// state the driver needs: a velocity, the distance covered so far, and which
// side launched it. Hostile rounds hunt the ship; friendly rounds hunt
// raiders.
type Projectile struct {
	Pos      game.Vec2       `json:"pos"`
	Vel      game.Vec2       `json:"vel"`
	Weapon   game.WeaponType `json:"weapon"`
	Hostile  bool            `json:"hostile"`
	Traveled float64         `json:"-"`
}

// NewProjectile converts a freshly launched shot into a live round flying at
// the weapon's fixed speed.
func NewProjectile(shot game.Shot, hostile bool) Projectile {
	stats := game.WeaponData[shot.Weapon]
	return Projectile{
		Pos:     shot.Pos,
		Vel:     game.FromAngle(shot.Dir).Scale(stats.Speed),
		Weapon:  shot.Weapon,
		Hostile: hostile,
	}
}

// updateProjectiles flies every live round, expires the spent ones, and
// resolves impacts. Hostile hits damage the ship's hull directly; friendly
// hits attach a pending strike for the defense stage to land next tick.
// Uses in-place filtering to avoid a slice allocation every frame.
func (s *Server) updateProjectiles(elapsed float64) {
	writeIdx := 0
	for _, p := range s.projectiles {
		stats := game.WeaponData[p.Weapon]

		p.Pos = p.Pos.Add(p.Vel.Scale(elapsed))
		p.Traveled += stats.Speed * elapsed
		if p.Traveled >= stats.MaxRange {
			continue
		}
		if p.Pos.X < 0 || p.Pos.X > game.SectorWidth || p.Pos.Y < 0 || p.Pos.Y > game.SectorHeight {
			continue
		}

		if p.Hostile {
			if game.Distance(p.Pos, s.world.Ship.Pos) <= stats.HitRadius {
				s.ship.Hull -= impactDamage(p)
				continue
			}
		} else if idx := s.findStruckRaider(p.Pos, stats.HitRadius); idx >= 0 {
			k := &s.world.Klingons[idx]
			if p.Weapon == game.WeaponPhaser {
				k.Hits = append(k.Hits, game.Hit{
					Weapon: game.WeaponPhaser,
					Beams:  []float64{p.Traveled},
				})
			} else {
				k.Hits = append(k.Hits, game.Hit{
					Weapon: p.Weapon,
					Damage: stats.Damage,
				})
			}
			continue
		}

		s.projectiles[writeIdx] = p
		writeIdx++
	}
	s.projectiles = s.projectiles[:writeIdx]
}

// findStruckRaider returns the index of the first raider within radius of
// the point, or -1 when the round flies clean.
func (s *Server) findStruckRaider(at game.Vec2, radius float64) int {
	for i := range s.world.Klingons {
		if game.Distance(at, s.world.Klingons[i].Pos) <= radius {
			return i
		}
	}
	return -1
}

// impactDamage is what a round does on contact. A phaser bolt decays over
// its flight with the same linear falloff the beam damage model uses; solid
// rounds hit at full strength regardless of range.
func impactDamage(p Projectile) float64 {
	if p.Weapon == game.WeaponPhaser {
		return game.PhaserBeamDamage(p.Traveled)
	}
	return game.WeaponData[p.Weapon].Damage
}
