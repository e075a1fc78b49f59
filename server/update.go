package server

import (
	"time"

	"go.uber.org/zap"

	"github.com/mlunde/raider-web/game"
	"github.com/mlunde/raider-web/klingon"
)

// Effect lifetimes and base economy
const (
	ExplosionTTL   = 1500.0  // ms an explosion stays on screen
	DebrisTTL      = 6000.0  // ms a debris cloud lingers
	BaseRegenRate  = 20.0    // antimatter restored per base per second
	BaseMaxReserve = 30000.0 // regeneration ceiling
)

// updateGame advances the world one tick. Driver collaborators run first so
// pending hits are attached before the raider pipeline consumes them, then
// fresh raider shots are handed to the projectile layer. The slow strategic
// pass and base regeneration fire once per second.
func (s *Server) updateGame() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	now := time.Now()
	elapsed := float64(now.Sub(s.lastTick).Microseconds()) / 1000.0
	s.lastTick = now
	s.frame++
	s.tickCount++

	if s.world.GameOver {
		return
	}

	s.updateShip(elapsed)
	s.updateProjectiles(elapsed)

	before := len(s.world.Klingons)
	s.world = s.engine.UpdatePerTick(elapsed, s.world)
	s.ship.Kills += before - len(s.world.Klingons)
	s.collectShots()

	if s.tickCount%s.ticksPerSecond == 0 {
		s.world = s.engine.UpdatePerSecond(s.world)
		s.regenerateBases()
	}

	s.ageEffects(elapsed)
	s.checkWave()
	s.checkGameOver()
}

// collectShots hands freshly fired raider rounds to the projectile layer.
func (s *Server) collectShots() {
	for _, shot := range s.world.Shots {
		s.projectiles = append(s.projectiles, NewProjectile(shot, true))
	}
	s.world.Shots = nil
}

// ageEffects advances and expires explosions and debris clouds.
func (s *Server) ageEffects(elapsed float64) {
	writeIdx := 0
	for _, e := range s.world.Explosions {
		e.Age += elapsed
		if e.Age >= ExplosionTTL {
			continue
		}
		s.world.Explosions[writeIdx] = e
		writeIdx++
	}
	s.world.Explosions = s.world.Explosions[:writeIdx]

	writeIdx = 0
	for _, c := range s.world.Clouds {
		c.Age += elapsed
		if c.Age >= DebrisTTL {
			continue
		}
		s.world.Clouds[writeIdx] = c
		writeIdx++
	}
	s.world.Clouds = s.world.Clouds[:writeIdx]
}

// regenerateBases trickles antimatter back into the depots.
func (s *Server) regenerateBases() {
	for i := range s.world.Bases {
		if s.world.Bases[i].Antimatter < BaseMaxReserve {
			s.world.Bases[i].Antimatter = min(BaseMaxReserve, s.world.Bases[i].Antimatter+BaseRegenRate)
		}
	}
}

// checkWave launches a fresh raid once the roster is wiped: one raider per
// base still holding antimatter, entering from the sector edges.
func (s *Server) checkWave() {
	if len(s.world.Klingons) > 0 {
		return
	}
	count := 0
	for _, b := range s.world.Bases {
		if b.Antimatter > 0 {
			count++
		}
	}
	if count == 0 {
		return
	}

	s.wave++
	for i := 0; i < count; i++ {
		x, y := s.edgeSpawn()
		s.world.Klingons = append(s.world.Klingons, klingon.Spawn(x, y))
	}
	s.log.Info("new raider wave",
		zap.Int("wave", s.wave),
		zap.Int("raiders", count),
	)
	s.sendEvent("wave", map[string]interface{}{
		"wave":    s.wave,
		"raiders": count,
	})
}

// edgeSpawn picks a random point on a random sector edge.
func (s *Server) edgeSpawn() (float64, float64) {
	switch s.rng.Intn(4) {
	case 0:
		return s.rng.Float64() * game.SectorWidth, 0
	case 1:
		return s.rng.Float64() * game.SectorWidth, game.SectorHeight
	case 2:
		return 0, s.rng.Float64() * game.SectorHeight
	default:
		return game.SectorWidth, s.rng.Float64() * game.SectorHeight
	}
}

// checkGameOver ends the game when the ship is destroyed or every base has
// been drained dry. The flag is sticky; the frozen world keeps broadcasting
// so clients can show the final picture.
func (s *Server) checkGameOver() {
	if s.world.GameOver {
		return
	}

	if s.ship.Hull <= 0 {
		s.world.GameOver = true
		s.log.Info("ship destroyed",
			zap.Int("wave", s.wave),
			zap.Int("kills", s.ship.Kills),
		)
		s.sendEvent("defeat", map[string]interface{}{
			"reason": "ship-destroyed",
			"kills":  s.ship.Kills,
			"wave":   s.wave,
		})
		return
	}

	if len(s.world.Bases) == 0 {
		return
	}
	for _, b := range s.world.Bases {
		if b.Antimatter > 0 {
			return
		}
	}
	s.world.GameOver = true
	s.log.Info("all bases drained",
		zap.Int("wave", s.wave),
		zap.Int("kills", s.ship.Kills),
	)
	s.sendEvent("defeat", map[string]interface{}{
		"reason": "bases-drained",
		"kills":  s.ship.Kills,
		"wave":   s.wave,
	})
}
