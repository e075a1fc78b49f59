package server

import (
	"testing"

	"github.com/mlunde/raider-web/game"
	"github.com/mlunde/raider-web/klingon"
)

func TestCollectShots(t *testing.T) {
	s := newTestServer()
	s.world.Shots = []game.Shot{
		{Pos: game.Vec2{X: 1, Y: 2}, Dir: 0.5, Weapon: game.WeaponKinetic},
		{Pos: game.Vec2{X: 3, Y: 4}, Dir: 1.5, Weapon: game.WeaponTorpedo},
	}

	s.collectShots()

	if len(s.projectiles) != 2 {
		t.Fatalf("projectiles = %d, want 2", len(s.projectiles))
	}
	for _, p := range s.projectiles {
		if !p.Hostile {
			t.Error("raider shot not marked hostile")
		}
	}
	if s.world.Shots != nil {
		t.Error("world shots not drained")
	}
}

func TestAgeEffectsExpire(t *testing.T) {
	s := newTestServer()
	s.world.Explosions = []game.Explosion{
		{Age: 0},
		{Age: ExplosionTTL - 1},
	}
	s.world.Clouds = []game.DebrisCloud{
		{Age: 0},
		{Age: DebrisTTL - 1},
	}

	s.ageEffects(10)

	if len(s.world.Explosions) != 1 {
		t.Errorf("explosions = %d, want the young one kept", len(s.world.Explosions))
	}
	if len(s.world.Clouds) != 1 {
		t.Errorf("clouds = %d, want the young one kept", len(s.world.Clouds))
	}
	if s.world.Explosions[0].Age != 10 {
		t.Errorf("explosion age = %v, want advanced to 10", s.world.Explosions[0].Age)
	}
}

func TestRegenerateBasesCapped(t *testing.T) {
	s := newTestServer()
	s.world.Bases = []game.Base{
		{Antimatter: 100},
		{Antimatter: BaseMaxReserve - 5},
		{Antimatter: BaseMaxReserve},
	}

	s.regenerateBases()

	if got := s.world.Bases[0].Antimatter; got != 100+BaseRegenRate {
		t.Errorf("base 0 = %v, want %v", got, 100+BaseRegenRate)
	}
	if got := s.world.Bases[1].Antimatter; got != BaseMaxReserve {
		t.Errorf("base 1 = %v, want capped at %v", got, BaseMaxReserve)
	}
	if got := s.world.Bases[2].Antimatter; got != BaseMaxReserve {
		t.Errorf("base 2 = %v, want unchanged at the cap", got)
	}
}

func TestCheckWaveSpawnsPerFundedBase(t *testing.T) {
	s := newTestServer()
	s.world.Klingons = nil
	s.world.Bases = []game.Base{
		{Pos: game.Vec2{X: 1000, Y: 1000}, Antimatter: 500},
		{Pos: game.Vec2{X: 2000, Y: 2000}, Antimatter: 0}, // drained, no raider for it
		{Pos: game.Vec2{X: 3000, Y: 3000}, Antimatter: 500},
	}

	s.checkWave()

	if len(s.world.Klingons) != 2 {
		t.Fatalf("spawned %d raiders, want 2", len(s.world.Klingons))
	}
	if s.wave != 2 {
		t.Errorf("wave = %d, want 2", s.wave)
	}
	for i, k := range s.world.Klingons {
		onEdge := k.Pos.X == 0 || k.Pos.X == game.SectorWidth ||
			k.Pos.Y == 0 || k.Pos.Y == game.SectorHeight
		if !onEdge {
			t.Errorf("raider %d spawned at %+v, want a sector edge", i, k.Pos)
		}
	}
}

func TestCheckWaveWaitsForEmptyRoster(t *testing.T) {
	s := newTestServer()
	s.world.Klingons = []game.Klingon{klingon.Spawn(100, 100)}

	s.checkWave()

	if s.wave != 1 || len(s.world.Klingons) != 1 {
		t.Error("wave advanced while raiders remain")
	}
}

func TestCheckWaveStopsWhenBasesDrained(t *testing.T) {
	s := newTestServer()
	s.world.Klingons = nil
	s.world.Bases = []game.Base{{Antimatter: 0}}

	s.checkWave()

	if len(s.world.Klingons) != 0 {
		t.Error("raiders spawned with nothing left to raid")
	}
}

func TestCheckGameOverOnHullLoss(t *testing.T) {
	s := newTestServer()
	s.ship.Hull = 0

	s.checkGameOver()

	if !s.world.GameOver {
		t.Error("game not over with the ship destroyed")
	}
}

func TestCheckGameOverOnDrainedBases(t *testing.T) {
	s := newTestServer()
	for i := range s.world.Bases {
		s.world.Bases[i].Antimatter = 0
	}

	s.checkGameOver()

	if !s.world.GameOver {
		t.Error("game not over with every base drained")
	}
}

func TestCheckGameOverKeepsPlaying(t *testing.T) {
	s := newTestServer()

	s.checkGameOver()

	if s.world.GameOver {
		t.Error("game over with hull intact and bases funded")
	}
}

func TestRollRosterHonorsSectorCount(t *testing.T) {
	s := newTestServer()

	sec := s.sector
	sec.Raiders = 3
	if got := len(s.rollRoster(sec)); got != 3 {
		t.Errorf("roster = %d, want trimmed to 3", got)
	}

	sec.Raiders = game.KlingonCount + 5
	if got := len(s.rollRoster(sec)); got != game.KlingonCount+5 {
		t.Errorf("roster = %d, want padded to %d", got, game.KlingonCount+5)
	}

	sec.Raiders = 0
	if got := len(s.rollRoster(sec)); got != game.KlingonCount {
		t.Errorf("roster = %d, want the default %d", got, game.KlingonCount)
	}
}
