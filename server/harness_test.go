package server

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/mlunde/raider-web/game"
	"github.com/mlunde/raider-web/klingon"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

// newTestServer builds a server around the default sector without touching
// the network: no-op logger, pinned generator, buffered broadcast so event
// sends never block a test.
func newTestServer() *Server {
	rng := rand.New(rand.NewSource(1))
	sec := DefaultSector()

	s := &Server{
		log:            zap.NewNop(),
		cfg:            defaultConfig(),
		clients:        make(map[int]*Client),
		broadcast:      make(chan ServerMessage, 256),
		done:           make(chan struct{}),
		engine:         klingon.NewEngine(rng),
		rng:            rng,
		sector:         sec,
		ticksPerSecond: 20,
		pilotID:        -1,
		lastTick:       time.Now(),
		wave:           1,
	}
	s.world = game.World{
		Ship:  game.Ship{Pos: game.Vec2{X: sec.Ship.X, Y: sec.Ship.Y}},
		Bases: sec.WorldBases(),
	}
	s.ship = NewShipSystems()
	return s
}
