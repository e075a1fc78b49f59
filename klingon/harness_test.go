package klingon

import (
	"math/rand"

	"github.com/mlunde/raider-web/game"
)

// Float comparison tolerance for the physics and targeting math.
const tolerance = 1e-9

// stubSource is a rand.Source that returns one fixed value forever, pinning
// every random draw a stage makes.
type stubSource struct {
	v int64
}

func (s stubSource) Int63() int64 { return s.v }
func (s stubSource) Seed(int64)   {}

// Source values chosen for how Float64 and Intn map them: sourceLow draws
// 0.0 (suppression holds fire, re-rolls pick state 0), sourceHigh draws
// ~0.992 (suppression lets fire proceed).
const (
	sourceLow  = int64(0)
	sourceHigh = int64(1<<63 - 1<<56)
)

func newTestEngine(v int64) *Engine {
	return NewEngine(rand.New(stubSource{v}))
}

// testRaider is a healthy raider at the given position with full stores and
// a pinned posture.
func testRaider(x, y float64, state game.BattleState) game.Klingon {
	k := Spawn(x, y)
	k.State = state
	return k
}

// testWorld wraps raiders with a ship at the origin.
func testWorld(klingons ...game.Klingon) game.World {
	return game.World{Klingons: klingons}
}
