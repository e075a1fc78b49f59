package klingon

import (
	"math"
	"testing"

	"github.com/mlunde/raider-web/game"
)

func TestThrustOrientationByPosture(t *testing.T) {
	cases := []struct {
		state game.BattleState
		bias  float64
	}{
		{game.StateNoBattle, 0},
		{game.StateFlankLeft, math.Pi / 2},
		{game.StateFlankRight, -math.Pi / 2},
		{game.StateAdvancing, 10 * math.Pi / 180},
		{game.StateRetreating, 190 * math.Pi / 180},
	}

	for _, tc := range cases {
		t.Run(tc.state.String(), func(t *testing.T) {
			// Raider due west of the ship: bearing to the ship is 0.
			k := testRaider(-1000, 0, tc.state)
			w := IntegrateMotion(10, testWorld(k))

			got := w.Klingons[0].Thrust.Angle()
			want := game.NormalizeAngleSigned(tc.bias)
			if math.Abs(game.AngleDiff(got, want)) > tolerance {
				t.Errorf("thrust angle = %v, want %v", got, want)
			}
		})
	}
}

func TestThrustMagnitudeScaling(t *testing.T) {
	k := testRaider(-1000, 0, game.StateAdvancing)
	k.Shields = game.MaxShields / 2

	w := IntegrateMotion(10, testWorld(k))

	want := game.MaxThrust * 0.5
	if got := w.Klingons[0].Thrust.Length(); math.Abs(got-want) > tolerance {
		t.Errorf("thrust magnitude = %v, want %v", got, want)
	}
}

func TestThrustLimitedByAntimatter(t *testing.T) {
	k := testRaider(-1000, 0, game.StateAdvancing)
	k.Antimatter = game.MaxThrust / 2

	w := IntegrateMotion(10, testWorld(k))

	want := game.MaxThrust / 2
	if got := w.Klingons[0].Thrust.Length(); math.Abs(got-want) > tolerance {
		t.Errorf("thrust magnitude = %v, want %v", got, want)
	}
}

func TestThrustUnchangedBeyondTacticalRange(t *testing.T) {
	k := testRaider(game.TacticalRange+500, 0, game.StateNoBattle)
	k.Thrust = game.Vec2{X: 1e-4, Y: -2e-4}

	w := IntegrateMotion(10, testWorld(k))

	if got := w.Klingons[0].Thrust; got != k.Thrust {
		t.Errorf("thrust = %+v, want the prior %+v untouched", got, k.Thrust)
	}
}

func TestEulerIntegrationStep(t *testing.T) {
	k := testRaider(game.TacticalRange+500, 0, game.StateNoBattle)
	k.Vel = game.Vec2{X: 0.1}
	k.Thrust = game.Vec2{Y: 0.0002}
	elapsed := 50.0

	w := IntegrateMotion(elapsed, testWorld(k))
	got := w.Klingons[0]

	// velocity first, then position, then drag
	vel := k.Vel.Add(k.Thrust.Scale(elapsed))
	wantPos := k.Pos.Add(vel.Scale(elapsed))
	wantVel := vel.Scale(math.Pow(game.DragFactor, elapsed))

	if math.Abs(got.Pos.X-wantPos.X) > tolerance || math.Abs(got.Pos.Y-wantPos.Y) > tolerance {
		t.Errorf("pos = %+v, want %+v", got.Pos, wantPos)
	}
	if math.Abs(got.Vel.X-wantVel.X) > tolerance || math.Abs(got.Vel.Y-wantVel.Y) > tolerance {
		t.Errorf("vel = %+v, want %+v", got.Vel, wantVel)
	}
}

// Drag decay must depend only on total elapsed time, not on how the driver
// slices it into ticks.
func TestDragIsFrameRateIndependent(t *testing.T) {
	coast := func(steps int, dt float64) float64 {
		k := testRaider(game.TacticalRange+500, 0, game.StateNoBattle)
		k.Vel = game.Vec2{X: 0.2}
		w := testWorld(k)
		for i := 0; i < steps; i++ {
			w = IntegrateMotion(dt, w)
		}
		return w.Klingons[0].Vel.X
	}

	fine := coast(10, 10)
	coarse := coast(1, 100)
	if math.Abs(fine-coarse) > 1e-12 {
		t.Errorf("10x10ms decay %v != 1x100ms decay %v", fine, coarse)
	}
}
