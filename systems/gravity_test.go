package systems

import (
	"math"
	"testing"

	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
)

func wellData(strength, radius, terminal float64) components.HazardData {
	return components.HazardData{
		Kind:           cfg.HazardGravityWell,
		Radius:         radius,
		PullStrength:   strength,
		TerminalRadius: terminal,
	}
}

func TestWellPullsTowardItself(t *testing.T) {
	e := newTestECS(cfg.Default(), 1)
	addHazard(e, wellData(5000, 60, 27), bodyPos(e).Add(gamemath.Vec{X: 200, Y: 0}), gamemath.Vec{})

	UpdateGravityWells(e)

	vel := bodyVel(e)
	if vel.X <= 0 || vel.Y != 0 {
		t.Fatalf("pull should point at the well: %+v", vel)
	}
	want := 5000.0 / (200.0 * 200.0)
	if math.Abs(vel.X-want) > 1e-9 {
		t.Fatalf("pull magnitude = %v, want %v", vel.X, want)
	}
}

func TestWellForceIsCappedNearTheSingularity(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	addHazard(e, wellData(9000, 60, 27), bodyPos(e).Add(gamemath.Vec{X: 1, Y: 0}), gamemath.Vec{})

	UpdateGravityWells(e)

	if speed := bodyVel(e).Length(); speed > c.Well.ForceCap+1e-9 {
		t.Fatalf("per-well accel %v exceeds cap %v", speed, c.Well.ForceCap)
	}
}

func TestSimultaneousWellsSumTheirForces(t *testing.T) {
	e := newTestECS(cfg.Default(), 1)
	pos := bodyPos(e)
	// Symmetric wells left and right: horizontal pulls cancel exactly.
	addHazard(e, wellData(5000, 60, 27), pos.Add(gamemath.Vec{X: 150, Y: 0}), gamemath.Vec{})
	addHazard(e, wellData(5000, 60, 27), pos.Add(gamemath.Vec{X: -150, Y: 0}), gamemath.Vec{})

	UpdateGravityWells(e)

	vel := bodyVel(e)
	if math.Abs(vel.X) > 1e-9 || math.Abs(vel.Y) > 1e-9 {
		t.Fatalf("symmetric wells should cancel, got %+v", vel)
	}
}

func TestWellPullsEvenWhileAttached(t *testing.T) {
	e := newTestECS(cfg.Default(), 1)
	attach(e, gamemath.Vec{X: 0, Y: 0})
	addHazard(e, wellData(5000, 60, 27), bodyPos(e).Add(gamemath.Vec{X: 0, Y: 120}), gamemath.Vec{})

	UpdateGravityWells(e)

	if vy := bodyVel(e).Y; vy <= 0 {
		t.Fatalf("attachment must not shield the body from well pull, vy = %v", vy)
	}
}

func TestRepeatedWellPassesNeverBreakTheSpeedCap(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	addHazard(e, wellData(9000, 60, 27), bodyPos(e).Add(gamemath.Vec{X: 100, Y: 40}), gamemath.Vec{})

	for i := 0; i < 300; i++ {
		UpdatePhysics(e)
		if speed := bodyVel(e).Length(); speed > c.Body.MaxSpeed+1e-9 {
			t.Fatalf("tick %d: speed %v exceeds cap %v after damping", i, speed, c.Body.MaxSpeed)
		}
		UpdateGravityWells(e)
	}
}
