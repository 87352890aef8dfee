package systems

import (
	"testing"

	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
)

func TestReleasePreservesVelocity(t *testing.T) {
	e := newTestECS(cfg.Default(), 1)
	attach(e, gamemath.Vec{X: 0, Y: 0})
	want := gamemath.Vec{X: 7.5, Y: -2.25}
	setBodyVel(e, want)

	queueIntents(e, cfg.IntentRelease)
	UpdateIntents(e)

	body := components.Body.Get(bodyEntry(e))
	if body.Attached {
		t.Fatal("release left the body attached")
	}
	if got := bodyVel(e); got != want {
		t.Fatalf("release changed velocity: got %+v, want %+v", got, want)
	}
}

func TestReleaseBeatsGrappleInSameTick(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	attach(e, gamemath.Vec{X: 0, Y: 0})

	// An in-range anchor is available, but the conflicting tick must
	// resolve to letting go.
	addAnchor(e, bodyPos(e).Add(gamemath.Vec{X: 50, Y: -50}))
	queueIntents(e, cfg.IntentGrappleStart, cfg.IntentRelease)
	UpdateIntents(e)

	if components.Body.Get(bodyEntry(e)).Attached {
		t.Fatal("release must take precedence over grapple-start")
	}
}

func TestDashAppliesImpulseAlongHeading(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	body := components.Body.Get(bodyEntry(e))
	body.Heading = gamemath.Vec{X: 1, Y: 0}

	queueIntents(e, cfg.IntentDash)
	UpdateIntents(e)

	if got := bodyVel(e).X; got != c.Dash.Impulse {
		t.Fatalf("dash impulse = %v, want %v", got, c.Dash.Impulse)
	}
	if body.DashCooldown != c.Dash.CooldownTicks {
		t.Fatalf("cooldown = %d, want %d", body.DashCooldown, c.Dash.CooldownTicks)
	}
}

func TestDashDuringCooldownIsSilentNoOp(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)

	queueIntents(e, cfg.IntentDash)
	UpdateIntents(e)
	body := components.Body.Get(bodyEntry(e))
	velAfterFirst := bodyVel(e)

	// Burn a few ticks of cooldown, then dash again.
	UpdatePhysics(e)
	UpdatePhysics(e)
	cooldownBefore := body.DashCooldown
	velBefore := bodyVel(e)

	queueIntents(e, cfg.IntentDash)
	UpdateIntents(e)

	if got := bodyVel(e); got != velBefore {
		t.Fatalf("dash on cooldown changed velocity: %+v -> %+v (first dash gave %+v)", velBefore, got, velAfterFirst)
	}
	if body.DashCooldown != cooldownBefore {
		t.Fatalf("dash on cooldown reset the timer: %d -> %d", cooldownBefore, body.DashCooldown)
	}
}

func TestSpeedCapHoldsAfterDamping(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	setBodyVel(e, gamemath.Vec{X: 500, Y: -500})

	UpdatePhysics(e)

	if speed := bodyVel(e).Length(); speed > c.Body.MaxSpeed+1e-9 {
		t.Fatalf("speed %v exceeds cap %v", speed, c.Body.MaxSpeed)
	}
}

func TestGravityAppliesOnlyWhileDetached(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)

	UpdatePhysics(e)
	if vy := bodyVel(e).Y; vy <= 0 {
		t.Fatalf("detached body should fall, vy = %v", vy)
	}

	e2 := newTestECS(c, 1)
	attach(e2, gamemath.Vec{X: 0, Y: 0})
	UpdatePhysics(e2)
	if vy := bodyVel(e2).Y; vy != 0 {
		t.Fatalf("attached body gained free-fall gravity, vy = %v", vy)
	}
}

func TestInvulnerabilityWindowExpiresToVulnerable(t *testing.T) {
	c := cfg.Default()
	c.Shield.InvulnTicks = 3
	e := newTestECS(c, 1)

	body := components.Body.Get(bodyEntry(e))
	body.CoPilot = components.CoPilotEjectedInvulnerable
	body.InvulnTicks = c.Shield.InvulnTicks

	for i := 0; i < c.Shield.InvulnTicks-1; i++ {
		UpdatePhysics(e)
		if !body.Invulnerable() {
			t.Fatalf("tick %d: window ended early", i)
		}
	}
	UpdatePhysics(e)
	if body.CoPilot != components.CoPilotEjectedVulnerable || body.InvulnTicks != 0 {
		t.Fatalf("window should have expired: state=%v ticks=%d", body.CoPilot, body.InvulnTicks)
	}
}
