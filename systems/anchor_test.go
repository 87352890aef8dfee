package systems

import (
	"testing"

	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
)

func TestGrappleWithNoAnchorInRangeIsNoOp(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	addAnchor(e, bodyPos(e).Add(gamemath.Vec{X: c.Anchor.DetectRadius * 2, Y: 0}))

	queueIntents(e, cfg.IntentGrappleStart)
	UpdateIntents(e)

	if components.Body.Get(bodyEntry(e)).Attached {
		t.Fatal("grapple attached to an out-of-range anchor")
	}
}

func TestUpwardAnchorBeatsForwardAnchor(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	pos := bodyPos(e)

	forward := addAnchor(e, pos.Add(gamemath.Vec{X: 100, Y: 0}))
	upward := addAnchor(e, pos.Add(gamemath.Vec{X: 0, Y: -100}))
	_ = forward

	chosen, ok := SelectAnchor(e, pos)
	if !ok {
		t.Fatal("no anchor selected")
	}
	if chosen.Entity() != upward.Entity() {
		t.Fatal("equal-distance anchors must prefer the one above the body")
	}
}

func TestForwardAnchorBeatsBehindAnchor(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	pos := bodyPos(e)

	addAnchor(e, pos.Add(gamemath.Vec{X: -100, Y: 0}))
	ahead := addAnchor(e, pos.Add(gamemath.Vec{X: 100, Y: 0}))

	chosen, ok := SelectAnchor(e, pos)
	if !ok {
		t.Fatal("no anchor selected")
	}
	if chosen.Entity() != ahead.Entity() {
		t.Fatal("equal-distance anchors must prefer the one ahead of the body")
	}
}

func TestCloserAnchorWinsWithEqualBonuses(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	pos := bodyPos(e)

	near := addAnchor(e, pos.Add(gamemath.Vec{X: 60, Y: -60}))
	addAnchor(e, pos.Add(gamemath.Vec{X: 120, Y: -120}))

	chosen, ok := SelectAnchor(e, pos)
	if !ok {
		t.Fatal("no anchor selected")
	}
	if chosen.Entity() != near.Entity() {
		t.Fatal("with equal direction bonuses the nearer anchor must win")
	}
}

func TestInactiveAnchorIsIgnored(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	pos := bodyPos(e)

	dead := addAnchor(e, pos.Add(gamemath.Vec{X: 0, Y: -50}))
	components.Anchor.Get(dead).Active = false
	live := addAnchor(e, pos.Add(gamemath.Vec{X: 0, Y: -150}))

	chosen, ok := SelectAnchor(e, pos)
	if !ok {
		t.Fatal("no anchor selected")
	}
	if chosen.Entity() != live.Entity() {
		t.Fatal("inactive anchor must not be selectable")
	}
}

func TestSelectionHappensOncePerGrappleIntent(t *testing.T) {
	c := cfg.Default()
	e := newTestECS(c, 1)
	pos := bodyPos(e)

	first := addAnchor(e, pos.Add(gamemath.Vec{X: 80, Y: -20}))
	queueIntents(e, cfg.IntentGrappleStart)
	UpdateIntents(e)

	body := components.Body.Get(bodyEntry(e))
	if !body.Attached {
		t.Fatal("grapple failed")
	}
	want := components.Object.Get(first).Center()

	// A strictly better anchor appearing later must not steal the tether.
	addAnchor(e, pos.Add(gamemath.Vec{X: 10, Y: -10}))
	queueIntents(e, cfg.IntentGrappleHold)
	UpdateIntents(e)

	if body.AnchorPos != want {
		t.Fatalf("attachment moved without a new grapple: %+v -> %+v", want, body.AnchorPos)
	}
}
