package config

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi/ecs"
)

// DefaultLayer is the ECS layer all simulation entities live on.
const DefaultLayer ecs.LayerID = 0

// TicksPerSecond is the base simulation rate. All per-tick tuning values in
// this package assume this rate; the sim sub-steps variable deltas into
// whole ticks.
const TicksPerSecond = 60

// BodyConfig contains the controlled body's tuning values.
type BodyConfig struct {
	Gravity    float64 // downward accel per tick while detached
	DampingDiv float64 // velocity is divided by this each tick
	MaxSpeed   float64 // hard cap on speed after damping
	Radius     float64
	SpawnX     float64
	SpawnY     float64
}

// RopeConfig contains the tether tuning values.
type RopeConfig struct {
	Length float64 // inextensible rope length
}

// AnchorConfig contains anchor-selection tuning values. UpwardBonus must
// exceed ForwardBonus: the swing bias prefers height over reach.
type AnchorConfig struct {
	DetectRadius float64
	ForwardBonus float64 // score reduction for anchors ahead of the body
	UpwardBonus  float64 // score reduction for anchors above the body
}

// DashConfig contains dash tuning values.
type DashConfig struct {
	Impulse       float64 // instantaneous speed added along heading
	CooldownTicks int
}

// ShieldConfig contains co-pilot / shield tuning values.
type ShieldConfig struct {
	InvulnTicks    int     // invulnerability window after ejection
	RescueDistance float64 // distance traveled before auto-rescue
}

// WellConfig contains gravity-well force tuning values.
type WellConfig struct {
	ForceCap float64 // per-well, per-tick accel cap near the singularity
}

// CameraConfig contains scroll and hazard-window tuning values.
type CameraConfig struct {
	LeadDistance float64 // hazards spawn this far ahead of the camera
	RetireMargin float64 // hazards retire this far behind the camera
	WorldHeight  float64 // vertical band hazards spawn within
	VerticalPad  float64 // kept clear at the top and bottom of the band
}

// ScoreConfig contains scoring tuning values.
type ScoreConfig struct {
	PointsPerUnit float64 // score per world unit of forward progress
}

// Config aggregates all simulation tuning. Values are design-tuning knobs,
// not contracts; Validate enforces the structural invariants.
type Config struct {
	Body   BodyConfig
	Rope   RopeConfig
	Anchor AnchorConfig
	Dash   DashConfig
	Shield ShieldConfig
	Well   WellConfig
	Camera CameraConfig
	Score  ScoreConfig

	Hazards map[HazardKind]HazardTypeConfig
	Zones   []ZoneConfig
}

// Default returns the canonical tuning. Callers may mutate the copy before
// handing it to sim.New.
func Default() *Config {
	return &Config{
		Body: BodyConfig{
			Gravity:    0.35,
			DampingDiv: 1.008,
			MaxSpeed:   18.0,
			Radius:     16.0,
			SpawnX:     100.0,
			SpawnY:     300.0,
		},
		Rope: RopeConfig{
			Length: 220.0,
		},
		Anchor: AnchorConfig{
			DetectRadius: 260.0,
			ForwardBonus: 40.0,
			UpwardBonus:  90.0,
		},
		Dash: DashConfig{
			Impulse:       7.0,
			CooldownTicks: 45,
		},
		Shield: ShieldConfig{
			InvulnTicks:    90,
			RescueDistance: 300.0,
		},
		Well: WellConfig{
			ForceCap: 1.2,
		},
		Camera: CameraConfig{
			LeadDistance: 900.0,
			RetireMargin: 400.0,
			WorldHeight:  600.0,
			VerticalPad:  60.0,
		},
		Score: ScoreConfig{
			PointsPerUnit: 0.1,
		},
		Hazards: map[HazardKind]HazardTypeConfig{
			HazardAsteroid: {
				Radius:       Range{18, 34},
				RotationRate: Range{-0.04, 0.04},
				BobAmplitude: 24.0,
				BobDuration:  2.0,
			},
			HazardComet: {
				Radius:      Range{12, 20},
				TrailLength: Range{40, 90},
			},
			HazardShootingStar: {
				Radius:      Range{8, 14},
				TrailLength: Range{70, 140},
			},
			HazardGravityWell: {
				Radius:           Range{48, 72},
				PullStrength:     Range{4000, 9000},
				TerminalFraction: 0.45,
			},
		},
		Zones: DefaultZones(),
	}
}

// Validate reports configuration violations. These are programmer errors and
// must prevent simulation start; nothing here is recoverable per tick.
func (c *Config) Validate() error {
	if c.Rope.Length <= 0 {
		return fmt.Errorf("rope length must be positive, got %v", c.Rope.Length)
	}
	if c.Body.DampingDiv < 1 {
		return fmt.Errorf("damping divisor must be >= 1, got %v", c.Body.DampingDiv)
	}
	if c.Body.MaxSpeed <= 0 {
		return errors.New("body max speed must be positive")
	}
	if c.Body.Radius <= 0 {
		return errors.New("body radius must be positive")
	}
	if c.Anchor.DetectRadius <= 0 {
		return errors.New("anchor detect radius must be positive")
	}
	if c.Anchor.ForwardBonus <= 0 || c.Anchor.UpwardBonus <= c.Anchor.ForwardBonus {
		return fmt.Errorf("anchor bonuses must satisfy upward > forward > 0, got forward=%v upward=%v",
			c.Anchor.ForwardBonus, c.Anchor.UpwardBonus)
	}
	if c.Dash.CooldownTicks <= 0 {
		return errors.New("dash cooldown must be positive")
	}
	if c.Shield.InvulnTicks <= 0 {
		return errors.New("shield invulnerability window must be positive")
	}
	if c.Shield.RescueDistance <= 0 {
		return errors.New("shield rescue distance must be positive")
	}
	if c.Well.ForceCap <= 0 {
		return errors.New("gravity well force cap must be positive")
	}
	if c.Camera.LeadDistance <= 0 || c.Camera.RetireMargin <= 0 {
		return errors.New("camera lead distance and retire margin must be positive")
	}
	for kind := HazardKind(0); kind < HazardKindCount; kind++ {
		hc, ok := c.Hazards[kind]
		if !ok {
			return fmt.Errorf("missing hazard config for %v", kind)
		}
		if hc.Radius.Min <= 0 || hc.Radius.Max < hc.Radius.Min {
			return fmt.Errorf("%v radius range invalid: %+v", kind, hc.Radius)
		}
	}
	wc := c.Hazards[HazardGravityWell]
	if wc.TerminalFraction <= 0 || wc.TerminalFraction >= 1 {
		return fmt.Errorf("well terminal fraction must be in (0, 1), got %v", wc.TerminalFraction)
	}
	return validateZones(c.Zones)
}
