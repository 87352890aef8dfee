package sim

import (
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
)

// BodySnapshot is the externally visible body state.
type BodySnapshot struct {
	Pos          gamemath.Vec
	Vel          gamemath.Vec
	Attached     bool
	AnchorPos    gamemath.Vec
	CoPilot      components.CoPilotState
	InvulnTicks  int
	DashCooldown int
}

// HazardSnapshot is one alive hazard. Fields outside a kind's parameter set
// are zero.
type HazardSnapshot struct {
	ID             donburi.Entity
	Kind           cfg.HazardKind
	Pos            gamemath.Vec
	Vel            gamemath.Vec
	Radius         float64
	Rotation       float64
	RotationRate   float64
	TrailLength    float64
	PullStrength   float64
	TerminalRadius float64
	SpawnDistance  float64
}

// Snapshot is a deep copy of the observable state after a tick. External
// layers (rendering, audio, persistence) own their copy; mutating it never
// touches the simulation. Cause is meaningful only in the GameOver state.
type Snapshot struct {
	State    cfg.RunStateID
	Cause    cfg.TerminalCause
	Tick     int64
	Distance float64
	Score    int64
	ZoneIdx  int
	Zone     string
	CameraX  float64
	Body     BodySnapshot
	Hazards  []HazardSnapshot
}

// Snapshot captures the current state. Valid in every run state; Menu and
// GameOver serve the last simulated frame.
func (s *Sim) Snapshot() Snapshot {
	run := s.run()
	snap := Snapshot{
		State:    run.State,
		Cause:    run.Cause,
		Tick:     run.Tick,
		Distance: run.Distance,
		Score:    run.Score,
		ZoneIdx:  run.ZoneIdx,
		Zone:     s.cfg.Zones[run.ZoneIdx].Name,
	}

	if cameraEntry, ok := components.Camera.First(s.ecs.World); ok {
		snap.CameraX = components.Camera.Get(cameraEntry).Position.X
	}

	if bodyEntry, ok := tags.Body.First(s.ecs.World); ok {
		body := components.Body.Get(bodyEntry)
		snap.Body = BodySnapshot{
			Pos:          components.Object.Get(bodyEntry).Center(),
			Vel:          components.Physics.Get(bodyEntry).Velocity,
			Attached:     body.Attached,
			AnchorPos:    body.AnchorPos,
			CoPilot:      body.CoPilot,
			InvulnTicks:  body.InvulnTicks,
			DashCooldown: body.DashCooldown,
		}
	}

	tags.Hazard.Each(s.ecs.World, func(entry *donburi.Entry) {
		hazard := components.Hazard.Get(entry)
		snap.Hazards = append(snap.Hazards, HazardSnapshot{
			ID:             entry.Entity(),
			Kind:           hazard.Kind,
			Pos:            components.Object.Get(entry).Center(),
			Vel:            components.Physics.Get(entry).Velocity,
			Radius:         hazard.Radius,
			Rotation:       hazard.Rotation,
			RotationRate:   hazard.RotationRate,
			TrailLength:    hazard.TrailLength,
			PullStrength:   hazard.PullStrength,
			TerminalRadius: hazard.TerminalRadius,
			SpawnDistance:  hazard.SpawnDistance,
		})
	})

	return snap
}
