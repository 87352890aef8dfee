package sim

import (
	"fmt"
	"math/rand"

	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/voidswing/voidswing/systems"
	"github.com/voidswing/voidswing/systems/factory"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// tickDT is the wall time one fixed tick represents.
	tickDT = 1.0 / cfg.TicksPerSecond
	// maxSubSteps bounds the catch-up work of a single Step call; a longer
	// stall drops the backlog instead of spiraling.
	maxSubSteps = 6
)

// Sim owns one simulation world: the controlled body, the hazard field and
// the run state machine. It is single threaded and never reads the wall
// clock; callers drive it with Step and read state through Snapshot.
type Sim struct {
	cfg   *cfg.Config
	ecs   *ecs.ECS
	seed  int64
	accum float64
}

// New validates the configuration and builds a world in the Menu state.
// A nil config uses the canonical tuning. The seed fixes the hazard stream:
// equal seeds and equal inputs replay the identical run.
func New(c *cfg.Config, seed int64) (*Sim, error) {
	if c == nil {
		c = cfg.Default()
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("simulation config rejected: %w", err)
	}

	s := &Sim{cfg: c, seed: seed}
	s.build()
	return s, nil
}

func (s *Sim) build() {
	e := ecs.NewECS(donburi.NewWorld())

	// Strict per-tick order: intents, dynamics, constraint, well forces,
	// collisions, hazard lifecycle, camera/score. Everything is gated on
	// the Playing state.
	e.AddSystem(systems.WithPlayingCheck(systems.UpdateIntents))
	e.AddSystem(systems.WithPlayingCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPlayingCheck(systems.UpdateRope))
	e.AddSystem(systems.WithPlayingCheck(systems.UpdateGravityWells))
	e.AddSystem(systems.WithPlayingCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithPlayingCheck(systems.UpdateSpawner))
	e.AddSystem(systems.WithPlayingCheck(systems.UpdateCamera))

	factory.CreateSpace(e)
	factory.CreateSettings(e, s.cfg)
	factory.CreateRun(e)
	factory.CreateCamera(e, s.cfg)
	factory.CreateSpawner(e, s.seed)
	factory.CreateBody(e, s.cfg)

	s.ecs = e
}

// Start begins a run. From Menu it starts fresh; from GameOver it resets
// first. Starting mid-run is a no-op.
func (s *Sim) Start() {
	run := s.run()
	switch run.State {
	case cfg.RunPlaying:
		return
	case cfg.RunGameOver:
		s.resetRun()
	case cfg.RunMenu:
		s.resetRun()
	}
	s.run().State = cfg.RunPlaying
}

// Reset tears the run down and returns to the Menu state. The last snapshot
// is discarded; the anchor set supplied by the caller survives.
func (s *Sim) Reset() {
	s.resetRun()
}

// Queue appends classified intents for the next tick. The queue is drained
// exactly once per tick with release taking precedence over grapple-start.
func (s *Sim) Queue(intents ...cfg.IntentID) {
	entry, ok := components.Run.First(s.ecs.World)
	if !ok {
		return
	}
	components.IntentQueue.Get(entry).Push(intents...)
}

// SetAnchors replaces the grapple-point set with the caller's current
// visible-region list. An attached tether keeps its captured anchor
// position even if that anchor leaves the list.
func (s *Sim) SetAnchors(points []gamemath.Vec) {
	var old []*donburi.Entry
	tags.Anchor.Each(s.ecs.World, func(entry *donburi.Entry) {
		old = append(old, entry)
	})
	spaceEntry, _ := components.Space.First(s.ecs.World)
	space := components.Space.Get(spaceEntry)
	for _, entry := range old {
		space.Remove(components.Object.Get(entry).Object)
		s.ecs.World.Remove(entry.Entity())
	}
	for _, p := range points {
		factory.CreateAnchor(s.ecs, p)
	}
}

// Step advances the simulation by dt seconds, executed as whole fixed
// ticks. Outside the Playing state it is free; pausing is simply not
// calling Step.
func (s *Sim) Step(dt float64) {
	if s.run().State != cfg.RunPlaying {
		s.accum = 0
		return
	}
	s.accum += dt
	steps := 0
	for s.accum >= tickDT && steps < maxSubSteps {
		s.ecs.Update()
		s.accum -= tickDT
		steps++
	}
	if steps == maxSubSteps {
		s.accum = 0
	}
}

// StepTicks advances exactly n fixed ticks, for callers that own a fixed
// clock (and for deterministic tests).
func (s *Sim) StepTicks(n int) {
	for i := 0; i < n; i++ {
		if s.run().State != cfg.RunPlaying {
			return
		}
		s.ecs.Update()
	}
}

// State returns the current run state without building a full snapshot.
func (s *Sim) State() cfg.RunStateID {
	return s.run().State
}

func (s *Sim) run() *components.RunData {
	entry, _ := components.Run.First(s.ecs.World)
	return components.Run.Get(entry)
}

func (s *Sim) resetRun() {
	// Retire every hazard.
	var hazards []*donburi.Entry
	tags.Hazard.Each(s.ecs.World, func(entry *donburi.Entry) {
		hazards = append(hazards, entry)
	})
	for _, entry := range hazards {
		factory.RetireHazard(s.ecs, entry)
	}

	// Body back to spawn with a fresh co-pilot.
	if bodyEntry, ok := tags.Body.First(s.ecs.World); ok {
		body := components.Body.Get(bodyEntry)
		physics := components.Physics.Get(bodyEntry)
		obj := components.Object.Get(bodyEntry)
		*body = components.BodyData{
			Heading: gamemath.Vec{X: 1, Y: 0},
			CoPilot: components.CoPilotAboard,
		}
		physics.Velocity = gamemath.Vec{}
		obj.SetCenter(gamemath.Vec{X: s.cfg.Body.SpawnX, Y: s.cfg.Body.SpawnY})
		obj.Update()
	}

	if cameraEntry, ok := components.Camera.First(s.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = s.cfg.Body.SpawnX
		camera.Position.Y = 0
	}

	if spawnerEntry, ok := components.Spawner.First(s.ecs.World); ok {
		sp := components.Spawner.Get(spawnerEntry)
		sp.Rand = rand.New(rand.NewSource(s.seed))
		sp.NextSpawnAt = make(map[cfg.HazardKind]float64)
	}

	if runEntry, ok := components.Run.First(s.ecs.World); ok {
		components.Run.SetValue(runEntry, components.RunData{State: cfg.RunMenu})
		components.IntentQueue.SetValue(runEntry, components.IntentQueueData{})
	}
	s.accum = 0
}
