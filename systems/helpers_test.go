package systems

import (
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/voidswing/voidswing/systems/factory"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a minimal playing world: space, settings, run, camera,
// spawner and body, without the system pipeline so tests drive systems
// individually.
func newTestECS(c *cfg.Config, seed int64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateSettings(e, c)
	factory.CreateRun(e)
	factory.CreateCamera(e, c)
	factory.CreateSpawner(e, seed)
	factory.CreateBody(e, c)
	runState(e).State = cfg.RunPlaying
	return e
}

func bodyEntry(e *ecs.ECS) *donburi.Entry {
	entry, _ := tags.Body.First(e.World)
	return entry
}

func placeBody(e *ecs.ECS, pos gamemath.Vec) {
	obj := components.Object.Get(bodyEntry(e))
	obj.SetCenter(pos)
	obj.Update()
}

func bodyPos(e *ecs.ECS) gamemath.Vec {
	return components.Object.Get(bodyEntry(e)).Center()
}

func bodyVel(e *ecs.ECS) gamemath.Vec {
	return components.Physics.Get(bodyEntry(e)).Velocity
}

func setBodyVel(e *ecs.ECS, v gamemath.Vec) {
	components.Physics.Get(bodyEntry(e)).Velocity = v
}

func addAnchor(e *ecs.ECS, pos gamemath.Vec) *donburi.Entry {
	return factory.CreateAnchor(e, pos)
}

func addHazard(e *ecs.ECS, data components.HazardData, pos, vel gamemath.Vec) *donburi.Entry {
	return factory.CreateHazard(e, settings(e), data, pos, vel)
}

func queueIntents(e *ecs.ECS, intents ...cfg.IntentID) {
	entry, _ := components.Run.First(e.World)
	components.IntentQueue.Get(entry).Push(intents...)
}

func countHazards(e *ecs.ECS, kind cfg.HazardKind) int {
	n := 0
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		if components.Hazard.Get(entry).Kind == kind {
			n++
		}
	})
	return n
}
