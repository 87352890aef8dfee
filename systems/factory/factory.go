package factory

import (
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/voidswing/voidswing/archetypes"
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/voidswing/voidswing/tags"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision space dimensions. The run scrolls indefinitely; objects past the
// edge clamp into the border cells, and since retired hazards are removed
// the live set always shares cells with the body, so broadphase stays sound.
const (
	spaceWidth  = 1 << 15
	spaceHeight = 1 << 10
	cellSize    = 64
)

func CreateSpace(e *ecs.ECS) *donburi.Entry {
	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.SetValue(spaceEntry, components.SpaceData{
		Space: resolv.NewSpace(spaceWidth, spaceHeight, cellSize, cellSize),
	})
	return spaceEntry
}

func CreateSettings(e *ecs.ECS, c *cfg.Config) *donburi.Entry {
	entry := archetypes.Settings.Spawn(e)
	components.Settings.SetValue(entry, components.SettingsData{Config: c})
	return entry
}

func CreateRun(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Run.Spawn(e)
	components.Run.SetValue(entry, components.RunData{State: cfg.RunMenu})
	components.IntentQueue.SetValue(entry, components.IntentQueueData{})
	return entry
}

func CreateCamera(e *ecs.ECS, c *cfg.Config) *donburi.Entry {
	entry := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(entry, components.CameraData{
		Position: dmath.Vec2{X: c.Body.SpawnX, Y: 0},
	})
	return entry
}

func CreateSpawner(e *ecs.ECS, seed int64) *donburi.Entry {
	entry := archetypes.Spawner.Spawn(e)
	components.Spawner.SetValue(entry, components.SpawnerData{
		Rand:        rand.New(rand.NewSource(seed)),
		Seed:        seed,
		NextSpawnAt: make(map[cfg.HazardKind]float64),
	})
	return entry
}

func CreateBody(e *ecs.ECS, c *cfg.Config) *donburi.Entry {
	entry := archetypes.Body.Spawn(e)

	side := c.Body.Radius * 2
	obj := resolv.NewObject(c.Body.SpawnX-c.Body.Radius, c.Body.SpawnY-c.Body.Radius, side, side, tags.ResolvBody)
	obj.Data = entry
	addToSpace(e, obj)

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Physics.SetValue(entry, components.PhysicsData{})
	components.Body.SetValue(entry, components.BodyData{
		Heading: gamemath.Vec{X: 1, Y: 0},
		CoPilot: components.CoPilotAboard,
	})
	return entry
}

func CreateAnchor(e *ecs.ECS, pos gamemath.Vec) *donburi.Entry {
	entry := archetypes.Anchor.Spawn(e)

	const side = 8.0
	obj := resolv.NewObject(pos.X-side/2, pos.Y-side/2, side, side, tags.ResolvAnchor)
	obj.Data = entry
	addToSpace(e, obj)

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Anchor.SetValue(entry, components.AnchorData{Active: true})
	return entry
}

// CreateHazard spawns one hazard entity with its collision object. Asteroids
// additionally get a looping vertical bob tween around their spawn line.
func CreateHazard(e *ecs.ECS, c *cfg.Config, data components.HazardData, pos, vel gamemath.Vec) *donburi.Entry {
	entry := archetypes.Hazard.Spawn(e)

	side := data.Radius * 2
	obj := resolv.NewObject(pos.X-data.Radius, pos.Y-data.Radius, side, side, tags.ResolvHazard)
	obj.Data = entry
	addToSpace(e, obj)

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Physics.SetValue(entry, components.PhysicsData{Velocity: vel})
	components.Hazard.SetValue(entry, data)

	if data.Kind == cfg.HazardAsteroid {
		hc := c.Hazards[cfg.HazardAsteroid]
		amp := float32(hc.BobAmplitude)
		dur := float32(hc.BobDuration)
		y := float32(pos.Y)
		tw := gween.NewSequence()
		tw.Add(
			gween.New(y, y-amp, dur, ease.InOutQuad),
			gween.New(y-amp, y+amp, dur*2, ease.InOutQuad),
			gween.New(y+amp, y, dur, ease.InOutQuad),
		)
		entry.AddComponent(components.Tween)
		components.Tween.Set(entry, tw)
	}

	return entry
}

// RetireHazard removes a hazard entity and its collision object.
func RetireHazard(e *ecs.ECS, entry *donburi.Entry) {
	if obj := components.Object.Get(entry); obj != nil {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
