package archetypes

import (
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Body = newArchetype(
		tags.Body,
		components.Body,
		components.Physics,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Physics,
		components.Object,
	)
	Anchor = newArchetype(
		tags.Anchor,
		components.Anchor,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Run = newArchetype(
		components.Run,
		components.IntentQueue,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.DefaultLayer,
		append(a.components, cs...)...,
	))
	return e
}
