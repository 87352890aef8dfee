package systems

import (
	"math/rand"

	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/voidswing/voidswing/systems/factory"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner creates hazards ahead of the camera as distance accrues and
// retires the ones that scrolled far enough behind it. Only kinds in the
// active zone's whitelist ever spawn, so a kind's first zone is a hard
// threshold; spacing shrinks with the zone's density multiplier and speeds
// come from the zone's range.
func UpdateSpawner(e *ecs.ECS) {
	spawnerEntry, ok := components.Spawner.First(e.World)
	if !ok {
		return
	}
	sp := components.Spawner.Get(spawnerEntry)
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	c := settings(e)
	run := runState(e)
	zone := c.Zones[cfg.ZoneIndexFor(c.Zones, run.Distance)]

	for _, kind := range zone.Kinds {
		next, armed := sp.NextSpawnAt[kind]
		if !armed {
			// Kind just became eligible; arm it one interval out so zone
			// entry never bursts.
			sp.NextSpawnAt[kind] = run.Distance + spawnInterval(sp.Rand, zone)
			continue
		}
		if run.Distance < next {
			continue
		}
		spawnHazard(e, c, sp.Rand, zone, kind, camera.Position.X, run.Distance)
		sp.NextSpawnAt[kind] = run.Distance + spawnInterval(sp.Rand, zone)
	}

	retireHazards(e, c, camera.Position.X)
}

func spawnInterval(rng *rand.Rand, zone cfg.ZoneConfig) float64 {
	return zone.BaseSpacing/zone.DensityMult + (rng.Float64()*2-1)*zone.SpacingJit
}

func spawnHazard(e *ecs.ECS, c *cfg.Config, rng *rand.Rand, zone cfg.ZoneConfig, kind cfg.HazardKind, cameraX, distance float64) {
	hc := c.Hazards[kind]

	pos := gamemath.Vec{
		X: cameraX + c.Camera.LeadDistance + rng.Float64()*120,
		Y: c.Camera.VerticalPad + rng.Float64()*(c.Camera.WorldHeight-2*c.Camera.VerticalPad),
	}

	data := components.HazardData{
		Kind:          kind,
		Radius:        drawRange(rng, hc.Radius),
		SpawnDistance: distance,
	}

	speed := drawRange(rng, zone.Speed)
	var vel gamemath.Vec
	switch kind {
	case cfg.HazardAsteroid:
		data.RotationRate = drawRange(rng, hc.RotationRate)
		vel = gamemath.Vec{X: -speed * 0.4}
	case cfg.HazardComet:
		data.TrailLength = drawRange(rng, hc.TrailLength)
		vel = gamemath.Vec{X: -speed, Y: (rng.Float64() - 0.5) * 0.6}
	case cfg.HazardShootingStar:
		data.TrailLength = drawRange(rng, hc.TrailLength)
		vel = gamemath.Vec{X: -speed * 1.3, Y: (rng.Float64() - 0.5) * 1.2}
	case cfg.HazardGravityWell:
		data.PullStrength = drawRange(rng, hc.PullStrength)
		data.TerminalRadius = data.Radius * hc.TerminalFraction
		// Wells hold their position; the pull is the threat.
	}

	factory.CreateHazard(e, c, data, pos, vel)
}

func retireHazards(e *ecs.ECS, c *cfg.Config, cameraX float64) {
	var retired []*donburi.Entry
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		center := components.Object.Get(entry).Center()
		if center.X < cameraX-c.Camera.RetireMargin {
			retired = append(retired, entry)
		}
	})
	for _, entry := range retired {
		factory.RetireHazard(e, entry)
	}
}

func drawRange(rng *rand.Rand, r cfg.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
