package systems

import (
	"math"

	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances the scroll offset with the body's forward progress.
// The offset is monotonic: swinging backward never rewinds it, so distance,
// score and zone index only ever grow.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	bodyEntry, ok := tags.Body.First(e.World)
	if !ok {
		return
	}
	bodyX := components.Object.Get(bodyEntry).Center().X
	if bodyX > camera.Position.X {
		camera.Position.X = bodyX
	}

	c := settings(e)
	run := runState(e)
	run.Distance = camera.Position.X - c.Body.SpawnX
	run.Score = int64(math.Floor(run.Distance * c.Score.PointsPerUnit))
	run.ZoneIdx = cfg.ZoneIndexFor(c.Zones, run.Distance)
	run.Tick++
}
