package systems

import (
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/yohamta/donburi/ecs"
)

// WithPlayingCheck wraps a system so it only executes while a run is in the
// Playing state. Menu and GameOver freeze the whole pipeline; a fatal
// collision mid-tick also stops the systems queued after it.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Run.First(e.World)
		if !ok || components.Run.Get(entry).State != cfg.RunPlaying {
			return
		}
		system(e)
	}
}

// EndRun transitions Playing to GameOver with the given terminal cause.
func EndRun(e *ecs.ECS, cause cfg.TerminalCause) {
	run := runState(e)
	if run.State != cfg.RunPlaying {
		return
	}
	run.State = cfg.RunGameOver
	run.Cause = cause
}

func runState(e *ecs.ECS) *components.RunData {
	entry, _ := components.Run.First(e.World)
	return components.Run.Get(entry)
}

func settings(e *ecs.ECS) *cfg.Config {
	entry, _ := components.Settings.First(e.World)
	return components.Settings.Get(entry).Config
}
