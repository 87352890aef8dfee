package stream

import (
	"log"
	"time"
)

// GameLoop drives the simulation and sync at a fixed wall-clock rate. The
// core itself never reads the clock; the loop feeds it the elapsed delta.
type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[stream] loop started at %d ticks/second", g.tickRate)

	dt := 1.0 / float64(g.tickRate)
	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[stream] loop stopped")
			return
		case <-ticker.C:
			g.server.step(dt)
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
