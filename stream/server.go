package stream

import (
	"log"
	"sync"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/messages"
	"github.com/voidswing/voidswing/netcomponents"
	"github.com/voidswing/voidswing/sim"
	"github.com/yohamta/donburi"
)

// Server runs a headless simulation and streams its snapshots to websocket
// clients. Every client receives the synced world; any client may pilot by
// sending intent frames (viewers simply never send one).
type Server struct {
	sim       *sim.Sim
	netWorld  donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	bodyEntity donburi.Entity
	runEntity  donburi.Entity
	// sim hazard ID -> mirror entity in the net world
	hazardEntities map[donburi.Entity]donburi.Entity

	mu sync.Mutex
}

// NewServer builds the simulation and the sync mirror. protocol.
// RegisterComponents must have been called first.
func NewServer(c *cfg.Config, seed int64, tickRate int) (*Server, error) {
	simulation, err := sim.New(c, seed)
	if err != nil {
		return nil, err
	}

	netWorld := donburi.NewWorld()
	srvsync.UseEsync(netWorld)

	s := &Server{
		sim:            simulation,
		netWorld:       netWorld,
		hazardEntities: make(map[donburi.Entity]donburi.Entity),
	}
	s.loop = NewGameLoop(s, tickRate)

	if err := s.createMirror(); err != nil {
		return nil, err
	}
	s.setupRouterCallbacks()

	return s, nil
}

// Start begins the loop and serves the websocket transport on port.
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop halts the tick loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) createMirror() error {
	s.bodyEntity = s.netWorld.Create(netcomponents.NetBody)
	if err := srvsync.NetworkSync(s.netWorld, &s.bodyEntity, netcomponents.NetBody); err != nil {
		return err
	}

	s.runEntity = s.netWorld.Create(netcomponents.NetRunState)
	return srvsync.NetworkSync(s.netWorld, &s.runEntity, netcomponents.NetRunState)
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[stream] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[stream] client %s disconnected with error: %v", client.Id(), err)
			return
		}
		log.Printf("[stream] client %s disconnected", client.Id())
	})

	router.On(func(client *router.NetworkClient, frame messages.IntentFrame) {
		s.onIntentFrame(frame)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[stream] client error: %v", err)
	})
}

func (s *Server) onIntentFrame(frame messages.IntentFrame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if frame.Reset {
		s.sim.Reset()
	}
	if frame.Start {
		s.sim.Start()
	}
	if len(frame.Intents) > 0 {
		s.sim.Queue(frame.Intents...)
	}
}

// step advances the simulation by dt and pushes the snapshot to clients.
func (s *Server) step(dt float64) {
	s.mu.Lock()
	s.sim.Step(dt)
	snap := s.sim.Snapshot()
	s.mirror(snap)
	s.mu.Unlock()

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[stream] sync error: %v", err)
	}
}

// mirror copies a snapshot into the net world entities.
func (s *Server) mirror(snap sim.Snapshot) {
	bodyEntry := s.netWorld.Entry(s.bodyEntity)
	netcomponents.NetBody.SetValue(bodyEntry, netcomponents.NetBodyData{
		X:            snap.Body.Pos.X,
		Y:            snap.Body.Pos.Y,
		VX:           snap.Body.Vel.X,
		VY:           snap.Body.Vel.Y,
		Attached:     snap.Body.Attached,
		AnchorX:      snap.Body.AnchorPos.X,
		AnchorY:      snap.Body.AnchorPos.Y,
		CoPilot:      int8(snap.Body.CoPilot),
		InvulnTicks:  int32(snap.Body.InvulnTicks),
		DashCooldown: int32(snap.Body.DashCooldown),
	})

	runEntry := s.netWorld.Entry(s.runEntity)
	netcomponents.NetRunState.SetValue(runEntry, netcomponents.NetRunStateData{
		State:    int8(snap.State),
		Cause:    int8(snap.Cause),
		Distance: snap.Distance,
		Score:    snap.Score,
		ZoneIdx:  int8(snap.ZoneIdx),
		CameraX:  snap.CameraX,
	})

	alive := make(map[donburi.Entity]bool, len(snap.Hazards))
	for _, h := range snap.Hazards {
		alive[h.ID] = true
		mirror, ok := s.hazardEntities[h.ID]
		if !ok {
			mirror = s.netWorld.Create(netcomponents.NetHazard)
			if err := srvsync.NetworkSync(s.netWorld, &mirror, netcomponents.NetHazard); err != nil {
				log.Printf("[stream] hazard sync setup failed: %v", err)
				continue
			}
			s.hazardEntities[h.ID] = mirror
		}
		netcomponents.NetHazard.SetValue(s.netWorld.Entry(mirror), netcomponents.NetHazardData{
			Kind:           int8(h.Kind),
			X:              h.Pos.X,
			Y:              h.Pos.Y,
			Radius:         h.Radius,
			Rotation:       h.Rotation,
			TrailLength:    h.TrailLength,
			TerminalRadius: h.TerminalRadius,
		})
	}
	for id, mirror := range s.hazardEntities {
		if alive[id] {
			continue
		}
		if s.netWorld.Valid(mirror) {
			s.netWorld.Remove(mirror)
		}
		delete(s.hazardEntities, id)
	}
}
