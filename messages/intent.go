package messages

import cfg "github.com/voidswing/voidswing/config"

// IntentFrame is sent from a piloting client each frame with its classified
// intents. The stream server queues the intents verbatim; precedence is
// resolved inside the simulation, once per tick.
type IntentFrame struct {
	Sequence  uint32         // incrementing frame ID
	Intents   []cfg.IntentID // classified intents since the last frame
	Start     bool           // request Menu/GameOver -> Playing
	Reset     bool           // request -> Menu
	Timestamp int64          // client timestamp (Unix ms)
}
