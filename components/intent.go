package components

import (
	cfg "github.com/voidswing/voidswing/config"
	"github.com/yohamta/donburi"
)

// IntentQueueData buffers classified intents between ticks. The intent
// system drains it exactly once per tick, which decouples input capture
// from stepping and makes runs replayable.
type IntentQueueData struct {
	Pending []cfg.IntentID
}

func (q *IntentQueueData) Push(intents ...cfg.IntentID) {
	q.Pending = append(q.Pending, intents...)
}

// Drain returns the pending intents and empties the queue.
func (q *IntentQueueData) Drain() []cfg.IntentID {
	out := q.Pending
	q.Pending = nil
	return out
}

var IntentQueue = donburi.NewComponentType[IntentQueueData]()
