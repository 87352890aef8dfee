package protocol

import (
	"github.com/leap-fish/necs/esync"
	"github.com/voidswing/voidswing/netcomponents"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetBody     uint = 10
	SyncIDNetHazard   uint = 11
	SyncIDNetRunState uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetBody   uint8 = 10
	InterpIDNetHazard uint8 = 11
)

// RegisterComponents registers the snapshot mirror components with necs for
// serialization. Both the stream server and any viewer client must call it
// before network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetBody,
		netcomponents.NetBodyData{},
		netcomponents.NetBody,
		esync.WithInterpFn(InterpIDNetBody, netcomponents.LerpNetBody),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetHazard,
		netcomponents.NetHazardData{},
		netcomponents.NetHazard,
		esync.WithInterpFn(InterpIDNetHazard, netcomponents.LerpNetHazard),
	); err != nil {
		return err
	}

	// Run state: no interpolation (discrete transitions)
	return esync.RegisterComponent(
		SyncIDNetRunState,
		netcomponents.NetRunStateData{},
		netcomponents.NetRunState,
	)
}
