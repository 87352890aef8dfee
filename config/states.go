package config

// RunStateID identifies the overall run state machine state.
type RunStateID int8

const (
	RunMenu RunStateID = iota
	RunPlaying
	RunGameOver
)

func (s RunStateID) String() string {
	switch s {
	case RunMenu:
		return "menu"
	case RunPlaying:
		return "playing"
	case RunGameOver:
		return "gameover"
	}
	return "unknown"
}

// TerminalCause records why a run ended. CauseNone while the run is alive.
type TerminalCause int8

const (
	CauseNone TerminalCause = iota
	// CauseHazardCollision: hit a hard hazard with no co-pilot and no
	// invulnerability left.
	CauseHazardCollision
	// CauseWellTerminal: crossed a gravity well's terminal radius.
	// Spaghettification ignores the shield entirely.
	CauseWellTerminal
)

func (c TerminalCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseHazardCollision:
		return "hazard-collision"
	case CauseWellTerminal:
		return "well-terminal"
	}
	return "unknown"
}
