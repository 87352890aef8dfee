package config

// IntentID is a classified input intent. Raw input capture and touch/mouse
// normalization happen outside the core; the simulation only consumes these.
type IntentID int8

const (
	IntentGrappleStart IntentID = iota
	IntentGrappleHold
	IntentRelease
	IntentDash

	IntentCount
)

func (i IntentID) String() string {
	switch i {
	case IntentGrappleStart:
		return "grapple-start"
	case IntentGrappleHold:
		return "grapple-hold"
	case IntentRelease:
		return "release"
	case IntentDash:
		return "dash"
	}
	return "unknown"
}
