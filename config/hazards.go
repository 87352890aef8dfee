package config

// HazardKind tags the hazard variant. All kinds share position, velocity and
// radius; kind-specific behavior is dispatched on this tag.
type HazardKind int8

const (
	HazardAsteroid HazardKind = iota
	HazardComet
	HazardShootingStar
	HazardGravityWell

	HazardKindCount
)

func (k HazardKind) String() string {
	switch k {
	case HazardAsteroid:
		return "asteroid"
	case HazardComet:
		return "comet"
	case HazardShootingStar:
		return "shooting-star"
	case HazardGravityWell:
		return "gravity-well"
	}
	return "unknown"
}

// Range is a closed numeric range hazards draw parameters from.
type Range struct {
	Min, Max float64
}

// HazardTypeConfig contains per-kind spawn parameters. Speeds come from the
// zone table; these are the kind-intrinsic ranges.
type HazardTypeConfig struct {
	Radius Range

	// Asteroid
	RotationRate Range // radians per tick
	BobAmplitude float64
	BobDuration  float64 // seconds for one half bob

	// Comet / shooting star
	TrailLength Range

	// Gravity well
	PullStrength     Range   // numerator of strength/d^2
	TerminalFraction float64 // terminal radius as a fraction of radius
}
