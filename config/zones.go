package config

import "fmt"

// ZoneConfig is one difficulty band of the world. A zone covers distances
// [Start, nextZone.Start); the last zone has an unbounded tail. Zones are
// static configuration and never mutated at runtime.
type ZoneConfig struct {
	Name        string
	Start       float64      // distance the zone begins at
	Kinds       []HazardKind // hazard whitelist for this zone
	DensityMult float64      // divides the base spacing; strictly increases
	Speed       Range        // hazard scroll speed per tick
	BaseSpacing float64      // distance between spawns of one kind, pre-density
	SpacingJit  float64      // +/- jitter applied to each spawn interval
}

// Allows reports whether the zone's whitelist includes kind.
func (z ZoneConfig) Allows(kind HazardKind) bool {
	for _, k := range z.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// DefaultZones is the canonical four-band table. Gravity wells exist only
// from the Event Horizon onward.
func DefaultZones() []ZoneConfig {
	return []ZoneConfig{
		{
			Name:        "Debris Field",
			Start:       0,
			Kinds:       []HazardKind{HazardAsteroid},
			DensityMult: 1.0,
			Speed:       Range{0.5, 1.5},
			BaseSpacing: 420.0,
			SpacingJit:  80.0,
		},
		{
			Name:        "Comet Belt",
			Start:       1500,
			Kinds:       []HazardKind{HazardAsteroid, HazardComet},
			DensityMult: 1.25,
			Speed:       Range{1.0, 2.5},
			BaseSpacing: 420.0,
			SpacingJit:  80.0,
		},
		{
			Name:        "Star Stream",
			Start:       3500,
			Kinds:       []HazardKind{HazardAsteroid, HazardComet, HazardShootingStar},
			DensityMult: 1.6,
			Speed:       Range{1.5, 3.5},
			BaseSpacing: 420.0,
			SpacingJit:  80.0,
		},
		{
			Name:        "Event Horizon",
			Start:       6000,
			Kinds:       []HazardKind{HazardAsteroid, HazardComet, HazardShootingStar, HazardGravityWell},
			DensityMult: 2.0,
			Speed:       Range{2.0, 4.5},
			BaseSpacing: 420.0,
			SpacingJit:  80.0,
		},
	}
}

// ZoneIndexFor returns the index of the zone containing distance. Distances
// are clamped to zero, so index 0 covers any pre-spawn regression.
func ZoneIndexFor(zones []ZoneConfig, distance float64) int {
	idx := 0
	for i, z := range zones {
		if distance >= z.Start {
			idx = i
		}
	}
	return idx
}

// validateZones enforces the band invariants: bands start at zero, are
// disjoint and ordered, and difficulty strictly escalates. A kind that
// appears in one zone must stay whitelisted in every later zone, so a
// hazard's first zone is its permanent threshold.
func validateZones(zones []ZoneConfig) error {
	if len(zones) == 0 {
		return fmt.Errorf("at least one zone is required")
	}
	if zones[0].Start != 0 {
		return fmt.Errorf("first zone must start at 0, got %v", zones[0].Start)
	}
	for i, z := range zones {
		if len(z.Kinds) == 0 {
			return fmt.Errorf("zone %q has an empty hazard whitelist", z.Name)
		}
		if z.DensityMult <= 0 || z.BaseSpacing <= 0 {
			return fmt.Errorf("zone %q has non-positive density or spacing", z.Name)
		}
		if z.Speed.Min <= 0 || z.Speed.Max < z.Speed.Min {
			return fmt.Errorf("zone %q speed range invalid: %+v", z.Name, z.Speed)
		}
		if i == 0 {
			continue
		}
		prev := zones[i-1]
		if z.Start <= prev.Start {
			return fmt.Errorf("zone %q start %v does not increase past %q", z.Name, z.Start, prev.Name)
		}
		if z.DensityMult <= prev.DensityMult {
			return fmt.Errorf("zone %q density must exceed %q", z.Name, prev.Name)
		}
		if z.Speed.Max <= prev.Speed.Max {
			return fmt.Errorf("zone %q max speed must exceed %q", z.Name, prev.Name)
		}
		for _, k := range prev.Kinds {
			if !z.Allows(k) {
				return fmt.Errorf("zone %q drops hazard kind %v allowed in %q", z.Name, k, prev.Name)
			}
		}
	}
	return nil
}
