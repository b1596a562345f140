// Package leveldata parses TMX level layouts into world-space rectangles.
// It has no dependencies on ebitengine or donburi, pure data only.
package leveldata

import "github.com/automoto/buildyguy/shared/gamemath"

// Object group and tile layer names read from a TMX file.
const (
	GroupPlatforms   = "Platforms"
	GroupFloating    = "Floating"
	GroupHazards     = "Hazards"
	GroupPlayerSpawn = "PlayerSpawn"
	LayerSolid       = "solid"
)

// Layout is the starting state of a run. Coordinates are world units: the map
// height is scaled to 1.
type Layout struct {
	Platforms []gamemath.Rect
	Floating  []gamemath.Rect
	Hazards   []gamemath.Rect

	Spawn    SpawnPoint
	HasSpawn bool

	// Map size in world units
	Width, Height float64
}

// SpawnPoint is the top-left corner of the player at the start of a run.
type SpawnPoint struct {
	X, Y float64
}
