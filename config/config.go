package config

import "image/color"

// ScreenConfig contains window and frame-rate configuration values
type ScreenConfig struct {
	Width  int
	Height int
	TPS    int // updates per second
}

// PhysicsConfig contains the tunables of one physics simulation
type PhysicsConfig struct {
	// Downward acceleration in world units per second squared
	Gravity float64

	// Log degenerate side classifications after each step
	DebugCollisions bool

	BroadPhase BroadPhaseConfig
}

// BroadPhaseConfig describes the optional grid used to prefilter collision pairs.
// Bodies whose swept bounds leave the region are tested against every other body.
type BroadPhaseConfig struct {
	Enabled bool

	// World-space region covered by the grid
	MinX, MinY    float64
	Width, Height float64

	// Cell size in world units
	CellSize float64
}

// PlatformHeight selects one of the fixed heights platforms are spawned at
type PlatformHeight int

const (
	PlatformBottom PlatformHeight = iota
	PlatformMiddle
	PlatformTop
)

// RunnerConfig contains the side-scrolling game rules. All distances are in
// world units where the screen is 1 unit tall.
type RunnerConfig struct {
	// Fixed simulation step in seconds
	TimeStep float64

	// Screen width in world units
	AspectRatio float64

	// Player movement
	JumpSpeed    float64 // negative: up
	MoveSpeed    float64
	MaxFallSpeed float64
	CoyoteTime   float64 // seconds after leaving ground a jump still succeeds

	// Camera scroll speed
	CameraSpeed float64

	// Entities further than this outside the view are removed
	CullMargin float64

	// Dimensions
	PlayerWidth       float64
	PlayerHeight      float64
	PlayerSpawnY      float64
	PlatformWidth     float64
	PlatformThickness float64
	PlatformHeights   [3]float64 // indexed by PlatformHeight

	// Wall pairs
	WallWidth         float64
	WallGap           float64
	WallSegmentLength float64
	WallSpacingMin    float64
	WallSpacingMax    float64
	WallHeightMin     float64
	WallHeightMax     float64

	// Floating platforms
	FloatingRange    float64 // vertical travel
	FloatingDuration float64 // seconds per leg
}

// Palette holds the colors frontends draw entities with
type Palette struct {
	Background color.RGBA
	Player     color.RGBA
	Platform   color.RGBA
	Floating   color.RGBA
	Wall       color.RGBA
	HUDText    color.RGBA
}

type Config struct {
	Screen  ScreenConfig
	Physics PhysicsConfig
	Runner  RunnerConfig
	Palette Palette
}

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SkyBlue   = color.RGBA{R: 200, G: 200, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkGreen = color.RGBA{R: 40, G: 120, B: 60, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	DarkRed   = color.RGBA{R: 140, G: 30, B: 30, A: 255}
)

// Default returns a fully populated configuration. Each call returns a fresh
// value so independent simulations never share tunables.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			TPS:    60,
		},

		Physics: PhysicsConfig{
			Gravity: 3.5,

			BroadPhase: BroadPhaseConfig{
				Enabled:  false,
				MinX:     -2,
				MinY:     -2,
				Width:    64,
				Height:   5,
				CellSize: 0.25,
			},
		},

		Runner: RunnerConfig{
			TimeStep:    1.0 / 60.0,
			AspectRatio: 800.0 / 600.0,

			// Movement
			JumpSpeed:    -1.5,
			MoveSpeed:    0.8,
			MaxFallSpeed: 3.0,
			CoyoteTime:   0.1,

			CameraSpeed: 0.4,
			CullMargin:  0.25,

			// Dimensions
			PlayerWidth:       0.05,
			PlayerHeight:      0.1,
			PlayerSpawnY:      0.4,
			PlatformWidth:     1.0,
			PlatformThickness: 0.03,
			PlatformHeights:   [3]float64{0.85, 0.65, 0.45},

			// Wall pairs
			WallWidth:         0.1,
			WallGap:           0.3,
			WallSegmentLength: 1000,
			WallSpacingMin:    0.35,
			WallSpacingMax:    1.0,
			WallHeightMin:     0.1,
			WallHeightMax:     0.6,

			// Floating platforms
			FloatingRange:    0.2,
			FloatingDuration: 2,
		},

		Palette: Palette{
			Background: SkyBlue,
			Player:     Orange,
			Platform:   DarkGreen,
			Floating:   color.RGBA{R: 60, G: 160, B: 90, A: 255},
			Wall:       DarkRed,
			HUDText:    Black,
		},
	}
}

// PlatformY returns the top edge of a platform spawned at height h.
func (r RunnerConfig) PlatformY(h PlatformHeight) float64 {
	if h < PlatformBottom || h > PlatformTop {
		h = PlatformMiddle
	}
	return r.PlatformHeights[h]
}
