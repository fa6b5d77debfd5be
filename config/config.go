package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every world renderer draws on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// WorldConfig contains simulation-wide tuning values. All speeds are in
// pixels per second and all distances in world pixels; systems scale by
// DeltaTime when integrating.
type WorldConfig struct {
	// Fixed timestep, seconds per tick.
	DeltaTime float64

	// Physics
	Gravity            float64 // downward acceleration applied while airborne
	FrictionMultiplier float64 // scales tile friction into deceleration
	NegligibleVelocity float64 // speeds below this magnitude snap to zero
	MaxVelocity        float64 // hard cap on each velocity component

	// Entities below the region's kill depth are destroyed.
	KillDepth float64

	// Chunk streaming radius in Manhattan chunks.
	StreamRadius int

	// Simulation window half-extents around the focus point. Entities
	// outside it are frozen (or culled, when flagged).
	ProcessDistanceX float64
	ProcessDistanceY float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64
	MaxSpeed     float64
	JumpSpeed    float64
	WallJumpX    float64
	WallJumpY    float64

	// Digging
	DigRange       float64
	DigSurrounding bool

	// Combat
	Health int

	// Death
	DieDelaySeconds float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// CreatureTypeConfig contains configuration for specific creature types
type CreatureTypeConfig struct {
	Name        string
	Health      int
	PatrolSpeed float64
	PatrolRange float64
	MaxSpeed    float64

	CollisionWidth  float64
	CollisionHeight float64

	TintColor color.RGBA
}

// CreatureConfig contains creature system configuration
type CreatureConfig struct {
	Types map[string]CreatureTypeConfig
}

// HazardConfig contains hazard-tile damage tuning
type HazardConfig struct {
	InvulnSeconds float64 // grace period between hazard hits
	Knockback     float64 // speed imparted away from the tile
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the focus (0.0-1.0)
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DamageIntensity float64 // pixels
	DamageDuration  float64 // seconds
}

// PlatformConfig contains floating platform tuning
type PlatformConfig struct {
	TravelSeconds float64 // one-way tween duration
	Width         float64
	Height        float64
}

// ShipConfig contains the landed-ship prop tuning
type ShipConfig struct {
	// Local cell offsets of the hull tiles injected into the chunk grid,
	// relative to the ship's anchor cell, paired with their tile codes.
	HullCode byte
	HullSpan int // hull width in cells
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Creature CreatureConfig
var Hazard HazardConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Platform PlatformConfig
var Ship ShipConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Violet = color.RGBA{R: 170, G: 110, B: 255, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	World = WorldConfig{
		DeltaTime: 1.0 / 60.0,

		Gravity:            2000,
		FrictionMultiplier: 10000,
		NegligibleVelocity: 10,
		MaxVelocity:        5000,

		KillDepth: 50000,

		StreamRadius: 5,

		ProcessDistanceX: 900,
		ProcessDistanceY: 450,
	}

	Player = PlayerConfig{
		Acceleration: 3000,
		MaxSpeed:     420,
		JumpSpeed:    900,
		WallJumpX:    600,
		WallJumpY:    800,

		DigRange:       96,
		DigSurrounding: true,

		Health: 100,

		DieDelaySeconds: 1.0,

		CollisionWidth:  32,
		CollisionHeight: 44,
	}

	grubType := CreatureTypeConfig{
		Name:            "Grub",
		Health:          20,
		PatrolSpeed:     120,
		PatrolRange:     240,
		MaxSpeed:        400,
		CollisionWidth:  36,
		CollisionHeight: 28,
		TintColor:       White,
	}

	stalkerType := CreatureTypeConfig{
		Name:            "Stalker",
		Health:          40,
		PatrolSpeed:     200,
		PatrolRange:     360,
		MaxSpeed:        500,
		CollisionWidth:  40,
		CollisionHeight: 40,
		TintColor:       Violet,
	}

	Creature = CreatureConfig{
		Types: map[string]CreatureTypeConfig{
			"Grub":    grubType,
			"Stalker": stalkerType,
		},
	}

	Hazard = HazardConfig{
		InvulnSeconds: 0.5,
		Knockback:     600,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	ScreenShake = ScreenShakeConfig{
		DamageIntensity: 4.0,
		DamageDuration:  0.15,
	}

	Platform = PlatformConfig{
		TravelSeconds: 3.0,
		Width:         144,
		Height:        24,
	}

	Ship = ShipConfig{
		HullCode: 'H',
		HullSpan: 4,
	}
}
