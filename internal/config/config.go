package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 1024
	// GameSize is the side of the square playfield in world units. The world
	// origin is the core, y points up.
	GameSize = 1024.0

	TPS          = 60
	FixedDelta   = 1.0 / TPS
	MaxDeltaTime = 0.06

	// AimDeadzone is the cursor distance (world units) under which mouse aim is smoothed.
	AimDeadzone = 70.0

	TraumaDecay  = 1.6
	MaxShake     = 14.0
	BloomBase    = 0.15
	// At full ball speed, shake lasts this much longer and hits this much harder.
	ShakeSpeedLinger = 0.5
	ShakeSpeedBoost  = 0.5
	ParticleCap  = 512
	HUDMargin    = 16
	HUDBarWidth  = 180
	HUDBarHeight = 10
)

var (
	BackgroundColor  = color.RGBA{14, 14, 22, 255}
	WallColor        = color.RGBA{60, 64, 90, 255}
	CoreColor        = color.RGBA{226, 232, 240, 255}
	GearActiveColor  = color.RGBA{148, 163, 184, 255}
	GearDisableColor = color.RGBA{51, 65, 85, 255}
	PaddleColor      = color.RGBA{56, 189, 248, 255}
	CaptureColor     = color.RGBA{52, 211, 153, 255}
	CapturedColor    = color.RGBA{250, 204, 21, 255}
	BallSlowColor    = color.RGBA{248, 113, 113, 255}
	BallFastColor    = color.RGBA{252, 211, 77, 255}
	EnemyColor       = color.RGBA{248, 113, 113, 255}
	ShieldColor      = color.RGBA{96, 165, 250, 255}
	EnemyFlashColor  = color.RGBA{255, 255, 255, 255}
	DebrisColor      = color.RGBA{100, 100, 110, 255}
	BulletColor      = color.RGBA{253, 224, 71, 255}
	EnemyBulletColor = color.RGBA{244, 63, 94, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	AmmoBarColor     = color.RGBA{250, 204, 21, 220}
	AmmoBarBackColor = color.RGBA{40, 40, 55, 220}
)
