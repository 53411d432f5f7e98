package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidTuning is returned when a tuning file contains unknown keys or out-of-range values.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. Defaults come from DefaultTuning and
// can be overridden by a TOML file.
type Tuning struct {
	Motion MotionTuning `toml:"motion"`
	Paddle PaddleTuning `toml:"paddle"`
	Ball   BallTuning   `toml:"ball"`
	Gun    GunTuning    `toml:"gun"`
	Enemy  EnemyTuning  `toml:"enemy"`
	Core   CoreTuning   `toml:"core"`
	Feel   FeelTuning   `toml:"feel"`
}

type MotionTuning struct {
	ImpulseRate       float64 `toml:"impulse_rate"`
	OutOfBoundsMargin float64 `toml:"out_of_bounds_margin"`
}

type PaddleTuning struct {
	OrbitRadius          float64 `toml:"orbit_radius"`
	CapsuleRadius        float64 `toml:"capsule_radius"`
	CapsuleLength        float64 `toml:"capsule_length"`
	MaxReflectAngleDeg   float64 `toml:"max_reflect_angle_deg"`
	ReflectCurve         float64 `toml:"reflect_curve"`
	HitGrace             float64 `toml:"hit_grace"`
	MinRevolutionSeconds float64 `toml:"min_revolution_seconds"`
	RecallDegrees        float64 `toml:"recall_degrees"`
	RefillDegrees        float64 `toml:"refill_degrees"`
	StallThreshold       float64 `toml:"stall_threshold"`
	StallTimeout         float64 `toml:"stall_timeout"`
	ModeCooldown         float64 `toml:"mode_cooldown"`
	AmmoCapacity         int     `toml:"ammo_capacity"`
	AmmoStart            int     `toml:"ammo_start"`
	AmmoRegenInterval    float64 `toml:"ammo_regen_interval"`
	AmmoRegenDelay       float64 `toml:"ammo_regen_delay"`
	RefillMultiplier     int     `toml:"refill_multiplier"`
}

type BallTuning struct {
	Radius             float64 `toml:"radius"`
	BaseSpeed          float64 `toml:"base_speed"`
	MaxSpeedMult       float64 `toml:"max_speed_mult"`
	ReflectSpeedMult   float64 `toml:"reflect_speed_mult"`
	WallSpeedMult      float64 `toml:"wall_speed_mult"`
	WallGrace          float64 `toml:"wall_grace"`
	SweepMargin        float64 `toml:"sweep_margin"`
	OutsideDamping     float64 `toml:"outside_damping"`
	HomingMaxDistance  float64 `toml:"homing_max_distance"`
	HomingMaxFactor    float64 `toml:"homing_max_factor"`
	HomingFactorDecay  float64 `toml:"homing_factor_decay"`
	HomingMaxAngleDeg  float64 `toml:"homing_max_angle_deg"`
	HomingSpeedMaxMult float64 `toml:"homing_speed_max_mult"`
	InsideOrbitFactor  float64 `toml:"inside_orbit_factor"`
	RetargetRadius     float64 `toml:"retarget_radius"`
	RetargetAhead      float64 `toml:"retarget_ahead"`
	EnemyKnockback     float64 `toml:"enemy_knockback"`
}

type GunTuning struct {
	ProjectileSpeed   float64 `toml:"projectile_speed"`
	ProjectileDamping float64 `toml:"projectile_damping"`
	ProjectileWidth   float64 `toml:"projectile_width"`
	ProjectileHeight  float64 `toml:"projectile_height"`
	SpreadDeg         float64 `toml:"spread_deg"`
	Reload            float64 `toml:"reload"`
	NoAmmoWarning     float64 `toml:"no_ammo_warning"`
	MuzzleOffset      float64 `toml:"muzzle_offset"`
	Knockback         float64 `toml:"knockback"`
}

type EnemyTuning struct {
	StopBand            float64 `toml:"stop_band"`
	StopCurve           float64 `toml:"stop_curve"`
	BarrelEpsilon       float64 `toml:"barrel_epsilon"`
	SpawnMargin         float64 `toml:"spawn_margin"`
	TurretConeDeg       float64 `toml:"turret_cone_deg"`
	TurretConeCenterDeg float64 `toml:"turret_cone_center_deg"`
	ProjectileSpeed     float64 `toml:"projectile_speed"`
	ProjectileSize      float64 `toml:"projectile_size"`
	ProjectileSpreadDeg float64 `toml:"projectile_spread_deg"`
	BarrelReload        float64 `toml:"barrel_reload"`
	DebrisDamping       float64 `toml:"debris_damping"`
	ShrinkSeconds       float64 `toml:"shrink_seconds"`
	FlashSeconds        float64 `toml:"flash_seconds"`
	SpeedRangeMult      float64 `toml:"speed_range_mult"`
}

type CoreTuning struct {
	Radius         float64 `toml:"radius"`
	Gears          int     `toml:"gears"`
	GearRingRadius float64 `toml:"gear_ring_radius"`
	GameOverDelay  float64 `toml:"game_over_delay"`
	FirstBallDelay float64 `toml:"first_ball_delay"`
}

type FeelTuning struct {
	SmoothingRate  float64 `toml:"smoothing_rate"`
	AmmoBonusSteps int     `toml:"ammo_bonus_steps"`
}

// DefaultTuning returns the shipped gameplay constants.
func DefaultTuning() *Tuning {
	return &Tuning{
		Motion: MotionTuning{
			ImpulseRate:       6.5,
			OutOfBoundsMargin: 150,
		},
		Paddle: PaddleTuning{
			OrbitRadius:          240,
			CapsuleRadius:        23,
			CapsuleLength:        130,
			MaxReflectAngleDeg:   20,
			ReflectCurve:         1.5,
			HitGrace:             0.2,
			MinRevolutionSeconds: 0.45,
			RecallDegrees:        720,
			RefillDegrees:        360,
			StallThreshold:       3,
			StallTimeout:         0.5,
			ModeCooldown:         0.15,
			AmmoCapacity:         55,
			AmmoStart:            10,
			AmmoRegenInterval:    0.75,
			AmmoRegenDelay:       1.2,
			RefillMultiplier:     4,
		},
		Ball: BallTuning{
			Radius:             28,
			BaseSpeed:          250,
			MaxSpeedMult:       5,
			ReflectSpeedMult:   1.225,
			WallSpeedMult:      0.9,
			WallGrace:          0.1,
			SweepMargin:        1.05,
			OutsideDamping:     0.125,
			HomingMaxDistance:  300,
			HomingMaxFactor:    80,
			HomingFactorDecay:  2,
			HomingMaxAngleDeg:  70,
			HomingSpeedMaxMult: 2,
			InsideOrbitFactor:  1.1,
			RetargetRadius:     170,
			RetargetAhead:      150,
			EnemyKnockback:     220,
		},
		Gun: GunTuning{
			ProjectileSpeed:   1600,
			ProjectileDamping: 0.8,
			ProjectileWidth:   16,
			ProjectileHeight:  30,
			SpreadDeg:         3,
			Reload:            0.09,
			NoAmmoWarning:     0.5,
			MuzzleOffset:      40,
			Knockback:         120,
		},
		Enemy: EnemyTuning{
			StopBand:            50,
			StopCurve:           1.7,
			BarrelEpsilon:       0.01,
			SpawnMargin:         60,
			TurretConeDeg:       20,
			TurretConeCenterDeg: 45,
			ProjectileSpeed:     320,
			ProjectileSize:      12,
			ProjectileSpreadDeg: 8,
			BarrelReload:        2.2,
			DebrisDamping:       6,
			ShrinkSeconds:       0.3,
			FlashSeconds:        0.12,
			SpeedRangeMult:      1.5,
		},
		Core: CoreTuning{
			Radius:         90,
			Gears:          6,
			GearRingRadius: 71,
			GameOverDelay:  0.6,
			FirstBallDelay: 0.3,
		},
		Feel: FeelTuning{
			SmoothingRate:  4,
			AmmoBonusSteps: 4,
		},
	}
}

// LoadTuning decodes a TOML file on top of the defaults.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	md, err := toml.DecodeFile(path, t)
	if err != nil {
		return nil, fmt.Errorf("decode tuning file %s: %w", path, err)
	}
	return t, finishDecode(t, md)
}

// DecodeTuning decodes TOML text on top of the defaults.
func DecodeTuning(data string) (*Tuning, error) {
	t := DefaultTuning()
	md, err := toml.Decode(data, t)
	if err != nil {
		return nil, fmt.Errorf("decode tuning: %w", err)
	}
	return t, finishDecode(t, md)
}

func finishDecode(t *Tuning, md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown keys %v", ErrInvalidTuning, undecoded)
	}
	return t.Validate()
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	switch {
	case t.Ball.BaseSpeed <= 0:
		return fmt.Errorf("%w: ball.base_speed must be positive", ErrInvalidTuning)
	case t.Ball.MaxSpeedMult < 1:
		return fmt.Errorf("%w: ball.max_speed_mult must be >= 1", ErrInvalidTuning)
	case t.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball.radius must be positive", ErrInvalidTuning)
	case t.Paddle.AmmoCapacity <= 0:
		return fmt.Errorf("%w: paddle.ammo_capacity must be positive", ErrInvalidTuning)
	case t.Paddle.AmmoStart < 0 || t.Paddle.AmmoStart > t.Paddle.AmmoCapacity:
		return fmt.Errorf("%w: paddle.ammo_start must be within [0, ammo_capacity]", ErrInvalidTuning)
	case t.Paddle.MinRevolutionSeconds <= 0:
		return fmt.Errorf("%w: paddle.min_revolution_seconds must be positive", ErrInvalidTuning)
	case t.Core.Gears <= 0:
		return fmt.Errorf("%w: core.gears must be positive", ErrInvalidTuning)
	case t.Enemy.StopBand <= 0:
		return fmt.Errorf("%w: enemy.stop_band must be positive", ErrInvalidTuning)
	case t.Motion.ImpulseRate < 0:
		return fmt.Errorf("%w: motion.impulse_rate must not be negative", ErrInvalidTuning)
	}
	return nil
}

// BallMaxSpeed is the upper clamp for a reflected ball.
func (t *Tuning) BallMaxSpeed() float64 {
	return t.Ball.BaseSpeed * t.Ball.MaxSpeedMult
}

// InsideOrbitRadius is the distance from the core under which a ball counts as inside the paddle orbit.
func (t *Tuning) InsideOrbitRadius() float64 {
	return t.Paddle.OrbitRadius * t.Ball.InsideOrbitFactor
}
