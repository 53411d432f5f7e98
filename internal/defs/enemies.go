// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	Kind          EnemyKind `toml:"-"`
	Name          string    `toml:"name"`
	Health        int       `toml:"health"`
	Speed         float64   `toml:"speed"`
	SpawnBaseTime float64   `toml:"spawn_base_time"`
	Radius        float64   `toml:"radius"`
	Shape         Shape     `toml:"shape"`
	// ShieldHits is how many hits the shield absorbs before health takes damage.
	ShieldHits int `toml:"shield_hits"`
	// Ranged enemies stop near the core and fire at it.
	Ranged        bool    `toml:"ranged"`
	StopRadiusMin float64 `toml:"stop_radius_min"`
	StopRadiusMax float64 `toml:"stop_radius_max"`
}

// EnemyLibrary is the set of definitions, keyed by kind.
type EnemyLibrary map[EnemyKind]EnemyDefinition

// DefaultEnemyLibrary returns the built-in definitions.
func DefaultEnemyLibrary() EnemyLibrary {
	return EnemyLibrary{
		KindCrawler: {
			Kind:          KindCrawler,
			Name:          "crawler",
			Health:        1,
			Speed:         110,
			SpawnBaseTime: 2.0,
			Radius:        26,
			Shape:         ShapeTriangle,
		},
		KindShielded: {
			Kind:          KindShielded,
			Name:          "shielded",
			Health:        1,
			Speed:         70,
			SpawnBaseTime: 3.0,
			Radius:        30,
			Shape:         ShapeDiamond,
			ShieldHits:    1,
		},
		KindTank: {
			Kind:          KindTank,
			Name:          "tank",
			Health:        3,
			Speed:         40,
			SpawnBaseTime: 4.0,
			Radius:        40,
			Shape:         ShapeSquare,
		},
		KindTurret: {
			Kind:          KindTurret,
			Name:          "turret",
			Health:        2,
			Speed:         90,
			SpawnBaseTime: 5.0,
			Radius:        30,
			Shape:         ShapeHexagon,
			Ranged:        true,
			StopRadiusMin: 380,
			StopRadiusMax: 460,
		},
	}
}

// Get returns the definition for kind, falling back to the built-in one.
func (l EnemyLibrary) Get(kind EnemyKind) (EnemyDefinition, bool) {
	def, ok := l[kind]
	return def, ok
}
