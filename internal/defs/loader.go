// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
)

type enemyFile struct {
	Enemy []EnemyDefinition `toml:"enemy"`
}

// LoadEnemyDefinitions reads [[enemy]] tables from a TOML file and overlays
// them on the built-in library. Each table must carry a known name.
func LoadEnemyDefinitions(path string) (EnemyLibrary, error) {
	var file enemyFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := mergeDefinitions(DefaultEnemyLibrary(), file.Enemy)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d enemy definitions from %s", len(file.Enemy), path)
	return lib, nil
}

// DecodeEnemyDefinitions is LoadEnemyDefinitions for in-memory TOML.
func DecodeEnemyDefinitions(data string) (EnemyLibrary, error) {
	var file enemyFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	return mergeDefinitions(DefaultEnemyLibrary(), file.Enemy)
}

func mergeDefinitions(lib EnemyLibrary, overrides []EnemyDefinition) (EnemyLibrary, error) {
	for _, def := range overrides {
		kind, err := ParseEnemyKind(def.Name)
		if err != nil {
			return nil, err
		}
		base := lib[kind]
		if def.Health > 0 {
			base.Health = def.Health
		}
		if def.Speed > 0 {
			base.Speed = def.Speed
		}
		if def.SpawnBaseTime > 0 {
			base.SpawnBaseTime = def.SpawnBaseTime
		}
		if def.Radius > 0 {
			base.Radius = def.Radius
		}
		if def.Shape != "" {
			base.Shape = def.Shape
		}
		if def.ShieldHits > 0 {
			base.ShieldHits = def.ShieldHits
		}
		if def.StopRadiusMin > 0 && def.StopRadiusMax >= def.StopRadiusMin {
			base.StopRadiusMin = def.StopRadiusMin
			base.StopRadiusMax = def.StopRadiusMax
		}
		lib[kind] = base
	}
	return lib, nil
}
