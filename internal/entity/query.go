// internal/entity/query.go
package entity

import (
	"slices"

	"go-porcle/internal/types"
)

// SortedIDs returns the keys of a component map in ascending order. Systems
// that raise events or draw random numbers iterate this way so a seeded
// session replays identically.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
