// internal/system/spatial.go
package system

import (
	"slices"

	"github.com/solarlune/resolv"

	"go-porcle/internal/entity"
	"go-porcle/internal/types"
	"go-porcle/pkg/geom"
)

const (
	spatialSpaceSize = 4096
	spatialCellSize  = 64
	tagEnemy         = "enemy"
	tagProbe         = "probe"
)

// SpatialIndex is the enemy broadphase. Positions are shifted by half the
// space size because resolv cells start at zero and the world is centred on
// the core.
type SpatialIndex struct {
	ecs     *entity.ECS
	space   *resolv.Space
	objects map[types.EntityID]*resolv.Object
	probe   *resolv.Object
}

func NewSpatialIndex(ecs *entity.ECS) *SpatialIndex {
	space := resolv.NewSpace(spatialSpaceSize, spatialSpaceSize, spatialCellSize, spatialCellSize)
	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)
	return &SpatialIndex{
		ecs:     ecs,
		space:   space,
		objects: make(map[types.EntityID]*resolv.Object),
		probe:   probe,
	}
}

func toSpace(v float64) float64 {
	return v + spatialSpaceSize/2
}

// Sync mirrors live enemies into the space and drops stale objects.
func (s *SpatialIndex) Sync() {
	for id, obj := range s.objects {
		if _, alive := s.ecs.Enemies[id]; !alive {
			s.space.Remove(obj)
			delete(s.objects, id)
		}
	}
	for id, enemy := range s.ecs.Enemies {
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		x, y := toSpace(t.Pos.X-enemy.Radius), toSpace(t.Pos.Y-enemy.Radius)
		size := enemy.Radius * 2
		obj, ok := s.objects[id]
		if !ok {
			obj = resolv.NewObject(x, y, size, size, tagEnemy)
			obj.Data = id
			s.space.Add(obj)
			s.objects[id] = obj
			continue
		}
		obj.X, obj.Y, obj.W, obj.H = x, y, size, size
		obj.Update()
	}
}

// Remove drops an enemy immediately, before the next Sync.
func (s *SpatialIndex) Remove(id types.EntityID) {
	if obj, ok := s.objects[id]; ok {
		s.space.Remove(obj)
		delete(s.objects, id)
	}
}

// QueryBox returns the enemies whose cells overlap the box, sorted by id.
// Candidates still need a narrowphase test.
func (s *SpatialIndex) QueryBox(min, max geom.Vec2) []types.EntityID {
	s.probe.X, s.probe.Y = toSpace(min.X), toSpace(min.Y)
	s.probe.W, s.probe.H = max.X-min.X, max.Y-min.Y
	if s.probe.W < 1 {
		s.probe.W = 1
	}
	if s.probe.H < 1 {
		s.probe.H = 1
	}
	s.probe.Update()

	collision := s.probe.Check(0, 0, tagEnemy)
	if collision == nil {
		return nil
	}
	ids := make([]types.EntityID, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		id, ok := obj.Data.(types.EntityID)
		if !ok {
			continue
		}
		if _, alive := s.ecs.Enemies[id]; alive {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// QuerySweep returns candidates for a circle of radius swept from origin
// along dir for distance.
func (s *SpatialIndex) QuerySweep(origin, dir geom.Vec2, distance, radius float64) []types.EntityID {
	end := origin.Add(dir.Scale(distance))
	min := geom.V(minf(origin.X, end.X)-radius, minf(origin.Y, end.Y)-radius)
	max := geom.V(maxf(origin.X, end.X)+radius, maxf(origin.Y, end.Y)+radius)
	return s.QueryBox(min, max)
}

// QueryCircle returns candidates overlapping the square around a circle.
func (s *SpatialIndex) QueryCircle(center geom.Vec2, radius float64) []types.EntityID {
	return s.QueryBox(center.Sub(geom.V(radius, radius)), center.Add(geom.V(radius, radius)))
}

// Len is the number of indexed enemies.
func (s *SpatialIndex) Len() int {
	return len(s.objects)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
