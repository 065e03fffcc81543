package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/neonmaze/pkg/math"
)

// maxSpawnAttempts bounds rejection sampling per pickup.
const maxSpawnAttempts = 200

// SpawnPickups places up to n pickups at random free positions and returns
// how many were placed. A candidate is rejected when it touches a wall, lies
// within SpawnClearance of the player spawn, or overlaps another live pickup.
func (w *World) SpawnPickups(n int) int {
	placed := 0
	for i := 0; i < n; i++ {
		pos, ok := w.samplePickupPosition()
		if !ok {
			w.log.Warn("pickup skipped, no free position",
				zap.Int("index", i),
				zap.Int("attempts", maxSpawnAttempts))
			continue
		}
		w.AddPickup(pos)
		placed++
	}
	w.log.Debug("pickups spawned", zap.Int("requested", n), zap.Int("placed", placed))
	return placed
}

func (w *World) samplePickupPosition() (math.Vec3, bool) {
	s := w.settings
	extent := s.Limit - s.PickupRadius
	if extent <= 0 {
		return math.Vec3{}, false
	}

	spawn := math.Vec3{}
	if p := w.Player(); p != nil {
		spawn = p.Spawn
	}

	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		candidate := math.Vec3{
			X: (w.rng.Float32()*2 - 1) * extent,
			Y: s.PickupHeight,
			Z: (w.rng.Float32()*2 - 1) * extent,
		}
		if w.resolver.QueryPoint(candidate, s.PickupRadius).Hit {
			continue
		}
		if candidate.HorizontalDistance(spawn) < s.SpawnClearance {
			continue
		}
		if w.overlapsPickup(candidate) {
			continue
		}
		return candidate, true
	}
	return math.Vec3{}, false
}

func (w *World) overlapsPickup(pos math.Vec3) bool {
	for _, p := range w.pickups {
		if p.Live() && p.Position.HorizontalDistance(pos) < p.Radius+w.settings.PickupRadius {
			return true
		}
	}
	return false
}
