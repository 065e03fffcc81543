package world

import (
	"github.com/Faultbox/neonmaze/internal/game/entity"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// Behavior steers an autonomous character toward (or away from) a target.
type Behavior interface {
	Steer(self, target *entity.Character, dt float32) (math.Vec2, bool)
}

// Idle never moves.
type Idle struct{}

// Steer implements Behavior.
func (Idle) Steer(_, _ *entity.Character, _ float32) (math.Vec2, bool) {
	return math.Vec2{}, false
}

// Seek heads straight for the target, re-aiming every tick.
type Seek struct{}

// Steer implements Behavior.
func (Seek) Steer(self, target *entity.Character, _ float32) (math.Vec2, bool) {
	if target == nil {
		return math.Vec2{}, false
	}
	return seekDirection(self.Position, target.Position)
}

func seekDirection(from, to math.Vec3) (math.Vec2, bool) {
	delta := to.XZ().Sub(from.XZ())
	if delta.Length() <= minDirection {
		return math.Vec2{}, false
	}
	return delta.Normalize(), true
}

// goalSearchRadius bounds the ring search for an open cell next to a
// blocked goal.
const goalSearchRadius = 2

// PathSeek follows an A* path over the grid, re-planning when the target
// changes cell. It falls back to Seek when no path exists. The planned path
// belongs to one level; World.Reset clears it through Reset.
type PathSeek struct {
	Grid *Grid

	finder   *PathFinder
	path     [][2]int
	next     int
	goalCell [2]int
	planned  bool
	plans    int
}

// NewPathSeek creates a path-following behavior over grid.
func NewPathSeek(grid *Grid) *PathSeek {
	return &PathSeek{Grid: grid, finder: NewPathFinder(grid)}
}

// Steer implements Behavior.
func (p *PathSeek) Steer(self, target *entity.Character, dt float32) (math.Vec2, bool) {
	if target == nil {
		return math.Vec2{}, false
	}
	if p.finder == nil {
		return Seek{}.Steer(self, target, dt)
	}

	sx, sy := p.Grid.WorldToCell(self.Position)
	gx, gy := p.Grid.WorldToCell(target.Position)

	// Same cell as the target: close the remaining gap directly.
	if sx == gx && sy == gy {
		return seekDirection(self.Position, target.Position)
	}

	// A target hugging a wall can sit in a blocked cell; aim next to it.
	goal := [2]int{gx, gy}
	if !p.Grid.IsWalkable(gx, gy) {
		if nx, ny, ok := p.Grid.NearestWalkable(gx, gy, goalSearchRadius); ok {
			goal = [2]int{nx, ny}
		}
	}

	// An empty plan is kept until the goal moves, so an unreachable goal
	// costs one search rather than one per tick.
	if !p.planned || goal != p.goalCell || (len(p.path) > 0 && p.next >= len(p.path)) {
		p.replan(sx, sy, goal)
	}
	if len(p.path) == 0 {
		return Seek{}.Steer(self, target, dt)
	}

	// Skip waypoints already reached.
	arrive := p.Grid.CellSize * 0.1
	for p.next < len(p.path) {
		wp := p.path[p.next]
		if self.Position.HorizontalDistance(p.Grid.CellToWorld(wp[0], wp[1])) > arrive {
			break
		}
		p.next++
	}
	if p.next >= len(p.path) {
		return seekDirection(self.Position, target.Position)
	}

	wp := p.path[p.next]
	return seekDirection(self.Position, p.Grid.CellToWorld(wp[0], wp[1]))
}

// Path returns the current planned cells and the index of the next waypoint.
func (p *PathSeek) Path() ([][2]int, int) {
	return p.path, p.next
}

// Reset drops the planned path.
func (p *PathSeek) Reset() {
	p.path = nil
	p.next = 0
	p.goalCell = [2]int{}
	p.planned = false
}

func (p *PathSeek) replan(sx, sy int, goal [2]int) {
	p.plans++
	p.path = p.finder.FindPath(sx, sy, goal[0], goal[1])
	p.next = 0
	if len(p.path) > 1 {
		p.next = 1 // first node is the current cell
	}
	p.goalCell = goal
	p.planned = true
}

// BehaviorByName returns the behavior for a config name. PathSeek needs a grid;
// without one it degrades to Seek. Unknown names are Idle.
func BehaviorByName(name string, grid *Grid) Behavior {
	switch name {
	case "seek":
		return Seek{}
	case "path":
		if grid == nil {
			return Seek{}
		}
		return NewPathSeek(grid)
	default:
		return Idle{}
	}
}
