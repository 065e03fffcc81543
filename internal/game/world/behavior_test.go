package world

import (
	"testing"

	"github.com/Faultbox/neonmaze/internal/engine/input"
	"github.com/Faultbox/neonmaze/internal/game/entity"
	"github.com/Faultbox/neonmaze/pkg/math"
)

func TestSeek(t *testing.T) {
	self := entity.NewCharacter(2, entity.TypeEnemy, "red", math.Vec3{X: 1, Z: 1})
	target := newPlayer(math.Vec3{X: 1, Z: 4})

	dir, ok := Seek{}.Steer(self, target, 0.1)
	if !ok || !near(dir.X, 0) || !near(dir.Y, 1) {
		t.Errorf("expected +Z, got %+v ok=%v", dir, ok)
	}

	if _, ok := (Seek{}).Steer(self, self, 0.1); ok {
		t.Error("seeking own position must not move")
	}
	if _, ok := (Seek{}).Steer(self, nil, 0.1); ok {
		t.Error("seeking nil target must not move")
	}
}

func TestIdle(t *testing.T) {
	if _, ok := (Idle{}).Steer(nil, nil, 1); ok {
		t.Error("idle must never move")
	}
}

func TestPathSeek_RoutesAroundWall(t *testing.T) {
	// Column x=2 blocked except the top row.
	grid := NewGridFromCells(5, 5, 1, [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}})
	b := NewPathSeek(grid)

	self := entity.NewCharacter(2, entity.TypeEnemy, "pink", grid.CellToWorld(0, 2))
	target := newPlayer(grid.CellToWorld(4, 2))

	dir, ok := b.Steer(self, target, 0.1)
	if !ok {
		t.Fatal("expected a direction")
	}
	if dir.Y <= 0 {
		t.Errorf("expected a detour toward +Z, got %+v", dir)
	}

	path, next := b.Path()
	if len(path) == 0 || next != 1 {
		t.Fatalf("expected a planned path, got %v next=%d", path, next)
	}
	for _, c := range path {
		if !grid.IsWalkable(c[0], c[1]) {
			t.Errorf("path crosses blocked cell %v", c)
		}
	}
}

func TestPathSeek_SameCellSeeksDirectly(t *testing.T) {
	grid := NewGridFromCells(5, 5, 1, nil)
	b := NewPathSeek(grid)

	center := grid.CellToWorld(1, 1)
	self := entity.NewCharacter(2, entity.TypeEnemy, "blue", center)
	target := newPlayer(math.Vec3{X: center.X + 0.3, Z: center.Z})

	dir, ok := b.Steer(self, target, 0.1)
	if !ok || !near(dir.X, 1) {
		t.Errorf("expected direct +X, got %+v", dir)
	}
}

func TestPathSeek_UnreachableFallsBackToSeek(t *testing.T) {
	grid := NewGridFromCells(5, 5, 1, [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}})
	b := NewPathSeek(grid)

	self := entity.NewCharacter(2, entity.TypeEnemy, "yellow", grid.CellToWorld(0, 2))
	target := newPlayer(grid.CellToWorld(4, 2))

	dir, ok := b.Steer(self, target, 0.1)
	if !ok || !near(dir.X, 1) {
		t.Errorf("expected straight seek, got %+v", dir)
	}
}

func TestPathSeek_BlockedGoalPlansToNeighbour(t *testing.T) {
	// Column x=2 blocked except the top row; the target's own cell is a wall.
	grid := NewGridFromCells(5, 5, 1, [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {4, 2}})
	b := NewPathSeek(grid)

	self := entity.NewCharacter(2, entity.TypeEnemy, "pink", grid.CellToWorld(0, 2))
	target := newPlayer(grid.CellToWorld(4, 2))

	dir, ok := b.Steer(self, target, 0.1)
	if !ok || dir.Y <= 0 {
		t.Errorf("expected a detour toward +Z, got %+v ok=%v", dir, ok)
	}

	path, _ := b.Path()
	if len(path) == 0 {
		t.Fatal("expected a path to a cell next to the target")
	}
	last := path[len(path)-1]
	if !grid.IsWalkable(last[0], last[1]) {
		t.Errorf("path ends in blocked cell %v", last)
	}
	if abs(last[0]-4) > 1 || abs(last[1]-2) > 1 {
		t.Errorf("path ends at %v, want a neighbour of (4,2)", last)
	}
}

func TestPathSeek_UnreachablePlansOnce(t *testing.T) {
	grid := NewGridFromCells(5, 5, 1, [][2]int{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}})
	b := NewPathSeek(grid)

	self := entity.NewCharacter(2, entity.TypeEnemy, "yellow", grid.CellToWorld(0, 2))
	target := newPlayer(grid.CellToWorld(4, 2))

	for i := 0; i < 5; i++ {
		b.Steer(self, target, 0.1)
	}
	if b.plans != 1 {
		t.Errorf("plans = %d, want 1 while the goal stays put", b.plans)
	}

	target.Position = grid.CellToWorld(4, 3)
	b.Steer(self, target, 0.1)
	if b.plans != 2 {
		t.Errorf("plans = %d, want a new plan after the goal moved", b.plans)
	}
}

func TestNearestWalkable(t *testing.T) {
	grid := NewGridFromCells(5, 5, 1, [][2]int{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}})

	if x, y, ok := grid.NearestWalkable(0, 0, 2); !ok || x != 0 || y != 0 {
		t.Errorf("open cell should map to itself, got (%d,%d) ok=%v", x, y, ok)
	}
	x, y, ok := grid.NearestWalkable(2, 2, 2)
	if !ok || !grid.IsWalkable(x, y) || abs(x-2) > 1 || abs(y-2) > 1 {
		t.Errorf("expected a diagonal neighbour of (2,2), got (%d,%d) ok=%v", x, y, ok)
	}

	full := NewGridFromCells(1, 1, 1, [][2]int{{0, 0}})
	if _, _, ok := full.NearestWalkable(0, 0, 2); ok {
		t.Error("fully blocked grid has no open cell")
	}
}

func TestWorldReset_ClearsPlannedPaths(t *testing.T) {
	w, _ := newTestWorld(nil)
	grid := NewGridFromCells(5, 5, 1, nil)
	b := NewPathSeek(grid)
	e := entity.NewCharacter(w.Entities().NextID(), entity.TypeEnemy, "red", grid.CellToWorld(0, 0))
	e.Speed = 1
	w.AddEnemy(e, b)

	w.Update(0.1, input.Intent{}, 0)
	if path, _ := b.Path(); len(path) == 0 {
		t.Fatal("expected a planned path before reset")
	}

	w.Reset()
	if path, next := b.Path(); path != nil || next != 0 {
		t.Errorf("path after reset = %v next=%d, want none", path, next)
	}
}

func TestBehaviorByName(t *testing.T) {
	grid := NewGridFromCells(2, 2, 1, nil)

	if _, ok := BehaviorByName("seek", nil).(Seek); !ok {
		t.Error("expected Seek")
	}
	if _, ok := BehaviorByName("path", grid).(*PathSeek); !ok {
		t.Error("expected PathSeek")
	}
	if _, ok := BehaviorByName("path", nil).(Seek); !ok {
		t.Error("expected Seek without a grid")
	}
	if _, ok := BehaviorByName("idle", grid).(Idle); !ok {
		t.Error("expected Idle")
	}
}
