package world

import (
	"container/heap"
)

// Movement costs on the grid.
const (
	straightCost = float32(1.0)
	diagonalCost = float32(1.414)
)

// PathNode represents a node in the A* search.
type PathNode struct {
	X, Y   int     // cell coordinates
	G      float32 // cost from start
	H      float32 // estimated cost to goal
	F      float32 // G + H
	Parent *PathNode
	Index  int // index in heap
}

// PathHeap implements a priority queue ordered by F.
type PathHeap []*PathNode

func (h PathHeap) Len() int           { return len(h) }
func (h PathHeap) Less(i, j int) bool { return h[i].F < h[j].F }
func (h PathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index = i
	h[j].Index = j
}

func (h *PathHeap) Push(x any) {
	node := x.(*PathNode)
	node.Index = len(*h)
	*h = append(*h, node)
}

func (h *PathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*h = old[:n-1]
	return node
}

// neighbors lists the 8-way steps; odd indices are diagonals.
var neighbors = [8][2]int{
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
}

// PathFinder runs A* over a walkability grid.
type PathFinder struct {
	grid *Grid
}

// NewPathFinder creates a pathfinder. It returns nil for a nil grid.
func NewPathFinder(grid *Grid) *PathFinder {
	if grid == nil {
		return nil
	}
	return &PathFinder{grid: grid}
}

// FindPath returns the cells from start to goal inclusive, or nil when the
// goal is unreachable. Diagonal steps require both adjacent cells to be open.
func (pf *PathFinder) FindPath(startX, startY, goalX, goalY int) [][2]int {
	if pf == nil {
		return nil
	}
	g := pf.grid
	if !g.inBounds(startX, startY) || !g.IsWalkable(goalX, goalY) {
		return nil
	}

	open := &PathHeap{}
	heap.Init(open)
	closed := make(map[int]bool)
	nodes := make(map[int]*PathNode)

	start := &PathNode{X: startX, Y: startY, H: octile(startX, startY, goalX, goalY)}
	start.F = start.H
	heap.Push(open, start)
	nodes[pf.key(startX, startY)] = start

	maxIterations := g.Width * g.Height
	for iterations := 0; open.Len() > 0 && iterations < maxIterations; iterations++ {
		current := heap.Pop(open).(*PathNode)
		if current.X == goalX && current.Y == goalY {
			return reconstructPath(current)
		}
		closed[pf.key(current.X, current.Y)] = true

		for i, dir := range neighbors {
			nx, ny := current.X+dir[0], current.Y+dir[1]
			if !g.IsWalkable(nx, ny) || closed[pf.key(nx, ny)] {
				continue
			}

			cost := straightCost
			if i%2 == 1 {
				if !g.IsWalkable(current.X+dir[0], current.Y) || !g.IsWalkable(current.X, current.Y+dir[1]) {
					continue
				}
				cost = diagonalCost
			}

			gScore := current.G + cost
			next, seen := nodes[pf.key(nx, ny)]
			if !seen {
				next = &PathNode{X: nx, Y: ny, G: gScore, H: octile(nx, ny, goalX, goalY), Parent: current}
				next.F = next.G + next.H
				nodes[pf.key(nx, ny)] = next
				heap.Push(open, next)
			} else if gScore < next.G {
				next.G = gScore
				next.F = next.G + next.H
				next.Parent = current
				heap.Fix(open, next.Index)
			}
		}
	}
	return nil
}

// IsWalkable checks if a cell is walkable.
func (pf *PathFinder) IsWalkable(x, y int) bool {
	if pf == nil {
		return false
	}
	return pf.grid.IsWalkable(x, y)
}

func (pf *PathFinder) key(x, y int) int {
	return y*pf.grid.Width + x
}

// octile is the 8-way distance heuristic.
func octile(x1, y1, x2, y2 int) float32 {
	dx, dy := abs(x2-x1), abs(y2-y1)
	if dx < dy {
		return float32(dx)*diagonalCost + float32(dy-dx)
	}
	return float32(dy)*diagonalCost + float32(dx-dy)
}

func reconstructPath(node *PathNode) [][2]int {
	var path [][2]int
	for ; node != nil; node = node.Parent {
		path = append(path, [2]int{node.X, node.Y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
