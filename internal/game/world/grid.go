package world

import (
	gomath "math"

	"github.com/Faultbox/neonmaze/internal/collision"
	"github.com/Faultbox/neonmaze/pkg/math"
)

// Grid is a walkability raster of the play area. Cell (0,0) sits at
// (-limit, -limit); X maps to world X and Y maps to world Z.
type Grid struct {
	Width    int
	Height   int
	CellSize float32
	Limit    float32
	blocked  []bool
}

// NewGrid rasterizes the resolver's walls. A cell is blocked when a circle of
// the given clearance at its center touches a wall.
func NewGrid(r *collision.Resolver, limit, cellSize, clearance float32) *Grid {
	g := newEmptyGrid(limit, cellSize)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if r.QueryPoint(g.CellToWorld(x, y), clearance).Hit {
				g.blocked[y*g.Width+x] = true
			}
		}
	}
	return g
}

// NewGridFromCells builds a grid with the listed cells blocked.
func NewGridFromCells(width, height int, cellSize float32, blocked [][2]int) *Grid {
	g := &Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Limit:    float32(width) * cellSize / 2,
		blocked:  make([]bool, width*height),
	}
	for _, b := range blocked {
		if g.inBounds(b[0], b[1]) {
			g.blocked[b[1]*width+b[0]] = true
		}
	}
	return g
}

func newEmptyGrid(limit, cellSize float32) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	n := int(gomath.Ceil(float64(2 * limit / cellSize)))
	if n < 1 {
		n = 1
	}
	return &Grid{
		Width:    n,
		Height:   n,
		CellSize: cellSize,
		Limit:    limit,
		blocked:  make([]bool, n*n),
	}
}

// IsWalkable checks if a cell is inside the grid and not blocked.
func (g *Grid) IsWalkable(x, y int) bool {
	if g == nil || !g.inBounds(x, y) {
		return false
	}
	return !g.blocked[y*g.Width+x]
}

// NearestWalkable returns the open cell closest to (x, y) within maxRadius
// rings. Ties go to the first cell in row-major order.
func (g *Grid) NearestWalkable(x, y, maxRadius int) (int, int, bool) {
	if g.IsWalkable(x, y) {
		return x, y, true
	}
	for r := 1; r <= maxRadius; r++ {
		best, bestDist := [2]int{}, -1
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if abs(dx) != r && abs(dy) != r {
					continue // interior was covered by a smaller ring
				}
				if !g.IsWalkable(x+dx, y+dy) {
					continue
				}
				if d := dx*dx + dy*dy; bestDist < 0 || d < bestDist {
					best, bestDist = [2]int{x + dx, y + dy}, d
				}
			}
		}
		if bestDist >= 0 {
			return best[0], best[1], true
		}
	}
	return 0, 0, false
}

// BlockedCount returns the number of blocked cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// WorldToCell converts a world position to cell coordinates, clamped to the grid.
func (g *Grid) WorldToCell(pos math.Vec3) (int, int) {
	x := int(gomath.Floor(float64((pos.X + g.Limit) / g.CellSize)))
	y := int(gomath.Floor(float64((pos.Z + g.Limit) / g.CellSize)))
	return clampInt(x, 0, g.Width-1), clampInt(y, 0, g.Height-1)
}

// CellToWorld converts cell coordinates to the world position of the cell center.
func (g *Grid) CellToWorld(x, y int) math.Vec3 {
	return math.Vec3{
		X: (float32(x)+0.5)*g.CellSize - g.Limit,
		Z: (float32(y)+0.5)*g.CellSize - g.Limit,
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
