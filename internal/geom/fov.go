package geom

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// OpacityMap is the view of a grid needed to cast light.
type OpacityMap interface {
	InBounds(x, y int) bool
	// IsOpaque must report true for out-of-bounds cells.
	IsOpaque(x, y int) bool
}

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FieldOfView returns every cell lit from origin within radius, using
// recursive shadowcasting. Opaque cells on the edge of the light are
// included; cells outside the map may be returned and are left to the
// caller to filter. A radius <= 0 sees nothing. The result is sorted
// row-major and free of duplicates.
func FieldOfView(origin Point, radius int, m OpacityMap) []Point {
	if radius <= 0 {
		return nil
	}
	seen := mapset.New[Point]()
	seen.Put(origin)
	lit := func(x, y int) { seen.Put(Point{X: x, Y: y}) }
	for _, o := range octants {
		castLight(m, lit, origin.X, origin.Y, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}

	out := make([]Point, 0, seen.Size())
	seen.Each(func(p Point) { out = append(out, p) })
	slices.SortFunc(out, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// castLight casts light for one octant.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5), rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(m OpacityMap, lit func(x, y int), cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq {
				lit(wx, wy)
			}

			opaque := m.IsOpaque(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(m, lit, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
