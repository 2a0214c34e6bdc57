package force

import (
	"math"
	"slices"

	"github.com/matzehuels/techradar/pkg/radar/rng"
)

// Collide pushes apart nodes closer than twice Radius. Strength in (0, 1]
// is the fraction of the overlap corrected per iteration.
type Collide struct {
	Radius     float64
	Strength   float64
	Iterations int // defaults to 1
}

type cell struct{ x, y int }

// Apply implements Force. Pairs are visited with the lower index first,
// in ascending index order, so results do not depend on grid layout.
func (c Collide) Apply(nodes []Node, _ float64, src *rng.Source) {
	if c.Radius <= 0 || len(nodes) < 2 {
		return
	}
	iterations := max(c.Iterations, 1)
	size := 2 * c.Radius
	reach := size * size

	grid := make(map[cell][]int, len(nodes))
	var near []int
	for range iterations {
		clear(grid)
		for i := range nodes {
			k := c.cellOf(nodes[i].X+nodes[i].VX, nodes[i].Y+nodes[i].VY, size)
			grid[k] = append(grid[k], i)
		}

		for i := range nodes {
			ni := &nodes[i]
			xi, yi := ni.X+ni.VX, ni.Y+ni.VY
			home := c.cellOf(xi, yi, size)

			near = near[:0]
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					for _, j := range grid[cell{home.x + dx, home.y + dy}] {
						if j > i {
							near = append(near, j)
						}
					}
				}
			}
			slices.Sort(near)

			for _, j := range near {
				nj := &nodes[j]
				x := xi - (nj.X + nj.VX)
				y := yi - (nj.Y + nj.VY)
				l := x*x + y*y
				if l >= reach {
					continue
				}
				if x == 0 {
					x = src.Jiggle()
					l += x * x
				}
				if y == 0 {
					y = src.Jiggle()
					l += y * y
				}
				l = math.Sqrt(l)
				l = (size - l) / l * c.Strength
				x *= l
				y *= l
				// Equal radii share the correction evenly.
				ni.VX += x * 0.5
				ni.VY += y * 0.5
				nj.VX -= x * 0.5
				nj.VY -= y * 0.5
			}
		}
	}
}

func (c Collide) cellOf(x, y, size float64) cell {
	return cell{int(math.Floor(x / size)), int(math.Floor(y / size))}
}
