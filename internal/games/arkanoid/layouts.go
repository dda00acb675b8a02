package arkanoid

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Palette holds the colors a row of blocks may take. Gray is left out so a
// ball can never match the borders or the death region.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

func randomColor(rng *rand.Rand) core.Color {
	return Palette[rng.IntN(len(Palette))]
}

// rowLayout builds a layout from the number of blocks in each row and the
// x of the row's leftmost block.
type rowLayout struct {
	id, title string
	row       func(grid config.BlocksConfig, i int) (count int, left float64)
}

func (l rowLayout) ID() string    { return l.id }
func (l rowLayout) Title() string { return l.title }

func (l rowLayout) Blocks(grid config.BlocksConfig, rng *rand.Rand) []registry.BlockSpec {
	var specs []registry.BlockSpec
	for i := range grid.Rows {
		count, left := l.row(grid, i)
		if count <= 0 {
			continue
		}
		color := randomColor(rng)
		y := grid.Top + float64(i)*grid.Height
		// filled right to left, which decides ties on shared edges
		for j := count - 1; j >= 0; j-- {
			specs = append(specs, registry.BlockSpec{
				Rect:  geom.NewRect(left+float64(j)*grid.Width, y, grid.Width, grid.Height),
				Color: color,
			})
		}
	}
	return specs
}

// Classic is the staircase: each row one block shorter, flush right.
var Classic = rowLayout{
	id:    "classic",
	title: "Classic Staircase",
	row: func(grid config.BlocksConfig, i int) (int, float64) {
		count := grid.Columns - i
		return count, grid.RightEdge - float64(count)*grid.Width
	},
}

// Wall fills every row edge to edge from the right.
var Wall = rowLayout{
	id:    "wall",
	title: "Wall",
	row: func(grid config.BlocksConfig, _ int) (int, float64) {
		return grid.Columns, grid.RightEdge - float64(grid.Columns)*grid.Width
	},
}

// Pyramid narrows by one block on each side per row, centered under the widest row.
var Pyramid = rowLayout{
	id:    "pyramid",
	title: "Pyramid",
	row: func(grid config.BlocksConfig, i int) (int, float64) {
		count := grid.Columns - 2*i
		left := grid.RightEdge - float64(grid.Columns)*grid.Width + float64(i)*grid.Width
		return count, left
	},
}

func init() {
	registry.Register(Classic)
	registry.Register(Wall)
	registry.Register(Pyramid)
}
