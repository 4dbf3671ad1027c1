package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/block-outrun/constants"
)

// TerminalRenderer draws scenes onto a tcell screen
// World pixels map onto a fixed cell playfield centered in the terminal;
// whatever does not fit is clipped
type TerminalRenderer struct {
	screen tcell.Screen

	width, height    int
	originX, originY int
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recenters the playfield after a terminal resize
func (r *TerminalRenderer) UpdateDimensions() {
	r.width, r.height = r.screen.Size()
	r.originX = max(0, (r.width-constants.PlayfieldCols)/2)
	r.originY = max(0, (r.height-constants.PlayfieldRows)/2)
}

// Origin returns the terminal cell of the playfield's top-left corner
func (r *TerminalRenderer) Origin() (int, int) {
	return r.originX, r.originY
}

// Draw renders one frame
func (r *TerminalRenderer) Draw(s Scene) {
	r.screen.Clear()

	bg := tcell.StyleDefault.Background(toTcell(s.Background))
	r.fillCells(0, 0, constants.PlayfieldCols, constants.PlayfieldRows, bg)

	for _, shape := range s.Shapes {
		// Outlines are thinner than a cell
		if shape.Stroke > 0 {
			continue
		}
		c0, c1 := cellSpan(shape.Rect.X, shape.Rect.W, constants.CellWidth)
		r0, r1 := cellSpan(shape.Rect.Y, shape.Rect.H, constants.CellHeight)
		r.fillCells(c0, r0, c1, r1, tcell.StyleDefault.Background(toTcell(shape.Color)))
	}

	for _, l := range s.Labels {
		r.drawLabel(l)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawLabel(l Label) {
	col := int(l.X / constants.CellWidth)
	row := int(l.Y / constants.CellHeight)
	fg := toTcell(l.Color)

	for _, ch := range l.Text {
		x, y, ok := r.toScreen(col, row)
		if !ok {
			col++
			continue
		}
		// Keep whatever background the cell already has
		_, _, st, _ := r.screen.GetContent(x, y)
		_, cellBg, _ := st.Decompose()
		r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(fg).Background(cellBg))
		col++
	}
}

// fillCells paints playfield cells [c0, c1) x [r0, r1)
func (r *TerminalRenderer) fillCells(c0, r0, c1, r1 int, style tcell.Style) {
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if x, y, ok := r.toScreen(col, row); ok {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// toScreen converts a playfield cell to a terminal cell, reporting false when clipped
func (r *TerminalRenderer) toScreen(col, row int) (int, int, bool) {
	if col < 0 || col >= constants.PlayfieldCols || row < 0 || row >= constants.PlayfieldRows {
		return 0, 0, false
	}
	x, y := r.originX+col, r.originY+row
	if x >= r.width || y >= r.height {
		return 0, 0, false
	}
	return x, y, true
}

// cellSpan maps a pixel span onto [start, end) cells by rounding both edges
// A non-empty span always covers at least one cell
func cellSpan(pos, size, cell float64) (int, int) {
	start := int(math.Round(pos / cell))
	end := int(math.Round((pos + size) / cell))
	if size > 0 && end <= start {
		end = start + 1
	}
	return start, end
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
