package game

import "image/color"

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is one board position. The zero value is an empty cell.
type Cell struct {
	Filled  bool
	Primary color.RGBA
	Glow    color.RGBA
	Variant VariantID
}

// Board is a fixed-size grid of locked cells, stored row-major from the top.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board. Dimensions never change afterwards.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	b := &Board{width: width, height: height}
	b.Clear()
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Clear empties every cell.
func (b *Board) Clear() {
	b.rows = make([][]Cell, b.height)
	for r := range b.rows {
		b.rows[r] = make([]Cell, b.width)
	}
}

func (b *Board) inside(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// At returns the cell at (col, row). Positions outside the board are empty.
func (b *Board) At(col, row int) Cell {
	if !b.inside(col, row) {
		return Cell{}
	}
	return b.rows[row][col]
}

// Set overwrites the cell at (col, row). Positions outside the board are
// ignored.
func (b *Board) Set(col, row int, cell Cell) {
	if !b.inside(col, row) {
		return
	}
	b.rows[row][col] = cell
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]Cell {
	out := make([][]Cell, b.height)
	for r, row := range b.rows {
		out[r] = make([]Cell, b.width)
		copy(out[r], row)
	}
	return out
}

// IsFree reports whether shape fits with its top-left corner at (col, row).
// Cells above the board (negative rows) are only checked against the side
// walls, so pieces may overlap the hidden region while spawning or rotating.
func (b *Board) IsFree(shape [][]uint8, col, row int) bool {
	for r, line := range shape {
		for c, v := range line {
			if v == 0 {
				continue
			}

			x := col + c
			y := row + r

			if x < 0 || x >= b.width || y >= b.height {
				return false
			}

			if y >= 0 && b.rows[y][x].Filled {
				return false
			}
		}
	}

	return true
}

// Lock writes the piece's occupied cells into the grid. Cells above the
// board are dropped.
func (b *Board) Lock(p *Piece) {
	cell := p.Colors()
	for x, y := range p.Cells() {
		if y < 0 {
			continue
		}
		b.Set(x, y, cell)
	}
}

func (b *Board) rowFull(row int) bool {
	for _, cell := range b.rows[row] {
		if !cell.Filled {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. The same index is examined again after a
// removal. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0

	for row := b.height - 1; row >= 0; row-- {
		if !b.rowFull(row) {
			continue
		}

		copy(b.rows[1:row+1], b.rows[:row])
		b.rows[0] = make([]Cell, b.width)
		cleared++
		row++
	}

	return cleared
}
