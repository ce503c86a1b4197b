package game

import (
	"iter"
	"math/rand/v2"
)

// Piece is an active piece instance. Shape is owned by the piece and never
// aliases the catalog.
type Piece struct {
	Variant VariantID
	Shape   [][]uint8
	Col     int
	Row     int
}

// Width returns the number of columns in the piece's bounding box.
func (p *Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Height returns the number of rows in the piece's bounding box.
func (p *Piece) Height() int {
	return len(p.Shape)
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.Shape = CopyShape(p.Shape)
	return &c
}

// Cells yields the board coordinates (col, row) of every occupied cell.
// Rows may be negative while the piece is above the visible board.
func (p *Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, row := range p.Shape {
			for c, v := range row {
				if v == 0 {
					continue
				}
				if !yield(p.Col+c, p.Row+r) {
					return
				}
			}
		}
	}
}

// Colors returns the display colors of the piece's variant.
func (p *Piece) Colors() Cell {
	v := catalog[p.Variant]
	return Cell{Filled: true, Primary: v.Primary, Glow: v.Glow, Variant: p.Variant}
}

// CopyShape deep-copies a shape matrix.
func CopyShape(shape [][]uint8) [][]uint8 {
	out := make([][]uint8, len(shape))
	for i := range shape {
		out[i] = make([]uint8, len(shape[i]))
		copy(out[i], shape[i])
	}
	return out
}

// RotateShape returns shape rotated 90 degrees clockwise. A rows x cols
// matrix becomes cols x rows.
func RotateShape(shape [][]uint8) [][]uint8 {
	rows := len(shape)
	if rows == 0 {
		return [][]uint8{}
	}
	cols := len(shape[0])

	rotated := make([][]uint8, cols)
	for c := range rotated {
		rotated[c] = make([]uint8, rows)
	}

	for r := range rows {
		for c := range cols {
			rotated[c][rows-1-r] = shape[r][c]
		}
	}

	return rotated
}

// Factory produces fresh pieces drawn uniformly from the catalog.
type Factory struct {
	rng        *rand.Rand
	boardWidth int
}

// NewFactory creates a factory that centers pieces on a board of the given
// width. A nil rng uses the global source.
func NewFactory(rng *rand.Rand, boardWidth int) *Factory {
	return &Factory{
		rng:        rng,
		boardWidth: boardWidth,
	}
}

func (f *Factory) draw() VariantID {
	if f.rng == nil {
		return VariantID(rand.IntN(int(numVariants)))
	}
	return VariantID(f.rng.IntN(int(numVariants)))
}

// CreatePiece returns a new piece of a random variant at its spawn position.
func (f *Factory) CreatePiece() *Piece {
	return f.CreateVariant(f.draw())
}

// CreateVariant returns a new piece of the given variant at its spawn
// position.
func (f *Factory) CreateVariant(id VariantID) *Piece {
	v := catalog[id]
	shapeWidth := len(v.Shape[0])
	return &Piece{
		Variant: id,
		Shape:   CopyShape(v.Shape),
		Col:     f.boardWidth/2 - shapeWidth/2,
		Row:     0,
	}
}
