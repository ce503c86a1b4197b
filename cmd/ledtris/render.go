package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/ledtris/game"
)

var (
	backgroundColor = color.RGBA{10, 10, 14, 255}
	housingColor    = color.RGBA{0x33, 0x33, 0x33, 255}
	gridColor       = color.RGBA{255, 255, 255, 26}
	borderColor     = color.RGBA{255, 255, 255, 77}
	centerColor     = color.RGBA{255, 255, 255, 230}
	haloColor       = color.RGBA{255, 255, 255, 77}
	shadeColor      = color.RGBA{0, 0, 0, 180}
	labelColor      = color.RGBA{160, 160, 170, 255}
	valueColor      = color.RGBA{255, 255, 255, 255}
	recordColor     = color.RGBA{0xff, 0xd7, 0x00, 255}
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Layout places the board and the side panel for a given cell size.
type Layout struct {
	Cell    int
	Margin  int
	Columns int
	Rows    int
}

func NewLayout(cell, columns, rows int) Layout {
	return Layout{Cell: cell, Margin: cell / 2, Columns: columns, Rows: rows}
}

func (l Layout) BoardWidth() int  { return l.Columns * l.Cell }
func (l Layout) BoardHeight() int { return l.Rows * l.Cell }

// PanelX is the left edge of the side panel.
func (l Layout) PanelX() int { return l.Margin*2 + l.BoardWidth() }

func (l Layout) ScreenSize() (int, int) {
	return l.PanelX() + 6*l.Cell + l.Margin, l.BoardHeight() + 2*l.Margin
}

// CellOrigin is the top-left pixel of board cell (col, row).
func (l Layout) CellOrigin(col, row int) (float32, float32) {
	return float32(l.Margin + col*l.Cell), float32(l.Margin + row*l.Cell)
}

// PreviewOrigin centers a w x h piece in the next-piece box drawn at
// (x, y) with the given box and cell sizes.
func PreviewOrigin(x, y, box, cell float32, w, h int) (float32, float32) {
	return x + (box-float32(w)*cell)/2, y + (box-float32(h)*cell)/2
}

// Renderer draws engine snapshots.
type Renderer struct {
	Layout Layout
}

func (r *Renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)
	r.drawGrid(screen)

	for row, cells := range snap.Rows {
		for col, cell := range cells {
			if cell.Filled {
				x, y := r.Layout.CellOrigin(col, row)
				drawLED(screen, x, y, float32(r.Layout.Cell), cell)
			}
		}
	}
	if snap.Current != nil {
		colors := snap.Current.Colors()
		for col, row := range snap.Current.Cells() {
			if row < 0 {
				continue
			}
			x, y := r.Layout.CellOrigin(col, row)
			drawLED(screen, x, y, float32(r.Layout.Cell), colors)
		}
	}

	r.drawPanel(screen, snap)
	r.drawBanner(screen, snap)
}

func (r *Renderer) drawGrid(screen *ebiten.Image) {
	l := r.Layout
	left, top := l.CellOrigin(0, 0)
	right, bottom := l.CellOrigin(l.Columns, l.Rows)
	vector.DrawFilledRect(screen, left, top, right-left, bottom-top, color.Black, false)

	for row := 0; row <= l.Rows; row++ {
		_, y := l.CellOrigin(0, row)
		vector.StrokeLine(screen, left, y, right, y, 1, gridColor, false)
	}
	for col := 0; col <= l.Columns; col++ {
		x, _ := l.CellOrigin(col, 0)
		vector.StrokeLine(screen, x, top, x, bottom, 1, gridColor, false)
	}
}

// drawLED draws one lit cell: dark housing, glow body, colored core, bright
// center and a thin rim.
func drawLED(screen *ebiten.Image, x, y, cell float32, c game.Cell) {
	size := cell - 2
	cx, cy := x+cell/2, y+cell/2

	vector.DrawFilledRect(screen, x+1, y+1, size, size, housingColor, false)
	vector.DrawFilledRect(screen, x+2, y+2, size-2, size-2, c.Glow, false)
	vector.DrawFilledCircle(screen, cx, cy, cell*0.35, c.Primary, true)
	vector.DrawFilledCircle(screen, cx, cy, cell/4, haloColor, true)
	vector.DrawFilledCircle(screen, cx, cy, cell/8, centerColor, true)
	vector.StrokeRect(screen, x+1, y+1, size, size, 1, borderColor, false)
}

func drawText(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

func (r *Renderer) drawPanel(screen *ebiten.Image, snap game.Snapshot) {
	l := r.Layout
	x := float32(l.PanelX())
	y := float32(l.Margin)
	box := float32(5 * l.Cell)

	drawText(screen, "NEXT", x, y, labelColor)
	y += 18
	vector.DrawFilledRect(screen, x, y, box, box, color.Black, false)
	vector.StrokeRect(screen, x, y, box, box, 1, borderColor, false)
	if snap.Next != nil {
		cell := float32(l.Cell) * 2 / 3
		ox, oy := PreviewOrigin(x, y, box, cell, snap.Next.Width(), snap.Next.Height())
		colors := snap.Next.Colors()
		for r, row := range snap.Next.Shape {
			for c, v := range row {
				if v != 0 {
					drawLED(screen, ox+float32(c)*cell, oy+float32(r)*cell, cell, colors)
				}
			}
		}
	}
	y += box + 24

	for _, line := range hudLines(snap) {
		drawText(screen, line[0], x, y, labelColor)
		drawText(screen, line[1], x, y+16, valueColor)
		y += 42
	}

	drawText(screen, "ENTER start  SPACE pause", x, float32(l.Margin+l.BoardHeight())-32, labelColor)
	drawText(screen, "R reset  F1 debug  ESC quit", x, float32(l.Margin+l.BoardHeight())-14, labelColor)
}

func hudLines(snap game.Snapshot) [][2]string {
	return [][2]string{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"HIGH SCORE", fmt.Sprintf("%d", snap.HighScore)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
	}
}

// bannerLines is the text shown over the board for the current status.
func bannerLines(snap game.Snapshot) []string {
	switch snap.Status {
	case game.StatusIdle:
		return []string{"PRESS ENTER", "TO START"}
	case game.StatusPaused:
		return []string{"PAUSED"}
	case game.StatusGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("SCORE %d", snap.Score)}
		if snap.NewRecord {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		return append(lines, "ENTER TO PLAY AGAIN")
	}
	return nil
}

func (r *Renderer) drawBanner(screen *ebiten.Image, snap game.Snapshot) {
	lines := bannerLines(snap)
	if len(lines) == 0 {
		return
	}
	l := r.Layout
	left, top := l.CellOrigin(0, 0)
	width, height := float32(l.BoardWidth()), float32(l.BoardHeight())
	vector.DrawFilledRect(screen, left, top, width, height, shadeColor, false)

	y := top + height/2 - float32(len(lines)*20)/2
	for _, line := range lines {
		w, _ := text.Measure(line, hudFace, 0)
		clr := color.Color(valueColor)
		if snap.NewRecord && line == "NEW HIGH SCORE!" {
			clr = recordColor
		}
		drawText(screen, line, left+(width-float32(w))/2, y, clr)
		y += 20
	}
}
