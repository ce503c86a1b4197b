// Package game implements the LEDtris rules: the piece catalog, piece
// factory, board and engine. It performs no I/O; timers and high score
// persistence are reached through the Timer and HighScoreStore ports.
package game

import (
	"fmt"
	"image/color"
)

// VariantID identifies one of the catalog's fixed pieces.
type VariantID int

const (
	Spotlight VariantID = iota
	Panel
	Strip
	Bulb
	Tube

	numVariants
)

var variantNames = [numVariants]string{"spotlight", "panel", "strip", "bulb", "tube"}

func (id VariantID) String() string {
	if id >= 0 && id < numVariants {
		return variantNames[id]
	}
	return fmt.Sprintf("VariantID(%d)", int(id))
}

// ParseVariantID returns the variant with the given catalog name.
func ParseVariantID(name string) (VariantID, bool) {
	for i, n := range variantNames {
		if n == name {
			return VariantID(i), true
		}
	}
	return 0, false
}

// Variant is an immutable catalog entry.
type Variant struct {
	ID      VariantID
	Shape   [][]uint8
	Primary color.RGBA
	Glow    color.RGBA
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var catalog = [numVariants]Variant{
	{
		ID: Spotlight,
		Shape: [][]uint8{
			{0, 1, 0},
			{1, 1, 1},
		},
		Primary: rgb(0xfffacd),
		Glow:    rgb(0xfff8dc),
	},
	{
		ID: Panel,
		Shape: [][]uint8{
			{1, 1},
			{1, 1},
		},
		Primary: rgb(0x87ceeb),
		Glow:    rgb(0xb0e0e6),
	},
	{
		ID: Strip,
		Shape: [][]uint8{
			{1, 1, 1, 1},
		},
		Primary: rgb(0xffb347),
		Glow:    rgb(0xffd700),
	},
	{
		ID: Bulb,
		Shape: [][]uint8{
			{1, 0},
			{1, 0},
			{1, 1},
		},
		Primary: rgb(0xffd23f),
		Glow:    rgb(0xffff00),
	},
	{
		ID: Tube,
		Shape: [][]uint8{
			{1, 1, 0},
			{0, 1, 1},
		},
		Primary: rgb(0xf0f8ff),
		Glow:    rgb(0xffffff),
	},
}

func init() {
	for i, v := range catalog {
		if v.ID != VariantID(i) {
			panic("catalog entry " + v.ID.String() + " is out of order")
		}
		if len(v.Shape) == 0 || len(v.Shape[0]) == 0 {
			panic("catalog entry " + v.ID.String() + " has an empty shape")
		}
		for _, row := range v.Shape {
			if len(row) != len(v.Shape[0]) {
				panic("catalog entry " + v.ID.String() + " is not rectangular")
			}
		}
	}
}

// Variants returns every catalog entry in VariantID order. Shapes are
// copied, so callers may modify the result freely.
func Variants() []Variant {
	out := make([]Variant, len(catalog))
	for i, v := range catalog {
		v.Shape = CopyShape(v.Shape)
		out[i] = v
	}
	return out
}

// Lookup returns the catalog entry for id with a copied shape.
func Lookup(id VariantID) (Variant, bool) {
	if id < 0 || id >= numVariants {
		return Variant{}, false
	}
	v := catalog[id]
	v.Shape = CopyShape(v.Shape)
	return v, true
}

// NumVariants is the size of the catalog.
func NumVariants() int {
	return int(numVariants)
}
