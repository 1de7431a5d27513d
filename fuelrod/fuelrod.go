// Package fuelrod builds the fuel-rod illustration shown for the rod
// selected in the reactor core grid.
package fuelrod

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSuchRod is returned for a selection outside the grid.
var ErrNoSuchRod = errors.New("no such rod")

const (
	container = `<rect x="37" y="25" width="25" height="60" style="fill: rgb(255, 0, 0); stroke-width: 3; stroke: rgb(0, 0, 0);" />`
	absorber  = `<path d="M 50.000 10.000 L 50.000 %.3f" style="stroke: rgb(0, 0, 0); stroke-width: 1; fill: none;" />`
)

// Grid holds the absorber rod positions of the core, row by row. A
// position runs from 0 (withdrawn) to 100 (fully inserted).
type Grid struct {
	Width     int
	Height    int
	Positions []float64
}

// NewGrid returns a width x height grid with every rod at position.
func NewGrid(width, height int, position float64) *Grid {
	g := &Grid{Width: width, Height: height, Positions: make([]float64, width*height)}
	for i := range g.Positions {
		g.Positions[i] = position
	}
	return g
}

// Locate returns the row and column of the rod with the given index.
// Rods are numbered row by row starting at 0.
func (g *Grid) Locate(index int) (row, col int, err error) {
	if g.Width <= 0 || index < 0 || index >= g.Width*g.Height || index >= len(g.Positions) {
		return 0, 0, fmt.Errorf("%w: %d", ErrNoSuchRod, index)
	}
	return index / g.Width, index % g.Width, nil
}

// Position returns the absorber position of the rod with the given index.
func (g *Grid) Position(index int) (float64, error) {
	if _, _, err := g.Locate(index); err != nil {
		return 0, err
	}
	return g.Positions[index], nil
}

// Document returns the illustration for the rod with the given index.
func (g *Grid) Document(index int) (string, error) {
	pos, err := g.Position(index)
	if err != nil {
		return "", err
	}
	return Document(pos), nil
}

// AbsorberDepth maps an absorber position onto the y coordinate of the
// rod's tip in the illustration.
func AbsorberDepth(position float64) float64 {
	return position/2 + 15
}

// Document returns the illustration for a rod whose absorber sits at
// position: the fuel-rod container with the absorber rod drawn from the
// top of the frame down to its tip.
func Document(position float64) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	sb.WriteString(`<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">`)
	sb.WriteString(container)
	fmt.Fprintf(&sb, absorber, AbsorberDepth(position))
	sb.WriteString(`</svg>`)
	return sb.String()
}
