// Package grid defines the cell, wall, direction and path types together with
// the sentinel errors used across the grid subpackage.
package grid

import (
	"errors"
	"fmt"
)

// MaxSize bounds the side length accepted by New (MaxSize² cells).
const MaxSize = 1024

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive side length.
	ErrInvalidSize = errors.New("grid: size must be positive")
	// ErrSizeTooLarge indicates a side length above MaxSize.
	ErrSizeTooLarge = errors.New("grid: size exceeds MaxSize")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrWallMismatch indicates a wall removed on one side only.
	ErrWallMismatch = errors.New("grid: wall pair is inconsistent")
	// ErrDisconnected indicates the passages do not reach every cell.
	ErrDisconnected = errors.New("grid: passages do not connect every cell")
	// ErrCycle indicates the passages contain a loop.
	ErrCycle = errors.New("grid: passages contain a cycle")
	// ErrPathEmpty indicates a path with no cells.
	ErrPathEmpty = errors.New("grid: path is empty")
	// ErrPathRepeat indicates a path that visits a cell twice.
	ErrPathRepeat = errors.New("grid: path repeats a cell")
	// ErrPathBroken indicates consecutive path cells without a passage between them.
	ErrPathBroken = errors.New("grid: path steps through a wall")
)

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate one cell away in direction d. The result may lie
// outside the grid.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Offset()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Walls holds the four wall segments of a cell; true means intact.
type Walls struct {
	Top, Bottom, Left, Right bool
}

// Has reports whether the wall facing d is intact.
func (w Walls) Has(d Direction) bool {
	switch d {
	case Up:
		return w.Top
	case Down:
		return w.Bottom
	case Left:
		return w.Left
	case Right:
		return w.Right
	}
	return true
}

// clear removes the wall facing d.
func (w *Walls) clear(d Direction) {
	switch d {
	case Up:
		w.Top = false
	case Down:
		w.Bottom = false
	case Left:
		w.Left = false
	case Right:
		w.Right = false
	}
}

// Cell is a single maze cell. Visited is set by generators while carving and
// carries no meaning once generation has finished.
type Cell struct {
	Row, Col int
	Visited  bool
	Walls    Walls
}

// Coord returns the cell's coordinates.
func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	// Up decreases the row.
	Up Direction = iota
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
	// Right increases the column.
	Right
)

// directions is the fixed enumeration order used by generators and solvers.
var directions = [4]Direction{Up, Down, Left, Right}

// offsets is indexed by Direction: {dRow, dCol}.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Directions returns Up, Down, Left, Right in that order.
func Directions() [4]Direction {
	return directions
}

// Offset returns the row and column delta of d.
func (d Direction) Offset() (dRow, dCol int) {
	o := offsets[d]
	return o[0], o[1]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
