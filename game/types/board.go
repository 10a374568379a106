package types

// Board is the sized grid plus its pixel metrics. It is a derived
// value, recomputed as a whole on every viewport change and immutable
// in between. Cols*Cell == Width and Rows*Cell == Height always hold.
type Board struct {
	Cols, Rows int
	Cell       int
	Width      int
	Height     int
	Scale      float64
}

// Sized reports whether the board has been computed at least once.
func (b Board) Sized() bool {
	return b.Cols > 0
}

// Contains reports whether p lies inside the grid.
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// ComputeBoard derives a board from the available viewport. Pure: the
// caller stores the result and propagates it before anything else runs.
// A degenerate viewport falls through to the minimum grid, never an
// error.
func ComputeBoard(viewW, viewH int, scale float64) Board {
	short := viewW
	if viewH < short {
		short = viewH
	}

	cell := short / CellDivisor
	if cell < MinCellSize {
		cell = MinCellSize
	} else if cell > MaxCellSize {
		cell = MaxCellSize
	}

	cols := viewW / cell
	if cols < MinCols {
		cols = MinCols
	}
	rows := viewH / cell
	if rows < MinRows {
		rows = MinRows
	}

	return Board{
		Cols:   cols,
		Rows:   rows,
		Cell:   cell,
		Width:  cols * cell,
		Height: rows * cell,
		Scale:  scale,
	}
}
