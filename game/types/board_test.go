package types

import "testing"

func TestComputeBoardInvariants(t *testing.T) {
	cases := []struct {
		name         string
		viewW, viewH int
	}{
		{"desktop", 1280, 800},
		{"portrait", 400, 900},
		{"square", 700, 700},
		{"tiny", 10, 10},
		{"zero", 0, 0},
		{"wide", 3000, 400},
	}

	for _, tc := range cases {
		b := ComputeBoard(tc.viewW, tc.viewH, 1)

		if b.Cols < MinCols || b.Rows < MinRows {
			t.Errorf("%s: grid %dx%d below minimum", tc.name, b.Cols, b.Rows)
		}
		if b.Cell < MinCellSize || b.Cell > MaxCellSize {
			t.Errorf("%s: cell %d outside [%d,%d]", tc.name, b.Cell, MinCellSize, MaxCellSize)
		}
		if b.Cols*b.Cell != b.Width || b.Rows*b.Cell != b.Height {
			t.Errorf("%s: pixel metrics %dx%d inconsistent with %dx%d cells of %d",
				tc.name, b.Width, b.Height, b.Cols, b.Rows, b.Cell)
		}
	}
}

func TestComputeBoardCellClamping(t *testing.T) {
	// 10x10 viewport: raw target floor(10/28)=0 clamps up to 14.
	if b := ComputeBoard(10, 10, 1); b.Cell != MinCellSize {
		t.Errorf("tiny viewport: expected cell %d, got %d", MinCellSize, b.Cell)
	}
	// 1280x800: raw target floor(800/28)=28 clamps down to 26.
	if b := ComputeBoard(1280, 800, 1); b.Cell != MaxCellSize {
		t.Errorf("large viewport: expected cell %d, got %d", MaxCellSize, b.Cell)
	}
	// 560x560: floor(560/28)=20 stays unclamped.
	if b := ComputeBoard(560, 560, 1); b.Cell != 20 {
		t.Errorf("mid viewport: expected cell 20, got %d", b.Cell)
	}
}

func TestComputeBoardDegeneratesToMinimumGrid(t *testing.T) {
	b := ComputeBoard(0, 0, 2)
	if b.Cols != MinCols || b.Rows != MinRows {
		t.Errorf("expected %dx%d, got %dx%d", MinCols, MinRows, b.Cols, b.Rows)
	}
	if b.Scale != 2 {
		t.Errorf("expected scale passthrough, got %v", b.Scale)
	}
}

func TestBoardContains(t *testing.T) {
	b := ComputeBoard(560, 560, 1) // 28x28 grid
	for _, p := range []Point{{0, 0}, {27, 27}, {13, 5}} {
		if !b.Contains(p) {
			t.Errorf("expected %v inside %dx%d", p, b.Cols, b.Rows)
		}
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {28, 0}, {0, 28}} {
		if b.Contains(p) {
			t.Errorf("expected %v outside %dx%d", p, b.Cols, b.Rows)
		}
	}
}
