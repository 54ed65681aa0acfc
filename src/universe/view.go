package universe

//View is a read-only, non-owning window over a Universe buffer
//it does not copy the cells, so it must not be kept past the next mutation or tick
type View struct {
	width  int
	height int
	cells  []Cell
}

func (v View) Width() int  { return v.width }
func (v View) Height() int { return v.height }

//Len returns the number of cells, always Width*Height
func (v View) Len() int { return len(v.cells) }

//At returns the cell at buffer position i, row-major
func (v View) At(i int) Cell {
	return v.cells[i]
}

//Alive reports whether the cell at row, col is alive
//row and col must be in range
func (v View) Alive(row int, col int) bool {
	return v.cells[row*v.width+col] == Alive
}

//Walk walks the entire view and calls the cb function for each cell
func (v View) Walk(cb func(row int, col int, c Cell)) {
	for i, c := range v.cells {
		cb(i/v.width, i%v.width, c)
	}
}

//CopyTo writes one byte per cell (0 dead, 1 alive) into dst
//returns the number of cells written
func (v View) CopyTo(dst []byte) int {
	n := len(v.cells)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = byte(v.cells[i])
	}
	return n
}
