package universe

//Toggle inverses the cell state at row, col
func (u *Universe) Toggle(row int, col int) error {
	if err := u.checkCoord(row, col); err != nil {
		return err
	}
	idx := u.index(row, col)
	u.cells[idx] = u.cells[idx].flip()
	u.changed = true
	return nil
}

//ResizeWidth sets the number of columns, all cells become dead
func (u *Universe) ResizeWidth(width int) error {
	return u.Resize(width, u.height)
}

//ResizeHeight sets the number of rows, all cells become dead
func (u *Universe) ResizeHeight(height int) error {
	return u.Resize(u.width, height)
}

//Resize reallocates the grid for the new dimensions, all cells become dead
//the previous content is discarded, not cropped
func (u *Universe) Resize(width int, height int) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	u.allocate(width, height)
	return nil
}

//Randomize settles every cell with an independent random state
func (u *Universe) Randomize() {
	for i := range u.cells {
		u.cells[i] = randomCell(u.rnd)
	}
	u.generation = 0
	u.changed = true
}

//Clear kills all cells
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
	u.generation = 0
	u.changed = false
}

//SetAlive makes the cells at the coordinates alive, other cells are left untouched
//nothing is written when any coordinate is out of range
func (u *Universe) SetAlive(coords ...Coord) error {
	for _, c := range coords {
		if err := u.checkCoord(c.Row, c.Col); err != nil {
			return err
		}
	}
	for _, c := range coords {
		u.cells[u.index(c.Row, c.Col)] = Alive
	}
	if len(coords) > 0 {
		u.changed = true
	}
	return nil
}

//Settle populates the universe with the template coordinates
func (u *Universe) Settle(t Template) error {
	return u.SetAlive(t.Coordinates...)
}
