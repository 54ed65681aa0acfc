package universe

import "fmt"

//LiveNeighbors counts live cells around row, col with wraparound on both axes
func (u *Universe) LiveNeighbors(row int, col int) (int, error) {
	if err := u.checkCoord(row, col); err != nil {
		return 0, err
	}
	return int(u.liveNeighborCount(row, col)), nil
}

//liveNeighborCount is the unchecked hot path used by tick
//all 8 offsets are visited even when a dimension is 1 or 2, so one cell may be counted more than once
func (u *Universe) liveNeighborCount(row int, col int) uint8 {
	var count uint8
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + u.height + dr) % u.height
			nc := (col + u.width + dc) % u.width
			count += uint8(u.cells[u.index(nr, nc)])
		}
	}
	return count
}

//nextState applies the Life rules to one cell
func nextState(c Cell, liveNeighbors uint8) Cell {
	switch {
	case c == Alive && liveNeighbors < 2:
		return Dead
	case c == Alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return Alive
	case c == Alive && liveNeighbors > 3:
		return Dead
	case c == Dead && liveNeighbors == 3:
		return Alive
	}
	return c
}

//Tick advances the universe by steps generations
//every generation is computed from the result of the previous one
func (u *Universe) Tick(steps int) error {
	if steps < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	for i := 0; i < steps; i++ {
		u.step()
	}
	return nil
}

//step calculates the next generation into the scratch buffer from the current snapshot,
//then swaps the buffers
func (u *Universe) step() {
	changed := false
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			idx := u.index(row, col)
			c := u.cells[idx]
			n := nextState(c, u.liveNeighborCount(row, col))
			changed = changed || n != c
			u.next[idx] = n
		}
	}
	u.cells, u.next = u.next, u.cells
	u.generation++
	u.changed = changed
}
