package universe

import (
	"fmt"
	"time"
)

//Cell is the state of one grid position, stored as a single byte
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//Alive reports whether the cell is alive
func (c Cell) Alive() bool {
	return c == Alive
}

//flip returns the opposite state
func (c Cell) flip() Cell {
	return c ^ 1
}

//Coord is a (row, column) position on the grid
type Coord struct {
	Row int
	Col int
}

//Options represents the Universe's construction options
type Options struct {
	Width     int
	Height    int
	SeedEvery int          //every SeedEvery-th cell is forced alive on construction, 0 disables it
	Random    RandomSource //nil means a time seeded source
}

//default options
const (
	DefWidth     = 32
	DefHeight    = 32
	DefSeedEvery = 13
)

var DefaultOptions = Options{
	Width:     DefWidth,
	Height:    DefHeight,
	SeedEvery: DefSeedEvery,
}

//Universe is the toroidal Game of Life grid
//cells is always exactly width*height long, row-major
type Universe struct {
	width  int
	height int
	cells  []Cell
	next   []Cell //scratch buffer for tick, swapped with cells
	rnd    RandomSource

	generation int
	changed    bool
}

//New creates the Universe with randomly settled cells
func New(o *Options) (*Universe, error) {
	if o == nil {
		o = &DefaultOptions
	}
	u, err := newUniverse(o.Width, o.Height, o.Random)
	if err != nil {
		return nil, err
	}
	for i := range u.cells {
		if o.SeedEvery > 0 && i%o.SeedEvery == 0 {
			u.cells[i] = Alive
			continue
		}
		u.cells[i] = randomCell(u.rnd)
	}
	u.changed = true
	return u, nil
}

//NewEmpty creates the Universe with all cells dead
func NewEmpty(width int, height int) (*Universe, error) {
	return newUniverse(width, height, nil)
}

func newUniverse(width int, height int, rnd RandomSource) (*Universe, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = NewRandomSource(time.Now().UnixNano())
	}
	u := &Universe{rnd: rnd}
	u.allocate(width, height)
	return u, nil
}

//SetRandomSource replaces the source used by Randomize
func (u *Universe) SetRandomSource(rnd RandomSource) {
	if rnd != nil {
		u.rnd = rnd
	}
}

//Width returns the number of columns
func (u *Universe) Width() int {
	return u.width
}

//Height returns the number of rows
func (u *Universe) Height() int {
	return u.height
}

//Generation returns the number of generations computed since the last reset of the grid
func (u *Universe) Generation() int {
	return u.generation
}

//Stable reports whether the last generation left every cell unchanged
func (u *Universe) Stable() bool {
	return !u.changed
}

//Index translates row and column into the buffer position
func (u *Universe) Index(row int, col int) (int, error) {
	if err := u.checkCoord(row, col); err != nil {
		return 0, err
	}
	return u.index(row, col), nil
}

//Cell returns the state of the cell at row, col
func (u *Universe) Cell(row int, col int) (Cell, error) {
	if err := u.checkCoord(row, col); err != nil {
		return Dead, err
	}
	return u.cells[u.index(row, col)], nil
}

//LiveCells calculates the count of live cells
func (u *Universe) LiveCells() int {
	live := 0
	for _, c := range u.cells {
		live += int(c)
	}
	return live
}

//RawView returns the read-only view over the current buffer
//the view is valid until the next mutation or tick
func (u *Universe) RawView() View {
	return View{width: u.width, height: u.height, cells: u.cells}
}

//index is unchecked, callers keep row and col in range
func (u *Universe) index(row int, col int) int {
	return row*u.width + col
}

func (u *Universe) checkCoord(row int, col int) error {
	if row < 0 || row >= u.height || col < 0 || col >= u.width {
		return fmt.Errorf("%w: row %d, column %d on %dx%d grid", ErrOutOfRange, row, col, u.width, u.height)
	}
	return nil
}

//allocate replaces both buffers with dead ones sized for the new dimensions
func (u *Universe) allocate(width int, height int) {
	n := width * height
	b := make([]Cell, 2*n)
	u.width = width
	u.height = height
	u.cells = b[:n:n]
	u.next = b[n:]
	u.generation = 0
	u.changed = false
}

func checkDimensions(width int, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}
