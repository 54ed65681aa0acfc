package universe

import "strings"

const (
	DeadGlyph  = '◻'
	AliveGlyph = '◼'
)

//Render lays the grid out as Height lines of Width glyphs, each line ends with a newline
func (u *Universe) Render() string {
	return u.RawView().Render()
}

func (u *Universe) String() string {
	return u.Render()
}

//Render lays the view out as Height lines of Width glyphs, each line ends with a newline
func (v View) Render() string {
	var b strings.Builder
	b.Grow(v.height * (v.width*len(string(AliveGlyph)) + 1))
	for row := 0; row < v.height; row++ {
		for _, c := range v.cells[row*v.width : (row+1)*v.width] {
			if c == Alive {
				b.WriteRune(AliveGlyph)
			} else {
				b.WriteRune(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
