package universe

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestToggleLocality(t *testing.T) {
	u, err := New(&Options{Width: 9, Height: 7, Random: NewRandomSource(5)})
	if err != nil {
		t.Fatal(err)
	}
	before := make([]byte, u.RawView().Len())
	u.RawView().CopyTo(before)

	if err := u.Toggle(4, 6); err != nil {
		t.Fatal(err)
	}
	after := make([]byte, u.RawView().Len())
	u.RawView().CopyTo(after)

	idx, _ := u.Index(4, 6)
	for i := range before {
		if i == idx {
			if before[i] == after[i] {
				t.Fatalf("cell %d was not flipped", i)
			}
			continue
		}
		if before[i] != after[i] {
			t.Fatalf("cell %d changed by toggling cell %d", i, idx)
		}
	}

	if err := u.Toggle(4, 6); err != nil {
		t.Fatal(err)
	}
	c, _ := u.Cell(4, 6)
	if byte(c) != before[idx] {
		t.Fatalf("double toggle should restore the cell")
	}
}

func TestToggleOutOfRange(t *testing.T) {
	u := newTestUniverse(t, 4, 3)
	for _, c := range []Coord{{3, 0}, {0, 4}, {-1, 0}, {0, -1}} {
		if err := u.Toggle(c.Row, c.Col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Toggle(%d, %d) error = %v, expected ErrOutOfRange", c.Row, c.Col, err)
		}
	}
	if u.LiveCells() != 0 {
		t.Fatalf("rejected toggles changed the grid")
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name   string
		resize func(u *Universe) error
		w, h   int
	}{
		{"grow width", func(u *Universe) error { return u.ResizeWidth(12) }, 12, 6},
		{"shrink width", func(u *Universe) error { return u.ResizeWidth(2) }, 2, 6},
		{"grow height", func(u *Universe) error { return u.ResizeHeight(9) }, 8, 9},
		{"shrink height", func(u *Universe) error { return u.ResizeHeight(1) }, 8, 1},
		{"both", func(u *Universe) error { return u.Resize(3, 30) }, 3, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := New(&Options{Width: 8, Height: 6, SeedEvery: 2, Random: NewRandomSource(1)})
			if err != nil {
				t.Fatal(err)
			}
			if err := u.Tick(1); err != nil {
				t.Fatal(err)
			}
			if err := tt.resize(u); err != nil {
				t.Fatal(err)
			}
			if u.Width() != tt.w || u.Height() != tt.h {
				t.Fatalf("dimensions %dx%d, expected %dx%d", u.Width(), u.Height(), tt.w, tt.h)
			}
			checkInvariant(t, u)
			if u.LiveCells() != 0 {
				t.Fatalf("resized grid should be all dead, live cells: %d", u.LiveCells())
			}
			if u.Generation() != 0 {
				t.Fatalf("Generation() = %d after resize", u.Generation())
			}

			want := strings.Repeat(strings.Repeat(string(DeadGlyph), tt.w)+"\n", tt.h)
			if got := u.Render(); got != want {
				t.Fatalf("Render() after resize:\n%s\nexpected\n%s", got, want)
			}

			//every cell of the new shape is addressable and the grid keeps working
			if err := u.Toggle(tt.h-1, tt.w-1); err != nil {
				t.Fatal(err)
			}
			if err := u.Tick(3); err != nil {
				t.Fatal(err)
			}
			checkInvariant(t, u)
		})
	}
}

func TestResizeInvalid(t *testing.T) {
	u := newTestUniverse(t, 4, 4, Coord{1, 1})
	for _, err := range []error{u.ResizeWidth(0), u.ResizeHeight(-2), u.Resize(0, 0)} {
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("error = %v, expected ErrInvalidDimension", err)
		}
	}
	if u.Width() != 4 || u.Height() != 4 || u.LiveCells() != 1 {
		t.Fatalf("rejected resize changed the universe")
	}
}

func TestClear(t *testing.T) {
	u, err := New(&Options{Width: 50, Height: 40, SeedEvery: 3, Random: NewRandomSource(9)})
	if err != nil {
		t.Fatal(err)
	}
	u.Clear()
	v := u.RawView()
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != Dead {
			t.Fatalf("cell %d alive after Clear", i)
		}
	}
	checkInvariant(t, u)
}

func TestRandomizeProportion(t *testing.T) {
	const size = 1000
	u, err := NewEmpty(size, size)
	if err != nil {
		t.Fatal(err)
	}
	u.SetRandomSource(NewRandomSource(2024))
	u.Randomize()
	checkInvariant(t, u)

	n := float64(size * size)
	p := float64(u.LiveCells()) / n
	//five standard deviations of a binomial proportion at p=0.5
	tolerance := 5 * math.Sqrt(0.25/n)
	if math.Abs(p-0.5) > tolerance {
		t.Fatalf("alive fraction %.5f, expected 0.5 +/- %.5f", p, tolerance)
	}
}

func TestRandomizeUsesSource(t *testing.T) {
	a := newTestUniverse(t, 30, 30)
	b := newTestUniverse(t, 30, 30)
	a.SetRandomSource(NewRandomSource(11))
	b.SetRandomSource(NewRandomSource(11))
	a.Randomize()
	b.Randomize()
	if a.Render() != b.Render() {
		t.Fatalf("same source produced different grids")
	}
}

func TestSetAlive(t *testing.T) {
	u := newTestUniverse(t, 5, 5, Coord{0, 0})
	if err := u.SetAlive(Coord{1, 1}, Coord{4, 4}, Coord{1, 1}); err != nil {
		t.Fatal(err)
	}
	got := aliveSet(u)
	for _, c := range []Coord{{0, 0}, {1, 1}, {4, 4}} {
		if !got[c] {
			t.Fatalf("cell %v should be alive", c)
		}
	}
	if len(got) != 3 {
		t.Fatalf("alive cells %v, expected 3", got)
	}
}

func TestSetAliveRejectsWholeBatch(t *testing.T) {
	u := newTestUniverse(t, 5, 5)
	err := u.SetAlive(Coord{1, 1}, Coord{5, 0}, Coord{2, 2})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetAlive error = %v, expected ErrOutOfRange", err)
	}
	if u.LiveCells() != 0 {
		t.Fatalf("rejected batch wrote %d cells", u.LiveCells())
	}
}

func TestSettleTemplates(t *testing.T) {
	for _, name := range TemplateNames() {
		t.Run(name, func(t *testing.T) {
			tmpl, ok := LookupTemplate(name)
			if !ok {
				t.Fatalf("template %q not found", name)
			}
			u := newTestUniverse(t, 8, 8)
			if err := u.Settle(tmpl); err != nil {
				t.Fatal(err)
			}
			if u.LiveCells() != len(tmpl.Coordinates) {
				t.Fatalf("live cells %d, expected %d", u.LiveCells(), len(tmpl.Coordinates))
			}
		})
	}
	if _, ok := LookupTemplate("missing"); ok {
		t.Fatalf("unknown template found")
	}
}
