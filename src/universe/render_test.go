package universe

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	u := newTestUniverse(t, 4, 3, Coord{0, 0}, Coord{1, 2}, Coord{2, 3})
	want := "◼◻◻◻\n" +
		"◻◻◼◻\n" +
		"◻◻◻◼\n"
	if got := u.Render(); got != want {
		t.Fatalf("Render() =\n%s\nexpected\n%s", got, want)
	}
	if u.String() != want {
		t.Fatalf("String() differs from Render()")
	}
}

func TestRenderShape(t *testing.T) {
	u, err := New(&Options{Width: 13, Height: 5, Random: NewRandomSource(3)})
	if err != nil {
		t.Fatal(err)
	}
	out := u.Render()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output should end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("%d lines, expected 5", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 13 {
			t.Fatalf("line %d has %d glyphs, expected 13", i, n)
		}
	}
}
