package view

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"toruslife/src/engine"
	"toruslife/src/universe"
)

//ScreenUI is the interactive full screen viewer built on tcell, every cell takes two columns
type ScreenUI struct {
	r        *engine.Runner
	screen   tcell.Screen
	template string
	invert   bool
	buttons  tcell.ButtonMask
}

//NewScreenUI creates the tcell viewer on the terminal, invert swaps foreground and background colors
func NewScreenUI(template string, invert bool) *ScreenUI {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Panicln(err)
	}
	if err = screen.Init(); err != nil {
		log.Panicln(err)
	}
	return newScreenUI(screen, template, invert)
}

//newScreenUI wraps an initialized screen, Start finalizes it
func newScreenUI(screen tcell.Screen, template string, invert bool) *ScreenUI {
	screen.EnableMouse()
	screen.Clear()
	return &ScreenUI{screen: screen, template: template, invert: invert}
}

func (s *ScreenUI) Register(r *engine.Runner) {
	s.r = r
}

func (s *ScreenUI) Refresh(st engine.Status, v universe.View) {
	s.draw(st, v)
}

//Start polls the terminal events until the user quits
func (s *ScreenUI) Start() {
	defer s.screen.Fini()
	s.r.Read(s.draw)
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.screen.Sync()
			s.r.Read(s.draw)
		case *tcell.EventKey:
			if s.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			s.handleMouse(ev)
		}
	}
}

//handleKey reports true when the user quits
func (s *ScreenUI) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return true
	case 'n':
		s.r.Step()
	case 'r':
		s.r.Run()
	case 's':
		s.r.Stop()
	case 'c':
		s.r.Clear()
	case 'w':
		s.r.Randomize()
	case 't':
		s.r.Settle(s.template)
	case ']':
		resize(s.r, s.r.Status(), 1, 0)
	case '[':
		resize(s.r, s.r.Status(), -1, 0)
	case '}':
		resize(s.r, s.r.Status(), 0, 1)
	case '{':
		resize(s.r, s.r.Status(), 0, -1)
	}
	return false
}

//handleMouse toggles the cell under the pointer once per button press
func (s *ScreenUI) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0
	s.buttons = ev.Buttons()
	if !pressed {
		return
	}
	x, y := ev.Position()
	s.r.Toggle(y, x/2)
}

func (s *ScreenUI) draw(st engine.Status, v universe.View) {
	live := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	dead := tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	if s.invert {
		live, dead = dead, live
	}

	s.screen.Clear()
	maxX, maxY := s.screen.Size()
	v.Walk(func(row int, col int, c universe.Cell) {
		if row >= maxY-1 || col*2+1 >= maxX {
			return
		}
		style := dead
		if c.Alive() {
			style = live
		}
		s.screen.SetContent(col*2, row, ' ', nil, style)
		s.screen.SetContent(col*2+1, row, ' ', nil, style)
	})

	line := fmt.Sprintf(" %dx%d  generation %d  live %d  %v  [n]ext [r]un [s]top [c]lear [w]random [t]emplate [q]uit",
		st.Width, st.Height, st.Generation, st.LiveCells, st.RunningMode)
	if st.LastError != nil {
		line += "  " + st.LastError.Error()
	}
	drawText(s.screen, 0, maxY-1, line, tcell.StyleDefault.Reverse(true))
	s.screen.Show()
}

func drawText(screen tcell.Screen, x int, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
