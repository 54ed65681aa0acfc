package view

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"toruslife/src/engine"
	"toruslife/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal viewer built on gocui
type ConsoleUI struct {
	r        *engine.Runner
	g        *gocui.Gui
	k        []keyBindings
	template string

	liveFiller string
	deadFiller string

	//last frame received from the engine, layout runs on the gui goroutine
	frame struct {
		sync.Mutex
		st    engine.Status
		lines [][]universe.Cell
	}
}

var (
	runningStateDescr = map[engine.RunningState]string{
		engine.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		engine.RunningStateStep:     "do the step",
		engine.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		engine.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

//NewConsoleUI creates the gocui viewer, template is settled by the T key
func NewConsoleUI(template string) *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		template:   template,
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdNextRound, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Settle with random", t.cmdSettleWithRandom, ""},
		{'t', "T", "Settle the template", t.cmdSettleTemplate, ""},
		{']', "]", "Wider", t.cmdResize(1, 0), ""},
		{'[', "[", "Narrower", t.cmdResize(-1, 0), ""},
		{'}', "}", "Taller", t.cmdResize(0, 1), ""},
		{'{', "{", "Shorter", t.cmdResize(0, -1), ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdMouseClick, "battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(r *engine.Runner) {
	t.r = r
	r.Read(t.store)
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh(st engine.Status, v universe.View) {
	t.store(st, v)
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField()
		t.renderConfiguration()
		t.renderStatus()
		return nil
	})
}

//store copies the view, it is not valid after Refresh returns
func (t *ConsoleUI) store(st engine.Status, v universe.View) {
	lines := make([][]universe.Cell, v.Height())
	for i := range lines {
		lines[i] = make([]universe.Cell, v.Width())
	}
	v.Walk(func(row int, col int, c universe.Cell) {
		lines[row][col] = c
	})
	t.frame.Lock()
	t.frame.st = st
	t.frame.lines = lines
	t.frame.Unlock()
}

func (t *ConsoleUI) status() engine.Status {
	t.frame.Lock()
	defer t.frame.Unlock()
	return t.frame.st
}

func (t *ConsoleUI) renderField() {
	v, e := t.g.View("battlefield")
	if e != nil {
		return
	}
	t.frame.Lock()
	lines := t.frame.lines
	t.frame.Unlock()

	v.Clear()
	w, h := v.Size()
	_, _ = fmt.Fprint(v, fieldText(lines, w, h, t.liveFiller, t.deadFiller))
}

//fieldText draws the frame into a w x h area, when the field does not fit the last row reports it instead
func fieldText(lines [][]universe.Cell, w int, h int, live string, dead string) string {
	if len(lines) == 0 || h < 1 {
		return ""
	}
	fieldW, fieldH := len(lines[0]), len(lines)
	rows := fieldH
	cropped := fieldW > w || fieldH > h
	if cropped {
		rows = min(fieldH, h-1)
	}

	var b strings.Builder
	for _, l := range lines[:rows] {
		for _, c := range l[:min(fieldW, w)] {
			if c.Alive() {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
		b.WriteByte('\n')
	}
	if cropped {
		msg := fmt.Sprintf("field %dx%d does not fit %dx%d", fieldW, fieldH, w, h)
		b.WriteString(aurora.Red(msg).BgBlack().String())
	}
	return b.String()
}

type prop struct {
	name   string
	format string
	value  []interface{}
}

func (t *ConsoleUI) renderProps(name string, props []prop) {
	v, e := t.g.View(name)
	if e != nil {
		return
	}
	v.Clear()
	for _, p := range props {
		_, _ = fmt.Fprintln(v, " "+aurora.Green(p.name).String()+": "+fmt.Sprintf(p.format, p.value...))
	}
}

func (t *ConsoleUI) renderStatus() {
	s := t.status()
	props := []prop{
		{"Generation", "%v", []interface{}{s.Generation}},
		{"Live Cells", "%v", []interface{}{s.LiveCells}},
		{"Evaluation time", "%v", []interface{}{s.IterationTime.Round(time.Microsecond)}},
		{"Mode", "%v", []interface{}{runningStateDescr[s.RunningMode]}},
	}
	if s.LastError != nil {
		props = append(props, prop{"Error", "%v", []interface{}{aurora.Red(s.LastError.Error())}})
	}
	t.renderProps("status", props)
}

func (t *ConsoleUI) renderConfiguration() {
	c := t.r.Options()
	s := t.status()
	t.renderProps("configuration", []prop{
		{"Dimension", "%v x %v", []interface{}{s.Width, s.Height}},
		{"Interval", "%v", []interface{}{c.Interval}},
		{"Generations", "%v steps", []interface{}{c.MaxSteps}},
		{"Ticks per frame", "%v", []interface{}{c.TicksPerFrame}},
	})
}

const (
	sideWidth    = 28
	headerHeight = 3
	footerHeight = 5
	minHeight    = 20
)

//pane is a framed view, rect places it for the terminal size
type pane struct {
	name   string
	title  string
	rect   func(maxX int, maxY int) (x0, y0, x1, y1 int)
	render func()
}

func (t *ConsoleUI) panes() []pane {
	split := func(maxY int) int { return headerHeight + (maxY-footerHeight-headerHeight)/2 }
	return []pane{
		{"configuration", "Configuration", func(_ int, maxY int) (int, int, int, int) {
			return 0, headerHeight, sideWidth, split(maxY)
		}, t.renderConfiguration},
		{"status", "Status", func(_ int, maxY int) (int, int, int, int) {
			return 0, split(maxY) + 1, sideWidth, maxY - footerHeight
		}, t.renderStatus},
		{"battlefield", "Battle Field", func(maxX int, maxY int) (int, int, int, int) {
			return sideWidth + 1, headerHeight, maxX - 1, maxY - footerHeight
		}, t.renderField},
	}
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	panes := t.panes()

	if maxY < minHeight {
		for _, p := range panes {
			_ = g.DeleteView(p.name)
		}
		return t.header(g, maxY, "Terminal height too small")
	}
	if err := t.header(g, headerHeight, "This is \"The Life\" game on a torus"); err != nil {
		return err
	}

	for _, p := range panes {
		x0, y0, x1, y1 := p.rect(maxX, maxY)
		v, err := g.SetView(p.name, x0, y0, x1, y1)
		if err != nil && err != gocui.ErrUnknownView {
			return err
		}
		if err == gocui.ErrUnknownView {
			v.Title = p.title
			v.Frame = true
		}
		p.render()
	}

	v, err := g.SetView("help", -1, maxY-footerHeight, maxX, maxY-footerHeight+2)
	if err == gocui.ErrUnknownView {
		v.Frame = false
		v.Wrap = true
		_, _ = fmt.Fprintln(v, helpText(t.k))
		return nil
	}
	return err
}

func helpText(k []keyBindings) string {
	names := make([]string, len(k))
	for i, kb := range k {
		names[i] = aurora.Green(kb.name).String() + ": " + kb.descr
	}
	return "KEYBINDINGS: " + strings.Join(names, ", ")
}

func (t *ConsoleUI) header(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView("header", -1, -1, maxX+1, height)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err == gocui.ErrUnknownView {
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	_, _ = fmt.Fprint(v, centered(text, maxX, height))
	return nil
}

//centered places text in the middle of a width x height block, text wider than the block is cut
func centered(text string, width int, height int) string {
	if width < 0 {
		width = 0
	}
	if len(text) > width {
		text = text[:width]
	}
	return strings.Repeat("\n", height/2) + strings.Repeat(" ", (width-len(text))/2) + text
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.r.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.r.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.r.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.r.Clear()
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.r.Randomize()
	return nil
}

func (t *ConsoleUI) cmdSettleTemplate(_ *gocui.View) error {
	t.r.Settle(t.template)
	return nil
}

func (t *ConsoleUI) cmdResize(dw int, dh int) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		resize(t.r, t.status(), dw, dh)
		return nil
	}
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.r.Toggle(cy, cx)
	return nil
}
