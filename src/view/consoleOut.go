package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"toruslife/src/engine"
	"toruslife/src/universe"
)

//MaxPrintedArea is the largest field ConsoleOut prints on finish
const MaxPrintedArea = 80 * 40

//ConsoleOut is the non interactive viewer, prints the progress to the writer
type ConsoleOut struct {
	r         *engine.Runner
	w         io.Writer
	a         aurora.Aurora
	startTime time.Time
	every     int
}

//NewConsoleOut creates the viewer, colors disables the escape sequences when false
func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, a: aurora.NewAurora(colors), every: 10}
}

func (c *ConsoleOut) Refresh(st engine.Status, v universe.View) {
	if st.LastError != nil {
		fmt.Fprintf(c.w, "  %s %v\n", c.a.Red("error:"), st.LastError)
	}
	switch st.RunningMode {
	case engine.RunningStateFinished:
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last generation": st.Generation,
			"Total time":      totalTime,
			"Live cells":      st.LiveCells,
		}
		fmt.Fprintln(c.w, c.a.Bold("\nFinished:"))
		c.printHashData(resultData)
		if v.Len() <= MaxPrintedArea {
			fmt.Fprint(c.w, v.Render())
		}
	case engine.RunningStateRun:
		if st.Generation != 0 && st.Generation%c.every == 0 {
			fmt.Fprintf(c.w, "  Generations done: %v, live cells: %v\n", c.a.Cyan(st.Generation), st.LiveCells)
		}
	}
}

func (c *ConsoleOut) Register(r *engine.Runner) {
	c.r = r
	o := r.Options()
	st := r.Status()
	fmt.Fprintln(c.w, c.a.Green("Running configuration:"))
	c.printHashData(map[string]interface{}{
		"Dimension":       fmt.Sprintf("%v x %v", st.Width, st.Height),
		"Interval":        o.Interval,
		"Max generations": o.MaxSteps,
		"Ticks per frame": o.TicksPerFrame,
	})
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
