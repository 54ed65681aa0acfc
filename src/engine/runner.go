package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"toruslife/src/universe"
)

//Options represents the Runner's configurable options
type Options struct {
	Interval        time.Duration //interval between the frames
	MaxSteps        int           //generation limit, 0 means unlimited
	TicksPerFrame   int           //generations computed by one frame
	MaxSkippedTicks int
}

//Status represents the status of the simulation at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	Width         int
	Height        int
	IterationTime time.Duration
	LastError     error //error of the last command, nil on success
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	//Refresh is called on the engine goroutine, v is valid only during the call
	Refresh(st Status, v universe.View)
	Register(r *Runner)
	Start()
}

//The simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefTicksPerFrame      = 1
	DefMaxSkippedTicks    = 5
	DefSkipWait           = time.Millisecond * 10 //how long a frame waits for the busy engine before it is skipped
)

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

var runningStateNames = map[RunningState]string{
	RunningStateManual:   "manual",
	RunningStateStep:     "step",
	RunningStateRun:      "run",
	RunningStateFinished: "finished",
}

func (s RunningState) String() string {
	if n, ok := runningStateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("RunningState(%d)", int(s))
}

var ErrUnknownTemplate = errors.New("unknown template")

var DefaultOptions = Options{
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	TicksPerFrame:   DefTicksPerFrame,
	MaxSkippedTicks: DefMaxSkippedTicks,
}

//Runner drives the Universe: it owns it and executes every command on a single goroutine,
//so viewers never observe a half updated generation
type Runner struct {
	options Options
	u       *universe.Universe
	state   struct {
		Status
		sync.Mutex
		runID int //identifies the current run cycle
	}
	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

//NewRunner creates the Runner and starts its main loop
//stateCh is optional, when set every running state switch is written to it
func NewRunner(u *universe.Universe, o *Options, stateCh chan Status) *Runner {
	if o == nil {
		o = &DefaultOptions
	}
	r := Runner{
		options:   *o,
		u:         u,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan struct{}),
		stopped:   make(chan struct{}),
		stateCh:   stateCh,
	}
	if r.options.TicksPerFrame < 1 {
		r.options.TicksPerFrame = DefTicksPerFrame
	}
	r.syncStatus()
	go r.mainLoop()
	return &r
}

//RegisterViewer registers the viewer - the runner will call the viewer when the state is changed
//must be called before any command is sent
func (r *Runner) RegisterViewer(v Viewer) {
	r.views = append(r.views, v)
	v.Register(r)
}

//StateCh returns the channel with the status updates
func (r *Runner) StateCh() chan Status {
	return r.stateCh
}

//Status returns current simulation status represented by Status struct
func (r *Runner) Status() Status {
	r.state.Lock()
	defer r.state.Unlock()
	return r.state.Status
}

//Options returns the runner configuration
func (r *Runner) Options() Options {
	return r.options
}

//Read calls cb on the engine goroutine and waits for it
//must not be called from Viewer.Refresh
func (r *Runner) Read(cb func(st Status, v universe.View)) {
	done := make(chan struct{})
	if !r.send(func() {
		cb(r.Status(), r.u.RawView())
		close(done)
	}) {
		return
	}
	select {
	case <-done:
	case <-r.stopped:
	}
}

//Run starts the simulation, returns immediately
func (r *Runner) Run() {
	r.send(r.run)
}

//Stop stops the simulation, returns immediately
func (r *Runner) Stop() {
	r.send(r.stop)
}

//Step do one frame, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (r *Runner) Step() {
	r.send(r.step)
}

//Clear kills all cells, returns immediately
func (r *Runner) Clear() {
	r.send(func() {
		r.u.Clear()
		r.reset(nil)
	})
}

//Randomize settles the universe with random data, returns immediately
func (r *Runner) Randomize() {
	r.send(func() {
		r.u.Randomize()
		r.reset(nil)
	})
}

//Toggle inverses the cell state at row, col, returns immediately
//an out of range coordinate is reported in Status.LastError
func (r *Runner) Toggle(row int, col int) {
	r.send(func() {
		r.update(r.u.Toggle(row, col))
	})
}

//ResizeWidth changes the number of columns and clears the universe, returns immediately
func (r *Runner) ResizeWidth(width int) {
	r.send(func() {
		r.reset(r.u.ResizeWidth(width))
	})
}

//ResizeHeight changes the number of rows and clears the universe, returns immediately
func (r *Runner) ResizeHeight(height int) {
	r.send(func() {
		r.reset(r.u.ResizeHeight(height))
	})
}

//Settle populates the universe with the named template, returns immediately
func (r *Runner) Settle(name string) {
	r.send(func() {
		tmpl, ok := universe.LookupTemplate(name)
		if !ok {
			r.update(fmt.Errorf("%w: %q", ErrUnknownTemplate, name))
			return
		}
		r.update(r.u.Settle(tmpl))
	})
}

//Close stops the main loop, returns immediately
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		close(r.closeCh)
	})
}

//send queues the command, reports false once the runner is closed
func (r *Runner) send(cmd func()) bool {
	select {
	case <-r.closeCh:
		return false
	default:
	}
	select {
	case r.controlCh <- cmd:
		return true
	case <-r.closeCh:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (r *Runner) mainLoop() {
	defer close(r.stopped)
	for {
		select {
		case cmd := <-r.controlCh:
			cmd()
		case <-r.closeCh:
			return
		}
	}
}

//switchRunningState switch the running state to RunningState
//also writes the new state to the stateCh to signal upper control software
func (r *Runner) switchRunningState(to RunningState) {
	r.state.Lock()
	r.state.RunningMode = to
	st := r.state.Status
	r.state.Unlock()
	if r.stateCh != nil {
		r.stateCh <- st
	}
}

//syncStatus copies the universe counters to the status
func (r *Runner) syncStatus() {
	r.state.Lock()
	r.state.Generation = r.u.Generation()
	r.state.LiveCells = r.u.LiveCells()
	r.state.Width = r.u.Width()
	r.state.Height = r.u.Height()
	r.state.Unlock()
}

//update records the command result and refreshes the views
func (r *Runner) update(err error) {
	r.state.Lock()
	r.state.LastError = err
	r.state.Unlock()
	r.syncStatus()
	r.refreshView()
}

//reset returns to the manual mode after the grid was replaced
func (r *Runner) reset(err error) {
	r.state.Lock()
	r.state.LastError = err
	r.state.IterationTime = 0
	r.state.Unlock()
	r.syncStatus()
	r.switchRunningState(RunningStateManual)
	r.refreshView()
}

//run starts the simulation cycle
//the cycle stops on Stop() calling or when the boundary conditions are reached
func (r *Runner) run() {
	mode := r.Status().RunningMode
	if mode == RunningStateRun {
		return
	}
	r.state.Lock()
	r.state.runID++
	id := r.state.runID
	r.state.Unlock()
	r.switchRunningState(RunningStateRun)
	skipWait := r.options.Interval
	if skipWait <= 0 {
		skipWait = DefSkipWait
	}
	go func() {
		skipped := 0
		done := make(chan struct{}, 1)
		frame := func() {
			//Stop may have been processed while the frame was queued
			if r.running(id) {
				r.step()
			}
			done <- struct{}{}
		}
		for r.running(id) {
			if skipped > r.options.MaxSkippedTicks {
				r.send(func() {
					if r.running(id) {
						r.switchRunningState(RunningStateFinished)
						r.refreshView()
					}
				})
				return
			}
			//skip the frame if the engine is still busy with other commands
			wait := time.NewTimer(skipWait)
			select {
			case r.controlCh <- frame:
				wait.Stop()
				skipped = 0
				select {
				case <-done:
				case <-r.stopped:
					return
				}
			case <-r.closeCh:
				wait.Stop()
				return
			case <-wait.C:
				skipped++
			}
			if r.options.Interval > 0 {
				select {
				case <-time.After(r.options.Interval):
				case <-r.closeCh:
					return
				}
			}
		}
	}()
}

//running reports whether the run cycle id is still the active one
func (r *Runner) running(id int) bool {
	r.state.Lock()
	defer r.state.Unlock()
	return r.state.runID == id && r.state.RunningMode == RunningStateRun
}

//stop stops the running cycle
func (r *Runner) stop() {
	if r.Status().RunningMode == RunningStateRun {
		r.switchRunningState(RunningStateManual)
	}
}

//step computes one frame of TicksPerFrame generations
func (r *Runner) step() {
	rm := r.Status().RunningMode
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	finished := false
	defer func() {
		r.syncStatus()
		if finished {
			r.switchRunningState(RunningStateFinished)
		} else {
			r.switchRunningState(rm)
		}
		r.refreshView()
	}()

	steps := r.options.TicksPerFrame
	if limit := r.options.MaxSteps; limit != 0 {
		if left := limit - r.u.Generation(); left < steps {
			steps = left
		}
	}
	if steps <= 0 {
		finished = true
		return
	}

	r.switchRunningState(RunningStateStep)
	start := time.Now()
	err := r.u.Tick(steps)
	r.state.Lock()
	r.state.IterationTime = time.Since(start)
	r.state.LastError = err
	r.state.Unlock()

	if err != nil || r.u.LiveCells() == 0 || r.u.Stable() {
		finished = true
	}
	if limit := r.options.MaxSteps; limit != 0 && r.u.Generation() >= limit {
		finished = true
	}
}

//refreshView calls Refresh event for all registered views
func (r *Runner) refreshView() {
	if len(r.views) == 0 {
		return
	}
	st := r.Status()
	v := r.u.RawView()
	for _, view := range r.views {
		view.Refresh(st, v)
	}
}
