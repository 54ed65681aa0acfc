package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"golang.org/x/sync/errgroup"

	"toruslife/src/config"
	"toruslife/src/engine"
	"toruslife/src/universe"
	"toruslife/src/view"
)

type EnvOptions struct {
	configPath string
	invert     bool
	scale      int
}

var (
	views = map[string]func(cfg config.Config, eo *EnvOptions) (engine.Viewer, error){
		"console": func(config.Config, *EnvOptions) (engine.Viewer, error) {
			return view.NewConsoleOut(os.Stdout, true), nil
		},
		"gocui": func(cfg config.Config, _ *EnvOptions) (engine.Viewer, error) {
			return view.NewConsoleUI(cfg.Template), nil
		},
		"tcell": func(cfg config.Config, eo *EnvOptions) (engine.Viewer, error) {
			return view.NewScreenUI(cfg.Template, eo.invert), nil
		},
		"window": func(cfg config.Config, eo *EnvOptions) (engine.Viewer, error) {
			return view.NewWindow(eo.scale, cfg.Template)
		},
	}

	errInterrupted = errors.New("interrupted")
)

func main() {
	cfg, eo := initOptions()

	u, err := universe.New(cfg.UniverseOptions())
	if err != nil {
		log.Fatalf("create universe: %v", err)
	}
	if !cfg.Random {
		u.Clear()
		tmpl, _ := universe.LookupTemplate(cfg.Template)
		if err := u.Settle(tmpl); err != nil {
			log.Fatalf("settle template %q: %v", cfg.Template, err)
		}
	}

	v, err := views[cfg.View](cfg, eo)
	if err != nil {
		log.Fatalf("create %s view: %v", cfg.View, err)
	}

	var stateCh chan engine.Status
	interactive := cfg.View != "console"
	if !interactive {
		stateCh = make(chan engine.Status, 10) //the buffered channel to getting the runner status
	}

	r := engine.NewRunner(u, cfg.EngineOptions(), stateCh)
	r.RegisterViewer(v)
	defer r.Close()

	v.Start()
	if interactive {
		return
	}
	if err := runHeadless(r); err != nil {
		if errors.Is(err, errInterrupted) {
			fmt.Fprintln(os.Stderr, "interrupted")
			os.Exit(130)
		}
		log.Fatal(err)
	}
}

//runHeadless runs the simulation until it finishes or the process is interrupted
func runHeadless(r *engine.Runner) error {
	g, ctx := errgroup.WithContext(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	finished := make(chan struct{})

	r.Run()
	g.Go(func() error {
		defer close(finished)
		for {
			select {
			case st := <-r.StateCh():
				if st.RunningMode == engine.RunningStateFinished {
					return nil
				}
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		select {
		case <-sigCh:
			r.Stop()
			return errInterrupted
		case <-finished:
			return nil
		}
	})
	err := g.Wait()
	//the Finished status is sent before the viewers refresh, wait for the engine goroutine to drain
	r.Read(func(engine.Status, universe.View) {})
	return err
}

func initOptions() (cfg config.Config, eo *EnvOptions) {
	eo = &EnvOptions{configPath: configPathFromArgs(os.Args[1:]), scale: 8}
	cfg = config.Default()
	if eo.configPath != "" {
		var err error
		if cfg, err = config.Load(eo.configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	viewNames := make([]string, 0, len(views))
	for k := range views {
		viewNames = append(viewNames, k)
	}
	sort.Strings(viewNames)

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.configPath, "c", "config", "JSON configuration file, flags override its values")
	flaggy.Int(&cfg.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&cfg.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration((*time.Duration)(&cfg.Interval), "i", "interval", "Simulation speed (interval between the frames) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&cfg.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations, 0 is unlimited")
	flaggy.Int(&cfg.TicksPerFrame, "t", "ticks", "Generations computed per frame")
	flaggy.Int(&cfg.SeedEvery, "e", "seedEvery", "Every n-th cell is alive on the random start, 0 disables it")
	flaggy.Int64(&cfg.Seed, "d", "seed", "Random seed, 0 seeds from the clock")
	flaggy.Bool(&cfg.Random, "r", "random", "Settle with random data, --random=false settles the template")
	flaggy.String(&cfg.Template, "p", "template", "Template to settle ["+strings.Join(universe.TemplateNames(), "|")+"]")
	flaggy.String(&cfg.View, "v", "view", "View to use ["+strings.Join(viewNames, "|")+"]")
	flaggy.Bool(&eo.invert, "", "invert", "Invert the tcell view colors")
	flaggy.Int(&eo.scale, "", "scale", "Pixels per cell in the window view")

	flaggy.Parse()

	if _, ok := views[cfg.View]; !ok {
		flaggy.ShowHelpAndExit("unknown view")
	}
	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}

//configPathFromArgs finds the config flag before the full parse, the file supplies the flag defaults
func configPathFromArgs(args []string) string {
	for i, a := range args {
		switch {
		case a == "-c" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-c="):
			return strings.TrimPrefix(a, "-c=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}
