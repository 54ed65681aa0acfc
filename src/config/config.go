package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"toruslife/src/engine"
	"toruslife/src/universe"
)

//Duration is time.Duration written as "150ms" in the config file
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var ns int64
		if err := json.Unmarshal(b, &ns); err != nil {
			return fmt.Errorf("duration must be a string like \"150ms\" or nanoseconds: %s", b)
		}
		*d = Duration(ns)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

//Config is the complete application configuration
type Config struct {
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	Interval      Duration `json:"interval"`
	MaxSteps      int      `json:"max_steps"`
	TicksPerFrame int      `json:"ticks_per_frame"`
	SeedEvery     int      `json:"seed_every"`
	Seed          int64    `json:"seed"` //0 means seeded from the clock
	Random        bool     `json:"random"`
	Template      string   `json:"template"`
	View          string   `json:"view"`
}

var ErrInvalid = errors.New("invalid configuration")

//Default returns the standard configuration
func Default() Config {
	return Config{
		Width:         universe.DefWidth,
		Height:        universe.DefHeight,
		Interval:      Duration(engine.DefSimulationInterval),
		MaxSteps:      engine.DefMaxSteps,
		TicksPerFrame: engine.DefTicksPerFrame,
		SeedEvery:     universe.DefSeedEvery,
		Random:        true,
		Template:      "sample",
		View:          "console",
	}
}

//Load reads the JSON file over the defaults
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

//Validate checks the values the engine can not work with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.TicksPerFrame < 1:
		return fmt.Errorf("%w: ticks per frame %d", ErrInvalid, c.TicksPerFrame)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: max steps %d", ErrInvalid, c.MaxSteps)
	case c.SeedEvery < 0:
		return fmt.Errorf("%w: seed every %d", ErrInvalid, c.SeedEvery)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval %v", ErrInvalid, time.Duration(c.Interval))
	}
	if !c.Random {
		if _, ok := universe.LookupTemplate(c.Template); !ok {
			return fmt.Errorf("%w: unknown template %q", ErrInvalid, c.Template)
		}
	}
	return nil
}

//UniverseOptions converts the config to the universe construction options
func (c Config) UniverseOptions() *universe.Options {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &universe.Options{
		Width:     c.Width,
		Height:    c.Height,
		SeedEvery: c.SeedEvery,
		Random:    universe.NewRandomSource(seed),
	}
}

//EngineOptions converts the config to the runner options
func (c Config) EngineOptions() *engine.Options {
	o := engine.DefaultOptions
	o.Interval = time.Duration(c.Interval)
	o.MaxSteps = c.MaxSteps
	o.TicksPerFrame = c.TicksPerFrame
	return &o
}
