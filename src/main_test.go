package main

import (
	"bytes"
	"strings"
	"testing"

	"toruslife/src/engine"
	"toruslife/src/universe"
	"toruslife/src/view"
)

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"-x", "10"}, ""},
		{[]string{"-c", "life.json"}, "life.json"},
		{[]string{"-x", "10", "--config", "a.json", "-y", "3"}, "a.json"},
		{[]string{"-c=b.json"}, "b.json"},
		{[]string{"--config=c.json"}, "c.json"},
		{[]string{"-c"}, ""},
	}
	for _, tt := range tests {
		if got := configPathFromArgs(tt.args); got != tt.want {
			t.Errorf("configPathFromArgs(%q) = %q, expected %q", tt.args, got, tt.want)
		}
	}
}

func TestViewsAreKnown(t *testing.T) {
	for _, name := range []string{"console", "gocui", "tcell", "window"} {
		if _, ok := views[name]; !ok {
			t.Errorf("view %q is not registered", name)
		}
	}
}

func TestRunHeadlessPrintsSummary(t *testing.T) {
	u, err := universe.NewEmpty(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	blinker, _ := universe.LookupTemplate("blinker")
	if err := u.Settle(blinker); err != nil {
		t.Fatal(err)
	}
	o := engine.DefaultOptions
	o.Interval = 0
	o.MaxSteps = 6
	r := engine.NewRunner(u, &o, make(chan engine.Status, 10))
	defer r.Close()

	var out bytes.Buffer
	c := view.NewConsoleOut(&out, false)
	r.RegisterViewer(c)
	c.Start()
	if err := runHeadless(r); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}

	got := out.String()
	for _, s := range []string{"Finished:", "Last generation: 6", "◻◻◼◻◻\n"} {
		if !strings.Contains(got, s) {
			t.Errorf("output does not contain %q:\n%s", s, got)
		}
	}
}
