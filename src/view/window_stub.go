//go:build !ebiten

package view

import (
	"errors"

	"toruslife/src/engine"
	"toruslife/src/universe"
)

var ErrNoWindow = errors.New("the window view requires building with the 'ebiten' tag")

//Window is a placeholder that satisfies the API expected by the GUI build
type Window struct{}

//NewWindow reports that the ebiten build tag is required for GUI support
func NewWindow(int, string) (*Window, error) {
	return nil, ErrNoWindow
}

func (w *Window) Register(*engine.Runner)              {}
func (w *Window) Refresh(engine.Status, universe.View) {}
func (w *Window) Start()                               {}
