//go:build ebiten

package view

import (
	"errors"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"toruslife/src/engine"
	"toruslife/src/universe"
)

//Window is the pixel viewer built on ebiten, one cell is one scaled pixel
type Window struct {
	r        *engine.Runner
	scale    int
	template string

	onColor  color.Color
	offColor color.Color

	mu     sync.Mutex
	width  int
	height int
	pixels []byte
	dirty  bool
	img    *ebiten.Image
}

//NewWindow creates the ebiten viewer
func NewWindow(scale int, template string) (*Window, error) {
	if scale < 1 {
		scale = 1
	}
	return &Window{
		scale:    scale,
		template: template,
		onColor:  color.White,
		offColor: color.Black,
	}, nil
}

func (w *Window) Register(r *engine.Runner) {
	w.r = r
	r.Read(w.Refresh)
}

//Refresh blits the view into the pixel buffer, the image is updated on the next Draw
func (w *Window) Refresh(st engine.Status, v universe.View) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if v.Width() != w.width || v.Height() != w.height {
		w.width, w.height = v.Width(), v.Height()
		w.pixels = make([]byte, 4*v.Len())
		w.img = nil
	}
	fillBinaryRGBA(w.pixels, v, w.onColor, w.offColor)
	w.dirty = true
}

//Start runs the ebiten game loop until the window is closed
func (w *Window) Start() {
	st := w.r.Status()
	ebiten.SetWindowTitle("toruslife")
	ebiten.SetWindowSize(st.Width*w.scale, st.Height*w.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Panicln(err)
	}
}

//Update handles the input, the simulation itself is driven by the engine
func (w *Window) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		w.r.Step()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		w.r.Run()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		w.r.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		w.r.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		w.r.Randomize()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		w.r.Settle(w.template)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		resize(w.r, w.r.Status(), 1, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		resize(w.r, w.r.Status(), -1, -1)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.r.Toggle(y/w.scale, x/w.scale)
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.width == 0 || w.height == 0 {
		return
	}
	if w.img == nil {
		w.img = ebiten.NewImage(w.width, w.height)
		w.dirty = true
	}
	if w.dirty {
		w.img.WritePixels(w.pixels)
		w.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.img, op)
}

//Layout returns the logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.width == 0 || w.height == 0 {
		return outsideWidth, outsideHeight
	}
	return w.width * w.scale, w.height * w.scale
}
