package view

import "toruslife/src/engine"

//resize changes the field by dw columns and dh rows, the engine rejects non positive sizes
func resize(r *engine.Runner, st engine.Status, dw int, dh int) {
	if dw != 0 {
		r.ResizeWidth(st.Width + dw)
	}
	if dh != 0 {
		r.ResizeHeight(st.Height + dh)
	}
}
